package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/herdsourcing/backend/internal/apperrors"
	"github.com/herdsourcing/backend/internal/models"
)

// BlockList holds directed block relations. Blocking hides conversations
// from the blocker and stops them from sending; it never deletes
// anything from the conversation store.
type BlockList struct {
	mu        sync.RWMutex
	relations map[uuid.UUID]map[uuid.UUID]time.Time
	now       func() time.Time
}

func NewBlockList() *BlockList {
	return &BlockList{
		relations: make(map[uuid.UUID]map[uuid.UUID]time.Time),
		now:       time.Now,
	}
}

// Block adds a relation. Blocking an already-blocked user is a no-op;
// blocking yourself is a caller error.
func (b *BlockList) Block(blockerID, blockedID uuid.UUID) error {
	if blockerID == blockedID {
		return apperrors.InvalidOperation("cannot block yourself")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.relations[blockerID]
	if !ok {
		set = make(map[uuid.UUID]time.Time)
		b.relations[blockerID] = set
	}
	if _, exists := set[blockedID]; !exists {
		set[blockedID] = b.now()
	}
	return nil
}

// Unblock is idempotent; removing a missing relation is a no-op.
func (b *BlockList) Unblock(blockerID, blockedID uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.relations[blockerID], blockedID)
}

func (b *BlockList) IsBlocked(blockerID, candidateID uuid.UUID) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.relations[blockerID][candidateID]
	return ok
}

// Blocked lists the relations held by one user, oldest first.
func (b *BlockList) Blocked(blockerID uuid.UUID) []models.BlockRelation {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]models.BlockRelation, 0, len(b.relations[blockerID]))
	for blocked, at := range b.relations[blockerID] {
		out = append(out, models.BlockRelation{
			BlockerID: blockerID,
			BlockedID: blocked,
			CreatedAt: at,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// FilterVisibleConversations drops every conversation containing a
// participant the viewer has blocked. Display-time filter only; the
// conversations stay in the store.
func (b *BlockList) FilterVisibleConversations(userID uuid.UUID, conversations []*models.Conversation) []*models.Conversation {
	return lo.Filter(conversations, func(conv *models.Conversation, _ int) bool {
		return b.CanSend(userID, conv)
	})
}

// CanSend reports whether the user may send into the conversation: false
// iff any participant is on the user's own block list. Only the sender's
// direction is consulted, matching the viewer-side filtering above.
func (b *BlockList) CanSend(userID uuid.UUID, conv *models.Conversation) bool {
	return !lo.SomeBy(conv.Participants, func(p models.User) bool {
		return b.IsBlocked(userID, p.ID)
	})
}
