package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/herdsourcing/backend/internal/apperrors"
	"github.com/herdsourcing/backend/internal/models"
)

// ConversationStore owns every conversation and its message list. All
// operations are atomic under the store lock: a failed call leaves no
// partial state behind.
type ConversationStore struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID]*models.Conversation
	order         []uuid.UUID
	users         *UserDirectory
	now           func() time.Time
}

func NewConversationStore(users *UserDirectory) *ConversationStore {
	return &ConversationStore{
		conversations: make(map[uuid.UUID]*models.Conversation),
		users:         users,
	}
}

func (s *ConversationStore) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// Create resolves each participant identifier, deduplicates against the
// creator and each other, and starts an empty conversation.
func (s *ConversationStore) Create(creatorID uuid.UUID, participants []string, name *string) (*models.Conversation, error) {
	if len(participants) == 0 {
		return nil, apperrors.InvalidInput("at least one participant is required")
	}
	for _, identifier := range participants {
		if strings.TrimSpace(identifier) == "" {
			return nil, apperrors.InvalidInput("participant identifier cannot be empty")
		}
	}

	creator, err := s.users.GetByID(creatorID)
	if err != nil {
		return nil, err
	}

	// All validation is done; resolution below may mint new directory
	// records, which is the only mutation before the conversation lands.
	members := []models.User{*creator}
	seen := map[uuid.UUID]bool{creator.ID: true}
	for _, identifier := range participants {
		resolved := s.users.Resolve(identifier)
		if seen[resolved.ID] {
			continue
		}
		seen[resolved.ID] = true
		members = append(members, resolved)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.clock()
	conv := &models.Conversation{
		ID:           uuid.New(),
		Name:         name,
		Participants: members,
		Messages:     []models.Message{},
		UnreadCounts: make(map[uuid.UUID]int, len(members)),
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	if conv.Name == nil {
		label := generatedLabel(creator.ID, members)
		conv.Name = &label
	}
	for _, m := range members {
		conv.UnreadCounts[m.ID] = 0
	}

	s.conversations[conv.ID] = conv
	s.order = append(s.order, conv.ID)
	return conv.Clone(), nil
}

// generatedLabel names an unnamed conversation after the participants
// other than the creator.
func generatedLabel(creatorID uuid.UUID, members []models.User) string {
	names := []string{}
	for _, m := range members {
		if m.ID == creatorID {
			continue
		}
		names = append(names, m.DisplayName)
	}
	if len(names) == 0 {
		return "Conversation"
	}
	return strings.Join(names, ", ")
}

func (s *ConversationStore) GetByID(id uuid.UUID) (*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, apperrors.Newf(apperrors.CodeNotFound, "conversation %s not found", id)
	}
	return conv.Clone(), nil
}

// List returns every conversation in creation order. Visibility
// filtering is the caller's responsibility, applied via the block list.
func (s *ConversationStore) List() []*models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Conversation, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.conversations[id].Clone())
	}
	return out
}

// AddParticipants resolves identifiers and appends the genuinely new
// ones; identifiers resolving to existing participants are no-ops.
func (s *ConversationStore) AddParticipants(id uuid.UUID, identifiers []string) (*models.Conversation, error) {
	if len(identifiers) == 0 {
		return nil, apperrors.InvalidInput("at least one participant is required")
	}
	for _, identifier := range identifiers {
		if strings.TrimSpace(identifier) == "" {
			return nil, apperrors.InvalidInput("participant identifier cannot be empty")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, apperrors.Newf(apperrors.CodeNotFound, "conversation %s not found", id)
	}

	// Resolution under the store lock keeps the operation atomic; the
	// directory lock nests inside this one and nothing locks in the
	// reverse order.
	for _, identifier := range identifiers {
		user := s.users.Resolve(identifier)
		if conv.HasParticipant(user.ID) {
			continue
		}
		conv.Participants = append(conv.Participants, user)
		conv.UnreadCounts[user.ID] = 0
	}
	conv.UpdatedAt = s.clock()
	return conv.Clone(), nil
}

func (s *ConversationStore) Rename(id uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.InvalidInput("conversation name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return apperrors.Newf(apperrors.CodeNotFound, "conversation %s not found", id)
	}
	conv.Name = &name
	conv.UpdatedAt = s.clock()
	return nil
}

// MarkRead zeroes the acting user's unread counter.
func (s *ConversationStore) MarkRead(id, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return apperrors.Newf(apperrors.CodeNotFound, "conversation %s not found", id)
	}
	if !conv.HasParticipant(userID) {
		return apperrors.Forbidden(fmt.Sprintf("user %s is not a participant", userID))
	}
	conv.UnreadCounts[userID] = 0
	return nil
}

// Delete removes the conversation. Strict semantics: deleting an absent
// conversation fails, including a second delete of the same id.
func (s *ConversationStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[id]; !ok {
		return apperrors.Newf(apperrors.CodeNotFound, "conversation %s not found", id)
	}
	delete(s.conversations, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// AppendMessage appends a fully validated message, keeps CreatedAt
// non-decreasing within the list, refreshes LastMessageAt and increments
// every other participant's unread counter. The messaging service is the
// only caller.
func (s *ConversationStore) AppendMessage(conversationID uuid.UUID, msg models.Message) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok {
		return nil, apperrors.Newf(apperrors.CodeNotFound, "conversation %s not found", conversationID)
	}
	if !conv.HasParticipant(msg.Sender.ID) {
		return nil, apperrors.Forbidden(fmt.Sprintf("user %s is not a participant", msg.Sender.ID))
	}

	if n := len(conv.Messages); n > 0 && msg.CreatedAt.Before(conv.Messages[n-1].CreatedAt) {
		msg.CreatedAt = conv.Messages[n-1].CreatedAt
	}

	conv.Messages = append(conv.Messages, msg)
	at := msg.CreatedAt
	conv.LastMessageAt = &at
	conv.UpdatedAt = at
	for _, p := range conv.Participants {
		if p.ID != msg.Sender.ID {
			conv.UnreadCounts[p.ID]++
		}
	}

	out := msg.Clone()
	return &out, nil
}
