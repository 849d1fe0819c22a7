package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/herdsourcing/backend/internal/apperrors"
	"github.com/herdsourcing/backend/internal/models"
)

func TestBlockList_SelfBlockFails(t *testing.T) {
	blocks := NewBlockList()
	userID := uuid.New()

	err := blocks.Block(userID, userID)
	require.Equal(t, apperrors.CodeInvalidOperation, apperrors.CodeOf(err))
}

func TestBlockList_BlockIsIdempotent(t *testing.T) {
	req := require.New(t)
	blocks := NewBlockList()
	a, b := uuid.New(), uuid.New()

	req.NoError(blocks.Block(a, b))
	req.NoError(blocks.Block(a, b))

	req.Len(blocks.Blocked(a), 1)
	req.True(blocks.IsBlocked(a, b))
	// Direction matters.
	req.False(blocks.IsBlocked(b, a))
}

func TestBlockList_UnblockIsIdempotent(t *testing.T) {
	req := require.New(t)
	blocks := NewBlockList()
	a, b := uuid.New(), uuid.New()

	req.NoError(blocks.Block(a, b))
	blocks.Unblock(a, b)
	req.False(blocks.IsBlocked(a, b))

	// Unblocking again, and unblocking someone never blocked, are no-ops.
	blocks.Unblock(a, b)
	blocks.Unblock(a, uuid.New())
}

func TestBlockList_FilterVisibleConversations(t *testing.T) {
	req := require.New(t)
	blocks := NewBlockList()

	alice := models.User{ID: uuid.New(), DisplayName: "Alice"}
	bob := models.User{ID: uuid.New(), DisplayName: "Bob"}
	carol := models.User{ID: uuid.New(), DisplayName: "Carol"}

	conv := &models.Conversation{
		ID:           uuid.New(),
		Participants: []models.User{alice, bob, carol},
	}

	req.NoError(blocks.Block(alice.ID, bob.ID))

	// Alice blocked Bob: the conversation disappears from her view but
	// stays in Carol's.
	req.Empty(blocks.FilterVisibleConversations(alice.ID, []*models.Conversation{conv}))
	req.Len(blocks.FilterVisibleConversations(carol.ID, []*models.Conversation{conv}), 1)
}

func TestBlockList_CanSend(t *testing.T) {
	req := require.New(t)
	blocks := NewBlockList()

	alice := models.User{ID: uuid.New()}
	bob := models.User{ID: uuid.New()}
	conv := &models.Conversation{
		ID:           uuid.New(),
		Participants: []models.User{alice, bob},
	}

	req.True(blocks.CanSend(alice.ID, conv))

	req.NoError(blocks.Block(alice.ID, bob.ID))
	req.False(blocks.CanSend(alice.ID, conv))
	// Bob never blocked anyone; his own sends are unaffected.
	req.True(blocks.CanSend(bob.ID, conv))
}
