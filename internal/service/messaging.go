// Package service holds the operations that span more than one store.
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/herdsourcing/backend/internal/apperrors"
	"github.com/herdsourcing/backend/internal/models"
	"github.com/herdsourcing/backend/internal/store"
)

// MessagingService validates and appends messages. Every check runs
// before anything is mutated, so a failed send leaves the conversation's
// message list untouched.
type MessagingService struct {
	conversations *store.ConversationStore
	blocks        *store.BlockList
	log           *zap.Logger
	now           func() time.Time
}

func NewMessagingService(conversations *store.ConversationStore, blocks *store.BlockList, log *zap.Logger) *MessagingService {
	return &MessagingService{
		conversations: conversations,
		blocks:        blocks,
		log:           log,
		now:           time.Now,
	}
}

// Send appends a message to a conversation. Join requests must carry
// both project and role ids; normal messages must carry neither.
func (s *MessagingService) Send(conversationID, senderID uuid.UUID, content string, msgType models.MessageType, projectID, roleID *uuid.UUID) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.InvalidInput("message content cannot be empty")
	}
	if msgType == "" {
		msgType = models.MessageTypeNormal
	}
	if !msgType.Valid() {
		return nil, apperrors.Newf(apperrors.CodeInvalidInput, "unknown message type %q", msgType)
	}
	switch msgType {
	case models.MessageTypeJoinRequest:
		if projectID == nil || roleID == nil {
			return nil, apperrors.InvalidInput("join requests require project_id and role_id")
		}
	case models.MessageTypeNormal:
		if projectID != nil || roleID != nil {
			return nil, apperrors.InvalidInput("project_id and role_id are only valid on join requests")
		}
	}

	conv, err := s.conversations.GetByID(conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(senderID) {
		return nil, apperrors.Forbidden("sender is not a participant of this conversation")
	}
	if !s.blocks.CanSend(senderID, conv) {
		return nil, apperrors.Forbidden("conversation contains a blocked user")
	}

	var sender models.User
	for _, p := range conv.Participants {
		if p.ID == senderID {
			sender = p
			break
		}
	}

	msg := models.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Sender:         sender,
		Content:        content,
		Type:           msgType,
		CreatedAt:      s.now(),
		ProjectID:      projectID,
		RoleID:         roleID,
	}

	stored, err := s.conversations.AppendMessage(conversationID, msg)
	if err != nil {
		return nil, err
	}

	s.log.Info("message sent",
		zap.String("conversation_id", conversationID.String()),
		zap.String("sender_id", senderID.String()),
		zap.String("type", string(msgType)),
	)
	return stored, nil
}

// SendJoinRequest sends a join-request message for a specific role on a
// specific project. The activity feed picks it up on its next build.
func (s *MessagingService) SendJoinRequest(conversationID, senderID uuid.UUID, content string, projectID, roleID uuid.UUID) (*models.Message, error) {
	return s.Send(conversationID, senderID, content, models.MessageTypeJoinRequest, &projectID, &roleID)
}
