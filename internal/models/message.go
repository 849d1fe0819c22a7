package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageType is a closed set so the feed builder and messaging service
// can handle every variant exhaustively.
type MessageType string

const (
	MessageTypeNormal      MessageType = "normal"
	MessageTypeJoinRequest MessageType = "join-request"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeNormal, MessageTypeJoinRequest:
		return true
	}
	return false
}

// Message lives inside exactly one conversation's message list.
// ProjectID and RoleID are set together iff Type is join-request.
type Message struct {
	ID             uuid.UUID   `json:"id"`
	ConversationID uuid.UUID   `json:"conversation_id"`
	Sender         User        `json:"sender"`
	Content        string      `json:"content"`
	Type           MessageType `json:"type"`
	CreatedAt      time.Time   `json:"created_at"`
	ProjectID      *uuid.UUID  `json:"project_id,omitempty"`
	RoleID         *uuid.UUID  `json:"role_id,omitempty"`
}

func (m *Message) Clone() Message {
	out := *m
	out.Sender = m.Sender.Clone()
	if m.ProjectID != nil {
		id := *m.ProjectID
		out.ProjectID = &id
	}
	if m.RoleID != nil {
		id := *m.RoleID
		out.RoleID = &id
	}
	return out
}

type SendMessageRequest struct {
	ConversationID uuid.UUID   `json:"conversation_id" binding:"required"`
	Content        string      `json:"content" binding:"required,max=10000"`
	Type           MessageType `json:"type"`
	ProjectID      *uuid.UUID  `json:"project_id,omitempty"`
	RoleID         *uuid.UUID  `json:"role_id,omitempty"`
}

type SendJoinRequestRequest struct {
	ConversationID uuid.UUID `json:"conversation_id" binding:"required"`
	Content        string    `json:"content" binding:"required,max=10000"`
	ProjectID      uuid.UUID `json:"project_id" binding:"required"`
	RoleID         uuid.UUID `json:"role_id" binding:"required"`
}
