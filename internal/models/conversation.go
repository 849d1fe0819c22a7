package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation owns its message list. Unread counts are tracked per
// participant; the conversation-global counter the original client used
// breaks down for group chats.
//
// Invariants:
//   - LastMessageAt equals the CreatedAt of the last message, nil iff
//     the message list is empty.
//   - Participants is never empty; the creator is always a member.
//   - Message CreatedAt values are non-decreasing within Messages.
type Conversation struct {
	ID            uuid.UUID         `json:"id"`
	Name          *string           `json:"name,omitempty"`
	Participants  []User            `json:"participants"`
	Messages      []Message         `json:"messages"`
	UnreadCounts  map[uuid.UUID]int `json:"unread_counts"`
	LastMessageAt *time.Time        `json:"last_message_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// HasParticipant reports membership by user id.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	for _, p := range c.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// UnreadFor returns the unread count as seen by one participant.
func (c *Conversation) UnreadFor(userID uuid.UUID) int {
	return c.UnreadCounts[userID]
}

func (c *Conversation) Clone() *Conversation {
	out := *c
	out.Participants = make([]User, len(c.Participants))
	for i := range c.Participants {
		out.Participants[i] = c.Participants[i].Clone()
	}
	out.Messages = make([]Message, len(c.Messages))
	for i := range c.Messages {
		out.Messages[i] = c.Messages[i].Clone()
	}
	out.UnreadCounts = make(map[uuid.UUID]int, len(c.UnreadCounts))
	for k, v := range c.UnreadCounts {
		out.UnreadCounts[k] = v
	}
	if c.Name != nil {
		name := *c.Name
		out.Name = &name
	}
	if c.LastMessageAt != nil {
		at := *c.LastMessageAt
		out.LastMessageAt = &at
	}
	return &out
}

type CreateConversationRequest struct {
	// Participants are emails or free-text names, resolved by the user
	// directory on a best-effort basis.
	Participants   []string `json:"participants" binding:"required,min=1"`
	Name           *string  `json:"name,omitempty"`
	InitialMessage *string  `json:"initial_message,omitempty"`
}

type AddParticipantsRequest struct {
	Participants []string `json:"participants" binding:"required,min=1"`
}

type RenameConversationRequest struct {
	Name string `json:"name" binding:"required"`
}

// ConversationView renders a conversation for one viewer, flattening the
// per-participant unread map into the viewer's own count.
type ConversationView struct {
	Conversation
	UnreadCount int `json:"unread_count"`
}

func NewConversationView(c *Conversation, viewerID uuid.UUID) ConversationView {
	return ConversationView{
		Conversation: *c,
		UnreadCount:  c.UnreadFor(viewerID),
	}
}
