package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/herdsourcing/backend/internal/models"
	"github.com/herdsourcing/backend/internal/service"
	"github.com/herdsourcing/backend/internal/store"
)

type ConversationHandler struct {
	conversations *store.ConversationStore
	blocks        *store.BlockList
	messaging     *service.MessagingService
	log           *zap.Logger
}

func NewConversationHandler(
	conversations *store.ConversationStore,
	blocks *store.BlockList,
	messaging *service.MessagingService,
	log *zap.Logger,
) *ConversationHandler {
	return &ConversationHandler{
		conversations: conversations,
		blocks:        blocks,
		messaging:     messaging,
		log:           log,
	}
}

// GetConversations returns the conversations visible to the current
// user, with the unread count rendered for them.
func (h *ConversationHandler) GetConversations(c *gin.Context) {
	uid := currentUserID(c)

	visible := h.blocks.FilterVisibleConversations(uid, h.conversations.List())

	views := make([]models.ConversationView, 0, len(visible))
	for _, conv := range visible {
		if !conv.HasParticipant(uid) {
			continue
		}
		views = append(views, models.NewConversationView(conv, uid))
	}

	c.JSON(http.StatusOK, views)
}

// CreateConversation starts a conversation with participants given as
// emails or free-text names, optionally sending an initial message.
func (h *ConversationHandler) CreateConversation(c *gin.Context) {
	var req models.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	uid := currentUserID(c)
	conv, err := h.conversations.Create(uid, req.Participants, req.Name)
	if err != nil {
		RespondError(c, err)
		return
	}

	if req.InitialMessage != nil {
		if _, err := h.messaging.Send(conv.ID, uid, *req.InitialMessage, models.MessageTypeNormal, nil, nil); err != nil {
			h.log.Warn("initial message rejected",
				zap.String("conversation_id", conv.ID.String()),
				zap.Error(err),
			)
		} else if conv, err = h.conversations.GetByID(conv.ID); err != nil {
			RespondError(c, err)
			return
		}
	}

	c.JSON(http.StatusCreated, models.NewConversationView(conv, uid))
}

// GetConversation returns a specific conversation
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid conversation ID")
		return
	}

	uid := currentUserID(c)
	conv, err := h.conversations.GetByID(conversationID)
	if err != nil {
		RespondError(c, err)
		return
	}
	if !conv.HasParticipant(uid) {
		ErrorResponse(c, http.StatusForbidden, "Access denied")
		return
	}

	c.JSON(http.StatusOK, models.NewConversationView(conv, uid))
}

// AddParticipants adds members to an existing conversation; identifiers
// resolving to current participants are ignored.
func (h *ConversationHandler) AddParticipants(c *gin.Context) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid conversation ID")
		return
	}

	var req models.AddParticipantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	uid := currentUserID(c)
	conv, err := h.conversations.AddParticipants(conversationID, req.Participants)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewConversationView(conv, uid))
}

// Rename updates the conversation's display name.
func (h *ConversationHandler) Rename(c *gin.Context) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid conversation ID")
		return
	}

	var req models.RenameConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.conversations.Rename(conversationID, req.Name); err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conversation renamed"})
}

// MarkRead clears the current user's unread count for a conversation.
func (h *ConversationHandler) MarkRead(c *gin.Context) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid conversation ID")
		return
	}

	if err := h.conversations.MarkRead(conversationID, currentUserID(c)); err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conversation marked as read"})
}

// DeleteConversation removes a conversation outright.
func (h *ConversationHandler) DeleteConversation(c *gin.Context) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid conversation ID")
		return
	}

	if err := h.conversations.Delete(conversationID); err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conversation deleted"})
}
