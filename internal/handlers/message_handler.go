package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/herdsourcing/backend/internal/models"
	"github.com/herdsourcing/backend/internal/service"
)

type MessageHandler struct {
	messaging *service.MessagingService
}

func NewMessageHandler(messaging *service.MessagingService) *MessageHandler {
	return &MessageHandler{messaging: messaging}
}

// SendMessage sends a normal or join-request message into a conversation.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.messaging.Send(req.ConversationID, currentUserID(c), req.Content, req.Type, req.ProjectID, req.RoleID)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// SendJoinRequest sends a join-request message tied to a project role.
func (h *MessageHandler) SendJoinRequest(c *gin.Context) {
	var req models.SendJoinRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.messaging.SendJoinRequest(req.ConversationID, currentUserID(c), req.Content, req.ProjectID, req.RoleID)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}
