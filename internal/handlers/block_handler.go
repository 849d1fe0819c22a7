package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/herdsourcing/backend/internal/store"
)

type BlockHandler struct {
	blocks *store.BlockList
}

func NewBlockHandler(blocks *store.BlockList) *BlockHandler {
	return &BlockHandler{blocks: blocks}
}

// GetBlocked lists the current user's block relations.
func (h *BlockHandler) GetBlocked(c *gin.Context) {
	c.JSON(http.StatusOK, h.blocks.Blocked(currentUserID(c)))
}

// BlockUser adds a user to the current user's block list.
func (h *BlockHandler) BlockUser(c *gin.Context) {
	blockedID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.blocks.Block(currentUserID(c), blockedID); err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User blocked"})
}

// UnblockUser removes a user from the current user's block list.
func (h *BlockHandler) UnblockUser(c *gin.Context) {
	blockedID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	h.blocks.Unblock(currentUserID(c), blockedID)
	c.JSON(http.StatusOK, gin.H{"message": "User unblocked"})
}
