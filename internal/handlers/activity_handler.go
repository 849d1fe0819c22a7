package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/herdsourcing/backend/internal/service"
	"github.com/herdsourcing/backend/internal/store"
)

type ActivityHandler struct {
	projects      *store.ProjectStore
	conversations *store.ConversationStore
}

func NewActivityHandler(projects *store.ProjectStore, conversations *store.ConversationStore) *ActivityHandler {
	return &ActivityHandler{
		projects:      projects,
		conversations: conversations,
	}
}

// GetActivity rebuilds the feed from current store snapshots. The feed
// is derived on every fetch and never persisted.
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	limit := service.DefaultFeedLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			ErrorResponse(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	items := service.BuildActivityFeed(h.projects.List(), h.conversations.List(), limit)
	c.JSON(http.StatusOK, items)
}
