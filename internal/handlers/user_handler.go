package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/herdsourcing/backend/internal/store"
)

type UserHandler struct {
	users    *store.UserDirectory
	projects *store.ProjectStore
}

func NewUserHandler(users *store.UserDirectory, projects *store.ProjectStore) *UserHandler {
	return &UserHandler{
		users:    users,
		projects: projects,
	}
}

// GetUser returns another user's profile.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserProjects returns the projects a user created and contributes to.
func (h *UserHandler) GetUserProjects(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if _, err := h.users.GetByID(userID); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.projects.ByUser(userID))
}
