package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/herdsourcing/backend/internal/models"
	"github.com/herdsourcing/backend/internal/store"
)

type ProjectHandler struct {
	projects *store.ProjectStore
	users    *store.UserDirectory
}

func NewProjectHandler(projects *store.ProjectStore, users *store.UserDirectory) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
		users:    users,
	}
}

// GetProjects returns all projects
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.projects.List())
}

// GetProject returns a single project with full details
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.projects.GetByID(projectID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject creates a project owned by the current user.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	owner, err := h.users.GetByID(currentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}

	project, err := h.projects.Create(*owner, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject applies partial updates; only the owner may edit.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.projects.GetByID(projectID)
	if err != nil {
		RespondError(c, err)
		return
	}
	if existing.Owner.ID != currentUserID(c) {
		ErrorResponse(c, http.StatusForbidden, "Only the owner can edit a project")
		return
	}

	project, err := h.projects.Update(projectID, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project; only the owner may delete.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	existing, err := h.projects.GetByID(projectID)
	if err != nil {
		RespondError(c, err)
		return
	}
	if existing.Owner.ID != currentUserID(c) {
		ErrorResponse(c, http.StatusForbidden, "Only the owner can delete a project")
		return
	}

	if err := h.projects.Delete(projectID); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted", "project": existing})
}

// AssignRole fills a role on a project with a user.
func (h *ProjectHandler) AssignRole(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}
	roleID, err := uuid.Parse(c.Param("role_id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid role ID")
		return
	}

	var req struct {
		AssigneeID uuid.UUID `json:"assignee_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.projects.GetByID(projectID)
	if err != nil {
		RespondError(c, err)
		return
	}
	if existing.Owner.ID != currentUserID(c) {
		ErrorResponse(c, http.StatusForbidden, "Only the owner can assign roles")
		return
	}

	assignee, err := h.users.GetByID(req.AssigneeID)
	if err != nil {
		RespondError(c, err)
		return
	}

	project, err := h.projects.AssignRole(projectID, roleID, *assignee)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// ReportProject files a report against a project for admin review.
func (h *ProjectHandler) ReportProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req models.ReportProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.projects.Report(projectID, currentUserID(c), req.Reason)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}
