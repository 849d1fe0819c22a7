package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/herdsourcing/backend/internal/apperrors"
	"github.com/herdsourcing/backend/internal/models"
)

func testOwner() models.User {
	return models.User{ID: uuid.New(), Email: "jlee@ucdavis.edu", DisplayName: "Jordan Lee"}
}

func TestProjectStore_CreateAndGet(t *testing.T) {
	req := require.New(t)
	projects := NewProjectStore()

	created, err := projects.Create(testOwner(), models.CreateProjectRequest{
		Title:       "Campus Sustainability App",
		Description: "Track and gamify sustainability efforts.",
		Status:      models.StatusOpen,
		Tags:        []string{"Design"},
		Roles:       []models.RoleInput{{Title: "Frontend Developer"}},
	})
	req.NoError(err)
	req.Len(created.Roles, 1)
	req.False(created.Roles[0].Filled)

	got, err := projects.GetByID(created.ID)
	req.NoError(err)
	req.Equal(created.Title, got.Title)
}

func TestProjectStore_CreateRejectsUnknownStatus(t *testing.T) {
	projects := NewProjectStore()

	_, err := projects.Create(testOwner(), models.CreateProjectRequest{
		Title:       "X",
		Description: "Y",
		Status:      models.ProjectStatus("archived"),
	})
	require.Equal(t, apperrors.CodeInvalidInput, apperrors.CodeOf(err))
}

func TestProjectStore_UpdatePartialFields(t *testing.T) {
	req := require.New(t)
	projects := NewProjectStore()

	created, err := projects.Create(testOwner(), models.CreateProjectRequest{
		Title:       "Aggie Events Calendar",
		Description: "Centralized events platform.",
		Status:      models.StatusOpen,
	})
	req.NoError(err)

	status := models.StatusCompleted
	updated, err := projects.Update(created.ID, models.UpdateProjectRequest{Status: &status})
	req.NoError(err)
	req.Equal(models.StatusCompleted, updated.Status)
	// Untouched fields survive.
	req.Equal("Aggie Events Calendar", updated.Title)
}

func TestProjectStore_DeleteIsStrict(t *testing.T) {
	req := require.New(t)
	projects := NewProjectStore()

	created, err := projects.Create(testOwner(), models.CreateProjectRequest{
		Title: "X", Description: "Y", Status: models.StatusOpen,
	})
	req.NoError(err)

	req.NoError(projects.Delete(created.ID))
	req.Equal(apperrors.CodeNotFound, apperrors.CodeOf(projects.Delete(created.ID)))
}

func TestProjectStore_AssignRole(t *testing.T) {
	req := require.New(t)
	projects := NewProjectStore()
	owner := testOwner()

	created, err := projects.Create(owner, models.CreateProjectRequest{
		Title:       "Campus Sustainability App",
		Description: "Track and gamify sustainability efforts.",
		Status:      models.StatusOpen,
		Roles:       []models.RoleInput{{Title: "UX Designer"}},
	})
	req.NoError(err)

	sarah := models.User{ID: uuid.New(), Email: "skim@ucdavis.edu", DisplayName: "Sarah Kim"}
	updated, err := projects.AssignRole(created.ID, created.Roles[0].ID, sarah)
	req.NoError(err)
	req.True(updated.Roles[0].Filled)
	req.Equal(sarah.ID, updated.Roles[0].Assignee.ID)

	// A filled role cannot be assigned again.
	_, err = projects.AssignRole(created.ID, created.Roles[0].ID, sarah)
	req.Equal(apperrors.CodeInvalidOperation, apperrors.CodeOf(err))

	// Contributed lookup sees the assignment.
	byUser := projects.ByUser(sarah.ID)
	req.Empty(byUser.Created)
	req.Len(byUser.Contributed, 1)

	byOwner := projects.ByUser(owner.ID)
	req.Len(byOwner.Created, 1)
	req.Empty(byOwner.Contributed)
}

func TestProjectStore_ReportRequiresReason(t *testing.T) {
	req := require.New(t)
	projects := NewProjectStore()

	created, err := projects.Create(testOwner(), models.CreateProjectRequest{
		Title: "X", Description: "Y", Status: models.StatusOpen,
	})
	req.NoError(err)

	_, err = projects.Report(created.ID, uuid.New(), "  ")
	req.Equal(apperrors.CodeInvalidInput, apperrors.CodeOf(err))

	report, err := projects.Report(created.ID, uuid.New(), "spam")
	req.NoError(err)
	req.Equal(created.ID, report.ProjectID)
}
