package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/herdsourcing/backend/internal/apperrors"
	"github.com/herdsourcing/backend/internal/models"
)

// ProjectStore owns projects, their roles and the reports filed against
// them. The activity feed builder reads project snapshots from here.
type ProjectStore struct {
	mu       sync.RWMutex
	projects map[uuid.UUID]*models.Project
	order    []uuid.UUID
	reports  []models.ProjectReport
	now      func() time.Time
}

func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		projects: make(map[uuid.UUID]*models.Project),
		now:      time.Now,
	}
}

func (s *ProjectStore) Create(owner models.User, req models.CreateProjectRequest) (*models.Project, error) {
	if !req.Status.Valid() {
		return nil, apperrors.Newf(apperrors.CodeInvalidInput, "unknown project status %q", req.Status)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.InvalidInput("project title cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now()
	project := &models.Project{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Owner:       owner,
		Tags:        append([]string(nil), req.Tags...),
		Roles:       make([]models.ProjectRole, 0, len(req.Roles)),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	for _, r := range req.Roles {
		project.Roles = append(project.Roles, models.ProjectRole{
			ID:          uuid.New(),
			Title:       r.Title,
			Description: r.Description,
		})
	}

	s.projects[project.ID] = project
	s.order = append(s.order, project.ID)
	return project.Clone(), nil
}

func (s *ProjectStore) GetByID(id uuid.UUID) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, apperrors.Newf(apperrors.CodeNotFound, "project %s not found", id)
	}
	return project.Clone(), nil
}

// List returns every project in creation order.
func (s *ProjectStore) List() []*models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Project, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.projects[id].Clone())
	}
	return out
}

// Update applies partial field updates, matching the original PUT
// semantics: only the provided fields change.
func (s *ProjectStore) Update(id uuid.UUID, req models.UpdateProjectRequest) (*models.Project, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, apperrors.Newf(apperrors.CodeInvalidInput, "unknown project status %q", *req.Status)
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, apperrors.InvalidInput("project title cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, apperrors.Newf(apperrors.CodeNotFound, "project %s not found", id)
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Tags != nil {
		project.Tags = append([]string(nil), (*req.Tags)...)
	}
	project.UpdatedAt = s.now()
	return project.Clone(), nil
}

func (s *ProjectStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return apperrors.Newf(apperrors.CodeNotFound, "project %s not found", id)
	}
	delete(s.projects, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// AssignRole marks a role filled and records the assignee.
func (s *ProjectStore) AssignRole(projectID, roleID uuid.UUID, assignee models.User) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[projectID]
	if !ok {
		return nil, apperrors.Newf(apperrors.CodeNotFound, "project %s not found", projectID)
	}
	for i := range project.Roles {
		if project.Roles[i].ID != roleID {
			continue
		}
		if project.Roles[i].Filled {
			return nil, apperrors.InvalidOperation("role is already filled")
		}
		project.Roles[i].Filled = true
		project.Roles[i].Assignee = &assignee
		project.UpdatedAt = s.now()
		return project.Clone(), nil
	}
	return nil, apperrors.Newf(apperrors.CodeNotFound, "role %s not found", roleID)
}

// Report files a report against a project for admin review.
func (s *ProjectStore) Report(projectID, reporterID uuid.UUID, reason string) (*models.ProjectReport, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, apperrors.InvalidInput("report reason cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[projectID]; !ok {
		return nil, apperrors.Newf(apperrors.CodeNotFound, "project %s not found", projectID)
	}
	report := models.ProjectReport{
		ID:         uuid.New(),
		ProjectID:  projectID,
		ReporterID: reporterID,
		Reason:     reason,
		CreatedAt:  s.now(),
	}
	s.reports = append(s.reports, report)
	return &report, nil
}

// ByUser splits projects into those a user owns and those where they
// fill a role.
func (s *ProjectStore) ByUser(userID uuid.UUID) models.UserProjects {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := models.UserProjects{
		Created:     []*models.Project{},
		Contributed: []*models.Project{},
	}
	for _, id := range s.order {
		project := s.projects[id]
		if project.Owner.ID == userID {
			result.Created = append(result.Created, project.Clone())
			continue
		}
		for _, role := range project.Roles {
			if role.Assignee != nil && role.Assignee.ID == userID {
				result.Contributed = append(result.Contributed, project.Clone())
				break
			}
		}
	}
	return result
}
