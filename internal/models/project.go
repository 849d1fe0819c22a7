package models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	StatusBrainstorming ProjectStatus = "brainstorming"
	StatusRecruiting    ProjectStatus = "recruiting"
	StatusOpen          ProjectStatus = "open"
	StatusInProgress    ProjectStatus = "in-progress"
	StatusCompleted     ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusBrainstorming, StatusRecruiting, StatusOpen, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type ProjectRole struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Filled      bool      `json:"filled"`
	Assignee    *User     `json:"assignee,omitempty"`
}

type Project struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Owner       User          `json:"owner"`
	Tags        []string      `json:"tags"`
	Roles       []ProjectRole `json:"roles"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (p *Project) Clone() *Project {
	out := *p
	out.Owner = p.Owner.Clone()
	out.Tags = append([]string(nil), p.Tags...)
	out.Roles = make([]ProjectRole, len(p.Roles))
	for i, r := range p.Roles {
		out.Roles[i] = r
		if r.Assignee != nil {
			a := r.Assignee.Clone()
			out.Roles[i].Assignee = &a
		}
	}
	return &out
}

type RoleInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type CreateProjectRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description" binding:"required"`
	Status      ProjectStatus `json:"status" binding:"required"`
	Tags        []string      `json:"tags,omitempty"`
	Roles       []RoleInput   `json:"roles,omitempty"`
}

type UpdateProjectRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
	Tags        *[]string      `json:"tags,omitempty"`
}

type ReportProjectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ProjectReport struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	ReporterID uuid.UUID `json:"reporter_id"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserProjects groups a user's projects for profile views.
type UserProjects struct {
	Created     []*Project `json:"created"`
	Contributed []*Project `json:"contributed"`
}
