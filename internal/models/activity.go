package models

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityProjectCreated ActivityType = "project-created"
	ActivityJoinRequest    ActivityType = "join-request"
	ActivityRoleFilled     ActivityType = "role-filled"
)

// ActivityItem is a derived view record, recomputed on every fetch and
// never stored. IDs are deterministic from the source event so repeated
// builds over unchanged inputs yield identical output.
type ActivityItem struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	ProjectID   *uuid.UUID   `json:"project_id,omitempty"`
	UserID      *uuid.UUID   `json:"user_id,omitempty"`
}
