package models

import (
	"time"

	"github.com/google/uuid"
)

// BlockRelation is a one-directional suppression: the blocker stops
// seeing conversations containing the blocked user and cannot send into
// them. At most one relation exists per ordered pair.
type BlockRelation struct {
	BlockerID uuid.UUID `json:"blocker_id"`
	BlockedID uuid.UUID `json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}
