package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a tailoring run record
type Run struct {
	ID               uuid.UUID  `json:"id"`
	RequestedProfile string     `json:"requested_profile"`
	Profile          string     `json:"profile"`
	DataDir          string     `json:"data_dir"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// Run status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ArtifactCombined is the section name under which the combined document is stored.
// Standalone sections use their own keys (personal, experience, ...).
const ArtifactCombined = "resume_data"
