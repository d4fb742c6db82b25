package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProjectUpdate struct {
	Title       *string
	Description *string
}

// UserProject is the assignment of a project to a user.
type UserProject struct {
	UserID     uuid.UUID
	ProjectID  uuid.UUID
	AssignedAt time.Time
}
