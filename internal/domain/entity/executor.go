package entity

import (
	"time"

	"github.com/google/uuid"
)

// Executor is a person appointed to carry out the will.
type Executor struct {
	ID           uuid.UUID
	ApplicantID  uuid.UUID
	FullName     string
	Relationship string
	Email        string
	Phone        string
	IsPrimary    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
