package entity

import (
	"time"

	"github.com/google/uuid"
)

// Guardian is a person appointed to care for a named minor or dependent.
type Guardian struct {
	ID           uuid.UUID
	ApplicantID  uuid.UUID
	FullName     string
	Relationship string
	Email        string
	Phone        string
	WardName     string // The minor or dependent this guardian is appointed for.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
