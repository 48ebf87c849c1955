package entity

import (
	"time"

	"github.com/google/uuid"
)

// Beneficiary is a person named to receive part of the applicant's estate.
type Beneficiary struct {
	ID           uuid.UUID
	ApplicantID  uuid.UUID
	FullName     string
	Relationship string
	Email        string
	Phone        string
	DateOfBirth  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
