package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identification is a government-issued document submitted by the applicant.
type Identification struct {
	ID             uuid.UUID
	ApplicantID    uuid.UUID
	DocumentType   string // e.g. passport, national_id, drivers_license
	DocumentNumber string
	IssuingCountry string
	ExpiryDate     time.Time
	FilePath       string // Local storage path of the uploaded scan.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
