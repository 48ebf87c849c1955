package entity

import (
	"time"

	"github.com/google/uuid"
)

// PersonalDetails holds the applicant's extended biographical data. Exactly one
// record may exist per applicant.
type PersonalDetails struct {
	ID            uuid.UUID
	ApplicantID   uuid.UUID
	FirstName     string
	MiddleName    string
	LastName      string
	DateOfBirth   time.Time
	Gender        string
	MaritalStatus string
	Address       string
	City          string
	State         string
	PostalCode    string
	Country       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
