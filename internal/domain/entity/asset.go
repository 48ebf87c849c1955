package entity

import (
	"time"

	"github.com/google/uuid"
)

// Asset is a single item of the applicant's estate.
type Asset struct {
	ID             uuid.UUID
	ApplicantID    uuid.UUID
	AssetType      string // e.g. property, vehicle, account, shares
	Description    string
	EstimatedValue float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
