package entity

import (
	"time"

	"github.com/google/uuid"
)

// Allocation percentage bounds.
const (
	MinAllocationPercentage = 0.01
	MaxAllocationPercentage = 100.00
)

// AssetAllocation assigns a percentage of one asset to one beneficiary.
// The (ApplicantID, AssetID, BeneficiaryID) tuple is unique, and both the asset
// and the beneficiary must belong to the same applicant as the allocation.
type AssetAllocation struct {
	ID            uuid.UUID
	ApplicantID   uuid.UUID
	AssetID       uuid.UUID
	BeneficiaryID uuid.UUID
	Percentage    float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
