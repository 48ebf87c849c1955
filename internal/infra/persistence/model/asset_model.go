package model

import (
	"time"

	"github.com/google/uuid"
)

// AssetModel is the GORM-specific struct for the 'assets' table.
type AssetModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ApplicantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AssetType      string    `gorm:"type:varchar(50);not null"`
	Description    string    `gorm:"type:varchar(500);not null"`
	EstimatedValue float64   `gorm:"type:numeric(15,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Applicant ApplicantModel `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AssetModel) TableName() string {
	return "assets"
}

// AssetAllocationModel is the GORM-specific struct for the 'asset_allocations'
// table. The composite unique index rejects a second allocation for the same
// (applicant, asset, beneficiary) tuple at the database level.
type AssetAllocationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ApplicantID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_allocation_tuple"`
	AssetID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_allocation_tuple"`
	BeneficiaryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_allocation_tuple"`
	Percentage    float64   `gorm:"type:numeric(5,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Applicant   ApplicantModel   `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
	Asset       AssetModel       `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
	Beneficiary BeneficiaryModel `gorm:"foreignKey:BeneficiaryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AssetAllocationModel) TableName() string {
	return "asset_allocations"
}
