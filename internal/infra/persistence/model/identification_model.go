package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentificationModel is the GORM-specific struct for the 'identifications' table.
type IdentificationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ApplicantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentType   string    `gorm:"type:varchar(50);not null"`
	DocumentNumber string    `gorm:"type:varchar(100);not null"`
	IssuingCountry string    `gorm:"type:varchar(100);not null"`
	ExpiryDate     time.Time `gorm:"not null"`
	FilePath       string    `gorm:"type:varchar(500)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Applicant ApplicantModel `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (IdentificationModel) TableName() string {
	return "identifications"
}
