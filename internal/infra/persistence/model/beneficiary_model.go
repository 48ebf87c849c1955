package model

import (
	"time"

	"github.com/google/uuid"
)

// BeneficiaryModel is the GORM-specific struct for the 'beneficiaries' table.
type BeneficiaryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ApplicantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName     string    `gorm:"type:varchar(200);not null"`
	Relationship string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(32)"`
	DateOfBirth  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Applicant ApplicantModel `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BeneficiaryModel) TableName() string {
	return "beneficiaries"
}
