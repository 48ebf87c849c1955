package model

import (
	"time"

	"github.com/google/uuid"
)

// ExecutorModel is the GORM-specific struct for the 'executors' table.
type ExecutorModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ApplicantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName     string    `gorm:"type:varchar(200);not null"`
	Relationship string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(32)"`
	IsPrimary    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Applicant ApplicantModel `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ExecutorModel) TableName() string {
	return "executors"
}

// GuardianModel is the GORM-specific struct for the 'guardians' table.
type GuardianModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ApplicantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName     string    `gorm:"type:varchar(200);not null"`
	Relationship string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(32)"`
	WardName     string    `gorm:"type:varchar(200);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Applicant ApplicantModel `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (GuardianModel) TableName() string {
	return "guardians"
}
