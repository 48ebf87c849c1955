package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicantModel is the GORM-specific struct for the 'applicants' table.
// It is the identity root every other table references.
type ApplicantModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName       string    `gorm:"type:varchar(200);not null"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone          string    `gorm:"type:varchar(32)"`
	CurrentStep    int       `gorm:"not null;default:1"`
	IsComplete     bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	LastModifiedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ApplicantModel) TableName() string {
	return "applicants"
}
