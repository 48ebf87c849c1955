package model

import (
	"time"

	"github.com/google/uuid"
)

// PersonalDetailsModel is the GORM-specific struct for the 'personal_details'
// table. The unique index on ApplicantID enforces the 1:1 relationship.
type PersonalDetailsModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ApplicantID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	FirstName     string    `gorm:"type:varchar(100);not null"`
	MiddleName    string    `gorm:"type:varchar(100)"`
	LastName      string    `gorm:"type:varchar(100);not null"`
	DateOfBirth   time.Time `gorm:"not null"`
	Gender        string    `gorm:"type:varchar(20)"`
	MaritalStatus string    `gorm:"type:varchar(50)"`
	Address       string    `gorm:"type:varchar(500);not null"`
	City          string    `gorm:"type:varchar(100);not null"`
	State         string    `gorm:"type:varchar(100)"`
	PostalCode    string    `gorm:"type:varchar(20)"`
	Country       string    `gorm:"type:varchar(100);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Applicant ApplicantModel `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PersonalDetailsModel) TableName() string {
	return "personal_details"
}
