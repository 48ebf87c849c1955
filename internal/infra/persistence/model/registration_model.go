package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationKeyModel is the GORM-specific struct for the 'registration_keys'
// table. Both the key string and the applicant binding are unique: one key per
// applicant, one applicant per key.
type RegistrationKeyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Key         string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	IsUsed      bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time

	Applicant ApplicantModel `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RegistrationKeyModel) TableName() string {
	return "registration_keys"
}

// OTPChallengeModel is the GORM-specific struct for the 'otp_challenges' table.
// Only the bcrypt hash of the code is stored, never the code itself.
type OTPChallengeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email      string    `gorm:"type:varchar(255);not null;index"`
	CodeHash   string    `gorm:"type:varchar(128);not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OTPChallengeModel) TableName() string {
	return "otp_challenges"
}
