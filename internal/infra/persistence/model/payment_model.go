package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentTransactionModel is the GORM-specific struct for the
// 'payment_transactions' table. Rows are append-only; failed charges stay on
// record next to the succeeded one.
type PaymentTransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	Currency    string    `gorm:"type:varchar(3);not null"`
	Status      string    `gorm:"type:varchar(20);not null"`
	Reference   string    `gorm:"type:varchar(128);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Applicant ApplicantModel `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentTransactionModel) TableName() string {
	return "payment_transactions"
}
