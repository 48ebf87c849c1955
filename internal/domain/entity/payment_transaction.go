package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the lifecycle state of a payment transaction.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentTransaction records a registration fee charge attempt against the
// external payment gateway.
type PaymentTransaction struct {
	ID          uuid.UUID
	ApplicantID uuid.UUID
	Amount      float64
	Currency    string
	Status      PaymentStatus
	Reference   string // Gateway-issued reference for the charge.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
