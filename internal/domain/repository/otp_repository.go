package repository

import (
	"context"
	"errors"

	"testament/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOTPNotFound is returned when no pending challenge exists for an email.
var ErrOTPNotFound = errors.New("otp challenge not found")

// OTPRepository persists one-time-password challenges for sponsored onboarding.
type OTPRepository interface {
	// Create persists a new challenge, superseding any earlier one for the email.
	Create(ctx context.Context, challenge *entity.OTPChallenge) error

	// FindLatestByEmail retrieves the most recent challenge for an email.
	FindLatestByEmail(ctx context.Context, email string) (*entity.OTPChallenge, error)

	// MarkConsumed records that a challenge has been redeemed.
	MarkConsumed(ctx context.Context, id uuid.UUID) error
}
