package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPChallenge is a pending one-time password issued during sponsored
// onboarding. The code itself is never stored, only its bcrypt hash.
type OTPChallenge struct {
	ID         uuid.UUID
	Email      string
	CodeHash   string
	ExpiresAt  time.Time
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

// Usable reports whether the challenge can still be redeemed at the given time.
func (c *OTPChallenge) Usable(now time.Time) bool {
	return c.ConsumedAt == nil && now.Before(c.ExpiresAt)
}
