package entity

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationKey is the opaque per-applicant token that stands in for a login
// session during registration. At most one key exists per applicant; issuance
// is idempotent and returns the existing key when one is already bound.
type RegistrationKey struct {
	ID          uuid.UUID
	Key         string    // Opaque, cryptographically random token; unique.
	ApplicantID uuid.UUID // The owning applicant; unique (one key per applicant).
	IsUsed      bool      // Stored for future single-use enforcement; not checked today.
	CreatedAt   time.Time
}

// ExpiresAfter reports whether the key is older than ttl. A zero ttl disables
// expiration entirely.
func (k *RegistrationKey) ExpiresAfter(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}

	return now.After(k.CreatedAt.Add(ttl))
}
