package repository

import (
	"context"
	"errors"

	"testament/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRegistrationKeyNotFound is returned when a key string or applicant binding
// does not resolve to a stored key.
var ErrRegistrationKeyNotFound = errors.New("registration key not found")

// ErrRegistrationKeyExists is returned when a second key is created for an
// applicant that already holds one.
var ErrRegistrationKeyExists = errors.New("registration key already exists for applicant")

// RegistrationKeyRepository persists the 1:1 binding between applicants and
// their registration keys. The key string and the applicant ID each carry a
// unique index.
type RegistrationKeyRepository interface {
	// Create persists a newly minted key.
	Create(ctx context.Context, key *entity.RegistrationKey) error

	// FindByApplicant retrieves the key bound to an applicant, if any.
	FindByApplicant(ctx context.Context, applicantID uuid.UUID) (*entity.RegistrationKey, error)

	// FindByKey resolves an opaque key string to its stored record.
	FindByKey(ctx context.Context, key string) (*entity.RegistrationKey, error)
}
