// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"testament/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrApplicantNotFound is returned when no applicant matches the lookup.
var ErrApplicantNotFound = errors.New("applicant not found")

// ApplicantRepository defines the standard operations for applicant persistence.
type ApplicantRepository interface {
	// Create persists a new applicant.
	Create(ctx context.Context, applicant *entity.Applicant) error

	// FindByID retrieves a single applicant by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Applicant, error)

	// FindByEmail retrieves a single applicant by email address.
	FindByEmail(ctx context.Context, email string) (*entity.Applicant, error)

	// Update persists changes to an existing applicant.
	Update(ctx context.Context, applicant *entity.Applicant) error

	// Touch bumps LastModifiedAt and, when step is greater than the stored
	// CurrentStep, advances the progress marker. Called alongside every write
	// to an owned record, inside the same transaction.
	Touch(ctx context.Context, id uuid.UUID, step int) error

	// Delete removes the applicant; owned records cascade at the database level.
	Delete(ctx context.Context, id uuid.UUID) error
}
