// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// StartRegistrationInput bootstraps a new will registration.
type StartRegistrationInput struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
}

// SponsoredEmailInput opens the OTP-gated sponsored onboarding flow.
type SponsoredEmailInput struct {
	Email          string `json:"email" validate:"required,email"`
	SponsorshipKey string `json:"sponsorship_key" validate:"required"`
}

// VerifySponsoredOTPInput redeems a one-time password for a registration key.
type VerifySponsoredOTPInput struct {
	Email    string `json:"email" validate:"required,email"`
	Code     string `json:"code" validate:"required,len=6,numeric"`
	FullName string `json:"full_name" validate:"required,max=200"`
}

// ResendKeyInput asks for the registration key to be re-delivered.
type ResendKeyInput struct {
	Email string `json:"email" validate:"required,email"`
}

// --- Output DTOs ---

// RegistrationOutput is returned whenever a registration key is issued.
type RegistrationOutput struct {
	ApplicationID   uuid.UUID `json:"application_id"`
	RegistrationKey string    `json:"registration_key"`
}

// RegistrationSummary reports an applicant's progress through the flow.
type RegistrationSummary struct {
	ApplicationID   uuid.UUID `json:"application_id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	CurrentStep     int       `json:"current_step"`
	IsComplete      bool      `json:"is_complete"`
	Beneficiaries   int       `json:"beneficiaries"`
	Assets          int       `json:"assets"`
	Allocations     int       `json:"allocations"`
	Executors       int       `json:"executors"`
	Guardians       int       `json:"guardians"`
	Identifications int       `json:"identifications"`
}

// RegistrationUsecase is the session abstraction that replaces a conventional
// login for applicants mid-registration.
type RegistrationUsecase interface {
	// StartRegistration creates the applicant and issues their key.
	StartRegistration(ctx context.Context, input *StartRegistrationInput) (*RegistrationOutput, error)

	// GenerateAndSaveKey issues a key for the applicant. Idempotent: an
	// existing binding is returned as-is rather than replaced.
	GenerateAndSaveKey(ctx context.Context, applicantID uuid.UUID) (string, error)

	// ValidateKey resolves an opaque key to its owning applicant. Callers must
	// treat a failure as unauthorized and reject the request at the boundary.
	ValidateKey(ctx context.Context, key string) (uuid.UUID, error)

	// ValidateSponsorshipKey gates the sponsored flow.
	ValidateSponsorshipKey(ctx context.Context, sponsorshipKey string) (bool, error)

	// ResendRegistrationKey re-delivers the key for an email. The outcome is
	// identical whether or not the email is registered.
	ResendRegistrationKey(ctx context.Context, email string) error

	// SubmitSponsoredEmail issues and dispatches an OTP for sponsored onboarding.
	SubmitSponsoredEmail(ctx context.Context, input *SponsoredEmailInput) error

	// VerifySponsoredOTP redeems an OTP, creating the applicant and key.
	VerifySponsoredOTP(ctx context.Context, input *VerifySponsoredOTPInput) (*RegistrationOutput, error)

	// GetSummary reports registration progress for an applicant.
	GetSummary(ctx context.Context, applicantID uuid.UUID) (*RegistrationSummary, error)

	// ResumeQR renders a QR code that re-opens this registration on another device.
	ResumeQR(ctx context.Context, applicantID uuid.UUID) ([]byte, error)

	// DeleteApplicant removes the applicant and all owned records (admin only).
	DeleteApplicant(ctx context.Context, applicantID uuid.UUID) error
}
