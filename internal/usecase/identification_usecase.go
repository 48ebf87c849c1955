package usecase

import (
	"context"
	"time"

	"testament/internal/domain/entity"

	"github.com/google/uuid"
)

// AddIdentificationInput registers a new identification document.
type AddIdentificationInput struct {
	DocumentType   string    `json:"document_type" validate:"required,oneof=passport national_id drivers_license"`
	DocumentNumber string    `json:"document_number" validate:"required,max=100"`
	IssuingCountry string    `json:"issuing_country" validate:"required,max=100"`
	ExpiryDate     time.Time `json:"expiry_date" validate:"required"`
	FilePath       string    `json:"file_path" validate:"omitempty,max=500"`
}

// UpdateIdentificationInput patches a document; nil fields are left unchanged.
type UpdateIdentificationInput struct {
	ApplicantID    *uuid.UUID `json:"applicant_id" validate:"omitempty"`
	DocumentType   *string    `json:"document_type" validate:"omitempty,oneof=passport national_id drivers_license"`
	DocumentNumber *string    `json:"document_number" validate:"omitempty,max=100"`
	IssuingCountry *string    `json:"issuing_country" validate:"omitempty,max=100"`
	ExpiryDate     *time.Time `json:"expiry_date"`
	FilePath       *string    `json:"file_path" validate:"omitempty,max=500"`
}

// IdentificationUsecase manages identification documents for an applicant.
type IdentificationUsecase interface {
	Add(ctx context.Context, applicantID uuid.UUID, input *AddIdentificationInput) (*entity.Identification, error)
	List(ctx context.Context, applicantID uuid.UUID) ([]*entity.Identification, error)
	Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.Identification, error)
	Update(ctx context.Context, applicantID, id uuid.UUID, input *UpdateIdentificationInput) (*entity.Identification, error)
	Delete(ctx context.Context, applicantID, id uuid.UUID) error
}
