package usecase

import (
	"context"
	"time"

	"testament/internal/domain/entity"

	"github.com/google/uuid"
)

// AddBeneficiaryInput names a new beneficiary.
type AddBeneficiaryInput struct {
	FullName     string    `json:"full_name" validate:"required,max=200"`
	Relationship string    `json:"relationship" validate:"required,max=100"`
	Email        string    `json:"email" validate:"omitempty,email"`
	Phone        string    `json:"phone" validate:"omitempty,max=32"`
	DateOfBirth  time.Time `json:"date_of_birth"`
}

// UpdateBeneficiaryInput patches a beneficiary; nil fields are left unchanged.
type UpdateBeneficiaryInput struct {
	ApplicantID  *uuid.UUID `json:"applicant_id" validate:"omitempty"`
	FullName     *string    `json:"full_name" validate:"omitempty,max=200"`
	Relationship *string    `json:"relationship" validate:"omitempty,max=100"`
	Email        *string    `json:"email" validate:"omitempty,email"`
	Phone        *string    `json:"phone" validate:"omitempty,max=32"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
}

// BeneficiaryUsecase manages beneficiaries for an applicant.
type BeneficiaryUsecase interface {
	Add(ctx context.Context, applicantID uuid.UUID, input *AddBeneficiaryInput) (*entity.Beneficiary, error)
	List(ctx context.Context, applicantID uuid.UUID) ([]*entity.Beneficiary, error)
	Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.Beneficiary, error)
	Update(ctx context.Context, applicantID, id uuid.UUID, input *UpdateBeneficiaryInput) (*entity.Beneficiary, error)
	Delete(ctx context.Context, applicantID, id uuid.UUID) error
}
