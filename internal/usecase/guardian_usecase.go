package usecase

import (
	"context"

	"testament/internal/domain/entity"

	"github.com/google/uuid"
)

// AddGuardianInput appoints a guardian for a named ward.
type AddGuardianInput struct {
	FullName     string `json:"full_name" validate:"required,max=200"`
	Relationship string `json:"relationship" validate:"required,max=100"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
	WardName     string `json:"ward_name" validate:"required,max=200"`
}

// UpdateGuardianInput patches a guardian; nil fields are left unchanged.
type UpdateGuardianInput struct {
	ApplicantID  *uuid.UUID `json:"applicant_id" validate:"omitempty"`
	FullName     *string    `json:"full_name" validate:"omitempty,max=200"`
	Relationship *string    `json:"relationship" validate:"omitempty,max=100"`
	Email        *string    `json:"email" validate:"omitempty,email"`
	Phone        *string    `json:"phone" validate:"omitempty,max=32"`
	WardName     *string    `json:"ward_name" validate:"omitempty,max=200"`
}

// GuardianUsecase manages guardians for an applicant.
type GuardianUsecase interface {
	Add(ctx context.Context, applicantID uuid.UUID, input *AddGuardianInput) (*entity.Guardian, error)
	List(ctx context.Context, applicantID uuid.UUID) ([]*entity.Guardian, error)
	Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.Guardian, error)
	Update(ctx context.Context, applicantID, id uuid.UUID, input *UpdateGuardianInput) (*entity.Guardian, error)
	Delete(ctx context.Context, applicantID, id uuid.UUID) error
}
