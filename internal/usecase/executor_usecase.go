package usecase

import (
	"context"

	"testament/internal/domain/entity"

	"github.com/google/uuid"
)

// AddExecutorInput appoints a new executor.
type AddExecutorInput struct {
	FullName     string `json:"full_name" validate:"required,max=200"`
	Relationship string `json:"relationship" validate:"required,max=100"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
	IsPrimary    bool   `json:"is_primary"`
}

// UpdateExecutorInput patches an executor; nil fields are left unchanged.
type UpdateExecutorInput struct {
	ApplicantID  *uuid.UUID `json:"applicant_id" validate:"omitempty"`
	FullName     *string    `json:"full_name" validate:"omitempty,max=200"`
	Relationship *string    `json:"relationship" validate:"omitempty,max=100"`
	Email        *string    `json:"email" validate:"omitempty,email"`
	Phone        *string    `json:"phone" validate:"omitempty,max=32"`
	IsPrimary    *bool      `json:"is_primary"`
}

// ExecutorUsecase manages executors for an applicant.
type ExecutorUsecase interface {
	Add(ctx context.Context, applicantID uuid.UUID, input *AddExecutorInput) (*entity.Executor, error)
	List(ctx context.Context, applicantID uuid.UUID) ([]*entity.Executor, error)
	Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.Executor, error)
	Update(ctx context.Context, applicantID, id uuid.UUID, input *UpdateExecutorInput) (*entity.Executor, error)
	Delete(ctx context.Context, applicantID, id uuid.UUID) error
}
