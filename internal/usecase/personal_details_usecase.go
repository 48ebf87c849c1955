package usecase

import (
	"context"
	"time"

	"testament/internal/domain/entity"

	"github.com/google/uuid"
)

// AddPersonalDetailsInput creates the applicant's 1:1 personal-details record.
type AddPersonalDetailsInput struct {
	FirstName     string    `json:"first_name" validate:"required,max=100"`
	MiddleName    string    `json:"middle_name" validate:"omitempty,max=100"`
	LastName      string    `json:"last_name" validate:"required,max=100"`
	DateOfBirth   time.Time `json:"date_of_birth" validate:"required"`
	Gender        string    `json:"gender" validate:"omitempty,oneof=male female other"`
	MaritalStatus string    `json:"marital_status" validate:"omitempty,max=50"`
	Address       string    `json:"address" validate:"required,max=500"`
	City          string    `json:"city" validate:"required,max=100"`
	State         string    `json:"state" validate:"omitempty,max=100"`
	PostalCode    string    `json:"postal_code" validate:"omitempty,max=20"`
	Country       string    `json:"country" validate:"required,max=100"`
}

// UpdatePersonalDetailsInput patches the record; nil fields are left unchanged.
// An embedded ApplicantID, when present, must match the route-resolved one.
type UpdatePersonalDetailsInput struct {
	ApplicantID   *uuid.UUID `json:"applicant_id" validate:"omitempty"`
	FirstName     *string    `json:"first_name" validate:"omitempty,max=100"`
	MiddleName    *string    `json:"middle_name" validate:"omitempty,max=100"`
	LastName      *string    `json:"last_name" validate:"omitempty,max=100"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	Gender        *string    `json:"gender" validate:"omitempty,oneof=male female other"`
	MaritalStatus *string    `json:"marital_status" validate:"omitempty,max=50"`
	Address       *string    `json:"address" validate:"omitempty,max=500"`
	City          *string    `json:"city" validate:"omitempty,max=100"`
	State         *string    `json:"state" validate:"omitempty,max=100"`
	PostalCode    *string    `json:"postal_code" validate:"omitempty,max=20"`
	Country       *string    `json:"country" validate:"omitempty,max=100"`
}

// PersonalDetailsUsecase manages the applicant's personal-details record.
type PersonalDetailsUsecase interface {
	Add(ctx context.Context, applicantID uuid.UUID, input *AddPersonalDetailsInput) (*entity.PersonalDetails, error)
	Get(ctx context.Context, applicantID uuid.UUID) (*entity.PersonalDetails, error)
	Update(ctx context.Context, applicantID, id uuid.UUID, input *UpdatePersonalDetailsInput) (*entity.PersonalDetails, error)
	Delete(ctx context.Context, applicantID, id uuid.UUID) error
}
