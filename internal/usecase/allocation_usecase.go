package usecase

import (
	"context"

	"testament/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAllocationInput assigns a share of an asset to a beneficiary. Both
// referenced records must belong to the same applicant as the allocation.
type AddAllocationInput struct {
	AssetID       uuid.UUID `json:"asset_id" validate:"required"`
	BeneficiaryID uuid.UUID `json:"beneficiary_id" validate:"required"`
	Percentage    float64   `json:"percentage" validate:"required,gte=0.01,lte=100"`
}

// UpdateAllocationInput patches an allocation's percentage. The referenced
// asset and beneficiary are immutable; delete and re-create to change them.
type UpdateAllocationInput struct {
	ApplicantID *uuid.UUID `json:"applicant_id" validate:"omitempty"`
	Percentage  *float64   `json:"percentage" validate:"omitempty,gte=0.01,lte=100"`
}

// AllocationUsecase manages asset-to-beneficiary allocations.
type AllocationUsecase interface {
	Add(ctx context.Context, applicantID uuid.UUID, input *AddAllocationInput) (*entity.AssetAllocation, error)
	List(ctx context.Context, applicantID uuid.UUID) ([]*entity.AssetAllocation, error)
	Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.AssetAllocation, error)
	Update(ctx context.Context, applicantID, id uuid.UUID, input *UpdateAllocationInput) (*entity.AssetAllocation, error)
	Delete(ctx context.Context, applicantID, id uuid.UUID) error
}
