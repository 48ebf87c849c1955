package usecase

import (
	"context"

	"testament/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAssetInput records a new estate asset.
type AddAssetInput struct {
	AssetType      string  `json:"asset_type" validate:"required,oneof=property vehicle account shares business other"`
	Description    string  `json:"description" validate:"required,max=1000"`
	EstimatedValue float64 `json:"estimated_value" validate:"gte=0"`
}

// UpdateAssetInput patches an asset; nil fields are left unchanged.
type UpdateAssetInput struct {
	ApplicantID    *uuid.UUID `json:"applicant_id" validate:"omitempty"`
	AssetType      *string    `json:"asset_type" validate:"omitempty,oneof=property vehicle account shares business other"`
	Description    *string    `json:"description" validate:"omitempty,max=1000"`
	EstimatedValue *float64   `json:"estimated_value" validate:"omitempty,gte=0"`
}

// AssetUsecase manages estate assets for an applicant.
type AssetUsecase interface {
	Add(ctx context.Context, applicantID uuid.UUID, input *AddAssetInput) (*entity.Asset, error)
	List(ctx context.Context, applicantID uuid.UUID) ([]*entity.Asset, error)
	Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.Asset, error)
	Update(ctx context.Context, applicantID, id uuid.UUID, input *UpdateAssetInput) (*entity.Asset, error)
	Delete(ctx context.Context, applicantID, id uuid.UUID) error
}
