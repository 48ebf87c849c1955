package postgres

import (
	"context"

	"testament/internal/domain/entity"
	domainerrors "testament/internal/domain/errors"
	"testament/internal/domain/repository"
	"testament/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assetRepository implements the repository.AssetRepository interface.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository is the constructor for assetRepository.
func NewAssetRepository(db *gorm.DB) repository.AssetRepository {
	return &assetRepository{
		db: db,
	}
}

// Create persists a new asset.
func (repo *assetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	assetM := fromAssetDomain(asset)

	if err := repo.db.WithContext(ctx).Create(assetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("applicant not found")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required asset information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create asset")
	}

	asset.ID = assetM.ID
	asset.CreatedAt = assetM.CreatedAt
	asset.UpdatedAt = assetM.UpdatedAt

	return nil
}

// FindByApplicant retrieves all assets owned by the applicant.
func (repo *assetRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.Asset, error) {
	var assetModels []*model.AssetModel

	if err := repo.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at ASC").
		Find(&assetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find assets by applicant")
	}

	assets := make([]*entity.Asset, 0, len(assetModels))
	for _, assetM := range assetModels {
		assets = append(assets, toAssetDomain(assetM))
	}

	return assets, nil
}

// FindByID retrieves an asset scoped by (id, applicantID).
func (repo *assetRepository) FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.Asset, error) {
	var assetM model.AssetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		First(&assetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset by ID")
	}

	return toAssetDomain(&assetM), nil
}

// Update persists changes to an existing asset, scoped by its owner.
func (repo *assetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AssetModel{}).
		Where("id = ? AND applicant_id = ?", asset.ID, asset.ApplicantID).
		Updates(map[string]any{
			"asset_type":      asset.AssetType,
			"description":     asset.Description,
			"estimated_value": asset.EstimatedValue,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update asset")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Delete removes an asset scoped by (id, applicantID). Dependent allocations
// cascade.
func (repo *assetRepository) Delete(ctx context.Context, id, applicantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Delete(&model.AssetModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete asset")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// ExistsForApplicant reports whether the asset exists under the applicant's scope.
func (repo *assetRepository) ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AssetModel{}).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check asset existence")
	}

	return count > 0, nil
}

// fromAssetDomain converts a domain entity to a GORM model.
func fromAssetDomain(asset *entity.Asset) *model.AssetModel {
	return &model.AssetModel{
		ID:             asset.ID,
		ApplicantID:    asset.ApplicantID,
		AssetType:      asset.AssetType,
		Description:    asset.Description,
		EstimatedValue: asset.EstimatedValue,
		CreatedAt:      asset.CreatedAt,
		UpdatedAt:      asset.UpdatedAt,
	}
}

// toAssetDomain converts a GORM model to a domain entity.
func toAssetDomain(assetM *model.AssetModel) *entity.Asset {
	return &entity.Asset{
		ID:             assetM.ID,
		ApplicantID:    assetM.ApplicantID,
		AssetType:      assetM.AssetType,
		Description:    assetM.Description,
		EstimatedValue: assetM.EstimatedValue,
		CreatedAt:      assetM.CreatedAt,
		UpdatedAt:      assetM.UpdatedAt,
	}
}
