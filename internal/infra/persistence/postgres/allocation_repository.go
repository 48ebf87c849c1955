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

// assetAllocationRepository implements the repository.AssetAllocationRepository interface.
type assetAllocationRepository struct {
	db *gorm.DB
}

// NewAssetAllocationRepository is the constructor for assetAllocationRepository.
func NewAssetAllocationRepository(db *gorm.DB) repository.AssetAllocationRepository {
	return &assetAllocationRepository{
		db: db,
	}
}

// Create persists a new allocation. The composite unique index backs the
// one-allocation-per-tuple rule under concurrency.
func (repo *assetAllocationRepository) Create(ctx context.Context, allocation *entity.AssetAllocation) error {
	allocationM := fromAssetAllocationDomain(allocation)

	if err := repo.db.WithContext(ctx).Create(allocationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAllocation
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecordNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required allocation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create allocation")
	}

	allocation.ID = allocationM.ID
	allocation.CreatedAt = allocationM.CreatedAt
	allocation.UpdatedAt = allocationM.UpdatedAt

	return nil
}

// FindByApplicant retrieves all allocations owned by the applicant.
func (repo *assetAllocationRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.AssetAllocation, error) {
	var allocationModels []*model.AssetAllocationModel

	if err := repo.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at ASC").
		Find(&allocationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find allocations by applicant")
	}

	allocations := make([]*entity.AssetAllocation, 0, len(allocationModels))
	for _, allocationM := range allocationModels {
		allocations = append(allocations, toAssetAllocationDomain(allocationM))
	}

	return allocations, nil
}

// FindByID retrieves an allocation scoped by (id, applicantID).
func (repo *assetAllocationRepository) FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.AssetAllocation, error) {
	var allocationM model.AssetAllocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		First(&allocationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find allocation by ID")
	}

	return toAssetAllocationDomain(&allocationM), nil
}

// FindByTuple looks up an allocation by its unique (applicant, asset,
// beneficiary) combination.
func (repo *assetAllocationRepository) FindByTuple(ctx context.Context, applicantID, assetID, beneficiaryID uuid.UUID) (*entity.AssetAllocation, error) {
	var allocationM model.AssetAllocationModel

	if err := repo.db.WithContext(ctx).
		Where("applicant_id = ? AND asset_id = ? AND beneficiary_id = ?", applicantID, assetID, beneficiaryID).
		First(&allocationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find allocation by tuple")
	}

	return toAssetAllocationDomain(&allocationM), nil
}

// Update persists changes to an existing allocation, scoped by its owner.
func (repo *assetAllocationRepository) Update(ctx context.Context, allocation *entity.AssetAllocation) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AssetAllocationModel{}).
		Where("id = ? AND applicant_id = ?", allocation.ID, allocation.ApplicantID).
		Update("percentage", allocation.Percentage)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update allocation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Delete removes an allocation scoped by (id, applicantID).
func (repo *assetAllocationRepository) Delete(ctx context.Context, id, applicantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Delete(&model.AssetAllocationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete allocation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// ExistsForApplicant reports whether the allocation exists under the
// applicant's scope.
func (repo *assetAllocationRepository) ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AssetAllocationModel{}).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check allocation existence")
	}

	return count > 0, nil
}

// fromAssetAllocationDomain converts a domain entity to a GORM model.
func fromAssetAllocationDomain(allocation *entity.AssetAllocation) *model.AssetAllocationModel {
	return &model.AssetAllocationModel{
		ID:            allocation.ID,
		ApplicantID:   allocation.ApplicantID,
		AssetID:       allocation.AssetID,
		BeneficiaryID: allocation.BeneficiaryID,
		Percentage:    allocation.Percentage,
		CreatedAt:     allocation.CreatedAt,
		UpdatedAt:     allocation.UpdatedAt,
	}
}

// toAssetAllocationDomain converts a GORM model to a domain entity.
func toAssetAllocationDomain(allocationM *model.AssetAllocationModel) *entity.AssetAllocation {
	return &entity.AssetAllocation{
		ID:            allocationM.ID,
		ApplicantID:   allocationM.ApplicantID,
		AssetID:       allocationM.AssetID,
		BeneficiaryID: allocationM.BeneficiaryID,
		Percentage:    allocationM.Percentage,
		CreatedAt:     allocationM.CreatedAt,
		UpdatedAt:     allocationM.UpdatedAt,
	}
}
