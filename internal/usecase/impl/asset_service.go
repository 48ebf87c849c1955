package impl

import (
	"context"
	"log/slog"

	"testament/internal/domain/entity"
	domainerrors "testament/internal/domain/errors"
	"testament/internal/domain/repository"
	"testament/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// assetService implements the AssetUsecase interface.
type assetService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAssetService is the constructor for assetService.
func NewAssetService(txManager repository.TransactionManager, logger *slog.Logger) usecase.AssetUsecase {
	return &assetService{txManager: txManager, logger: logger}
}

// Add creates an asset owned by the applicant.
func (srv *assetService) Add(ctx context.Context, applicantID uuid.UUID, input *usecase.AddAssetInput) (*entity.Asset, error) {
	var created *entity.Asset

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireApplicant(ctx, repoFactory, applicantID); err != nil {
			return err
		}

		asset := &entity.Asset{
			ApplicantID:    applicantID,
			AssetType:      input.AssetType,
			Description:    input.Description,
			EstimatedValue: input.EstimatedValue,
		}
		if err := repoFactory.NewAssetRepository().Create(ctx, asset); err != nil {
			return errors.WithStack(err)
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepAssets); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		created = asset

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to add asset")
	}
	srv.logger.Debug("Asset added", "applicantID", applicantID, "assetID", created.ID)

	return created, nil
}

// List returns all assets for the applicant; empty when none exist.
func (srv *assetService) List(ctx context.Context, applicantID uuid.UUID) ([]*entity.Asset, error) {
	var assets []*entity.Asset

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewAssetRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to find assets by applicant")
		}
		assets = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list assets")
	}

	return assets, nil
}

// Get retrieves one asset scoped by both its ID and the applicant.
func (srv *assetService) Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.Asset, error) {
	var asset *entity.Asset

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewAssetRepository().FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("asset not found")
			}

			return errors.Wrap(err, "failed to find asset")
		}
		asset = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get asset")
	}

	return asset, nil
}

// Update applies the non-nil fields of the payload to the stored asset.
func (srv *assetService) Update(ctx context.Context, applicantID, id uuid.UUID, input *usecase.UpdateAssetInput) (*entity.Asset, error) {
	if err := matchRouteApplicant(applicantID, input.ApplicantID); err != nil {
		return nil, err
	}

	var updated *entity.Asset

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		assetRepo := repoFactory.NewAssetRepository()

		asset, err := assetRepo.FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("asset not found")
			}

			return errors.Wrap(err, "failed to find asset")
		}

		if input.AssetType != nil {
			asset.AssetType = *input.AssetType
		}
		if input.Description != nil {
			asset.Description = *input.Description
		}
		if input.EstimatedValue != nil {
			asset.EstimatedValue = *input.EstimatedValue
		}

		if err := assetRepo.Update(ctx, asset); err != nil {
			return resolveWriteConflict(ctx, err, func(ctx context.Context) (bool, error) {
				return assetRepo.ExistsForApplicant(ctx, id, applicantID)
			})
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepAssets); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		updated = asset

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update asset")
	}

	return updated, nil
}

// Delete removes an asset scoped by (id, applicantID). Allocations referencing
// the asset cascade at the database level.
func (srv *assetService) Delete(ctx context.Context, applicantID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAssetRepository().Delete(ctx, id, applicantID); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("asset not found")
			}

			return errors.Wrap(err, "failed to delete asset")
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepAssets); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete asset")
	}
	srv.logger.Debug("Asset deleted", "applicantID", applicantID, "assetID", id)

	return nil
}
