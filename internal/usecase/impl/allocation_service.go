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

// allocationService implements the AllocationUsecase interface. Allocations
// reference an asset and a beneficiary, and both must belong to the same
// applicant as the allocation itself.
type allocationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAllocationService is the constructor for allocationService.
func NewAllocationService(txManager repository.TransactionManager, logger *slog.Logger) usecase.AllocationUsecase {
	return &allocationService{txManager: txManager, logger: logger}
}

// requireOwnedReferences verifies that the referenced asset and beneficiary
// both belong to the applicant. A reference to another applicant's record is
// indistinguishable from a reference to a nonexistent one.
func (srv *allocationService) requireOwnedReferences(ctx context.Context, repoFactory repository.RepositoryFactory, applicantID, assetID, beneficiaryID uuid.UUID) error {
	assetOwned, err := repoFactory.NewAssetRepository().ExistsForApplicant(ctx, assetID, applicantID)
	if err != nil {
		return errors.Wrap(err, "failed to check asset ownership")
	}
	if !assetOwned {
		return domainerrors.ErrNotFound.WrapMessage("asset not found")
	}

	beneficiaryOwned, err := repoFactory.NewBeneficiaryRepository().ExistsForApplicant(ctx, beneficiaryID, applicantID)
	if err != nil {
		return errors.Wrap(err, "failed to check beneficiary ownership")
	}
	if !beneficiaryOwned {
		return domainerrors.ErrNotFound.WrapMessage("beneficiary not found")
	}

	return nil
}

// Add assigns a share of an asset to a beneficiary. The (applicant, asset,
// beneficiary) tuple must be unique; a duplicate is a conflict, not an update.
func (srv *allocationService) Add(ctx context.Context, applicantID uuid.UUID, input *usecase.AddAllocationInput) (*entity.AssetAllocation, error) {
	var created *entity.AssetAllocation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireApplicant(ctx, repoFactory, applicantID); err != nil {
			return err
		}
		if err := srv.requireOwnedReferences(ctx, repoFactory, applicantID, input.AssetID, input.BeneficiaryID); err != nil {
			return err
		}

		allocationRepo := repoFactory.NewAssetAllocationRepository()

		if _, err := allocationRepo.FindByTuple(ctx, applicantID, input.AssetID, input.BeneficiaryID); err == nil {
			return domainerrors.ErrDuplicateAllocation.WrapMessage("allocation already exists for this asset and beneficiary")
		} else if !errors.Is(err, repository.ErrRecordNotFound) {
			return errors.Wrap(err, "failed to check for existing allocation")
		}

		allocation := &entity.AssetAllocation{
			ApplicantID:   applicantID,
			AssetID:       input.AssetID,
			BeneficiaryID: input.BeneficiaryID,
			Percentage:    input.Percentage,
		}
		if err := allocationRepo.Create(ctx, allocation); err != nil {
			// The unique index catches tuples racing past the pre-check.
			if errors.Is(err, repository.ErrDuplicateAllocation) {
				return domainerrors.ErrDuplicateAllocation.WrapMessage("allocation already exists for this asset and beneficiary")
			}

			return errors.WithStack(err)
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepAllocations); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		created = allocation

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to add allocation")
	}
	srv.logger.Debug("Allocation added",
		"applicantID", applicantID,
		"allocationID", created.ID,
		"assetID", created.AssetID,
		"beneficiaryID", created.BeneficiaryID,
	)

	return created, nil
}

// List returns all allocations for the applicant; empty when none exist.
func (srv *allocationService) List(ctx context.Context, applicantID uuid.UUID) ([]*entity.AssetAllocation, error) {
	var allocations []*entity.AssetAllocation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewAssetAllocationRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to find allocations by applicant")
		}
		allocations = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list allocations")
	}

	return allocations, nil
}

// Get retrieves one allocation scoped by both its ID and the applicant.
func (srv *allocationService) Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.AssetAllocation, error) {
	var allocation *entity.AssetAllocation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewAssetAllocationRepository().FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("allocation not found")
			}

			return errors.Wrap(err, "failed to find allocation")
		}
		allocation = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get allocation")
	}

	return allocation, nil
}

// Update patches the allocation's percentage. The referenced asset and
// beneficiary are immutable.
func (srv *allocationService) Update(ctx context.Context, applicantID, id uuid.UUID, input *usecase.UpdateAllocationInput) (*entity.AssetAllocation, error) {
	if err := matchRouteApplicant(applicantID, input.ApplicantID); err != nil {
		return nil, err
	}

	var updated *entity.AssetAllocation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		allocationRepo := repoFactory.NewAssetAllocationRepository()

		allocation, err := allocationRepo.FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("allocation not found")
			}

			return errors.Wrap(err, "failed to find allocation")
		}

		if input.Percentage != nil {
			allocation.Percentage = *input.Percentage
		}

		if err := allocationRepo.Update(ctx, allocation); err != nil {
			return resolveWriteConflict(ctx, err, func(ctx context.Context) (bool, error) {
				return allocationRepo.ExistsForApplicant(ctx, id, applicantID)
			})
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepAllocations); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		updated = allocation

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update allocation")
	}

	return updated, nil
}

// Delete removes an allocation scoped by (id, applicantID).
func (srv *allocationService) Delete(ctx context.Context, applicantID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAssetAllocationRepository().Delete(ctx, id, applicantID); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("allocation not found")
			}

			return errors.Wrap(err, "failed to delete allocation")
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepAllocations); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete allocation")
	}
	srv.logger.Debug("Allocation deleted", "applicantID", applicantID, "allocationID", id)

	return nil
}
