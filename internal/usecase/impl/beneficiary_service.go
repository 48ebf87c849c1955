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

// beneficiaryService implements the BeneficiaryUsecase interface.
type beneficiaryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewBeneficiaryService is the constructor for beneficiaryService.
func NewBeneficiaryService(txManager repository.TransactionManager, logger *slog.Logger) usecase.BeneficiaryUsecase {
	return &beneficiaryService{txManager: txManager, logger: logger}
}

// Add creates a beneficiary for the applicant. The foreign key is forced to the
// session-resolved applicant; any ApplicantID in the payload is ignored.
func (srv *beneficiaryService) Add(ctx context.Context, applicantID uuid.UUID, input *usecase.AddBeneficiaryInput) (*entity.Beneficiary, error) {
	var created *entity.Beneficiary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireApplicant(ctx, repoFactory, applicantID); err != nil {
			return err
		}

		beneficiary := &entity.Beneficiary{
			ApplicantID:  applicantID,
			FullName:     input.FullName,
			Relationship: input.Relationship,
			Email:        input.Email,
			Phone:        input.Phone,
			DateOfBirth:  input.DateOfBirth,
		}
		if err := repoFactory.NewBeneficiaryRepository().Create(ctx, beneficiary); err != nil {
			return errors.WithStack(err)
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepBeneficiaries); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		created = beneficiary

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to add beneficiary")
	}
	srv.logger.Debug("Beneficiary added", "applicantID", applicantID, "beneficiaryID", created.ID)

	return created, nil
}

// List returns all beneficiaries for the applicant; empty when none exist.
func (srv *beneficiaryService) List(ctx context.Context, applicantID uuid.UUID) ([]*entity.Beneficiary, error) {
	var beneficiaries []*entity.Beneficiary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewBeneficiaryRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to find beneficiaries by applicant")
		}
		beneficiaries = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list beneficiaries")
	}

	return beneficiaries, nil
}

// Get retrieves one beneficiary scoped by both its ID and the applicant.
func (srv *beneficiaryService) Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.Beneficiary, error) {
	var beneficiary *entity.Beneficiary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewBeneficiaryRepository().FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("beneficiary not found")
			}

			return errors.Wrap(err, "failed to find beneficiary")
		}
		beneficiary = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get beneficiary")
	}

	return beneficiary, nil
}

// Update applies the non-nil fields of the payload to the stored beneficiary.
func (srv *beneficiaryService) Update(ctx context.Context, applicantID, id uuid.UUID, input *usecase.UpdateBeneficiaryInput) (*entity.Beneficiary, error) {
	if err := matchRouteApplicant(applicantID, input.ApplicantID); err != nil {
		return nil, err
	}

	var updated *entity.Beneficiary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		beneficiaryRepo := repoFactory.NewBeneficiaryRepository()

		beneficiary, err := beneficiaryRepo.FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("beneficiary not found")
			}

			return errors.Wrap(err, "failed to find beneficiary")
		}

		if input.FullName != nil {
			beneficiary.FullName = *input.FullName
		}
		if input.Relationship != nil {
			beneficiary.Relationship = *input.Relationship
		}
		if input.Email != nil {
			beneficiary.Email = *input.Email
		}
		if input.Phone != nil {
			beneficiary.Phone = *input.Phone
		}
		if input.DateOfBirth != nil {
			beneficiary.DateOfBirth = *input.DateOfBirth
		}

		if err := beneficiaryRepo.Update(ctx, beneficiary); err != nil {
			return resolveWriteConflict(ctx, err, func(ctx context.Context) (bool, error) {
				return beneficiaryRepo.ExistsForApplicant(ctx, id, applicantID)
			})
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepBeneficiaries); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		updated = beneficiary

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update beneficiary")
	}

	return updated, nil
}

// Delete removes a beneficiary scoped by (id, applicantID).
func (srv *beneficiaryService) Delete(ctx context.Context, applicantID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewBeneficiaryRepository().Delete(ctx, id, applicantID); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("beneficiary not found")
			}

			return errors.Wrap(err, "failed to delete beneficiary")
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepBeneficiaries); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete beneficiary")
	}
	srv.logger.Debug("Beneficiary deleted", "applicantID", applicantID, "beneficiaryID", id)

	return nil
}
