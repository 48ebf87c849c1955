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

// guardianService implements the GuardianUsecase interface.
type guardianService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewGuardianService is the constructor for guardianService.
func NewGuardianService(txManager repository.TransactionManager, logger *slog.Logger) usecase.GuardianUsecase {
	return &guardianService{txManager: txManager, logger: logger}
}

// Add appoints a guardian for the applicant's named ward.
func (srv *guardianService) Add(ctx context.Context, applicantID uuid.UUID, input *usecase.AddGuardianInput) (*entity.Guardian, error) {
	var created *entity.Guardian

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireApplicant(ctx, repoFactory, applicantID); err != nil {
			return err
		}

		guardian := &entity.Guardian{
			ApplicantID:  applicantID,
			FullName:     input.FullName,
			Relationship: input.Relationship,
			Email:        input.Email,
			Phone:        input.Phone,
			WardName:     input.WardName,
		}
		if err := repoFactory.NewGuardianRepository().Create(ctx, guardian); err != nil {
			return errors.WithStack(err)
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepGuardians); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		created = guardian

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to add guardian")
	}
	srv.logger.Debug("Guardian added", "applicantID", applicantID, "guardianID", created.ID)

	return created, nil
}

// List returns all guardians for the applicant; empty when none exist.
func (srv *guardianService) List(ctx context.Context, applicantID uuid.UUID) ([]*entity.Guardian, error) {
	var guardians []*entity.Guardian

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewGuardianRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to find guardians by applicant")
		}
		guardians = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list guardians")
	}

	return guardians, nil
}

// Get retrieves one guardian scoped by both its ID and the applicant.
func (srv *guardianService) Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.Guardian, error) {
	var guardian *entity.Guardian

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewGuardianRepository().FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("guardian not found")
			}

			return errors.Wrap(err, "failed to find guardian")
		}
		guardian = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get guardian")
	}

	return guardian, nil
}

// Update applies the non-nil fields of the payload to the stored guardian.
func (srv *guardianService) Update(ctx context.Context, applicantID, id uuid.UUID, input *usecase.UpdateGuardianInput) (*entity.Guardian, error) {
	if err := matchRouteApplicant(applicantID, input.ApplicantID); err != nil {
		return nil, err
	}

	var updated *entity.Guardian

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		guardianRepo := repoFactory.NewGuardianRepository()

		guardian, err := guardianRepo.FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("guardian not found")
			}

			return errors.Wrap(err, "failed to find guardian")
		}

		if input.FullName != nil {
			guardian.FullName = *input.FullName
		}
		if input.Relationship != nil {
			guardian.Relationship = *input.Relationship
		}
		if input.Email != nil {
			guardian.Email = *input.Email
		}
		if input.Phone != nil {
			guardian.Phone = *input.Phone
		}
		if input.WardName != nil {
			guardian.WardName = *input.WardName
		}

		if err := guardianRepo.Update(ctx, guardian); err != nil {
			return resolveWriteConflict(ctx, err, func(ctx context.Context) (bool, error) {
				return guardianRepo.ExistsForApplicant(ctx, id, applicantID)
			})
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepGuardians); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		updated = guardian

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update guardian")
	}

	return updated, nil
}

// Delete removes a guardian scoped by (id, applicantID).
func (srv *guardianService) Delete(ctx context.Context, applicantID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewGuardianRepository().Delete(ctx, id, applicantID); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("guardian not found")
			}

			return errors.Wrap(err, "failed to delete guardian")
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepGuardians); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete guardian")
	}
	srv.logger.Debug("Guardian deleted", "applicantID", applicantID, "guardianID", id)

	return nil
}
