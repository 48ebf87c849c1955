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

// executorService implements the ExecutorUsecase interface.
type executorService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewExecutorService is the constructor for executorService.
func NewExecutorService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ExecutorUsecase {
	return &executorService{txManager: txManager, logger: logger}
}

// Add appoints an executor for the applicant.
func (srv *executorService) Add(ctx context.Context, applicantID uuid.UUID, input *usecase.AddExecutorInput) (*entity.Executor, error) {
	var created *entity.Executor

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireApplicant(ctx, repoFactory, applicantID); err != nil {
			return err
		}

		executor := &entity.Executor{
			ApplicantID:  applicantID,
			FullName:     input.FullName,
			Relationship: input.Relationship,
			Email:        input.Email,
			Phone:        input.Phone,
			IsPrimary:    input.IsPrimary,
		}
		if err := repoFactory.NewExecutorRepository().Create(ctx, executor); err != nil {
			return errors.WithStack(err)
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepExecutors); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		created = executor

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to add executor")
	}
	srv.logger.Debug("Executor added", "applicantID", applicantID, "executorID", created.ID)

	return created, nil
}

// List returns all executors for the applicant; empty when none exist.
func (srv *executorService) List(ctx context.Context, applicantID uuid.UUID) ([]*entity.Executor, error) {
	var executors []*entity.Executor

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewExecutorRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to find executors by applicant")
		}
		executors = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list executors")
	}

	return executors, nil
}

// Get retrieves one executor scoped by both its ID and the applicant.
func (srv *executorService) Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.Executor, error) {
	var executor *entity.Executor

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewExecutorRepository().FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("executor not found")
			}

			return errors.Wrap(err, "failed to find executor")
		}
		executor = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get executor")
	}

	return executor, nil
}

// Update applies the non-nil fields of the payload to the stored executor.
func (srv *executorService) Update(ctx context.Context, applicantID, id uuid.UUID, input *usecase.UpdateExecutorInput) (*entity.Executor, error) {
	if err := matchRouteApplicant(applicantID, input.ApplicantID); err != nil {
		return nil, err
	}

	var updated *entity.Executor

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		executorRepo := repoFactory.NewExecutorRepository()

		executor, err := executorRepo.FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("executor not found")
			}

			return errors.Wrap(err, "failed to find executor")
		}

		if input.FullName != nil {
			executor.FullName = *input.FullName
		}
		if input.Relationship != nil {
			executor.Relationship = *input.Relationship
		}
		if input.Email != nil {
			executor.Email = *input.Email
		}
		if input.Phone != nil {
			executor.Phone = *input.Phone
		}
		if input.IsPrimary != nil {
			executor.IsPrimary = *input.IsPrimary
		}

		if err := executorRepo.Update(ctx, executor); err != nil {
			return resolveWriteConflict(ctx, err, func(ctx context.Context) (bool, error) {
				return executorRepo.ExistsForApplicant(ctx, id, applicantID)
			})
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepExecutors); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		updated = executor

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update executor")
	}

	return updated, nil
}

// Delete removes an executor scoped by (id, applicantID).
func (srv *executorService) Delete(ctx context.Context, applicantID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewExecutorRepository().Delete(ctx, id, applicantID); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("executor not found")
			}

			return errors.Wrap(err, "failed to delete executor")
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepExecutors); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete executor")
	}
	srv.logger.Debug("Executor deleted", "applicantID", applicantID, "executorID", id)

	return nil
}
