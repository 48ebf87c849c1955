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

// identificationService implements the IdentificationUsecase interface.
type identificationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewIdentificationService is the constructor for identificationService.
func NewIdentificationService(txManager repository.TransactionManager, logger *slog.Logger) usecase.IdentificationUsecase {
	return &identificationService{txManager: txManager, logger: logger}
}

// Add registers an identification document for the applicant.
func (srv *identificationService) Add(ctx context.Context, applicantID uuid.UUID, input *usecase.AddIdentificationInput) (*entity.Identification, error) {
	var created *entity.Identification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireApplicant(ctx, repoFactory, applicantID); err != nil {
			return err
		}

		identification := &entity.Identification{
			ApplicantID:    applicantID,
			DocumentType:   input.DocumentType,
			DocumentNumber: input.DocumentNumber,
			IssuingCountry: input.IssuingCountry,
			ExpiryDate:     input.ExpiryDate,
			FilePath:       input.FilePath,
		}
		if err := repoFactory.NewIdentificationRepository().Create(ctx, identification); err != nil {
			return errors.WithStack(err)
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepIdentification); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		created = identification

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to add identification")
	}
	srv.logger.Debug("Identification added", "applicantID", applicantID, "identificationID", created.ID)

	return created, nil
}

// List returns all identification documents for the applicant.
func (srv *identificationService) List(ctx context.Context, applicantID uuid.UUID) ([]*entity.Identification, error) {
	var documents []*entity.Identification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewIdentificationRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to find identifications by applicant")
		}
		documents = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list identifications")
	}

	return documents, nil
}

// Get retrieves one identification document scoped by its ID and the applicant.
func (srv *identificationService) Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.Identification, error) {
	var identification *entity.Identification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewIdentificationRepository().FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("identification not found")
			}

			return errors.Wrap(err, "failed to find identification")
		}
		identification = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get identification")
	}

	return identification, nil
}

// Update applies the non-nil fields of the payload to the stored document.
func (srv *identificationService) Update(ctx context.Context, applicantID, id uuid.UUID, input *usecase.UpdateIdentificationInput) (*entity.Identification, error) {
	if err := matchRouteApplicant(applicantID, input.ApplicantID); err != nil {
		return nil, err
	}

	var updated *entity.Identification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identificationRepo := repoFactory.NewIdentificationRepository()

		identification, err := identificationRepo.FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("identification not found")
			}

			return errors.Wrap(err, "failed to find identification")
		}

		if input.DocumentType != nil {
			identification.DocumentType = *input.DocumentType
		}
		if input.DocumentNumber != nil {
			identification.DocumentNumber = *input.DocumentNumber
		}
		if input.IssuingCountry != nil {
			identification.IssuingCountry = *input.IssuingCountry
		}
		if input.ExpiryDate != nil {
			identification.ExpiryDate = *input.ExpiryDate
		}
		if input.FilePath != nil {
			identification.FilePath = *input.FilePath
		}

		if err := identificationRepo.Update(ctx, identification); err != nil {
			return resolveWriteConflict(ctx, err, func(ctx context.Context) (bool, error) {
				return identificationRepo.ExistsForApplicant(ctx, id, applicantID)
			})
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepIdentification); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		updated = identification

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update identification")
	}

	return updated, nil
}

// Delete removes an identification document scoped by (id, applicantID).
func (srv *identificationService) Delete(ctx context.Context, applicantID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewIdentificationRepository().Delete(ctx, id, applicantID); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("identification not found")
			}

			return errors.Wrap(err, "failed to delete identification")
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepIdentification); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete identification")
	}
	srv.logger.Debug("Identification deleted", "applicantID", applicantID, "identificationID", id)

	return nil
}
