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

// personalDetailsService implements the PersonalDetailsUsecase interface.
// Unlike the other per-applicant records, personal details are strictly 1:1
// with the applicant.
type personalDetailsService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPersonalDetailsService is the constructor for personalDetailsService.
func NewPersonalDetailsService(txManager repository.TransactionManager, logger *slog.Logger) usecase.PersonalDetailsUsecase {
	return &personalDetailsService{txManager: txManager, logger: logger}
}

// Add creates the applicant's personal-details record. A second Add for the
// same applicant is a conflict, backed by the unique index on applicant_id.
func (srv *personalDetailsService) Add(ctx context.Context, applicantID uuid.UUID, input *usecase.AddPersonalDetailsInput) (*entity.PersonalDetails, error) {
	var created *entity.PersonalDetails

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireApplicant(ctx, repoFactory, applicantID); err != nil {
			return err
		}

		details := &entity.PersonalDetails{
			ApplicantID:   applicantID,
			FirstName:     input.FirstName,
			MiddleName:    input.MiddleName,
			LastName:      input.LastName,
			DateOfBirth:   input.DateOfBirth,
			Gender:        input.Gender,
			MaritalStatus: input.MaritalStatus,
			Address:       input.Address,
			City:          input.City,
			State:         input.State,
			PostalCode:    input.PostalCode,
			Country:       input.Country,
		}
		if err := repoFactory.NewPersonalDetailsRepository().Create(ctx, details); err != nil {
			if errors.Is(err, repository.ErrPersonalDetailsExist) {
				return domainerrors.ErrPersonalDetailsExist.WrapMessage("personal details already submitted")
			}

			return errors.WithStack(err)
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepPersonalDetails); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		created = details

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to add personal details")
	}
	srv.logger.Debug("Personal details added", "applicantID", applicantID, "detailsID", created.ID)

	return created, nil
}

// Get retrieves the applicant's personal-details record by owner alone.
func (srv *personalDetailsService) Get(ctx context.Context, applicantID uuid.UUID) (*entity.PersonalDetails, error) {
	var details *entity.PersonalDetails

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewPersonalDetailsRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("personal details not found")
			}

			return errors.Wrap(err, "failed to find personal details by applicant")
		}
		details = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get personal details")
	}

	return details, nil
}

// Update applies the non-nil fields of the payload to the stored record.
func (srv *personalDetailsService) Update(ctx context.Context, applicantID, id uuid.UUID, input *usecase.UpdatePersonalDetailsInput) (*entity.PersonalDetails, error) {
	if err := matchRouteApplicant(applicantID, input.ApplicantID); err != nil {
		return nil, err
	}

	var updated *entity.PersonalDetails

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		detailsRepo := repoFactory.NewPersonalDetailsRepository()

		details, err := detailsRepo.FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("personal details not found")
			}

			return errors.Wrap(err, "failed to find personal details")
		}

		if input.FirstName != nil {
			details.FirstName = *input.FirstName
		}
		if input.MiddleName != nil {
			details.MiddleName = *input.MiddleName
		}
		if input.LastName != nil {
			details.LastName = *input.LastName
		}
		if input.DateOfBirth != nil {
			details.DateOfBirth = *input.DateOfBirth
		}
		if input.Gender != nil {
			details.Gender = *input.Gender
		}
		if input.MaritalStatus != nil {
			details.MaritalStatus = *input.MaritalStatus
		}
		if input.Address != nil {
			details.Address = *input.Address
		}
		if input.City != nil {
			details.City = *input.City
		}
		if input.State != nil {
			details.State = *input.State
		}
		if input.PostalCode != nil {
			details.PostalCode = *input.PostalCode
		}
		if input.Country != nil {
			details.Country = *input.Country
		}

		if err := detailsRepo.Update(ctx, details); err != nil {
			return resolveWriteConflict(ctx, err, func(ctx context.Context) (bool, error) {
				return detailsRepo.ExistsForApplicant(ctx, id, applicantID)
			})
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepPersonalDetails); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}
		updated = details

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update personal details")
	}

	return updated, nil
}

// Delete removes the personal-details record scoped by (id, applicantID).
func (srv *personalDetailsService) Delete(ctx context.Context, applicantID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPersonalDetailsRepository().Delete(ctx, id, applicantID); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("personal details not found")
			}

			return errors.Wrap(err, "failed to delete personal details")
		}

		if err := repoFactory.NewApplicantRepository().Touch(ctx, applicantID, entity.StepPersonalDetails); err != nil {
			return errors.Wrap(err, "failed to touch applicant")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete personal details")
	}
	srv.logger.Debug("Personal details deleted", "applicantID", applicantID, "detailsID", id)

	return nil
}
