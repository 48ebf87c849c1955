package postgres

import (
	"context"
	"time"

	"testament/internal/domain/entity"
	domainerrors "testament/internal/domain/errors"
	"testament/internal/domain/repository"
	"testament/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// applicantRepository implements the repository.ApplicantRepository interface.
type applicantRepository struct {
	db *gorm.DB
}

// NewApplicantRepository is the constructor for applicantRepository.
func NewApplicantRepository(db *gorm.DB) repository.ApplicantRepository {
	return &applicantRepository{
		db: db,
	}
}

// Create persists a new applicant.
func (repo *applicantRepository) Create(ctx context.Context, applicant *entity.Applicant) error {
	applicantM := fromApplicantDomain(applicant)
	applicantM.LastModifiedAt = time.Now()

	if err := repo.db.WithContext(ctx).Create(applicantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email is already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required applicant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create applicant")
	}

	applicant.ID = applicantM.ID
	applicant.CreatedAt = applicantM.CreatedAt
	applicant.LastModifiedAt = applicantM.LastModifiedAt
	applicant.CurrentStep = applicantM.CurrentStep

	return nil
}

// FindByID retrieves a single applicant by ID.
func (repo *applicantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Applicant, error) {
	var applicantM model.ApplicantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&applicantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicantNotFound
		}

		return nil, errors.Wrap(err, "failed to find applicant by ID")
	}

	return toApplicantDomain(&applicantM), nil
}

// FindByEmail retrieves a single applicant by email address.
func (repo *applicantRepository) FindByEmail(ctx context.Context, email string) (*entity.Applicant, error) {
	var applicantM model.ApplicantModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&applicantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicantNotFound
		}

		return nil, errors.Wrap(err, "failed to find applicant by email")
	}

	return toApplicantDomain(&applicantM), nil
}

// Update persists changes to an existing applicant.
func (repo *applicantRepository) Update(ctx context.Context, applicant *entity.Applicant) error {
	applicantM := fromApplicantDomain(applicant)
	applicantM.LastModifiedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ApplicantModel{}).
		Where("id = ?", applicant.ID).
		Updates(map[string]any{
			"full_name":        applicantM.FullName,
			"email":            applicantM.Email,
			"phone":            applicantM.Phone,
			"current_step":     applicantM.CurrentStep,
			"is_complete":      applicantM.IsComplete,
			"last_modified_at": applicantM.LastModifiedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email is already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update applicant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicantNotFound
	}
	applicant.LastModifiedAt = applicantM.LastModifiedAt

	return nil
}

// Touch bumps LastModifiedAt and advances CurrentStep when the given step is
// ahead of the stored one. GREATEST keeps the step monotonic without a
// read-modify-write cycle.
func (repo *applicantRepository) Touch(ctx context.Context, id uuid.UUID, step int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ApplicantModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_step":     gorm.Expr("GREATEST(current_step, ?)", step),
			"last_modified_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to touch applicant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicantNotFound
	}

	return nil
}

// Delete removes the applicant. Owned records cascade at the database level.
func (repo *applicantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ApplicantModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete applicant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicantNotFound
	}

	return nil
}

// fromApplicantDomain converts a domain entity to a GORM model.
func fromApplicantDomain(applicant *entity.Applicant) *model.ApplicantModel {
	return &model.ApplicantModel{
		ID:             applicant.ID,
		FullName:       applicant.FullName,
		Email:          applicant.Email,
		Phone:          applicant.Phone,
		CurrentStep:    applicant.CurrentStep,
		IsComplete:     applicant.IsComplete,
		CreatedAt:      applicant.CreatedAt,
		LastModifiedAt: applicant.LastModifiedAt,
	}
}

// toApplicantDomain converts a GORM model to a domain entity.
func toApplicantDomain(applicantM *model.ApplicantModel) *entity.Applicant {
	return &entity.Applicant{
		ID:             applicantM.ID,
		FullName:       applicantM.FullName,
		Email:          applicantM.Email,
		Phone:          applicantM.Phone,
		CurrentStep:    applicantM.CurrentStep,
		IsComplete:     applicantM.IsComplete,
		CreatedAt:      applicantM.CreatedAt,
		LastModifiedAt: applicantM.LastModifiedAt,
	}
}
