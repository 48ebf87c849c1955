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

// personalDetailsRepository implements the repository.PersonalDetailsRepository interface.
type personalDetailsRepository struct {
	db *gorm.DB
}

// NewPersonalDetailsRepository is the constructor for personalDetailsRepository.
func NewPersonalDetailsRepository(db *gorm.DB) repository.PersonalDetailsRepository {
	return &personalDetailsRepository{
		db: db,
	}
}

// Create persists the applicant's personal-details record. The unique index on
// applicant_id enforces the 1:1 relationship.
func (repo *personalDetailsRepository) Create(ctx context.Context, details *entity.PersonalDetails) error {
	detailsM := fromPersonalDetailsDomain(details)

	if err := repo.db.WithContext(ctx).Create(detailsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPersonalDetailsExist
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("applicant not found")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required personal details")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create personal details")
	}

	details.ID = detailsM.ID
	details.CreatedAt = detailsM.CreatedAt
	details.UpdatedAt = detailsM.UpdatedAt

	return nil
}

// FindByApplicant retrieves the single record bound to the applicant.
func (repo *personalDetailsRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) (*entity.PersonalDetails, error) {
	var detailsM model.PersonalDetailsModel

	if err := repo.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		First(&detailsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find personal details by applicant")
	}

	return toPersonalDetailsDomain(&detailsM), nil
}

// FindByID retrieves the record scoped by (id, applicantID).
func (repo *personalDetailsRepository) FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.PersonalDetails, error) {
	var detailsM model.PersonalDetailsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		First(&detailsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find personal details by ID")
	}

	return toPersonalDetailsDomain(&detailsM), nil
}

// Update persists changes to the record, scoped by its owner.
func (repo *personalDetailsRepository) Update(ctx context.Context, details *entity.PersonalDetails) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PersonalDetailsModel{}).
		Where("id = ? AND applicant_id = ?", details.ID, details.ApplicantID).
		Updates(map[string]any{
			"first_name":     details.FirstName,
			"middle_name":    details.MiddleName,
			"last_name":      details.LastName,
			"date_of_birth":  details.DateOfBirth,
			"gender":         details.Gender,
			"marital_status": details.MaritalStatus,
			"address":        details.Address,
			"city":           details.City,
			"state":          details.State,
			"postal_code":    details.PostalCode,
			"country":        details.Country,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update personal details")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Delete removes the record scoped by (id, applicantID).
func (repo *personalDetailsRepository) Delete(ctx context.Context, id, applicantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Delete(&model.PersonalDetailsModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete personal details")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// ExistsForApplicant reports whether the record exists under the applicant's scope.
func (repo *personalDetailsRepository) ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PersonalDetailsModel{}).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check personal details existence")
	}

	return count > 0, nil
}

// fromPersonalDetailsDomain converts a domain entity to a GORM model.
func fromPersonalDetailsDomain(details *entity.PersonalDetails) *model.PersonalDetailsModel {
	return &model.PersonalDetailsModel{
		ID:            details.ID,
		ApplicantID:   details.ApplicantID,
		FirstName:     details.FirstName,
		MiddleName:    details.MiddleName,
		LastName:      details.LastName,
		DateOfBirth:   details.DateOfBirth,
		Gender:        details.Gender,
		MaritalStatus: details.MaritalStatus,
		Address:       details.Address,
		City:          details.City,
		State:         details.State,
		PostalCode:    details.PostalCode,
		Country:       details.Country,
		CreatedAt:     details.CreatedAt,
		UpdatedAt:     details.UpdatedAt,
	}
}

// toPersonalDetailsDomain converts a GORM model to a domain entity.
func toPersonalDetailsDomain(detailsM *model.PersonalDetailsModel) *entity.PersonalDetails {
	return &entity.PersonalDetails{
		ID:            detailsM.ID,
		ApplicantID:   detailsM.ApplicantID,
		FirstName:     detailsM.FirstName,
		MiddleName:    detailsM.MiddleName,
		LastName:      detailsM.LastName,
		DateOfBirth:   detailsM.DateOfBirth,
		Gender:        detailsM.Gender,
		MaritalStatus: detailsM.MaritalStatus,
		Address:       detailsM.Address,
		City:          detailsM.City,
		State:         detailsM.State,
		PostalCode:    detailsM.PostalCode,
		Country:       detailsM.Country,
		CreatedAt:     detailsM.CreatedAt,
		UpdatedAt:     detailsM.UpdatedAt,
	}
}
