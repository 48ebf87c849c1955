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

// guardianRepository implements the repository.GuardianRepository interface.
type guardianRepository struct {
	db *gorm.DB
}

// NewGuardianRepository is the constructor for guardianRepository.
func NewGuardianRepository(db *gorm.DB) repository.GuardianRepository {
	return &guardianRepository{
		db: db,
	}
}

// Create persists a new guardian.
func (repo *guardianRepository) Create(ctx context.Context, guardian *entity.Guardian) error {
	guardianM := fromGuardianDomain(guardian)

	if err := repo.db.WithContext(ctx).Create(guardianM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("applicant not found")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required guardian information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create guardian")
	}

	guardian.ID = guardianM.ID
	guardian.CreatedAt = guardianM.CreatedAt
	guardian.UpdatedAt = guardianM.UpdatedAt

	return nil
}

// FindByApplicant retrieves all guardians appointed by the applicant.
func (repo *guardianRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.Guardian, error) {
	var guardianModels []*model.GuardianModel

	if err := repo.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at ASC").
		Find(&guardianModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find guardians by applicant")
	}

	guardians := make([]*entity.Guardian, 0, len(guardianModels))
	for _, guardianM := range guardianModels {
		guardians = append(guardians, toGuardianDomain(guardianM))
	}

	return guardians, nil
}

// FindByID retrieves a guardian scoped by (id, applicantID).
func (repo *guardianRepository) FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.Guardian, error) {
	var guardianM model.GuardianModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		First(&guardianM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find guardian by ID")
	}

	return toGuardianDomain(&guardianM), nil
}

// Update persists changes to an existing guardian, scoped by its owner.
func (repo *guardianRepository) Update(ctx context.Context, guardian *entity.Guardian) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GuardianModel{}).
		Where("id = ? AND applicant_id = ?", guardian.ID, guardian.ApplicantID).
		Updates(map[string]any{
			"full_name":    guardian.FullName,
			"relationship": guardian.Relationship,
			"email":        guardian.Email,
			"phone":        guardian.Phone,
			"ward_name":    guardian.WardName,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update guardian")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Delete removes a guardian scoped by (id, applicantID).
func (repo *guardianRepository) Delete(ctx context.Context, id, applicantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Delete(&model.GuardianModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete guardian")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// ExistsForApplicant reports whether the guardian exists under the applicant's scope.
func (repo *guardianRepository) ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GuardianModel{}).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check guardian existence")
	}

	return count > 0, nil
}

// fromGuardianDomain converts a domain entity to a GORM model.
func fromGuardianDomain(guardian *entity.Guardian) *model.GuardianModel {
	return &model.GuardianModel{
		ID:           guardian.ID,
		ApplicantID:  guardian.ApplicantID,
		FullName:     guardian.FullName,
		Relationship: guardian.Relationship,
		Email:        guardian.Email,
		Phone:        guardian.Phone,
		WardName:     guardian.WardName,
		CreatedAt:    guardian.CreatedAt,
		UpdatedAt:    guardian.UpdatedAt,
	}
}

// toGuardianDomain converts a GORM model to a domain entity.
func toGuardianDomain(guardianM *model.GuardianModel) *entity.Guardian {
	return &entity.Guardian{
		ID:           guardianM.ID,
		ApplicantID:  guardianM.ApplicantID,
		FullName:     guardianM.FullName,
		Relationship: guardianM.Relationship,
		Email:        guardianM.Email,
		Phone:        guardianM.Phone,
		WardName:     guardianM.WardName,
		CreatedAt:    guardianM.CreatedAt,
		UpdatedAt:    guardianM.UpdatedAt,
	}
}
