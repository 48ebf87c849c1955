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

// beneficiaryRepository implements the repository.BeneficiaryRepository interface.
// Every lookup and mutation is scoped by both the row's primary key and the
// owning applicant, so a foreign row is indistinguishable from a missing one.
type beneficiaryRepository struct {
	db *gorm.DB
}

// NewBeneficiaryRepository is the constructor for beneficiaryRepository.
func NewBeneficiaryRepository(db *gorm.DB) repository.BeneficiaryRepository {
	return &beneficiaryRepository{
		db: db,
	}
}

// Create persists a new beneficiary.
func (repo *beneficiaryRepository) Create(ctx context.Context, beneficiary *entity.Beneficiary) error {
	beneficiaryM := fromBeneficiaryDomain(beneficiary)

	if err := repo.db.WithContext(ctx).Create(beneficiaryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("applicant not found")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required beneficiary information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create beneficiary")
	}

	beneficiary.ID = beneficiaryM.ID
	beneficiary.CreatedAt = beneficiaryM.CreatedAt
	beneficiary.UpdatedAt = beneficiaryM.UpdatedAt

	return nil
}

// FindByApplicant retrieves all beneficiaries owned by the applicant.
func (repo *beneficiaryRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.Beneficiary, error) {
	var beneficiaryModels []*model.BeneficiaryModel

	if err := repo.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at ASC").
		Find(&beneficiaryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find beneficiaries by applicant")
	}

	beneficiaries := make([]*entity.Beneficiary, 0, len(beneficiaryModels))
	for _, beneficiaryM := range beneficiaryModels {
		beneficiaries = append(beneficiaries, toBeneficiaryDomain(beneficiaryM))
	}

	return beneficiaries, nil
}

// FindByID retrieves a beneficiary scoped by (id, applicantID).
func (repo *beneficiaryRepository) FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.Beneficiary, error) {
	var beneficiaryM model.BeneficiaryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		First(&beneficiaryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find beneficiary by ID")
	}

	return toBeneficiaryDomain(&beneficiaryM), nil
}

// Update persists changes to an existing beneficiary, scoped by its owner.
func (repo *beneficiaryRepository) Update(ctx context.Context, beneficiary *entity.Beneficiary) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BeneficiaryModel{}).
		Where("id = ? AND applicant_id = ?", beneficiary.ID, beneficiary.ApplicantID).
		Updates(map[string]any{
			"full_name":     beneficiary.FullName,
			"relationship":  beneficiary.Relationship,
			"email":         beneficiary.Email,
			"phone":         beneficiary.Phone,
			"date_of_birth": beneficiary.DateOfBirth,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update beneficiary")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Delete removes a beneficiary scoped by (id, applicantID).
func (repo *beneficiaryRepository) Delete(ctx context.Context, id, applicantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Delete(&model.BeneficiaryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete beneficiary")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// ExistsForApplicant reports whether the beneficiary exists under the
// applicant's scope.
func (repo *beneficiaryRepository) ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BeneficiaryModel{}).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check beneficiary existence")
	}

	return count > 0, nil
}

// fromBeneficiaryDomain converts a domain entity to a GORM model.
func fromBeneficiaryDomain(beneficiary *entity.Beneficiary) *model.BeneficiaryModel {
	return &model.BeneficiaryModel{
		ID:           beneficiary.ID,
		ApplicantID:  beneficiary.ApplicantID,
		FullName:     beneficiary.FullName,
		Relationship: beneficiary.Relationship,
		Email:        beneficiary.Email,
		Phone:        beneficiary.Phone,
		DateOfBirth:  beneficiary.DateOfBirth,
		CreatedAt:    beneficiary.CreatedAt,
		UpdatedAt:    beneficiary.UpdatedAt,
	}
}

// toBeneficiaryDomain converts a GORM model to a domain entity.
func toBeneficiaryDomain(beneficiaryM *model.BeneficiaryModel) *entity.Beneficiary {
	return &entity.Beneficiary{
		ID:           beneficiaryM.ID,
		ApplicantID:  beneficiaryM.ApplicantID,
		FullName:     beneficiaryM.FullName,
		Relationship: beneficiaryM.Relationship,
		Email:        beneficiaryM.Email,
		Phone:        beneficiaryM.Phone,
		DateOfBirth:  beneficiaryM.DateOfBirth,
		CreatedAt:    beneficiaryM.CreatedAt,
		UpdatedAt:    beneficiaryM.UpdatedAt,
	}
}
