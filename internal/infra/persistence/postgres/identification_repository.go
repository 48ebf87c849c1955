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

// identificationRepository implements the repository.IdentificationRepository interface.
type identificationRepository struct {
	db *gorm.DB
}

// NewIdentificationRepository is the constructor for identificationRepository.
func NewIdentificationRepository(db *gorm.DB) repository.IdentificationRepository {
	return &identificationRepository{
		db: db,
	}
}

// Create persists a new identification document.
func (repo *identificationRepository) Create(ctx context.Context, identification *entity.Identification) error {
	identificationM := fromIdentificationDomain(identification)

	if err := repo.db.WithContext(ctx).Create(identificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("applicant not found")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required identification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identification")
	}

	identification.ID = identificationM.ID
	identification.CreatedAt = identificationM.CreatedAt
	identification.UpdatedAt = identificationM.UpdatedAt

	return nil
}

// FindByApplicant retrieves all identification documents owned by the applicant.
func (repo *identificationRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.Identification, error) {
	var identificationModels []*model.IdentificationModel

	if err := repo.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at ASC").
		Find(&identificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find identifications by applicant")
	}

	identifications := make([]*entity.Identification, 0, len(identificationModels))
	for _, identificationM := range identificationModels {
		identifications = append(identifications, toIdentificationDomain(identificationM))
	}

	return identifications, nil
}

// FindByID retrieves an identification document scoped by (id, applicantID).
func (repo *identificationRepository) FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.Identification, error) {
	var identificationM model.IdentificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		First(&identificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find identification by ID")
	}

	return toIdentificationDomain(&identificationM), nil
}

// Update persists changes to an existing document, scoped by its owner.
func (repo *identificationRepository) Update(ctx context.Context, identification *entity.Identification) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentificationModel{}).
		Where("id = ? AND applicant_id = ?", identification.ID, identification.ApplicantID).
		Updates(map[string]any{
			"document_type":   identification.DocumentType,
			"document_number": identification.DocumentNumber,
			"issuing_country": identification.IssuingCountry,
			"expiry_date":     identification.ExpiryDate,
			"file_path":       identification.FilePath,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update identification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Delete removes an identification document scoped by (id, applicantID).
func (repo *identificationRepository) Delete(ctx context.Context, id, applicantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Delete(&model.IdentificationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete identification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// ExistsForApplicant reports whether the document exists under the applicant's scope.
func (repo *identificationRepository) ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.IdentificationModel{}).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check identification existence")
	}

	return count > 0, nil
}

// fromIdentificationDomain converts a domain entity to a GORM model.
func fromIdentificationDomain(identification *entity.Identification) *model.IdentificationModel {
	return &model.IdentificationModel{
		ID:             identification.ID,
		ApplicantID:    identification.ApplicantID,
		DocumentType:   identification.DocumentType,
		DocumentNumber: identification.DocumentNumber,
		IssuingCountry: identification.IssuingCountry,
		ExpiryDate:     identification.ExpiryDate,
		FilePath:       identification.FilePath,
		CreatedAt:      identification.CreatedAt,
		UpdatedAt:      identification.UpdatedAt,
	}
}

// toIdentificationDomain converts a GORM model to a domain entity.
func toIdentificationDomain(identificationM *model.IdentificationModel) *entity.Identification {
	return &entity.Identification{
		ID:             identificationM.ID,
		ApplicantID:    identificationM.ApplicantID,
		DocumentType:   identificationM.DocumentType,
		DocumentNumber: identificationM.DocumentNumber,
		IssuingCountry: identificationM.IssuingCountry,
		ExpiryDate:     identificationM.ExpiryDate,
		FilePath:       identificationM.FilePath,
		CreatedAt:      identificationM.CreatedAt,
		UpdatedAt:      identificationM.UpdatedAt,
	}
}
