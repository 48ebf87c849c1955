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

// registrationKeyRepository implements the repository.RegistrationKeyRepository interface.
type registrationKeyRepository struct {
	db *gorm.DB
}

// NewRegistrationKeyRepository is the constructor for registrationKeyRepository.
func NewRegistrationKeyRepository(db *gorm.DB) repository.RegistrationKeyRepository {
	return &registrationKeyRepository{
		db: db,
	}
}

// Create persists a newly minted key. The unique index on applicant_id turns a
// concurrent second issuance into ErrRegistrationKeyExists so the caller can
// fall back to the winner's key.
func (repo *registrationKeyRepository) Create(ctx context.Context, key *entity.RegistrationKey) error {
	keyM := fromRegistrationKeyDomain(key)

	if err := repo.db.WithContext(ctx).Create(keyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRegistrationKeyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("applicant not found")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create registration key")
	}

	key.ID = keyM.ID
	key.CreatedAt = keyM.CreatedAt

	return nil
}

// FindByApplicant retrieves the key bound to an applicant, if any.
func (repo *registrationKeyRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) (*entity.RegistrationKey, error) {
	var keyM model.RegistrationKeyModel

	if err := repo.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		First(&keyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration key by applicant")
	}

	return toRegistrationKeyDomain(&keyM), nil
}

// FindByKey resolves an opaque key string to its stored record.
func (repo *registrationKeyRepository) FindByKey(ctx context.Context, key string) (*entity.RegistrationKey, error) {
	var keyM model.RegistrationKeyModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&keyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration key")
	}

	return toRegistrationKeyDomain(&keyM), nil
}

// fromRegistrationKeyDomain converts a domain entity to a GORM model.
func fromRegistrationKeyDomain(key *entity.RegistrationKey) *model.RegistrationKeyModel {
	return &model.RegistrationKeyModel{
		ID:          key.ID,
		Key:         key.Key,
		ApplicantID: key.ApplicantID,
		IsUsed:      key.IsUsed,
		CreatedAt:   key.CreatedAt,
	}
}

// toRegistrationKeyDomain converts a GORM model to a domain entity.
func toRegistrationKeyDomain(keyM *model.RegistrationKeyModel) *entity.RegistrationKey {
	return &entity.RegistrationKey{
		ID:          keyM.ID,
		Key:         keyM.Key,
		ApplicantID: keyM.ApplicantID,
		IsUsed:      keyM.IsUsed,
		CreatedAt:   keyM.CreatedAt,
	}
}
