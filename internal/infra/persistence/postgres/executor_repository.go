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

// executorRepository implements the repository.ExecutorRepository interface.
type executorRepository struct {
	db *gorm.DB
}

// NewExecutorRepository is the constructor for executorRepository.
func NewExecutorRepository(db *gorm.DB) repository.ExecutorRepository {
	return &executorRepository{
		db: db,
	}
}

// Create persists a new executor.
func (repo *executorRepository) Create(ctx context.Context, executor *entity.Executor) error {
	executorM := fromExecutorDomain(executor)

	if err := repo.db.WithContext(ctx).Create(executorM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("applicant not found")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required executor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create executor")
	}

	executor.ID = executorM.ID
	executor.CreatedAt = executorM.CreatedAt
	executor.UpdatedAt = executorM.UpdatedAt

	return nil
}

// FindByApplicant retrieves all executors appointed by the applicant.
func (repo *executorRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.Executor, error) {
	var executorModels []*model.ExecutorModel

	if err := repo.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at ASC").
		Find(&executorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find executors by applicant")
	}

	executors := make([]*entity.Executor, 0, len(executorModels))
	for _, executorM := range executorModels {
		executors = append(executors, toExecutorDomain(executorM))
	}

	return executors, nil
}

// FindByID retrieves an executor scoped by (id, applicantID).
func (repo *executorRepository) FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.Executor, error) {
	var executorM model.ExecutorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		First(&executorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find executor by ID")
	}

	return toExecutorDomain(&executorM), nil
}

// Update persists changes to an existing executor, scoped by its owner.
func (repo *executorRepository) Update(ctx context.Context, executor *entity.Executor) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ExecutorModel{}).
		Where("id = ? AND applicant_id = ?", executor.ID, executor.ApplicantID).
		Updates(map[string]any{
			"full_name":    executor.FullName,
			"relationship": executor.Relationship,
			"email":        executor.Email,
			"phone":        executor.Phone,
			"is_primary":   executor.IsPrimary,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update executor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Delete removes an executor scoped by (id, applicantID).
func (repo *executorRepository) Delete(ctx context.Context, id, applicantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Delete(&model.ExecutorModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete executor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// ExistsForApplicant reports whether the executor exists under the applicant's scope.
func (repo *executorRepository) ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ExecutorModel{}).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check executor existence")
	}

	return count > 0, nil
}

// fromExecutorDomain converts a domain entity to a GORM model.
func fromExecutorDomain(executor *entity.Executor) *model.ExecutorModel {
	return &model.ExecutorModel{
		ID:           executor.ID,
		ApplicantID:  executor.ApplicantID,
		FullName:     executor.FullName,
		Relationship: executor.Relationship,
		Email:        executor.Email,
		Phone:        executor.Phone,
		IsPrimary:    executor.IsPrimary,
		CreatedAt:    executor.CreatedAt,
		UpdatedAt:    executor.UpdatedAt,
	}
}

// toExecutorDomain converts a GORM model to a domain entity.
func toExecutorDomain(executorM *model.ExecutorModel) *entity.Executor {
	return &entity.Executor{
		ID:           executorM.ID,
		ApplicantID:  executorM.ApplicantID,
		FullName:     executorM.FullName,
		Relationship: executorM.Relationship,
		Email:        executorM.Email,
		Phone:        executorM.Phone,
		IsPrimary:    executorM.IsPrimary,
		CreatedAt:    executorM.CreatedAt,
		UpdatedAt:    executorM.UpdatedAt,
	}
}
