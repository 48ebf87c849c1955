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

// otpRepository implements the repository.OTPRepository interface.
type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{
		db: db,
	}
}

// Create persists a new challenge. Earlier challenges for the same email are
// not removed; FindLatestByEmail always resolves the most recent one.
func (repo *otpRepository) Create(ctx context.Context, challenge *entity.OTPChallenge) error {
	challengeM := fromOTPChallengeDomain(challenge)

	if err := repo.db.WithContext(ctx).Create(challengeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp challenge")
	}

	challenge.ID = challengeM.ID
	challenge.CreatedAt = challengeM.CreatedAt

	return nil
}

// FindLatestByEmail retrieves the most recent challenge for an email.
func (repo *otpRepository) FindLatestByEmail(ctx context.Context, email string) (*entity.OTPChallenge, error) {
	var challengeM model.OTPChallengeModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		First(&challengeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, errors.Wrap(err, "failed to find otp challenge by email")
	}

	return toOTPChallengeDomain(&challengeM), nil
}

// MarkConsumed records that a challenge has been redeemed.
func (repo *otpRepository) MarkConsumed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OTPChallengeModel{}).
		Where("id = ?", id).
		Update("consumed_at", time.Now())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark otp challenge consumed")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOTPNotFound
	}

	return nil
}

// fromOTPChallengeDomain converts a domain entity to a GORM model.
func fromOTPChallengeDomain(challenge *entity.OTPChallenge) *model.OTPChallengeModel {
	return &model.OTPChallengeModel{
		ID:         challenge.ID,
		Email:      challenge.Email,
		CodeHash:   challenge.CodeHash,
		ExpiresAt:  challenge.ExpiresAt,
		ConsumedAt: challenge.ConsumedAt,
		CreatedAt:  challenge.CreatedAt,
	}
}

// toOTPChallengeDomain converts a GORM model to a domain entity.
func toOTPChallengeDomain(challengeM *model.OTPChallengeModel) *entity.OTPChallenge {
	return &entity.OTPChallenge{
		ID:         challengeM.ID,
		Email:      challengeM.Email,
		CodeHash:   challengeM.CodeHash,
		ExpiresAt:  challengeM.ExpiresAt,
		ConsumedAt: challengeM.ConsumedAt,
		CreatedAt:  challengeM.CreatedAt,
	}
}
