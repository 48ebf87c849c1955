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

// paymentTransactionRepository implements the repository.PaymentTransactionRepository
// interface. Transactions are append-only; there is no Delete.
type paymentTransactionRepository struct {
	db *gorm.DB
}

// NewPaymentTransactionRepository is the constructor for paymentTransactionRepository.
func NewPaymentTransactionRepository(db *gorm.DB) repository.PaymentTransactionRepository {
	return &paymentTransactionRepository{
		db: db,
	}
}

// Create persists a new payment transaction.
func (repo *paymentTransactionRepository) Create(ctx context.Context, transaction *entity.PaymentTransaction) error {
	transactionM := fromPaymentTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("applicant not found")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required payment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment transaction")
	}

	transaction.ID = transactionM.ID
	transaction.CreatedAt = transactionM.CreatedAt
	transaction.UpdatedAt = transactionM.UpdatedAt

	return nil
}

// FindByApplicant retrieves all payment transactions recorded for the
// applicant, most recent first.
func (repo *paymentTransactionRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.PaymentTransaction, error) {
	var transactionModels []*model.PaymentTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&transactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find payment transactions by applicant")
	}

	transactions := make([]*entity.PaymentTransaction, 0, len(transactionModels))
	for _, transactionM := range transactionModels {
		transactions = append(transactions, toPaymentTransactionDomain(transactionM))
	}

	return transactions, nil
}

// FindByID retrieves a payment transaction scoped by (id, applicantID).
func (repo *paymentTransactionRepository) FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.PaymentTransaction, error) {
	var transactionM model.PaymentTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		First(&transactionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment transaction by ID")
	}

	return toPaymentTransactionDomain(&transactionM), nil
}

// Update persists status changes to an existing transaction, scoped by its owner.
func (repo *paymentTransactionRepository) Update(ctx context.Context, transaction *entity.PaymentTransaction) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentTransactionModel{}).
		Where("id = ? AND applicant_id = ?", transaction.ID, transaction.ApplicantID).
		Updates(map[string]any{
			"status":    string(transaction.Status),
			"reference": transaction.Reference,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment transaction")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// ExistsForApplicant reports whether the transaction exists under the
// applicant's scope.
func (repo *paymentTransactionRepository) ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentTransactionModel{}).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check payment transaction existence")
	}

	return count > 0, nil
}

// fromPaymentTransactionDomain converts a domain entity to a GORM model.
func fromPaymentTransactionDomain(transaction *entity.PaymentTransaction) *model.PaymentTransactionModel {
	return &model.PaymentTransactionModel{
		ID:          transaction.ID,
		ApplicantID: transaction.ApplicantID,
		Amount:      transaction.Amount,
		Currency:    transaction.Currency,
		Status:      string(transaction.Status),
		Reference:   transaction.Reference,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}

// toPaymentTransactionDomain converts a GORM model to a domain entity.
func toPaymentTransactionDomain(transactionM *model.PaymentTransactionModel) *entity.PaymentTransaction {
	return &entity.PaymentTransaction{
		ID:          transactionM.ID,
		ApplicantID: transactionM.ApplicantID,
		Amount:      transactionM.Amount,
		Currency:    transactionM.Currency,
		Status:      entity.PaymentStatus(transactionM.Status),
		Reference:   transactionM.Reference,
		CreatedAt:   transactionM.CreatedAt,
		UpdatedAt:   transactionM.UpdatedAt,
	}
}
