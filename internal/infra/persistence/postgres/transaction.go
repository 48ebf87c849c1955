package postgres

import (
	"context"
	"fmt"

	"testament/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and hands out repository
// instances bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

func (f *gormRepositoryFactory) NewApplicantRepository() repository.ApplicantRepository {
	return NewApplicantRepository(f.tx)
}

func (f *gormRepositoryFactory) NewRegistrationKeyRepository() repository.RegistrationKeyRepository {
	return NewRegistrationKeyRepository(f.tx)
}

func (f *gormRepositoryFactory) NewOTPRepository() repository.OTPRepository {
	return NewOTPRepository(f.tx)
}

func (f *gormRepositoryFactory) NewPersonalDetailsRepository() repository.PersonalDetailsRepository {
	return NewPersonalDetailsRepository(f.tx)
}

func (f *gormRepositoryFactory) NewIdentificationRepository() repository.IdentificationRepository {
	return NewIdentificationRepository(f.tx)
}

func (f *gormRepositoryFactory) NewBeneficiaryRepository() repository.BeneficiaryRepository {
	return NewBeneficiaryRepository(f.tx)
}

func (f *gormRepositoryFactory) NewAssetRepository() repository.AssetRepository {
	return NewAssetRepository(f.tx)
}

func (f *gormRepositoryFactory) NewAssetAllocationRepository() repository.AssetAllocationRepository {
	return NewAssetAllocationRepository(f.tx)
}

func (f *gormRepositoryFactory) NewExecutorRepository() repository.ExecutorRepository {
	return NewExecutorRepository(f.tx)
}

func (f *gormRepositoryFactory) NewGuardianRepository() repository.GuardianRepository {
	return NewGuardianRepository(f.tx)
}

func (f *gormRepositoryFactory) NewPaymentTransactionRepository() repository.PaymentTransactionRepository {
	return NewPaymentTransactionRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// If the callback panics the transaction must still be rolled back before
	// the panic propagates.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original business error; the rollback failure is secondary.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
