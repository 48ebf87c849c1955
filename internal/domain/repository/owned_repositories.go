package repository

import (
	"context"
	"errors"

	"testament/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecordNotFound is the shared sentinel for owned-record lookups. A lookup
// scoped by (id, applicantID) returns it both when the row is absent and when
// the row belongs to a different applicant; callers never learn which.
var ErrRecordNotFound = errors.New("record not found")

// ErrDuplicateAllocation is returned when an allocation for the same
// (applicant, asset, beneficiary) tuple already exists.
var ErrDuplicateAllocation = errors.New("allocation already exists for this asset and beneficiary")

// ErrPersonalDetailsExist is returned when a second personal-details record is
// created for the same applicant.
var ErrPersonalDetailsExist = errors.New("personal details already exist for this applicant")

// Every owned-record repository follows the same shape: creation, reads and
// deletes scoped by both primary key and owning applicant, and an existence
// predicate used to authorise mutations and to disambiguate write conflicts.

// PersonalDetailsRepository persists the 1:1 personal-details record.
type PersonalDetailsRepository interface {
	Create(ctx context.Context, details *entity.PersonalDetails) error
	FindByApplicant(ctx context.Context, applicantID uuid.UUID) (*entity.PersonalDetails, error)
	FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.PersonalDetails, error)
	Update(ctx context.Context, details *entity.PersonalDetails) error
	Delete(ctx context.Context, id, applicantID uuid.UUID) error
	ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error)
}

// IdentificationRepository persists identification documents.
type IdentificationRepository interface {
	Create(ctx context.Context, identification *entity.Identification) error
	FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.Identification, error)
	FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.Identification, error)
	Update(ctx context.Context, identification *entity.Identification) error
	Delete(ctx context.Context, id, applicantID uuid.UUID) error
	ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error)
}

// BeneficiaryRepository persists beneficiaries.
type BeneficiaryRepository interface {
	Create(ctx context.Context, beneficiary *entity.Beneficiary) error
	FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.Beneficiary, error)
	FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.Beneficiary, error)
	Update(ctx context.Context, beneficiary *entity.Beneficiary) error
	Delete(ctx context.Context, id, applicantID uuid.UUID) error
	ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error)
}

// AssetRepository persists estate assets.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.Asset, error)
	FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.Asset, error)
	Update(ctx context.Context, asset *entity.Asset) error
	Delete(ctx context.Context, id, applicantID uuid.UUID) error
	ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error)
}

// AssetAllocationRepository persists asset-to-beneficiary allocations.
type AssetAllocationRepository interface {
	Create(ctx context.Context, allocation *entity.AssetAllocation) error
	FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.AssetAllocation, error)
	FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.AssetAllocation, error)
	// FindByTuple looks up an allocation by its unique (applicant, asset,
	// beneficiary) combination.
	FindByTuple(ctx context.Context, applicantID, assetID, beneficiaryID uuid.UUID) (*entity.AssetAllocation, error)
	Update(ctx context.Context, allocation *entity.AssetAllocation) error
	Delete(ctx context.Context, id, applicantID uuid.UUID) error
	ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error)
}

// ExecutorRepository persists executors.
type ExecutorRepository interface {
	Create(ctx context.Context, executor *entity.Executor) error
	FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.Executor, error)
	FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.Executor, error)
	Update(ctx context.Context, executor *entity.Executor) error
	Delete(ctx context.Context, id, applicantID uuid.UUID) error
	ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error)
}

// GuardianRepository persists guardians.
type GuardianRepository interface {
	Create(ctx context.Context, guardian *entity.Guardian) error
	FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.Guardian, error)
	FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.Guardian, error)
	Update(ctx context.Context, guardian *entity.Guardian) error
	Delete(ctx context.Context, id, applicantID uuid.UUID) error
	ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error)
}

// PaymentTransactionRepository persists payment transactions.
type PaymentTransactionRepository interface {
	Create(ctx context.Context, transaction *entity.PaymentTransaction) error
	FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entity.PaymentTransaction, error)
	FindByID(ctx context.Context, id, applicantID uuid.UUID) (*entity.PaymentTransaction, error)
	Update(ctx context.Context, transaction *entity.PaymentTransaction) error
	ExistsForApplicant(ctx context.Context, id, applicantID uuid.UUID) (bool, error)
}
