package impl

import (
	"context"
	"testing"

	"testament/internal/domain/entity"
	domainerrors "testament/internal/domain/errors"
	"testament/internal/domain/repository"
	mockRepo "testament/internal/mocks/repository"
	"testament/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// allocationServiceFixtures holds all test dependencies for allocation service tests.
type allocationServiceFixtures struct {
	service   usecase.AllocationUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestAllocationService(t *testing.T) allocationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewAllocationService(txManager, newDiscardLogger())

	return allocationServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestAllocationService_Add_Success(t *testing.T) {
	fx := createTestAllocationService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	assetID := uuid.New()
	beneficiaryID := uuid.New()
	input := &usecase.AddAllocationInput{
		AssetID:       assetID,
		BeneficiaryID: beneficiaryID,
		Percentage:    50,
	}

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	assetRepo := mockRepo.NewMockAssetRepository(t)
	beneficiaryRepo := mockRepo.NewMockBeneficiaryRepository(t)
	allocationRepo := mockRepo.NewMockAssetAllocationRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewAssetRepository().Return(assetRepo)
	factory.EXPECT().NewBeneficiaryRepository().Return(beneficiaryRepo)
	factory.EXPECT().NewAssetAllocationRepository().Return(allocationRepo)

	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(&entity.Applicant{ID: applicantID}, nil)
	assetRepo.EXPECT().
		ExistsForApplicant(ctx, assetID, applicantID).
		Return(true, nil)
	beneficiaryRepo.EXPECT().
		ExistsForApplicant(ctx, beneficiaryID, applicantID).
		Return(true, nil)
	allocationRepo.EXPECT().
		FindByTuple(ctx, applicantID, assetID, beneficiaryID).
		Return(nil, repository.ErrRecordNotFound)
	allocationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AssetAllocation")).
		Run(func(ctx context.Context, allocation *entity.AssetAllocation) {
			assert.Equal(t, applicantID, allocation.ApplicantID)
			allocation.ID = uuid.New()
		}).
		Return(nil)
	applicantRepo.EXPECT().
		Touch(ctx, applicantID, entity.StepAllocations).
		Return(nil)

	created, err := fx.service.Add(ctx, applicantID, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, assetID, created.AssetID)
	assert.Equal(t, beneficiaryID, created.BeneficiaryID)
	assert.InDelta(t, 50, created.Percentage, 0.001)
}

func TestAllocationService_Add_ForeignAssetLooksMissing(t *testing.T) {
	fx := createTestAllocationService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	input := &usecase.AddAllocationInput{
		AssetID:       uuid.New(),
		BeneficiaryID: uuid.New(),
		Percentage:    25,
	}

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	assetRepo := mockRepo.NewMockAssetRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewAssetRepository().Return(assetRepo)

	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(&entity.Applicant{ID: applicantID}, nil)

	// The asset exists but belongs to another applicant; the predicate simply
	// reports false and the caller sees a plain not-found.
	assetRepo.EXPECT().
		ExistsForApplicant(ctx, input.AssetID, applicantID).
		Return(false, nil)

	created, err := fx.service.Add(ctx, applicantID, input)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAllocationService_Add_ForeignBeneficiaryLooksMissing(t *testing.T) {
	fx := createTestAllocationService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	input := &usecase.AddAllocationInput{
		AssetID:       uuid.New(),
		BeneficiaryID: uuid.New(),
		Percentage:    25,
	}

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	assetRepo := mockRepo.NewMockAssetRepository(t)
	beneficiaryRepo := mockRepo.NewMockBeneficiaryRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewAssetRepository().Return(assetRepo)
	factory.EXPECT().NewBeneficiaryRepository().Return(beneficiaryRepo)

	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(&entity.Applicant{ID: applicantID}, nil)
	assetRepo.EXPECT().
		ExistsForApplicant(ctx, input.AssetID, applicantID).
		Return(true, nil)
	beneficiaryRepo.EXPECT().
		ExistsForApplicant(ctx, input.BeneficiaryID, applicantID).
		Return(false, nil)

	created, err := fx.service.Add(ctx, applicantID, input)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAllocationService_Add_DuplicateTuple(t *testing.T) {
	fx := createTestAllocationService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	assetID := uuid.New()
	beneficiaryID := uuid.New()
	input := &usecase.AddAllocationInput{
		AssetID:       assetID,
		BeneficiaryID: beneficiaryID,
		Percentage:    25,
	}

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	assetRepo := mockRepo.NewMockAssetRepository(t)
	beneficiaryRepo := mockRepo.NewMockBeneficiaryRepository(t)
	allocationRepo := mockRepo.NewMockAssetAllocationRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewAssetRepository().Return(assetRepo)
	factory.EXPECT().NewBeneficiaryRepository().Return(beneficiaryRepo)
	factory.EXPECT().NewAssetAllocationRepository().Return(allocationRepo)

	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(&entity.Applicant{ID: applicantID}, nil)
	assetRepo.EXPECT().
		ExistsForApplicant(ctx, assetID, applicantID).
		Return(true, nil)
	beneficiaryRepo.EXPECT().
		ExistsForApplicant(ctx, beneficiaryID, applicantID).
		Return(true, nil)
	allocationRepo.EXPECT().
		FindByTuple(ctx, applicantID, assetID, beneficiaryID).
		Return(&entity.AssetAllocation{ID: uuid.New()}, nil)

	created, err := fx.service.Add(ctx, applicantID, input)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAllocation)
}

func TestAllocationService_Add_DuplicateRacesPastPreCheck(t *testing.T) {
	fx := createTestAllocationService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	assetID := uuid.New()
	beneficiaryID := uuid.New()
	input := &usecase.AddAllocationInput{
		AssetID:       assetID,
		BeneficiaryID: beneficiaryID,
		Percentage:    25,
	}

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	assetRepo := mockRepo.NewMockAssetRepository(t)
	beneficiaryRepo := mockRepo.NewMockBeneficiaryRepository(t)
	allocationRepo := mockRepo.NewMockAssetAllocationRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewAssetRepository().Return(assetRepo)
	factory.EXPECT().NewBeneficiaryRepository().Return(beneficiaryRepo)
	factory.EXPECT().NewAssetAllocationRepository().Return(allocationRepo)

	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(&entity.Applicant{ID: applicantID}, nil)
	assetRepo.EXPECT().
		ExistsForApplicant(ctx, assetID, applicantID).
		Return(true, nil)
	beneficiaryRepo.EXPECT().
		ExistsForApplicant(ctx, beneficiaryID, applicantID).
		Return(true, nil)
	allocationRepo.EXPECT().
		FindByTuple(ctx, applicantID, assetID, beneficiaryID).
		Return(nil, repository.ErrRecordNotFound)

	// A concurrent insert wins between the pre-check and the write; the unique
	// index surfaces it and the caller still sees a conflict.
	allocationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AssetAllocation")).
		Return(repository.ErrDuplicateAllocation)

	created, err := fx.service.Add(ctx, applicantID, input)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAllocation)
}

func TestAllocationService_Update_PatchesPercentageOnly(t *testing.T) {
	fx := createTestAllocationService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	allocationID := uuid.New()
	assetID := uuid.New()
	beneficiaryID := uuid.New()
	newPercentage := 75.5
	input := &usecase.UpdateAllocationInput{Percentage: &newPercentage}

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	allocationRepo := mockRepo.NewMockAssetAllocationRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewAssetAllocationRepository().Return(allocationRepo)

	allocationRepo.EXPECT().
		FindByID(ctx, allocationID, applicantID).
		Return(&entity.AssetAllocation{
			ID:            allocationID,
			ApplicantID:   applicantID,
			AssetID:       assetID,
			BeneficiaryID: beneficiaryID,
			Percentage:    50,
		}, nil)
	allocationRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.AssetAllocation")).
		Run(func(ctx context.Context, allocation *entity.AssetAllocation) {
			assert.InDelta(t, 75.5, allocation.Percentage, 0.001)
			assert.Equal(t, assetID, allocation.AssetID)
			assert.Equal(t, beneficiaryID, allocation.BeneficiaryID)
		}).
		Return(nil)
	applicantRepo.EXPECT().
		Touch(ctx, applicantID, entity.StepAllocations).
		Return(nil)

	updated, err := fx.service.Update(ctx, applicantID, allocationID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.InDelta(t, 75.5, updated.Percentage, 0.001)
}

func TestAllocationService_Delete_NotFound(t *testing.T) {
	fx := createTestAllocationService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	allocationID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	allocationRepo := mockRepo.NewMockAssetAllocationRepository(t)
	factory.EXPECT().NewAssetAllocationRepository().Return(allocationRepo)

	allocationRepo.EXPECT().
		Delete(ctx, allocationID, applicantID).
		Return(repository.ErrRecordNotFound)

	err := fx.service.Delete(ctx, applicantID, allocationID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
