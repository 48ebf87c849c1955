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

// beneficiaryServiceFixtures holds all test dependencies for beneficiary service tests.
type beneficiaryServiceFixtures struct {
	service   usecase.BeneficiaryUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestBeneficiaryService(t *testing.T) beneficiaryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewBeneficiaryService(txManager, newDiscardLogger())

	return beneficiaryServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestBeneficiaryService_Add_Success(t *testing.T) {
	fx := createTestBeneficiaryService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	input := &usecase.AddBeneficiaryInput{
		FullName:     "Efua Mensah",
		Relationship: "daughter",
		Email:        "efua@example.com",
	}

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	beneficiaryRepo := mockRepo.NewMockBeneficiaryRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewBeneficiaryRepository().Return(beneficiaryRepo)

	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(&entity.Applicant{ID: applicantID}, nil)
	beneficiaryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Beneficiary")).
		Run(func(ctx context.Context, beneficiary *entity.Beneficiary) {
			assert.Equal(t, applicantID, beneficiary.ApplicantID)
			beneficiary.ID = uuid.New()
		}).
		Return(nil)
	applicantRepo.EXPECT().
		Touch(ctx, applicantID, entity.StepBeneficiaries).
		Return(nil)

	created, err := fx.service.Add(ctx, applicantID, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, applicantID, created.ApplicantID)
	assert.Equal(t, "Efua Mensah", created.FullName)
}

func TestBeneficiaryService_Add_UnknownApplicant(t *testing.T) {
	fx := createTestBeneficiaryService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)

	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(nil, repository.ErrApplicantNotFound)

	created, err := fx.service.Add(ctx, applicantID, &usecase.AddBeneficiaryInput{
		FullName:     "Efua Mensah",
		Relationship: "daughter",
	})

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBeneficiaryService_Get_WrongApplicantLooksMissing(t *testing.T) {
	fx := createTestBeneficiaryService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	beneficiaryID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	beneficiaryRepo := mockRepo.NewMockBeneficiaryRepository(t)
	factory.EXPECT().NewBeneficiaryRepository().Return(beneficiaryRepo)

	// The repository reports the same sentinel whether the row is absent or
	// owned by someone else.
	beneficiaryRepo.EXPECT().
		FindByID(ctx, beneficiaryID, applicantID).
		Return(nil, repository.ErrRecordNotFound)

	found, err := fx.service.Get(ctx, applicantID, beneficiaryID)

	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBeneficiaryService_Update_PatchesOnlyProvidedFields(t *testing.T) {
	fx := createTestBeneficiaryService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	beneficiaryID := uuid.New()
	newName := "Efua Owusu"
	input := &usecase.UpdateBeneficiaryInput{FullName: &newName}

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	beneficiaryRepo := mockRepo.NewMockBeneficiaryRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewBeneficiaryRepository().Return(beneficiaryRepo)

	beneficiaryRepo.EXPECT().
		FindByID(ctx, beneficiaryID, applicantID).
		Return(&entity.Beneficiary{
			ID:           beneficiaryID,
			ApplicantID:  applicantID,
			FullName:     "Efua Mensah",
			Relationship: "daughter",
			Email:        "efua@example.com",
		}, nil)
	beneficiaryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Beneficiary")).
		Run(func(ctx context.Context, beneficiary *entity.Beneficiary) {
			assert.Equal(t, "Efua Owusu", beneficiary.FullName)
			assert.Equal(t, "daughter", beneficiary.Relationship)
			assert.Equal(t, "efua@example.com", beneficiary.Email)
		}).
		Return(nil)
	applicantRepo.EXPECT().
		Touch(ctx, applicantID, entity.StepBeneficiaries).
		Return(nil)

	updated, err := fx.service.Update(ctx, applicantID, beneficiaryID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Efua Owusu", updated.FullName)
}

func TestBeneficiaryService_Update_EmbeddedApplicantMismatch(t *testing.T) {
	fx := createTestBeneficiaryService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	otherApplicant := uuid.New()
	input := &usecase.UpdateBeneficiaryInput{ApplicantID: &otherApplicant}

	updated, err := fx.service.Update(ctx, applicantID, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestBeneficiaryService_Delete_Success(t *testing.T) {
	fx := createTestBeneficiaryService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	beneficiaryID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	beneficiaryRepo := mockRepo.NewMockBeneficiaryRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewBeneficiaryRepository().Return(beneficiaryRepo)

	beneficiaryRepo.EXPECT().
		Delete(ctx, beneficiaryID, applicantID).
		Return(nil)
	applicantRepo.EXPECT().
		Touch(ctx, applicantID, entity.StepBeneficiaries).
		Return(nil)

	err := fx.service.Delete(ctx, applicantID, beneficiaryID)

	require.NoError(t, err)
}

func TestBeneficiaryService_Delete_NotFound(t *testing.T) {
	fx := createTestBeneficiaryService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	beneficiaryID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	beneficiaryRepo := mockRepo.NewMockBeneficiaryRepository(t)
	factory.EXPECT().NewBeneficiaryRepository().Return(beneficiaryRepo)

	beneficiaryRepo.EXPECT().
		Delete(ctx, beneficiaryID, applicantID).
		Return(repository.ErrRecordNotFound)

	err := fx.service.Delete(ctx, applicantID, beneficiaryID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBeneficiaryService_List_EmptyWhenNoneExist(t *testing.T) {
	fx := createTestBeneficiaryService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	beneficiaryRepo := mockRepo.NewMockBeneficiaryRepository(t)
	factory.EXPECT().NewBeneficiaryRepository().Return(beneficiaryRepo)

	beneficiaryRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return([]*entity.Beneficiary{}, nil)

	beneficiaries, err := fx.service.List(ctx, applicantID)

	require.NoError(t, err)
	assert.Empty(t, beneficiaries)
}
