package impl

import (
	"context"
	"testing"
	"time"

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

// personalDetailsServiceFixtures holds all test dependencies for personal-details service tests.
type personalDetailsServiceFixtures struct {
	service   usecase.PersonalDetailsUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestPersonalDetailsService(t *testing.T) personalDetailsServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewPersonalDetailsService(txManager, newDiscardLogger())

	return personalDetailsServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func newAddPersonalDetailsInput() *usecase.AddPersonalDetailsInput {
	return &usecase.AddPersonalDetailsInput{
		FirstName:   "Ama",
		LastName:    "Mensah",
		DateOfBirth: time.Date(1970, time.March, 12, 0, 0, 0, 0, time.UTC),
		Address:     "12 Ridge Road",
		City:        "Accra",
		Country:     "Ghana",
	}
}

func TestPersonalDetailsService_Add_Success(t *testing.T) {
	fx := createTestPersonalDetailsService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	detailsRepo := mockRepo.NewMockPersonalDetailsRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewPersonalDetailsRepository().Return(detailsRepo)

	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(&entity.Applicant{ID: applicantID}, nil)
	detailsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PersonalDetails")).
		Run(func(ctx context.Context, details *entity.PersonalDetails) {
			assert.Equal(t, applicantID, details.ApplicantID)
			details.ID = uuid.New()
		}).
		Return(nil)
	applicantRepo.EXPECT().
		Touch(ctx, applicantID, entity.StepPersonalDetails).
		Return(nil)

	created, err := fx.service.Add(ctx, applicantID, newAddPersonalDetailsInput())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Ama", created.FirstName)
}

func TestPersonalDetailsService_Add_SecondSubmissionConflicts(t *testing.T) {
	fx := createTestPersonalDetailsService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	detailsRepo := mockRepo.NewMockPersonalDetailsRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewPersonalDetailsRepository().Return(detailsRepo)

	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(&entity.Applicant{ID: applicantID}, nil)
	detailsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PersonalDetails")).
		Return(repository.ErrPersonalDetailsExist)

	created, err := fx.service.Add(ctx, applicantID, newAddPersonalDetailsInput())

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrPersonalDetailsExist)
}

func TestPersonalDetailsService_Get_NotSubmittedYet(t *testing.T) {
	fx := createTestPersonalDetailsService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	detailsRepo := mockRepo.NewMockPersonalDetailsRepository(t)
	factory.EXPECT().NewPersonalDetailsRepository().Return(detailsRepo)

	detailsRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return(nil, repository.ErrRecordNotFound)

	details, err := fx.service.Get(ctx, applicantID)

	require.Error(t, err)
	assert.Nil(t, details)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPersonalDetailsService_Update_PatchesOnlyProvidedFields(t *testing.T) {
	fx := createTestPersonalDetailsService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	detailsID := uuid.New()
	newCity := "Kumasi"
	input := &usecase.UpdatePersonalDetailsInput{City: &newCity}

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	detailsRepo := mockRepo.NewMockPersonalDetailsRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewPersonalDetailsRepository().Return(detailsRepo)

	detailsRepo.EXPECT().
		FindByID(ctx, detailsID, applicantID).
		Return(&entity.PersonalDetails{
			ID:          detailsID,
			ApplicantID: applicantID,
			FirstName:   "Ama",
			LastName:    "Mensah",
			City:        "Accra",
			Country:     "Ghana",
		}, nil)
	detailsRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.PersonalDetails")).
		Run(func(ctx context.Context, details *entity.PersonalDetails) {
			assert.Equal(t, "Kumasi", details.City)
			assert.Equal(t, "Ama", details.FirstName)
			assert.Equal(t, "Ghana", details.Country)
		}).
		Return(nil)
	applicantRepo.EXPECT().
		Touch(ctx, applicantID, entity.StepPersonalDetails).
		Return(nil)

	updated, err := fx.service.Update(ctx, applicantID, detailsID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Kumasi", updated.City)
}
