package impl

import (
	"context"
	"testing"

	"testament/internal/domain/entity"
	domainerrors "testament/internal/domain/errors"
	"testament/internal/domain/repository"
	"testament/internal/domain/service"
	mockRepo "testament/internal/mocks/repository"
	mockSvc "testament/internal/mocks/service"
	"testament/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service   usecase.PaymentUsecase
	txManager *mockRepo.MockTransactionManager
	gateway   *mockSvc.MockPaymentGateway
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockSvc.NewMockPaymentGateway(t)

	service := NewPaymentService(PaymentServiceParams{
		TxManager: txManager,
		Gateway:   gateway,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return paymentServiceFixtures{
		service:   service,
		txManager: txManager,
		gateway:   gateway,
	}
}

func TestPaymentService_Capture_SuccessCompletesRegistration(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	input := &usecase.CapturePaymentInput{Amount: 150}

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	paymentRepo := mockRepo.NewMockPaymentTransactionRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewPaymentTransactionRepository().Return(paymentRepo)

	applicant := &entity.Applicant{
		ID:          applicantID,
		Email:       "ama@example.com",
		CurrentStep: entity.StepGuardians,
	}
	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(applicant, nil)

	fx.gateway.EXPECT().
		Charge(ctx, mock.AnythingOfType("*service.ChargeRequest")).
		Run(func(ctx context.Context, req *service.ChargeRequest) {
			assert.InDelta(t, 150, req.Amount, 0.001)
			assert.Equal(t, "USD", req.Currency)
			assert.Equal(t, "ama@example.com", req.Email)
		}).
		Return(&service.ChargeResult{Reference: "ch_123", Succeeded: true}, nil)

	paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PaymentTransaction")).
		Run(func(ctx context.Context, transaction *entity.PaymentTransaction) {
			transaction.ID = uuid.New()
		}).
		Return(nil)
	applicantRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Applicant")).
		Run(func(ctx context.Context, updated *entity.Applicant) {
			assert.True(t, updated.IsComplete)
			assert.Equal(t, entity.StepPayment, updated.CurrentStep)
		}).
		Return(nil)

	transaction, err := fx.service.Capture(ctx, applicantID, input)

	require.NoError(t, err)
	require.NotNil(t, transaction)
	assert.Equal(t, entity.PaymentStatusSucceeded, transaction.Status)
	assert.Equal(t, "ch_123", transaction.Reference)
}

func TestPaymentService_Capture_DeclinedChargeIsRecorded(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	input := &usecase.CapturePaymentInput{Amount: 150}

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	paymentRepo := mockRepo.NewMockPaymentTransactionRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewPaymentTransactionRepository().Return(paymentRepo)

	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(&entity.Applicant{ID: applicantID, Email: "ama@example.com"}, nil)

	fx.gateway.EXPECT().
		Charge(ctx, mock.AnythingOfType("*service.ChargeRequest")).
		Return(&service.ChargeResult{Reference: "ch_456", Succeeded: false}, nil)

	// The failed attempt is persisted, but the applicant is never completed.
	paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PaymentTransaction")).
		Run(func(ctx context.Context, transaction *entity.PaymentTransaction) {
			assert.Equal(t, entity.PaymentStatusFailed, transaction.Status)
		}).
		Return(nil)

	transaction, err := fx.service.Capture(ctx, applicantID, input)

	require.Error(t, err)
	require.NotNil(t, transaction)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
	assert.Equal(t, entity.PaymentStatusFailed, transaction.Status)
	applicantRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPaymentService_Capture_GatewayUnavailable(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)

	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(&entity.Applicant{ID: applicantID, Email: "ama@example.com"}, nil)

	fx.gateway.EXPECT().
		Charge(ctx, mock.AnythingOfType("*service.ChargeRequest")).
		Return(nil, assert.AnError)

	transaction, err := fx.service.Capture(ctx, applicantID, &usecase.CapturePaymentInput{Amount: 150})

	require.Error(t, err)
	assert.Nil(t, transaction)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
}

func TestPaymentService_Capture_UnknownApplicant(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)

	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(nil, repository.ErrApplicantNotFound)

	transaction, err := fx.service.Capture(ctx, applicantID, &usecase.CapturePaymentInput{Amount: 150})

	require.Error(t, err)
	assert.Nil(t, transaction)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	fx.gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
}

func TestPaymentService_Get_ScopedToApplicant(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	applicantID := uuid.New()
	transactionID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	paymentRepo := mockRepo.NewMockPaymentTransactionRepository(t)
	factory.EXPECT().NewPaymentTransactionRepository().Return(paymentRepo)

	paymentRepo.EXPECT().
		FindByID(ctx, transactionID, applicantID).
		Return(nil, repository.ErrRecordNotFound)

	transaction, err := fx.service.Get(ctx, applicantID, transactionID)

	require.Error(t, err)
	assert.Nil(t, transaction)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
