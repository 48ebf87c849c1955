package impl

import (
	"context"
	"testing"
	"time"

	"testament/config"
	"testament/internal/domain/entity"
	domainerrors "testament/internal/domain/errors"
	"testament/internal/domain/repository"
	mockRepo "testament/internal/mocks/repository"
	mockSvc "testament/internal/mocks/service"
	"testament/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// registrationServiceFixtures holds all test dependencies for registration service tests.
type registrationServiceFixtures struct {
	service   usecase.RegistrationUsecase
	txManager *mockRepo.MockTransactionManager
	keyGen    *mockSvc.MockKeyGenerator
	otpHasher *mockSvc.MockOTPHasher
	notifier  *mockSvc.MockNotifier
	qrcode    *mockSvc.MockQRCodeService
	cfg       *config.Config
}

func createTestRegistrationService(t *testing.T) registrationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	keyGen := mockSvc.NewMockKeyGenerator(t)
	otpHasher := mockSvc.NewMockOTPHasher(t)
	notifier := mockSvc.NewMockNotifier(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	cfg := newTestConfig()

	service := NewRegistrationService(RegistrationServiceParams{
		TxManager: txManager,
		KeyGen:    keyGen,
		OTPHasher: otpHasher,
		Notifier:  notifier,
		QRCode:    qrcode,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return registrationServiceFixtures{
		service:   service,
		txManager: txManager,
		keyGen:    keyGen,
		otpHasher: otpHasher,
		notifier:  notifier,
		qrcode:    qrcode,
		cfg:       cfg,
	}
}

func TestRegistrationService_StartRegistration_Success(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := &usecase.StartRegistrationInput{
		FullName: "Ama Mensah",
		Email:    "ama@example.com",
		Phone:    "+233201234567",
	}

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	keyRepo := mockRepo.NewMockRegistrationKeyRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewRegistrationKeyRepository().Return(keyRepo)

	applicantRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrApplicantNotFound)
	applicantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Applicant")).
		Run(func(ctx context.Context, applicant *entity.Applicant) {
			applicant.ID = uuid.New()
		}).
		Return(nil)

	keyRepo.EXPECT().
		FindByApplicant(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrRegistrationKeyNotFound)
	fx.keyGen.EXPECT().Generate().Return("fresh-key", nil)
	keyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RegistrationKey")).
		Run(func(ctx context.Context, key *entity.RegistrationKey) {
			assert.Equal(t, "fresh-key", key.Key)
		}).
		Return(nil)

	fx.notifier.EXPECT().
		SendRegistrationKey(ctx, input.Email, "fresh-key").
		Return(nil)

	output, err := fx.service.StartRegistration(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "fresh-key", output.RegistrationKey)
	assert.NotEqual(t, uuid.Nil, output.ApplicationID)
}

func TestRegistrationService_StartRegistration_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := &usecase.StartRegistrationInput{
		FullName: "Ama Mensah",
		Email:    "ama@example.com",
	}

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)

	applicantRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.Applicant{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.StartRegistration(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestRegistrationService_GenerateAndSaveKey_ReturnsExistingKey(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	keyRepo := mockRepo.NewMockRegistrationKeyRepository(t)
	factory.EXPECT().NewRegistrationKeyRepository().Return(keyRepo)

	keyRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return(&entity.RegistrationKey{Key: "existing-key", ApplicantID: applicantID}, nil)

	key, err := fx.service.GenerateAndSaveKey(ctx, applicantID)

	require.NoError(t, err)
	assert.Equal(t, "existing-key", key)
}

func TestRegistrationService_GenerateAndSaveKey_IssuesNewKey(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	keyRepo := mockRepo.NewMockRegistrationKeyRepository(t)
	factory.EXPECT().NewRegistrationKeyRepository().Return(keyRepo)

	keyRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return(nil, repository.ErrRegistrationKeyNotFound)
	fx.keyGen.EXPECT().Generate().Return("fresh-key", nil)
	keyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RegistrationKey")).
		Return(nil)

	key, err := fx.service.GenerateAndSaveKey(ctx, applicantID)

	require.NoError(t, err)
	assert.Equal(t, "fresh-key", key)
}

func TestRegistrationService_GenerateAndSaveKey_LosesIssuanceRace(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	keyRepo := mockRepo.NewMockRegistrationKeyRepository(t)
	factory.EXPECT().NewRegistrationKeyRepository().Return(keyRepo)

	keyRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return(nil, repository.ErrRegistrationKeyNotFound).
		Once()
	fx.keyGen.EXPECT().Generate().Return("loser-key", nil)
	keyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RegistrationKey")).
		Return(repository.ErrRegistrationKeyExists)
	keyRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return(&entity.RegistrationKey{Key: "winner-key", ApplicantID: applicantID}, nil).
		Once()

	key, err := fx.service.GenerateAndSaveKey(ctx, applicantID)

	require.NoError(t, err)
	assert.Equal(t, "winner-key", key)
}

func TestRegistrationService_ValidateKey_Success(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	keyRepo := mockRepo.NewMockRegistrationKeyRepository(t)
	factory.EXPECT().NewRegistrationKeyRepository().Return(keyRepo)

	keyRepo.EXPECT().
		FindByKey(ctx, "valid-key").
		Return(&entity.RegistrationKey{
			Key:         "valid-key",
			ApplicantID: applicantID,
			CreatedAt:   time.Now().Add(-time.Hour),
		}, nil)

	resolved, err := fx.service.ValidateKey(ctx, "valid-key")

	require.NoError(t, err)
	assert.Equal(t, applicantID, resolved)
}

func TestRegistrationService_ValidateKey_UnknownKey(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	factory := expectTransaction(t, fx.txManager, ctx)
	keyRepo := mockRepo.NewMockRegistrationKeyRepository(t)
	factory.EXPECT().NewRegistrationKeyRepository().Return(keyRepo)

	keyRepo.EXPECT().
		FindByKey(ctx, "bogus-key").
		Return(nil, repository.ErrRegistrationKeyNotFound)

	resolved, err := fx.service.ValidateKey(ctx, "bogus-key")

	require.Error(t, err)
	assert.Equal(t, uuid.Nil, resolved)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationKeyInvalid)
}

func TestRegistrationService_ValidateKey_ExpiredWhenTTLConfigured(t *testing.T) {
	fx := createTestRegistrationService(t)
	fx.cfg.Registration.KeyTTL = time.Hour

	ctx := context.Background()

	factory := expectTransaction(t, fx.txManager, ctx)
	keyRepo := mockRepo.NewMockRegistrationKeyRepository(t)
	factory.EXPECT().NewRegistrationKeyRepository().Return(keyRepo)

	keyRepo.EXPECT().
		FindByKey(ctx, "stale-key").
		Return(&entity.RegistrationKey{
			Key:         "stale-key",
			ApplicantID: uuid.New(),
			CreatedAt:   time.Now().Add(-2 * time.Hour),
		}, nil)

	_, err := fx.service.ValidateKey(ctx, "stale-key")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationKeyInvalid)
}

func TestRegistrationService_ValidateKey_ZeroTTLNeverExpires(t *testing.T) {
	fx := createTestRegistrationService(t)
	fx.cfg.Registration.KeyTTL = 0

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	keyRepo := mockRepo.NewMockRegistrationKeyRepository(t)
	factory.EXPECT().NewRegistrationKeyRepository().Return(keyRepo)

	keyRepo.EXPECT().
		FindByKey(ctx, "ancient-key").
		Return(&entity.RegistrationKey{
			Key:         "ancient-key",
			ApplicantID: applicantID,
			CreatedAt:   time.Now().AddDate(-3, 0, 0),
		}, nil)

	resolved, err := fx.service.ValidateKey(ctx, "ancient-key")

	require.NoError(t, err)
	assert.Equal(t, applicantID, resolved)
}

func TestRegistrationService_ResendRegistrationKey_UnknownEmailLooksIdentical(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)

	applicantRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrApplicantNotFound)

	err := fx.service.ResendRegistrationKey(ctx, "nobody@example.com")

	// No error and no notification; the caller cannot tell the email is unknown.
	require.NoError(t, err)
	fx.notifier.AssertNotCalled(t, "SendRegistrationKey", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistrationService_ResendRegistrationKey_KnownEmail(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	keyRepo := mockRepo.NewMockRegistrationKeyRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewRegistrationKeyRepository().Return(keyRepo)

	applicantRepo.EXPECT().
		FindByEmail(ctx, "ama@example.com").
		Return(&entity.Applicant{ID: applicantID, Email: "ama@example.com"}, nil)
	keyRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return(&entity.RegistrationKey{Key: "existing-key", ApplicantID: applicantID}, nil)
	fx.notifier.EXPECT().
		SendRegistrationKey(ctx, "ama@example.com", "existing-key").
		Return(nil)

	err := fx.service.ResendRegistrationKey(ctx, "ama@example.com")

	require.NoError(t, err)
}

func TestRegistrationService_ResendRegistrationKey_DeliveryFailureStaysHidden(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	keyRepo := mockRepo.NewMockRegistrationKeyRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewRegistrationKeyRepository().Return(keyRepo)

	applicantRepo.EXPECT().
		FindByEmail(ctx, "ama@example.com").
		Return(&entity.Applicant{ID: applicantID, Email: "ama@example.com"}, nil)
	keyRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return(&entity.RegistrationKey{Key: "existing-key", ApplicantID: applicantID}, nil)
	fx.notifier.EXPECT().
		SendRegistrationKey(ctx, "ama@example.com", "existing-key").
		Return(assert.AnError)

	err := fx.service.ResendRegistrationKey(ctx, "ama@example.com")

	require.NoError(t, err)
}

func TestRegistrationService_SubmitSponsoredEmail_IssuesOTP(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := &usecase.SponsoredEmailInput{
		Email:          "kofi@example.com",
		SponsorshipKey: "sponsor-key",
	}

	var issuedCode string
	fx.otpHasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Run(func(code string) {
			issuedCode = code
		}).
		Return("hashed-code", nil)

	factory := expectTransaction(t, fx.txManager, ctx)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	factory.EXPECT().NewOTPRepository().Return(otpRepo)

	otpRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.OTPChallenge")).
		Run(func(ctx context.Context, challenge *entity.OTPChallenge) {
			assert.Equal(t, input.Email, challenge.Email)
			assert.Equal(t, "hashed-code", challenge.CodeHash)
			assert.True(t, challenge.ExpiresAt.After(time.Now()))
		}).
		Return(nil)

	fx.notifier.EXPECT().
		SendOTP(ctx, input.Email, mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.SubmitSponsoredEmail(ctx, input)

	require.NoError(t, err)
	assert.Len(t, issuedCode, 6)
}

func TestRegistrationService_VerifySponsoredOTP_Success(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := &usecase.VerifySponsoredOTPInput{
		Email:    "kofi@example.com",
		Code:     "123456",
		FullName: "Kofi Boateng",
	}
	challengeID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	keyRepo := mockRepo.NewMockRegistrationKeyRepository(t)
	factory.EXPECT().NewOTPRepository().Return(otpRepo)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewRegistrationKeyRepository().Return(keyRepo)

	otpRepo.EXPECT().
		FindLatestByEmail(ctx, input.Email).
		Return(&entity.OTPChallenge{
			ID:        challengeID,
			Email:     input.Email,
			CodeHash:  "hashed-code",
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}, nil)
	fx.otpHasher.EXPECT().Check("123456", "hashed-code").Return(true)
	otpRepo.EXPECT().MarkConsumed(ctx, challengeID).Return(nil)

	applicantRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrApplicantNotFound)
	applicantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Applicant")).
		Run(func(ctx context.Context, applicant *entity.Applicant) {
			applicant.ID = uuid.New()
		}).
		Return(nil)

	keyRepo.EXPECT().
		FindByApplicant(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrRegistrationKeyNotFound)
	fx.keyGen.EXPECT().Generate().Return("fresh-key", nil)
	keyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RegistrationKey")).
		Return(nil)

	output, err := fx.service.VerifySponsoredOTP(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "fresh-key", output.RegistrationKey)
}

func TestRegistrationService_VerifySponsoredOTP_WrongCode(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := &usecase.VerifySponsoredOTPInput{
		Email:    "kofi@example.com",
		Code:     "999999",
		FullName: "Kofi Boateng",
	}

	factory := expectTransaction(t, fx.txManager, ctx)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	factory.EXPECT().NewOTPRepository().Return(otpRepo)

	otpRepo.EXPECT().
		FindLatestByEmail(ctx, input.Email).
		Return(&entity.OTPChallenge{
			ID:        uuid.New(),
			Email:     input.Email,
			CodeHash:  "hashed-code",
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}, nil)
	fx.otpHasher.EXPECT().Check("999999", "hashed-code").Return(false)

	output, err := fx.service.VerifySponsoredOTP(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
	otpRepo.AssertNotCalled(t, "MarkConsumed", mock.Anything, mock.Anything)
}

func TestRegistrationService_VerifySponsoredOTP_ExpiredChallenge(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := &usecase.VerifySponsoredOTPInput{
		Email:    "kofi@example.com",
		Code:     "123456",
		FullName: "Kofi Boateng",
	}

	factory := expectTransaction(t, fx.txManager, ctx)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	factory.EXPECT().NewOTPRepository().Return(otpRepo)

	otpRepo.EXPECT().
		FindLatestByEmail(ctx, input.Email).
		Return(&entity.OTPChallenge{
			ID:        uuid.New(),
			Email:     input.Email,
			CodeHash:  "hashed-code",
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

	output, err := fx.service.VerifySponsoredOTP(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
}

func TestRegistrationService_GetSummary_CountsOwnedRecords(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	beneficiaryRepo := mockRepo.NewMockBeneficiaryRepository(t)
	assetRepo := mockRepo.NewMockAssetRepository(t)
	allocationRepo := mockRepo.NewMockAssetAllocationRepository(t)
	executorRepo := mockRepo.NewMockExecutorRepository(t)
	guardianRepo := mockRepo.NewMockGuardianRepository(t)
	identificationRepo := mockRepo.NewMockIdentificationRepository(t)

	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)
	factory.EXPECT().NewBeneficiaryRepository().Return(beneficiaryRepo)
	factory.EXPECT().NewAssetRepository().Return(assetRepo)
	factory.EXPECT().NewAssetAllocationRepository().Return(allocationRepo)
	factory.EXPECT().NewExecutorRepository().Return(executorRepo)
	factory.EXPECT().NewGuardianRepository().Return(guardianRepo)
	factory.EXPECT().NewIdentificationRepository().Return(identificationRepo)

	applicantRepo.EXPECT().
		FindByID(ctx, applicantID).
		Return(&entity.Applicant{
			ID:          applicantID,
			FullName:    "Ama Mensah",
			Email:       "ama@example.com",
			CurrentStep: entity.StepAssets,
		}, nil)
	beneficiaryRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return([]*entity.Beneficiary{{}, {}}, nil)
	assetRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return([]*entity.Asset{{}, {}, {}}, nil)
	allocationRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return([]*entity.AssetAllocation{{}}, nil)
	executorRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return(nil, nil)
	guardianRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return([]*entity.Guardian{{}}, nil)
	identificationRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return([]*entity.Identification{{}}, nil)

	summary, err := fx.service.GetSummary(ctx, applicantID)

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, applicantID, summary.ApplicationID)
	assert.Equal(t, entity.StepAssets, summary.CurrentStep)
	assert.Equal(t, 2, summary.Beneficiaries)
	assert.Equal(t, 3, summary.Assets)
	assert.Equal(t, 1, summary.Allocations)
	assert.Equal(t, 0, summary.Executors)
	assert.Equal(t, 1, summary.Guardians)
	assert.Equal(t, 1, summary.Identifications)
	assert.False(t, summary.IsComplete)
}

func TestRegistrationService_ResumeQR_Success(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	keyRepo := mockRepo.NewMockRegistrationKeyRepository(t)
	factory.EXPECT().NewRegistrationKeyRepository().Return(keyRepo)

	keyRepo.EXPECT().
		FindByApplicant(ctx, applicantID).
		Return(&entity.RegistrationKey{Key: "resume-key", ApplicantID: applicantID}, nil)
	fx.qrcode.EXPECT().
		GenerateResumeQR("resume-key").
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := fx.service.ResumeQR(ctx, applicantID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestRegistrationService_DeleteApplicant_NotFound(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	applicantID := uuid.New()

	factory := expectTransaction(t, fx.txManager, ctx)
	applicantRepo := mockRepo.NewMockApplicantRepository(t)
	factory.EXPECT().NewApplicantRepository().Return(applicantRepo)

	applicantRepo.EXPECT().
		Delete(ctx, applicantID).
		Return(repository.ErrApplicantNotFound)

	err := fx.service.DeleteApplicant(ctx, applicantID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
