// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"testament/config"
	"testament/internal/domain/entity"
	domainerrors "testament/internal/domain/errors"
	"testament/internal/domain/repository"
	"testament/internal/domain/service"
	"testament/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const otpDigits = 6

// registrationService implements the RegistrationUsecase interface. It is the
// session abstraction for applicants: a registration key stands in for a login.
type registrationService struct {
	txManager repository.TransactionManager
	keyGen    service.KeyGenerator
	otpHasher service.OTPHasher
	notifier  service.Notifier
	qrcode    service.QRCodeService
	cfg       *config.Config
	logger    *slog.Logger
}

// RegistrationServiceParams holds dependencies for the registration service, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	KeyGen    service.KeyGenerator
	OTPHasher service.OTPHasher
	Notifier  service.Notifier
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		txManager: params.TxManager,
		keyGen:    params.KeyGen,
		otpHasher: params.OTPHasher,
		notifier:  params.Notifier,
		qrcode:    params.QRCode,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// StartRegistration creates the applicant and issues their registration key.
func (srv *registrationService) StartRegistration(ctx context.Context, input *usecase.StartRegistrationInput) (*usecase.RegistrationOutput, error) {
	srv.logger.Info("Starting will registration", "email", input.Email)

	var output *usecase.RegistrationOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		applicantRepo := repoFactory.NewApplicantRepository()

		// A second registration with the same email is a conflict, not a
		// silent merge.
		_, err := applicantRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("registration start failed")
		}
		if !errors.Is(err, repository.ErrApplicantNotFound) {
			return errors.Wrap(err, "failed to find applicant by email")
		}

		applicant := &entity.Applicant{
			FullName:    input.FullName,
			Email:       input.Email,
			Phone:       input.Phone,
			CurrentStep: entity.StepStarted,
		}
		if err := applicantRepo.Create(ctx, applicant); err != nil {
			return errors.WithStack(err)
		}

		key, err := srv.issueKey(ctx, repoFactory, applicant.ID)
		if err != nil {
			return err
		}

		output = &usecase.RegistrationOutput{
			ApplicationID:   applicant.ID,
			RegistrationKey: key,
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Failed to start registration", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute registration start transaction")
	}

	// Delivery is best-effort; the key is already in the HTTP response.
	if err := srv.notifier.SendRegistrationKey(ctx, input.Email, output.RegistrationKey); err != nil {
		srv.logger.Warn("Failed to deliver registration key", "error", err)
	}
	srv.logger.Debug("Registration started", "applicationID", output.ApplicationID)

	return output, nil
}

// GenerateAndSaveKey issues a key for an applicant. Issuance is idempotent:
// when a key is already bound to the applicant it is returned unchanged.
func (srv *registrationService) GenerateAndSaveKey(ctx context.Context, applicantID uuid.UUID) (string, error) {
	var key string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		issued, err := srv.issueKey(ctx, repoFactory, applicantID)
		if err != nil {
			return err
		}
		key = issued

		return nil
	})

	if err != nil {
		return "", errors.Wrap(err, "failed to execute key issuance transaction")
	}

	return key, nil
}

// issueKey is the transactional core of idempotent key issuance.
func (srv *registrationService) issueKey(ctx context.Context, repoFactory repository.RepositoryFactory, applicantID uuid.UUID) (string, error) {
	keyRepo := repoFactory.NewRegistrationKeyRepository()

	existing, err := keyRepo.FindByApplicant(ctx, applicantID)
	if err == nil {
		return existing.Key, nil
	}
	if !errors.Is(err, repository.ErrRegistrationKeyNotFound) {
		return "", errors.Wrap(err, "failed to find registration key by applicant")
	}

	token, err := srv.keyGen.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate registration key")
	}

	newKey := &entity.RegistrationKey{
		Key:         token,
		ApplicantID: applicantID,
	}
	if err := keyRepo.Create(ctx, newKey); err != nil {
		// Lost a race against a concurrent issuance for the same applicant;
		// the winner's key is the one to hand out.
		if errors.Is(err, repository.ErrRegistrationKeyExists) {
			winner, findErr := keyRepo.FindByApplicant(ctx, applicantID)
			if findErr != nil {
				return "", errors.Wrap(findErr, "failed to re-find registration key after conflict")
			}

			return winner.Key, nil
		}

		return "", errors.WithStack(err)
	}

	return token, nil
}

// ValidateKey resolves a registration key to its owning applicant. There is no
// single-use invalidation; expiration applies only when a TTL is configured.
func (srv *registrationService) ValidateKey(ctx context.Context, key string) (uuid.UUID, error) {
	var applicantID uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stored, err := repoFactory.NewRegistrationKeyRepository().FindByKey(ctx, key)
		if err != nil {
			if errors.Is(err, repository.ErrRegistrationKeyNotFound) {
				return domainerrors.ErrRegistrationKeyInvalid.WrapMessage("key resolution failed")
			}

			return errors.Wrap(err, "failed to find registration key")
		}

		if ttl := srv.keyTTL(); stored.ExpiresAfter(ttl, time.Now()) {
			return domainerrors.ErrRegistrationKeyInvalid.WrapMessage("key expired")
		}
		applicantID = stored.ApplicantID

		return nil
	})

	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to validate registration key")
	}

	return applicantID, nil
}

// ValidateSponsorshipKey gates the sponsored-registration flow. The provisioned
// one-time key check is not implemented yet; every key is accepted.
func (srv *registrationService) ValidateSponsorshipKey(_ context.Context, _ string) (bool, error) {
	return true, nil
}

// ResendRegistrationKey re-delivers an applicant's key. The caller always sees
// the same outcome whether or not the email is registered, so the endpoint
// cannot be used to enumerate accounts.
func (srv *registrationService) ResendRegistrationKey(ctx context.Context, email string) error {
	var key string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		applicant, err := repoFactory.NewApplicantRepository().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrApplicantNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find applicant by email")
		}

		stored, err := repoFactory.NewRegistrationKeyRepository().FindByApplicant(ctx, applicant.ID)
		if err != nil {
			if errors.Is(err, repository.ErrRegistrationKeyNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find registration key by applicant")
		}
		key = stored.Key

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute resend key transaction")
	}

	if key == "" {
		srv.logger.Debug("Resend requested for unknown email")

		return nil
	}

	if err := srv.notifier.SendRegistrationKey(ctx, email, key); err != nil {
		// Reported as success regardless; a delivery failure must not reveal
		// that the email is registered.
		srv.logger.Warn("Failed to resend registration key", "error", err)
	}

	return nil
}

// SubmitSponsoredEmail issues a one-time password for sponsored onboarding.
// The code is delivered out of band and only its hash is stored.
func (srv *registrationService) SubmitSponsoredEmail(ctx context.Context, input *usecase.SponsoredEmailInput) error {
	ok, err := srv.ValidateSponsorshipKey(ctx, input.SponsorshipKey)
	if err != nil {
		return errors.Wrap(err, "failed to validate sponsorship key")
	}
	if !ok {
		return domainerrors.ErrSponsorshipKeyInvalid.WrapMessage("sponsored email rejected")
	}

	code, err := generateOTPCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate otp code")
	}

	hash, err := srv.otpHasher.Hash(code)
	if err != nil {
		return errors.Wrap(err, "failed to hash otp code")
	}

	challenge := &entity.OTPChallenge{
		Email:     input.Email,
		CodeHash:  hash,
		ExpiresAt: time.Now().Add(srv.otpTTL()),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewOTPRepository().Create(ctx, challenge); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute otp issuance transaction")
	}

	if err := srv.notifier.SendOTP(ctx, input.Email, code); err != nil {
		srv.logger.Warn("Failed to deliver otp", "error", err)
	}
	srv.logger.Info("Sponsored otp issued", "email", input.Email)

	return nil
}

// VerifySponsoredOTP redeems an OTP, creating the applicant (if needed) and
// returning their registration key.
func (srv *registrationService) VerifySponsoredOTP(ctx context.Context, input *usecase.VerifySponsoredOTPInput) (*usecase.RegistrationOutput, error) {
	var output *usecase.RegistrationOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		otpRepo := repoFactory.NewOTPRepository()

		challenge, err := otpRepo.FindLatestByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrOTPNotFound) {
				return domainerrors.ErrInvalidOTP.WrapMessage("otp verification failed")
			}

			return errors.Wrap(err, "failed to find otp challenge")
		}

		if !challenge.Usable(time.Now()) || !srv.otpHasher.Check(input.Code, challenge.CodeHash) {
			return domainerrors.ErrInvalidOTP.WrapMessage("otp verification failed")
		}

		if err := otpRepo.MarkConsumed(ctx, challenge.ID); err != nil {
			return errors.Wrap(err, "failed to consume otp challenge")
		}

		applicantRepo := repoFactory.NewApplicantRepository()
		applicant, err := applicantRepo.FindByEmail(ctx, input.Email)
		if errors.Is(err, repository.ErrApplicantNotFound) {
			applicant = &entity.Applicant{
				FullName:    input.FullName,
				Email:       input.Email,
				CurrentStep: entity.StepStarted,
			}
			if err := applicantRepo.Create(ctx, applicant); err != nil {
				return errors.WithStack(err)
			}
		} else if err != nil {
			return errors.Wrap(err, "failed to find applicant by email")
		}

		key, err := srv.issueKey(ctx, repoFactory, applicant.ID)
		if err != nil {
			return err
		}

		output = &usecase.RegistrationOutput{
			ApplicationID:   applicant.ID,
			RegistrationKey: key,
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Sponsored otp verification failed", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute otp verification transaction")
	}
	srv.logger.Debug("Sponsored registration verified", "applicationID", output.ApplicationID)

	return output, nil
}

// GetSummary reports an applicant's progress through the registration flow.
func (srv *registrationService) GetSummary(ctx context.Context, applicantID uuid.UUID) (*usecase.RegistrationSummary, error) {
	var summary *usecase.RegistrationSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		applicant, err := repoFactory.NewApplicantRepository().FindByID(ctx, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrApplicantNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("applicant not found")
			}

			return errors.Wrap(err, "failed to find applicant")
		}

		beneficiaries, err := repoFactory.NewBeneficiaryRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to list beneficiaries")
		}
		assets, err := repoFactory.NewAssetRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to list assets")
		}
		allocations, err := repoFactory.NewAssetAllocationRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to list allocations")
		}
		executors, err := repoFactory.NewExecutorRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to list executors")
		}
		guardians, err := repoFactory.NewGuardianRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to list guardians")
		}
		identifications, err := repoFactory.NewIdentificationRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to list identifications")
		}

		summary = &usecase.RegistrationSummary{
			ApplicationID:   applicant.ID,
			FullName:        applicant.FullName,
			Email:           applicant.Email,
			CurrentStep:     applicant.CurrentStep,
			IsComplete:      applicant.IsComplete,
			Beneficiaries:   len(beneficiaries),
			Assets:          len(assets),
			Allocations:     len(allocations),
			Executors:       len(executors),
			Guardians:       len(guardians),
			Identifications: len(identifications),
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get registration summary")
	}

	return summary, nil
}

// ResumeQR renders a QR code that resumes this registration on another device.
func (srv *registrationService) ResumeQR(ctx context.Context, applicantID uuid.UUID) ([]byte, error) {
	var key string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stored, err := repoFactory.NewRegistrationKeyRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRegistrationKeyNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("registration key not found")
			}

			return errors.Wrap(err, "failed to find registration key by applicant")
		}
		key = stored.Key

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute resume qr transaction")
	}

	png, err := srv.qrcode.GenerateResumeQR(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate resume qr code")
	}

	return png, nil
}

// DeleteApplicant removes the applicant; owned records cascade.
func (srv *registrationService) DeleteApplicant(ctx context.Context, applicantID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewApplicantRepository().Delete(ctx, applicantID); err != nil {
			if errors.Is(err, repository.ErrApplicantNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("applicant not found")
			}

			return errors.Wrap(err, "failed to delete applicant")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute applicant deletion transaction")
	}
	srv.logger.Info("Applicant deleted", "applicantID", applicantID)

	return nil
}

func (srv *registrationService) keyTTL() time.Duration {
	if srv.cfg.Registration == nil {
		return 0
	}

	return srv.cfg.Registration.KeyTTL
}

func (srv *registrationService) otpTTL() time.Duration {
	if srv.cfg.OTP == nil || srv.cfg.OTP.TTL <= 0 {
		return 10 * time.Minute
	}

	return srv.cfg.OTP.TTL
}

// generateOTPCode returns a uniformly random 6-digit code.
func generateOTPCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", errors.Wrap(err, "failed to read random otp")
	}

	return fmt.Sprintf("%0*d", otpDigits, n), nil
}
