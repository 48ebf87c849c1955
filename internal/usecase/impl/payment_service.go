package impl

import (
	"context"
	"log/slog"

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

// paymentService implements the PaymentUsecase interface. It is the terminal
// step of the registration flow: a succeeded charge marks the whole
// registration complete.
type paymentService struct {
	txManager repository.TransactionManager
	gateway   service.PaymentGateway
	cfg       *config.Config
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for the payment service, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Gateway   service.PaymentGateway
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager: params.TxManager,
		gateway:   params.Gateway,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

func (srv *paymentService) currency() string {
	if srv.cfg.Payment != nil && srv.cfg.Payment.Currency != "" {
		return srv.cfg.Payment.Currency
	}

	return "USD"
}

// Capture charges the registration fee through the gateway and records the
// outcome. The gateway call happens outside the transaction; only the
// already-settled result is persisted.
func (srv *paymentService) Capture(ctx context.Context, applicantID uuid.UUID, input *usecase.CapturePaymentInput) (*entity.PaymentTransaction, error) {
	var applicant *entity.Applicant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewApplicantRepository().FindByID(ctx, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrApplicantNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("applicant not found")
			}

			return errors.Wrap(err, "failed to find applicant")
		}
		applicant = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to capture payment")
	}

	result, err := srv.gateway.Charge(ctx, &service.ChargeRequest{
		Amount:   input.Amount,
		Currency: srv.currency(),
		Email:    applicant.Email,
	})
	if err != nil {
		return nil, domainerrors.ErrPaymentFailed.WrapMessage("payment gateway unavailable")
	}

	status := entity.PaymentStatusFailed
	if result.Succeeded {
		status = entity.PaymentStatusSucceeded
	}

	transaction := &entity.PaymentTransaction{
		ApplicantID: applicantID,
		Amount:      input.Amount,
		Currency:    srv.currency(),
		Status:      status,
		Reference:   result.Reference,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPaymentTransactionRepository().Create(ctx, transaction); err != nil {
			return errors.WithStack(err)
		}

		if status != entity.PaymentStatusSucceeded {
			return nil
		}

		applicantRepo := repoFactory.NewApplicantRepository()

		current, err := applicantRepo.FindByID(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to reload applicant")
		}
		current.AdvanceStep(entity.StepPayment)
		current.IsComplete = true

		if err := applicantRepo.Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to mark registration complete")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record payment")
	}

	srv.logger.Info("Payment captured",
		"applicantID", applicantID,
		"transactionID", transaction.ID,
		"status", transaction.Status,
		"reference", transaction.Reference,
	)

	if status != entity.PaymentStatusSucceeded {
		return transaction, domainerrors.ErrPaymentFailed.WrapMessage("charge was declined")
	}

	return transaction, nil
}

// List returns all payment transactions recorded for the applicant.
func (srv *paymentService) List(ctx context.Context, applicantID uuid.UUID) ([]*entity.PaymentTransaction, error) {
	var transactions []*entity.PaymentTransaction

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewPaymentTransactionRepository().FindByApplicant(ctx, applicantID)
		if err != nil {
			return errors.Wrap(err, "failed to find payment transactions by applicant")
		}
		transactions = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment transactions")
	}

	return transactions, nil
}

// Get retrieves one payment transaction scoped by its ID and the applicant.
func (srv *paymentService) Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.PaymentTransaction, error) {
	var transaction *entity.PaymentTransaction

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewPaymentTransactionRepository().FindByID(ctx, id, applicantID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("payment transaction not found")
			}

			return errors.Wrap(err, "failed to find payment transaction")
		}
		transaction = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get payment transaction")
	}

	return transaction, nil
}
