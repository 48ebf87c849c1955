package usecase

import (
	"context"

	"testament/internal/domain/entity"

	"github.com/google/uuid"
)

// CapturePaymentInput charges the registration fee through the gateway.
type CapturePaymentInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// PaymentUsecase records registration-fee transactions. A successful charge
// marks the registration complete.
type PaymentUsecase interface {
	Capture(ctx context.Context, applicantID uuid.UUID, input *CapturePaymentInput) (*entity.PaymentTransaction, error)
	List(ctx context.Context, applicantID uuid.UUID) ([]*entity.PaymentTransaction, error)
	Get(ctx context.Context, applicantID, id uuid.UUID) (*entity.PaymentTransaction, error)
}
