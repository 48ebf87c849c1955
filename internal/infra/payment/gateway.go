// Package payment adapts the external payment processor. The stub gateway
// approves every charge and mints a local reference, which is enough for the
// registration flow until a real processor is wired in.
package payment

import (
	"context"
	"log/slog"

	"testament/config"
	"testament/internal/domain/service"

	"github.com/google/uuid"
)

// stubGateway is a PaymentGateway that settles every charge locally.
type stubGateway struct {
	logger *slog.Logger
}

// NewStubGateway is the constructor for stubGateway.
func NewStubGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	if cfg.Payment != nil && cfg.Payment.Provider != "" && cfg.Payment.Provider != "stub" {
		logger.Warn("Unknown payment provider, falling back to stub", "provider", cfg.Payment.Provider)
	}

	return &stubGateway{logger: logger}
}

// Charge approves the request and returns a locally generated reference.
func (g *stubGateway) Charge(ctx context.Context, req *service.ChargeRequest) (*service.ChargeResult, error) {
	reference := "stub-" + uuid.NewString()

	g.logger.InfoContext(ctx, "Stub charge approved",
		"amount", req.Amount,
		"currency", req.Currency,
		"reference", reference,
	)

	return &service.ChargeResult{
		Reference: reference,
		Succeeded: true,
	}, nil
}
