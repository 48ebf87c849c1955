package service

import "context"

// ChargeRequest describes a registration-fee charge to the external gateway.
type ChargeRequest struct {
	Amount   float64
	Currency string
	Email    string
}

// ChargeResult is the gateway's answer to a charge attempt.
type ChargeResult struct {
	Reference string
	Succeeded bool
}

// PaymentGateway is the opaque external payment processor. The concrete
// integration is out of scope; the stub implementation approves every charge.
type PaymentGateway interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}
