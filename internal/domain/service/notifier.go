package service

import "context"

// Notifier dispatches registration messages to applicants over an external
// channel. Delivery is best-effort; callers must not leak delivery failures to
// unauthenticated clients.
type Notifier interface {
	// SendRegistrationKey delivers the applicant's registration key.
	SendRegistrationKey(ctx context.Context, email, key string) error

	// SendOTP delivers a one-time password for sponsored onboarding.
	SendOTP(ctx context.Context, email, code string) error
}
