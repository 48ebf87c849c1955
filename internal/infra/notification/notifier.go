// Package notification delivers registration messages to applicants. The
// current transport logs instead of sending; a mail or SMS provider can
// replace it behind the same interface.
package notification

import (
	"context"
	"log/slog"

	"testament/internal/domain/service"
)

// logNotifier writes outbound messages to the structured log. Key material is
// never logged in full.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier is the constructor for logNotifier.
func NewLogNotifier(logger *slog.Logger) service.Notifier {
	return &logNotifier{logger: logger}
}

// SendRegistrationKey records that a registration key was dispatched.
func (n *logNotifier) SendRegistrationKey(ctx context.Context, email, key string) error {
	n.logger.InfoContext(ctx, "Registration key dispatched",
		"email", email,
		"keyPrefix", keyPrefix(key),
	)

	return nil
}

// SendOTP records that a one-time password was dispatched.
func (n *logNotifier) SendOTP(ctx context.Context, email, code string) error {
	n.logger.InfoContext(ctx, "OTP dispatched",
		"email", email,
		"codeLength", len(code),
	)

	return nil
}

func keyPrefix(key string) string {
	const visible = 8
	if len(key) <= visible {
		return key
	}

	return key[:visible] + "..."
}
