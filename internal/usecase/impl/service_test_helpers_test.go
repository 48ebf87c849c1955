package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"testament/config"
	"testament/internal/domain/repository"
	mockRepo "testament/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Registration: &config.RegistrationConfig{
			KeyTTL:        0,
			ResumeBaseURL: "https://wills.example.com/resume",
		},
		OTP: &config.OTPConfig{
			TTL: 10 * time.Minute,
		},
		Payment: &config.PaymentConfig{
			Provider: "stub",
			Currency: "USD",
		},
	}

	return cfg
}

// expectTransaction stubs the transaction manager so the callback runs against
// a fresh factory mock, propagating the callback's error the way a rolled-back
// transaction would.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return factory
}
