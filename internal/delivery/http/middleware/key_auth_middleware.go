package middleware

import (
	"log/slog"

	"testament/internal/delivery/http/response"
	"testament/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RegistrationKeyHeader carries the applicant's session key on every
// registration-scoped request.
const RegistrationKeyHeader = "X-Registration-Key"

// applicantIDContextKey is where the resolved applicant is stored on the Echo context.
const applicantIDContextKey = "applicantID"

// KeyAuthMiddleware authenticates applicants by their registration key.
type KeyAuthMiddleware struct {
	registrationUC usecase.RegistrationUsecase
	logger         *slog.Logger
}

// NewKeyAuthMiddleware is the constructor for KeyAuthMiddleware.
func NewKeyAuthMiddleware(registrationUC usecase.RegistrationUsecase, logger *slog.Logger) *KeyAuthMiddleware {
	return &KeyAuthMiddleware{
		registrationUC: registrationUC,
		logger:         logger,
	}
}

// Authenticate resolves the X-Registration-Key header to an applicant and
// stores the applicant ID on the context. A missing or unknown key is
// rejected with the same response either way.
func (m *KeyAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Header.Get(RegistrationKeyHeader)
		if key == "" {
			return response.Unauthorized(c, "REGISTRATION_KEY_INVALID", "A valid registration key is required")
		}

		applicantID, err := m.registrationUC.ValidateKey(c.Request().Context(), key)
		if err != nil {
			m.logger.Debug("Registration key rejected", "path", c.Request().URL.Path)

			return response.Unauthorized(c, "REGISTRATION_KEY_INVALID", "A valid registration key is required")
		}

		c.Set(applicantIDContextKey, applicantID)

		return next(c)
	}
}

// ApplicantID extracts the session-resolved applicant from the context.
// It is only meaningful on routes behind Authenticate.
func ApplicantID(c echo.Context) (uuid.UUID, bool) {
	applicantID, ok := c.Get(applicantIDContextKey).(uuid.UUID)

	return applicantID, ok
}
