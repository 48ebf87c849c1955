package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mockUC "testament/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runKeyAuth(t *testing.T, m *KeyAuthMiddleware, key string) (*httptest.ResponseRecorder, echo.Context, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/registration/summary", nil)
	if key != "" {
		req.Header.Set(RegistrationKeyHeader, key)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, c, nextCalled
}

func TestKeyAuthMiddleware_Authenticate_ValidKey(t *testing.T) {
	registrationUC := mockUC.NewMockRegistrationUsecase(t)
	applicantID := uuid.New()
	registrationUC.EXPECT().
		ValidateKey(mock.Anything, "valid-key").
		Return(applicantID, nil)

	m := NewKeyAuthMiddleware(registrationUC, newDiscardLogger())

	rec, c, nextCalled := runKeyAuth(t, m, "valid-key")

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)

	resolved, ok := ApplicantID(c)
	require.True(t, ok)
	assert.Equal(t, applicantID, resolved)
}

func TestKeyAuthMiddleware_Authenticate_MissingKey(t *testing.T) {
	registrationUC := mockUC.NewMockRegistrationUsecase(t)

	m := NewKeyAuthMiddleware(registrationUC, newDiscardLogger())

	rec, _, nextCalled := runKeyAuth(t, m, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	registrationUC.AssertNotCalled(t, "ValidateKey", mock.Anything, mock.Anything)
}

func TestKeyAuthMiddleware_Authenticate_UnknownKeyMatchesMissingKey(t *testing.T) {
	registrationUC := mockUC.NewMockRegistrationUsecase(t)
	registrationUC.EXPECT().
		ValidateKey(mock.Anything, "bogus-key").
		Return(uuid.Nil, assert.AnError)

	m := NewKeyAuthMiddleware(registrationUC, newDiscardLogger())

	recMissing, _, _ := runKeyAuth(t, m, "")
	recUnknown, _, nextCalled := runKeyAuth(t, m, "bogus-key")

	// An attacker probing keys sees the exact same rejection as one sending
	// no key at all.
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, recMissing.Body.String(), recUnknown.Body.String())
}

func TestApplicantID_AbsentWithoutAuthenticate(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, ok := ApplicantID(c)

	assert.False(t, ok)
}
