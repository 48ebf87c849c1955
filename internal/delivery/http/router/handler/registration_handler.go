// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"testament/internal/delivery/http/middleware"
	"testament/internal/delivery/http/response"
	"testament/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegistrationHandler holds dependencies for registration session handlers.
type RegistrationHandler struct {
	uc     usecase.RegistrationUsecase
	logger *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler, injected by Fx.
func NewRegistrationHandler(uc usecase.RegistrationUsecase, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Start handles the request that opens a new will registration.
func (h *RegistrationHandler) Start(c echo.Context) error {
	var input usecase.StartRegistrationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.StartRegistration(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Registration started")
}

// ResendKey re-delivers the registration key for an email. The response is the
// same whether or not the email is registered.
func (h *RegistrationHandler) ResendKey(c echo.Context) error {
	var input usecase.ResendKeyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResendRegistrationKey(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil,
		"If the email is registered, the registration key has been re-sent")
}

// SubmitSponsoredEmail opens the OTP-gated sponsored onboarding flow.
func (h *RegistrationHandler) SubmitSponsoredEmail(c echo.Context) error {
	var input usecase.SponsoredEmailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sponsored email input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SubmitSponsoredEmail(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "A verification code has been sent")
}

// VerifySponsoredOTP redeems a one-time password for a registration key.
func (h *RegistrationHandler) VerifySponsoredOTP(c echo.Context) error {
	var input usecase.VerifySponsoredOTPInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.VerifySponsoredOTP(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Registration verified")
}

// Summary reports the session applicant's progress through the flow.
func (h *RegistrationHandler) Summary(c echo.Context) error {
	applicantID, ok := middleware.ApplicantID(c)
	if !ok {
		return response.Unauthorized(c, "REGISTRATION_KEY_INVALID", "A valid registration key is required")
	}

	summary, err := h.uc.GetSummary(c.Request().Context(), applicantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// ResumeQR streams a PNG QR code that re-opens this registration elsewhere.
func (h *RegistrationHandler) ResumeQR(c echo.Context) error {
	applicantID, ok := middleware.ApplicantID(c)
	if !ok {
		return response.Unauthorized(c, "REGISTRATION_KEY_INVALID", "A valid registration key is required")
	}

	png, err := h.uc.ResumeQR(c.Request().Context(), applicantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
