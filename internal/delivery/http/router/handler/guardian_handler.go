package handler

import (
	"log/slog"
	"net/http"

	"testament/internal/delivery/http/response"
	"testament/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GuardianHandler holds dependencies for guardian handlers.
type GuardianHandler struct {
	uc     usecase.GuardianUsecase
	logger *slog.Logger
}

// NewGuardianHandler is the constructor for GuardianHandler, injected by Fx.
func NewGuardianHandler(uc usecase.GuardianUsecase, logger *slog.Logger) *GuardianHandler {
	return &GuardianHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles the appointment of a guardian.
func (h *GuardianHandler) Add(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	var input usecase.AddGuardianInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guardian input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	guardian, err := h.uc.Add(c.Request().Context(), applicantID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, guardian, "Guardian added")
}

// List returns all guardians for the session applicant.
func (h *GuardianHandler) List(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	guardians, err := h.uc.List(c.Request().Context(), applicantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guardians, "")
}

// Get returns a single guardian.
func (h *GuardianHandler) Get(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	guardian, err := h.uc.Get(c.Request().Context(), applicantID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guardian, "")
}

// Update patches a guardian.
func (h *GuardianHandler) Update(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateGuardianInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guardian input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	guardian, err := h.uc.Update(c.Request().Context(), applicantID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guardian, "Guardian updated")
}

// Delete removes a guardian.
func (h *GuardianHandler) Delete(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), applicantID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Guardian deleted")
}
