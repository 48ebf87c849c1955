package handler

import (
	"log/slog"
	"net/http"

	"testament/internal/delivery/http/response"
	"testament/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PersonalDetailsHandler holds dependencies for personal-details handlers.
type PersonalDetailsHandler struct {
	uc     usecase.PersonalDetailsUsecase
	logger *slog.Logger
}

// NewPersonalDetailsHandler is the constructor for PersonalDetailsHandler, injected by Fx.
func NewPersonalDetailsHandler(uc usecase.PersonalDetailsUsecase, logger *slog.Logger) *PersonalDetailsHandler {
	return &PersonalDetailsHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add creates the applicant's single personal-details record.
func (h *PersonalDetailsHandler) Add(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	var input usecase.AddPersonalDetailsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid personal details input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	details, err := h.uc.Add(c.Request().Context(), applicantID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, details, "Personal details added")
}

// Get returns the applicant's personal-details record.
func (h *PersonalDetailsHandler) Get(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	details, err := h.uc.Get(c.Request().Context(), applicantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "")
}

// Update patches the personal-details record.
func (h *PersonalDetailsHandler) Update(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdatePersonalDetailsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid personal details input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	details, err := h.uc.Update(c.Request().Context(), applicantID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "Personal details updated")
}

// Delete removes the personal-details record.
func (h *PersonalDetailsHandler) Delete(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Personal details deleted")
}
