package handler

import (
	"log/slog"
	"net/http"

	"testament/internal/delivery/http/response"
	"testament/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IdentificationHandler holds dependencies for identification-document handlers.
type IdentificationHandler struct {
	uc     usecase.IdentificationUsecase
	logger *slog.Logger
}

// NewIdentificationHandler is the constructor for IdentificationHandler, injected by Fx.
func NewIdentificationHandler(uc usecase.IdentificationUsecase, logger *slog.Logger) *IdentificationHandler {
	return &IdentificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles the registration of an identification document.
func (h *IdentificationHandler) Add(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	var input usecase.AddIdentificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid identification input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	identification, err := h.uc.Add(c.Request().Context(), applicantID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, identification, "Identification added")
}

// List returns all identification documents for the session applicant.
func (h *IdentificationHandler) List(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	identifications, err := h.uc.List(c.Request().Context(), applicantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identifications, "")
}

// Get returns a single identification document.
func (h *IdentificationHandler) Get(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	identification, err := h.uc.Get(c.Request().Context(), applicantID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identification, "")
}

// Update patches an identification document.
func (h *IdentificationHandler) Update(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateIdentificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid identification input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	identification, err := h.uc.Update(c.Request().Context(), applicantID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identification, "Identification updated")
}

// Delete removes an identification document.
func (h *IdentificationHandler) Delete(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Identification deleted")
}
