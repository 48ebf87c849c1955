package handler

import (
	"log/slog"
	"net/http"

	"testament/internal/delivery/http/response"
	"testament/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BeneficiaryHandler holds dependencies for beneficiary handlers.
type BeneficiaryHandler struct {
	uc     usecase.BeneficiaryUsecase
	logger *slog.Logger
}

// NewBeneficiaryHandler is the constructor for BeneficiaryHandler, injected by Fx.
func NewBeneficiaryHandler(uc usecase.BeneficiaryUsecase, logger *slog.Logger) *BeneficiaryHandler {
	return &BeneficiaryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles the creation of a beneficiary.
func (h *BeneficiaryHandler) Add(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	var input usecase.AddBeneficiaryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid beneficiary input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	beneficiary, err := h.uc.Add(c.Request().Context(), applicantID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, beneficiary, "Beneficiary added")
}

// List returns all beneficiaries for the session applicant.
func (h *BeneficiaryHandler) List(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	beneficiaries, err := h.uc.List(c.Request().Context(), applicantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, beneficiaries, "")
}

// Get returns a single beneficiary.
func (h *BeneficiaryHandler) Get(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	beneficiary, err := h.uc.Get(c.Request().Context(), applicantID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, beneficiary, "")
}

// Update patches a beneficiary.
func (h *BeneficiaryHandler) Update(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateBeneficiaryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid beneficiary input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	beneficiary, err := h.uc.Update(c.Request().Context(), applicantID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, beneficiary, "Beneficiary updated")
}

// Delete removes a beneficiary.
func (h *BeneficiaryHandler) Delete(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Beneficiary deleted")
}
