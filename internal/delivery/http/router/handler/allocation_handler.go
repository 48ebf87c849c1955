package handler

import (
	"log/slog"
	"net/http"

	"testament/internal/delivery/http/response"
	"testament/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AllocationHandler holds dependencies for asset-allocation handlers.
type AllocationHandler struct {
	uc     usecase.AllocationUsecase
	logger *slog.Logger
}

// NewAllocationHandler is the constructor for AllocationHandler, injected by Fx.
func NewAllocationHandler(uc usecase.AllocationUsecase, logger *slog.Logger) *AllocationHandler {
	return &AllocationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles the creation of an allocation.
func (h *AllocationHandler) Add(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	var input usecase.AddAllocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid allocation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	allocation, err := h.uc.Add(c.Request().Context(), applicantID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, allocation, "Allocation added")
}

// List returns all allocations for the session applicant.
func (h *AllocationHandler) List(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	allocations, err := h.uc.List(c.Request().Context(), applicantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, allocations, "")
}

// Get returns a single allocation.
func (h *AllocationHandler) Get(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	allocation, err := h.uc.Get(c.Request().Context(), applicantID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, allocation, "")
}

// Update patches an allocation's percentage.
func (h *AllocationHandler) Update(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateAllocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid allocation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	allocation, err := h.uc.Update(c.Request().Context(), applicantID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, allocation, "Allocation updated")
}

// Delete removes an allocation.
func (h *AllocationHandler) Delete(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Allocation deleted")
}
