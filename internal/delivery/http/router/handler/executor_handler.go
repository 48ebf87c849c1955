package handler

import (
	"log/slog"
	"net/http"

	"testament/internal/delivery/http/response"
	"testament/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExecutorHandler holds dependencies for executor handlers.
type ExecutorHandler struct {
	uc     usecase.ExecutorUsecase
	logger *slog.Logger
}

// NewExecutorHandler is the constructor for ExecutorHandler, injected by Fx.
func NewExecutorHandler(uc usecase.ExecutorUsecase, logger *slog.Logger) *ExecutorHandler {
	return &ExecutorHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles the appointment of an executor.
func (h *ExecutorHandler) Add(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	var input usecase.AddExecutorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid executor input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	executor, err := h.uc.Add(c.Request().Context(), applicantID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, executor, "Executor added")
}

// List returns all executors for the session applicant.
func (h *ExecutorHandler) List(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	executors, err := h.uc.List(c.Request().Context(), applicantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, executors, "")
}

// Get returns a single executor.
func (h *ExecutorHandler) Get(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	executor, err := h.uc.Get(c.Request().Context(), applicantID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, executor, "")
}

// Update patches an executor.
func (h *ExecutorHandler) Update(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateExecutorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid executor input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	executor, err := h.uc.Update(c.Request().Context(), applicantID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, executor, "Executor updated")
}

// Delete removes an executor.
func (h *ExecutorHandler) Delete(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Executor deleted")
}
