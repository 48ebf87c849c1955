package handler

import (
	"log/slog"
	"net/http"

	"testament/internal/delivery/http/response"
	domainerrors "testament/internal/domain/errors"
	"testament/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin surface.
type AdminHandler struct {
	registrationUC usecase.RegistrationUsecase
	logger         *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(registrationUC usecase.RegistrationUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		registrationUC: registrationUC,
		logger:         logger,
	}
}

func (h *AdminHandler) routeApplicant(c echo.Context) (uuid.UUID, error) {
	applicantID, err := uuid.Parse(c.Param("applicantId"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound.WrapMessage("applicant not found")
	}

	return applicantID, nil
}

// IssueKey issues (or re-reads) the applicant's registration key. Issuance is
// idempotent so repeated calls return the same key.
func (h *AdminHandler) IssueKey(c echo.Context) error {
	applicantID, err := h.routeApplicant(c)
	if err != nil {
		return err
	}

	key, err := h.registrationUC.GenerateAndSaveKey(c.Request().Context(), applicantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.RegistrationOutput{
		ApplicationID:   applicantID,
		RegistrationKey: key,
	}, "Registration key issued")
}

// Summary reports an applicant's registration progress.
func (h *AdminHandler) Summary(c echo.Context) error {
	applicantID, err := h.routeApplicant(c)
	if err != nil {
		return err
	}

	summary, err := h.registrationUC.GetSummary(c.Request().Context(), applicantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// DeleteApplicant removes an applicant and every record they own.
func (h *AdminHandler) DeleteApplicant(c echo.Context) error {
	applicantID, err := h.routeApplicant(c)
	if err != nil {
		return err
	}

	if err := h.registrationUC.DeleteApplicant(c.Request().Context(), applicantID); err != nil {
		return errors.WithStack(err)
	}
	h.logger.Info("Applicant deleted by admin", "applicantID", applicantID)

	return response.Success(c, http.StatusOK, nil, "Applicant deleted")
}
