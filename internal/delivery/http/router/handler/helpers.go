package handler

import (
	"net/http"

	"testament/internal/delivery/http/middleware"
	domainerrors "testament/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// sessionApplicant resolves the applicant bound to the request. Keyed routes
// carry it on the context; admin routes carry it in the :applicantId param.
func sessionApplicant(c echo.Context) (uuid.UUID, error) {
	if applicantID, ok := middleware.ApplicantID(c); ok {
		return applicantID, nil
	}

	applicantID, err := uuid.Parse(c.Param("applicantId"))
	if err != nil {
		// An unparseable owner reference is indistinguishable from a missing record.
		return uuid.Nil, domainerrors.ErrNotFound.WrapMessage("record not found")
	}

	return applicantID, nil
}

// recordID parses the :id route parameter. An unparseable ID gets the same
// opaque NotFound as a missing record.
func recordID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound.WrapMessage("record not found")
	}

	return id, nil
}
