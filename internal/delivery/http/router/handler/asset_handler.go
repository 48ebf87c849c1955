package handler

import (
	"log/slog"
	"net/http"

	"testament/internal/delivery/http/response"
	"testament/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssetHandler holds dependencies for asset handlers.
type AssetHandler struct {
	uc     usecase.AssetUsecase
	logger *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler, injected by Fx.
func NewAssetHandler(uc usecase.AssetUsecase, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles the creation of an asset.
func (h *AssetHandler) Add(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	var input usecase.AddAssetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid asset input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	asset, err := h.uc.Add(c.Request().Context(), applicantID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, asset, "Asset added")
}

// List returns all assets for the session applicant.
func (h *AssetHandler) List(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}

	assets, err := h.uc.List(c.Request().Context(), applicantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assets, "")
}

// Get returns a single asset.
func (h *AssetHandler) Get(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	asset, err := h.uc.Get(c.Request().Context(), applicantID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, asset, "")
}

// Update patches an asset.
func (h *AssetHandler) Update(c echo.Context) error {
	applicantID, err := sessionApplicant(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateAssetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid asset input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	asset, err := h.uc.Update(c.Request().Context(), applicantID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, asset, "Asset updated")
}

// Delete removes an asset.
func (h *AssetHandler) Delete(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Asset deleted")
}
