package handler

import (
	"errors"
	"net/http"

	"getexposure/internal/dto"
	"getexposure/internal/repository"
	"getexposure/internal/upload"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type SettingsHandler struct {
	Repo     repository.SettingsRepository
	Store    *upload.Store
	Validate *validator.Validate
	Logger   *logrus.Logger
}

func NewSettingsHandler(repo repository.SettingsRepository, store *upload.Store, validate *validator.Validate, logger *logrus.Logger) *SettingsHandler {
	return &SettingsHandler{Repo: repo, Store: store, Validate: validate, Logger: logger}
}

func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.Repo.Get(c.Request().Context())
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if settings == nil {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c echo.Context) error {
	var req dto.SettingsUpdateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	settings, err := h.Repo.UpdateFields(c.Request().Context(), req.Fields())
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, settings)
}

// GetSiteLogo reports the current site logo path without the rest of the
// settings payload.
func (h *SettingsHandler) GetSiteLogo(c echo.Context) error {
	settings, err := h.Repo.Get(c.Request().Context())
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	logoPath := ""
	if settings != nil {
		logoPath = settings.LogoPath
	}
	return c.JSON(http.StatusOK, map[string]string{"logoPath": logoPath})
}

// UploadSiteLogo replaces the site logo. The previous file is removed after
// the settings row points at the new one; a removal failure is only logged.
func (h *SettingsHandler) UploadSiteLogo(c echo.Context) error {
	up, closeFile, err := uploadFromForm(c, "file")
	if err != nil {
		return writeUploadError(c, h.Logger, err)
	}
	defer closeFile()

	saved, err := h.Store.SaveLogo(up)
	if err != nil {
		return writeUploadError(c, h.Logger, err)
	}

	ctx := c.Request().Context()
	previous, err := h.Repo.Get(ctx)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}

	settings, err := h.Repo.UpdateFields(ctx, map[string]any{"logo_path": saved.Path})
	if err != nil {
		if removeErr := h.Store.Remove(saved.Path); removeErr != nil {
			h.Logger.WithError(removeErr).WithField("path", saved.Path).Warn("orphaned logo file left behind")
		}
		return writeInternalError(c, h.Logger, err)
	}
	if settings == nil {
		return writeInternalError(c, h.Logger, errors.New("settings row missing after update"))
	}

	if previous != nil && previous.LogoPath != "" && previous.LogoPath != saved.Path {
		if err := h.Store.Remove(previous.LogoPath); err != nil {
			h.Logger.WithError(err).WithField("path", previous.LogoPath).Warn("previous site logo removal failed")
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"logoPath": settings.LogoPath})
}
