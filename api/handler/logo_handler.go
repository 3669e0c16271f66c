package handler

import (
	"net/http"
	"strconv"

	"getexposure/internal/dto"
	"getexposure/internal/entity"
	"getexposure/internal/repository"
	"getexposure/internal/upload"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LogoHandler manages the client logo strip: a logo is a file on disk plus a
// database row carrying its ordering and visibility.
type LogoHandler struct {
	Repo     repository.LogoRepository
	Store    *upload.Store
	Validate *validator.Validate
	Logger   *logrus.Logger
}

func NewLogoHandler(repo repository.LogoRepository, store *upload.Store, validate *validator.Validate, logger *logrus.Logger) *LogoHandler {
	return &LogoHandler{Repo: repo, Store: store, Validate: validate, Logger: logger}
}

func (h *LogoHandler) List(c echo.Context) error {
	activeOnly := c.QueryParam("all") != "true"
	logos, err := h.Repo.List(c.Request().Context(), activeOnly)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, logos)
}

// Upload stores the file first and the row second; if the row insert fails
// the orphaned file is removed on a best-effort basis.
func (h *LogoHandler) Upload(c echo.Context) error {
	up, closeFile, err := uploadFromForm(c, "file")
	if err != nil {
		return writeUploadError(c, h.Logger, err)
	}
	defer closeFile()

	saved, err := h.Store.SaveLogo(up)
	if err != nil {
		return writeUploadError(c, h.Logger, err)
	}

	logo := &entity.LogoImage{
		Filename: saved.Filename,
		Path:     saved.Path,
		Alt:      c.FormValue("alt"),
		IsActive: true,
	}
	if raw := c.FormValue("order"); raw != "" {
		if order, err := strconv.Atoi(raw); err == nil {
			logo.Order = order
		}
	}
	if err := h.Repo.Create(c.Request().Context(), logo); err != nil {
		if removeErr := h.Store.Remove(saved.Path); removeErr != nil {
			h.Logger.WithError(removeErr).WithField("path", saved.Path).Warn("orphaned logo file left behind")
		}
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusCreated, logo)
}

func (h *LogoHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.LogoUpdateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	logo, err := h.Repo.Update(c.Request().Context(), id, req.Fields())
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if logo == nil {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, logo)
}

// Delete removes the row, then the file. A file removal failure is logged
// but does not fail the request: the record is already gone.
func (h *LogoHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	ctx := c.Request().Context()
	logo, err := h.Repo.FindByID(ctx, id)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if logo == nil {
		return writeNotFound(c)
	}

	deleted, err := h.Repo.Delete(ctx, id)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if !deleted {
		return writeNotFound(c)
	}
	if err := h.Store.Remove(logo.Path); err != nil {
		h.Logger.WithError(err).WithField("path", logo.Path).Warn("logo file removal failed")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
