package handler

import (
	"net/http"

	"getexposure/internal/entity"
	"getexposure/internal/repository"
	"getexposure/internal/upload"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ImageHandler is the admin media library. Everything here sits behind the
// session guard, listing included.
type ImageHandler struct {
	Repo   repository.ImageRepository
	Store  *upload.Store
	Logger *logrus.Logger
}

func NewImageHandler(repo repository.ImageRepository, store *upload.Store, logger *logrus.Logger) *ImageHandler {
	return &ImageHandler{Repo: repo, Store: store, Logger: logger}
}

func (h *ImageHandler) List(c echo.Context) error {
	images, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, images)
}

func (h *ImageHandler) Upload(c echo.Context) error {
	up, closeFile, err := uploadFromForm(c, "file")
	if err != nil {
		return writeUploadError(c, h.Logger, err)
	}
	defer closeFile()

	saved, err := h.Store.SaveImage(up, "images")
	if err != nil {
		return writeUploadError(c, h.Logger, err)
	}

	image := &entity.GeneralImage{
		Filename:      saved.Filename,
		Path:          saved.Path,
		ThumbnailPath: saved.ThumbnailPath,
		Alt:           c.FormValue("alt"),
		Size:          saved.Size,
		MimeType:      saved.MimeType,
	}
	if err := h.Repo.Create(c.Request().Context(), image); err != nil {
		if removeErr := h.Store.Remove(saved.Path); removeErr != nil {
			h.Logger.WithError(removeErr).WithField("path", saved.Path).Warn("orphaned image file left behind")
		}
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusCreated, image)
}

func (h *ImageHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	ctx := c.Request().Context()
	image, err := h.Repo.FindByID(ctx, id)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if image == nil {
		return writeNotFound(c)
	}

	deleted, err := h.Repo.Delete(ctx, id)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if !deleted {
		return writeNotFound(c)
	}
	for _, path := range []string{image.Path, image.ThumbnailPath} {
		if path == "" {
			continue
		}
		if err := h.Store.Remove(path); err != nil {
			h.Logger.WithError(err).WithField("path", path).Warn("image file removal failed")
		}
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
