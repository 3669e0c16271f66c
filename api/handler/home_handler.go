package handler

import (
	"net/http"

	"getexposure/internal/dto"
	"getexposure/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type HomeHandler struct {
	Repo     repository.HomeContentRepository
	Validate *validator.Validate
	Logger   *logrus.Logger
}

func NewHomeHandler(repo repository.HomeContentRepository, validate *validator.Validate, logger *logrus.Logger) *HomeHandler {
	return &HomeHandler{Repo: repo, Validate: validate, Logger: logger}
}

func (h *HomeHandler) Get(c echo.Context) error {
	content, err := h.Repo.Get(c.Request().Context())
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if content == nil {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, content)
}

func (h *HomeHandler) Put(c echo.Context) error {
	var req dto.HomeContentRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	content := req.ToEntity()
	if err := h.Repo.Put(c.Request().Context(), content); err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, content)
}
