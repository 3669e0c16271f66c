package handler

import (
	"net/http"

	"getexposure/internal/dto"
	"getexposure/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type PositionHandler struct {
	Repo     repository.PositionRepository
	Validate *validator.Validate
	Logger   *logrus.Logger
}

func NewPositionHandler(repo repository.PositionRepository, validate *validator.Validate, logger *logrus.Logger) *PositionHandler {
	return &PositionHandler{Repo: repo, Validate: validate, Logger: logger}
}

func (h *PositionHandler) List(c echo.Context) error {
	positions, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, positions)
}

func (h *PositionHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	position, err := h.Repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if position == nil {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, position)
}

func (h *PositionHandler) Create(c echo.Context) error {
	var req dto.PositionCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	position := req.ToEntity()
	if err := h.Repo.Create(c.Request().Context(), position); err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusCreated, position)
}

func (h *PositionHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.PositionUpdateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	position, err := h.Repo.Update(c.Request().Context(), id, req.Fields())
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if position == nil {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, position)
}

func (h *PositionHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	deleted, err := h.Repo.Delete(c.Request().Context(), id)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if !deleted {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
