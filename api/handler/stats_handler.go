package handler

import (
	"net/http"

	"getexposure/internal/dto"
	"getexposure/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type StatsHandler struct {
	Content  repository.StatsContentRepository
	Items    repository.StatItemRepository
	Validate *validator.Validate
	Logger   *logrus.Logger
}

func NewStatsHandler(content repository.StatsContentRepository, items repository.StatItemRepository, validate *validator.Validate, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{Content: content, Items: items, Validate: validate, Logger: logger}
}

func (h *StatsHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	activeOnly := c.QueryParam("all") != "true"

	content, err := h.Content.Get(ctx)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	items, err := h.Items.List(ctx, activeOnly)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"content": content,
		"items":   items,
	})
}

func (h *StatsHandler) PutContent(c echo.Context) error {
	var req dto.StatsContentRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	content := req.ToEntity()
	if err := h.Content.Put(c.Request().Context(), content); err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, content)
}

func (h *StatsHandler) CreateItem(c echo.Context) error {
	var req dto.StatItemCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	item := req.ToEntity()
	if err := h.Items.Create(c.Request().Context(), item); err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *StatsHandler) UpdateItem(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.StatItemUpdateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	item, err := h.Items.Update(c.Request().Context(), id, req.Fields())
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if item == nil {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *StatsHandler) DeleteItem(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	deleted, err := h.Items.Delete(c.Request().Context(), id)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if !deleted {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
