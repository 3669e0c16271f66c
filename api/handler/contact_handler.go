package handler

import (
	"errors"
	"net/http"

	"getexposure/internal/dto"
	"getexposure/internal/entity"
	"getexposure/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type ContactHandler struct {
	Content  repository.ContactContentRepository
	Items    repository.ContactInfoRepository
	Validate *validator.Validate
	Logger   *logrus.Logger
}

func NewContactHandler(content repository.ContactContentRepository, items repository.ContactInfoRepository, validate *validator.Validate, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Content: content, Items: items, Validate: validate, Logger: logger}
}

// Get serves the whole contact page in one response: the singleton copy plus
// the three item groups. ?type= narrows to a single group.
func (h *ContactHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	activeOnly := c.QueryParam("all") != "true"

	if raw := c.QueryParam("type"); raw != "" {
		if raw == "content" {
			content, err := h.Content.Get(ctx)
			if err != nil {
				return writeInternalError(c, h.Logger, err)
			}
			if content == nil {
				return writeNotFound(c)
			}
			return c.JSON(http.StatusOK, content)
		}
		infoType := entity.ContactInfoType(raw)
		switch infoType {
		case entity.ContactInfoItem, entity.ContactInfoBenefit, entity.ContactInfoStat:
		default:
			return writeError(c, http.StatusBadRequest, errors.New("unknown contact info type"))
		}
		items, err := h.Items.ListByType(ctx, infoType, activeOnly)
		if err != nil {
			return writeInternalError(c, h.Logger, err)
		}
		return c.JSON(http.StatusOK, items)
	}

	content, err := h.Content.Get(ctx)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	info, err := h.Items.ListByType(ctx, entity.ContactInfoItem, activeOnly)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	benefits, err := h.Items.ListByType(ctx, entity.ContactInfoBenefit, activeOnly)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	stats, err := h.Items.ListByType(ctx, entity.ContactInfoStat, activeOnly)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"content":  content,
		"info":     info,
		"benefits": benefits,
		"stats":    stats,
	})
}

func (h *ContactHandler) PutContent(c echo.Context) error {
	var req dto.ContactContentRequest
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

func (h *ContactHandler) CreateInfo(c echo.Context) error {
	var req dto.ContactInfoCreateRequest
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

func (h *ContactHandler) UpdateInfo(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.ContactInfoUpdateRequest
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

func (h *ContactHandler) DeleteInfo(c echo.Context) error {
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
