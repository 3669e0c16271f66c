package handler

import (
	"net/http"

	"getexposure/internal/dto"
	"getexposure/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type SolutionHandler struct {
	Repo     repository.SolutionRepository
	Validate *validator.Validate
	Logger   *logrus.Logger
}

func NewSolutionHandler(repo repository.SolutionRepository, validate *validator.Validate, logger *logrus.Logger) *SolutionHandler {
	return &SolutionHandler{Repo: repo, Validate: validate, Logger: logger}
}

// List returns all solution types with their steps; ?slug= narrows to one.
func (h *SolutionHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if slug := c.QueryParam("slug"); slug != "" {
		solution, err := h.Repo.FindBySlug(ctx, slug)
		if err != nil {
			return writeInternalError(c, h.Logger, err)
		}
		if solution == nil {
			return writeNotFound(c)
		}
		return c.JSON(http.StatusOK, solution)
	}

	solutions, err := h.Repo.List(ctx)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, solutions)
}

func (h *SolutionHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	solution, err := h.Repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if solution == nil {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, solution)
}

func (h *SolutionHandler) Create(c echo.Context) error {
	var req dto.SolutionCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	solution := req.ToEntity()
	if err := h.Repo.Create(c.Request().Context(), solution); err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusCreated, solution)
}

func (h *SolutionHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.SolutionUpdateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	solution, err := h.Repo.Update(c.Request().Context(), id, req.Fields())
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if solution == nil {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, solution)
}

// Delete removes a solution type; the database cascades the delete to its
// steps through the foreign key.
func (h *SolutionHandler) Delete(c echo.Context) error {
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

// CreateStep attaches a step to an existing solution type. A step can never
// exist without its parent.
func (h *SolutionHandler) CreateStep(c echo.Context) error {
	solutionID, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.SolutionStepCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	ctx := c.Request().Context()
	parent, err := h.Repo.FindByID(ctx, solutionID)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if parent == nil {
		return writeNotFound(c)
	}

	step := req.ToEntity(solutionID)
	if err := h.Repo.CreateStep(ctx, step); err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusCreated, step)
}

func (h *SolutionHandler) UpdateStep(c echo.Context) error {
	stepID, err := parseID(c, "stepId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.SolutionStepUpdateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	step, err := h.Repo.UpdateStep(c.Request().Context(), stepID, req.Fields())
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if step == nil {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, step)
}

func (h *SolutionHandler) DeleteStep(c echo.Context) error {
	stepID, err := parseID(c, "stepId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	deleted, err := h.Repo.DeleteStep(c.Request().Context(), stepID)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if !deleted {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
