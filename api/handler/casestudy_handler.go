package handler

import (
	"net/http"

	"getexposure/internal/dto"
	"getexposure/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type CaseStudyHandler struct {
	Repo     repository.CaseStudyRepository
	Validate *validator.Validate
	Logger   *logrus.Logger
}

func NewCaseStudyHandler(repo repository.CaseStudyRepository, validate *validator.Validate, logger *logrus.Logger) *CaseStudyHandler {
	return &CaseStudyHandler{Repo: repo, Validate: validate, Logger: logger}
}

// List returns every study for the admin panel; the public site passes
// ?published=true and sees published entries only.
func (h *CaseStudyHandler) List(c echo.Context) error {
	publishedOnly := c.QueryParam("published") == "true"
	studies, err := h.Repo.List(c.Request().Context(), publishedOnly)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, studies)
}

func (h *CaseStudyHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	study, err := h.Repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if study == nil {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, study)
}

func (h *CaseStudyHandler) Create(c echo.Context) error {
	var req dto.CaseStudyCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	study := req.ToEntity()
	if err := h.Repo.Create(c.Request().Context(), study); err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	return c.JSON(http.StatusCreated, study)
}

func (h *CaseStudyHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.CaseStudyUpdateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	study, err := h.Repo.Update(c.Request().Context(), id, req.Fields())
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if study == nil {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, study)
}

func (h *CaseStudyHandler) Delete(c echo.Context) error {
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
