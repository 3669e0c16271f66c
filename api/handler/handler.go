// Package handler contains the HTTP boundary: every handler validates its
// input, calls the storage layer, and maps failures onto the shared error
// taxonomy (400 with field detail, 401 generic, 404, 500 with detail
// suppressed). Nothing propagates past this package unmapped.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

var errNotFound = errors.New("not found")

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"message": err.Error()})
}

// writeValidationError surfaces field-level detail; every other error path
// keeps its message generic.
func writeValidationError(c echo.Context, err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		details := make([]map[string]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			details = append(details, map[string]string{
				"field": fe.Field(),
				"rule":  fe.Tag(),
			})
		}
		return c.JSON(http.StatusBadRequest, map[string]any{
			"message": "invalid input",
			"details": details,
		})
	}
	return writeError(c, http.StatusBadRequest, err)
}

func writeInternalError(c echo.Context, log *logrus.Logger, err error) error {
	if log != nil {
		log.WithError(err).Error("internal error")
	}
	return writeError(c, http.StatusInternalServerError, errors.New("internal server error"))
}

func writeNotFound(c echo.Context) error {
	return writeError(c, http.StatusNotFound, errNotFound)
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func validateStruct(validate *validator.Validate, payload any) error {
	if validate == nil {
		return nil
	}
	return validate.Struct(payload)
}
