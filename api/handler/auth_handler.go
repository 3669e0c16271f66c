package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"getexposure/api/middleware"
	"getexposure/internal/dto"
	"getexposure/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Service       *service.AuthService
	Validate      *validator.Validate
	Logger        *logrus.Logger
	CookieName    string
	CookieDomain  string
	SecureCookies bool
	SameSite      http.SameSite
}

func NewAuthHandler(svc *service.AuthService, validate *validator.Validate, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		Service:       svc,
		Validate:      validate,
		Logger:        logger,
		CookieName:    middleware.SessionCookieName,
		SecureCookies: true,
		SameSite:      http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := validateStruct(h.Validate, req); err != nil {
		return writeValidationError(c, err)
	}

	result, err := h.Service.Login(c.Request().Context(), req.Username, req.Password, stringPtr(c.RealIP()))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return writeError(c, http.StatusBadRequest, err)
		case errors.Is(err, service.ErrInvalidCredentials):
			// Same message for bad username and bad password.
			return writeError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		default:
			return writeInternalError(c, h.Logger, err)
		}
	}

	h.setSessionCookie(c, result.Token, result.ExpiresIn)
	return c.JSON(http.StatusOK, dto.LoginResponseFromAdmin(result.Admin))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if adminID, ok := middleware.AdminIDFromContext(c); ok {
		h.Service.Logout(c.Request().Context(), adminID, stringPtr(c.RealIP()))
	}
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) Me(c echo.Context) error {
	adminID, ok := middleware.AdminIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	admin, err := h.Service.GetAdmin(c.Request().Context(), adminID)
	if err != nil {
		return writeInternalError(c, h.Logger, err)
	}
	if admin == nil {
		return writeNotFound(c)
	}
	return c.JSON(http.StatusOK, dto.UserInfo{ID: admin.ID, Username: admin.Username})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expiresIn time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     h.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   int(expiresIn.Seconds()),
		Expires:  time.Now().Add(expiresIn),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: h.SameSite,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: h.SameSite,
	})
}

func stringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
