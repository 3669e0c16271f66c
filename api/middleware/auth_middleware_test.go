package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"getexposure/internal/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newGuard() SessionGuard {
	return SessionGuard{JWT: &utils.JWTManager{Secret: []byte("test-secret")}}
}

func sessionCookie(t *testing.T, m *utils.JWTManager) *http.Cookie {
	t.Helper()
	token, _, err := m.IssueSessionToken(1, "admin")
	require.NoError(t, err)
	return &http.Cookie{Name: SessionCookieName, Value: token}
}

func newApp(guard SessionGuard) *echo.Echo {
	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		return c.String(http.StatusOK, "panel")
	}, guard.RedirectUnauthenticated("/login"))
	e.GET("/login", func(c echo.Context) error {
		return c.String(http.StatusOK, "login")
	}, guard.RedirectAuthenticated("/admin"))
	e.POST("/api/case-studies", func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"ok": "yes"})
	}, guard.RequireSession)
	return e
}

func TestAdminPageRedirectsWithoutSession(t *testing.T) {
	e := newApp(newGuard())

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestAdminPageRedirectsWithInvalidCookie(t *testing.T) {
	e := newApp(newGuard())

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestAdminPageServedWithSession(t *testing.T) {
	guard := newGuard()
	e := newApp(guard)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(sessionCookie(t, guard.JWT))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "panel", rec.Body.String())
}

func TestExpiredSessionRedirects(t *testing.T) {
	guard := SessionGuard{JWT: &utils.JWTManager{Secret: []byte("test-secret"), SessionTTL: -time.Minute}}
	e := newApp(guard)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(sessionCookie(t, guard.JWT))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestLoginPageRedirectsWhenAuthenticated(t *testing.T) {
	guard := newGuard()
	e := newApp(guard)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(sessionCookie(t, guard.JWT))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/admin", rec.Header().Get("Location"))
}

func TestLoginPageServedWithInvalidCookie(t *testing.T) {
	e := newApp(newGuard())

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "login", rec.Body.String())
}

func TestAPIReturns401JSONWithoutSession(t *testing.T) {
	e := newApp(newGuard())

	req := httptest.NewRequest(http.MethodPost, "/api/case-studies", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"message":"unauthorized"}`, rec.Body.String())
}

func TestAPIPassesWithSessionAndSetsContext(t *testing.T) {
	guard := newGuard()
	e := echo.New()
	e.POST("/api/case-studies", func(c echo.Context) error {
		adminID, ok := AdminIDFromContext(c)
		require.True(t, ok)
		username, ok := UsernameFromContext(c)
		require.True(t, ok)
		return c.JSON(http.StatusOK, map[string]any{"id": adminID, "username": username})
	}, guard.RequireSession)

	req := httptest.NewRequest(http.MethodPost, "/api/case-studies", nil)
	req.AddCookie(sessionCookie(t, guard.JWT))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"id":1,"username":"admin"}`, rec.Body.String())
}
