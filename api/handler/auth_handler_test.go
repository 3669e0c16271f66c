package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"getexposure/api/middleware"
	"getexposure/internal/entity"
	"getexposure/internal/service"
	"getexposure/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeAdminRepo struct {
	admin *entity.Admin
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	f.admin = admin
	return nil
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id uint) (*entity.Admin, error) {
	if f.admin != nil && f.admin.ID == id {
		return f.admin, nil
	}
	return nil, nil
}

func (f *fakeAdminRepo) FindByUsername(_ context.Context, username string) (*entity.Admin, error) {
	if f.admin != nil && f.admin.Username == username {
		return f.admin, nil
	}
	return nil, nil
}

type fakeAuditRepo struct {
	actions []entity.AuditAction
}

func (f *fakeAuditRepo) Log(_ context.Context, log *entity.AuditLog) error {
	f.actions = append(f.actions, log.Action)
	return nil
}

func newLogoutApp(svc *service.AuthService, jwtManager *utils.JWTManager) *echo.Echo {
	guard := middleware.SessionGuard{JWT: jwtManager}
	h := NewAuthHandler(svc, validator.New(), nil)

	e := echo.New()
	e.POST("/api/auth/logout", h.Logout, guard.OptionalSession)
	return e
}

func clearedSessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("no %s cookie in response", middleware.SessionCookieName)
	return nil
}

func TestLogoutWithStaleCookieStillClearsIt(t *testing.T) {
	jwtManager := &utils.JWTManager{Secret: []byte("test-secret")}
	e := newLogoutApp(nil, jwtManager)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := clearedSessionCookie(t, rec)
	require.Empty(t, cookie.Value)
	require.Negative(t, cookie.MaxAge)
}

func TestLogoutWithValidSessionClearsCookieAndAudits(t *testing.T) {
	jwtManager := &utils.JWTManager{Secret: []byte("test-secret")}
	audits := &fakeAuditRepo{}
	svc := service.NewAuthService(
		&fakeAdminRepo{admin: &entity.Admin{ID: 1, Username: "admin"}},
		audits,
		service.BcryptPasswordHasher{Cost: 4},
		jwtManager,
	)
	e := newLogoutApp(svc, jwtManager)

	token, _, err := jwtManager.IssueSessionToken(1, "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := clearedSessionCookie(t, rec)
	require.Empty(t, cookie.Value)
	require.Negative(t, cookie.MaxAge)
	require.Equal(t, []entity.AuditAction{entity.Logout}, audits.actions)
}
