package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"getexposure/api/middleware"
	"getexposure/internal/entity"
	"getexposure/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeCaseStudyRepo struct {
	studies []entity.CaseStudy
	nextID  uint
	calls   int
}

func (f *fakeCaseStudyRepo) List(_ context.Context, publishedOnly bool) ([]entity.CaseStudy, error) {
	f.calls++
	if !publishedOnly {
		return f.studies, nil
	}
	var published []entity.CaseStudy
	for _, study := range f.studies {
		if study.IsPublished {
			published = append(published, study)
		}
	}
	return published, nil
}

func (f *fakeCaseStudyRepo) FindByID(_ context.Context, id uint) (*entity.CaseStudy, error) {
	f.calls++
	for i := range f.studies {
		if f.studies[i].ID == id {
			return &f.studies[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCaseStudyRepo) Create(_ context.Context, study *entity.CaseStudy) error {
	f.calls++
	f.nextID++
	study.ID = f.nextID
	f.studies = append(f.studies, *study)
	return nil
}

func (f *fakeCaseStudyRepo) Update(_ context.Context, id uint, fields map[string]any) (*entity.CaseStudy, error) {
	f.calls++
	for i := range f.studies {
		if f.studies[i].ID == id {
			if published, ok := fields["is_published"].(bool); ok {
				f.studies[i].IsPublished = published
			}
			if title, ok := fields["title"].(string); ok {
				f.studies[i].Title = title
			}
			return &f.studies[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCaseStudyRepo) Delete(_ context.Context, id uint) (bool, error) {
	f.calls++
	for i := range f.studies {
		if f.studies[i].ID == id {
			f.studies = append(f.studies[:i], f.studies[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newCaseStudyApp(repo *fakeCaseStudyRepo) (*echo.Echo, *utils.JWTManager) {
	jwtManager := &utils.JWTManager{Secret: []byte("test-secret")}
	guard := middleware.SessionGuard{JWT: jwtManager}
	h := NewCaseStudyHandler(repo, validator.New(), nil)

	e := echo.New()
	e.GET("/api/case-studies", h.List)
	e.POST("/api/case-studies", h.Create, guard.RequireSession)
	e.PUT("/api/case-studies/:id", h.Update, guard.RequireSession)
	e.DELETE("/api/case-studies/:id", h.Delete, guard.RequireSession)
	return e, jwtManager
}

func authCookie(t *testing.T, m *utils.JWTManager) *http.Cookie {
	t.Helper()
	token, _, err := m.IssueSessionToken(1, "admin")
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

const validStudyBody = `{
	"category": "SaaS",
	"title": "Launch campaign",
	"slug": "launch-campaign",
	"description": "Six week engagement.",
	"result1": "+120% traffic",
	"result2": "+40 leads",
	"result3": "3x ROAS"
}`

func TestCreateCaseStudyWithoutSessionLeavesStoreUntouched(t *testing.T) {
	repo := &fakeCaseStudyRepo{}
	e, _ := newCaseStudyApp(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/case-studies", strings.NewReader(validStudyBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Zero(t, repo.calls)
	require.Empty(t, repo.studies)
}

func TestCreateCaseStudyValidationFailure(t *testing.T) {
	repo := &fakeCaseStudyRepo{}
	e, jwtManager := newCaseStudyApp(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/case-studies", strings.NewReader(`{"title":"only a title"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(authCookie(t, jwtManager))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "details")
	require.Empty(t, repo.studies)
}

func TestCreateCaseStudyDefaultsToPublished(t *testing.T) {
	repo := &fakeCaseStudyRepo{}
	e, jwtManager := newCaseStudyApp(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/case-studies", strings.NewReader(validStudyBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(authCookie(t, jwtManager))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.studies, 1)
	require.True(t, repo.studies[0].IsPublished)
	require.Equal(t, "launch-campaign", repo.studies[0].Slug)
}

func TestListCaseStudiesPublishedFilter(t *testing.T) {
	repo := &fakeCaseStudyRepo{studies: []entity.CaseStudy{
		{ID: 1, Title: "published", IsPublished: true},
		{ID: 2, Title: "draft", IsPublished: false},
	}}
	e, _ := newCaseStudyApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/case-studies?published=true", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "published")
	require.NotContains(t, rec.Body.String(), "draft")
}

func TestUpdateCaseStudyUnknownID(t *testing.T) {
	repo := &fakeCaseStudyRepo{}
	e, jwtManager := newCaseStudyApp(repo)

	req := httptest.NewRequest(http.MethodPut, "/api/case-studies/99", strings.NewReader(`{"isPublished":false}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(authCookie(t, jwtManager))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnpublishCaseStudyTwiceKeepsFinalState(t *testing.T) {
	repo := &fakeCaseStudyRepo{
		studies: []entity.CaseStudy{{ID: 1, Title: "study", IsPublished: true}},
		nextID:  1,
	}
	e, jwtManager := newCaseStudyApp(repo)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPut, "/api/case-studies/1", strings.NewReader(`{"isPublished":false}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.AddCookie(authCookie(t, jwtManager))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	}

	require.Len(t, repo.studies, 1)
	require.False(t, repo.studies[0].IsPublished)
}

func TestDeleteCaseStudy(t *testing.T) {
	repo := &fakeCaseStudyRepo{studies: []entity.CaseStudy{{ID: 1, Title: "gone soon", IsPublished: true}}}
	e, jwtManager := newCaseStudyApp(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/case-studies/1", nil)
	req.AddCookie(authCookie(t, jwtManager))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, repo.studies)
}
