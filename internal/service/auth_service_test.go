package service

import (
	"context"
	"testing"
	"time"

	"getexposure/internal/entity"

	"github.com/stretchr/testify/require"
)

type fakeAdminRepo struct {
	admins map[string]*entity.Admin
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	f.admins[admin.Username] = admin
	return nil
}

func (f *fakeAdminRepo) FindByID(ctx context.Context, id uint) (*entity.Admin, error) {
	for _, admin := range f.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	return f.admins[username], nil
}

type fakeAuditRepo struct {
	entries []*entity.AuditLog
}

func (f *fakeAuditRepo) Log(ctx context.Context, log *entity.AuditLog) error {
	f.entries = append(f.entries, log)
	return nil
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) IssueSessionToken(adminID uint, username string) (string, time.Duration, error) {
	return "signed-token", 7 * 24 * time.Hour, nil
}

func newTestService(t *testing.T) (*AuthService, *fakeAuditRepo) {
	t.Helper()
	hasher := BcryptPasswordHasher{Cost: 4}
	hash, err := hasher.Hash("correct-horse")
	require.NoError(t, err)

	admins := &fakeAdminRepo{admins: map[string]*entity.Admin{
		"admin": {ID: 1, Username: "admin", PasswordHash: hash},
	}}
	audits := &fakeAuditRepo{}
	return NewAuthService(admins, audits, hasher, fakeTokenIssuer{}), audits
}

func TestLoginSuccess(t *testing.T) {
	svc, audits := newTestService(t)

	result, err := svc.Login(context.Background(), "admin", "correct-horse", nil)
	require.NoError(t, err)
	require.Equal(t, uint(1), result.Admin.ID)
	require.Equal(t, "signed-token", result.Token)
	require.Equal(t, 7*24*time.Hour, result.ExpiresIn)

	require.Len(t, audits.entries, 1)
	require.Equal(t, entity.LoginSuccess, audits.entries[0].Action)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, audits := newTestService(t)

	_, err := svc.Login(context.Background(), "admin", "wrong", nil)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.Len(t, audits.entries, 1)
	require.Equal(t, entity.LoginFailed, audits.entries[0].Action)
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _ := newTestService(t)

	// Same error as a wrong password: no user enumeration.
	_, err := svc.Login(context.Background(), "nobody", "whatever", nil)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginEmptyInput(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "", "password", nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login(context.Background(), "admin", "", nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogoutAudited(t *testing.T) {
	svc, audits := newTestService(t)

	svc.Logout(context.Background(), 1, nil)
	require.Len(t, audits.entries, 1)
	require.Equal(t, entity.Logout, audits.entries[0].Action)
}
