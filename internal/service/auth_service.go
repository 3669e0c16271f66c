package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"getexposure/internal/entity"
	"getexposure/internal/repository"

	"gorm.io/datatypes"
)

// Burned on every lookup miss so unknown usernames cost a bcrypt comparison
// too; login timing does not reveal whether the username exists.
const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type AuthService struct {
	admins    repository.AdminRepository
	auditLogs repository.AuditLogRepository

	passwordHash PasswordHasher
	tokens       SessionTokenIssuer
}

func NewAuthService(
	admins repository.AdminRepository,
	auditLogs repository.AuditLogRepository,
	passwordHash PasswordHasher,
	tokens SessionTokenIssuer,
) *AuthService {
	return &AuthService{
		admins:       admins,
		auditLogs:    auditLogs,
		passwordHash: passwordHash,
		tokens:       tokens,
	}
}

type LoginResult struct {
	Admin     *entity.Admin
	Token     string
	ExpiresIn time.Duration
}

// Login validates credentials against the database-backed admin record and
// mints a session token. Bad username and bad password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string, ipAddress *string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, password)
		_ = s.logAudit(ctx, nil, ipAddress, entity.LoginFailed, map[string]any{"username": username})
		return nil, ErrInvalidCredentials
	}

	if !s.passwordHash.Verify(admin.PasswordHash, password) {
		_ = s.logAudit(ctx, &admin.ID, ipAddress, entity.LoginFailed, map[string]any{"username": username})
		return nil, ErrInvalidCredentials
	}

	token, ttl, err := s.tokens.IssueSessionToken(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}

	_ = s.logAudit(ctx, &admin.ID, ipAddress, entity.LoginSuccess, nil)
	return &LoginResult{Admin: admin, Token: token, ExpiresIn: ttl}, nil
}

func (s *AuthService) Logout(ctx context.Context, adminID uint, ipAddress *string) {
	_ = s.logAudit(ctx, &adminID, ipAddress, entity.Logout, nil)
}

func (s *AuthService) GetAdmin(ctx context.Context, id uint) (*entity.Admin, error) {
	return s.admins.FindByID(ctx, id)
}

func (s *AuthService) logAudit(ctx context.Context, adminID *uint, ipAddress *string, action entity.AuditAction, metadata map[string]any) error {
	if s.auditLogs == nil {
		return nil
	}
	log := &entity.AuditLog{
		AdminID:   adminID,
		IPAddress: ipAddress,
		Action:    action,
	}
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err == nil {
			log.Metadata = datatypes.JSON(raw)
		}
	}
	return s.auditLogs.Log(ctx, log)
}
