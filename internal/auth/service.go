package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bengkelpos/backend/internal/sessions"
	"github.com/bengkelpos/backend/pkg/db/models"
	pkgerrors "github.com/bengkelpos/backend/pkg/errors"
	"github.com/bengkelpos/backend/pkg/logger"
	"github.com/bengkelpos/backend/pkg/security"
	"gorm.io/gorm"
)

type userRepository interface {
	FindByCredentials(ctx context.Context, username, digest string) (*models.User, error)
}

// Service exposes credential and session entry points.
type Service interface {
	Login(ctx context.Context, input LoginInput, deviceInfo string) (*LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type service struct {
	repo     userRepository
	sessions sessions.Service
	logg     *logger.Logger
}

// NewService builds an auth service over the user repository and session store.
func NewService(repo userRepository, sessionSvc sessions.Service, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	if sessionSvc == nil {
		return nil, fmt.Errorf("session service required")
	}
	return &service{repo: repo, sessions: sessionSvc, logg: logg}, nil
}

// Login verifies credentials and issues a session. Unknown users and wrong
// passwords produce the same response.
func (s *service) Login(ctx context.Context, input LoginInput, deviceInfo string) (*LoginResponse, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Username and password are required")
	}

	digest := security.HashPassword(input.Password)
	user, err := s.repo.FindByCredentials(ctx, username, digest)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid username or password")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}

	session, err := s.sessions.Create(ctx, user.Username, deviceInfo)
	if err != nil {
		return nil, err
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithUsername(ctx, user.Username), "auth.login")
	}

	return &LoginResponse{
		Username:     user.Username,
		FullName:     user.FullName,
		RoleID:       user.RoleID,
		SessionToken: session.Token,
		ExpiresAt:    session.ExpiresAt,
	}, nil
}

// Logout deactivates the session carrying the token.
func (s *service) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "No authorization token provided")
	}
	return s.sessions.Invalidate(ctx, token)
}
