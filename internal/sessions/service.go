package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bengkelpos/backend/pkg/config"
	"github.com/bengkelpos/backend/pkg/db/models"
	pkgerrors "github.com/bengkelpos/backend/pkg/errors"
	"github.com/bengkelpos/backend/pkg/logger"
	"github.com/bengkelpos/backend/pkg/security"
	"gorm.io/gorm"
)

const (
	defaultDeviceInfo = "Unknown Device"
	maxDeviceInfoLen  = 255
)

type sessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	FindActiveByToken(ctx context.Context, token string) (*ActiveSession, error)
	Deactivate(ctx context.Context, id int64) error
	TouchLastActivity(ctx context.Context, id int64) error
	InvalidateByToken(ctx context.Context, token string) (int64, error)
}

// Service exposes session lifecycle operations.
type Service interface {
	Create(ctx context.Context, username, deviceInfo string) (*SessionDTO, error)
	Validate(ctx context.Context, token string) (*Identity, error)
	Invalidate(ctx context.Context, token string) error
}

type service struct {
	repo sessionRepository
	cfg  config.SessionConfig
	logg *logger.Logger
}

// NewService builds a session service with the provided repository.
func NewService(repo sessionRepository, cfg config.SessionConfig, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("session repository required")
	}
	return &service{repo: repo, cfg: cfg, logg: logg}, nil
}

// Create issues a fresh session token for the user.
func (s *service) Create(ctx context.Context, username, deviceInfo string) (*SessionDTO, error) {
	token, err := security.NewSessionToken()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating session token")
	}

	session := &models.Session{
		Username:     username,
		SessionToken: token,
		DeviceInfo:   normalizeDeviceInfo(deviceInfo),
		ExpiresAt:    time.Now().Add(s.cfg.Duration),
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}

	return &SessionDTO{Token: token, ExpiresAt: session.ExpiresAt}, nil
}

// Validate resolves a token to its operator. Expired sessions are flipped
// inactive on first sight; the last-activity stamp is best effort.
func (s *service) Validate(ctx context.Context, token string) (*Identity, error) {
	row, err := s.repo.FindActiveByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid session token")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}

	if time.Now().After(row.ExpiresAt) {
		if err := s.repo.Deactivate(ctx, row.ID); err != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "session_id", row.ID), "session.deactivate_failed")
		}
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Session expired")
	}

	if err := s.repo.TouchLastActivity(ctx, row.ID); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "session_id", row.ID), "session.touch_failed")
	}

	return &Identity{Username: row.Username, FullName: row.FullName}, nil
}

// Invalidate deactivates an active session. Tokens that are unknown or
// already inactive are rejected.
func (s *service) Invalidate(ctx context.Context, token string) error {
	rows, err := s.repo.InvalidateByToken(ctx, token)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Session not found or already invalidated")
	}
	return nil
}

func normalizeDeviceInfo(deviceInfo string) string {
	trimmed := strings.TrimSpace(deviceInfo)
	if trimmed == "" {
		return defaultDeviceInfo
	}
	if len(trimmed) > maxDeviceInfoLen {
		return trimmed[:maxDeviceInfoLen]
	}
	return trimmed
}
