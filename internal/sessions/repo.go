package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/bengkelpos/backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles session persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to session operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ActiveSession is a session row joined with its owning user.
type ActiveSession struct {
	models.Session
	FullName string `gorm:"column:fullname"`
}

// Create persists a new session row.
func (r *Repository) Create(ctx context.Context, session *models.Session) error {
	if session == nil {
		return fmt.Errorf("session is required")
	}
	return r.db.WithContext(ctx).Create(session).Error
}

// FindActiveByToken loads the active session carrying the token, together
// with the operator's display name.
func (r *Repository) FindActiveByToken(ctx context.Context, token string) (*ActiveSession, error) {
	var row ActiveSession
	err := r.db.WithContext(ctx).
		Table("user_sessions").
		Select("user_sessions.*, users.fullname").
		Joins("JOIN users ON users.username = user_sessions.username").
		Where("user_sessions.session_token = ? AND user_sessions.is_active = ?", token, true).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Deactivate flips an expired session to inactive.
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "invalidated_at": now}).Error
}

// TouchLastActivity stamps the session's last activity time.
func (r *Repository) TouchLastActivity(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ?", id).
		Update("last_activity", now).Error
}

// InvalidateByToken deactivates an active session and reports how many rows
// were touched.
func (r *Repository) InvalidateByToken(ctx context.Context, token string) (int64, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("session_token = ? AND is_active = ?", token, true).
		Updates(map[string]any{"is_active": false, "invalidated_at": now})
	return res.RowsAffected, res.Error
}
