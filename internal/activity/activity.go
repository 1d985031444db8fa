package activity

import (
	"context"
	"fmt"

	"github.com/bengkelpos/backend/pkg/db/models"
	"github.com/bengkelpos/backend/pkg/logger"
	"gorm.io/gorm"
)

// Repository persists audit trail entries.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to activity log writes.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts one activity log row.
func (r *Repository) Create(ctx context.Context, entry *models.ActivityLog) error {
	if entry == nil {
		return fmt.Errorf("entry is required")
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

type activityRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
}

// Logger records operator actions after they succeed. Writes are best
// effort and never surface to the caller.
type Logger interface {
	Log(ctx context.Context, username, action, description string)
}

type recorder struct {
	repo activityRepository
	logg *logger.Logger
}

// NewLogger builds an activity logger over the repository.
func NewLogger(repo activityRepository, logg *logger.Logger) (Logger, error) {
	if repo == nil {
		return nil, fmt.Errorf("activity repository required")
	}
	return &recorder{repo: repo, logg: logg}, nil
}

func (r *recorder) Log(ctx context.Context, username, action, description string) {
	entry := &models.ActivityLog{
		Username:    username,
		Action:      action,
		Description: description,
	}
	if err := r.repo.Create(ctx, entry); err != nil && r.logg != nil {
		fields := map[string]any{"action": action, "username": username}
		r.logg.Warn(r.logg.WithFields(ctx, fields), "activity.log_failed")
	}
}
