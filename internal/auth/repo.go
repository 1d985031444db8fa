package auth

import (
	"context"

	"github.com/bengkelpos/backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles user persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to user lookups.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByCredentials loads the user matching both username and password digest.
func (r *Repository) FindByCredentials(ctx context.Context, username, digest string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, digest).
		Take(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
