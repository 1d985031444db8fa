package catalog

import (
	"context"

	"github.com/bengkelpos/backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles catalog reference data.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to catalog lookups.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListCategories returns all categories ordered by name.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListVehicleTypes returns all vehicle types ordered by name.
func (r *Repository) ListVehicleTypes(ctx context.Context) ([]models.VehicleType, error) {
	var vehicleTypes []models.VehicleType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&vehicleTypes).Error; err != nil {
		return nil, err
	}
	return vehicleTypes, nil
}
