package products

import (
	"context"
	"fmt"
	"time"

	"github.com/bengkelpos/backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles product and stock movement persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to product operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ProductWithStock is a product row with its summed movement ledger.
type ProductWithStock struct {
	models.Product
	Stock int `gorm:"column:stock"`
}

const productWithStockSelect = `products.*, COALESCE(SUM(stock_movements.quantity_change), 0) AS stock`

// ListWithStock returns products together with their derived stock, name
// ascending.
func (r *Repository) ListWithStock(ctx context.Context, limit, offset int) ([]ProductWithStock, error) {
	var rows []ProductWithStock
	q := r.db.WithContext(ctx).
		Table("products").
		Select(productWithStockSelect).
		Joins("LEFT JOIN stock_movements ON stock_movements.product_id = products.id").
		Group("products.id").
		Order("products.name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetWithStock loads one product with its derived stock.
func (r *Repository) GetWithStock(ctx context.Context, id int64) (*ProductWithStock, error) {
	var row ProductWithStock
	err := r.db.WithContext(ctx).
		Table("products").
		Select(productWithStockSelect).
		Joins("LEFT JOIN stock_movements ON stock_movements.product_id = products.id").
		Where("products.id = ?", id).
		Group("products.id").
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateWithInitialStock inserts the product and, when requested, its opening
// stock movement in one transaction.
func (r *Repository) CreateWithInitialStock(ctx context.Context, product *models.Product, initialStock int) error {
	if product == nil {
		return fmt.Errorf("product is required")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if initialStock == 0 {
			return nil
		}
		movement := &models.StockMovement{
			ProductID:      product.ID,
			QuantityChange: initialStock,
			MovementType:   models.MovementTypeInitial,
		}
		return tx.Create(movement).Error
	})
}

// Update saves the provided product and reports whether a row matched.
func (r *Repository) Update(ctx context.Context, product *models.Product) (int64, error) {
	if product == nil {
		return 0, fmt.Errorf("product is required")
	}
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":            product.Name,
			"price":           product.Price,
			"category_id":     product.CategoryID,
			"vehicle_type_id": product.VehicleTypeID,
			"image_url":       product.ImageURL,
			"updated_at":      time.Now(),
		})
	return res.RowsAffected, res.Error
}

// Delete removes the product and its movement ledger in one transaction.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.StockMovement{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Product{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

// InsertMovement appends one stock movement row.
func (r *Repository) InsertMovement(ctx context.Context, movement *models.StockMovement) error {
	if movement == nil {
		return fmt.Errorf("movement is required")
	}
	return r.db.WithContext(ctx).Create(movement).Error
}

// TouchUpdatedAt stamps the product's updated_at column.
func (r *Repository) TouchUpdatedAt(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("updated_at", now).Error
}
