package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/bengkelpos/backend/pkg/db/models"
	"github.com/bengkelpos/backend/pkg/types"
	"gorm.io/gorm"
)

// Repository handles sale persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to sale operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// InsertSale persists the sale header row.
func (r *Repository) InsertSale(ctx context.Context, sale *models.Sale) error {
	if sale == nil {
		return fmt.Errorf("sale is required")
	}
	return r.db.WithContext(ctx).Create(sale).Error
}

// InsertItem persists one sale line.
func (r *Repository) InsertItem(ctx context.Context, item *models.SaleItem) error {
	if item == nil {
		return fmt.Errorf("item is required")
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// InsertMovement appends one stock movement row.
func (r *Repository) InsertMovement(ctx context.Context, movement *models.StockMovement) error {
	if movement == nil {
		return fmt.Errorf("movement is required")
	}
	return r.db.WithContext(ctx).Create(movement).Error
}

// ListBetween returns sales created inside [from, to), newest first.
func (r *Repository) ListBetween(ctx context.Context, from, to time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// SaleItemRow is a sale line joined with its product name, when the product
// still exists.
type SaleItemRow struct {
	ProductID   int64        `gorm:"column:product_id"`
	ProductName *string      `gorm:"column:product_name"`
	Quantity    int          `gorm:"column:quantity"`
	PriceAtSale types.Amount `gorm:"column:price_at_sale"`
	Subtotal    types.Amount `gorm:"column:subtotal"`
}

// ItemsBySale returns the lines of one sale with product names attached.
func (r *Repository) ItemsBySale(ctx context.Context, saleID int64) ([]SaleItemRow, error) {
	var rows []SaleItemRow
	err := r.db.WithContext(ctx).
		Table("sale_items").
		Select("sale_items.product_id, products.name AS product_name, sale_items.quantity, sale_items.price_at_sale, sale_items.subtotal").
		Joins("LEFT JOIN products ON products.id = sale_items.product_id").
		Where("sale_items.sale_id = ?", saleID).
		Order("sale_items.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
