package dashboard

import (
	"context"
	"time"

	"github.com/bengkelpos/backend/pkg/types"
	"gorm.io/gorm"
)

// Repository computes dashboard aggregates straight from the ledger tables.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to dashboard reads.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LowStockRow is a product whose summed movements fall at or below a
// threshold.
type LowStockRow struct {
	ProductID int64  `gorm:"column:product_id" json:"productId"`
	Name      string `gorm:"column:name" json:"name"`
	Stock     int    `gorm:"column:stock" json:"stock"`
}

// LowStock lists products at or below the stock threshold, lowest first.
func (r *Repository) LowStock(ctx context.Context, threshold, limit int) ([]LowStockRow, error) {
	var rows []LowStockRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.id AS product_id, products.name, COALESCE(SUM(stock_movements.quantity_change), 0) AS stock").
		Joins("LEFT JOIN stock_movements ON stock_movements.product_id = products.id").
		Group("products.id").
		Having("COALESCE(SUM(stock_movements.quantity_change), 0) <= ?", threshold).
		Order("stock ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RevenueBetween sums total_amount over [from, to).
func (r *Repository) RevenueBetween(ctx context.Context, from, to time.Time) (types.Amount, error) {
	var result struct {
		Revenue types.Amount `gorm:"column:revenue"`
	}
	err := r.db.WithContext(ctx).
		Table("sales").
		Select("COALESCE(SUM(total_amount), 0) AS revenue").
		Where("created_at >= ? AND created_at < ?", from, to).
		Take(&result).Error
	if err != nil {
		return types.Amount{}, err
	}
	return result.Revenue, nil
}
