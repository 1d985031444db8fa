package models

import (
	"time"

	"github.com/bengkelpos/backend/pkg/types"
)

// SaleItem is one product line belonging to a sale.
type SaleItem struct {
	ID          int64        `gorm:"column:id;primaryKey;autoIncrement"`
	SaleID      int64        `gorm:"column:sale_id;not null;index"`
	ProductID   int64        `gorm:"column:product_id;not null"`
	Quantity    int          `gorm:"column:quantity;not null"`
	PriceAtSale types.Amount `gorm:"column:price_at_sale;type:numeric(14,2);not null"`
	Subtotal    types.Amount `gorm:"column:subtotal;type:numeric(14,2);not null"`
	CreatedAt   time.Time    `gorm:"column:created_at;autoCreateTime"`
}
