package models

import "time"

// Stock movement types. Stock on hand is always derived by summing
// quantity_change per product, never stored directly.
const (
	MovementTypeSale      = "sale"
	MovementTypeManualAdd = "manual_add"
	MovementTypeInitial   = "initial"
)

// StockMovement is one signed inventory change for a product.
type StockMovement struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID      int64     `gorm:"column:product_id;not null;index"`
	QuantityChange int       `gorm:"column:quantity_change;not null"`
	MovementType   string    `gorm:"column:movement_type;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}
