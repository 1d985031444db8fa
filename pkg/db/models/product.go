package models

import (
	"time"

	"github.com/bengkelpos/backend/pkg/types"
)

// Product is a sellable catalog entry.
type Product struct {
	ID            int64        `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string       `gorm:"column:name;not null"`
	Price         types.Amount `gorm:"column:price;type:numeric(14,2);not null"`
	CategoryID    int64        `gorm:"column:category_id;not null"`
	VehicleTypeID int64        `gorm:"column:vehicle_type_id;not null"`
	ImageURL      *string      `gorm:"column:image_url"`
	CreatedAt     time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time    `gorm:"column:updated_at;autoUpdateTime"`
}
