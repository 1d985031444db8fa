package models

import "time"

// Activity log actions recorded by the API.
const (
	ActionCreateProduct = "CREATE_PRODUCT"
	ActionUpdateProduct = "UPDATE_PRODUCT"
	ActionDeleteProduct = "DELETE_PRODUCT"
	ActionAddStock      = "ADD_STOCK"
	ActionCreateSale    = "CREATE_SALE"
	ActionDeleteFile    = "DELETE_FILE"
)

// ActivityLog is an audit trail entry of an operator action.
type ActivityLog struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Username    string    `gorm:"column:username;not null;index"`
	Action      string    `gorm:"column:action;not null"`
	Description string    `gorm:"column:description;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}
