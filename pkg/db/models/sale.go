package models

import (
	"time"

	"github.com/bengkelpos/backend/pkg/types"
)

// Sale is the header row of a completed point-of-sale transaction.
type Sale struct {
	ID            int64        `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerName  string       `gorm:"column:customer_name;not null"`
	SaleType      string       `gorm:"column:sale_type;not null"`
	PaymentMethod string       `gorm:"column:payment_method;not null"`
	ServiceFee    types.Amount `gorm:"column:service_fee;type:numeric(14,2);not null;default:0"`
	TotalAmount   types.Amount `gorm:"column:total_amount;type:numeric(14,2);not null"`
	ReceiptURL    *string      `gorm:"column:receipt_url"`
	Operator      string       `gorm:"column:operator;not null"`
	CreatedAt     time.Time    `gorm:"column:created_at;autoCreateTime"`
}
