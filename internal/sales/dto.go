package sales

import (
	"time"

	"github.com/bengkelpos/backend/pkg/types"
)

// SaleItemInput is one cart line. Quantity and price tolerate sloppy client
// payloads: non-numeric values coerce to zero instead of rejecting the sale.
type SaleItemInput struct {
	ProductID int64        `json:"productId"`
	Quantity  types.Amount `json:"quantity"`
	Price     types.Amount `json:"price"`
}

// CreateSaleInput is the checkout request body.
type CreateSaleInput struct {
	CustomerName  string          `json:"customerName"`
	SaleType      string          `json:"type"`
	ServiceFee    types.Amount    `json:"serviceFee"`
	Items         []SaleItemInput `json:"items"`
	ReceiptURL    *string         `json:"receiptUrl"`
	PaymentMethod string          `json:"paymentMethod"`
}

// CreateSaleResponse reports the persisted sale header.
type CreateSaleResponse struct {
	SaleID      int64        `json:"saleId"`
	TotalAmount types.Amount `json:"totalAmount"`
}

// SaleDTO is the API shape of a sale header.
type SaleDTO struct {
	ID            int64        `json:"id"`
	CustomerName  string       `json:"customerName"`
	SaleType      string       `json:"type"`
	ServiceFee    types.Amount `json:"serviceFee"`
	TotalAmount   types.Amount `json:"totalAmount"`
	ReceiptURL    *string      `json:"receiptUrl"`
	Operator      string       `json:"operator"`
	PaymentMethod string       `json:"paymentMethod"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// SaleItemDTO is one line of a recorded sale.
type SaleItemDTO struct {
	ProductID   int64        `json:"productId"`
	ProductName string       `json:"productName"`
	Quantity    int          `json:"quantity"`
	PriceAtSale types.Amount `json:"priceAtSale"`
	Subtotal    types.Amount `json:"subtotal"`
}
