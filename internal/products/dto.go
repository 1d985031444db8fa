package products

import (
	"time"

	"github.com/bengkelpos/backend/pkg/db/models"
	"github.com/bengkelpos/backend/pkg/types"
)

// ProductDTO is the API shape of a product with its derived stock.
type ProductDTO struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Price         types.Amount `json:"price"`
	CategoryID    int64        `json:"categoryId"`
	VehicleTypeID int64        `json:"vehicleTypeId"`
	ImageURL      *string      `json:"imageUrl"`
	Stock         int          `json:"stock"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// CreateProductInput is the create request body.
type CreateProductInput struct {
	Name          string       `json:"name" validate:"required"`
	Price         types.Amount `json:"price"`
	CategoryID    int64        `json:"categoryId" validate:"required"`
	VehicleTypeID int64        `json:"vehicleTypeId" validate:"required"`
	ImageURL      *string      `json:"imageUrl"`
	InitialStock  int          `json:"initialStock"`
}

// UpdateProductInput is the update request body.
type UpdateProductInput struct {
	Name          string       `json:"name" validate:"required"`
	Price         types.Amount `json:"price"`
	CategoryID    int64        `json:"categoryId" validate:"required"`
	VehicleTypeID int64        `json:"vehicleTypeId" validate:"required"`
	ImageURL      *string      `json:"imageUrl"`
}

// AddStockInput is the manual stock adjustment body.
type AddStockInput struct {
	ProductID      int64 `json:"productId" validate:"required"`
	QuantityChange *int  `json:"quantityChange" validate:"required"`
}

func toDTO(row *ProductWithStock) *ProductDTO {
	return &ProductDTO{
		ID:            row.ID,
		Name:          row.Name,
		Price:         row.Price,
		CategoryID:    row.CategoryID,
		VehicleTypeID: row.VehicleTypeID,
		ImageURL:      row.ImageURL,
		Stock:         row.Stock,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func productDTO(p *models.Product, stock int) *ProductDTO {
	return &ProductDTO{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		CategoryID:    p.CategoryID,
		VehicleTypeID: p.VehicleTypeID,
		ImageURL:      p.ImageURL,
		Stock:         stock,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
