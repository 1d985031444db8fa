package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bengkelpos/backend/internal/activity"
	"github.com/bengkelpos/backend/pkg/db/models"
	pkgerrors "github.com/bengkelpos/backend/pkg/errors"
	"github.com/bengkelpos/backend/pkg/logger"
	"gorm.io/gorm"
)

type productRepository interface {
	ListWithStock(ctx context.Context, limit, offset int) ([]ProductWithStock, error)
	GetWithStock(ctx context.Context, id int64) (*ProductWithStock, error)
	CreateWithInitialStock(ctx context.Context, product *models.Product, initialStock int) error
	Update(ctx context.Context, product *models.Product) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	InsertMovement(ctx context.Context, movement *models.StockMovement) error
	TouchUpdatedAt(ctx context.Context, id int64) error
}

// Service exposes product catalog and stock operations.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]ProductDTO, error)
	Get(ctx context.Context, id int64) (*ProductDTO, error)
	Create(ctx context.Context, input CreateProductInput, operator string) (*ProductDTO, error)
	Update(ctx context.Context, id int64, input UpdateProductInput, operator string) (*ProductDTO, error)
	Delete(ctx context.Context, id int64, operator string) error
	AddStock(ctx context.Context, input AddStockInput, operator string) error
}

type service struct {
	repo     productRepository
	activity activity.Logger
	logg     *logger.Logger
}

// NewService builds a product service with the provided repository.
func NewService(repo productRepository, activityLog activity.Logger, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo, activity: activityLog, logg: logg}, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]ProductDTO, error) {
	rows, err := s.repo.ListWithStock(ctx, limit, offset)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}
	dtos := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *toDTO(&rows[i]))
	}
	return dtos, nil
}

func (s *service) Get(ctx context.Context, id int64) (*ProductDTO, error) {
	row, err := s.repo.GetWithStock(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}
	return toDTO(row), nil
}

// Create inserts the product and its opening stock in one transaction.
func (s *service) Create(ctx context.Context, input CreateProductInput, operator string) (*ProductDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Product name is required")
	}

	product := &models.Product{
		Name:          strings.TrimSpace(input.Name),
		Price:         input.Price,
		CategoryID:    input.CategoryID,
		VehicleTypeID: input.VehicleTypeID,
		ImageURL:      input.ImageURL,
	}

	if err := s.repo.CreateWithInitialStock(ctx, product, input.InitialStock); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}

	if s.activity != nil {
		s.activity.Log(ctx, operator, models.ActionCreateProduct, fmt.Sprintf("Created product %s", product.Name))
	}

	return productDTO(product, input.InitialStock), nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateProductInput, operator string) (*ProductDTO, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid product id")
	}

	product := &models.Product{
		ID:            id,
		Name:          strings.TrimSpace(input.Name),
		Price:         input.Price,
		CategoryID:    input.CategoryID,
		VehicleTypeID: input.VehicleTypeID,
		ImageURL:      input.ImageURL,
	}

	rows, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}
	if rows == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}

	if s.activity != nil {
		s.activity.Log(ctx, operator, models.ActionUpdateProduct, fmt.Sprintf("Updated product %s", product.Name))
	}

	return s.Get(ctx, id)
}

// Delete removes the product together with its movement ledger.
func (s *service) Delete(ctx context.Context, id int64, operator string) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid product id")
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}

	if s.activity != nil {
		s.activity.Log(ctx, operator, models.ActionDeleteProduct, fmt.Sprintf("Deleted product %d", id))
	}

	return nil
}

// AddStock appends a manual movement; the updated_at touch is best effort.
func (s *service) AddStock(ctx context.Context, input AddStockInput, operator string) error {
	if input.ProductID <= 0 || input.QuantityChange == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "productId and quantityChange are required")
	}

	movement := &models.StockMovement{
		ProductID:      input.ProductID,
		QuantityChange: *input.QuantityChange,
		MovementType:   models.MovementTypeManualAdd,
	}
	if err := s.repo.InsertMovement(ctx, movement); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}

	if err := s.repo.TouchUpdatedAt(ctx, input.ProductID); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "product_id", input.ProductID), "product.touch_failed")
	}

	if s.activity != nil {
		s.activity.Log(ctx, operator, models.ActionAddStock,
			fmt.Sprintf("Adjusted stock of product %d by %d", input.ProductID, *input.QuantityChange))
	}

	return nil
}
