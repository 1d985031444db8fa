package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/bengkelpos/backend/internal/activity"
	"github.com/bengkelpos/backend/pkg/db/models"
	pkgerrors "github.com/bengkelpos/backend/pkg/errors"
	"github.com/bengkelpos/backend/pkg/logger"
	"go.uber.org/multierr"
)

type saleRepository interface {
	InsertSale(ctx context.Context, sale *models.Sale) error
	InsertItem(ctx context.Context, item *models.SaleItem) error
	InsertMovement(ctx context.Context, movement *models.StockMovement) error
	ListBetween(ctx context.Context, from, to time.Time) ([]models.Sale, error)
	ItemsBySale(ctx context.Context, saleID int64) ([]SaleItemRow, error)
}

// Service exposes the sale transaction writer and its read paths.
type Service interface {
	Create(ctx context.Context, input CreateSaleInput, operator string) (*CreateSaleResponse, error)
	ListMonth(ctx context.Context, year, month int) ([]SaleDTO, error)
	ListToday(ctx context.Context) ([]SaleDTO, error)
	ItemsBySale(ctx context.Context, saleID int64) ([]SaleItemDTO, error)
}

type service struct {
	repo     saleRepository
	activity activity.Logger
	logg     *logger.Logger
	now      func() time.Time
}

// NewService builds a sale service with the provided repository.
func NewService(repo saleRepository, activityLog activity.Logger, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sale repository required")
	}
	return &service{repo: repo, activity: activityLog, logg: logg, now: time.Now}, nil
}

// Create records a sale. The header row must land before anything else; the
// per-line and stock writes that follow never fail the sale, only the log
// records them.
func (s *service) Create(ctx context.Context, input CreateSaleInput, operator string) (*CreateSaleResponse, error) {
	total := input.ServiceFee
	for _, item := range input.Items {
		total = total.Add(item.Quantity.Mul(item.Price))
	}

	sale := &models.Sale{
		CustomerName:  input.CustomerName,
		SaleType:      input.SaleType,
		PaymentMethod: input.PaymentMethod,
		ServiceFee:    input.ServiceFee,
		TotalAmount:   total,
		ReceiptURL:    input.ReceiptURL,
		Operator:      operator,
	}

	if err := s.repo.InsertSale(ctx, sale); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}

	var detailErrs error
	for _, item := range input.Items {
		quantity := int(item.Quantity.IntPart())

		line := &models.SaleItem{
			SaleID:      sale.ID,
			ProductID:   item.ProductID,
			Quantity:    quantity,
			PriceAtSale: item.Price,
			Subtotal:    item.Quantity.Mul(item.Price),
		}
		if err := s.repo.InsertItem(ctx, line); err != nil {
			detailErrs = multierr.Append(detailErrs, fmt.Errorf("sale item product %d: %w", item.ProductID, err))
		}

		movement := &models.StockMovement{
			ProductID:      item.ProductID,
			QuantityChange: -quantity,
			MovementType:   models.MovementTypeSale,
		}
		if err := s.repo.InsertMovement(ctx, movement); err != nil {
			detailErrs = multierr.Append(detailErrs, fmt.Errorf("stock movement product %d: %w", item.ProductID, err))
		}
	}

	if detailErrs != nil && s.logg != nil {
		fields := map[string]any{
			"sale_id":  sale.ID,
			"failures": len(multierr.Errors(detailErrs)),
		}
		s.logg.Error(s.logg.WithFields(ctx, fields), "sale.detail_writes_failed", detailErrs)
	}

	if s.activity != nil {
		s.activity.Log(ctx, operator, models.ActionCreateSale,
			fmt.Sprintf("Recorded sale %d totaling %s", sale.ID, total.String()))
	}

	return &CreateSaleResponse{SaleID: sale.ID, TotalAmount: total}, nil
}

// ListMonth returns the sales of one calendar month, newest first.
func (s *service) ListMonth(ctx context.Context, year, month int) ([]SaleDTO, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)
	return s.listBetween(ctx, from, to)
}

// ListToday returns the sales recorded since local midnight.
func (s *service) ListToday(ctx context.Context) ([]SaleDTO, error) {
	now := s.now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return s.listBetween(ctx, from, from.AddDate(0, 0, 1))
}

func (s *service) listBetween(ctx context.Context, from, to time.Time) ([]SaleDTO, error) {
	rows, err := s.repo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}
	dtos := make([]SaleDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toSaleDTO(&rows[i]))
	}
	return dtos, nil
}

// ItemsBySale returns the lines of a sale; products deleted since the sale
// fall back to a placeholder name.
func (s *service) ItemsBySale(ctx context.Context, saleID int64) ([]SaleItemDTO, error) {
	if saleID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid sale id")
	}

	rows, err := s.repo.ItemsBySale(ctx, saleID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}

	dtos := make([]SaleItemDTO, 0, len(rows))
	for _, row := range rows {
		name := "Unknown Product"
		if row.ProductName != nil && *row.ProductName != "" {
			name = *row.ProductName
		}
		dtos = append(dtos, SaleItemDTO{
			ProductID:   row.ProductID,
			ProductName: name,
			Quantity:    row.Quantity,
			PriceAtSale: row.PriceAtSale,
			Subtotal:    row.Subtotal,
		})
	}
	return dtos, nil
}

func toSaleDTO(sale *models.Sale) SaleDTO {
	return SaleDTO{
		ID:            sale.ID,
		CustomerName:  sale.CustomerName,
		SaleType:      sale.SaleType,
		ServiceFee:    sale.ServiceFee,
		TotalAmount:   sale.TotalAmount,
		ReceiptURL:    sale.ReceiptURL,
		Operator:      sale.Operator,
		PaymentMethod: sale.PaymentMethod,
		CreatedAt:     sale.CreatedAt,
	}
}
