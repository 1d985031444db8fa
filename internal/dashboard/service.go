package dashboard

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/bengkelpos/backend/pkg/errors"
	"github.com/bengkelpos/backend/pkg/types"
)

const (
	defaultLowStockThreshold = 3
	defaultLowStockLimit     = 5
)

type dashboardRepository interface {
	LowStock(ctx context.Context, threshold, limit int) ([]LowStockRow, error)
	RevenueBetween(ctx context.Context, from, to time.Time) (types.Amount, error)
}

// MonthlyRevenueDTO reports one month's revenue.
type MonthlyRevenueDTO struct {
	Revenue types.Amount `json:"revenue"`
	Year    int          `json:"year"`
	Month   int          `json:"month"`
}

// DailyRevenueDTO is one day of the weekly series. The JSON key "count"
// carries the day's revenue; existing dashboards bind to that name.
type DailyRevenueDTO struct {
	Date  string       `json:"date"`
	Count types.Amount `json:"count"`
}

// Service exposes dashboard aggregates.
type Service interface {
	LowStock(ctx context.Context, threshold, limit int) ([]LowStockRow, error)
	MonthlyRevenue(ctx context.Context, year, month int) (*MonthlyRevenueDTO, error)
	WeeklyRevenue(ctx context.Context) ([]DailyRevenueDTO, error)
}

type service struct {
	repo dashboardRepository
	now  func() time.Time
}

// NewService builds a dashboard service with the provided repository.
func NewService(repo dashboardRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) LowStock(ctx context.Context, threshold, limit int) ([]LowStockRow, error) {
	if threshold <= 0 {
		threshold = defaultLowStockThreshold
	}
	if limit <= 0 {
		limit = defaultLowStockLimit
	}
	rows, err := s.repo.LowStock(ctx, threshold, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}
	return rows, nil
}

func (s *service) MonthlyRevenue(ctx context.Context, year, month int) (*MonthlyRevenueDTO, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	revenue, err := s.repo.RevenueBetween(ctx, from, from.AddDate(0, 1, 0))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
	}
	return &MonthlyRevenueDTO{Revenue: revenue, Year: year, Month: month}, nil
}

// WeeklyRevenue returns the last seven days including today, oldest first.
func (s *service) WeeklyRevenue(ctx context.Context) ([]DailyRevenueDTO, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	series := make([]DailyRevenueDTO, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		revenue, err := s.repo.RevenueBetween(ctx, day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, err.Error())
		}
		series = append(series, DailyRevenueDTO{Date: day.Format("2006-01-02"), Count: revenue})
	}
	return series, nil
}
