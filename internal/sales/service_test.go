package sales

import (
	"context"
	"testing"
	"time"

	"github.com/bengkelpos/backend/pkg/db/models"
	"github.com/bengkelpos/backend/pkg/types"
	"gorm.io/gorm"
)

type stubSaleRepo struct {
	sale        *models.Sale
	saleErr     error
	items       []*models.SaleItem
	itemErr     error
	movements   []*models.StockMovement
	movementErr error
	listed      []models.Sale
	listFrom    time.Time
	listTo      time.Time
	itemRows    []SaleItemRow
}

func (s *stubSaleRepo) InsertSale(_ context.Context, sale *models.Sale) error {
	if s.saleErr != nil {
		return s.saleErr
	}
	sale.ID = 101
	s.sale = sale
	return nil
}

func (s *stubSaleRepo) InsertItem(_ context.Context, item *models.SaleItem) error {
	if s.itemErr != nil {
		return s.itemErr
	}
	s.items = append(s.items, item)
	return nil
}

func (s *stubSaleRepo) InsertMovement(_ context.Context, movement *models.StockMovement) error {
	if s.movementErr != nil {
		return s.movementErr
	}
	s.movements = append(s.movements, movement)
	return nil
}

func (s *stubSaleRepo) ListBetween(_ context.Context, from, to time.Time) ([]models.Sale, error) {
	s.listFrom = from
	s.listTo = to
	return s.listed, nil
}

func (s *stubSaleRepo) ItemsBySale(_ context.Context, _ int64) ([]SaleItemRow, error) {
	return s.itemRows, nil
}

func newTestSaleService(t *testing.T, repo *stubSaleRepo) *service {
	t.Helper()
	svc, err := NewService(repo, nil, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc.(*service)
}

func amount(v int64) types.Amount { return types.AmountFromInt(v) }

func TestCreateComputesTotal(t *testing.T) {
	repo := &stubSaleRepo{}
	svc := newTestSaleService(t, repo)

	resp, err := svc.Create(context.Background(), CreateSaleInput{
		CustomerName: "Andi",
		SaleType:     "service",
		ServiceFee:   amount(3),
		Items: []SaleItemInput{
			{ProductID: 1, Quantity: amount(2), Price: amount(10)},
			{ProductID: 2, Quantity: amount(1), Price: amount(5)},
		},
		PaymentMethod: "cash",
	}, "budi")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !resp.TotalAmount.Equal(amount(28)) {
		t.Fatalf("expected total 28, got %s", resp.TotalAmount.String())
	}
	if resp.SaleID != 101 {
		t.Fatalf("expected sale id 101, got %d", resp.SaleID)
	}
	if repo.sale.Operator != "budi" {
		t.Fatalf("operator not attributed, got %q", repo.sale.Operator)
	}
	if len(repo.items) != 2 || len(repo.movements) != 2 {
		t.Fatalf("expected 2 items and 2 movements, got %d/%d", len(repo.items), len(repo.movements))
	}
	if repo.movements[0].QuantityChange != -2 || repo.movements[0].MovementType != models.MovementTypeSale {
		t.Fatalf("unexpected movement %+v", repo.movements[0])
	}
}

func TestCreateZeroItems(t *testing.T) {
	repo := &stubSaleRepo{}
	svc := newTestSaleService(t, repo)

	resp, err := svc.Create(context.Background(), CreateSaleInput{
		CustomerName: "Andi",
		ServiceFee:   amount(7),
	}, "budi")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !resp.TotalAmount.Equal(amount(7)) {
		t.Fatalf("expected total 7, got %s", resp.TotalAmount.String())
	}
	if len(repo.movements) != 0 {
		t.Fatalf("zero items must create zero movements, got %d", len(repo.movements))
	}
}

func TestCreateHeaderFailureAborts(t *testing.T) {
	repo := &stubSaleRepo{saleErr: gorm.ErrInvalidDB}
	svc := newTestSaleService(t, repo)

	_, err := svc.Create(context.Background(), CreateSaleInput{
		ServiceFee: amount(1),
		Items:      []SaleItemInput{{ProductID: 1, Quantity: amount(1), Price: amount(1)}},
	}, "budi")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.items) != 0 || len(repo.movements) != 0 {
		t.Fatal("no detail rows may be written when the header insert fails")
	}
}

func TestCreateToleratesDetailFailures(t *testing.T) {
	repo := &stubSaleRepo{itemErr: gorm.ErrInvalidDB}
	svc := newTestSaleService(t, repo)

	resp, err := svc.Create(context.Background(), CreateSaleInput{
		ServiceFee: amount(3),
		Items: []SaleItemInput{
			{ProductID: 1, Quantity: amount(2), Price: amount(10)},
		},
	}, "budi")
	if err != nil {
		t.Fatalf("detail failure must not fail the sale: %v", err)
	}
	if resp.SaleID != 101 || !resp.TotalAmount.Equal(amount(23)) {
		t.Fatalf("unexpected response %+v", resp)
	}
	// the stock movement still goes through independently
	if len(repo.movements) != 1 {
		t.Fatalf("expected movement despite item failure, got %d", len(repo.movements))
	}
}

func TestCreateCoercesGarbageQuantities(t *testing.T) {
	repo := &stubSaleRepo{}
	svc := newTestSaleService(t, repo)

	var garbage types.Amount
	if err := garbage.UnmarshalJSON([]byte(`"banyak"`)); err != nil {
		t.Fatalf("coercion must not error: %v", err)
	}

	resp, err := svc.Create(context.Background(), CreateSaleInput{
		ServiceFee: amount(5),
		Items: []SaleItemInput{
			{ProductID: 1, Quantity: garbage, Price: amount(10)},
		},
	}, "budi")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !resp.TotalAmount.Equal(amount(5)) {
		t.Fatalf("garbage quantity must contribute zero, got %s", resp.TotalAmount.String())
	}
}

func TestListTodayWindow(t *testing.T) {
	repo := &stubSaleRepo{}
	svc := newTestSaleService(t, repo)
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 31, 15, 4, 5, 0, time.Local)
	}

	if _, err := svc.ListToday(context.Background()); err != nil {
		t.Fatalf("list today: %v", err)
	}
	wantFrom := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.Local)
	if !repo.listFrom.Equal(wantFrom) {
		t.Fatalf("unexpected window start %v", repo.listFrom)
	}
	if !repo.listTo.Equal(wantFrom.AddDate(0, 0, 1)) {
		t.Fatalf("unexpected window end %v", repo.listTo)
	}
}

func TestListMonthWindow(t *testing.T) {
	repo := &stubSaleRepo{}
	svc := newTestSaleService(t, repo)

	if _, err := svc.ListMonth(context.Background(), 2026, 2); err != nil {
		t.Fatalf("list month: %v", err)
	}
	wantFrom := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local)
	if !repo.listFrom.Equal(wantFrom) || !repo.listTo.Equal(wantFrom.AddDate(0, 1, 0)) {
		t.Fatalf("unexpected window %v..%v", repo.listFrom, repo.listTo)
	}
}

func TestItemsBySaleUnknownProductFallback(t *testing.T) {
	name := "Oli Mesin"
	repo := &stubSaleRepo{itemRows: []SaleItemRow{
		{ProductID: 1, ProductName: &name, Quantity: 2, PriceAtSale: amount(10), Subtotal: amount(20)},
		{ProductID: 9, ProductName: nil, Quantity: 1, PriceAtSale: amount(5), Subtotal: amount(5)},
	}}
	svc := newTestSaleService(t, repo)

	items, err := svc.ItemsBySale(context.Background(), 101)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if items[0].ProductName != "Oli Mesin" {
		t.Fatalf("unexpected name %q", items[0].ProductName)
	}
	if items[1].ProductName != "Unknown Product" {
		t.Fatalf("expected fallback name, got %q", items[1].ProductName)
	}
}

func TestItemsBySaleRejectsInvalidID(t *testing.T) {
	svc := newTestSaleService(t, &stubSaleRepo{})

	if _, err := svc.ItemsBySale(context.Background(), 0); err == nil {
		t.Fatal("expected validation error")
	}
}
