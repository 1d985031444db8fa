package controllers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bengkelpos/backend/internal/sales"
	"github.com/bengkelpos/backend/pkg/types"
)

type stubSaleService struct {
	createResp *sales.CreateSaleResponse
	createErr  error
	monthList  []sales.SaleDTO
	todayList  []sales.SaleDTO
	items      []sales.SaleItemDTO
	itemsErr   error
	gotYear    int
	gotMonth   int
	gotSaleID  int64
	gotInput   sales.CreateSaleInput
	gotOp      string
}

func (s *stubSaleService) Create(ctx context.Context, input sales.CreateSaleInput, operator string) (*sales.CreateSaleResponse, error) {
	s.gotInput = input
	s.gotOp = operator
	return s.createResp, s.createErr
}

func (s *stubSaleService) ListMonth(ctx context.Context, year, month int) ([]sales.SaleDTO, error) {
	s.gotYear = year
	s.gotMonth = month
	return s.monthList, nil
}

func (s *stubSaleService) ListToday(ctx context.Context) ([]sales.SaleDTO, error) {
	return s.todayList, nil
}

func (s *stubSaleService) ItemsBySale(ctx context.Context, saleID int64) ([]sales.SaleItemDTO, error) {
	s.gotSaleID = saleID
	return s.items, s.itemsErr
}

func TestSalesCreate(t *testing.T) {
	svc := &stubSaleService{createResp: &sales.CreateSaleResponse{SaleID: 42, TotalAmount: types.AmountFromInt(28)}}
	handler := SalesCreate(svc, testLogger())

	body := []byte(`{"customerName":"Pak Joko","type":"service","serviceFee":7,"items":[],"paymentMethod":"cash"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Sale created successfully" {
		t.Fatalf("unexpected message %q", env.Message)
	}
	if !strings.Contains(string(env.Data), `"saleId":42`) {
		t.Fatalf("expected sale id in data: %s", env.Data)
	}
}

func TestSalesListDefaultsToCurrentMonth(t *testing.T) {
	svc := &stubSaleService{monthList: []sales.SaleDTO{}}
	handler := SalesList(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	now := time.Now()
	if svc.gotYear != now.Year() || svc.gotMonth != int(now.Month()) {
		t.Fatalf("expected current month defaults, got %d-%d", svc.gotYear, svc.gotMonth)
	}
	cc := rec.Header().Get("Cache-Control")
	if cc != "public, max-age=10, stale-while-revalidate=60" {
		t.Fatalf("unexpected cache header for current month: %q", cc)
	}
}

func TestSalesListPastMonthCachesLonger(t *testing.T) {
	svc := &stubSaleService{monthList: []sales.SaleDTO{}}
	handler := SalesList(svc, testLogger())

	past := time.Now().AddDate(0, -2, 0)
	target := fmt.Sprintf("/api/sales?month=%d&year=%d", int(past.Month()), past.Year())
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	cc := rec.Header().Get("Cache-Control")
	if cc != "public, max-age=3600, stale-while-revalidate=86400" {
		t.Fatalf("unexpected cache header for past month: %q", cc)
	}
}

func TestSalesListRejectsBadMonth(t *testing.T) {
	svc := &stubSaleService{}
	handler := SalesList(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/sales?month=13", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestSalesItems(t *testing.T) {
	svc := &stubSaleService{items: []sales.SaleItemDTO{}}
	router := chi.NewRouter()
	router.Get("/api/sales/{id}/items", SalesItems(svc, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/sales/7/items", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotSaleID != 7 {
		t.Fatalf("expected sale id 7, got %d", svc.gotSaleID)
	}
}

func TestSalesItemsInvalidID(t *testing.T) {
	svc := &stubSaleService{}
	router := chi.NewRouter()
	router.Get("/api/sales/{id}/items", SalesItems(svc, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/sales/abc/items", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error != "Invalid sale id" {
		t.Fatalf("unexpected error message %q", env.Error)
	}
}
