package validators

import (
	"net/http/httptest"
	"testing"
)

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest("GET", "/?limit=25", nil)
	got, err := ParseQueryInt(req, "limit", 50, 1, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 25 {
		t.Fatalf("expected 25 got %d", got)
	}

	req = httptest.NewRequest("GET", "/", nil)
	got, err = ParseQueryInt(req, "limit", 50, 1, 500)
	if err != nil || got != 50 {
		t.Fatalf("expected default 50, got %d err %v", got, err)
	}

	req = httptest.NewRequest("GET", "/?limit=abc", nil)
	if _, err = ParseQueryInt(req, "limit", 50, 1, 500); err == nil {
		t.Fatalf("expected error for non-numeric value")
	}

	req = httptest.NewRequest("GET", "/?limit=0", nil)
	if _, err = ParseQueryInt(req, "limit", 50, 1, 500); err == nil {
		t.Fatalf("expected error for out-of-range value")
	}
}

func TestParseMonthYear(t *testing.T) {
	req := httptest.NewRequest("GET", "/?month=2&year=2024", nil)
	month, year, err := ParseMonthYear(req, 8, 2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if month != 2 || year != 2024 {
		t.Fatalf("expected 2/2024 got %d/%d", month, year)
	}

	req = httptest.NewRequest("GET", "/", nil)
	month, year, err = ParseMonthYear(req, 8, 2026)
	if err != nil || month != 8 || year != 2026 {
		t.Fatalf("expected defaults 8/2026, got %d/%d err %v", month, year, err)
	}

	req = httptest.NewRequest("GET", "/?month=13", nil)
	if _, _, err = ParseMonthYear(req, 8, 2026); err == nil {
		t.Fatalf("expected error for month 13")
	}
}
