package controllers

import (
	"net/http"
	"time"

	"github.com/bengkelpos/backend/api/responses"
	"github.com/bengkelpos/backend/api/validators"
	"github.com/bengkelpos/backend/internal/dashboard"
	pkgerrors "github.com/bengkelpos/backend/pkg/errors"
	"github.com/bengkelpos/backend/pkg/logger"
)

// DashboardLowStock lists products at or below a stock threshold.
func DashboardLowStock(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		threshold, err := validators.ParseQueryInt(r, "threshold", 3, 0, 1000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", 5, 1, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.LowStock(r.Context(), threshold, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

// DashboardMonthlyRevenue returns total revenue for a month, defaulting to
// the current one.
func DashboardMonthlyRevenue(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		now := time.Now()
		month, year, err := validators.ParseMonthYear(r, int(now.Month()), now.Year())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		revenue, err := svc.MonthlyRevenue(r.Context(), year, month)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, revenue)
	}
}

// DashboardWeeklyRevenue returns per-day revenue for the trailing seven days.
func DashboardWeeklyRevenue(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		series, err := svc.WeeklyRevenue(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, series)
	}
}
