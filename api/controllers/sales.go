package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bengkelpos/backend/api/middleware"
	"github.com/bengkelpos/backend/api/responses"
	"github.com/bengkelpos/backend/api/validators"
	"github.com/bengkelpos/backend/internal/sales"
	pkgerrors "github.com/bengkelpos/backend/pkg/errors"
	"github.com/bengkelpos/backend/pkg/logger"
)

// SalesCreate records a sale and its stock movements.
func SalesCreate(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sale service unavailable"))
			return
		}

		var body sales.CreateSaleInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Create(r.Context(), body, middleware.UsernameFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessMessage(w, http.StatusCreated, resp, "Sale created successfully")
	}
}

// SalesList returns sales for the requested month, defaulting to the current
// one. Past months are immutable so they cache much longer.
func SalesList(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sale service unavailable"))
			return
		}

		now := time.Now()
		month, year, err := validators.ParseMonthYear(r, int(now.Month()), now.Year())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListMonth(r.Context(), year, month)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if year == now.Year() && month == int(now.Month()) {
			w.Header().Set("Cache-Control", "public, max-age=10, stale-while-revalidate=60")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=3600, stale-while-revalidate=86400")
		}
		responses.WriteSuccess(w, list)
	}
}

// SalesToday returns sales recorded since local midnight.
func SalesToday(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sale service unavailable"))
			return
		}

		list, err := svc.ListToday(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// SalesItems returns the line items of a sale.
func SalesItems(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sale service unavailable"))
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Invalid sale id"))
			return
		}

		items, err := svc.ItemsBySale(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}
