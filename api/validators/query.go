package validators

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/bengkelpos/backend/pkg/errors"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("query parameter %s must be numeric", key))
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("query parameter %s out of range", key))
	}
	return value, nil
}

// ParseMonthYear reads optional month/year query parameters, defaulting to the
// provided current values.
func ParseMonthYear(r *http.Request, currentMonth, currentYear int) (int, int, error) {
	month, err := ParseQueryInt(r, "month", currentMonth, 1, 12)
	if err != nil {
		return 0, 0, err
	}
	year, err := ParseQueryInt(r, "year", currentYear, 2000, 2100)
	if err != nil {
		return 0, 0, err
	}
	return month, year, nil
}
