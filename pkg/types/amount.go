package types

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amount is a money value that tolerates sloppy client payloads: numbers and
// numeric strings parse normally, anything else (null, booleans, garbage
// strings) coerces to zero instead of failing the request. Companion clients
// have always relied on this, so a stricter parse would reject live traffic.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func AmountFromInt(v int64) Amount {
	return Amount{Decimal: decimal.NewFromInt(v)}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}

	switch v := raw.(type) {
	case float64:
		a.Decimal = decimal.NewFromFloat(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		a.Decimal = parsed
	default:
		a.Decimal = decimal.Zero
	}
	return nil
}

// MarshalJSON emits a bare JSON number rather than decimal's default quoted
// string, matching what existing clients parse.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

func (a Amount) Value() (driver.Value, error) {
	return a.Decimal.Value()
}

func (a *Amount) Scan(value any) error {
	return a.Decimal.Scan(value)
}

func (a Amount) Add(b Amount) Amount {
	return Amount{Decimal: a.Decimal.Add(b.Decimal)}
}

func (a Amount) Mul(b Amount) Amount {
	return Amount{Decimal: a.Decimal.Mul(b.Decimal)}
}

func (a Amount) Equal(b Amount) bool {
	return a.Decimal.Equal(b.Decimal)
}
