package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxAmount bounds record amounts to 10 significant digits with 2 fractional
// digits (99999999.99).
var MaxAmount = decimal.New(1, 8)

// Record is a dated monetary entry linked to a category. Amount is a
// fixed-point decimal; it is stored and aggregated as integer cents and never
// passes through binary floating point.
type Record struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"-"`
	Paid       bool            `json:"paid"`
	CategoryID int64           `json:"-"`
	UserID     int64           `json:"-"`

	// Category is populated on reads so responses can embed the full label.
	Category *Category `json:"category,omitempty"`
}

// ValidAmount reports whether d is positive, has at most 2 fractional digits
// and fits the storage precision.
func ValidAmount(d decimal.Decimal) bool {
	if !d.IsPositive() {
		return false
	}
	if !d.Equal(d.Round(2)) {
		return false
	}
	return d.LessThan(MaxAmount)
}
