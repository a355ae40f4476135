package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// MonthlyTotal is the income/expense split for one month that has records.
type MonthlyTotal struct {
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// YearlyTotal is the income/expense split for one year that has records.
type YearlyTotal struct {
	Year    int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryTotal is the aggregate amount for one category within a period.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Breakdown groups per-category totals by kind, each list ordered by total
// descending.
type Breakdown struct {
	Income  []CategoryTotal
	Expense []CategoryTotal
}

// ReportRepository runs the aggregate queries behind the reporting endpoints.
// Every query is scoped to one user; sums default to zero, never null.
type ReportRepository interface {
	Years(ctx context.Context, userID int64) ([]int, error)
	Months(ctx context.Context, userID int64, year int) ([]int, error)
	MonthlyTotals(ctx context.Context, userID int64, year int) ([]MonthlyTotal, error)
	YearlyTotals(ctx context.Context, userID int64) ([]YearlyTotal, error)
	CategoryBreakdown(ctx context.Context, userID int64, year, month int) (*Breakdown, error)
}
