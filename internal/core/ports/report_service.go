package ports

import "context"

// ReportService defines the aggregate views derived from a user's records.
type ReportService interface {
	Years(ctx context.Context, userID int64) ([]int, error)
	Months(ctx context.Context, userID int64, year int) ([]int, error)
	MonthlyTotals(ctx context.Context, userID int64, year int) ([]MonthlyTotal, error)
	YearlyTotals(ctx context.Context, userID int64) ([]YearlyTotal, error)
	CategoryBreakdown(ctx context.Context, userID int64, year, month int) (*Breakdown, error)
}
