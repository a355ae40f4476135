package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fintrack/finance-api/internal/core/ports"
)

// ReportRepository runs the aggregate queries behind the reporting endpoints.
// All sums are computed on integer cents inside SQLite; results are converted
// to decimals only while building the result structs. A month or year with no
// rows simply does not appear, and the missing side of an income/expense split
// sums to zero via CASE.
type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Years returns the distinct years with records, newest first.
func (r *ReportRepository) Years(ctx context.Context, userID int64) ([]int, error) {
	return r.queryInts(ctx, `
		SELECT DISTINCT CAST(strftime('%Y', date) AS INTEGER) AS year
		FROM records
		WHERE user_id = ?
		ORDER BY year DESC`,
		userID,
	)
}

// Months returns the distinct months of year with records, ascending.
func (r *ReportRepository) Months(ctx context.Context, userID int64, year int) ([]int, error) {
	return r.queryInts(ctx, `
		SELECT DISTINCT CAST(strftime('%m', date) AS INTEGER) AS month
		FROM records
		WHERE user_id = ? AND CAST(strftime('%Y', date) AS INTEGER) = ?
		ORDER BY month`,
		userID, year,
	)
}

// MonthlyTotals returns the per-month income/expense split for year. Months
// without records are omitted.
func (r *ReportRepository) MonthlyTotals(ctx context.Context, userID int64, year int) ([]ports.MonthlyTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT CAST(strftime('%m', r.date) AS INTEGER) AS month,
		       COALESCE(SUM(CASE WHEN c.kind = 1 THEN r.amount_cents ELSE 0 END), 0) AS income_cents,
		       COALESCE(SUM(CASE WHEN c.kind = 0 THEN r.amount_cents ELSE 0 END), 0) AS expense_cents
		FROM records r
		JOIN categories c ON c.id = r.category_id
		WHERE r.user_id = ? AND CAST(strftime('%Y', r.date) AS INTEGER) = ?
		GROUP BY month
		ORDER BY month`,
		userID, year,
	)
	if err != nil {
		return nil, fmt.Errorf("query monthly totals: %w", err)
	}
	defer rows.Close()

	totals := []ports.MonthlyTotal{}
	for rows.Next() {
		var month int
		var income, expense int64
		if err := rows.Scan(&month, &income, &expense); err != nil {
			return nil, fmt.Errorf("scan monthly total: %w", err)
		}
		totals = append(totals, ports.MonthlyTotal{
			Month:   month,
			Income:  amountFromCents(income),
			Expense: amountFromCents(expense),
		})
	}
	return totals, rows.Err()
}

// YearlyTotals returns the per-year income/expense split, ascending by year.
func (r *ReportRepository) YearlyTotals(ctx context.Context, userID int64) ([]ports.YearlyTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT CAST(strftime('%Y', r.date) AS INTEGER) AS year,
		       COALESCE(SUM(CASE WHEN c.kind = 1 THEN r.amount_cents ELSE 0 END), 0) AS income_cents,
		       COALESCE(SUM(CASE WHEN c.kind = 0 THEN r.amount_cents ELSE 0 END), 0) AS expense_cents
		FROM records r
		JOIN categories c ON c.id = r.category_id
		WHERE r.user_id = ?
		GROUP BY year
		ORDER BY year`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query yearly totals: %w", err)
	}
	defer rows.Close()

	totals := []ports.YearlyTotal{}
	for rows.Next() {
		var year int
		var income, expense int64
		if err := rows.Scan(&year, &income, &expense); err != nil {
			return nil, fmt.Errorf("scan yearly total: %w", err)
		}
		totals = append(totals, ports.YearlyTotal{
			Year:    year,
			Income:  amountFromCents(income),
			Expense: amountFromCents(expense),
		})
	}
	return totals, rows.Err()
}

// CategoryBreakdown returns per-category totals for one month, split by kind
// and ordered by total descending within each list.
func (r *ReportRepository) CategoryBreakdown(ctx context.Context, userID int64, year, month int) (*ports.Breakdown, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.name, c.kind, SUM(r.amount_cents) AS total_cents
		FROM records r
		JOIN categories c ON c.id = r.category_id
		WHERE r.user_id = ?
		  AND CAST(strftime('%Y', r.date) AS INTEGER) = ?
		  AND CAST(strftime('%m', r.date) AS INTEGER) = ?
		GROUP BY c.name, c.kind
		ORDER BY total_cents DESC`,
		userID, year, month,
	)
	if err != nil {
		return nil, fmt.Errorf("query category breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := &ports.Breakdown{
		Income:  []ports.CategoryTotal{},
		Expense: []ports.CategoryTotal{},
	}
	for rows.Next() {
		var name string
		var kind int
		var cents int64
		if err := rows.Scan(&name, &kind, &cents); err != nil {
			return nil, fmt.Errorf("scan category total: %w", err)
		}

		entry := ports.CategoryTotal{Category: name, Total: amountFromCents(cents)}
		if kind == 1 {
			breakdown.Income = append(breakdown.Income, entry)
		} else {
			breakdown.Expense = append(breakdown.Expense, entry)
		}
	}
	return breakdown, rows.Err()
}

func (r *ReportRepository) queryInts(ctx context.Context, statement string, args ...any) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, fmt.Errorf("query report: %w", err)
	}
	defer rows.Close()

	values := []int{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan report value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
