package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fintrack/finance-api/internal/core/domain"
	"github.com/fintrack/finance-api/internal/core/ports"
)

type stubReportRepo struct {
	breakdownCalls int
}

func (r *stubReportRepo) Years(context.Context, int64) ([]int, error) {
	return []int{2025, 2024}, nil
}

func (r *stubReportRepo) Months(context.Context, int64, int) ([]int, error) {
	return []int{1, 2}, nil
}

func (r *stubReportRepo) MonthlyTotals(context.Context, int64, int) ([]ports.MonthlyTotal, error) {
	return []ports.MonthlyTotal{
		{Month: 1, Income: decimal.RequireFromString("150.00"), Expense: decimal.Zero},
	}, nil
}

func (r *stubReportRepo) YearlyTotals(context.Context, int64) ([]ports.YearlyTotal, error) {
	return []ports.YearlyTotal{}, nil
}

func (r *stubReportRepo) CategoryBreakdown(context.Context, int64, int, int) (*ports.Breakdown, error) {
	r.breakdownCalls++
	return &ports.Breakdown{}, nil
}

func TestReportService_CategoryBreakdown_MonthRange(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo, zerolog.Nop())

	for _, month := range []int{0, 13, -1} {
		if _, err := svc.CategoryBreakdown(context.Background(), 1, 2024, month); !errors.Is(err, domain.ErrInvalidPeriod) {
			t.Fatalf("month %d: expected ErrInvalidPeriod, got %v", month, err)
		}
	}
	if repo.breakdownCalls != 0 {
		t.Fatalf("repository should not be hit for invalid months")
	}

	if _, err := svc.CategoryBreakdown(context.Background(), 1, 2024, 12); err != nil {
		t.Fatalf("valid month returned error: %v", err)
	}
	if repo.breakdownCalls != 1 {
		t.Fatalf("expected one repository call, got %d", repo.breakdownCalls)
	}
}

func TestReportService_Passthrough(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, zerolog.Nop())

	years, err := svc.Years(context.Background(), 1)
	if err != nil {
		t.Fatalf("Years returned error: %v", err)
	}
	if len(years) != 2 || years[0] != 2025 {
		t.Fatalf("unexpected years: %v", years)
	}

	totals, err := svc.MonthlyTotals(context.Background(), 1, 2024)
	if err != nil {
		t.Fatalf("MonthlyTotals returned error: %v", err)
	}
	if len(totals) != 1 || !totals[0].Income.Equal(decimal.RequireFromString("150")) {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}
