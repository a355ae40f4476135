package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-api/internal/core/domain"
	"github.com/fintrack/finance-api/internal/core/ports"
)

// ReportService derives aggregate views over a single user's records. The
// heavy lifting happens in SQL; this layer validates parameters.
type ReportService struct {
	repo   ports.ReportRepository
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, logger: logger}
}

// Years lists the distinct years with at least one record, newest first.
func (s *ReportService) Years(ctx context.Context, userID int64) ([]int, error) {
	years, err := s.repo.Years(ctx, userID)
	if err != nil {
		return nil, err
	}
	return years, nil
}

// Months lists the distinct months of year with at least one record, ascending.
func (s *ReportService) Months(ctx context.Context, userID int64, year int) ([]int, error) {
	months, err := s.repo.Months(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	return months, nil
}

// MonthlyTotals returns the income/expense split for every month of year that
// has records. Months with no records are omitted, not zero-filled.
func (s *ReportService) MonthlyTotals(ctx context.Context, userID int64, year int) ([]ports.MonthlyTotal, error) {
	totals, err := s.repo.MonthlyTotals(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// YearlyTotals returns the income/expense split per year, ascending.
func (s *ReportService) YearlyTotals(ctx context.Context, userID int64) ([]ports.YearlyTotal, error) {
	totals, err := s.repo.YearlyTotals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// CategoryBreakdown returns per-category totals for one month, split by kind
// and ordered by total descending.
func (s *ReportService) CategoryBreakdown(ctx context.Context, userID int64, year, month int) (*ports.Breakdown, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidPeriod
	}

	breakdown, err := s.repo.CategoryBreakdown(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	return breakdown, nil
}
