package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/fintrack/finance-api/internal/api/metrics"
	"github.com/fintrack/finance-api/internal/core/ports"
)

// ReportHandler handles the aggregate reporting routes under /record.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type monthlyTotalResponse struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type yearlyTotalResponse struct {
	Year    int             `json:"year"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type categoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type breakdownResponse struct {
	Income  []categoryTotalResponse `json:"income"`
	Expense []categoryTotalResponse `json:"expense"`
}

// Years handles GET /record/years.
//
// @Summary      Years that have records, newest first
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  int
// @Router       /record/years [get]
func (h *ReportHandler) Years(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	years, err := h.service.Years(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	metrics.ReportsGeneratedTotal.WithLabelValues("years").Inc()
	return c.JSON(http.StatusOK, years)
}

// Months handles GET /record/months/:year.
//
// @Summary      Months of a year that have records, ascending
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        year  path      int  true  "Year"
// @Success      200   {array}   int
// @Failure      400   {object}  map[string]string
// @Router       /record/months/{year} [get]
func (h *ReportHandler) Months(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	year, err := pathInt(c, "year")
	if err != nil {
		return err
	}

	months, err := h.service.Months(c.Request().Context(), userID, year)
	if err != nil {
		return err
	}

	metrics.ReportsGeneratedTotal.WithLabelValues("months").Inc()
	return c.JSON(http.StatusOK, months)
}

// MonthlyTotals handles GET /record/monthly-totals/:year. Only months with at
// least one record appear.
//
// @Summary      Per-month income/expense totals for a year
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        year  path      int  true  "Year"
// @Success      200   {array}   monthlyTotalResponse
// @Failure      400   {object}  map[string]string
// @Router       /record/monthly-totals/{year} [get]
func (h *ReportHandler) MonthlyTotals(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	year, err := pathInt(c, "year")
	if err != nil {
		return err
	}

	totals, err := h.service.MonthlyTotals(c.Request().Context(), userID, year)
	if err != nil {
		return err
	}

	out := make([]monthlyTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, monthlyTotalResponse{Month: t.Month, Income: t.Income, Expense: t.Expense})
	}

	metrics.ReportsGeneratedTotal.WithLabelValues("monthly_totals").Inc()
	return c.JSON(http.StatusOK, out)
}

// YearlyTotals handles GET /record/yearly-totals.
//
// @Summary      Per-year income/expense totals
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  yearlyTotalResponse
// @Router       /record/yearly-totals [get]
func (h *ReportHandler) YearlyTotals(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	totals, err := h.service.YearlyTotals(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]yearlyTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, yearlyTotalResponse{Year: t.Year, Income: t.Income, Expense: t.Expense})
	}

	metrics.ReportsGeneratedTotal.WithLabelValues("yearly_totals").Inc()
	return c.JSON(http.StatusOK, out)
}

// CategoryBreakdown handles GET /record/category-breakdown/:year/:month.
//
// @Summary      Per-category totals for a month, split by kind
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        year   path      int  true  "Year"
// @Param        month  path      int  true  "Month (1-12)"
// @Success      200    {object}  breakdownResponse
// @Failure      400    {object}  map[string]string
// @Router       /record/category-breakdown/{year}/{month} [get]
func (h *ReportHandler) CategoryBreakdown(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	year, err := pathInt(c, "year")
	if err != nil {
		return err
	}
	month, err := pathInt(c, "month")
	if err != nil {
		return err
	}

	breakdown, err := h.service.CategoryBreakdown(c.Request().Context(), userID, year, month)
	if err != nil {
		return err
	}

	resp := breakdownResponse{
		Income:  make([]categoryTotalResponse, 0, len(breakdown.Income)),
		Expense: make([]categoryTotalResponse, 0, len(breakdown.Expense)),
	}
	for _, t := range breakdown.Income {
		resp.Income = append(resp.Income, categoryTotalResponse{Category: t.Category, Total: t.Total})
	}
	for _, t := range breakdown.Expense {
		resp.Expense = append(resp.Expense, categoryTotalResponse{Category: t.Category, Total: t.Total})
	}

	metrics.ReportsGeneratedTotal.WithLabelValues("category_breakdown").Inc()
	return c.JSON(http.StatusOK, resp)
}

// pathInt parses a positive integer path parameter.
func pathInt(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}
