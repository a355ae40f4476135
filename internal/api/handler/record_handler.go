package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/fintrack/finance-api/internal/api/metrics"
	"github.com/fintrack/finance-api/internal/core/domain"
	"github.com/fintrack/finance-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

// RecordHandler handles record CRUD routes.
type RecordHandler struct {
	service ports.RecordService
}

func NewRecordHandler(service ports.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

type recordRequest struct {
	Name       string          `json:"name" validate:"required,max=100"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date" validate:"required,datetime=2006-01-02"`
	Paid       bool            `json:"paid"`
	CategoryID int64           `json:"category_id" validate:"required,gt=0"`
}

type recordResponse struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Amount   decimal.Decimal  `json:"amount"`
	Date     string           `json:"date"`
	Paid     bool             `json:"paid"`
	Category categoryResponse `json:"category"`
}

func toRecordResponse(r *domain.Record) recordResponse {
	resp := recordResponse{
		ID:     r.ID,
		Name:   r.Name,
		Amount: r.Amount,
		Date:   r.Date.Format(dateLayout),
		Paid:   r.Paid,
	}
	if r.Category != nil {
		resp.Category = toCategoryResponse(r.Category)
	}
	return resp
}

// List handles GET /record.
//
// @Summary      List own records
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  recordResponse
// @Router       /record [get]
func (h *RecordHandler) List(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]recordResponse, 0, len(records))
	for i := range records {
		out = append(out, toRecordResponse(&records[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /record. The body carries a category_id rather than an
// embedded category; the referenced category must belong to the caller.
//
// @Summary      Create a record
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordRequest  true  "Record details"
// @Success      201   {object}  recordResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /record [post]
func (h *RecordHandler) Create(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	input, err := bindRecordInput(c)
	if err != nil {
		return err
	}

	record, err := h.service.Create(c.Request().Context(), ports.CreateRecordInput{
		UserID:     userID,
		Name:       input.Name,
		Amount:     input.Amount,
		Date:       input.date,
		Paid:       input.Paid,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toRecordResponse(record))
}

// Get handles GET /record/:id.
//
// @Summary      Get a record
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Record ID"
// @Success      200  {object}  recordResponse
// @Failure      404  {object}  map[string]string
// @Router       /record/{id} [get]
func (h *RecordHandler) Get(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	record, err := h.service.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRecordResponse(record))
}

// Update handles PUT /record/:id.
//
// @Summary      Update a record
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Record ID"
// @Param        body  body      recordRequest  true  "Record details"
// @Success      200   {object}  recordResponse
// @Failure      404   {object}  map[string]string
// @Router       /record/{id} [put]
func (h *RecordHandler) Update(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	input, err := bindRecordInput(c)
	if err != nil {
		return err
	}

	record, err := h.service.Update(c.Request().Context(), ports.UpdateRecordInput{
		UserID:     userID,
		RecordID:   id,
		Name:       input.Name,
		Amount:     input.Amount,
		Date:       input.date,
		Paid:       input.Paid,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRecordResponse(record))
}

// Delete handles DELETE /record/:id.
//
// @Summary      Delete a record
// @Tags         records
// @Security     BearerAuth
// @Param        id  path  int  true  "Record ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /record/{id} [delete]
func (h *RecordHandler) Delete(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type boundRecord struct {
	recordRequest
	date time.Time
}

func bindRecordInput(c echo.Context) (*boundRecord, error) {
	var req recordRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid date")
	}

	return &boundRecord{recordRequest: req, date: date}, nil
}
