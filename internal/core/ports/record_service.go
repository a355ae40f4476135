package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/finance-api/internal/core/domain"
)

// CreateRecordInput carries the data for a new record. UserID comes from the
// authenticated identity; CategoryID must reference a category owned by it.
type CreateRecordInput struct {
	UserID     int64
	Name       string
	Amount     decimal.Decimal
	Date       time.Time
	Paid       bool
	CategoryID int64
}

// UpdateRecordInput carries a full record update.
type UpdateRecordInput struct {
	UserID     int64
	RecordID   int64
	Name       string
	Amount     decimal.Decimal
	Date       time.Time
	Paid       bool
	CategoryID int64
}

// RecordService defines use-case operations for records.
type RecordService interface {
	Create(ctx context.Context, input CreateRecordInput) (*domain.Record, error)
	List(ctx context.Context, userID int64) ([]domain.Record, error)
	Get(ctx context.Context, userID, id int64) (*domain.Record, error)
	Update(ctx context.Context, input UpdateRecordInput) (*domain.Record, error)
	Delete(ctx context.Context, userID, id int64) error
}
