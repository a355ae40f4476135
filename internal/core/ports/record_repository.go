package ports

import (
	"context"

	"github.com/fintrack/finance-api/internal/core/domain"
)

// RecordRepository persists records. Reads embed the record's category so the
// API can return it without a second query. All operations are scoped to the
// owning user.
type RecordRepository interface {
	Create(ctx context.Context, record *domain.Record) (*domain.Record, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.Record, error)
	FindByID(ctx context.Context, userID, id int64) (*domain.Record, error)
	Update(ctx context.Context, record *domain.Record) error
	Delete(ctx context.Context, userID, id int64) error
}
