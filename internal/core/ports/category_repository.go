package ports

import (
	"context"

	"github.com/fintrack/finance-api/internal/core/domain"
)

// CategoryRepository persists categories. Every read and write is scoped to
// the owning user; a category outside that scope behaves as absent.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.Category, error)
	FindByUserAndKind(ctx context.Context, userID int64, kind domain.CategoryKind) ([]domain.Category, error)
	FindByID(ctx context.Context, userID, id int64) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, userID, id int64) error
}
