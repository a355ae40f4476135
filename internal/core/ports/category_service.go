package ports

import (
	"context"

	"github.com/fintrack/finance-api/internal/core/domain"
)

// CreateCategoryInput carries the data for a new category. UserID comes from
// the authenticated identity, never from the request body.
type CreateCategoryInput struct {
	UserID int64
	Name   string
	Kind   domain.CategoryKind
}

// UpdateCategoryInput carries a full category update.
type UpdateCategoryInput struct {
	UserID     int64
	CategoryID int64
	Name       string
	Kind       domain.CategoryKind
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	List(ctx context.Context, userID int64) ([]domain.Category, error)
	ListByKind(ctx context.Context, userID int64, kind domain.CategoryKind) ([]domain.Category, error)
	Get(ctx context.Context, userID, id int64) (*domain.Category, error)
	Update(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, userID, id int64) error
}
