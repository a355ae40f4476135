package ports

import (
	"context"

	"github.com/fintrack/finance-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Delete removes the user; owned categories and records cascade.
	Delete(ctx context.Context, id int64) error
}
