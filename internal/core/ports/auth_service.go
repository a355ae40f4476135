package ports

import (
	"context"

	"github.com/fintrack/finance-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// TokenPair is returned by Login: a short-lived access token and a
// longer-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService defines account and session use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Profile(ctx context.Context, userID int64) (*domain.User, error)
	Logout(ctx context.Context, userID int64) error
	DeleteAccount(ctx context.Context, userID int64) error
}
