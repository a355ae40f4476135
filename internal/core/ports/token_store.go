package ports

import (
	"context"
	"time"
)

// TokenStore tracks the refresh-token IDs a user may redeem. A refresh token
// is honored only while its ID is present; dropping the ID revokes it.
type TokenStore interface {
	Save(ctx context.Context, userID int64, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID int64, tokenID string) (bool, error)
	RevokeAll(ctx context.Context, userID int64) error
}
