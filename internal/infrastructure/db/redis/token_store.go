package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore is a Redis-backed allow-list of refresh-token IDs.
// Key format: refresh:<user_id>:<token_id>
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Save records a refresh-token ID; the entry expires with the token itself.
func (s *TokenStore) Save(ctx context.Context, userID int64, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(userID, tokenID), "1", ttl).Err()
}

// Exists reports whether the refresh-token ID is still redeemable.
func (s *TokenStore) Exists(ctx context.Context, userID int64, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(userID, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("token exists: %w", err)
	}
	return n > 0, nil
}

// RevokeAll removes every refresh-token ID the user holds.
func (s *TokenStore) RevokeAll(ctx context.Context, userID int64) error {
	iter := s.client.Scan(ctx, 0, fmt.Sprintf("refresh:%d:*", userID), 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan tokens: %w", err)
	}
	return nil
}

func (s *TokenStore) key(userID int64, tokenID string) string {
	return fmt.Sprintf("refresh:%d:%s", userID, tokenID)
}
