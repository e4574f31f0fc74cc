package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/izaldotcom/gerbang-backoffice/pkg/redis"
)

// RedisStore implements RefreshTokenStore on pkg/redis. Each token lives at
// refresh_token:<user>:<id>; refresh_tokens:<user> indexes a user's ids so
// DeleteAll never needs KEYS.
type RedisStore struct {
	client redis.RedisClient
}

// NewRedisStore creates a new Redis store using the pkg/redis client
func NewRedisStore(redisClient redis.RedisClient) *RedisStore {
	return &RedisStore{client: redisClient}
}

func tokenKey(userID, tokenID string) string {
	return fmt.Sprintf("refresh_token:%s:%s", userID, tokenID)
}

func indexKey(userID string) string {
	return "refresh_tokens:" + userID
}

// Save stores a refresh token until its expiry
func (s *RedisStore) Save(ctx context.Context, userID, tokenID, token string, expiry time.Time) error {
	ttl := time.Until(expiry)
	if ttl <= 0 {
		return fmt.Errorf("refresh token for user %s already expired", userID)
	}

	if err := s.client.Set(ctx, tokenKey(userID, tokenID), token, ttl); err != nil {
		return fmt.Errorf("failed to save refresh token to Redis: %w", err)
	}
	if err := s.client.SAdd(ctx, indexKey(userID), tokenID); err != nil {
		return fmt.Errorf("failed to index refresh token: %w", err)
	}
	if err := s.client.Expire(ctx, indexKey(userID), ttl); err != nil {
		return fmt.Errorf("failed to set refresh token index expiry: %w", err)
	}

	return nil
}

// Get retrieves a stored refresh token
func (s *RedisStore) Get(ctx context.Context, userID, tokenID string) (string, error) {
	token, err := s.client.Get(ctx, tokenKey(userID, tokenID))
	if err != nil {
		return "", fmt.Errorf("refresh token not found for user %s, token ID %s: %w", userID, tokenID, err)
	}
	return token, nil
}

// Delete removes a single refresh token
func (s *RedisStore) Delete(ctx context.Context, userID, tokenID string) error {
	if err := s.client.Del(ctx, tokenKey(userID, tokenID)); err != nil {
		return fmt.Errorf("failed to delete refresh token from Redis: %w", err)
	}
	if err := s.client.SRem(ctx, indexKey(userID), tokenID); err != nil {
		return fmt.Errorf("failed to unindex refresh token: %w", err)
	}
	return nil
}

// DeleteAll removes every refresh token issued to the user
func (s *RedisStore) DeleteAll(ctx context.Context, userID string) error {
	tokenIDs, err := s.client.SMembers(ctx, indexKey(userID))
	if err != nil {
		return fmt.Errorf("failed to find refresh tokens for user %s: %w", userID, err)
	}

	keys := make([]string, 0, len(tokenIDs)+1)
	for _, id := range tokenIDs {
		keys = append(keys, tokenKey(userID, id))
	}
	keys = append(keys, indexKey(userID))

	if err := s.client.Del(ctx, keys...); err != nil {
		return fmt.Errorf("failed to delete refresh tokens for user %s: %w", userID, err)
	}
	return nil
}
