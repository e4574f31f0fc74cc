// Package redis provides Redis backed caches for the catalog service
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
	"github.com/izaldotcom/gerbang-backoffice/domain/repository"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/izaldotcom/gerbang-backoffice/pkg/redis"
)

// DefaultProfileTTL bounds how stale a cached profile may get
const DefaultProfileTTL = 10 * time.Minute

type profileCache struct {
	client redis.RedisClient
	ttl    time.Duration
	logger logger.LoggerInterface
}

// NewProfileCache creates a ProfileCache storing JSON under profile:<user id>.
// A zero ttl uses DefaultProfileTTL.
func NewProfileCache(client redis.RedisClient, ttl time.Duration, logger logger.LoggerInterface) repository.ProfileCache {
	if ttl <= 0 {
		ttl = DefaultProfileTTL
	}
	return &profileCache{client: client, ttl: ttl, logger: logger}
}

func profileKey(userID string) string {
	return "profile:" + userID
}

func (c *profileCache) Get(ctx context.Context, userID string) (*model.Profile, error) {
	raw, err := c.client.Get(ctx, profileKey(userID))
	if err != nil {
		if redis.IsNil(err) {
			return nil, domain.ErrCacheMiss
		}
		c.logger.ErrorContext(ctx, "Failed to read cached profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to read cached profile: %w", err)
	}

	var profile model.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		c.logger.WarnContext(ctx, "Dropping unreadable cached profile", "user_id", userID, "error", err)
		_ = c.client.Del(ctx, profileKey(userID))
		return nil, domain.ErrCacheMiss
	}
	return &profile, nil
}

func (c *profileCache) Set(ctx context.Context, profile *model.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := c.client.Set(ctx, profileKey(profile.ID), payload, c.ttl); err != nil {
		c.logger.ErrorContext(ctx, "Failed to cache profile", "user_id", profile.ID, "error", err)
		return fmt.Errorf("failed to cache profile: %w", err)
	}
	return nil
}

func (c *profileCache) Delete(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, profileKey(userID)); err != nil {
		return fmt.Errorf("failed to evict profile: %w", err)
	}
	return nil
}
