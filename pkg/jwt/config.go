package jwt

import (
	"time"
)

// TokenConfig holds the configuration for JWT tokens
type TokenConfig struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	Stateful           bool
}

// NewWithConfig creates a JWT client from a config struct. A nil store
// keeps the client stateless even when Stateful is set.
func NewWithConfig(config TokenConfig, store RefreshTokenStore) (JWTClient, error) {
	return newClient(store,
		WithAccessTokenSecret(config.AccessTokenSecret),
		WithRefreshTokenSecret(config.RefreshTokenSecret),
		WithAccessTokenExpiry(config.AccessTokenExpiry),
		WithRefreshTokenExpiry(config.RefreshTokenExpiry),
		WithStateful(config.Stateful),
	)
}
