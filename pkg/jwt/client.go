package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	DefaultIssuer = "catalog-service"
)

var (
	ErrAccessTokenSecretRequired  = errors.New("access token secret is required")
	ErrRefreshTokenSecretRequired = errors.New("refresh token secret is required")
	ErrInvalidTokenType           = errors.New("invalid token type")
	ErrInvalidToken               = errors.New("invalid token")
	ErrRefreshTokenRevoked        = errors.New("refresh token not found in store")
	ErrRevokeNotSupported         = errors.New("revoke not supported in stateless mode")
)

// TokenClaims represents the claims in a JWT token
type TokenClaims struct {
	UserID    string `json:"user_id"`
	RoleName  string `json:"role_name"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is what login and refresh hand back to the caller
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenStore persists issued refresh tokens in stateful mode
type RefreshTokenStore interface {
	Save(ctx context.Context, userID, tokenID, token string, expiry time.Time) error
	Get(ctx context.Context, userID, tokenID string) (string, error)
	Delete(ctx context.Context, userID, tokenID string) error
	DeleteAll(ctx context.Context, userID string) error
}

// JWTClient defines the interface for JWT token operations
type JWTClient interface {
	GenerateTokenPair(ctx context.Context, userID, roleName string) (TokenPair, error)
	GenerateAccessToken(userID, roleName string) (string, error)
	ValidateAccessToken(tokenString string) (*TokenClaims, error)
	ValidateRefreshToken(ctx context.Context, tokenString string) (*TokenClaims, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	RevokeAllRefreshTokens(ctx context.Context, userID string) error
	IsStateful() bool
	AccessTokenExpiry() time.Duration
	RefreshTokenExpiry() time.Duration
}

// Client signs HS256 tokens and optionally tracks refresh tokens in a store
type Client struct {
	config TokenConfig
	store  RefreshTokenStore
	now    func() time.Time
}

// New creates a stateless JWT client with the provided options
func New(opts ...Option) (JWTClient, error) {
	return newClient(nil, opts...)
}

// NewStateful creates a JWT client whose refresh tokens must exist in store
func NewStateful(store RefreshTokenStore, opts ...Option) (JWTClient, error) {
	return newClient(store, append(opts, WithStateful(true))...)
}

func newClient(store RefreshTokenStore, opts ...Option) (*Client, error) {
	config := TokenConfig{
		AccessTokenExpiry:  24 * time.Hour,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}

	for _, opt := range opts {
		opt(&config)
	}

	if config.AccessTokenSecret == "" {
		return nil, ErrAccessTokenSecretRequired
	}
	if config.RefreshTokenSecret == "" {
		return nil, ErrRefreshTokenSecretRequired
	}

	return &Client{
		config: config,
		store:  store,
		now:    time.Now,
	}, nil
}

func (c *Client) stateful() bool {
	return c.config.Stateful && c.store != nil
}

func (c *Client) sign(userID, roleName, tokenType, tokenID string, expiry time.Duration, secret string) (string, time.Time, error) {
	issuedAt := c.now()
	expiresAt := issuedAt.Add(expiry)

	claims := TokenClaims{
		UserID:    userID,
		RoleName:  roleName,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    DefaultIssuer,
			ID:        tokenID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return signed, expiresAt, err
}

// GenerateAccessToken signs an access token carrying the user's role
func (c *Client) GenerateAccessToken(userID, roleName string) (string, error) {
	token, _, err := c.sign(userID, roleName, TokenTypeAccess, ulid.Make().String(), c.config.AccessTokenExpiry, c.config.AccessTokenSecret)
	return token, err
}

func (c *Client) generateRefreshToken(ctx context.Context, userID, roleName string) (string, error) {
	tokenID := ulid.Make().String()

	token, expiresAt, err := c.sign(userID, roleName, TokenTypeRefresh, tokenID, c.config.RefreshTokenExpiry, c.config.RefreshTokenSecret)
	if err != nil {
		return "", err
	}

	if c.stateful() {
		if err := c.store.Save(ctx, userID, tokenID, token, expiresAt); err != nil {
			return "", err
		}
	}

	return token, nil
}

// GenerateTokenPair issues a fresh access/refresh pair
func (c *Client) GenerateTokenPair(ctx context.Context, userID, roleName string) (TokenPair, error) {
	access, err := c.GenerateAccessToken(userID, roleName)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := c.generateRefreshToken(ctx, userID, roleName)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (c *Client) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	return c.validateToken(tokenString, c.config.AccessTokenSecret, TokenTypeAccess)
}

// ValidateRefreshToken checks signature and type, and in stateful mode that the token is still stored
func (c *Client) ValidateRefreshToken(ctx context.Context, tokenString string) (*TokenClaims, error) {
	claims, err := c.validateToken(tokenString, c.config.RefreshTokenSecret, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	if c.stateful() {
		stored, err := c.store.Get(ctx, claims.UserID, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRefreshTokenRevoked, err)
		}
		if stored != tokenString {
			return nil, ErrRefreshTokenRevoked
		}
	}

	return claims, nil
}

func (c *Client) validateToken(tokenString, secret, expectedType string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(DefaultIssuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != expectedType {
		return nil, ErrInvalidTokenType
	}

	return claims, nil
}

// Refresh exchanges a refresh token for a new pair. In stateful mode the
// presented token is removed so it cannot be replayed.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := c.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return TokenPair{}, err
	}

	if c.stateful() {
		if err := c.store.Delete(ctx, claims.UserID, claims.ID); err != nil {
			return TokenPair{}, fmt.Errorf("failed to invalidate used refresh token: %w", err)
		}
	}

	return c.GenerateTokenPair(ctx, claims.UserID, claims.RoleName)
}

// RevokeAllRefreshTokens logs the user out everywhere
func (c *Client) RevokeAllRefreshTokens(ctx context.Context, userID string) error {
	if !c.stateful() {
		return ErrRevokeNotSupported
	}
	return c.store.DeleteAll(ctx, userID)
}

func (c *Client) IsStateful() bool {
	return c.stateful()
}

func (c *Client) AccessTokenExpiry() time.Duration {
	return c.config.AccessTokenExpiry
}

func (c *Client) RefreshTokenExpiry() time.Duration {
	return c.config.RefreshTokenExpiry
}
