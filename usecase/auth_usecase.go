// Package usecase contains the business logic of the catalog service
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
	"github.com/izaldotcom/gerbang-backoffice/domain/repository"
	"github.com/izaldotcom/gerbang-backoffice/pkg/jwt"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase defines the interface for authentication-related business operations
type AuthUseCase interface {
	// Login authenticates a user by email or phone and password
	// Returns the token pair, or domain.ErrInvalidCredentials
	Login(ctx context.Context, req catalog.LoginRequest) (*catalog.LoginResponse, error)
	// Register creates a user account with a bcrypt hashed password
	Register(ctx context.Context, req catalog.RegisterRequest) (*catalog.UserResponse, error)
	// Refresh rotates a refresh token into a new token pair
	Refresh(ctx context.Context, req catalog.RefreshTokenRequest) (*catalog.LoginResponse, error)
	// Profile returns the authenticated caller's profile, served from cache when possible
	Profile(ctx context.Context) (*catalog.UserResponse, error)
	// Logout revokes every refresh token of the authenticated caller
	Logout(ctx context.Context) error
	// SeedRoles makes sure the Admin and Customer roles exist
	SeedRoles(ctx context.Context) error
}

// authUseCase implements the AuthUseCase interface
type authUseCase struct {
	// userRepo is the repository interface for user database operations
	userRepo repository.User
	// roleRepo resolves role ids and names
	roleRepo repository.Role
	// profiles caches the profile read model
	profiles repository.ProfileCache
	// jwtClient is the JWT client for token generation and validation
	jwtClient jwt.JWTClient
	// logger is used for logging operations within the usecase
	logger logger.LoggerInterface
}

// NewAuthUseCase creates a new instance of authUseCase
func NewAuthUseCase(userRepo repository.User, roleRepo repository.Role, profiles repository.ProfileCache, jwtClient jwt.JWTClient, appLogger logger.LoggerInterface) AuthUseCase {
	return &authUseCase{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		profiles:  profiles,
		jwtClient: jwtClient,
		logger:    appLogger,
	}
}

// Login authenticates a user with email or phone and password
func (uc *authUseCase) Login(ctx context.Context, req catalog.LoginRequest) (*catalog.LoginResponse, error) {
	login := strings.TrimSpace(req.Login())
	uc.logger.InfoContext(ctx, "Login attempt", "login", login)

	var (
		user *model.User
		err  error
	)
	if strings.Contains(login, "@") {
		user, err = uc.userRepo.GetByEmail(ctx, strings.ToLower(login))
	} else {
		user, err = uc.userRepo.GetByPhone(ctx, login)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "User not found", "login", login)
			return nil, domain.ErrInvalidCredentials
		}
		uc.logger.ErrorContext(ctx, "Error retrieving user", "login", login, "error", err)
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	// Verify password before revealing the account state
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		uc.logger.WarnContext(ctx, "Invalid password", "userID", user.ID)
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive() {
		uc.logger.WarnContext(ctx, "User is not active", "userID", user.ID)
		return nil, domain.ErrUserInactive
	}

	pair, err := uc.jwtClient.GenerateTokenPair(ctx, user.ID, user.Role.Name)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error generating tokens", "userID", user.ID, "error", err)
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	uc.logger.InfoContext(ctx, "Login successful", "userID", user.ID, "role", user.Role.Name)
	return uc.loginResponse(pair), nil
}

func (uc *authUseCase) loginResponse(pair jwt.TokenPair) *catalog.LoginResponse {
	return &catalog.LoginResponse{
		AccessToken:        pair.AccessToken,
		RefreshToken:       pair.RefreshToken,
		AccessTokenExpire:  int64(uc.jwtClient.AccessTokenExpiry().Seconds()),
		RefreshTokenExpire: int64(uc.jwtClient.RefreshTokenExpiry().Seconds()),
	}
}

// Register creates a new user. RoleID accepts a role id or a role name.
func (uc *authUseCase) Register(ctx context.Context, req catalog.RegisterRequest) (*catalog.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	uc.logger.InfoContext(ctx, "Register attempt", "email", email)

	role, err := uc.resolveRole(ctx, req.RoleID)
	if err != nil {
		return nil, err
	}

	// Check duplicates up front for a precise message; the unique
	// indexes still catch concurrent registrations
	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		uc.logger.WarnContext(ctx, "Email already registered", "email", email)
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if _, err := uc.userRepo.GetByPhone(ctx, req.Phone); err == nil {
		uc.logger.WarnContext(ctx, "Phone already registered", "email", email)
		return nil, domain.ErrPhoneAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("error checking phone: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error hashing password", "error", err)
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	status := req.Status
	if status == "" {
		status = model.UserStatusActive
	}

	user := &model.User{
		RoleID:   role.ID,
		Role:     *role,
		Name:     req.Name,
		Email:    email,
		Phone:    req.Phone,
		Status:   status,
		Password: string(hash),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.ErrEmailAlreadyExists
		}
		uc.logger.ErrorContext(ctx, "Error creating user", "email", email, "error", err)
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	uc.logger.InfoContext(ctx, "User registered", "userID", user.ID, "role", role.Name)
	return profileToResponse(user.Profile()), nil
}

func (uc *authUseCase) resolveRole(ctx context.Context, ref string) (*model.Role, error) {
	role, err := uc.roleRepo.GetByID(ctx, ref)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("error retrieving role: %w", err)
	}

	role, err = uc.roleRepo.GetByName(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Unknown role", "role", ref)
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("error retrieving role: %w", err)
	}
	return role, nil
}

// Refresh validates the refresh token, checks the user is still active and
// rotates the pair. In stateful mode the old refresh token stops working.
func (uc *authUseCase) Refresh(ctx context.Context, req catalog.RefreshTokenRequest) (*catalog.LoginResponse, error) {
	uc.logger.InfoContext(ctx, "Refresh token attempt")

	claims, err := uc.jwtClient.ValidateRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		uc.logger.WarnContext(ctx, "Invalid refresh token", "error", err)
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Refresh for unknown user", "userID", claims.UserID)
			return nil, domain.ErrInvalidRefreshToken
		}
		uc.logger.ErrorContext(ctx, "Error retrieving user by ID", "userID", claims.UserID, "error", err)
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if !user.IsActive() {
		uc.logger.WarnContext(ctx, "User is not active", "userID", user.ID)
		return nil, domain.ErrUserInactive
	}

	pair, err := uc.jwtClient.Refresh(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrRefreshTokenRevoked) || errors.Is(err, jwt.ErrInvalidToken) || errors.Is(err, jwt.ErrInvalidTokenType) {
			uc.logger.WarnContext(ctx, "Refresh token rejected", "userID", user.ID, "error", err)
			return nil, domain.ErrInvalidRefreshToken
		}
		uc.logger.ErrorContext(ctx, "Error rotating tokens", "userID", user.ID, "error", err)
		return nil, fmt.Errorf("error rotating tokens: %w", err)
	}

	uc.logger.InfoContext(ctx, "Token refresh successful", "userID", user.ID)
	return uc.loginResponse(pair), nil
}

// Profile retrieves the authenticated user's profile information
func (uc *authUseCase) Profile(ctx context.Context) (*catalog.UserResponse, error) {
	principal, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		uc.logger.WarnContext(ctx, "User ID not found in context")
		return nil, domain.ErrUnauthenticated
	}
	uc.logger.InfoContext(ctx, "Profile request", "userID", principal.UserID)

	cached, err := uc.profiles.Get(ctx, principal.UserID)
	if err == nil {
		return profileToResponse(cached), nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		uc.logger.WarnContext(ctx, "Profile cache unavailable", "userID", principal.UserID, "error", err)
	}

	user, err := uc.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "User not found", "userID", principal.UserID)
			return nil, domain.ErrUserNotFound
		}
		uc.logger.ErrorContext(ctx, "Error retrieving user", "userID", principal.UserID, "error", err)
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	profile := user.Profile()
	if err := uc.profiles.Set(ctx, profile); err != nil {
		uc.logger.WarnContext(ctx, "Failed to cache profile", "userID", user.ID, "error", err)
	}

	uc.logger.InfoContext(ctx, "Profile retrieved successfully", "userID", user.ID)
	return profileToResponse(profile), nil
}

// Logout revokes the caller's refresh tokens and evicts the cached profile.
// Stateless tokens cannot be revoked and simply run out.
func (uc *authUseCase) Logout(ctx context.Context) error {
	principal, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		uc.logger.WarnContext(ctx, "User ID not found in context")
		return domain.ErrUnauthenticated
	}

	if err := uc.jwtClient.RevokeAllRefreshTokens(ctx, principal.UserID); err != nil {
		if !errors.Is(err, jwt.ErrRevokeNotSupported) {
			uc.logger.ErrorContext(ctx, "Error revoking refresh tokens", "userID", principal.UserID, "error", err)
			return fmt.Errorf("error revoking refresh tokens: %w", err)
		}
		uc.logger.DebugContext(ctx, "Refresh tokens are stateless, nothing to revoke", "userID", principal.UserID)
	}

	if err := uc.profiles.Delete(ctx, principal.UserID); err != nil {
		uc.logger.WarnContext(ctx, "Failed to evict cached profile", "userID", principal.UserID, "error", err)
	}

	uc.logger.InfoContext(ctx, "Refresh tokens revoked", "userID", principal.UserID)
	return nil
}

// SeedRoles creates the fixed role set on an empty database
func (uc *authUseCase) SeedRoles(ctx context.Context) error {
	for _, name := range []string{model.RoleAdmin, model.RoleCustomer} {
		_, err := uc.roleRepo.GetByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("error checking role %s: %w", name, err)
		}
		if err := uc.roleRepo.Create(ctx, &model.Role{Name: name}); err != nil {
			return fmt.Errorf("error creating role %s: %w", name, err)
		}
		uc.logger.InfoContext(ctx, "Role seeded", "role", name)
	}
	return nil
}
