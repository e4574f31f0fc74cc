// Package repository defines the interfaces for data access layer
package repository

import (
	"context"

	"github.com/izaldotcom/gerbang-backoffice/domain/model"
)

// Role interface defines the contract for role lookups
type Role interface {
	// Create adds a role, used when seeding the fixed role set
	Create(ctx context.Context, role *model.Role) error
	// GetByID retrieves a role by its identifier
	GetByID(ctx context.Context, id string) (*model.Role, error)
	// GetByName retrieves a role by its name
	GetByName(ctx context.Context, name string) (*model.Role, error)
	// List retrieves every role ordered by name
	List(ctx context.Context) ([]*model.Role, error)
}

// User interface defines the contract for user-related database operations
type User interface {
	// Create adds a new user to the database
	// It takes a context for request-scoped values and a pointer to a User model
	// Returns domain.ErrDuplicateKey when the email or phone is taken
	Create(ctx context.Context, user *model.User) error
	// GetByID retrieves a user by their unique identifier with the role preloaded
	GetByID(ctx context.Context, id string) (*model.User, error)
	// GetByEmail retrieves a user by their email address with the role preloaded
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// GetByPhone retrieves a user by their phone number with the role preloaded
	GetByPhone(ctx context.Context, phone string) (*model.User, error)
	// List retrieves a paginated list of users and the total count
	List(ctx context.Context, offset, limit int) ([]*model.User, int, error)
}

// ProfileCache keeps the profile read model close to the auth middleware
type ProfileCache interface {
	// Get returns domain.ErrCacheMiss when nothing is cached for userID
	Get(ctx context.Context, userID string) (*model.Profile, error)
	Set(ctx context.Context, profile *model.Profile) error
	Delete(ctx context.Context, userID string) error
}
