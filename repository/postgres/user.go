package postgres

import (
	"context"
	"fmt"

	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
	"github.com/izaldotcom/gerbang-backoffice/domain/repository"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleRepository implements the Role repository interface using PostgreSQL
type roleRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewRoleRepository creates a new instance of roleRepository
func NewRoleRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Role {
	return &roleRepository{db: db, logger: logger}
}

func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	r.logger.InfoContext(ctx, "Creating role", "name", role.Name)
	if err := conn(ctx, r.db).Create(role).Error; err != nil {
		err = translate(err)
		r.logger.ErrorContext(ctx, "Failed to create role", "name", role.Name, "error", err)
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

func (r *roleRepository) GetByID(ctx context.Context, id string) (*model.Role, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*model.Role, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *roleRepository) first(ctx context.Context, query string, arg string) (*model.Role, error) {
	var role model.Role
	if err := conn(ctx, r.db).Where(query, arg).First(&role).Error; err != nil {
		if err = translate(err); err == domain.ErrNotFound {
			r.logger.WarnContext(ctx, "Role not found", "lookup", arg)
			return nil, err
		}
		r.logger.ErrorContext(ctx, "Failed to get role", "lookup", arg, "error", err)
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return &role, nil
}

func (r *roleRepository) List(ctx context.Context) ([]*model.Role, error) {
	var roles []*model.Role
	if err := conn(ctx, r.db).Order("name ASC").Find(&roles).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list roles", "error", err)
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

// userRepository implements the User repository interface using PostgreSQL
type userRepository struct {
	// db is the GORM database instance for database operations
	db *gorm.DB
	// logger is used for logging operations within the repository
	logger logger.LoggerInterface
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB, logger logger.LoggerInterface) repository.User {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create adds a new user to the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	r.logger.InfoContext(ctx, "Creating user", "email", user.Email)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(user).Error; err != nil {
		err = translate(err)
		if isSentinel(err) {
			r.logger.WarnContext(ctx, "User rejected by constraint", "email", user.Email, "error", err)
			return err
		}
		r.logger.ErrorContext(ctx, "Failed to create user", "email", user.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	r.logger.InfoContext(ctx, "User created successfully", "id", user.ID, "email", user.Email)
	return nil
}

// GetByID retrieves a user by their unique identifier
func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.first(ctx, "id", id)
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.first(ctx, "email", email)
}

// GetByPhone retrieves a user by their phone number
func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	return r.first(ctx, "phone", phone)
}

func (r *userRepository) first(ctx context.Context, column, value string) (*model.User, error) {
	r.logger.InfoContext(ctx, "Getting user", "by", column)
	var user model.User
	if err := conn(ctx, r.db).Preload("Role").Where(column+" = ?", value).First(&user).Error; err != nil {
		if err = translate(err); err == domain.ErrNotFound {
			r.logger.WarnContext(ctx, "User not found", "by", column)
			return nil, err
		}
		r.logger.ErrorContext(ctx, "Failed to get user", "by", column, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	r.logger.InfoContext(ctx, "User retrieved", "id", user.ID, "by", column)
	return &user, nil
}

// List retrieves a paginated list of users from the database
func (r *userRepository) List(ctx context.Context, offset, limit int) ([]*model.User, int, error) {
	r.logger.InfoContext(ctx, "Listing users", "offset", offset, "limit", limit)
	var users []*model.User
	var total int64

	db := conn(ctx, r.db)
	if err := db.Model(&model.User{}).Count(&total).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to count users", "error", err)
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	if err := db.Preload("Role").Offset(offset).Limit(limit).Order("id ASC").Find(&users).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list users", "offset", offset, "limit", limit, "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	r.logger.InfoContext(ctx, "Users listed successfully", "count", len(users), "total", total)
	return users, int(total), nil
}
