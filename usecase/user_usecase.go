package usecase

import (
	"context"
	"fmt"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/domain/repository"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// DefaultPageSize is used when a list request carries no limit
const DefaultPageSize = 50

// UserUseCase lists dashboard accounts for administrators
type UserUseCase interface {
	List(ctx context.Context, offset, limit int) ([]*catalog.UserResponse, int, error)
}

type userUseCase struct {
	userRepo repository.User
	logger   logger.LoggerInterface
}

// NewUserUseCase creates a new instance of userUseCase
func NewUserUseCase(userRepo repository.User, appLogger logger.LoggerInterface) UserUseCase {
	return &userUseCase{userRepo: userRepo, logger: appLogger}
}

func (uc *userUseCase) List(ctx context.Context, offset, limit int) ([]*catalog.UserResponse, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = DefaultPageSize
	}

	users, total, err := uc.userRepo.List(ctx, offset, limit)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error listing users", "error", err)
		return nil, 0, fmt.Errorf("error listing users: %w", err)
	}

	out := make([]*catalog.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, profileToResponse(user.Profile()))
	}
	return out, total, nil
}
