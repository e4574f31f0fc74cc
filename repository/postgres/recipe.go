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

type recipeItemRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewRecipeItemRepository creates a new instance of recipeItemRepository
func NewRecipeItemRepository(db *gorm.DB, logger logger.LoggerInterface) repository.RecipeItem {
	return &recipeItemRepository{db: db, logger: logger}
}

func (r *recipeItemRepository) List(ctx context.Context) ([]*model.RecipeItem, error) {
	r.logger.InfoContext(ctx, "Listing recipe items")
	var items []*model.RecipeItem
	if err := conn(ctx, r.db).Order("product_id ASC, created_at ASC, id ASC").Find(&items).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list recipe items", "error", err)
		return nil, fmt.Errorf("failed to list recipe items: %w", err)
	}
	r.logger.InfoContext(ctx, "Recipe items listed successfully", "count", len(items))
	return items, nil
}

func (r *recipeItemRepository) ListByProduct(ctx context.Context, productID string) ([]*model.RecipeItem, error) {
	var items []*model.RecipeItem
	if err := conn(ctx, r.db).Where("product_id = ?", productID).Order("created_at ASC, id ASC").Find(&items).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list recipe items of product", "product_id", productID, "error", err)
		return nil, fmt.Errorf("failed to list recipe items: %w", err)
	}
	return items, nil
}

func (r *recipeItemRepository) GetByID(ctx context.Context, id string) (*model.RecipeItem, error) {
	var item model.RecipeItem
	if err := conn(ctx, r.db).Where("id = ?", id).First(&item).Error; err != nil {
		if err = translate(err); err == domain.ErrNotFound {
			r.logger.WarnContext(ctx, "Recipe item not found", "id", id)
			return nil, err
		}
		r.logger.ErrorContext(ctx, "Failed to get recipe item", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get recipe item: %w", err)
	}
	return &item, nil
}

func (r *recipeItemRepository) GetLine(ctx context.Context, productID, supplierProductID string) (*model.RecipeItem, error) {
	var item model.RecipeItem
	err := conn(ctx, r.db).
		Where("product_id = ? AND supplier_product_id = ?", productID, supplierProductID).
		First(&item).Error
	if err != nil {
		if err = translate(err); err == domain.ErrNotFound {
			return nil, err
		}
		r.logger.ErrorContext(ctx, "Failed to get recipe line", "product_id", productID, "error", err)
		return nil, fmt.Errorf("failed to get recipe line: %w", err)
	}
	return &item, nil
}

func (r *recipeItemRepository) CreateBatch(ctx context.Context, items []*model.RecipeItem) error {
	if len(items) == 0 {
		return nil
	}
	r.logger.InfoContext(ctx, "Creating recipe items", "product_id", items[0].ProductID, "count", len(items))
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(&items).Error; err != nil {
		err = translate(err)
		if isSentinel(err) {
			r.logger.WarnContext(ctx, "Recipe items rejected by constraint", "error", err)
			return err
		}
		r.logger.ErrorContext(ctx, "Failed to create recipe items", "error", err)
		return fmt.Errorf("failed to create recipe items: %w", err)
	}
	return nil
}

func (r *recipeItemRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	r.logger.InfoContext(ctx, "Updating recipe item quantity", "id", id, "quantity", quantity)
	result := conn(ctx, r.db).Model(&model.RecipeItem{}).Where("id = ?", id).Update("quantity", quantity)
	if err := result.Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update recipe item", "id", id, "error", err)
		return fmt.Errorf("failed to update recipe item: %w", err)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Recipe item not found for update", "id", id)
		return domain.ErrNotFound
	}
	return nil
}

func (r *recipeItemRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting recipe item", "id", id)
	result := conn(ctx, r.db).Delete(&model.RecipeItem{}, "id = ?", id)
	if err := result.Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete recipe item", "id", id, "error", err)
		return fmt.Errorf("failed to delete recipe item: %w", err)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Recipe item not found for deletion", "id", id)
		return domain.ErrNotFound
	}
	return nil
}

func (r *recipeItemRepository) DeleteByProduct(ctx context.Context, productID string) error {
	r.logger.InfoContext(ctx, "Deleting recipe of product", "product_id", productID)
	if err := conn(ctx, r.db).Where("product_id = ?", productID).Delete(&model.RecipeItem{}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete recipe of product", "product_id", productID, "error", err)
		return fmt.Errorf("failed to delete recipe items: %w", err)
	}
	return nil
}
