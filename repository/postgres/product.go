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

type productRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewProductRepository creates a new instance of productRepository
func NewProductRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Product {
	return &productRepository{db: db, logger: logger}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	r.logger.InfoContext(ctx, "Creating product", "supplier_id", product.SupplierID, "name", product.Name)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(product).Error; err != nil {
		err = translate(err)
		if isSentinel(err) {
			r.logger.WarnContext(ctx, "Product rejected by constraint", "name", product.Name, "error", err)
			return err
		}
		r.logger.ErrorContext(ctx, "Failed to create product", "name", product.Name, "error", err)
		return fmt.Errorf("failed to create product: %w", err)
	}
	r.logger.InfoContext(ctx, "Product created successfully", "id", product.ID)
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	r.logger.InfoContext(ctx, "Getting product by ID", "id", id)
	var product model.Product
	if err := conn(ctx, r.db).Where("id = ?", id).First(&product).Error; err != nil {
		if err = translate(err); err == domain.ErrNotFound {
			r.logger.WarnContext(ctx, "Product not found", "id", id)
			return nil, err
		}
		r.logger.ErrorContext(ctx, "Failed to get product", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, supplierID string) ([]*model.Product, error) {
	r.logger.InfoContext(ctx, "Listing products", "supplier_id", supplierID)
	var products []*model.Product
	db := conn(ctx, r.db)
	if supplierID != "" {
		db = db.Where("supplier_id = ?", supplierID)
	}
	if err := db.Order("name ASC").Find(&products).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	r.logger.InfoContext(ctx, "Products listed successfully", "count", len(products))
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	r.logger.InfoContext(ctx, "Updating product", "id", product.ID)
	result := conn(ctx, r.db).Model(product).
		Select("supplier_id", "name", "denom", "price", "qty", "status").
		Updates(product)
	if err := result.Error; err != nil {
		err = translate(err)
		if isSentinel(err) {
			r.logger.WarnContext(ctx, "Product update rejected by constraint", "id", product.ID, "error", err)
			return err
		}
		r.logger.ErrorContext(ctx, "Failed to update product", "id", product.ID, "error", err)
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Product not found for update", "id", product.ID)
		return domain.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Product updated successfully", "id", product.ID)
	return nil
}

// Delete removes a product; its recipe lines go with it
func (r *productRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting product", "id", id)
	result := conn(ctx, r.db).Delete(&model.Product{}, "id = ?", id)
	if err := result.Error; err != nil {
		err = translate(err)
		if isSentinel(err) {
			r.logger.WarnContext(ctx, "Product still referenced", "id", id, "error", err)
			return err
		}
		r.logger.ErrorContext(ctx, "Failed to delete product", "id", id, "error", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Product not found for deletion", "id", id)
		return domain.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Product deleted successfully", "id", id)
	return nil
}
