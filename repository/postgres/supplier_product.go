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

type supplierProductRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewSupplierProductRepository creates a new instance of supplierProductRepository
func NewSupplierProductRepository(db *gorm.DB, logger logger.LoggerInterface) repository.SupplierProduct {
	return &supplierProductRepository{db: db, logger: logger}
}

func (r *supplierProductRepository) Create(ctx context.Context, product *model.SupplierProduct) error {
	r.logger.InfoContext(ctx, "Creating supplier product", "supplier_id", product.SupplierID, "key", product.SupplierProductID)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(product).Error; err != nil {
		err = translate(err)
		if isSentinel(err) {
			r.logger.WarnContext(ctx, "Supplier product rejected by constraint", "key", product.SupplierProductID, "error", err)
			return err
		}
		r.logger.ErrorContext(ctx, "Failed to create supplier product", "key", product.SupplierProductID, "error", err)
		return fmt.Errorf("failed to create supplier product: %w", err)
	}
	r.logger.InfoContext(ctx, "Supplier product created successfully", "id", product.ID)
	return nil
}

func (r *supplierProductRepository) GetByID(ctx context.Context, id string) (*model.SupplierProduct, error) {
	r.logger.InfoContext(ctx, "Getting supplier product by ID", "id", id)
	var product model.SupplierProduct
	if err := conn(ctx, r.db).Where("id = ?", id).First(&product).Error; err != nil {
		if err = translate(err); err == domain.ErrNotFound {
			r.logger.WarnContext(ctx, "Supplier product not found", "id", id)
			return nil, err
		}
		r.logger.ErrorContext(ctx, "Failed to get supplier product", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get supplier product: %w", err)
	}
	return &product, nil
}

func (r *supplierProductRepository) GetByIDs(ctx context.Context, ids []string) ([]*model.SupplierProduct, error) {
	var products []*model.SupplierProduct
	if len(ids) == 0 {
		return products, nil
	}
	if err := conn(ctx, r.db).Where("id IN ?", ids).Find(&products).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to get supplier products by IDs", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to get supplier products: %w", err)
	}
	return products, nil
}

func (r *supplierProductRepository) List(ctx context.Context, supplierID string) ([]*model.SupplierProduct, error) {
	r.logger.InfoContext(ctx, "Listing supplier products", "supplier_id", supplierID)
	var products []*model.SupplierProduct
	db := conn(ctx, r.db)
	if supplierID != "" {
		db = db.Where("supplier_id = ?", supplierID)
	}
	if err := db.Order("name ASC").Find(&products).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list supplier products", "error", err)
		return nil, fmt.Errorf("failed to list supplier products: %w", err)
	}
	r.logger.InfoContext(ctx, "Supplier products listed successfully", "count", len(products))
	return products, nil
}

func (r *supplierProductRepository) Update(ctx context.Context, product *model.SupplierProduct) error {
	r.logger.InfoContext(ctx, "Updating supplier product", "id", product.ID)
	result := conn(ctx, r.db).Model(product).
		Select("supplier_id", "supplier_product_id", "name", "denom", "cost_price", "price", "status").
		Updates(product)
	if err := result.Error; err != nil {
		err = translate(err)
		if isSentinel(err) {
			r.logger.WarnContext(ctx, "Supplier product update rejected by constraint", "id", product.ID, "error", err)
			return err
		}
		r.logger.ErrorContext(ctx, "Failed to update supplier product", "id", product.ID, "error", err)
		return fmt.Errorf("failed to update supplier product: %w", err)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Supplier product not found for update", "id", product.ID)
		return domain.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Supplier product updated successfully", "id", product.ID)
	return nil
}

func (r *supplierProductRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting supplier product", "id", id)
	result := conn(ctx, r.db).Delete(&model.SupplierProduct{}, "id = ?", id)
	if err := result.Error; err != nil {
		err = translate(err)
		if isSentinel(err) {
			r.logger.WarnContext(ctx, "Supplier product still referenced", "id", id, "error", err)
			return err
		}
		r.logger.ErrorContext(ctx, "Failed to delete supplier product", "id", id, "error", err)
		return fmt.Errorf("failed to delete supplier product: %w", err)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Supplier product not found for deletion", "id", id)
		return domain.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Supplier product deleted successfully", "id", id)
	return nil
}
