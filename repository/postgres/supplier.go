package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
	"github.com/izaldotcom/gerbang-backoffice/domain/repository"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"

	"gorm.io/gorm"
)

// supplierRepository implements the Supplier repository interface using PostgreSQL
type supplierRepository struct {
	// db is the GORM database instance for database operations
	db *gorm.DB
	// logger is used for logging operations within the repository
	logger logger.LoggerInterface
}

// NewSupplierRepository creates a new instance of supplierRepository
func NewSupplierRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Supplier {
	return &supplierRepository{
		db:     db,
		logger: logger,
	}
}

// Create adds a new supplier to the database
func (r *supplierRepository) Create(ctx context.Context, supplier *model.Supplier) error {
	r.logger.InfoContext(ctx, "Creating supplier", "code", supplier.Code)
	if err := conn(ctx, r.db).Create(supplier).Error; err != nil {
		err = translate(err)
		if isSentinel(err) {
			r.logger.WarnContext(ctx, "Supplier rejected by constraint", "code", supplier.Code, "error", err)
			return err
		}
		r.logger.ErrorContext(ctx, "Failed to create supplier", "code", supplier.Code, "error", err)
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	r.logger.InfoContext(ctx, "Supplier created successfully", "id", supplier.ID, "code", supplier.Code)
	return nil
}

// GetByID retrieves a supplier by its unique identifier
func (r *supplierRepository) GetByID(ctx context.Context, id string) (*model.Supplier, error) {
	r.logger.InfoContext(ctx, "Getting supplier by ID", "id", id)
	var supplier model.Supplier
	if err := conn(ctx, r.db).Where("id = ?", id).First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.WarnContext(ctx, "Supplier not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get supplier by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	r.logger.InfoContext(ctx, "Supplier retrieved by ID", "id", supplier.ID, "code", supplier.Code)
	return &supplier, nil
}

// GetByCode retrieves a supplier by its code
func (r *supplierRepository) GetByCode(ctx context.Context, code string) (*model.Supplier, error) {
	r.logger.InfoContext(ctx, "Getting supplier by code", "code", code)
	var supplier model.Supplier
	if err := conn(ctx, r.db).Where("code = ?", code).First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.WarnContext(ctx, "Supplier not found by code", "code", code)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get supplier by code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	r.logger.InfoContext(ctx, "Supplier retrieved by code", "id", supplier.ID, "code", supplier.Code)
	return &supplier, nil
}

// List retrieves every supplier
func (r *supplierRepository) List(ctx context.Context) ([]*model.Supplier, error) {
	r.logger.InfoContext(ctx, "Listing suppliers")
	var suppliers []*model.Supplier
	if err := conn(ctx, r.db).Order("name ASC").Find(&suppliers).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list suppliers", "error", err)
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	r.logger.InfoContext(ctx, "Suppliers listed successfully", "count", len(suppliers))
	return suppliers, nil
}

// Update modifies an existing supplier. Status is written even when false.
func (r *supplierRepository) Update(ctx context.Context, supplier *model.Supplier) error {
	r.logger.InfoContext(ctx, "Updating supplier", "id", supplier.ID, "code", supplier.Code)
	result := conn(ctx, r.db).Model(supplier).Select("name", "code", "type", "status").Updates(supplier)
	if err := result.Error; err != nil {
		err = translate(err)
		if isSentinel(err) {
			r.logger.WarnContext(ctx, "Supplier update rejected by constraint", "id", supplier.ID, "error", err)
			return err
		}
		r.logger.ErrorContext(ctx, "Failed to update supplier", "id", supplier.ID, "error", err)
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Supplier not found for update", "id", supplier.ID)
		return domain.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Supplier updated successfully", "id", supplier.ID, "code", supplier.Code)
	return nil
}

// Delete removes a supplier
func (r *supplierRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting supplier", "id", id)
	result := conn(ctx, r.db).Delete(&model.Supplier{}, "id = ?", id)
	if err := result.Error; err != nil {
		err = translate(err)
		if isSentinel(err) {
			r.logger.WarnContext(ctx, "Supplier still referenced", "id", id, "error", err)
			return err
		}
		r.logger.ErrorContext(ctx, "Failed to delete supplier", "id", id, "error", err)
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Supplier not found for deletion", "id", id)
		return domain.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Supplier deleted successfully", "id", id)
	return nil
}
