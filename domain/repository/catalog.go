package repository

import (
	"context"

	"github.com/izaldotcom/gerbang-backoffice/domain/model"
)

// Supplier interface defines the contract for supplier-related database operations
type Supplier interface {
	// Create adds a new supplier. Returns domain.ErrDuplicateKey on a taken code.
	Create(ctx context.Context, supplier *model.Supplier) error
	// GetByID retrieves a supplier by its unique identifier
	GetByID(ctx context.Context, id string) (*model.Supplier, error)
	// GetByCode retrieves a supplier by its code
	GetByCode(ctx context.Context, code string) (*model.Supplier, error)
	// List retrieves every supplier ordered by name
	List(ctx context.Context) ([]*model.Supplier, error)
	// Update modifies an existing supplier
	Update(ctx context.Context, supplier *model.Supplier) error
	// Delete removes a supplier. Returns domain.ErrForeignKey while products reference it.
	Delete(ctx context.Context, id string) error
}

// SupplierProduct interface defines the contract for supplier product operations
type SupplierProduct interface {
	Create(ctx context.Context, product *model.SupplierProduct) error
	GetByID(ctx context.Context, id string) (*model.SupplierProduct, error)
	// GetByIDs returns the rows found among ids, in no particular order
	GetByIDs(ctx context.Context, ids []string) ([]*model.SupplierProduct, error)
	// List returns every supplier product, or only the ones of supplierID when it is set
	List(ctx context.Context, supplierID string) ([]*model.SupplierProduct, error)
	Update(ctx context.Context, product *model.SupplierProduct) error
	Delete(ctx context.Context, id string) error
}

// Product interface defines the contract for product operations
type Product interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	// List returns every product, or only the ones of supplierID when it is set
	List(ctx context.Context, supplierID string) ([]*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error
}

// RecipeItem interface defines the contract for recipe line operations
type RecipeItem interface {
	// List returns every recipe line ordered by product then creation
	List(ctx context.Context) ([]*model.RecipeItem, error)
	ListByProduct(ctx context.Context, productID string) ([]*model.RecipeItem, error)
	GetByID(ctx context.Context, id string) (*model.RecipeItem, error)
	// GetLine returns the line of productID for supplierProductID
	GetLine(ctx context.Context, productID, supplierProductID string) (*model.RecipeItem, error)
	// CreateBatch inserts items in one statement; an empty slice is a no-op
	CreateBatch(ctx context.Context, items []*model.RecipeItem) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
	// DeleteByProduct removes every line of productID
	DeleteByProduct(ctx context.Context, productID string) error
}

// Transaction interface defines the contract for seller order storage
type Transaction interface {
	// Create stores an order. Returns domain.ErrDuplicateKey on a used ref id.
	Create(ctx context.Context, trx *model.Transaction) error
	GetByRefID(ctx context.Context, refID string) (*model.Transaction, error)
}

// OrderEventPublisher announces stored orders to downstream fulfilment
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, trx *model.Transaction, productName string) error
}

// Transactor runs fn inside a database transaction. Repositories called
// with the ctx passed to fn join that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
