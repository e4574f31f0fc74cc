// Package dashboard holds the view models behind the back-office screens:
// supplier-scoped filtering, recipe composition and editing, order
// submission and the concurrent page loads that feed them. Nothing here
// speaks HTTP; the catalog is reached through CatalogStore.
package dashboard

import (
	"context"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
)

// RecipeStore is the part of the catalog the recipe editor writes to
type RecipeStore interface {
	CreateRecipe(ctx context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error)
	UpdateRecipeItem(ctx context.Context, req catalog.UpdateRecipeItemRequest) (*catalog.RecipeItemResponse, error)
	ReplaceRecipe(ctx context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error)
	DeleteRecipeItem(ctx context.Context, id string) error
}

// OrderStore submits seller orders. Implementations attach the API key.
type OrderStore interface {
	SubmitOrder(ctx context.Context, req catalog.OrderRequest) (*catalog.OrderResponse, error)
}

// CatalogStore is everything the dashboard needs from the catalog service.
// Calls are authenticated by the bearer token carried in ctx.
type CatalogStore interface {
	RecipeStore
	OrderStore

	Profile(ctx context.Context) (*catalog.UserResponse, error)
	ListUsers(ctx context.Context) ([]*catalog.UserResponse, error)

	ListSuppliers(ctx context.Context) ([]catalog.SupplierResponse, error)
	CreateSupplier(ctx context.Context, req catalog.SupplierRequest) (*catalog.SupplierResponse, error)
	UpdateSupplier(ctx context.Context, id string, req catalog.SupplierRequest) (*catalog.SupplierResponse, error)
	DeleteSupplier(ctx context.Context, id string) error

	ListSupplierProducts(ctx context.Context) ([]catalog.SupplierProductResponse, error)
	CreateSupplierProduct(ctx context.Context, req catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error)
	UpdateSupplierProduct(ctx context.Context, id string, req catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error)
	DeleteSupplierProduct(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]catalog.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*catalog.ProductResponse, error)
	CreateProduct(ctx context.Context, req catalog.ProductRequest) (*catalog.ProductResponse, error)
	UpdateProduct(ctx context.Context, id string, req catalog.ProductRequest) (*catalog.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error

	ListRecipeItems(ctx context.Context) ([]catalog.RecipeItemResponse, error)
}
