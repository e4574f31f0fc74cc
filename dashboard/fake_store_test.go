package dashboard

import (
	"context"
	"errors"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
)

var errBackend = errors.New("Request failed")

// fakeStore serves fixed lists and records writes
type fakeStore struct {
	profile          *catalog.UserResponse
	suppliers        []catalog.SupplierResponse
	products         []catalog.ProductResponse
	supplierProducts []catalog.SupplierProductResponse
	items            []catalog.RecipeItemResponse

	failList error
	failSave error

	created  []catalog.BulkRecipeRequest
	updated  []catalog.UpdateRecipeItemRequest
	replaced []catalog.BulkRecipeRequest
	orders   []catalog.OrderRequest
}

func sampleStore() *fakeStore {
	return &fakeStore{
		profile:   &catalog.UserResponse{ID: "u1", Name: "Ayu", RoleName: catalog.RoleAdmin},
		suppliers: []catalog.SupplierResponse{{ID: "s1", Name: "Digi"}, {ID: "s2", Name: "Uni"}},
		products: []catalog.ProductResponse{
			{ID: "p1", SupplierID: "s1", Name: "ML 86"},
			{ID: "p2", SupplierID: "s2", Name: "FF 100"},
		},
		supplierProducts: []catalog.SupplierProductResponse{
			{ID: "sp1", SupplierID: "s1", Name: "Diamond 86"},
			{ID: "sp2", SupplierID: "s2", Name: "Diamond 100"},
		},
		items: []catalog.RecipeItemResponse{
			{ID: "r1", ProductID: "p1", SupplierProductID: "sp1", Quantity: 2},
		},
	}
}

func (f *fakeStore) list(ctx context.Context) error {
	if f.failList != nil {
		return f.failList
	}
	return ctx.Err()
}

func (f *fakeStore) Profile(ctx context.Context) (*catalog.UserResponse, error) {
	return f.profile, f.list(ctx)
}

func (f *fakeStore) ListUsers(ctx context.Context) ([]*catalog.UserResponse, error) {
	return []*catalog.UserResponse{f.profile}, f.list(ctx)
}

func (f *fakeStore) ListSuppliers(ctx context.Context) ([]catalog.SupplierResponse, error) {
	return f.suppliers, f.list(ctx)
}

func (f *fakeStore) CreateSupplier(_ context.Context, req catalog.SupplierRequest) (*catalog.SupplierResponse, error) {
	return &catalog.SupplierResponse{ID: "s9", Name: req.Name, Code: req.Code}, f.failSave
}

func (f *fakeStore) UpdateSupplier(_ context.Context, id string, req catalog.SupplierRequest) (*catalog.SupplierResponse, error) {
	return &catalog.SupplierResponse{ID: id, Name: req.Name}, f.failSave
}

func (f *fakeStore) DeleteSupplier(context.Context, string) error { return f.failSave }

func (f *fakeStore) ListSupplierProducts(ctx context.Context) ([]catalog.SupplierProductResponse, error) {
	return f.supplierProducts, f.list(ctx)
}

func (f *fakeStore) CreateSupplierProduct(context.Context, catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error) {
	return &catalog.SupplierProductResponse{}, f.failSave
}

func (f *fakeStore) UpdateSupplierProduct(context.Context, string, catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error) {
	return &catalog.SupplierProductResponse{}, f.failSave
}

func (f *fakeStore) DeleteSupplierProduct(context.Context, string) error { return f.failSave }

func (f *fakeStore) ListProducts(ctx context.Context) ([]catalog.ProductResponse, error) {
	return f.products, f.list(ctx)
}

func (f *fakeStore) GetProduct(_ context.Context, id string) (*catalog.ProductResponse, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errBackend
}

func (f *fakeStore) CreateProduct(context.Context, catalog.ProductRequest) (*catalog.ProductResponse, error) {
	return &catalog.ProductResponse{}, f.failSave
}

func (f *fakeStore) UpdateProduct(context.Context, string, catalog.ProductRequest) (*catalog.ProductResponse, error) {
	return &catalog.ProductResponse{}, f.failSave
}

func (f *fakeStore) DeleteProduct(context.Context, string) error { return f.failSave }

func (f *fakeStore) ListRecipeItems(ctx context.Context) ([]catalog.RecipeItemResponse, error) {
	return f.items, f.list(ctx)
}

func (f *fakeStore) CreateRecipe(_ context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error) {
	if f.failSave != nil {
		return nil, f.failSave
	}
	f.created = append(f.created, req)
	return nil, nil
}

func (f *fakeStore) UpdateRecipeItem(_ context.Context, req catalog.UpdateRecipeItemRequest) (*catalog.RecipeItemResponse, error) {
	if f.failSave != nil {
		return nil, f.failSave
	}
	f.updated = append(f.updated, req)
	return &catalog.RecipeItemResponse{ID: req.ID, Quantity: req.Quantity}, nil
}

func (f *fakeStore) ReplaceRecipe(_ context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error) {
	if f.failSave != nil {
		return nil, f.failSave
	}
	f.replaced = append(f.replaced, req)
	return nil, nil
}

func (f *fakeStore) DeleteRecipeItem(context.Context, string) error { return f.failSave }

func (f *fakeStore) SubmitOrder(_ context.Context, req catalog.OrderRequest) (*catalog.OrderResponse, error) {
	f.orders = append(f.orders, req)
	if f.failSave != nil {
		return nil, f.failSave
	}
	return &catalog.OrderResponse{TrxID: "trx-1", Product: "ML 86", Status: "pending", QuantityLoop: 2}, nil
}

var _ CatalogStore = (*fakeStore)(nil)
