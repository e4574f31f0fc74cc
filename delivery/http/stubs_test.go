package http

import (
	"context"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
)

// Stubs answer with whatever the test wires into their function fields.
// Unset fields return zero values.

type stubAuth struct {
	login    func(catalog.LoginRequest) (*catalog.LoginResponse, error)
	register func(catalog.RegisterRequest) (*catalog.UserResponse, error)
	profile  func(context.Context) (*catalog.UserResponse, error)
	logout   func(context.Context) error
}

func (s stubAuth) Login(_ context.Context, req catalog.LoginRequest) (*catalog.LoginResponse, error) {
	return s.login(req)
}

func (s stubAuth) Register(_ context.Context, req catalog.RegisterRequest) (*catalog.UserResponse, error) {
	return s.register(req)
}

func (s stubAuth) Refresh(context.Context, catalog.RefreshTokenRequest) (*catalog.LoginResponse, error) {
	return &catalog.LoginResponse{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil
}

func (s stubAuth) Profile(ctx context.Context) (*catalog.UserResponse, error) {
	return s.profile(ctx)
}

func (s stubAuth) Logout(ctx context.Context) error {
	return s.logout(ctx)
}

func (s stubAuth) SeedRoles(context.Context) error { return nil }

type stubUsers struct {
	gotOffset, gotLimit *int
}

func (s stubUsers) List(_ context.Context, offset, limit int) ([]*catalog.UserResponse, int, error) {
	*s.gotOffset, *s.gotLimit = offset, limit
	return []*catalog.UserResponse{{ID: "u1", Name: "Ayu"}}, 1, nil
}

type stubSuppliers struct {
	create func(catalog.SupplierRequest) (*catalog.SupplierResponse, error)
	del    func(string) error
}

func (s stubSuppliers) List(context.Context) ([]catalog.SupplierResponse, error) {
	return []catalog.SupplierResponse{{ID: "s1", Name: "Digi", Code: "DG", Status: true}}, nil
}

func (s stubSuppliers) Create(_ context.Context, req catalog.SupplierRequest) (*catalog.SupplierResponse, error) {
	return s.create(req)
}

func (s stubSuppliers) Update(_ context.Context, id string, req catalog.SupplierRequest) (*catalog.SupplierResponse, error) {
	return &catalog.SupplierResponse{ID: id, Name: req.Name, Code: req.Code}, nil
}

func (s stubSuppliers) Delete(_ context.Context, id string) error {
	return s.del(id)
}

type stubSupplierProducts struct {
	gotSupplier *string
}

func (s stubSupplierProducts) List(_ context.Context, supplierID string) ([]catalog.SupplierProductResponse, error) {
	*s.gotSupplier = supplierID
	return []catalog.SupplierProductResponse{}, nil
}

func (s stubSupplierProducts) Create(context.Context, catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error) {
	return &catalog.SupplierProductResponse{}, nil
}

func (s stubSupplierProducts) Update(context.Context, string, catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error) {
	return &catalog.SupplierProductResponse{}, nil
}

func (s stubSupplierProducts) Delete(context.Context, string) error { return nil }

type stubProducts struct {
	get     func(string) (*catalog.ProductResponse, error)
	updated *string
	deleted *string
}

func (s stubProducts) List(context.Context, string) ([]catalog.ProductResponse, error) {
	return []catalog.ProductResponse{{ID: "p1", SupplierID: "s1", Name: "ML 86"}}, nil
}

func (s stubProducts) Get(_ context.Context, id string) (*catalog.ProductResponse, error) {
	return s.get(id)
}

func (s stubProducts) Create(_ context.Context, req catalog.ProductRequest) (*catalog.ProductResponse, error) {
	return &catalog.ProductResponse{ID: "p2", SupplierID: req.SupplierID, Name: req.Name}, nil
}

func (s stubProducts) Update(_ context.Context, id string, req catalog.ProductRequest) (*catalog.ProductResponse, error) {
	*s.updated = id
	return &catalog.ProductResponse{ID: id, SupplierID: req.SupplierID, Name: req.Name}, nil
}

func (s stubProducts) Delete(_ context.Context, id string) error {
	*s.deleted = id
	return nil
}

type stubRecipes struct {
	replace func(catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error)
}

func (s stubRecipes) List(context.Context) ([]catalog.RecipeItemResponse, error) {
	return []catalog.RecipeItemResponse{{ID: "r1", ProductID: "p1", SupplierProductID: "sp1", Quantity: 2}}, nil
}

func (s stubRecipes) Create(_ context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error) {
	return s.replace(req)
}

func (s stubRecipes) UpdateQuantity(_ context.Context, req catalog.UpdateRecipeItemRequest) (*catalog.RecipeItemResponse, error) {
	return &catalog.RecipeItemResponse{ID: req.ID, Quantity: req.Quantity}, nil
}

func (s stubRecipes) Replace(_ context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error) {
	return s.replace(req)
}

func (s stubRecipes) Delete(context.Context, string) error { return nil }

type stubOrders struct {
	gotKey *string
	submit func(catalog.OrderRequest) (*catalog.OrderResponse, error)
}

func (s stubOrders) Submit(_ context.Context, apiKey string, req catalog.OrderRequest) (*catalog.OrderResponse, error) {
	*s.gotKey = apiKey
	return s.submit(req)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
