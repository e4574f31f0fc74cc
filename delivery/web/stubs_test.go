package web

import (
	"context"
	"sync"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/dashboard"
	"github.com/izaldotcom/gerbang-backoffice/pkg/httpclient"
)

// stubStore answers from fixed lists. listErr fails every read, saveErr
// every write and orderErr the order submit.
type stubStore struct {
	mu sync.Mutex

	role     string
	listErr  error
	saveErr  error
	orderErr error

	tokens   []string
	created  []catalog.BulkRecipeRequest
	replaced []catalog.BulkRecipeRequest
	orders   []catalog.OrderRequest
	products []catalog.ProductRequest

	// parkRecipes, when set, holds the next ListRecipeItems until its
	// context ends and release is closed. parked is closed once that call
	// is waiting.
	parkRecipes bool
	parked      chan struct{}
	release     chan struct{}
}

func newStubStore() *stubStore {
	return &stubStore{role: catalog.RoleAdmin}
}

func (s *stubStore) read(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = append(s.tokens, httpclient.TokenFromContext(ctx))
	return s.listErr
}

func (s *stubStore) write() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveErr
}

func (s *stubStore) Profile(ctx context.Context) (*catalog.UserResponse, error) {
	if err := s.read(ctx); err != nil {
		return nil, err
	}
	return &catalog.UserResponse{ID: "u1", Name: "Ayu", RoleName: s.role}, nil
}

func (s *stubStore) ListUsers(ctx context.Context) ([]*catalog.UserResponse, error) {
	if err := s.read(ctx); err != nil {
		return nil, err
	}
	return []*catalog.UserResponse{{ID: "u1", Name: "Ayu", RoleName: s.role}}, nil
}

func (s *stubStore) ListSuppliers(ctx context.Context) ([]catalog.SupplierResponse, error) {
	if err := s.read(ctx); err != nil {
		return nil, err
	}
	return []catalog.SupplierResponse{{ID: "s1", Name: "Digi"}, {ID: "s2", Name: "Uni"}}, nil
}

func (s *stubStore) CreateSupplier(_ context.Context, req catalog.SupplierRequest) (*catalog.SupplierResponse, error) {
	return &catalog.SupplierResponse{ID: "s9", Name: req.Name, Code: req.Code}, s.write()
}

func (s *stubStore) UpdateSupplier(_ context.Context, id string, req catalog.SupplierRequest) (*catalog.SupplierResponse, error) {
	return &catalog.SupplierResponse{ID: id, Name: req.Name}, s.write()
}

func (s *stubStore) DeleteSupplier(context.Context, string) error { return s.write() }

func (s *stubStore) ListSupplierProducts(ctx context.Context) ([]catalog.SupplierProductResponse, error) {
	if err := s.read(ctx); err != nil {
		return nil, err
	}
	return []catalog.SupplierProductResponse{
		{ID: "sp1", SupplierID: "s1", Name: "Diamond 86"},
		{ID: "sp2", SupplierID: "s2", Name: "Diamond 100"},
	}, nil
}

func (s *stubStore) CreateSupplierProduct(context.Context, catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error) {
	return &catalog.SupplierProductResponse{}, s.write()
}

func (s *stubStore) UpdateSupplierProduct(context.Context, string, catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error) {
	return &catalog.SupplierProductResponse{}, s.write()
}

func (s *stubStore) DeleteSupplierProduct(context.Context, string) error { return s.write() }

func (s *stubStore) ListProducts(ctx context.Context) ([]catalog.ProductResponse, error) {
	if err := s.read(ctx); err != nil {
		return nil, err
	}
	return []catalog.ProductResponse{
		{ID: "p1", SupplierID: "s1", Name: "ML 86"},
		{ID: "p2", SupplierID: "s2", Name: "FF 100"},
	}, nil
}

func (s *stubStore) GetProduct(_ context.Context, id string) (*catalog.ProductResponse, error) {
	return &catalog.ProductResponse{ID: id}, nil
}

func (s *stubStore) CreateProduct(_ context.Context, req catalog.ProductRequest) (*catalog.ProductResponse, error) {
	s.mu.Lock()
	s.products = append(s.products, req)
	s.mu.Unlock()
	return &catalog.ProductResponse{}, s.write()
}

func (s *stubStore) UpdateProduct(context.Context, string, catalog.ProductRequest) (*catalog.ProductResponse, error) {
	return &catalog.ProductResponse{}, s.write()
}

func (s *stubStore) DeleteProduct(context.Context, string) error { return s.write() }

func (s *stubStore) ListRecipeItems(ctx context.Context) ([]catalog.RecipeItemResponse, error) {
	if err := s.read(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	park := s.parkRecipes
	s.parkRecipes = false
	s.mu.Unlock()
	if park {
		close(s.parked)
		<-ctx.Done()
		<-s.release
		return nil, ctx.Err()
	}
	return []catalog.RecipeItemResponse{{ID: "r1", ProductID: "p1", SupplierProductID: "sp1", Quantity: 2}}, nil
}

func (s *stubStore) CreateRecipe(_ context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error) {
	if err := s.write(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.created = append(s.created, req)
	s.mu.Unlock()
	return nil, nil
}

func (s *stubStore) UpdateRecipeItem(_ context.Context, req catalog.UpdateRecipeItemRequest) (*catalog.RecipeItemResponse, error) {
	if err := s.write(); err != nil {
		return nil, err
	}
	return &catalog.RecipeItemResponse{ID: req.ID, Quantity: req.Quantity}, nil
}

func (s *stubStore) ReplaceRecipe(_ context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error) {
	if err := s.write(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.replaced = append(s.replaced, req)
	s.mu.Unlock()
	return nil, nil
}

func (s *stubStore) DeleteRecipeItem(context.Context, string) error { return s.write() }

func (s *stubStore) SubmitOrder(_ context.Context, req catalog.OrderRequest) (*catalog.OrderResponse, error) {
	s.mu.Lock()
	s.orders = append(s.orders, req)
	s.mu.Unlock()
	if s.orderErr != nil {
		return nil, s.orderErr
	}
	return &catalog.OrderResponse{TrxID: "trx-1", Product: "ML 86", Status: "pending", QuantityLoop: 2}, nil
}

var _ dashboard.CatalogStore = (*stubStore)(nil)

// stubAuth accepts one password
type stubAuth struct {
	refreshed string
	loggedOut []string
	logoutErr error
}

func (a *stubAuth) Login(_ context.Context, req catalog.LoginRequest) (*catalog.LoginResponse, error) {
	if req.Password != "rahasia123" {
		return nil, &httpclient.StatusError{StatusCode: 401, Code: "UNAUTHORIZED", Message: "Invalid credentials"}
	}
	return &catalog.LoginResponse{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (a *stubAuth) Register(_ context.Context, req catalog.RegisterRequest) (*catalog.UserResponse, error) {
	return &catalog.UserResponse{ID: "u2", Name: req.Name, Email: req.Email}, nil
}

func (a *stubAuth) Refresh(_ context.Context, refreshToken string) (*catalog.LoginResponse, error) {
	a.refreshed = refreshToken
	return &catalog.LoginResponse{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil
}

func (a *stubAuth) Logout(ctx context.Context) error {
	a.loggedOut = append(a.loggedOut, httpclient.TokenFromContext(ctx))
	return a.logoutErr
}
