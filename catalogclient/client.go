// Package catalogclient talks to the catalog service over HTTP. It
// implements dashboard.CatalogStore plus the public auth calls the
// dashboard's login screen needs.
package catalogclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/dashboard"
	"github.com/izaldotcom/gerbang-backoffice/pkg/httpclient"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// Client calls the catalog service. Bearer tokens travel in the request
// context (httpclient.WithToken); the seller API key is fixed per client.
type Client struct {
	http   httpclient.HTTPClient
	apiKey string
	logger logger.LoggerInterface
}

var _ dashboard.CatalogStore = (*Client)(nil)

// New returns a Client over an already configured HTTP client
func New(httpClient httpclient.HTTPClient, apiKey string, appLogger logger.LoggerInterface) *Client {
	return &Client{http: httpClient, apiKey: apiKey, logger: appLogger}
}

type usersPage struct {
	Users []*catalog.UserResponse `json:"users"`
	Total int                     `json:"total"`
}

// get reads a wrapped response. A missing data field yields the zero value.
func get[T any](ctx context.Context, c *Client, path string, dst *T) error {
	var envelope catalog.Envelope[T]
	if err := c.http.GetJSON(ctx, path, &envelope, nil); err != nil {
		return err
	}
	*dst = envelope.Data
	return nil
}

func send[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var envelope catalog.Envelope[T]
	var err error
	switch method {
	case http.MethodPost:
		err = c.http.PostJSON(ctx, path, body, &envelope, nil)
	case http.MethodPut:
		err = c.http.PutJSON(ctx, path, body, &envelope, nil)
	default:
		err = c.http.DeleteJSON(ctx, path, &envelope, nil)
	}
	return envelope.Data, err
}

func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	items := []T{}
	if err := get(ctx, c, path, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Login exchanges credentials for a token pair. The answer is not wrapped.
func (c *Client) Login(ctx context.Context, req catalog.LoginRequest) (*catalog.LoginResponse, error) {
	c.logger.InfoContext(ctx, "Logging in", "login", req.Login())

	var resp catalog.LoginResponse
	if err := c.http.PostJSON(ctx, "/login", req, &resp, nil); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req catalog.RegisterRequest) (*catalog.UserResponse, error) {
	c.logger.InfoContext(ctx, "Registering user", "email", req.Email)
	return send[*catalog.UserResponse](ctx, c, http.MethodPost, "/register", req)
}

// Refresh trades a refresh token for a new pair
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*catalog.LoginResponse, error) {
	var resp catalog.LoginResponse
	if err := c.http.PostJSON(ctx, "/auth/refresh", catalog.RefreshTokenRequest{RefreshToken: refreshToken}, &resp, nil); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout revokes the refresh tokens of the token carried by ctx
func (c *Client) Logout(ctx context.Context) error {
	_, err := send[any](ctx, c, http.MethodPost, "/auth/logout", struct{}{})
	return err
}

func (c *Client) Profile(ctx context.Context) (*catalog.UserResponse, error) {
	var profile *catalog.UserResponse
	if err := get(ctx, c, "/auth/me", &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]*catalog.UserResponse, error) {
	var page usersPage
	if err := get(ctx, c, "/users", &page); err != nil {
		return nil, err
	}
	if page.Users == nil {
		page.Users = []*catalog.UserResponse{}
	}
	return page.Users, nil
}

func (c *Client) ListSuppliers(ctx context.Context) ([]catalog.SupplierResponse, error) {
	return list[catalog.SupplierResponse](ctx, c, "/suppliers")
}

func (c *Client) CreateSupplier(ctx context.Context, req catalog.SupplierRequest) (*catalog.SupplierResponse, error) {
	return send[*catalog.SupplierResponse](ctx, c, http.MethodPost, "/suppliers", req)
}

func (c *Client) UpdateSupplier(ctx context.Context, id string, req catalog.SupplierRequest) (*catalog.SupplierResponse, error) {
	return send[*catalog.SupplierResponse](ctx, c, http.MethodPut, "/suppliers/"+url.PathEscape(id), req)
}

func (c *Client) DeleteSupplier(ctx context.Context, id string) error {
	_, err := send[any](ctx, c, http.MethodDelete, "/suppliers/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) ListSupplierProducts(ctx context.Context) ([]catalog.SupplierProductResponse, error) {
	return list[catalog.SupplierProductResponse](ctx, c, "/supplier-products")
}

func (c *Client) CreateSupplierProduct(ctx context.Context, req catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error) {
	return send[*catalog.SupplierProductResponse](ctx, c, http.MethodPost, "/supplier-products", req)
}

func (c *Client) UpdateSupplierProduct(ctx context.Context, id string, req catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error) {
	return send[*catalog.SupplierProductResponse](ctx, c, http.MethodPut, "/supplier-products/"+url.PathEscape(id), req)
}

func (c *Client) DeleteSupplierProduct(ctx context.Context, id string) error {
	_, err := send[any](ctx, c, http.MethodDelete, "/supplier-products/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) ListProducts(ctx context.Context) ([]catalog.ProductResponse, error) {
	return list[catalog.ProductResponse](ctx, c, "/products")
}

func (c *Client) GetProduct(ctx context.Context, id string) (*catalog.ProductResponse, error) {
	var product *catalog.ProductResponse
	if err := get(ctx, c, "/products/"+url.PathEscape(id), &product); err != nil {
		return nil, err
	}
	return product, nil
}

// Product writes go to the singular path with the id in the query
func (c *Client) CreateProduct(ctx context.Context, req catalog.ProductRequest) (*catalog.ProductResponse, error) {
	return send[*catalog.ProductResponse](ctx, c, http.MethodPost, "/product", req)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, req catalog.ProductRequest) (*catalog.ProductResponse, error) {
	return send[*catalog.ProductResponse](ctx, c, http.MethodPut, "/product?id="+url.QueryEscape(id), req)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := send[any](ctx, c, http.MethodDelete, "/product?id="+url.QueryEscape(id), nil)
	return err
}

// ListRecipeItems returns the flat list of every recipe line
func (c *Client) ListRecipeItems(ctx context.Context) ([]catalog.RecipeItemResponse, error) {
	return list[catalog.RecipeItemResponse](ctx, c, "/recipes")
}

func (c *Client) CreateRecipe(ctx context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error) {
	return send[[]catalog.RecipeItemResponse](ctx, c, http.MethodPost, "/recipes", req)
}

func (c *Client) UpdateRecipeItem(ctx context.Context, req catalog.UpdateRecipeItemRequest) (*catalog.RecipeItemResponse, error) {
	return send[*catalog.RecipeItemResponse](ctx, c, http.MethodPut, "/recipes", req)
}

func (c *Client) ReplaceRecipe(ctx context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error) {
	return send[[]catalog.RecipeItemResponse](ctx, c, http.MethodPut, "/recipes/replace", req)
}

func (c *Client) DeleteRecipeItem(ctx context.Context, id string) error {
	_, err := send[any](ctx, c, http.MethodDelete, "/recipes/"+url.PathEscape(id), nil)
	return err
}

// SubmitOrder posts a seller order with the configured API key. The
// answer is not wrapped and the request is never retried.
func (c *Client) SubmitOrder(ctx context.Context, req catalog.OrderRequest) (*catalog.OrderResponse, error) {
	c.logger.InfoContext(ctx, "Posting seller order", "ref_id", req.RefID)

	var resp catalog.OrderResponse
	headers := map[string]string{catalog.APIKeyHeader: c.apiKey}
	if err := c.http.PostJSON(ctx, "/seller/order", req, &resp, headers); err != nil {
		return nil, err
	}
	return &resp, nil
}
