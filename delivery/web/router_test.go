package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/izaldotcom/gerbang-backoffice/dashboard"
	"github.com/izaldotcom/gerbang-backoffice/pkg/httpclient"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	handler    http.Handler
	store      *stubStore
	auth       *stubAuth
	workspaces *dashboard.Workspaces
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:      newStubStore(),
		auth:       &stubAuth{},
		workspaces: dashboard.NewWorkspaces(time.Hour),
	}
	appLogger := logger.NoOpLogger()
	cookies := DefaultCookies()

	router := &Router{
		AuthHandler:    NewAuthHandler(f.auth, f.store, f.workspaces, cookies, appLogger),
		ScreenHandler:  NewScreenHandler(f.store, f.workspaces, cookies, appLogger),
		CatalogHandler: NewCatalogHandler(f.store, f.workspaces, cookies, appLogger),
		RecipeHandler:  NewRecipeHandler(f.store, f.workspaces, cookies, appLogger),
		OrderHandler:   NewOrderHandler(f.store, f.workspaces, cookies, appLogger),
		AppLogger:      appLogger,
	}
	f.handler = router.SetupRoutes()
	return f
}

// do sends a request, signed in when token is not empty
func (f *fixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
		req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "refresh-" + token})
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	Redirect string          `json:"redirect"`
	Data     json.RawMessage `json:"data"`
	Error    *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

type screen[T any] struct {
	State string `json:"state"`
	Error string `json:"error"`
	Seq   uint64 `json:"seq"`
	Data  T      `json:"data"`
}

func decodeScreen[T any](t *testing.T, rec *httptest.ResponseRecorder) screen[T] {
	t.Helper()
	var out screen[T]
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	return out
}

func cookiesOf(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestDashboard_WithoutSessionRedirectsToLogin(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/dashboard", "/dashboard/products", "/dashboard/recipes"} {
		rec := f.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, LoginPath, rec.Header().Get("Location"), path)
	}
}

func TestIndex(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/", "", "tok")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, HomePath, rec.Header().Get("Location"))
}

func TestLogin_SetsBothCookies(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/login", `{"email":"ayu@example.com","password":"rahasia123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	cookies := cookiesOf(rec)
	require.Contains(t, cookies, TokenCookie)
	require.Contains(t, cookies, RefreshTokenCookie)
	assert.Equal(t, "access", cookies[TokenCookie].Value)
	assert.Equal(t, "refresh", cookies[RefreshTokenCookie].Value)
	assert.True(t, cookies[TokenCookie].HttpOnly)
	assert.Equal(t, "/", cookies[TokenCookie].Path)
	assert.Equal(t, 24*60*60, cookies[TokenCookie].MaxAge)

	var data map[string]string
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, HomePath, data["redirect"])
}

func TestLogin_WrongPasswordSetsNoCookie(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/login", `{"email":"ayu@example.com","password":"salah"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, "Invalid credentials", decode(t, rec).Error.Message)
}

func TestLogin_ValidatesBody(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/login", `{"email":"ayu@example.com"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRegister_PointsAtLogin(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/register",
		`{"role_id":"r1","name":"Budi","email":"budi@example.com","phone":"0812345678","password":"rahasia123"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var data map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, LoginPath, data["redirect"])
}

func TestLogout_ClearsCookiesAndWorkspace(t *testing.T) {
	f := newFixture(t)
	f.do(http.MethodGet, "/dashboard/suppliers", "", "tok")
	require.Equal(t, 1, f.workspaces.Len())

	rec := f.do(http.MethodPost, "/logout", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := cookiesOf(rec)
	require.Contains(t, cookies, TokenCookie)
	require.Contains(t, cookies, RefreshTokenCookie)
	assert.Equal(t, -1, cookies[TokenCookie].MaxAge)
	assert.Equal(t, -1, cookies[RefreshTokenCookie].MaxAge)
	assert.Equal(t, 0, f.workspaces.Len())
	assert.Equal(t, []string{"tok"}, f.auth.loggedOut)
}

func TestLogout_RevokeFailureStillSignsOut(t *testing.T) {
	f := newFixture(t)
	f.auth.logoutErr = &httpclient.StatusError{StatusCode: http.StatusBadGateway, Message: "catalog down"}

	rec := f.do(http.MethodPost, "/logout", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, -1, cookiesOf(rec)[TokenCookie].MaxAge)

	rec = f.do(http.MethodPost, "/logout", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, f.auth.loggedOut, 1, "no token means nothing to revoke")
}

func TestRefresh(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/auth/refresh", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "refresh-tok", f.auth.refreshed)
	assert.Equal(t, "access-2", cookiesOf(rec)[TokenCookie].Value)

	rec = f.do(http.MethodPost, "/auth/refresh", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, LoginPath, decode(t, rec).Redirect)
}

func TestSession_CarriesBearerToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/dashboard/session", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	var session dashboard.Session
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &session))
	assert.Equal(t, "Ayu", session.Profile.Name)
	assert.Equal(t, dashboard.MenuFor(session.Profile.RoleName), session.Menu)
	assert.Equal(t, []string{"tok"}, f.store.tokens)
}

func TestUpstreamUnauthorized_EndsSession(t *testing.T) {
	f := newFixture(t)
	f.store.listErr = &httpclient.StatusError{StatusCode: http.StatusUnauthorized, Message: "Token expired"}

	rec := f.do(http.MethodGet, "/dashboard/suppliers", "", "tok")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, LoginPath, body.Redirect)
	assert.Equal(t, -1, cookiesOf(rec)[TokenCookie].MaxAge)
	assert.Equal(t, 0, f.workspaces.Len())
}

func TestScreen_FailedLoadIsStillOK(t *testing.T) {
	f := newFixture(t)
	f.store.listErr = &httpclient.StatusError{StatusCode: http.StatusInternalServerError, Message: "database down"}

	rec := f.do(http.MethodGet, "/dashboard/products", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeScreen[dashboard.ProductsScreen](t, rec)
	assert.Equal(t, string(dashboard.StateFailed), view.State)
	assert.Equal(t, "database down", view.Error)
	assert.Nil(t, view.Data.Products)
}

func TestProducts_ScopedBySelection(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/dashboard/products?supplier_id=s1", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeScreen[dashboard.ProductsScreen](t, rec)
	assert.Equal(t, string(dashboard.StateLoaded), view.State)
	require.Len(t, view.Data.Products, 1)
	assert.Equal(t, "p1", view.Data.Products[0].ID)
	assert.Len(t, view.Data.Suppliers, 2)
	assert.True(t, view.Data.CanManage)

	rec = f.do(http.MethodGet, "/dashboard/products", "", "tok")
	view = decodeScreen[dashboard.ProductsScreen](t, rec)
	assert.Empty(t, view.Data.Products)
	assert.Equal(t, uint64(2), view.Seq)
}

func TestSummary_AdminGetsStats(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/dashboard", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeScreen[dashboard.SummaryData](t, rec)
	require.NotNil(t, view.Data.Stats)
	assert.Equal(t, 2, view.Data.Stats.Products)
	assert.Equal(t, 2, view.Data.Stats.Suppliers)
	assert.Equal(t, 1, view.Data.Stats.Recipes)
}

func TestCreateSupplier_ValidationError(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/dashboard/suppliers", `{"name":"Digi"}`, "tok")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decode(t, rec)
	require.Len(t, body.Error.Details, 1)
	assert.Equal(t, "code", body.Error.Details[0].Field)
}

func TestCreateSupplier_ReloadsScreen(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/dashboard/suppliers", `{"name":"Digi","code":"DG","status":"true"}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	view := decodeScreen[dashboard.SuppliersScreen](t, rec)
	assert.Equal(t, string(dashboard.StateLoaded), view.State)
}

func TestCreateProduct_UsesSelectedSupplier(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/dashboard/products?supplier_id=s1", `{"name":"ML 172","denom":"172","price":"45000","qty":1}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, f.store.products, 1)
	assert.Equal(t, "s1", f.store.products[0].SupplierID)

	rec = f.do(http.MethodPost, "/dashboard/products", `{"name":"ML 172"}`, "tok")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Len(t, f.store.products, 1)
}

func TestCreateRecipe_SavesAndRefetches(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/dashboard/recipes?supplier_id=s1",
		`{"product_id":"p1","supplier_product_id":"sp1","quantity":"3"}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, f.store.created, 1)
	assert.Equal(t, "p1", f.store.created[0].ProductID)
	assert.Equal(t, 3, f.store.created[0].Items[0].Quantity)

	view := decodeScreen[dashboard.RecipesScreen](t, rec)
	assert.Equal(t, string(dashboard.StateLoaded), view.State)
	assert.Len(t, view.Data.Groups, 1)
}

func TestCreateRecipe_OverlappingScreenLoadStillSaves(t *testing.T) {
	f := newFixture(t)
	f.store.parkRecipes = true
	f.store.parked = make(chan struct{})
	f.store.release = make(chan struct{})

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		done <- f.do(http.MethodPost, "/dashboard/recipes?supplier_id=s1",
			`{"product_id":"p1","supplier_product_id":"sp1","quantity":"3"}`, "tok")
	}()

	<-f.store.parked
	get := f.do(http.MethodGet, "/dashboard/recipes?supplier_id=s1", "", "tok")
	require.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, string(dashboard.StateLoaded), decodeScreen[dashboard.RecipesScreen](t, get).State)
	close(f.store.release)

	post := <-done
	require.Equal(t, http.StatusOK, post.Code, post.Body.String())
	assert.Nil(t, decode(t, post).Error)

	view := decodeScreen[dashboard.RecipesScreen](t, post)
	assert.Equal(t, string(dashboard.StateLoaded), view.State)
	assert.Len(t, view.Data.Groups, 1)

	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	assert.Len(t, f.store.created, 1)
}

func TestCreateRecipe_BadQuantityNeverReachesCatalog(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/dashboard/recipes", `{"product_id":"p1","supplier_product_id":"sp1","quantity":"0"}`, "tok")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "quantity", decode(t, rec).Error.Details[0].Field)
	assert.Empty(t, f.store.created)
}

func TestCreateRecipe_KeepsCatalogErrorCode(t *testing.T) {
	f := newFixture(t)
	f.store.saveErr = &httpclient.StatusError{
		StatusCode: http.StatusUnprocessableEntity,
		Code:       "CROSS_SUPPLIER_RECIPE",
		Message:    "Supplier product belongs to another supplier",
	}

	rec := f.do(http.MethodPost, "/dashboard/recipes", `{"product_id":"p1","supplier_product_id":"sp2","quantity":1}`, "tok")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "CROSS_SUPPLIER_RECIPE", body.Error.Code)
	assert.Equal(t, "Supplier product belongs to another supplier", body.Error.Message)
}

func TestReplaceRecipe_EmptyRowsClearRecipe(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/dashboard/recipes/products/p1", `{"rows":[{"supplier_product_id":"","quantity":"2"}]}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, f.store.replaced, 1)
	assert.Equal(t, "p1", f.store.replaced[0].ProductID)
	assert.NotNil(t, f.store.replaced[0].Items)
	assert.Empty(t, f.store.replaced[0].Items)
}

func TestUpdateRecipe_RejectsBadQuantity(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/dashboard/recipes/r1", `{"quantity":"abc"}`, "tok")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = f.do(http.MethodPut, "/dashboard/recipes/r1", `{"quantity":4}`, "tok")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitOrder(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/dashboard/transactions",
		`{"supplier_id":"s1","product_id":"p1","destination":"08123","ref_id":"ORDER-1"}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out orderResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, "trx-1", out.Result.TrxID)
	assert.Equal(t, "s1", out.Form.SupplierID)
	assert.Empty(t, out.Form.ProductID)
	assert.Empty(t, out.Form.Destination)
	assert.NotEqual(t, "ORDER-1", out.Form.RefID)

	require.Len(t, f.store.orders, 1)
	assert.Equal(t, "ORDER-1", f.store.orders[0].RefID)
}

func TestSubmitOrder_RejectedKeyKeepsSession(t *testing.T) {
	f := newFixture(t)
	f.store.orderErr = &httpclient.StatusError{StatusCode: http.StatusUnauthorized, Message: "Invalid API key"}

	rec := f.do(http.MethodPost, "/dashboard/transactions",
		`{"supplier_id":"s1","product_id":"p1","destination":"08123","ref_id":"ORDER-1"}`, "tok")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	assert.Equal(t, "Invalid API key", body.Error.Message)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSubmitOrder_MissingProduct(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/dashboard/transactions", `{"supplier_id":"s1","ref_id":"ORDER-1"}`, "tok")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "product_id", decode(t, rec).Error.Details[0].Field)
	assert.Empty(t, f.store.orders)
}

func TestTransactionScreen_RestoresForm(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/dashboard/transactions?supplier_id=s1&product_id=p1&ref_id=ORDER-7", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeScreen[dashboard.TransactionScreen](t, rec)
	assert.Equal(t, string(dashboard.StateLoaded), view.State)
	assert.Contains(t, rec.Body.String(), `"ORDER-7"`)
}
