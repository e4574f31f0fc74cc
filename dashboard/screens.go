package dashboard

import (
	"context"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
)

// Session is what the layout needs on every screen
type Session struct {
	Profile *catalog.UserResponse `json:"profile"`
	Menu    []MenuGroup           `json:"menu"`
}

func isAdmin(profile *catalog.UserResponse) bool {
	return profile != nil && profile.RoleName == catalog.RoleAdmin
}

// LoadSession fetches the caller's profile and builds the menu for its role
func LoadSession(ctx context.Context, store CatalogStore) (Session, error) {
	profile, err := store.Profile(ctx)
	if err != nil {
		return Session{}, err
	}
	return Session{Profile: profile, Menu: MenuFor(profile.RoleName)}, nil
}

// SummaryData backs the dashboard home. Stats is set for Admin only;
// other roles just get a greeting.
type SummaryData struct {
	Session
	Stats *catalog.DashboardSummary `json:"stats,omitempty"`
}

func LoadSummary(ctx context.Context, store CatalogStore) (SummaryData, error) {
	session, err := LoadSession(ctx, store)
	if err != nil {
		return SummaryData{}, err
	}
	data := SummaryData{Session: session}
	if !isAdmin(session.Profile) {
		return data, nil
	}

	var products []catalog.ProductResponse
	var suppliers []catalog.SupplierResponse
	var items []catalog.RecipeItemResponse
	err = FetchAll(ctx,
		into(&products, store.ListProducts),
		into(&suppliers, store.ListSuppliers),
		into(&items, store.ListRecipeItems),
	)
	if err != nil {
		return SummaryData{}, err
	}

	data.Stats = &catalog.DashboardSummary{
		Products:  len(products),
		Suppliers: len(suppliers),
		Recipes:   len(GroupByProduct(items, products)),
	}
	return data, nil
}

// ProductsData is everything the products screen fetches
type ProductsData struct {
	Profile   *catalog.UserResponse
	Suppliers []catalog.SupplierResponse
	Products  []catalog.ProductResponse
}

func LoadProducts(ctx context.Context, store CatalogStore) (ProductsData, error) {
	var data ProductsData
	err := FetchAll(ctx,
		into(&data.Products, store.ListProducts),
		into(&data.Suppliers, store.ListSuppliers),
		into(&data.Profile, store.Profile),
	)
	return data, err
}

// ProductsScreen is the products screen for one supplier selection
type ProductsScreen struct {
	Suppliers []catalog.SupplierResponse `json:"suppliers"`
	Selected  SupplierSelection          `json:"selected_supplier_id"`
	Products  []catalog.ProductResponse  `json:"products"`
	CanManage bool                       `json:"can_manage"`
}

func (d ProductsData) Screen(selected SupplierSelection) ProductsScreen {
	return ProductsScreen{
		Suppliers: nonNil(d.Suppliers),
		Selected:  selected,
		Products:  FilterProductsBySupplier(d.Products, selected),
		CanManage: isAdmin(d.Profile),
	}
}

// SuppliersScreen lists every supplier
type SuppliersScreen struct {
	Suppliers []catalog.SupplierResponse `json:"suppliers"`
}

func LoadSuppliers(ctx context.Context, store CatalogStore) (SuppliersScreen, error) {
	suppliers, err := store.ListSuppliers(ctx)
	if err != nil {
		return SuppliersScreen{}, err
	}
	return SuppliersScreen{Suppliers: nonNil(suppliers)}, nil
}

// SupplierProductsData is everything the supplier products screen fetches
type SupplierProductsData struct {
	Suppliers        []catalog.SupplierResponse
	SupplierProducts []catalog.SupplierProductResponse
}

func LoadSupplierProducts(ctx context.Context, store CatalogStore) (SupplierProductsData, error) {
	var data SupplierProductsData
	err := FetchAll(ctx,
		into(&data.Suppliers, store.ListSuppliers),
		into(&data.SupplierProducts, store.ListSupplierProducts),
	)
	return data, err
}

type SupplierProductsScreen struct {
	Suppliers        []catalog.SupplierResponse        `json:"suppliers"`
	Selected         SupplierSelection                 `json:"selected_supplier_id"`
	SupplierProducts []catalog.SupplierProductResponse `json:"supplier_products"`
}

func (d SupplierProductsData) Screen(selected SupplierSelection) SupplierProductsScreen {
	return SupplierProductsScreen{
		Suppliers:        nonNil(d.Suppliers),
		Selected:         selected,
		SupplierProducts: FilterSupplierProductsBySupplier(d.SupplierProducts, selected),
	}
}

// RecipesData is everything the recipes screen fetches
type RecipesData struct {
	Items            []catalog.RecipeItemResponse
	Products         []catalog.ProductResponse
	SupplierProducts []catalog.SupplierProductResponse
	Suppliers        []catalog.SupplierResponse
}

func LoadRecipes(ctx context.Context, store CatalogStore) (RecipesData, error) {
	var data RecipesData
	err := FetchAll(ctx,
		into(&data.Items, store.ListRecipeItems),
		into(&data.Products, store.ListProducts),
		into(&data.SupplierProducts, store.ListSupplierProducts),
		into(&data.Suppliers, store.ListSuppliers),
	)
	return data, err
}

// RecipesScreen shows the recipe groups of the selected supplier together
// with the choices its forms offer
type RecipesScreen struct {
	Suppliers []catalog.SupplierResponse `json:"suppliers"`
	Selected  SupplierSelection          `json:"selected_supplier_id"`
	Groups    []RecipeGroup              `json:"groups"`
	// Products and SupplierProducts feed the create and manage forms
	Products         []catalog.ProductResponse         `json:"products"`
	SupplierProducts []catalog.SupplierProductResponse `json:"supplier_products"`
}

func (d RecipesData) Screen(selected SupplierSelection) RecipesScreen {
	return RecipesScreen{
		Suppliers:        nonNil(d.Suppliers),
		Selected:         selected,
		Groups:           FilterGroupsBySupplier(GroupByProduct(d.Items, d.Products), d.Products, selected),
		Products:         FilterProductsBySupplier(d.Products, selected),
		SupplierProducts: FilterSupplierProductsBySupplier(d.SupplierProducts, selected),
	}
}

// Group returns the group of productID, or an empty group when the product
// has no lines
func (d RecipesData) Group(productID string) RecipeGroup {
	for _, g := range GroupByProduct(d.Items, d.Products) {
		if g.ProductID == productID {
			return g
		}
	}
	return RecipeGroup{ProductID: productID}
}

// Item finds a recipe line by id
func (d RecipesData) Item(id string) (catalog.RecipeItemResponse, bool) {
	for _, item := range d.Items {
		if item.ID == id {
			return item, true
		}
	}
	return catalog.RecipeItemResponse{}, false
}

// TransactionData is everything the new-transaction screen fetches
type TransactionData struct {
	Suppliers []catalog.SupplierResponse
	Products  []catalog.ProductResponse
}

func LoadTransaction(ctx context.Context, store CatalogStore) (TransactionData, error) {
	var data TransactionData
	err := FetchAll(ctx,
		into(&data.Suppliers, store.ListSuppliers),
		into(&data.Products, store.ListProducts),
	)
	return data, err
}

// TransactionScreen is the order form and the products it may pick from
type TransactionScreen struct {
	Suppliers []catalog.SupplierResponse `json:"suppliers"`
	Products  []catalog.ProductResponse  `json:"products"`
	Form      OrderForm                  `json:"form"`
}

// Screen renders the submitter's current form
func (d TransactionData) Screen(s *Submitter) TransactionScreen {
	return TransactionScreen{
		Suppliers: nonNil(d.Suppliers),
		Products:  s.AvailableProducts(),
		Form:      s.Form(),
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// into adapts a list call to FetchAll, storing its result in dst
func into[T any](dst *T, fetch func(ctx context.Context) (T, error)) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		v, err := fetch(ctx)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}
