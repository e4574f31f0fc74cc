package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
	"github.com/oklog/ulid/v2"
)

// store backs every fake repository with plain maps
type store struct {
	roles            map[string]*model.Role
	users            map[string]*model.User
	suppliers        map[string]*model.Supplier
	supplierProducts map[string]*model.SupplierProduct
	products         map[string]*model.Product
	recipe           []*model.RecipeItem
	transactions     map[string]*model.Transaction
	profiles         map[string]*model.Profile
	events           []*model.Transaction
	publishErr       error
	txCalls          int
}

func newStore() *store {
	return &store{
		roles:            map[string]*model.Role{},
		users:            map[string]*model.User{},
		suppliers:        map[string]*model.Supplier{},
		supplierProducts: map[string]*model.SupplierProduct{},
		products:         map[string]*model.Product{},
		transactions:     map[string]*model.Transaction{},
		profiles:         map[string]*model.Profile{},
	}
}

func newID() string { return ulid.Make().String() }

type fakeRoles struct{ s *store }

func (f fakeRoles) Create(_ context.Context, role *model.Role) error {
	if role.ID == "" {
		role.ID = newID()
	}
	f.s.roles[role.ID] = role
	return nil
}

func (f fakeRoles) GetByID(_ context.Context, id string) (*model.Role, error) {
	if r, ok := f.s.roles[id]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f fakeRoles) GetByName(_ context.Context, name string) (*model.Role, error) {
	for _, r := range f.s.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f fakeRoles) List(_ context.Context) ([]*model.Role, error) {
	var out []*model.Role
	for _, r := range f.s.roles {
		out = append(out, r)
	}
	return out, nil
}

type fakeUsers struct{ s *store }

func (f fakeUsers) Create(_ context.Context, user *model.User) error {
	for _, u := range f.s.users {
		if u.Email == user.Email || u.Phone == user.Phone {
			return domain.ErrDuplicateKey
		}
	}
	user.ID = newID()
	f.s.users[user.ID] = user
	return nil
}

func (f fakeUsers) find(match func(*model.User) bool) (*model.User, error) {
	for _, u := range f.s.users {
		if match(u) {
			cp := *u
			cp.Role = *f.s.roles[u.RoleID]
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f fakeUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	return f.find(func(u *model.User) bool { return u.ID == id })
}

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return f.find(func(u *model.User) bool { return u.Email == email })
}

func (f fakeUsers) GetByPhone(_ context.Context, phone string) (*model.User, error) {
	return f.find(func(u *model.User) bool { return u.Phone == phone })
}

func (f fakeUsers) List(_ context.Context, offset, limit int) ([]*model.User, int, error) {
	var all []*model.User
	for _, u := range f.s.users {
		cp := *u
		cp.Role = *f.s.roles[u.RoleID]
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

type fakeProfiles struct{ s *store }

func (f fakeProfiles) Get(_ context.Context, userID string) (*model.Profile, error) {
	if p, ok := f.s.profiles[userID]; ok {
		return p, nil
	}
	return nil, domain.ErrCacheMiss
}

func (f fakeProfiles) Set(_ context.Context, p *model.Profile) error {
	f.s.profiles[p.ID] = p
	return nil
}

func (f fakeProfiles) Delete(_ context.Context, userID string) error {
	delete(f.s.profiles, userID)
	return nil
}

// fakeTokens is an in-memory refresh token store keyed by user then token id
type fakeTokens map[string]map[string]string

func (f fakeTokens) Save(_ context.Context, userID, tokenID, token string, _ time.Time) error {
	if f[userID] == nil {
		f[userID] = map[string]string{}
	}
	f[userID][tokenID] = token
	return nil
}

func (f fakeTokens) Get(_ context.Context, userID, tokenID string) (string, error) {
	token, ok := f[userID][tokenID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return token, nil
}

func (f fakeTokens) Delete(_ context.Context, userID, tokenID string) error {
	delete(f[userID], tokenID)
	return nil
}

func (f fakeTokens) DeleteAll(_ context.Context, userID string) error {
	delete(f, userID)
	return nil
}

type fakeSuppliers struct{ s *store }

func (f fakeSuppliers) Create(_ context.Context, supplier *model.Supplier) error {
	for _, s := range f.s.suppliers {
		if s.Code == supplier.Code {
			return domain.ErrDuplicateKey
		}
	}
	supplier.ID = newID()
	f.s.suppliers[supplier.ID] = supplier
	return nil
}

func (f fakeSuppliers) GetByID(_ context.Context, id string) (*model.Supplier, error) {
	if s, ok := f.s.suppliers[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f fakeSuppliers) GetByCode(_ context.Context, code string) (*model.Supplier, error) {
	for _, s := range f.s.suppliers {
		if s.Code == code {
			cp := *s
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f fakeSuppliers) List(_ context.Context) ([]*model.Supplier, error) {
	var out []*model.Supplier
	for _, s := range f.s.suppliers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f fakeSuppliers) Update(_ context.Context, supplier *model.Supplier) error {
	if _, ok := f.s.suppliers[supplier.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *supplier
	f.s.suppliers[supplier.ID] = &cp
	return nil
}

func (f fakeSuppliers) Delete(_ context.Context, id string) error {
	if _, ok := f.s.suppliers[id]; !ok {
		return domain.ErrNotFound
	}
	for _, p := range f.s.products {
		if p.SupplierID == id {
			return domain.ErrForeignKey
		}
	}
	delete(f.s.suppliers, id)
	return nil
}

type fakeSupplierProducts struct{ s *store }

func (f fakeSupplierProducts) Create(_ context.Context, p *model.SupplierProduct) error {
	for _, sp := range f.s.supplierProducts {
		if sp.SupplierID == p.SupplierID && sp.SupplierProductID == p.SupplierProductID {
			return domain.ErrDuplicateKey
		}
	}
	p.ID = newID()
	f.s.supplierProducts[p.ID] = p
	return nil
}

func (f fakeSupplierProducts) GetByID(_ context.Context, id string) (*model.SupplierProduct, error) {
	if p, ok := f.s.supplierProducts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f fakeSupplierProducts) GetByIDs(_ context.Context, ids []string) ([]*model.SupplierProduct, error) {
	var out []*model.SupplierProduct
	for _, id := range ids {
		if p, ok := f.s.supplierProducts[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakeSupplierProducts) List(_ context.Context, supplierID string) ([]*model.SupplierProduct, error) {
	var out []*model.SupplierProduct
	for _, p := range f.s.supplierProducts {
		if supplierID == "" || p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakeSupplierProducts) Update(_ context.Context, p *model.SupplierProduct) error {
	if _, ok := f.s.supplierProducts[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	f.s.supplierProducts[p.ID] = &cp
	return nil
}

func (f fakeSupplierProducts) Delete(_ context.Context, id string) error {
	if _, ok := f.s.supplierProducts[id]; !ok {
		return domain.ErrNotFound
	}
	for _, item := range f.s.recipe {
		if item.SupplierProductID == id {
			return domain.ErrForeignKey
		}
	}
	delete(f.s.supplierProducts, id)
	return nil
}

type fakeProducts struct{ s *store }

func (f fakeProducts) Create(_ context.Context, p *model.Product) error {
	p.ID = newID()
	f.s.products[p.ID] = p
	return nil
}

func (f fakeProducts) GetByID(_ context.Context, id string) (*model.Product, error) {
	if p, ok := f.s.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f fakeProducts) List(_ context.Context, supplierID string) ([]*model.Product, error) {
	var out []*model.Product
	for _, p := range f.s.products {
		if supplierID == "" || p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakeProducts) Update(_ context.Context, p *model.Product) error {
	if _, ok := f.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	f.s.products[p.ID] = &cp
	return nil
}

func (f fakeProducts) Delete(_ context.Context, id string) error {
	if _, ok := f.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.s.products, id)
	return nil
}

type fakeRecipe struct{ s *store }

func (f fakeRecipe) List(_ context.Context) ([]*model.RecipeItem, error) {
	return append([]*model.RecipeItem(nil), f.s.recipe...), nil
}

func (f fakeRecipe) ListByProduct(_ context.Context, productID string) ([]*model.RecipeItem, error) {
	var out []*model.RecipeItem
	for _, item := range f.s.recipe {
		if item.ProductID == productID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f fakeRecipe) GetByID(_ context.Context, id string) (*model.RecipeItem, error) {
	for _, item := range f.s.recipe {
		if item.ID == id {
			cp := *item
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f fakeRecipe) GetLine(_ context.Context, productID, supplierProductID string) (*model.RecipeItem, error) {
	for _, item := range f.s.recipe {
		if item.ProductID == productID && item.SupplierProductID == supplierProductID {
			cp := *item
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f fakeRecipe) CreateBatch(_ context.Context, items []*model.RecipeItem) error {
	for _, item := range items {
		for _, existing := range f.s.recipe {
			if existing.ProductID == item.ProductID && existing.SupplierProductID == item.SupplierProductID {
				return domain.ErrDuplicateKey
			}
		}
		item.ID = newID()
		f.s.recipe = append(f.s.recipe, item)
	}
	return nil
}

func (f fakeRecipe) UpdateQuantity(_ context.Context, id string, quantity int) error {
	for _, item := range f.s.recipe {
		if item.ID == id {
			item.Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f fakeRecipe) Delete(_ context.Context, id string) error {
	for i, item := range f.s.recipe {
		if item.ID == id {
			f.s.recipe = append(f.s.recipe[:i], f.s.recipe[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f fakeRecipe) DeleteByProduct(_ context.Context, productID string) error {
	kept := f.s.recipe[:0]
	for _, item := range f.s.recipe {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	f.s.recipe = kept
	return nil
}

type fakeTransactions struct{ s *store }

func (f fakeTransactions) Create(_ context.Context, trx *model.Transaction) error {
	if _, ok := f.s.transactions[trx.RefID]; ok {
		return domain.ErrDuplicateKey
	}
	trx.ID = newID()
	f.s.transactions[trx.RefID] = trx
	return nil
}

func (f fakeTransactions) GetByRefID(_ context.Context, refID string) (*model.Transaction, error) {
	if trx, ok := f.s.transactions[refID]; ok {
		return trx, nil
	}
	return nil, domain.ErrNotFound
}

type fakePublisher struct{ s *store }

func (f fakePublisher) PublishOrderCreated(_ context.Context, trx *model.Transaction, _ string) error {
	if f.s.publishErr != nil {
		return f.s.publishErr
	}
	f.s.events = append(f.s.events, trx)
	return nil
}

// fakeTransactor snapshots the recipe and restores it when fn fails
type fakeTransactor struct{ s *store }

func (f fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.s.txCalls++
	snapshot := make([]*model.RecipeItem, 0, len(f.s.recipe))
	for _, item := range f.s.recipe {
		cp := *item
		snapshot = append(snapshot, &cp)
	}
	if err := fn(ctx); err != nil {
		f.s.recipe = snapshot
		return err
	}
	return nil
}

// seedCatalog creates two suppliers with one product and two supplier
// products on the first and one supplier product on the second
type catalogFixture struct {
	supplierA, supplierB string
	product              string
	spA1, spA2, spB1     string
}

func seedCatalog(s *store) catalogFixture {
	fx := catalogFixture{
		supplierA: newID(), supplierB: newID(),
		product: newID(),
		spA1:    newID(), spA2: newID(), spB1: newID(),
	}
	s.suppliers[fx.supplierA] = &model.Supplier{ID: fx.supplierA, Name: "Alpha", Code: "A", Type: "official", Status: true}
	s.suppliers[fx.supplierB] = &model.Supplier{ID: fx.supplierB, Name: "Beta", Code: "B", Type: "official", Status: true}
	s.products[fx.product] = &model.Product{ID: fx.product, SupplierID: fx.supplierA, Name: "Diamond 86", Denom: 86, Price: 20000, Status: true}
	s.supplierProducts[fx.spA1] = &model.SupplierProduct{ID: fx.spA1, SupplierID: fx.supplierA, SupplierProductID: "ML5", Name: "5 Diamonds", Status: true}
	s.supplierProducts[fx.spA2] = &model.SupplierProduct{ID: fx.spA2, SupplierID: fx.supplierA, SupplierProductID: "ML11", Name: "11 Diamonds", Status: true}
	s.supplierProducts[fx.spB1] = &model.SupplierProduct{ID: fx.spB1, SupplierID: fx.supplierB, SupplierProductID: "ML5", Name: "5 Diamonds", Status: true}
	return fx
}
