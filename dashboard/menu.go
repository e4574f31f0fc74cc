package dashboard

import "github.com/izaldotcom/gerbang-backoffice/contracts/catalog"

// MenuItem is one sidebar link
type MenuItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// MenuGroup is a titled block of sidebar links
type MenuGroup struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}

var (
	itemDashboard        = MenuItem{Name: "Dashboard", Href: "/dashboard"}
	itemNewTransaction   = MenuItem{Name: "New Transaction", Href: "/dashboard/transactions"}
	itemProducts         = MenuItem{Name: "Products", Href: "/dashboard/products"}
	itemSuppliers        = MenuItem{Name: "Suppliers", Href: "/dashboard/suppliers"}
	itemSupplierProducts = MenuItem{Name: "Supplier Products", Href: "/dashboard/suppliers/products"}
	itemRecipes          = MenuItem{Name: "Product Recipes", Href: "/dashboard/recipes"}
)

var baseMenu = []MenuGroup{
	{Title: "Main", Items: []MenuItem{itemDashboard, itemNewTransaction}},
	{Title: "Data Management", Items: []MenuItem{itemProducts, itemSuppliers, itemSupplierProducts, itemRecipes}},
}

var roleMenu = map[string]map[string]bool{
	catalog.RoleAdmin: {
		itemDashboard.Href:        true,
		itemProducts.Href:         true,
		itemSuppliers.Href:        true,
		itemSupplierProducts.Href: true,
		itemRecipes.Href:          true,
	},
	catalog.RoleCustomer: {
		itemDashboard.Href:      true,
		itemNewTransaction.Href: true,
		itemProducts.Href:       true,
	},
}

// MenuFor filters the sidebar for a role. It only decides what is shown;
// the catalog service enforces access on its own. Unknown roles get an
// empty menu and empty groups are left out.
func MenuFor(role string) []MenuGroup {
	allowed := roleMenu[role]
	menu := []MenuGroup{}
	for _, group := range baseMenu {
		var items []MenuItem
		for _, item := range group.Items {
			if allowed[item.Href] {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			menu = append(menu, MenuGroup{Title: group.Title, Items: items})
		}
	}
	return menu
}
