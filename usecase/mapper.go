package usecase

import (
	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
)

func profileToResponse(p *model.Profile) *catalog.UserResponse {
	return &catalog.UserResponse{
		ID:       p.ID,
		RoleID:   p.RoleID,
		RoleName: p.RoleName,
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Status:   p.Status,
	}
}

func supplierToResponse(s *model.Supplier) catalog.SupplierResponse {
	return catalog.SupplierResponse{
		ID:     s.ID,
		Name:   s.Name,
		Code:   s.Code,
		Type:   s.Type,
		Status: s.Status,
	}
}

func supplierProductToResponse(p *model.SupplierProduct) catalog.SupplierProductResponse {
	return catalog.SupplierProductResponse{
		ID:                p.ID,
		SupplierID:        p.SupplierID,
		SupplierProductID: p.SupplierProductID,
		Name:              p.Name,
		Denom:             p.Denom,
		CostPrice:         p.CostPrice,
		Price:             p.Price,
		Status:            p.Status,
	}
}

func productToResponse(p *model.Product) catalog.ProductResponse {
	return catalog.ProductResponse{
		ID:         p.ID,
		SupplierID: p.SupplierID,
		Name:       p.Name,
		Denom:      p.Denom,
		Price:      p.Price,
		Qty:        p.Qty,
		Status:     p.Status,
	}
}

func recipeItemsToResponse(items []*model.RecipeItem) []catalog.RecipeItemResponse {
	out := make([]catalog.RecipeItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, catalog.RecipeItemResponse{
			ID:                item.ID,
			ProductID:         item.ProductID,
			SupplierProductID: item.SupplierProductID,
			Quantity:          item.Quantity,
		})
	}
	return out
}

// statusOr returns *status, or fallback when the request left it out
func statusOr(status *bool, fallback bool) bool {
	if status == nil {
		return fallback
	}
	return *status
}
