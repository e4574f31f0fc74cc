package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
	"github.com/izaldotcom/gerbang-backoffice/domain/repository"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// RecipeUseCase maintains product compositions. A product has at most one
// line per supplier product, and every line must come from the product's
// own supplier.
type RecipeUseCase interface {
	// List returns every recipe line as a flat list
	List(ctx context.Context) ([]catalog.RecipeItemResponse, error)
	// Create adds lines to a product's recipe; an existing line grows by the
	// requested quantity
	Create(ctx context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error)
	// UpdateQuantity sets the quantity of one line
	UpdateQuantity(ctx context.Context, req catalog.UpdateRecipeItemRequest) (*catalog.RecipeItemResponse, error)
	// Replace swaps the whole recipe atomically; an empty item list clears it
	Replace(ctx context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error)
	Delete(ctx context.Context, id string) error
}

type recipeUseCase struct {
	productRepo         repository.Product
	supplierProductRepo repository.SupplierProduct
	recipeRepo          repository.RecipeItem
	transactor          repository.Transactor
	logger              logger.LoggerInterface
}

// NewRecipeUseCase creates a new instance of recipeUseCase
func NewRecipeUseCase(
	productRepo repository.Product,
	supplierProductRepo repository.SupplierProduct,
	recipeRepo repository.RecipeItem,
	transactor repository.Transactor,
	appLogger logger.LoggerInterface,
) RecipeUseCase {
	return &recipeUseCase{
		productRepo:         productRepo,
		supplierProductRepo: supplierProductRepo,
		recipeRepo:          recipeRepo,
		transactor:          transactor,
		logger:              appLogger,
	}
}

func (uc *recipeUseCase) List(ctx context.Context) ([]catalog.RecipeItemResponse, error) {
	items, err := uc.recipeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing recipe items: %w", err)
	}
	return recipeItemsToResponse(items), nil
}

// mergedLine is one supplier product with the summed quantity of every
// request row naming it
type mergedLine struct {
	supplierProductID string
	quantity          int
}

// mergeLines sums duplicate supplier products, keeping first-seen order
func mergeLines(lines []catalog.RecipeLine) ([]mergedLine, error) {
	index := make(map[string]int, len(lines))
	merged := make([]mergedLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		if i, ok := index[line.SupplierProductID]; ok {
			merged[i].quantity += line.Quantity
			continue
		}
		index[line.SupplierProductID] = len(merged)
		merged = append(merged, mergedLine{supplierProductID: line.SupplierProductID, quantity: line.Quantity})
	}
	return merged, nil
}

// prepare loads the product and checks that every line names an existing
// supplier product of the product's supplier
func (uc *recipeUseCase) prepare(ctx context.Context, req catalog.BulkRecipeRequest) ([]mergedLine, error) {
	product, err := uc.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Recipe for unknown product", "product_id", req.ProductID)
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("error retrieving product: %w", err)
	}

	lines, err := mergeLines(req.Items)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return lines, nil
	}

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.supplierProductID)
	}
	found, err := uc.supplierProductRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving supplier products: %w", err)
	}
	bySupplier := make(map[string]string, len(found))
	for _, sp := range found {
		bySupplier[sp.ID] = sp.SupplierID
	}

	for _, id := range ids {
		supplierID, ok := bySupplier[id]
		if !ok {
			uc.logger.WarnContext(ctx, "Recipe names unknown supplier product", "supplier_product_id", id)
			return nil, domain.ErrSupplierProductNotFound
		}
		if supplierID != product.SupplierID {
			uc.logger.WarnContext(ctx, "Cross-supplier recipe rejected",
				"product_id", product.ID, "product_supplier", product.SupplierID,
				"supplier_product_id", id, "line_supplier", supplierID)
			return nil, domain.ErrCrossSupplierRecipe
		}
	}
	return lines, nil
}

func (uc *recipeUseCase) Create(ctx context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error) {
	uc.logger.InfoContext(ctx, "Adding recipe items", "product_id", req.ProductID, "rows", len(req.Items))

	lines, err := uc.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrRecipeItemsRequired
	}

	var result []*model.RecipeItem
	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var fresh []*model.RecipeItem
		for _, line := range lines {
			existing, err := uc.recipeRepo.GetLine(ctx, req.ProductID, line.supplierProductID)
			switch {
			case err == nil:
				if err := uc.recipeRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity+line.quantity); err != nil {
					return err
				}
			case errors.Is(err, domain.ErrNotFound):
				fresh = append(fresh, &model.RecipeItem{
					ProductID:         req.ProductID,
					SupplierProductID: line.supplierProductID,
					Quantity:          line.quantity,
				})
			default:
				return err
			}
		}
		if err := uc.recipeRepo.CreateBatch(ctx, fresh); err != nil {
			return err
		}

		var err error
		result, err = uc.recipeRepo.ListByProduct(ctx, req.ProductID)
		return err
	})
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error adding recipe items", "product_id", req.ProductID, "error", err)
		return nil, fmt.Errorf("error adding recipe items: %w", err)
	}

	uc.logger.InfoContext(ctx, "Recipe items added", "product_id", req.ProductID, "lines", len(result))
	return recipeItemsToResponse(result), nil
}

func (uc *recipeUseCase) UpdateQuantity(ctx context.Context, req catalog.UpdateRecipeItemRequest) (*catalog.RecipeItemResponse, error) {
	if req.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	item, err := uc.recipeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRecipeItemNotFound
		}
		return nil, fmt.Errorf("error retrieving recipe item: %w", err)
	}

	if err := uc.recipeRepo.UpdateQuantity(ctx, item.ID, req.Quantity); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRecipeItemNotFound
		}
		return nil, fmt.Errorf("error updating recipe item: %w", err)
	}
	item.Quantity = req.Quantity

	resp := recipeItemsToResponse([]*model.RecipeItem{item})[0]
	return &resp, nil
}

func (uc *recipeUseCase) Replace(ctx context.Context, req catalog.BulkRecipeRequest) ([]catalog.RecipeItemResponse, error) {
	uc.logger.InfoContext(ctx, "Replacing recipe", "product_id", req.ProductID, "rows", len(req.Items))

	lines, err := uc.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	items := make([]*model.RecipeItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, &model.RecipeItem{
			ProductID:         req.ProductID,
			SupplierProductID: line.supplierProductID,
			Quantity:          line.quantity,
		})
	}

	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.recipeRepo.DeleteByProduct(ctx, req.ProductID); err != nil {
			return err
		}
		return uc.recipeRepo.CreateBatch(ctx, items)
	})
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error replacing recipe", "product_id", req.ProductID, "error", err)
		return nil, fmt.Errorf("error replacing recipe: %w", err)
	}

	uc.logger.InfoContext(ctx, "Recipe replaced", "product_id", req.ProductID, "lines", len(items))
	return recipeItemsToResponse(items), nil
}

func (uc *recipeUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.recipeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrRecipeItemNotFound
		}
		return fmt.Errorf("error deleting recipe item: %w", err)
	}
	return nil
}
