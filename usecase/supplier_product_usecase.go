package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
	"github.com/izaldotcom/gerbang-backoffice/domain/repository"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// SupplierProductUseCase manages the items of suppliers' own catalogs
type SupplierProductUseCase interface {
	// List returns all supplier products, or the ones of supplierID when set
	List(ctx context.Context, supplierID string) ([]catalog.SupplierProductResponse, error)
	Create(ctx context.Context, req catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error)
	Update(ctx context.Context, id string, req catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error)
	Delete(ctx context.Context, id string) error
}

type supplierProductUseCase struct {
	supplierRepo repository.Supplier
	productRepo  repository.SupplierProduct
	logger       logger.LoggerInterface
}

// NewSupplierProductUseCase creates a new instance of supplierProductUseCase
func NewSupplierProductUseCase(supplierRepo repository.Supplier, productRepo repository.SupplierProduct, appLogger logger.LoggerInterface) SupplierProductUseCase {
	return &supplierProductUseCase{supplierRepo: supplierRepo, productRepo: productRepo, logger: appLogger}
}

func (uc *supplierProductUseCase) List(ctx context.Context, supplierID string) ([]catalog.SupplierProductResponse, error) {
	products, err := uc.productRepo.List(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("error listing supplier products: %w", err)
	}
	out := make([]catalog.SupplierProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, supplierProductToResponse(p))
	}
	return out, nil
}

func (uc *supplierProductUseCase) Create(ctx context.Context, req catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error) {
	if err := requireSupplier(ctx, uc.supplierRepo, req.SupplierID); err != nil {
		uc.logger.WarnContext(ctx, "Supplier product for unknown supplier", "supplier_id", req.SupplierID)
		return nil, err
	}

	product := &model.SupplierProduct{
		SupplierID:        req.SupplierID,
		SupplierProductID: strings.TrimSpace(req.SupplierProductID),
		Name:              strings.TrimSpace(req.Name),
		Denom:             req.Denom,
		CostPrice:         req.CostPrice,
		Price:             req.Price,
		Status:            statusOr(req.Status, true),
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			uc.logger.WarnContext(ctx, "Supplier product key taken", "supplier_id", req.SupplierID, "key", product.SupplierProductID)
			return nil, domain.ErrSupplierProductAlreadyExists
		}
		return nil, fmt.Errorf("error creating supplier product: %w", err)
	}

	resp := supplierProductToResponse(product)
	return &resp, nil
}

func (uc *supplierProductUseCase) Update(ctx context.Context, id string, req catalog.SupplierProductRequest) (*catalog.SupplierProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSupplierProductNotFound
		}
		return nil, fmt.Errorf("error retrieving supplier product: %w", err)
	}

	if req.SupplierID != product.SupplierID {
		if err := requireSupplier(ctx, uc.supplierRepo, req.SupplierID); err != nil {
			return nil, err
		}
	}

	product.SupplierID = req.SupplierID
	product.SupplierProductID = strings.TrimSpace(req.SupplierProductID)
	product.Name = strings.TrimSpace(req.Name)
	product.Denom = req.Denom
	product.CostPrice = req.CostPrice
	product.Price = req.Price
	product.Status = statusOr(req.Status, product.Status)

	if err := uc.productRepo.Update(ctx, product); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrSupplierProductNotFound
		case errors.Is(err, domain.ErrDuplicateKey):
			return nil, domain.ErrSupplierProductAlreadyExists
		}
		return nil, fmt.Errorf("error updating supplier product: %w", err)
	}

	resp := supplierProductToResponse(product)
	return &resp, nil
}

func (uc *supplierProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return domain.ErrSupplierProductNotFound
		case errors.Is(err, domain.ErrForeignKey):
			return domain.ErrSupplierProductInUse
		}
		return fmt.Errorf("error deleting supplier product: %w", err)
	}
	return nil
}

// requireSupplier maps a missing supplier onto domain.ErrSupplierNotFound
func requireSupplier(ctx context.Context, repo repository.Supplier, id string) error {
	if _, err := repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrSupplierNotFound
		}
		return fmt.Errorf("error retrieving supplier: %w", err)
	}
	return nil
}
