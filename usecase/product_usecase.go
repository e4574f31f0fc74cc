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

// ProductUseCase manages sellable products
type ProductUseCase interface {
	List(ctx context.Context, supplierID string) ([]catalog.ProductResponse, error)
	Get(ctx context.Context, id string) (*catalog.ProductResponse, error)
	Create(ctx context.Context, req catalog.ProductRequest) (*catalog.ProductResponse, error)
	Update(ctx context.Context, id string, req catalog.ProductRequest) (*catalog.ProductResponse, error)
	// Delete removes the product together with its recipe
	Delete(ctx context.Context, id string) error
}

type productUseCase struct {
	supplierRepo repository.Supplier
	productRepo  repository.Product
	logger       logger.LoggerInterface
}

// NewProductUseCase creates a new instance of productUseCase
func NewProductUseCase(supplierRepo repository.Supplier, productRepo repository.Product, appLogger logger.LoggerInterface) ProductUseCase {
	return &productUseCase{supplierRepo: supplierRepo, productRepo: productRepo, logger: appLogger}
}

func (uc *productUseCase) List(ctx context.Context, supplierID string) ([]catalog.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	out := make([]catalog.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productToResponse(p))
	}
	return out, nil
}

func (uc *productUseCase) Get(ctx context.Context, id string) (*catalog.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("error retrieving product: %w", err)
	}
	resp := productToResponse(product)
	return &resp, nil
}

func (uc *productUseCase) Create(ctx context.Context, req catalog.ProductRequest) (*catalog.ProductResponse, error) {
	uc.logger.InfoContext(ctx, "Creating product", "supplier_id", req.SupplierID, "name", req.Name)
	if err := requireSupplier(ctx, uc.supplierRepo, req.SupplierID); err != nil {
		uc.logger.WarnContext(ctx, "Product for unknown supplier", "supplier_id", req.SupplierID)
		return nil, err
	}

	product := &model.Product{
		SupplierID: req.SupplierID,
		Name:       strings.TrimSpace(req.Name),
		Denom:      req.Denom,
		Price:      req.Price,
		Qty:        req.Qty,
		Status:     statusOr(req.Status, true),
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("error creating product: %w", err)
	}

	resp := productToResponse(product)
	return &resp, nil
}

func (uc *productUseCase) Update(ctx context.Context, id string, req catalog.ProductRequest) (*catalog.ProductResponse, error) {
	uc.logger.InfoContext(ctx, "Updating product", "id", id)
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("error retrieving product: %w", err)
	}

	if req.SupplierID != product.SupplierID {
		if err := requireSupplier(ctx, uc.supplierRepo, req.SupplierID); err != nil {
			return nil, err
		}
	}

	product.SupplierID = req.SupplierID
	product.Name = strings.TrimSpace(req.Name)
	product.Denom = req.Denom
	product.Price = req.Price
	product.Qty = req.Qty
	product.Status = statusOr(req.Status, product.Status)

	if err := uc.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	resp := productToResponse(product)
	return &resp, nil
}

func (uc *productUseCase) Delete(ctx context.Context, id string) error {
	uc.logger.InfoContext(ctx, "Deleting product", "id", id)
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return domain.ErrProductNotFound
		case errors.Is(err, domain.ErrForeignKey):
			return domain.ErrProductInUse
		}
		return fmt.Errorf("error deleting product: %w", err)
	}
	return nil
}
