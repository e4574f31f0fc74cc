package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
	"github.com/izaldotcom/gerbang-backoffice/domain/repository"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// OrderUseCase accepts seller orders
type OrderUseCase interface {
	// Submit checks the API key, validates the product and its recipe and
	// stores a pending transaction. Resubmitting a ref id with the same
	// payload returns the stored transaction.
	Submit(ctx context.Context, apiKey string, req catalog.OrderRequest) (*catalog.OrderResponse, error)
}

// OrderConfig holds the seller credentials checked by Submit
type OrderConfig struct {
	APIKey string
	Seller string
}

type orderUseCase struct {
	config      OrderConfig
	productRepo repository.Product
	recipeRepo  repository.RecipeItem
	trxRepo     repository.Transaction
	publisher   repository.OrderEventPublisher
	logger      logger.LoggerInterface
}

// NewOrderUseCase creates a new instance of orderUseCase
func NewOrderUseCase(
	config OrderConfig,
	productRepo repository.Product,
	recipeRepo repository.RecipeItem,
	trxRepo repository.Transaction,
	publisher repository.OrderEventPublisher,
	appLogger logger.LoggerInterface,
) OrderUseCase {
	return &orderUseCase{
		config:      config,
		productRepo: productRepo,
		recipeRepo:  recipeRepo,
		trxRepo:     trxRepo,
		publisher:   publisher,
		logger:      appLogger,
	}
}

func (uc *orderUseCase) authorized(apiKey string) bool {
	if uc.config.APIKey == "" || apiKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(uc.config.APIKey), []byte(apiKey)) == 1
}

func (uc *orderUseCase) Submit(ctx context.Context, apiKey string, req catalog.OrderRequest) (*catalog.OrderResponse, error) {
	if !uc.authorized(apiKey) {
		uc.logger.WarnContext(ctx, "Order with invalid api key", "ref_id", req.RefID)
		return nil, domain.ErrInvalidAPIKey
	}
	uc.logger.InfoContext(ctx, "Order received", "ref_id", req.RefID, "product_id", req.ProductID)

	if resp, err := uc.replay(ctx, req); resp != nil || err != nil {
		return resp, err
	}

	product, err := uc.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Order for unknown product", "product_id", req.ProductID)
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("error retrieving product: %w", err)
	}
	if product.SupplierID != req.SupplierID {
		uc.logger.WarnContext(ctx, "Order supplier mismatch", "product_id", product.ID, "supplier_id", req.SupplierID)
		return nil, domain.ErrProductSupplierMismatch
	}
	if !product.Status {
		uc.logger.WarnContext(ctx, "Order for inactive product", "product_id", product.ID)
		return nil, domain.ErrProductInactive
	}

	lines, err := uc.recipeRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recipe: %w", err)
	}
	if len(lines) == 0 {
		uc.logger.WarnContext(ctx, "Order for product without recipe", "product_id", product.ID)
		return nil, domain.ErrEmptyRecipe
	}
	quantityLoop := 0
	for _, line := range lines {
		quantityLoop += line.Quantity
	}

	trx := &model.Transaction{
		RefID:        req.RefID,
		SupplierID:   req.SupplierID,
		ProductID:    product.ID,
		Destination:  req.Destination,
		QuantityLoop: quantityLoop,
		Status:       model.TransactionStatusPending,
		Seller:       uc.config.Seller,
	}
	if err := uc.trxRepo.Create(ctx, trx); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			// a concurrent submission with the same ref id won the insert
			if resp, err := uc.replay(ctx, req); resp != nil || err != nil {
				return resp, err
			}
		}
		uc.logger.ErrorContext(ctx, "Error storing transaction", "ref_id", req.RefID, "error", err)
		return nil, fmt.Errorf("error storing transaction: %w", err)
	}

	// The order is stored; a lost event is logged, not reported to the seller
	if err := uc.publisher.PublishOrderCreated(ctx, trx, product.Name); err != nil {
		uc.logger.WarnContext(ctx, "Order stored without event", "trx_id", trx.ID, "error", err)
	}

	uc.logger.InfoContext(ctx, "Order accepted", "trx_id", trx.ID, "ref_id", trx.RefID, "quantity_loop", quantityLoop)
	return &catalog.OrderResponse{
		TrxID:        trx.ID,
		Product:      product.Name,
		Status:       trx.Status,
		QuantityLoop: trx.QuantityLoop,
	}, nil
}

// replay answers a ref id that was already used. It returns nil, nil when
// the ref id is new.
func (uc *orderUseCase) replay(ctx context.Context, req catalog.OrderRequest) (*catalog.OrderResponse, error) {
	existing, err := uc.trxRepo.GetByRefID(ctx, req.RefID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error checking ref id: %w", err)
	}

	if !existing.SamePayload(req.SupplierID, req.ProductID, req.Destination) {
		uc.logger.WarnContext(ctx, "Ref id reused for a different order", "ref_id", req.RefID, "trx_id", existing.ID)
		return nil, domain.ErrRefIDConflict
	}

	productName := ""
	if product, err := uc.productRepo.GetByID(ctx, existing.ProductID); err == nil {
		productName = product.Name
	}

	uc.logger.InfoContext(ctx, "Order replayed", "ref_id", req.RefID, "trx_id", existing.ID)
	return &catalog.OrderResponse{
		TrxID:        existing.ID,
		Product:      productName,
		Status:       existing.Status,
		QuantityLoop: existing.QuantityLoop,
	}, nil
}
