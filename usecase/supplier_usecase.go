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

// SupplierUseCase defines the supplier management operations
type SupplierUseCase interface {
	List(ctx context.Context) ([]catalog.SupplierResponse, error)
	Create(ctx context.Context, req catalog.SupplierRequest) (*catalog.SupplierResponse, error)
	Update(ctx context.Context, id string, req catalog.SupplierRequest) (*catalog.SupplierResponse, error)
	// Delete fails with a conflict while products still reference the supplier
	Delete(ctx context.Context, id string) error
}

type supplierUseCase struct {
	supplierRepo repository.Supplier
	logger       logger.LoggerInterface
}

// NewSupplierUseCase creates a new instance of supplierUseCase
func NewSupplierUseCase(supplierRepo repository.Supplier, appLogger logger.LoggerInterface) SupplierUseCase {
	return &supplierUseCase{supplierRepo: supplierRepo, logger: appLogger}
}

func (uc *supplierUseCase) List(ctx context.Context) ([]catalog.SupplierResponse, error) {
	suppliers, err := uc.supplierRepo.List(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error listing suppliers", "error", err)
		return nil, fmt.Errorf("error listing suppliers: %w", err)
	}
	out := make([]catalog.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, supplierToResponse(s))
	}
	return out, nil
}

func (uc *supplierUseCase) Create(ctx context.Context, req catalog.SupplierRequest) (*catalog.SupplierResponse, error) {
	code := strings.TrimSpace(req.Code)
	uc.logger.InfoContext(ctx, "Creating supplier", "code", code)

	if _, err := uc.supplierRepo.GetByCode(ctx, code); err == nil {
		uc.logger.WarnContext(ctx, "Supplier code already exists", "code", code)
		return nil, domain.ErrSupplierCodeAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("error checking supplier code: %w", err)
	}

	supplierType := strings.TrimSpace(req.Type)
	if supplierType == "" {
		supplierType = model.DefaultSupplierType
	}

	supplier := &model.Supplier{
		Name:   strings.TrimSpace(req.Name),
		Code:   code,
		Type:   supplierType,
		Status: statusOr(req.Status, true),
	}
	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.ErrSupplierCodeAlreadyExists
		}
		return nil, fmt.Errorf("error creating supplier: %w", err)
	}

	resp := supplierToResponse(supplier)
	return &resp, nil
}

func (uc *supplierUseCase) Update(ctx context.Context, id string, req catalog.SupplierRequest) (*catalog.SupplierResponse, error) {
	uc.logger.InfoContext(ctx, "Updating supplier", "id", id)

	supplier, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("error retrieving supplier: %w", err)
	}

	code := strings.TrimSpace(req.Code)
	if code != supplier.Code {
		if other, err := uc.supplierRepo.GetByCode(ctx, code); err == nil && other.ID != supplier.ID {
			uc.logger.WarnContext(ctx, "Supplier code already exists", "code", code)
			return nil, domain.ErrSupplierCodeAlreadyExists
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("error checking supplier code: %w", err)
		}
	}

	supplier.Name = strings.TrimSpace(req.Name)
	supplier.Code = code
	if t := strings.TrimSpace(req.Type); t != "" {
		supplier.Type = t
	}
	supplier.Status = statusOr(req.Status, supplier.Status)

	if err := uc.supplierRepo.Update(ctx, supplier); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrSupplierNotFound
		case errors.Is(err, domain.ErrDuplicateKey):
			return nil, domain.ErrSupplierCodeAlreadyExists
		}
		return nil, fmt.Errorf("error updating supplier: %w", err)
	}

	resp := supplierToResponse(supplier)
	return &resp, nil
}

func (uc *supplierUseCase) Delete(ctx context.Context, id string) error {
	uc.logger.InfoContext(ctx, "Deleting supplier", "id", id)
	if err := uc.supplierRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return domain.ErrSupplierNotFound
		case errors.Is(err, domain.ErrForeignKey):
			return domain.ErrSupplierInUse
		}
		return fmt.Errorf("error deleting supplier: %w", err)
	}
	return nil
}
