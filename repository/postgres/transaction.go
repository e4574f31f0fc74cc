package postgres

import (
	"context"
	"fmt"

	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
	"github.com/izaldotcom/gerbang-backoffice/domain/repository"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type transactionRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewTransactionRepository creates a new instance of transactionRepository
func NewTransactionRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Transaction {
	return &transactionRepository{db: db, logger: logger}
}

func (r *transactionRepository) Create(ctx context.Context, trx *model.Transaction) error {
	r.logger.InfoContext(ctx, "Creating transaction", "ref_id", trx.RefID, "product_id", trx.ProductID)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(trx).Error; err != nil {
		err = translate(err)
		if isSentinel(err) {
			r.logger.WarnContext(ctx, "Transaction rejected by constraint", "ref_id", trx.RefID, "error", err)
			return err
		}
		r.logger.ErrorContext(ctx, "Failed to create transaction", "ref_id", trx.RefID, "error", err)
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	r.logger.InfoContext(ctx, "Transaction created successfully", "id", trx.ID, "ref_id", trx.RefID)
	return nil
}

func (r *transactionRepository) GetByRefID(ctx context.Context, refID string) (*model.Transaction, error) {
	var trx model.Transaction
	if err := conn(ctx, r.db).Where("ref_id = ?", refID).First(&trx).Error; err != nil {
		if err = translate(err); err == domain.ErrNotFound {
			return nil, err
		}
		r.logger.ErrorContext(ctx, "Failed to get transaction by ref id", "ref_id", refID, "error", err)
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &trx, nil
}
