// Package postgres provides PostgreSQL implementations of the catalog repositories
package postgres

import (
	"context"
	"errors"

	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
	"github.com/izaldotcom/gerbang-backoffice/domain/repository"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"

	"gorm.io/gorm"
)

type txKey struct{}

// Models lists every table owned by the catalog service, in migration order
func Models() []any {
	return []any{
		&model.Role{},
		&model.User{},
		&model.Supplier{},
		&model.SupplierProduct{},
		&model.Product{},
		&model.RecipeItem{},
		&model.Transaction{},
	}
}

// conn returns the transaction stored in ctx by WithinTransaction, or db
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// translate maps gorm errors onto the repository sentinels
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrForeignKey
	}
	return err
}

// isSentinel reports whether err is one of the expected repository outcomes,
// which are logged as warnings rather than errors
func isSentinel(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicateKey) || errors.Is(err, domain.ErrForeignKey)
}

type transactor struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewTransactor creates a Transactor backed by gorm transactions
func NewTransactor(db *gorm.DB, logger logger.LoggerInterface) repository.Transactor {
	return &transactor{db: db, logger: logger}
}

// WithinTransaction executes fn within a database transaction.
// A transaction already present in ctx is reused.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	t.logger.DebugContext(ctx, "Starting transaction")
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	if err != nil {
		t.logger.WarnContext(ctx, "Transaction rolled back", "error", err)
		return err
	}
	t.logger.DebugContext(ctx, "Transaction committed")
	return nil
}
