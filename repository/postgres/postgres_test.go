package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create sqlmock")
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestSupplierRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSupplierRepository(db, logger.NoOpLogger())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "suppliers"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	supplier := &model.Supplier{Name: "Digiflazz", Code: "DGF", Type: "official", Status: true}
	require.NoError(t, repo.Create(context.Background(), supplier))
	assert.Len(t, supplier.ID, 26)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSupplierRepository_Create_DuplicateCode(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSupplierRepository(db, logger.NoOpLogger())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "suppliers"`)).
		WillReturnError(gorm.ErrDuplicatedKey)

	err := repo.Create(context.Background(), &model.Supplier{Name: "Digiflazz", Code: "DGF"})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSupplierRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSupplierRepository(db, logger.NoOpLogger())

	rows := sqlmock.NewRows([]string{"id", "name", "code", "type", "status"}).
		AddRow("01HZX0000000000000000000S1", "Digiflazz", "DGF", "official", true)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "suppliers" WHERE id = $1`)).
		WillReturnRows(rows)

	supplier, err := repo.GetByID(context.Background(), "01HZX0000000000000000000S1")
	require.NoError(t, err)
	assert.Equal(t, "DGF", supplier.Code)
	assert.True(t, supplier.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSupplierRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSupplierRepository(db, logger.NoOpLogger())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "suppliers" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	supplier, err := repo.GetByID(context.Background(), "missing")
	assert.Nil(t, supplier)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSupplierRepository_Update_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSupplierRepository(db, logger.NoOpLogger())

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "suppliers" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &model.Supplier{ID: "missing", Name: "X", Code: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSupplierRepository_Delete_StillReferenced(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSupplierRepository(db, logger.NoOpLogger())

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "suppliers" WHERE id = $1`)).
		WithArgs("s1").
		WillReturnError(gorm.ErrForeignKeyViolated)

	err := repo.Delete(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrForeignKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSupplierRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSupplierRepository(db, logger.NoOpLogger())

	rows := sqlmock.NewRows([]string{"id", "name", "code", "type", "status"}).
		AddRow("s1", "Alpha", "A", "official", true).
		AddRow("s2", "Beta", "B", "reseller", false)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "suppliers" ORDER BY name ASC`)).
		WillReturnRows(rows)

	suppliers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, suppliers, 2)
	assert.Equal(t, "Beta", suppliers[1].Name)
	assert.False(t, suppliers[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_PreloadsRole(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db, logger.NoOpLogger())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role_id", "name", "email", "phone", "status", "password"}).
			AddRow("u1", "r1", "Admin", "admin@example.com", "0811", "active", "hash"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "roles" WHERE "roles"."id" = $1`)).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("r1", "Admin"))

	user, err := repo.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.Role.Name)
	assert.Equal(t, "Admin", user.Profile().RoleName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db, logger.NoOpLogger())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(gorm.ErrDuplicatedKey)

	err := repo.Create(context.Background(), &model.User{Email: "a@b.c", Phone: "1", RoleID: "r1"})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_ListBySupplier(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db, logger.NoOpLogger())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE supplier_id = $1 ORDER BY name ASC`)).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "supplier_id", "name", "denom", "price", "qty", "status"}).
			AddRow("p1", "s1", "Diamond 86", 86, 20000, 5, true))

	products, err := repo.List(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(20000), products[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeItemRepository_CreateBatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecipeItemRepository(db, logger.NoOpLogger())

	assert.NoError(t, repo.CreateBatch(context.Background(), nil))

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "recipe_items"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	items := []*model.RecipeItem{
		{ProductID: "p1", SupplierProductID: "sp1", Quantity: 2},
		{ProductID: "p1", SupplierProductID: "sp2", Quantity: 1},
	}
	require.NoError(t, repo.CreateBatch(context.Background(), items))
	assert.NotEmpty(t, items[0].ID)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeItemRepository_UpdateQuantity_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecipeItemRepository(db, logger.NoOpLogger())

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "recipe_items" SET "quantity"=$1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateQuantity(context.Background(), "missing", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeItemRepository_GetLine_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecipeItemRepository(db, logger.NoOpLogger())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "recipe_items" WHERE product_id = $1 AND supplier_product_id = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetLine(context.Background(), "p1", "sp1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_CommitsAndJoins(t *testing.T) {
	db, mock := setupMockDB(t)
	tx := NewTransactor(db, logger.NoOpLogger())
	repo := NewRecipeItemRepository(db, logger.NoOpLogger())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "recipe_items" WHERE product_id = $1`)).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "recipe_items"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		if err := repo.DeleteByProduct(ctx, "p1"); err != nil {
			return err
		}
		// nested calls join the outer transaction
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return repo.CreateBatch(ctx, []*model.RecipeItem{{ProductID: "p1", SupplierProductID: "sp1", Quantity: 1}})
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	tx := NewTransactor(db, logger.NoOpLogger())
	repo := NewRecipeItemRepository(db, logger.NoOpLogger())
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "recipe_items"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		if err := repo.DeleteByProduct(ctx, "p1"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_GetByRefID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTransactionRepository(db, logger.NoOpLogger())
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "transactions" WHERE ref_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ref_id", "supplier_id", "product_id", "destination", "quantity_loop", "status", "seller", "created_at"}).
			AddRow("t1", "ORDER-1", "s1", "p1", "0812", 3, "pending", "seller", created))

	trx, err := repo.GetByRefID(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, 3, trx.QuantityLoop)
	assert.True(t, trx.SamePayload("s1", "p1", "0812"))
	assert.False(t, trx.SamePayload("s1", "p1", "0813"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
