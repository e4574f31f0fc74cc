package dashboard

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditor(store *fakeStore) (*RecipeEditor, *int) {
	refetches := 0
	editor := NewRecipeEditor(store, func(context.Context) error {
		refetches++
		return nil
	}, logger.NoOpLogger())
	return editor, &refetches
}

func TestRecipeEditor_StartsClosed(t *testing.T) {
	editor, _ := newEditor(sampleStore())

	assert.Equal(t, ModeClosed, editor.Mode())
	assert.ErrorIs(t, editor.Submit(context.Background()), ErrEditorClosed)
}

func TestRecipeEditor_ModesAreExclusive(t *testing.T) {
	editor, _ := newEditor(sampleStore())

	require.NoError(t, editor.OpenCreate(""))
	assert.ErrorIs(t, editor.OpenManage(RecipeGroup{ProductID: "p1"}), ErrEditorOpen)
	assert.ErrorIs(t, editor.OpenEditQuantity(catalog.RecipeItemResponse{ID: "r1"}), ErrEditorOpen)
	assert.ErrorIs(t, editor.SetQuantity("2"), ErrWrongMode)
	assert.ErrorIs(t, editor.AddRow(), ErrWrongMode)
	assert.Equal(t, ModeCreate, editor.Mode())

	editor.Close()
	require.NoError(t, editor.OpenManage(RecipeGroup{ProductID: "p1"}))
	assert.Equal(t, ModeManage, editor.Mode())
}

func TestRecipeEditor_CreateSubmitClosesAndRefetches(t *testing.T) {
	store := sampleStore()
	editor, refetches := newEditor(store)

	require.NoError(t, editor.OpenCreate("p1"))
	require.NoError(t, editor.SetCreateForm(CreateForm{ProductID: "p1", SupplierProductID: "sp1", Quantity: "2"}))
	require.NoError(t, editor.Submit(context.Background()))

	assert.Equal(t, ModeClosed, editor.Mode())
	assert.Equal(t, 1, *refetches)
	require.Len(t, store.created, 1)
	assert.Equal(t, catalog.RecipeLine{SupplierProductID: "sp1", Quantity: 2}, store.created[0].Items[0])
}

func TestRecipeEditor_ValidationFailureNeverReachesStore(t *testing.T) {
	store := sampleStore()
	editor, refetches := newEditor(store)

	require.NoError(t, editor.OpenEditQuantity(catalog.RecipeItemResponse{ID: "r1", Quantity: 2}))
	require.NoError(t, editor.SetQuantity("0"))

	err := editor.Submit(context.Background())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, ModeEditQuantity, editor.Mode(), "editor stays open")
	assert.Equal(t, err, editor.Err())
	assert.Empty(t, store.updated)
	assert.Zero(t, *refetches)
}

func TestRecipeEditor_StoreFailureKeepsForm(t *testing.T) {
	store := sampleStore()
	store.failSave = errBackend
	editor, refetches := newEditor(store)

	require.NoError(t, editor.OpenEditQuantity(catalog.RecipeItemResponse{ID: "r1", Quantity: 2}))
	require.NoError(t, editor.SetQuantity("5"))

	assert.ErrorIs(t, editor.Submit(context.Background()), errBackend)
	assert.Equal(t, ModeEditQuantity, editor.Mode())
	assert.Zero(t, *refetches)

	// Retry once the backend recovers
	store.failSave = nil
	require.NoError(t, editor.Submit(context.Background()))
	assert.Equal(t, []catalog.UpdateRecipeItemRequest{{ID: "r1", Quantity: 5}}, store.updated)
	assert.Nil(t, editor.Err())
}

func TestRecipeEditor_ManageRows(t *testing.T) {
	store := sampleStore()
	editor, refetches := newEditor(store)
	group := GroupByProduct(store.items, store.products)[0]

	require.NoError(t, editor.OpenManage(group))
	assert.Equal(t, []RecipeRow{{SupplierProductID: "sp1", Quantity: "2"}}, editor.Rows())

	require.NoError(t, editor.AddRow())
	require.NoError(t, editor.ChangeRow(1, RecipeRow{SupplierProductID: "sp1", Quantity: "3"}))
	require.NoError(t, editor.AddRow())
	assert.ErrorIs(t, editor.ChangeRow(5, RecipeRow{}), ErrRowIndex)
	require.NoError(t, editor.RemoveRow(0))

	require.NoError(t, editor.Submit(context.Background()))

	require.Len(t, store.replaced, 1)
	assert.Equal(t, catalog.BulkRecipeRequest{
		ProductID: "p1",
		Items:     []catalog.RecipeLine{{SupplierProductID: "sp1", Quantity: 3}},
	}, store.replaced[0], "the blank added row is dropped")
	assert.Equal(t, ModeClosed, editor.Mode())
	assert.Empty(t, editor.Rows())
	assert.Equal(t, 1, *refetches)
}

func TestRecipeEditor_ManageEmptyClearsRecipe(t *testing.T) {
	store := sampleStore()
	editor, _ := newEditor(store)

	require.NoError(t, editor.OpenManage(RecipeGroup{ProductID: "p1"}))
	require.NoError(t, editor.SetRows(nil))
	require.NoError(t, editor.Submit(context.Background()))

	require.Len(t, store.replaced, 1)
	assert.Empty(t, store.replaced[0].Items)
}

func TestEditorMode_Text(t *testing.T) {
	body, err := json.Marshal(map[string]EditorMode{"mode": ModeEditQuantity})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"edit_qty"}`, string(body))

	var decoded struct {
		Mode EditorMode `json:"mode"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"manage"}`), &decoded))
	assert.Equal(t, ModeManage, decoded.Mode)
	assert.Error(t, json.Unmarshal([]byte(`{"mode":"bogus"}`), &decoded))
}
