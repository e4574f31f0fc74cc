package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// EditorMode is the state of the recipe edit modal. The three open modes
// are exclusive; switching between them requires closing first.
type EditorMode int

const (
	ModeClosed EditorMode = iota
	ModeCreate
	ModeEditQuantity
	ModeManage
)

var editorModeNames = map[EditorMode]string{
	ModeClosed:       "closed",
	ModeCreate:       "create",
	ModeEditQuantity: "edit_qty",
	ModeManage:       "manage",
}

func (m EditorMode) String() string {
	if name, ok := editorModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("EditorMode(%d)", int(m))
}

// MarshalText encodes the mode by name
func (m EditorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name
func (m *EditorMode) UnmarshalText(text []byte) error {
	for mode, name := range editorModeNames {
		if name == string(text) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown editor mode %q", text)
}

var (
	ErrEditorOpen   = errors.New("recipe editor is already open")
	ErrEditorClosed = errors.New("recipe editor is closed")
	ErrWrongMode    = errors.New("operation not allowed in the current editor mode")
	ErrRowIndex     = errors.New("recipe row index out of range")
)

// CreateForm holds the fields of the add-line modal
type CreateForm struct {
	ProductID         string   `json:"product_id"`
	SupplierProductID string   `json:"supplier_product_id"`
	Quantity          Quantity `json:"quantity"`
}

// RecipeEditor drives the recipe modal:
//
//	Closed -> Create       -> (submit) -> Closed
//	Closed -> EditQuantity -> (submit) -> Closed
//	Closed -> Manage       -> (submit) -> Closed
//
// A successful submit closes the editor and asks for a full refetch. There
// is no local patching of the displayed list. A failed submit leaves the
// editor open with its form intact. Not safe for concurrent use.
type RecipeEditor struct {
	store   RecipeStore
	refetch func(ctx context.Context) error
	logger  logger.LoggerInterface

	mode EditorMode
	err  error

	create    CreateForm
	itemID    string
	quantity  Quantity
	productID string
	rows      []RecipeRow
}

// NewRecipeEditor returns a closed editor. refetch runs after each
// successful submit.
func NewRecipeEditor(store RecipeStore, refetch func(ctx context.Context) error, appLogger logger.LoggerInterface) *RecipeEditor {
	return &RecipeEditor{store: store, refetch: refetch, logger: appLogger}
}

func (e *RecipeEditor) Mode() EditorMode { return e.mode }

// Err is the error of the last failed submit, if the editor is still open
func (e *RecipeEditor) Err() error { return e.err }

func (e *RecipeEditor) open(mode EditorMode) error {
	if e.mode != ModeClosed {
		return ErrEditorOpen
	}
	e.mode = mode
	e.err = nil
	return nil
}

// OpenCreate opens the add-line form, optionally preset to a product
func (e *RecipeEditor) OpenCreate(productID string) error {
	if err := e.open(ModeCreate); err != nil {
		return err
	}
	e.create = CreateForm{ProductID: productID}
	return nil
}

// OpenEditQuantity opens the quantity form for one recipe line
func (e *RecipeEditor) OpenEditQuantity(item catalog.RecipeItemResponse) error {
	if err := e.open(ModeEditQuantity); err != nil {
		return err
	}
	e.itemID = item.ID
	e.quantity = Quantity(fmt.Sprint(item.Quantity))
	return nil
}

// OpenManage opens the whole-recipe form seeded with the group's lines
func (e *RecipeEditor) OpenManage(group RecipeGroup) error {
	if err := e.open(ModeManage); err != nil {
		return err
	}
	e.productID = group.ProductID
	e.rows = make([]RecipeRow, 0, len(group.Items))
	for _, item := range group.Items {
		e.rows = append(e.rows, RecipeRow{
			SupplierProductID: item.SupplierProductID,
			Quantity:          Quantity(fmt.Sprint(item.Quantity)),
		})
	}
	return nil
}

// Close abandons the open form
func (e *RecipeEditor) Close() {
	*e = RecipeEditor{store: e.store, refetch: e.refetch, logger: e.logger}
}

func (e *RecipeEditor) require(mode EditorMode) error {
	if e.mode == ModeClosed {
		return ErrEditorClosed
	}
	if e.mode != mode {
		return ErrWrongMode
	}
	return nil
}

// SetCreateForm replaces the add-line form fields
func (e *RecipeEditor) SetCreateForm(form CreateForm) error {
	if err := e.require(ModeCreate); err != nil {
		return err
	}
	e.create = form
	return nil
}

// SetQuantity changes the quantity text of the edit form
func (e *RecipeEditor) SetQuantity(text Quantity) error {
	if err := e.require(ModeEditQuantity); err != nil {
		return err
	}
	e.quantity = text
	return nil
}

// Rows returns a copy of the manage form's rows
func (e *RecipeEditor) Rows() []RecipeRow {
	return append([]RecipeRow(nil), e.rows...)
}

// AddRow appends an empty row with quantity 1
func (e *RecipeEditor) AddRow() error {
	if err := e.require(ModeManage); err != nil {
		return err
	}
	e.rows = append(e.rows, RecipeRow{Quantity: "1"})
	return nil
}

// ChangeRow replaces row i
func (e *RecipeEditor) ChangeRow(i int, row RecipeRow) error {
	if err := e.require(ModeManage); err != nil {
		return err
	}
	if i < 0 || i >= len(e.rows) {
		return ErrRowIndex
	}
	e.rows[i] = row
	return nil
}

// RemoveRow deletes row i
func (e *RecipeEditor) RemoveRow(i int) error {
	if err := e.require(ModeManage); err != nil {
		return err
	}
	if i < 0 || i >= len(e.rows) {
		return ErrRowIndex
	}
	e.rows = append(e.rows[:i], e.rows[i+1:]...)
	return nil
}

// SetRows replaces every row of the manage form
func (e *RecipeEditor) SetRows(rows []RecipeRow) error {
	if err := e.require(ModeManage); err != nil {
		return err
	}
	e.rows = append([]RecipeRow(nil), rows...)
	return nil
}

// Submit validates the open form and sends it to the store. Validation
// failures never reach the store.
func (e *RecipeEditor) Submit(ctx context.Context) error {
	mode := e.mode
	if mode == ModeClosed {
		return ErrEditorClosed
	}

	e.logger.InfoContext(ctx, "Submitting recipe form", "mode", mode.String())

	var err error
	switch mode {
	case ModeCreate:
		var req catalog.BulkRecipeRequest
		if req, err = ValidateSingleCreate(e.create.ProductID, e.create.SupplierProductID, e.create.Quantity); err == nil {
			_, err = e.store.CreateRecipe(ctx, req)
		}
	case ModeEditQuantity:
		var req catalog.UpdateRecipeItemRequest
		if req, err = ValidateQuantityEdit(e.itemID, e.quantity); err == nil {
			_, err = e.store.UpdateRecipeItem(ctx, req)
		}
	case ModeManage:
		_, err = e.store.ReplaceRecipe(ctx, ValidateBulkReplace(e.productID, e.rows))
	}

	if err != nil {
		e.logger.WarnContext(ctx, "Recipe form rejected", "mode", mode.String(), "error", err)
		e.err = err
		return err
	}

	e.Close()
	e.logger.InfoContext(ctx, "Recipe form saved", "mode", mode.String())

	if e.refetch == nil {
		return nil
	}
	if err := e.refetch(ctx); err != nil {
		return fmt.Errorf("refetch after save: %w", err)
	}
	return nil
}
