package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/oklog/ulid/v2"
)

// GenerateRefID returns ORDER-<unix millis>-<random>. The random part is the
// entropy of a ULID drawn from the process-wide monotonic source, so calls
// within the same millisecond still differ. Uniqueness is practical, not
// cryptographic.
func GenerateRefID() string {
	id := ulid.Make()
	return fmt.Sprintf("ORDER-%d-%s", id.Time(), id.String()[10:])
}

// OrderForm is the working form of the new-transaction screen
type OrderForm struct {
	SupplierID  string `json:"supplier_id"`
	ProductID   string `json:"product_id"`
	Destination string `json:"destination"`
	RefID       string `json:"ref_id"`
}

// OrderResult is the backend answer plus its display status
type OrderResult struct {
	catalog.OrderResponse
	DisplayStatus string `json:"display_status"`
}

// DisplayStatus uppercases a backend status for display. The value is not
// interpreted.
func DisplayStatus(status string) string {
	return strings.ToUpper(status)
}

// Submitter assembles and sends seller orders. It owns the ref id
// lifecycle: a fresh one on creation, after each success and on Abandon. A
// failed submit keeps its ref id so a retry reuses the same idempotency
// token. Not safe for concurrent use.
type Submitter struct {
	store    OrderStore
	logger   logger.LoggerInterface
	newRefID func() string

	form     OrderForm
	products []catalog.ProductResponse
}

// NewSubmitter returns a submitter over the given product list with a
// freshly generated ref id
func NewSubmitter(store OrderStore, products []catalog.ProductResponse, appLogger logger.LoggerInterface) *Submitter {
	s := &Submitter{
		store:    store,
		logger:   appLogger,
		newRefID: GenerateRefID,
		products: products,
	}
	s.form.RefID = s.newRefID()
	return s
}

// Form returns the current working form
func (s *Submitter) Form() OrderForm { return s.form }

// Restore reloads a form kept by the caller between requests. An empty ref
// id is replaced with a new one.
func (s *Submitter) Restore(form OrderForm) {
	s.form = form
	if s.form.RefID == "" {
		s.form.RefID = s.newRefID()
	}
}

// SelectSupplier toggles the supplier and always clears the product
func (s *Submitter) SelectSupplier(id string) {
	s.form.SupplierID = string(SupplierSelection(s.form.SupplierID).Toggle(id))
	s.form.ProductID = ""
}

// ResetSupplier clears supplier and product
func (s *Submitter) ResetSupplier() {
	s.form.SupplierID = ""
	s.form.ProductID = ""
}

func (s *Submitter) SelectProduct(id string) { s.form.ProductID = id }

func (s *Submitter) SetDestination(destination string) { s.form.Destination = destination }

// AvailableProducts lists the products of the selected supplier, nothing
// before a supplier is chosen
func (s *Submitter) AvailableProducts() []catalog.ProductResponse {
	return FilterProductsBySupplier(s.products, SupplierSelection(s.form.SupplierID))
}

// Abandon drops the current ref id for a new one
func (s *Submitter) Abandon() {
	s.form.RefID = s.newRefID()
}

// Submit sends the order once. On success the supplier stays selected,
// product and destination are cleared and a new ref id is generated.
func (s *Submitter) Submit(ctx context.Context) (*OrderResult, error) {
	if s.form.SupplierID == "" {
		return nil, &ValidationError{Field: "supplier_id", Message: "Select a supplier first"}
	}
	if s.form.ProductID == "" {
		return nil, &ValidationError{Field: "product_id", Message: "Select a product first"}
	}

	req := catalog.OrderRequest{
		SupplierID:  s.form.SupplierID,
		ProductID:   s.form.ProductID,
		Destination: s.form.Destination,
		RefID:       s.form.RefID,
	}
	s.logger.InfoContext(ctx, "Submitting order", "ref_id", req.RefID, "product_id", req.ProductID)

	resp, err := s.store.SubmitOrder(ctx, req)
	if err != nil {
		s.logger.WarnContext(ctx, "Order failed", "ref_id", req.RefID, "error", err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Order submitted", "ref_id", req.RefID, "trx_id", resp.TrxID)

	s.form.ProductID = ""
	s.form.Destination = ""
	s.form.RefID = s.newRefID()

	return &OrderResult{OrderResponse: *resp, DisplayStatus: DisplayStatus(resp.Status)}, nil
}
