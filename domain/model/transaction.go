package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// TransactionStatusPending is the status of a freshly accepted order
const TransactionStatusPending = "pending"

// Transaction is a seller order. ID is returned to the caller as trx_id and
// RefID is the caller's idempotency token.
type Transaction struct {
	ID           string    `gorm:"type:char(26);primaryKey"`
	RefID        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	SupplierID   string    `gorm:"type:char(26);not null;index"`
	ProductID    string    `gorm:"type:char(26);not null;index"`
	Product      Product   `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Destination  string    `gorm:"type:varchar(100);not null"`
	QuantityLoop int       `gorm:"not null"`
	Status       string    `gorm:"type:varchar(20);not null"`
	Seller       string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// SamePayload reports whether an order with these fields is the one stored in t
func (t *Transaction) SamePayload(supplierID, productID, destination string) bool {
	return t.SupplierID == supplierID && t.ProductID == productID && t.Destination == destination
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	t.ID = ulid.Make().String()
	return nil
}
