package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// DefaultSupplierType is used when a supplier is created without a type
const DefaultSupplierType = "official"

// Supplier represents an upstream vendor of digital goods
type Supplier struct {
	ID        string    `gorm:"type:char(26);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Code      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Status    bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// SupplierProduct is an item in a supplier's own catalog.
// SupplierProductID is the supplier's key for it and is unique per supplier.
type SupplierProduct struct {
	ID                string    `gorm:"type:char(26);primaryKey"`
	SupplierID        string    `gorm:"type:char(26);not null;uniqueIndex:idx_supplier_product_key"`
	Supplier          Supplier  `gorm:"foreignKey:SupplierID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	SupplierProductID string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_supplier_product_key"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Denom             int64     `gorm:"not null"`
	CostPrice         int64     `gorm:"not null"`
	Price             int64     `gorm:"not null"`
	Status            bool      `gorm:"not null"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	s.ID = ulid.Make().String()
	return nil
}

func (p *SupplierProduct) BeforeCreate(tx *gorm.DB) error {
	p.ID = ulid.Make().String()
	return nil
}
