package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Product is the sellable item offered to buyers
type Product struct {
	ID         string    `gorm:"type:char(26);primaryKey"`
	SupplierID string    `gorm:"type:char(26);not null;index"`
	Supplier   Supplier  `gorm:"foreignKey:SupplierID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Denom      int64     `gorm:"not null"`
	Price      int64     `gorm:"not null"`
	Qty        int       `gorm:"not null"`
	Status     bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// RecipeItem says that selling one unit of ProductID consumes Quantity units
// of the supplier product SupplierProductID. A product has at most one line
// per supplier product.
type RecipeItem struct {
	ID                string          `gorm:"type:char(26);primaryKey"`
	ProductID         string          `gorm:"type:char(26);not null;uniqueIndex:idx_recipe_product_line"`
	Product           Product         `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	SupplierProductID string          `gorm:"type:char(26);not null;uniqueIndex:idx_recipe_product_line"`
	SupplierProduct   SupplierProduct `gorm:"foreignKey:SupplierProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity          int             `gorm:"not null;check:chk_recipe_quantity,quantity >= 1"`
	CreatedAt         time.Time       `gorm:"autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	p.ID = ulid.Make().String()
	return nil
}

func (r *RecipeItem) BeforeCreate(tx *gorm.DB) error {
	r.ID = ulid.Make().String()
	return nil
}
