// Package product provides the concrete-products catalog.
package product

import (
	"context"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/entity"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
)

// Product represents a manufactured item: a concrete block, curb, slab, etc.
// Production and invoice records keep a denormalized name snapshot, so
// historical data survives product deletion and ignores later renames.
type Product struct {
	entity.BaseEntity

	// Name is the display name, e.g. "بلوک سیمانی ۲۰×۲۰×۴۰"
	Name string `db:"name" json:"name"`

	// Dimensions is free text, e.g. "20x20x40"
	Dimensions string `db:"dimensions" json:"dimensions,omitempty"`

	// Material is free text, e.g. "concrete"
	Material string `db:"material" json:"material,omitempty"`

	// UnitPrice is the current sale price per unit, in Rial.
	// Changing it never recomputes existing invoices or sales.
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(name string, unitPrice types.Money) *Product {
	return &Product{
		BaseEntity: entity.NewBaseEntity(),
		Name:       name,
		UnitPrice:  unitPrice,
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if p.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}

	return nil
}
