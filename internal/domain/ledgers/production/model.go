// Package production provides the daily production ledger.
// Records are append-only; deletion removes the record entirely.
package production

import (
	"context"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/entity"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/jalali"
)

// Shift identifies the work shift of a production record.
type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
	ShiftNight   Shift = "night"
)

// Production is a single day's output of one product.
type Production struct {
	entity.BaseEntity

	// ProductID references the catalog product.
	ProductID id.ID `db:"product_id" json:"productId"`

	// ProductName is a denormalized snapshot taken at recording time.
	ProductName string `db:"product_name" json:"productName"`

	// Quantity is the number of units produced (positive integer).
	Quantity int64 `db:"quantity" json:"quantity"`

	// Date is the production day, canonical "YYYY/MM/DD" Jalali form.
	Date string `db:"date" json:"date"`

	Shift Shift `db:"shift" json:"shift,omitempty"`
}

// NewProduction creates a production record with a generated ID.
func NewProduction(productID id.ID, productName string, quantity int64, date string, shift Shift) *Production {
	return &Production{
		BaseEntity:  entity.NewBaseEntity(),
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Date:        date,
		Shift:       shift,
	}
}

// Validate implements entity.Validatable. The date is normalized to
// canonical Western-digit form as a side effect, so persisted records
// always compare consistently.
func (p *Production) Validate(ctx context.Context) error {
	if id.IsNil(p.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}

	if p.Quantity <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}

	normalized, err := jalali.NormalizeDateString(p.Date)
	if err != nil {
		return err
	}
	p.Date = normalized

	return nil
}
