// Package sale provides the sales ledger. Sale rows are derived records:
// one per invoice item, created exactly once when the owning invoice is
// marked as paid. A small number of legacy direct sales (not tied to any
// invoice) may also exist from the old admin panel.
package sale

import (
	"context"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/entity"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
)

// Sale is one sold line, snapshotted from an invoice item at payment time.
type Sale struct {
	entity.BaseEntity

	// InvoiceID references the paid invoice. Nil only for legacy direct
	// sales imported from the old admin panel.
	InvoiceID *id.ID `db:"invoice_id" json:"invoiceId,omitempty"`

	ProductID   id.ID  `db:"product_id" json:"productId"`
	ProductName string `db:"product_name" json:"productName"`

	Quantity   int64       `db:"quantity" json:"quantity"`
	UnitPrice  types.Money `db:"unit_price" json:"unitPrice"`
	TotalPrice types.Money `db:"total_price" json:"totalPrice"`

	// PaidDate is the invoice's paid date, canonical "YYYY/MM/DD" form.
	PaidDate string `db:"paid_date" json:"paidDate"`
}

// IsLegacy reports whether the sale predates invoice-based bookkeeping.
func (s *Sale) IsLegacy() bool {
	return s.InvoiceID == nil
}

// Repository defines persistence operations for the sales ledger.
type Repository interface {
	CreateBatch(ctx context.Context, sales []*Sale) error
	ExistsByInvoice(ctx context.Context, invoiceID id.ID) (bool, error)
	ListByInvoice(ctx context.Context, invoiceID id.ID) ([]*Sale, error)
	List(ctx context.Context) ([]*Sale, error)

	// ListLegacy returns direct sales with no invoice reference.
	ListLegacy(ctx context.Context) ([]*Sale, error)
}
