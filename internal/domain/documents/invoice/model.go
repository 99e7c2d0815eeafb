// Package invoice provides the sales invoice document and its lifecycle.
// The status machine is strictly forward-moving: draft → approved → paid.
// The transition to paid is the sole legitimate origin of Sale records.
package invoice

import (
	"context"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/entity"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/jalali"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/sale"
)

// Status is the invoice lifecycle state.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
	StatusPaid     Status = "paid"
)

// Invoice represents a customer sales invoice.
type Invoice struct {
	entity.BaseEntity

	// Number is the human-facing invoice number.
	Number string `db:"number" json:"number"`

	Status Status `db:"status" json:"status"`

	CustomerName  string `db:"customer_name" json:"customerName"`
	CustomerPhone string `db:"customer_phone" json:"customerPhone,omitempty"`

	// IssueDate is the creation date, canonical "YYYY/MM/DD" Jalali form.
	IssueDate string `db:"issue_date" json:"issueDate"`

	// PaidDate is set only on the transition to paid.
	PaidDate string `db:"paid_date" json:"paidDate,omitempty"`

	// Totals. Invariant: Subtotal = Σ item totals, Total = Subtotal + Tax.
	Subtotal types.Money `db:"subtotal" json:"subtotal"`
	Tax      types.Money `db:"tax" json:"tax"`
	Total    types.Money `db:"total" json:"total"`

	// Items is the ordered table part.
	Items []Item `db:"-" json:"items"`
}

// Item is one invoice line with a product snapshot taken at creation time.
// Invariant: Total = Quantity × UnitPrice.
type Item struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID         id.ID  `db:"product_id" json:"productId"`
	ProductName       string `db:"product_name" json:"productName"`
	ProductDimensions string `db:"product_dimensions" json:"productDimensions,omitempty"`

	Quantity  int64       `db:"quantity" json:"quantity"`
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`
	Total     types.Money `db:"total" json:"total"`
}

// NewInvoice creates a draft invoice.
func NewInvoice(number, customerName, issueDate string) *Invoice {
	return &Invoice{
		BaseEntity:   entity.NewBaseEntity(),
		Number:       number,
		Status:       StatusDraft,
		CustomerName: customerName,
		IssueDate:    issueDate,
		Subtotal:     types.Zero(),
		Tax:          types.Zero(),
		Total:        types.Zero(),
		Items:        make([]Item, 0),
	}
}

// AddItem appends a line and recalculates totals.
func (inv *Invoice) AddItem(productID id.ID, productName, dimensions string, quantity int64, unitPrice types.Money) {
	item := Item{
		LineID:            id.New(),
		LineNo:            len(inv.Items) + 1,
		ProductID:         productID,
		ProductName:       productName,
		ProductDimensions: dimensions,
		Quantity:          quantity,
		UnitPrice:         unitPrice,
		Total:             unitPrice.Mul(types.NewMoney(quantity)),
	}

	inv.Items = append(inv.Items, item)
	inv.RecalculateTotals()
}

// RecalculateTotals re-derives line totals, subtotal, and total.
func (inv *Invoice) RecalculateTotals() {
	subtotal := types.Zero()
	for i := range inv.Items {
		inv.Items[i].Total = inv.Items[i].UnitPrice.Mul(types.NewMoney(inv.Items[i].Quantity))
		subtotal = subtotal.Add(inv.Items[i].Total)
	}
	inv.Subtotal = subtotal
	inv.Total = subtotal.Add(inv.Tax)
}

// Validate implements entity.Validatable. IssueDate is normalized to
// canonical form as a side effect.
func (inv *Invoice) Validate(ctx context.Context) error {
	if inv.Number == "" {
		return apperror.NewValidation("invoice number is required").
			WithDetail("field", "number")
	}

	if inv.CustomerName == "" {
		return apperror.NewValidation("customer name is required").
			WithDetail("field", "customerName")
	}

	normalized, err := jalali.NormalizeDateString(inv.IssueDate)
	if err != nil {
		return err
	}
	inv.IssueDate = normalized

	if len(inv.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "items")
	}

	for i, item := range inv.Items {
		if id.IsNil(item.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.UnitPrice.IsNegative() {
			return apperror.NewValidation("unit price cannot be negative").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}

	if inv.Tax.IsNegative() {
		return apperror.NewValidation("tax cannot be negative").
			WithDetail("field", "tax")
	}

	return nil
}

// CanModify checks if the invoice content can still change.
// Only drafts are editable.
func (inv *Invoice) CanModify() error {
	if inv.Status != StatusDraft {
		return apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"only draft invoices can be modified",
		).WithDetail("invoice_id", inv.ID.String()).
			WithDetail("status", string(inv.Status))
	}
	return nil
}

// Transition moves the invoice to the next status. The machine never moves
// backwards and never skips a state.
func (inv *Invoice) Transition(to Status) error {
	allowed := map[Status]Status{
		StatusDraft:    StatusApproved,
		StatusApproved: StatusPaid,
	}

	if next, ok := allowed[inv.Status]; !ok || next != to {
		return apperror.NewInvalidStatusTransition(inv.ID.String(), string(inv.Status), string(to))
	}

	inv.Status = to
	inv.Touch()
	return nil
}

// IsPaid reports whether the invoice reached its terminal state.
func (inv *Invoice) IsPaid() bool {
	return inv.Status == StatusPaid
}

// GenerateSales synthesizes one Sale per item, stamped with the paid date.
// Called exactly once, on the approved → paid transition.
func (inv *Invoice) GenerateSales(paidDate string) []*sale.Sale {
	sales := make([]*sale.Sale, 0, len(inv.Items))
	invoiceID := inv.ID

	for _, item := range inv.Items {
		s := &sale.Sale{
			BaseEntity:  entity.NewBaseEntity(),
			InvoiceID:   &invoiceID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.Total,
			PaidDate:    paidDate,
		}
		sales = append(sales, s)
	}

	return sales
}
