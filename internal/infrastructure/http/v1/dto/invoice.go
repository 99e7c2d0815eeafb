package dto

import (
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/documents/invoice"
)

// InvoiceItemRequest is one line of a create/update invoice request.
// Product snapshots (name, dimensions) and line totals are resolved
// server-side from the catalog.
type InvoiceItemRequest struct {
	ProductID id.ID `json:"productId" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required,min=1"`

	// UnitPrice overrides the catalog price when set.
	UnitPrice *types.Money `json:"unitPrice,omitempty"`
}

// CreateInvoiceRequest for POST /documents/invoices.
type CreateInvoiceRequest struct {
	Number        string               `json:"number" binding:"required"`
	CustomerName  string               `json:"customerName" binding:"required"`
	CustomerPhone string               `json:"customerPhone"`
	IssueDate     string               `json:"issueDate" binding:"required"`
	Tax           types.Money          `json:"tax"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ToEntity converts the request header to a domain entity. Items are added
// by the handler after product lookup.
func (r *CreateInvoiceRequest) ToEntity() *invoice.Invoice {
	inv := invoice.NewInvoice(r.Number, r.CustomerName, r.IssueDate)
	inv.CustomerPhone = r.CustomerPhone
	inv.Tax = r.Tax
	return inv
}

// UpdateInvoiceRequest for PUT /documents/invoices/:id. Items replace the
// existing table part wholesale.
type UpdateInvoiceRequest struct {
	Number        string               `json:"number" binding:"required"`
	CustomerName  string               `json:"customerName" binding:"required"`
	CustomerPhone string               `json:"customerPhone"`
	IssueDate     string               `json:"issueDate" binding:"required"`
	Tax           types.Money          `json:"tax"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	Version       int                  `json:"version" binding:"required,min=1"`
}

// MarkPaidRequest for POST /documents/invoices/:id/pay.
type MarkPaidRequest struct {
	PaidDate string `json:"paidDate" binding:"required"`
}
