package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/catalogs/product"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/documents/invoice"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/http/v1/dto"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres"
)

// InvoiceHandler handles the sales invoice endpoints.
type InvoiceHandler struct {
	*BaseHandler
	service  *invoice.Service
	products *product.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service, products *product.Service) *InvoiceHandler {
	return &InvoiceHandler{
		BaseHandler: base,
		service:     service,
		products:    products,
	}
}

// addItems resolves catalog snapshots for each requested line and appends
// them to the invoice in request order.
func (h *InvoiceHandler) addItems(c *gin.Context, inv *invoice.Invoice, items []dto.InvoiceItemRequest) bool {
	ctx := c.Request.Context()

	for _, item := range items {
		p, err := h.products.GetByID(ctx, item.ProductID)
		if err != nil {
			h.Error(c, err)
			return false
		}

		unitPrice := p.UnitPrice
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}

		inv.AddItem(p.ID, p.Name, p.Dimensions, item.Quantity, unitPrice)
	}

	return true
}

// Create handles POST /documents/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	inv := req.ToEntity()
	if !h.addItems(c, inv, req.Items) {
		return
	}

	if err := h.service.Create(ctx, inv); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "invoice", inv.ID, postgres.AuditActionCreate, inv)
	h.Created(c, inv.ID.String())
}

// Update handles PUT /documents/invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	invoiceID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	inv := invoice.NewInvoice(req.Number, req.CustomerName, req.IssueDate)
	inv.ID = invoiceID
	inv.CustomerPhone = req.CustomerPhone
	inv.Tax = req.Tax
	inv.SetVersion(req.Version)

	if !h.addItems(c, inv, req.Items) {
		return
	}

	if err := h.service.Update(ctx, inv); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "invoice", inv.ID, postgres.AuditActionUpdate, inv)
	h.OK(c, inv)
}

// Approve handles POST /documents/invoices/:id/approve
func (h *InvoiceHandler) Approve(c *gin.Context) {
	ctx := c.Request.Context()

	invoiceID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Approve(ctx, invoiceID); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "invoice", invoiceID, postgres.AuditActionTransition, gin.H{"status": "approved"})
	h.Success(c, "invoice approved")
}

// MarkPaid handles POST /documents/invoices/:id/pay
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	ctx := c.Request.Context()

	invoiceID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.MarkPaidRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.MarkPaid(ctx, invoiceID, req.PaidDate); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "invoice", invoiceID, postgres.AuditActionTransition, gin.H{"status": "paid", "paidDate": req.PaidDate})
	h.Success(c, "invoice paid")
}

// GetByID handles GET /documents/invoices/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	invoiceID, ok := h.ParseID(c)
	if !ok {
		return
	}

	inv, err := h.service.GetByID(ctx, invoiceID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, inv)
}

// List handles GET /documents/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	invoices, err := h.service.List(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{Items: invoices, TotalCount: len(invoices)})
}
