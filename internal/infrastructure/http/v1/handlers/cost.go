package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/cost"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/http/v1/dto"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres"
)

// CostHandler handles the cost ledger endpoints.
type CostHandler struct {
	*BaseHandler
	service *cost.Service
}

// NewCostHandler creates a new cost handler.
func NewCostHandler(base *BaseHandler, service *cost.Service) *CostHandler {
	return &CostHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /ledgers/costs
func (h *CostHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateCostRequest
	if !h.BindJSON(c, &req) {
		return
	}

	rec := req.ToEntity()
	if err := h.service.Create(ctx, rec); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "cost", rec.ID, postgres.AuditActionCreate, rec)
	h.Created(c, rec.ID.String())
}

// Update handles PUT /ledgers/costs/:id
func (h *CostHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	costID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdateCostRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, costID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(existing)
	if err := h.service.Update(ctx, existing); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "cost", existing.ID, postgres.AuditActionUpdate, existing)
	h.OK(c, existing)
}

// Delete handles DELETE /ledgers/costs/:id
func (h *CostHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	costID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, costID); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "cost", costID, postgres.AuditActionDelete, nil)
	h.NoContent(c)
}

// List handles GET /ledgers/costs
func (h *CostHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := h.service.List(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{Items: records, TotalCount: len(records)})
}
