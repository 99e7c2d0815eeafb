package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/production"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/http/v1/dto"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres"
)

// ProductionHandler handles the production ledger endpoints.
type ProductionHandler struct {
	*BaseHandler
	service *production.Service
}

// NewProductionHandler creates a new production handler.
func NewProductionHandler(base *BaseHandler, service *production.Service) *ProductionHandler {
	return &ProductionHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Record handles POST /ledgers/productions
func (h *ProductionHandler) Record(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RecordProductionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p := req.ToEntity()
	if err := h.service.Record(ctx, p); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "production", p.ID, postgres.AuditActionCreate, p)
	h.Created(c, p.ID.String())
}

// Delete handles DELETE /ledgers/productions/:id
func (h *ProductionHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	productionID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, productionID); err != nil {
		h.Error(c, err)
		return
	}

	h.Audit(c, "production", productionID, postgres.AuditActionDelete, nil)
	h.NoContent(c)
}

// List handles GET /ledgers/productions with optional from/to filtering.
func (h *ProductionHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	from := c.Query("from")
	to := c.Query("to")

	var (
		records []*production.Production
		err     error
	)
	if from != "" && to != "" {
		records, err = h.service.ListByDateRange(ctx, from, to)
	} else {
		records, err = h.service.List(ctx)
	}
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{Items: records, TotalCount: len(records)})
}
