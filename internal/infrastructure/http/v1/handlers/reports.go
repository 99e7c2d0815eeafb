package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/reports"
)

// ReportsHandler handles the reporting endpoints.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Daily handles GET /reports/daily?date=YYYY/MM/DD
func (h *ReportsHandler) Daily(c *gin.Context) {
	ctx := c.Request.Context()

	date := c.Query("date")
	if date == "" {
		h.Error(c, apperror.NewValidation("date query parameter is required").
			WithDetail("field", "date"))
		return
	}

	report, err := h.service.Daily(ctx, date)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// Monthly handles GET /reports/monthly?year=YYYY&month=MM
func (h *ReportsHandler) Monthly(c *gin.Context) {
	ctx := c.Request.Context()

	year := h.ParseIntQuery(c, "year", 0)
	month := h.ParseIntQuery(c, "month", 0)

	report, err := h.service.Monthly(ctx, year, month)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// Custom handles GET /reports/custom?from=YYYY/MM/DD&to=YYYY/MM/DD
func (h *ReportsHandler) Custom(c *gin.Context) {
	ctx := c.Request.Context()

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		h.Error(c, apperror.NewValidation("from and to query parameters are required"))
		return
	}

	report, err := h.service.Custom(ctx, from, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}
