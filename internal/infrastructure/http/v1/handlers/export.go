package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/documents/invoice"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/reports"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/export"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ExportHandler serves report and invoice downloads.
type ExportHandler struct {
	*BaseHandler
	reports  *reports.Service
	invoices *invoice.Service
	excel    *export.ExcelExporter
	pdf      *export.PDFExporter
}

// NewExportHandler creates a new export handler.
func NewExportHandler(
	base *BaseHandler,
	reportsSvc *reports.Service,
	invoices *invoice.Service,
	excel *export.ExcelExporter,
	pdf *export.PDFExporter,
) *ExportHandler {
	return &ExportHandler{
		BaseHandler: base,
		reports:     reportsSvc,
		invoices:    invoices,
		excel:       excel,
		pdf:         pdf,
	}
}

// MonthlyExcel handles GET /reports/monthly/excel?year=YYYY&month=MM
func (h *ExportHandler) MonthlyExcel(c *gin.Context) {
	ctx := c.Request.Context()

	year := h.ParseIntQuery(c, "year", 0)
	month := h.ParseIntQuery(c, "month", 0)

	report, err := h.reports.Monthly(ctx, year, month)
	if err != nil {
		h.Error(c, err)
		return
	}

	f, err := h.excel.MonthlyReport(report)
	if err != nil {
		h.Error(c, fmt.Errorf("build workbook: %w", err))
		return
	}

	filename := fmt.Sprintf("report-%s.xlsx", strings.ReplaceAll(report.Period, "/", "-"))
	h.sendExcel(c, f, filename)
}

// CustomExcel handles GET /reports/custom/excel?from=YYYY/MM/DD&to=YYYY/MM/DD
func (h *ExportHandler) CustomExcel(c *gin.Context) {
	ctx := c.Request.Context()

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		h.Error(c, apperror.NewValidation("from and to query parameters are required"))
		return
	}

	report, err := h.reports.Custom(ctx, from, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	f, err := h.excel.CustomReport(report)
	if err != nil {
		h.Error(c, fmt.Errorf("build workbook: %w", err))
		return
	}

	filename := fmt.Sprintf("report-%s-%s.xlsx",
		strings.ReplaceAll(report.FromDate, "/", "-"),
		strings.ReplaceAll(report.ToDate, "/", "-"),
	)
	h.sendExcel(c, f, filename)
}

// MonthlyPDF handles GET /reports/monthly/pdf?year=YYYY&month=MM
func (h *ExportHandler) MonthlyPDF(c *gin.Context) {
	ctx := c.Request.Context()

	year := h.ParseIntQuery(c, "year", 0)
	month := h.ParseIntQuery(c, "month", 0)

	report, err := h.reports.Monthly(ctx, year, month)
	if err != nil {
		h.Error(c, err)
		return
	}

	reader, err := h.pdf.MonthlyReport(report)
	if err != nil {
		h.Error(c, err)
		return
	}

	filename := fmt.Sprintf("report-%s.pdf", strings.ReplaceAll(report.Period, "/", "-"))
	h.sendPDF(c, reader, filename)
}

// CustomPDF handles GET /reports/custom/pdf?from=YYYY/MM/DD&to=YYYY/MM/DD
func (h *ExportHandler) CustomPDF(c *gin.Context) {
	ctx := c.Request.Context()

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		h.Error(c, apperror.NewValidation("from and to query parameters are required"))
		return
	}

	report, err := h.reports.Custom(ctx, from, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	reader, err := h.pdf.CustomReport(report)
	if err != nil {
		h.Error(c, err)
		return
	}

	filename := fmt.Sprintf("report-%s-%s.pdf",
		strings.ReplaceAll(report.FromDate, "/", "-"),
		strings.ReplaceAll(report.ToDate, "/", "-"),
	)
	h.sendPDF(c, reader, filename)
}

// InvoicePDF handles GET /documents/invoices/:id/pdf
func (h *ExportHandler) InvoicePDF(c *gin.Context) {
	ctx := c.Request.Context()

	invoiceID, ok := h.ParseID(c)
	if !ok {
		return
	}

	inv, err := h.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		h.Error(c, err)
		return
	}

	reader, err := h.pdf.Invoice(inv)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.sendPDF(c, reader, fmt.Sprintf("invoice-%s.pdf", inv.Number))
}

func (h *ExportHandler) sendPDF(c *gin.Context, reader io.Reader, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", contentTypePDF)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

func (h *ExportHandler) sendExcel(c *gin.Context, f *excelize.File, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", contentTypeXLSX)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		h.Error(c, fmt.Errorf("write workbook: %w", err))
	}
}
