package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/documents/invoice"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/reports"
)

// PDFExporter renders invoices as printable PDF documents.
type PDFExporter struct {
	workshopName string
}

// NewPDFExporter creates a PDF exporter. workshopName appears in the
// document header.
func NewPDFExporter(workshopName string) *PDFExporter {
	return &PDFExporter{workshopName: workshopName}
}

// Invoice renders a single invoice.
func (e *PDFExporter) Invoice(inv *invoice.Invoice) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, e.workshopName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(10,
		text.NewCol(12, "Invoice "+inv.Number, props.Text{
			Size:  12,
			Style: fontstyle.Bold,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Customer: "+inv.CustomerName, props.Text{Top: 0}),
			text.New("Phone: "+inv.CustomerPhone, props.Text{Top: 5}),
		),
		col.New(6).Add(
			text.New("Issue date: "+inv.IssueDate, props.Text{Top: 0}),
			text.New("Status: "+string(inv.Status), props.Text{Top: 5}),
			text.New("Paid date: "+inv.PaidDate, props.Text{Top: 10}),
		),
	)

	m.AddRow(10,
		text.NewCol(1, "#", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(5, "Product", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range inv.Items {
		name := item.ProductName
		if item.ProductDimensions != "" {
			name += " (" + item.ProductDimensions + ")"
		}

		m.AddRow(8,
			text.NewCol(1, fmt.Sprintf("%d", item.LineNo), props.Text{Size: 9}),
			text.NewCol(5, name, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.UnitPrice.String(), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Total.String(), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, inv.Subtotal.String(), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Tax", props.Text{Size: 9}),
		text.NewCol(2, inv.Tax.String(), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, inv.Total.String(), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

// MonthlyReport renders a monthly report as a printable summary.
func (e *PDFExporter) MonthlyReport(r *reports.MonthlyReport) (io.Reader, error) {
	return e.report("Monthly report "+r.Period, r.Production, r.Sales, r.Costs, r.Profit, r.ProfitByProduct)
}

// CustomReport renders a custom-range report.
func (e *PDFExporter) CustomReport(r *reports.CustomReport) (io.Reader, error) {
	title := fmt.Sprintf("Report %s to %s", r.FromDate, r.ToDate)
	return e.report(title, r.Production, r.Sales, r.Costs, r.Profit, r.ProfitByProduct)
}

func (e *PDFExporter) report(
	title string,
	production reports.ProductionTotals,
	sales reports.SalesTotals,
	costs reports.CostTotals,
	profit types.Money,
	profitByProduct []reports.ProductProfit,
) (io.Reader, error) {
	m := maroto.New(config.NewBuilder().Build())

	m.AddRow(12,
		text.NewCol(12, e.workshopName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
		}),
	)
	m.AddRow(10,
		text.NewCol(12, title, props.Text{
			Size:  12,
			Style: fontstyle.Bold,
		}),
	)

	m.AddRow(30,
		col.New(6).Add(
			text.New(fmt.Sprintf("Total produced: %d", production.TotalQuantity), props.Text{Top: 0}),
			text.New(fmt.Sprintf("Units sold: %d", sales.TotalQuantity), props.Text{Top: 5}),
			text.New("Sales amount: "+sales.TotalAmount.String(), props.Text{Top: 10}),
		),
		col.New(6).Add(
			text.New("Costs: "+costs.TotalAmount.String(), props.Text{Top: 0}),
			text.New("Profit: "+profit.String(), props.Text{Top: 5, Style: fontstyle.Bold}),
		),
	)

	m.AddRow(10,
		text.NewCol(4, "Product", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Revenue", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(3, "Allocated cost", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Profit", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, p := range profitByProduct {
		m.AddRow(8,
			text.NewCol(4, p.ProductName, props.Text{Size: 9}),
			text.NewCol(3, p.Revenue.String(), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(3, p.AllocatedCost.String(), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, p.Profit.String(), props.Text{Size: 9, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate report pdf: %w", err)
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
