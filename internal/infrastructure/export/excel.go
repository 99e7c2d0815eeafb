// Package export renders reports and invoices into downloadable files.
package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/cost"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/reports"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/registers/stock"
)

const (
	sheetSummary = "Summary"
	sheetProfit  = "Profit by Product"
	sheetStock   = "Stock"
)

// ExcelExporter renders period reports as xlsx workbooks.
type ExcelExporter struct{}

// NewExcelExporter creates an Excel exporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// MonthlyReport renders a monthly report workbook.
func (e *ExcelExporter) MonthlyReport(r *reports.MonthlyReport) (*excelize.File, error) {
	return e.build(
		fmt.Sprintf("Monthly report %s", r.Period),
		r.Production, r.Sales, r.Costs, r.Profit.String(),
		r.ProfitByProduct, r.Stock,
	)
}

// CustomReport renders a custom-range report workbook.
func (e *ExcelExporter) CustomReport(r *reports.CustomReport) (*excelize.File, error) {
	return e.build(
		fmt.Sprintf("Report %s – %s", r.FromDate, r.ToDate),
		r.Production, r.Sales, r.Costs, r.Profit.String(),
		r.ProfitByProduct, r.Stock,
	)
}

func (e *ExcelExporter) build(
	title string,
	production reports.ProductionTotals,
	sales reports.SalesTotals,
	costs reports.CostTotals,
	profit string,
	profitByProduct []reports.ProductProfit,
	balances []stock.Balance,
) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}

	f.SetCellValue(sheetSummary, "A1", title)
	f.SetCellValue(sheetSummary, "A3", "Total produced")
	f.SetCellValue(sheetSummary, "B3", production.TotalQuantity)
	f.SetCellValue(sheetSummary, "A4", "Units sold")
	f.SetCellValue(sheetSummary, "B4", sales.TotalQuantity)
	f.SetCellValue(sheetSummary, "A5", "Sales amount")
	f.SetCellValue(sheetSummary, "B5", sales.TotalAmount.String())
	f.SetCellValue(sheetSummary, "A6", "Costs")
	f.SetCellValue(sheetSummary, "B6", costs.TotalAmount.String())
	f.SetCellValue(sheetSummary, "A7", "Profit")
	f.SetCellValue(sheetSummary, "B7", profit)

	// Cost breakdown below the summary block, in stable order.
	types := make([]string, 0, len(costs.ByType))
	for costType := range costs.ByType {
		types = append(types, string(costType))
	}
	sort.Strings(types)

	row := 9
	f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), "Costs by type")
	row++
	for _, costType := range types {
		f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), costType)
		f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), costs.ByType[cost.Type(costType)].String())
		row++
	}

	if err := e.profitSheet(f, profitByProduct); err != nil {
		return nil, err
	}
	if err := e.stockSheet(f, balances); err != nil {
		return nil, err
	}

	return f, nil
}

func (e *ExcelExporter) profitSheet(f *excelize.File, rows []reports.ProductProfit) error {
	if _, err := f.NewSheet(sheetProfit); err != nil {
		return err
	}

	f.SetCellValue(sheetProfit, "A1", "Product")
	f.SetCellValue(sheetProfit, "B1", "Revenue")
	f.SetCellValue(sheetProfit, "C1", "Allocated cost")
	f.SetCellValue(sheetProfit, "D1", "Profit")
	f.SetCellValue(sheetProfit, "E1", "Margin %")

	for i, p := range rows {
		r := i + 2
		f.SetCellValue(sheetProfit, fmt.Sprintf("A%d", r), p.ProductName)
		f.SetCellValue(sheetProfit, fmt.Sprintf("B%d", r), p.Revenue.String())
		f.SetCellValue(sheetProfit, fmt.Sprintf("C%d", r), p.AllocatedCost.String())
		f.SetCellValue(sheetProfit, fmt.Sprintf("D%d", r), p.Profit.String())
		f.SetCellValue(sheetProfit, fmt.Sprintf("E%d", r), p.Margin.String())
	}

	return nil
}

func (e *ExcelExporter) stockSheet(f *excelize.File, balances []stock.Balance) error {
	if _, err := f.NewSheet(sheetStock); err != nil {
		return err
	}

	f.SetCellValue(sheetStock, "A1", "Product")
	f.SetCellValue(sheetStock, "B1", "Produced")
	f.SetCellValue(sheetStock, "C1", "Sold")
	f.SetCellValue(sheetStock, "D1", "Remaining")

	for i, b := range balances {
		r := i + 2
		f.SetCellValue(sheetStock, fmt.Sprintf("A%d", r), b.ProductName)
		f.SetCellValue(sheetStock, fmt.Sprintf("B%d", r), b.TotalProduced)
		f.SetCellValue(sheetStock, fmt.Sprintf("C%d", r), b.TotalSold)
		f.SetCellValue(sheetStock, fmt.Sprintf("D%d", r), b.Remaining)
	}

	return nil
}
