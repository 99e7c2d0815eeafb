package reports

import (
	"context"
	"fmt"
	"sort"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/jalali"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/catalogs/product"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/documents/invoice"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/cost"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/production"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/sale"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/registers/stock"
	"github.com/SinaGanjii/industrial-company-website-sub000/pkg/logger"
)

// Snapshot is the full ledger state a report is computed from. It is
// loaded in one read so every section of a report reflects the same
// moment in time.
type Snapshot struct {
	Products    []*product.Product
	Productions []*production.Production
	Invoices    []*invoice.Invoice

	// Sales is the complete sales ledger, both invoice-backed rows and
	// legacy direct sales.
	Sales []*sale.Sale

	Costs []*cost.Cost
}

// Repository loads the report snapshot from persistence.
type Repository interface {
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
}

// Service computes reports. All computation is in memory over a single
// snapshot; the service holds no state of its own.
type Service struct {
	repo Repository
}

// NewService creates a new report service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Daily builds the report for a single day.
func (s *Service) Daily(ctx context.Context, date string) (*DailyReport, error) {
	day, err := jalali.ParseDate(date)
	if err != nil {
		return nil, err
	}

	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load report snapshot: %w", err)
	}

	w := buildWindow(ctx, snap, day, day)
	report := &DailyReport{
		Date:       day.String(),
		Production: w.production,
		Sales:      w.sales,
		Costs:      w.costs,
		Profit:     w.profit,
		Stock:      currentStock(snap),
	}

	logger.Info(ctx, "daily report generated",
		"date", report.Date, "profit", report.Profit)
	return report, nil
}

// Monthly builds the report for one Jalali calendar month. The window is
// the month's first through last day, so daily costs inside the month and
// the month's own monthly costs are both captured, each exactly once.
func (s *Service) Monthly(ctx context.Context, year, month int) (*MonthlyReport, error) {
	if year < 1000 || year > 9999 {
		return nil, apperror.NewValidation("year out of range").
			WithDetail("field", "year").
			WithDetail("value", year)
	}
	if month < 1 || month > 12 {
		return nil, apperror.NewValidation("month out of range").
			WithDetail("field", "month").
			WithDetail("value", month)
	}

	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load report snapshot: %w", err)
	}

	period := jalali.MonthOfYear{Year: year, Month: month}
	w := buildWindow(ctx, snap, period.FirstDay(), period.LastDay())
	report := &MonthlyReport{
		Year:            year,
		Month:           month,
		Period:          period.String(),
		Production:      w.production,
		Sales:           w.sales,
		Costs:           w.costs,
		Profit:          w.profit,
		ProfitByProduct: w.profitByProduct,
		Stock:           currentStock(snap),
	}

	logger.Info(ctx, "monthly report generated",
		"period", report.Period, "profit", report.Profit)
	return report, nil
}

// Custom builds the report for an arbitrary inclusive day range.
func (s *Service) Custom(ctx context.Context, fromDate, toDate string) (*CustomReport, error) {
	from, err := jalali.ParseDate(fromDate)
	if err != nil {
		return nil, err
	}
	to, err := jalali.ParseDate(toDate)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, apperror.NewValidation("fromDate must not be after toDate").
			WithDetail("fromDate", from.String()).
			WithDetail("toDate", to.String())
	}

	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load report snapshot: %w", err)
	}

	w := buildWindow(ctx, snap, from, to)
	report := &CustomReport{
		FromDate:        from.String(),
		ToDate:          to.String(),
		Production:      w.production,
		Sales:           w.sales,
		Costs:           w.costs,
		Profit:          w.profit,
		ProfitByProduct: w.profitByProduct,
		Stock:           currentStock(snap),
	}

	logger.Info(ctx, "custom report generated",
		"from", report.FromDate, "to", report.ToDate, "profit", report.Profit)
	return report, nil
}

// window holds the computed sections of one report range.
type window struct {
	production      ProductionTotals
	sales           SalesTotals
	costs           CostTotals
	profit          types.Money
	profitByProduct []ProductProfit

	windowProductions []*production.Production
}

// buildWindow computes all range-bound report sections for [from, to].
// The profit figure is defined as sales total minus cost total, with no
// intermediate rounding.
func buildWindow(ctx context.Context, snap *Snapshot, from, to jalali.Date) window {
	var w window

	w.windowProductions = productionsInRange(ctx, snap.Productions, from, to)
	w.production = sumProduction(w.windowProductions)

	windowSales := salesInRange(ctx, snap.Sales, from, to)
	w.sales = sumSales(windowSales)

	matched := CollectCosts(ctx, snap.Costs, from, to)
	w.costs = Aggregate(matched)

	w.profit = w.sales.TotalAmount.Sub(w.costs.TotalAmount)
	w.profitByProduct = profitByProduct(snap, windowSales, w.windowProductions, w.costs.TotalAmount)

	return w
}

func productionsInRange(ctx context.Context, all []*production.Production, from, to jalali.Date) []*production.Production {
	matched := make([]*production.Production, 0, len(all))
	for _, p := range all {
		d, err := jalali.ParseDate(p.Date)
		if err != nil {
			logger.Warn(ctx, "production excluded from report: bad date",
				"production_id", p.ID, "value", p.Date, "error", err)
			continue
		}
		if d.Within(from, to) {
			matched = append(matched, p)
		}
	}
	return matched
}

func salesInRange(ctx context.Context, all []*sale.Sale, from, to jalali.Date) []*sale.Sale {
	matched := make([]*sale.Sale, 0, len(all))
	for _, s := range all {
		d, err := jalali.ParseDate(s.PaidDate)
		if err != nil {
			logger.Warn(ctx, "sale excluded from report: bad paid date",
				"sale_id", s.ID, "value", s.PaidDate, "error", err)
			continue
		}
		if d.Within(from, to) {
			matched = append(matched, s)
		}
	}
	return matched
}

func sumProduction(productions []*production.Production) ProductionTotals {
	totals := ProductionTotals{ByProduct: make([]ProductQuantity, 0)}

	byProduct := make(map[id.ID]*ProductQuantity)
	for _, p := range productions {
		totals.TotalQuantity += p.Quantity
		pq, ok := byProduct[p.ProductID]
		if !ok {
			pq = &ProductQuantity{ProductID: p.ProductID, ProductName: p.ProductName}
			byProduct[p.ProductID] = pq
		}
		pq.Quantity += p.Quantity
	}

	for _, pq := range byProduct {
		totals.ByProduct = append(totals.ByProduct, *pq)
	}
	sort.Slice(totals.ByProduct, func(i, j int) bool {
		return totals.ByProduct[i].ProductName < totals.ByProduct[j].ProductName
	})
	return totals
}

func sumSales(sales []*sale.Sale) SalesTotals {
	totals := SalesTotals{TotalAmount: types.Zero()}
	for _, s := range sales {
		totals.TotalAmount = totals.TotalAmount.Add(s.TotalPrice)
		totals.TotalQuantity += s.Quantity
		totals.Count++
	}
	return totals
}

// profitByProduct joins per-product revenue with the proportional cost
// allocation. Products appear when they have either revenue or an
// allocated cost share in the window.
func profitByProduct(snap *Snapshot, sales []*sale.Sale, productions []*production.Production, totalCost types.Money) []ProductProfit {
	revenue := make(map[id.ID]types.Money)
	names := make(map[id.ID]string)
	for _, s := range sales {
		revenue[s.ProductID] = revenue[s.ProductID].Add(s.TotalPrice)
		names[s.ProductID] = s.ProductName
	}
	for _, p := range productions {
		if _, ok := names[p.ProductID]; !ok {
			names[p.ProductID] = p.ProductName
		}
	}
	for _, p := range snap.Products {
		if _, ok := names[p.ID]; ok && names[p.ID] == "" {
			names[p.ID] = p.Name
		}
	}

	allocated := Allocate(totalCost, productions)

	seen := make(map[id.ID]bool)
	rows := make([]ProductProfit, 0, len(revenue)+len(allocated))
	addRow := func(productID id.ID) {
		if seen[productID] {
			return
		}
		seen[productID] = true
		rev := revenue[productID]
		share := allocated[productID]
		profit := rev.Sub(share)
		rows = append(rows, ProductProfit{
			ProductID:     productID,
			ProductName:   names[productID],
			Revenue:       rev,
			AllocatedCost: share,
			Profit:        profit,
			Margin:        types.Percent(profit, rev),
		})
	}
	for productID := range revenue {
		addRow(productID)
	}
	for productID := range allocated {
		addRow(productID)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ProductName < rows[j].ProductName
	})
	return rows
}

// currentStock computes the stock section. Stock is always "as of now",
// never restricted to the report window.
func currentStock(snap *Snapshot) []stock.Balance {
	legacy := make([]*sale.Sale, 0)
	for _, s := range snap.Sales {
		if s.IsLegacy() {
			legacy = append(legacy, s)
		}
	}
	return stock.Calculate(&stock.Snapshot{
		Products:    snap.Products,
		Productions: snap.Productions,
		Invoices:    snap.Invoices,
		LegacySales: legacy,
	})
}
