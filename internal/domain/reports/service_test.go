package reports

import (
	"context"
	"testing"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/catalogs/product"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/documents/invoice"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/cost"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/production"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/sale"
)

type stubRepo struct {
	snap *Snapshot
}

func (r *stubRepo) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	return r.snap, nil
}

func paidInvoice(t *testing.T, productID id.ID, productName string, qty int64, unitPrice int64, paidDate string) (*invoice.Invoice, []*sale.Sale) {
	t.Helper()
	inv := invoice.NewInvoice("INV-001", "مشتری تست", "1404/09/10")
	inv.AddItem(productID, productName, "", qty, types.NewMoney(unitPrice))
	inv.RecalculateTotals()
	if err := inv.Transition(invoice.StatusApproved); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := inv.Transition(invoice.StatusPaid); err != nil {
		t.Fatalf("pay: %v", err)
	}
	inv.PaidDate = paidDate
	return inv, inv.GenerateSales(paidDate)
}

// One month of activity: 100 units produced, 30 sold at 1000 through a
// paid invoice, 50000 monthly electricity. The monthly report must show
// profit 30000-50000 = -20000 and remaining stock 70.
func TestService_Monthly_EndToEnd(t *testing.T) {
	ctx := context.Background()

	prod := product.NewProduct("بلوک سیمانی", types.NewMoney(1000))
	inv, sales := paidInvoice(t, prod.ID, prod.Name, 30, 1000, "1404/09/12")

	snap := &Snapshot{
		Products: []*product.Product{prod},
		Productions: []*production.Production{
			production.NewProduction(prod.ID, prod.Name, 100, "1404/09/10", production.ShiftMorning),
		},
		Invoices: []*invoice.Invoice{inv},
		Sales:    sales,
		Costs: []*cost.Cost{
			cost.NewCost(cost.TypeElectricity, "برق آذر", types.NewMoney(50000), cost.PeriodMonthly, "1404/09"),
		},
	}

	svc := NewService(&stubRepo{snap: snap})
	report, err := svc.Monthly(ctx, 1404, 9)
	if err != nil {
		t.Fatalf("Monthly failed: %v", err)
	}

	if report.Period != "1404/09" {
		t.Errorf("period = %q, want 1404/09", report.Period)
	}
	if report.Production.TotalQuantity != 100 {
		t.Errorf("production = %d, want 100", report.Production.TotalQuantity)
	}
	if !report.Sales.TotalAmount.Equal(types.NewMoney(30000)) {
		t.Errorf("sales total = %s, want 30000", report.Sales.TotalAmount)
	}
	if report.Sales.TotalQuantity != 30 {
		t.Errorf("sales quantity = %d, want 30", report.Sales.TotalQuantity)
	}
	if !report.Costs.TotalAmount.Equal(types.NewMoney(50000)) {
		t.Errorf("costs total = %s, want 50000", report.Costs.TotalAmount)
	}
	if !report.Profit.Equal(types.NewMoney(-20000)) {
		t.Errorf("profit = %s, want -20000", report.Profit)
	}

	if len(report.Stock) != 1 {
		t.Fatalf("stock rows = %d, want 1", len(report.Stock))
	}
	if report.Stock[0].Remaining != 70 {
		t.Errorf("remaining stock = %d, want 70", report.Stock[0].Remaining)
	}

	// Single product: the whole cost is allocated to it.
	if len(report.ProfitByProduct) != 1 {
		t.Fatalf("profit rows = %d, want 1", len(report.ProfitByProduct))
	}
	row := report.ProfitByProduct[0]
	if !row.AllocatedCost.Equal(types.NewMoney(50000)) {
		t.Errorf("allocated cost = %s, want 50000", row.AllocatedCost)
	}
	if !row.Profit.Equal(types.NewMoney(-20000)) {
		t.Errorf("product profit = %s, want -20000", row.Profit)
	}
}

// Profit must always equal sales minus costs, including when both are zero.
func TestService_Daily_EmptyDay(t *testing.T) {
	svc := NewService(&stubRepo{snap: &Snapshot{}})
	report, err := svc.Daily(context.Background(), "1404/09/15")
	if err != nil {
		t.Fatalf("Daily failed: %v", err)
	}

	if !report.Profit.IsZero() {
		t.Errorf("profit = %s, want 0", report.Profit)
	}
	if report.Production.TotalQuantity != 0 || report.Sales.Count != 0 {
		t.Errorf("empty day must have no activity")
	}
}

func TestService_Daily_ExactDateOnly(t *testing.T) {
	prod := product.NewProduct("جدول بتنی", types.NewMoney(500))
	snap := &Snapshot{
		Products: []*product.Product{prod},
		Productions: []*production.Production{
			production.NewProduction(prod.ID, prod.Name, 10, "1404/09/14", production.ShiftMorning),
			production.NewProduction(prod.ID, prod.Name, 20, "1404/09/15", production.ShiftEvening),
			production.NewProduction(prod.ID, prod.Name, 40, "1404/09/16", production.ShiftNight),
		},
		Costs: []*cost.Cost{
			cost.NewCost(cost.TypeGas, "گاز", types.NewMoney(800), cost.PeriodDaily, "1404/09/15"),
			cost.NewCost(cost.TypeGas, "گاز", types.NewMoney(999), cost.PeriodDaily, "1404/09/16"),
		},
	}

	svc := NewService(&stubRepo{snap: snap})
	report, err := svc.Daily(context.Background(), "1404/09/15")
	if err != nil {
		t.Fatalf("Daily failed: %v", err)
	}

	if report.Production.TotalQuantity != 20 {
		t.Errorf("production = %d, want 20 (exact date only)", report.Production.TotalQuantity)
	}
	if !report.Costs.TotalAmount.Equal(types.NewMoney(800)) {
		t.Errorf("costs = %s, want 800", report.Costs.TotalAmount)
	}
}

// Draft and approved invoices contribute nothing until payment.
func TestService_UnpaidInvoicesExcluded(t *testing.T) {
	prod := product.NewProduct("کفپوش", types.NewMoney(2000))

	draft := invoice.NewInvoice("INV-002", "مشتری", "1404/09/05")
	draft.AddItem(prod.ID, prod.Name, "", 50, types.NewMoney(2000))
	draft.RecalculateTotals()

	snap := &Snapshot{
		Products: []*product.Product{prod},
		Productions: []*production.Production{
			production.NewProduction(prod.ID, prod.Name, 80, "1404/09/01", production.ShiftMorning),
		},
		Invoices: []*invoice.Invoice{draft},
	}

	svc := NewService(&stubRepo{snap: snap})
	report, err := svc.Monthly(context.Background(), 1404, 9)
	if err != nil {
		t.Fatalf("Monthly failed: %v", err)
	}

	if !report.Sales.TotalAmount.IsZero() {
		t.Errorf("draft invoice leaked into sales: %s", report.Sales.TotalAmount)
	}
	if report.Stock[0].Remaining != 80 {
		t.Errorf("remaining = %d, want 80 (nothing sold)", report.Stock[0].Remaining)
	}
}

func TestService_Custom_Validation(t *testing.T) {
	svc := NewService(&stubRepo{snap: &Snapshot{}})

	if _, err := svc.Custom(context.Background(), "1404/09/20", "1404/09/10"); err == nil {
		t.Error("inverted range must be rejected")
	}
	if _, err := svc.Custom(context.Background(), "bad", "1404/09/10"); err == nil {
		t.Error("malformed fromDate must be rejected")
	}
}

func TestService_Monthly_Validation(t *testing.T) {
	svc := NewService(&stubRepo{snap: &Snapshot{}})

	if _, err := svc.Monthly(context.Background(), 1404, 13); err == nil {
		t.Error("month 13 must be rejected")
	}
	if _, err := svc.Monthly(context.Background(), 99, 1); err == nil {
		t.Error("two-digit year must be rejected")
	}
}

// Yearly costs are stored but never aggregated into period reports.
func TestService_YearlyCostIgnored(t *testing.T) {
	snap := &Snapshot{
		Costs: []*cost.Cost{
			cost.NewCost(cost.TypeOther, "بیمه سالانه", types.NewMoney(120000), cost.PeriodYearly, "1404"),
		},
	}

	svc := NewService(&stubRepo{snap: snap})
	report, err := svc.Monthly(context.Background(), 1404, 9)
	if err != nil {
		t.Fatalf("Monthly failed: %v", err)
	}
	if !report.Costs.TotalAmount.IsZero() {
		t.Errorf("yearly cost leaked into report: %s", report.Costs.TotalAmount)
	}
}
