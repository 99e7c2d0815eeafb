package stock

import (
	"testing"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/entity"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/catalogs/product"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/documents/invoice"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/production"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/sale"
)

func invoiceWithStatus(productID id.ID, name string, qty int64, status invoice.Status) *invoice.Invoice {
	inv := invoice.NewInvoice("INV-100", "مشتری", "1404/09/01")
	inv.AddItem(productID, name, "", qty, types.NewMoney(1000))
	inv.RecalculateTotals()
	inv.Status = status
	return inv
}

func balanceOf(t *testing.T, balances []Balance, productID id.ID) Balance {
	t.Helper()
	for _, b := range balances {
		if b.ProductID == productID {
			return b
		}
	}
	t.Fatalf("product %s not in balances", productID)
	return Balance{}
}

func TestCalculate_OnlyPaidInvoicesReduceStock(t *testing.T) {
	productID := id.New()

	snap := &Snapshot{
		Productions: []*production.Production{
			production.NewProduction(productID, "بلوک", 100, "1404/09/01", production.ShiftMorning),
		},
		Invoices: []*invoice.Invoice{
			invoiceWithStatus(productID, "بلوک", 10, invoice.StatusDraft),
			invoiceWithStatus(productID, "بلوک", 20, invoice.StatusApproved),
			invoiceWithStatus(productID, "بلوک", 30, invoice.StatusPaid),
		},
	}

	b := balanceOf(t, Calculate(snap), productID)
	if b.TotalProduced != 100 {
		t.Errorf("produced = %d, want 100", b.TotalProduced)
	}
	if b.TotalSold != 30 {
		t.Errorf("sold = %d, want 30 (paid invoice only)", b.TotalSold)
	}
	if b.Remaining != 70 {
		t.Errorf("remaining = %d, want 70", b.Remaining)
	}
}

func TestCalculate_RemainingClampedAtZero(t *testing.T) {
	productID := id.New()

	snap := &Snapshot{
		Productions: []*production.Production{
			production.NewProduction(productID, "جدول", 10, "1404/09/01", production.ShiftMorning),
		},
		Invoices: []*invoice.Invoice{
			invoiceWithStatus(productID, "جدول", 25, invoice.StatusPaid),
		},
	}

	b := balanceOf(t, Calculate(snap), productID)
	if b.TotalSold != 25 {
		t.Errorf("sold = %d, want 25 (raw figure preserved)", b.TotalSold)
	}
	if b.Remaining != 0 {
		t.Errorf("remaining = %d, want 0 (clamped)", b.Remaining)
	}
}

func TestCalculate_CatalogProductWithNoActivity(t *testing.T) {
	p := product.NewProduct("کفپوش", types.NewMoney(500))

	balances := Calculate(&Snapshot{Products: []*product.Product{p}})
	b := balanceOf(t, balances, p.ID)
	if b.TotalProduced != 0 || b.TotalSold != 0 || b.Remaining != 0 {
		t.Errorf("idle product must be all zeros, got %+v", b)
	}
	if b.ProductName != "کفپوش" {
		t.Errorf("name = %q", b.ProductName)
	}
}

func TestCalculate_LegacySalesCounted(t *testing.T) {
	productID := id.New()

	legacy := &sale.Sale{
		BaseEntity:  entity.NewBaseEntity(),
		ProductID:   productID,
		ProductName: "بلوک",
		Quantity:    15,
		PaidDate:    "1403/05/10",
	}

	invoiceID := id.New()
	invoiceBacked := &sale.Sale{
		BaseEntity: entity.NewBaseEntity(),
		InvoiceID:  &invoiceID,
		ProductID:  productID,
		Quantity:   99,
		PaidDate:   "1404/09/01",
	}

	snap := &Snapshot{
		Productions: []*production.Production{
			production.NewProduction(productID, "بلوک", 40, "1404/09/01", production.ShiftMorning),
		},
		// Invoice-backed sale without its invoice in the snapshot: it must
		// be skipped here, its invoice sweep is the source of truth.
		LegacySales: []*sale.Sale{legacy, invoiceBacked},
	}

	b := balanceOf(t, Calculate(snap), productID)
	if b.TotalSold != 15 {
		t.Errorf("sold = %d, want 15 (legacy only)", b.TotalSold)
	}
	if b.Remaining != 25 {
		t.Errorf("remaining = %d, want 25", b.Remaining)
	}
}

func TestCalculate_SortedByName(t *testing.T) {
	a := product.NewProduct("ب محصول", types.NewMoney(1))
	b := product.NewProduct("آ محصول", types.NewMoney(1))

	balances := Calculate(&Snapshot{Products: []*product.Product{a, b}})
	if len(balances) != 2 {
		t.Fatalf("got %d balances", len(balances))
	}
	if balances[0].ProductName > balances[1].ProductName {
		t.Errorf("balances not sorted: %q before %q", balances[0].ProductName, balances[1].ProductName)
	}
}
