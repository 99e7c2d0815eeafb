package invoice

import (
	"context"
	"testing"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
)

func draftInvoice() *Invoice {
	inv := NewInvoice("INV-001", "مشتری تست", "1404/09/10")
	inv.AddItem(id.New(), "بلوک سیمانی", "20x20x40", 30, types.NewMoney(1000))
	return inv
}

func TestTransition_HappyPath(t *testing.T) {
	inv := draftInvoice()

	if err := inv.Transition(StatusApproved); err != nil {
		t.Fatalf("draft→approved failed: %v", err)
	}
	if err := inv.Transition(StatusPaid); err != nil {
		t.Fatalf("approved→paid failed: %v", err)
	}
	if !inv.IsPaid() {
		t.Error("invoice must be paid")
	}
}

func TestTransition_Rejected(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
	}{
		{"skip approved", StatusDraft, StatusPaid},
		{"backwards from approved", StatusApproved, StatusDraft},
		{"backwards from paid", StatusPaid, StatusApproved},
		{"paid is terminal", StatusPaid, StatusDraft},
		{"self transition", StatusDraft, StatusDraft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := draftInvoice()
			inv.Status = tt.from

			err := inv.Transition(tt.to)
			if err == nil {
				t.Fatalf("%s→%s must be rejected", tt.from, tt.to)
			}
			appErr, ok := apperror.AsAppError(err)
			if !ok || appErr.Code != apperror.CodeInvalidStatusTransition {
				t.Errorf("want %s error, got %v", apperror.CodeInvalidStatusTransition, err)
			}
			if inv.Status != tt.from {
				t.Errorf("status changed on rejected transition: %s", inv.Status)
			}
		})
	}
}

func TestRecalculateTotals(t *testing.T) {
	inv := NewInvoice("INV-002", "مشتری", "1404/09/10")
	inv.AddItem(id.New(), "بلوک", "", 30, types.NewMoney(1000))
	inv.AddItem(id.New(), "جدول", "", 5, types.NewMoney(200))
	inv.Tax = types.NewMoney(3100)
	inv.RecalculateTotals()

	if !inv.Subtotal.Equal(types.NewMoney(31000)) {
		t.Errorf("subtotal = %s, want 31000", inv.Subtotal)
	}
	if !inv.Total.Equal(types.NewMoney(34100)) {
		t.Errorf("total = %s, want 34100", inv.Total)
	}
	if inv.Items[1].LineNo != 2 {
		t.Errorf("lineNo = %d, want 2", inv.Items[1].LineNo)
	}
	if !inv.Items[1].Total.Equal(types.NewMoney(1000)) {
		t.Errorf("line total = %s, want 1000", inv.Items[1].Total)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Invoice)
		wantErr bool
	}{
		{"valid", func(inv *Invoice) {}, false},
		{"missing number", func(inv *Invoice) { inv.Number = "" }, true},
		{"missing customer", func(inv *Invoice) { inv.CustomerName = "" }, true},
		{"bad issue date", func(inv *Invoice) { inv.IssueDate = "1404/13/01" }, true},
		{"no items", func(inv *Invoice) { inv.Items = nil }, true},
		{"zero quantity", func(inv *Invoice) { inv.Items[0].Quantity = 0 }, true},
		{"negative unit price", func(inv *Invoice) { inv.Items[0].UnitPrice = types.NewMoney(-1) }, true},
		{"negative tax", func(inv *Invoice) { inv.Tax = types.NewMoney(-5) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := draftInvoice()
			tt.mutate(inv)

			err := inv.Validate(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NormalizesIssueDate(t *testing.T) {
	inv := draftInvoice()
	inv.IssueDate = "۱۴۰۴/9/5"

	if err := inv.Validate(context.Background()); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if inv.IssueDate != "1404/09/05" {
		t.Errorf("issue date = %q, want canonical form", inv.IssueDate)
	}
}

func TestGenerateSales(t *testing.T) {
	inv := draftInvoice()
	inv.AddItem(id.New(), "جدول بتنی", "", 5, types.NewMoney(200))

	sales := inv.GenerateSales("1404/09/12")
	if len(sales) != 2 {
		t.Fatalf("got %d sales, want 2", len(sales))
	}

	first := sales[0]
	if first.InvoiceID == nil || *first.InvoiceID != inv.ID {
		t.Error("sale must reference its invoice")
	}
	if first.IsLegacy() {
		t.Error("generated sale must not be legacy")
	}
	if first.Quantity != 30 {
		t.Errorf("quantity = %d, want 30", first.Quantity)
	}
	if !first.TotalPrice.Equal(types.NewMoney(30000)) {
		t.Errorf("total = %s, want 30000", first.TotalPrice)
	}
	if first.PaidDate != "1404/09/12" {
		t.Errorf("paid date = %q", first.PaidDate)
	}
}
