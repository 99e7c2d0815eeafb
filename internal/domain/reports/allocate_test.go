package reports

import (
	"testing"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/production"
)

func prodRecord(productID id.ID, qty int64) *production.Production {
	return production.NewProduction(productID, "", qty, "1404/09/10", "")
}

func TestAllocate_Proportional(t *testing.T) {
	a, b := id.New(), id.New()
	shares := Allocate(types.NewMoney(90000), []*production.Production{
		prodRecord(a, 60),
		prodRecord(b, 30),
	})

	if len(shares) != 2 {
		t.Fatalf("got %d shares, want 2", len(shares))
	}
	if !shares[a].Equal(types.NewMoney(60000)) {
		t.Errorf("share of a = %s, want 60000", shares[a])
	}
	if !shares[b].Equal(types.NewMoney(30000)) {
		t.Errorf("share of b = %s, want 30000", shares[b])
	}
}

func TestAllocate_SumIsExact(t *testing.T) {
	// 100000 over quantities 1,1,1 does not divide evenly; the remainder
	// lands on one product so the sum still equals the total exactly.
	ids := []id.ID{id.New(), id.New(), id.New()}
	productions := make([]*production.Production, 0, len(ids))
	for _, productID := range ids {
		productions = append(productions, prodRecord(productID, 1))
	}

	total := types.NewMoney(100000)
	shares := Allocate(total, productions)

	sum := types.Zero()
	for _, share := range shares {
		sum = sum.Add(share)
	}
	if !sum.Equal(total) {
		t.Errorf("sum = %s, want exactly %s", sum, total)
	}
}

func TestAllocate_MultipleRecordsSameProduct(t *testing.T) {
	a, b := id.New(), id.New()
	// Product a produced in two shifts: 40+20 against b's 30.
	shares := Allocate(types.NewMoney(9000), []*production.Production{
		prodRecord(a, 40),
		prodRecord(b, 30),
		prodRecord(a, 20),
	})

	if !shares[a].Equal(types.NewMoney(6000)) {
		t.Errorf("share of a = %s, want 6000", shares[a])
	}
	if !shares[b].Equal(types.NewMoney(3000)) {
		t.Errorf("share of b = %s, want 3000", shares[b])
	}
}

func TestAllocate_NoProduction(t *testing.T) {
	shares := Allocate(types.NewMoney(5000), nil)
	if len(shares) != 0 {
		t.Errorf("no production must yield no shares, got %v", shares)
	}
}

func TestAllocate_ZeroTotal(t *testing.T) {
	a := id.New()
	shares := Allocate(types.Zero(), []*production.Production{prodRecord(a, 10)})
	if !shares[a].IsZero() {
		t.Errorf("share of zero total = %s, want 0", shares[a])
	}
}
