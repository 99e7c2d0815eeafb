package reports

import (
	"context"
	"testing"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/jalali"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/cost"
)

func dailyCost(value string, amount int64) *cost.Cost {
	return cost.NewCost(cost.TypeElectricity, "برق", types.NewMoney(amount), cost.PeriodDaily, value)
}

func monthlyCost(value string, amount int64) *cost.Cost {
	return cost.NewCost(cost.TypeRent, "اجاره", types.NewMoney(amount), cost.PeriodMonthly, value)
}

func TestCollectCosts_Matching(t *testing.T) {
	ctx := context.Background()
	from := jalali.Date{Year: 1404, Month: 9, Day: 1}
	to := jalali.Date{Year: 1404, Month: 9, Day: 30}

	tests := []struct {
		name      string
		cost      *cost.Cost
		wantMatch bool
	}{
		{"daily inside window", dailyCost("1404/09/15", 1000), true},
		{"daily on from boundary", dailyCost("1404/09/01", 1000), true},
		{"daily on to boundary", dailyCost("1404/09/30", 1000), true},
		{"daily before window", dailyCost("1404/08/30", 1000), false},
		{"daily after window", dailyCost("1404/10/01", 1000), false},
		{"monthly same month", monthlyCost("1404/09", 5000), true},
		{"monthly earlier month", monthlyCost("1404/08", 5000), false},
		{"monthly later month", monthlyCost("1404/10", 5000), false},
		{"yearly never matches", cost.NewCost(cost.TypeOther, "بیمه", types.NewMoney(9000), cost.PeriodYearly, "1404"), false},
		{"missing period type", &cost.Cost{Type: cost.TypeOther, Amount: types.NewMoney(100)}, false},
		{"daily malformed value", dailyCost("junk", 1000), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectCosts(ctx, []*cost.Cost{tt.cost}, from, to)
			if matched := len(got) == 1; matched != tt.wantMatch {
				t.Errorf("match = %v, want %v", matched, tt.wantMatch)
			}
		})
	}
}

func TestCollectCosts_DailyLegacyDateFallback(t *testing.T) {
	ctx := context.Background()
	c := &cost.Cost{
		Type:       cost.TypeWater,
		Amount:     types.NewMoney(700),
		PeriodType: cost.PeriodDaily,
		Legacy:     cost.LegacyFields{Date: "1404/09/10"},
	}

	got := CollectCosts(ctx, []*cost.Cost{c},
		jalali.Date{Year: 1404, Month: 9, Day: 1},
		jalali.Date{Year: 1404, Month: 9, Day: 30})
	if len(got) != 1 {
		t.Fatalf("legacy-dated daily cost must match via fallback, got %d", len(got))
	}
}

// A window spanning a whole month must count a monthly cost exactly once
// even though every day of that month is also swept for daily costs.
func TestCollectCosts_NoDoubleCount(t *testing.T) {
	ctx := context.Background()
	costs := []*cost.Cost{
		monthlyCost("1404/09", 50000),
		dailyCost("1404/09/12", 2000),
	}

	got := CollectCosts(ctx, costs,
		jalali.Date{Year: 1404, Month: 9, Day: 1},
		jalali.Date{Year: 1404, Month: 9, Day: 30})
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}

	totals := Aggregate(got)
	if !totals.TotalAmount.Equal(types.NewMoney(52000)) {
		t.Errorf("total = %s, want 52000", totals.TotalAmount)
	}
}

// A custom range covering several months picks up every monthly cost in
// between, including partially covered edge months.
func TestCollectCosts_MultiMonthRange(t *testing.T) {
	ctx := context.Background()
	costs := []*cost.Cost{
		monthlyCost("1404/08", 100),
		monthlyCost("1404/09", 200),
		monthlyCost("1404/10", 400),
		monthlyCost("1404/11", 800),
	}

	got := CollectCosts(ctx, costs,
		jalali.Date{Year: 1404, Month: 8, Day: 20},
		jalali.Date{Year: 1404, Month: 10, Day: 5})

	totals := Aggregate(got)
	if !totals.TotalAmount.Equal(types.NewMoney(700)) {
		t.Errorf("total = %s, want 700 (months 08+09+10)", totals.TotalAmount)
	}
}

func TestAggregate_ByType(t *testing.T) {
	totals := Aggregate([]*cost.Cost{
		dailyCost("1404/09/01", 1000),
		dailyCost("1404/09/02", 500),
		monthlyCost("1404/09", 9000),
	})

	if !totals.TotalAmount.Equal(types.NewMoney(10500)) {
		t.Errorf("total = %s, want 10500", totals.TotalAmount)
	}
	if !totals.ByType[cost.TypeElectricity].Equal(types.NewMoney(1500)) {
		t.Errorf("electricity = %s, want 1500", totals.ByType[cost.TypeElectricity])
	}
	if !totals.ByType[cost.TypeRent].Equal(types.NewMoney(9000)) {
		t.Errorf("rent = %s, want 9000", totals.ByType[cost.TypeRent])
	}

	sum := types.Zero()
	for _, v := range totals.ByType {
		sum = sum.Add(v)
	}
	if !sum.Equal(totals.TotalAmount) {
		t.Errorf("by-type sum %s != total %s", sum, totals.TotalAmount)
	}
}
