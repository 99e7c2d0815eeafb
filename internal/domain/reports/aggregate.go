package reports

import (
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/cost"
)

// Aggregate sums a set of already-matched costs into a grand total and a
// per-type breakdown. The sum of ByType always equals TotalAmount.
func Aggregate(costs []*cost.Cost) CostTotals {
	totals := CostTotals{
		TotalAmount: types.Zero(),
		ByType:      make(map[cost.Type]types.Money),
	}
	for _, c := range costs {
		totals.TotalAmount = totals.TotalAmount.Add(c.Amount)
		totals.ByType[c.Type] = totals.ByType[c.Type].Add(c.Amount)
	}
	return totals
}
