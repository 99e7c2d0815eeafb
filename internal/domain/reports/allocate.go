package reports

import (
	"sort"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/production"
)

// Allocate splits a total cost across products in proportion to their
// produced quantity inside the window. The shares sum to exactly total:
// every product but the last gets total×qty/totalQty, and the last
// absorbs the rounding remainder.
//
// When there is no production in the window the map is empty and the
// total stays unallocated; callers report it at the aggregate level only.
func Allocate(total types.Money, productions []*production.Production) map[id.ID]types.Money {
	shares := make(map[id.ID]types.Money)

	quantities := make(map[id.ID]int64)
	var totalQty int64
	for _, p := range productions {
		quantities[p.ProductID] += p.Quantity
		totalQty += p.Quantity
	}
	if totalQty == 0 {
		return shares
	}

	// Deterministic order so the remainder always lands on the same
	// product for the same input.
	ids := make([]id.ID, 0, len(quantities))
	for productID := range quantities {
		ids = append(ids, productID)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	totalQtyMoney := types.NewMoney(totalQty)
	allocated := types.Zero()
	for i, productID := range ids {
		if i == len(ids)-1 {
			shares[productID] = total.Sub(allocated)
			break
		}
		share := total.Mul(types.NewMoney(quantities[productID])).Div(totalQtyMoney)
		shares[productID] = share
		allocated = allocated.Add(share)
	}

	return shares
}
