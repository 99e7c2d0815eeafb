// Package stock derives remaining stock per product. Stock is never stored:
// it is recomputed on every query as cumulative production minus cumulative
// sales through paid invoices, so there is no incremental ledger that could
// drift out of sync.
package stock

import (
	"context"
	"fmt"
	"sort"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/catalogs/product"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/documents/invoice"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/production"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/sale"
)

// Balance is the computed stock position of one product, always "as of now".
type Balance struct {
	ProductID   id.ID  `json:"productId"`
	ProductName string `json:"productName"`

	TotalProduced int64 `json:"totalProduced"`
	TotalSold     int64 `json:"totalSold"`

	// Remaining is clamped at zero: upstream data-entry mistakes must not
	// surface as negative stock.
	Remaining int64 `json:"remaining"`
}

// Snapshot is the in-memory input set for a stock computation. The
// calculator treats it as immutable.
type Snapshot struct {
	Products    []*product.Product
	Productions []*production.Production
	Invoices    []*invoice.Invoice
	LegacySales []*sale.Sale
}

// Repository loads the full snapshot needed for a stock computation.
type Repository interface {
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
}

// Calculate derives the stock balance for every product appearing in the
// catalog, the production ledger, or a paid invoice. Sales are synthesized
// on the fly from paid invoices' line items; draft and approved invoices do
// not affect stock. Legacy direct sales, if any, are counted as well.
func Calculate(snap *Snapshot) []Balance {
	type acc struct {
		name     string
		produced int64
		sold     int64
	}
	byProduct := make(map[id.ID]*acc)

	get := func(productID id.ID, name string) *acc {
		a, ok := byProduct[productID]
		if !ok {
			a = &acc{name: name}
			byProduct[productID] = a
		}
		if a.name == "" {
			a.name = name
		}
		return a
	}

	// Catalog products appear even with no activity: their stock is zero.
	for _, p := range snap.Products {
		get(p.ID, p.Name)
	}

	for _, p := range snap.Productions {
		a := get(p.ProductID, p.ProductName)
		a.produced += p.Quantity
	}

	for _, inv := range snap.Invoices {
		if !inv.IsPaid() {
			continue
		}
		for _, item := range inv.Items {
			a := get(item.ProductID, item.ProductName)
			a.sold += item.Quantity
		}
	}

	for _, s := range snap.LegacySales {
		if !s.IsLegacy() {
			// Invoice-backed sales are already counted via the invoice
			// sweep; counting them again would double the deduction.
			continue
		}
		a := get(s.ProductID, s.ProductName)
		a.sold += s.Quantity
	}

	balances := make([]Balance, 0, len(byProduct))
	for productID, a := range byProduct {
		remaining := a.produced - a.sold
		if remaining < 0 {
			remaining = 0
		}
		balances = append(balances, Balance{
			ProductID:     productID,
			ProductName:   a.name,
			TotalProduced: a.produced,
			TotalSold:     a.sold,
			Remaining:     remaining,
		})
	}

	sort.Slice(balances, func(i, j int) bool {
		return balances[i].ProductName < balances[j].ProductName
	})

	return balances
}

// Service provides stock queries over the persistence layer.
type Service struct {
	repo Repository
}

// NewService creates a new stock service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetBalances computes current stock for all products.
func (s *Service) GetBalances(ctx context.Context) ([]Balance, error) {
	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stock snapshot: %w", err)
	}
	return Calculate(snap), nil
}

// GetBalance computes the stock for one product.
func (s *Service) GetBalance(ctx context.Context, productID id.ID) (Balance, error) {
	balances, err := s.GetBalances(ctx)
	if err != nil {
		return Balance{}, err
	}
	for _, b := range balances {
		if b.ProductID == productID {
			return b, nil
		}
	}
	return Balance{ProductID: productID}, nil
}
