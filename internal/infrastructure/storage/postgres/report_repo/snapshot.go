// Package report_repo loads the ledger snapshots the report and stock
// engines compute from.
package report_repo

import (
	"context"
	"fmt"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/catalogs/product"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/documents/invoice"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/cost"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/production"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/sale"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/registers/stock"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/reports"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres"
)

// SnapshotRepo implements reports.Repository by composing the ledger
// repositories. All reads run inside one read-only transaction so the
// snapshot is internally consistent.
type SnapshotRepo struct {
	txm         *postgres.TxManager
	products    product.Repository
	productions production.Repository
	invoices    invoice.Repository
	sales       sale.Repository
	costs       cost.Repository
}

// NewSnapshotRepo creates a new snapshot repository.
func NewSnapshotRepo(
	txm *postgres.TxManager,
	products product.Repository,
	productions production.Repository,
	invoices invoice.Repository,
	sales sale.Repository,
	costs cost.Repository,
) *SnapshotRepo {
	return &SnapshotRepo{
		txm:         txm,
		products:    products,
		productions: productions,
		invoices:    invoices,
		sales:       sales,
		costs:       costs,
	}
}

// LoadSnapshot reads the full ledger state.
func (r *SnapshotRepo) LoadSnapshot(ctx context.Context) (*reports.Snapshot, error) {
	snap := &reports.Snapshot{}

	err := r.txm.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		if snap.Products, err = r.products.List(ctx); err != nil {
			return fmt.Errorf("load products: %w", err)
		}
		if snap.Productions, err = r.productions.List(ctx); err != nil {
			return fmt.Errorf("load productions: %w", err)
		}
		if snap.Invoices, err = r.invoices.List(ctx); err != nil {
			return fmt.Errorf("load invoices: %w", err)
		}
		if snap.Sales, err = r.sales.List(ctx); err != nil {
			return fmt.Errorf("load sales: %w", err)
		}
		if snap.Costs, err = r.costs.List(ctx); err != nil {
			return fmt.Errorf("load costs: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// StockSnapshotRepo adapts SnapshotRepo to stock.Repository. Stock only
// needs the quantity-bearing subset of the full snapshot.
type StockSnapshotRepo struct {
	inner *SnapshotRepo
}

// NewStockSnapshotRepo creates a stock snapshot source.
func NewStockSnapshotRepo(inner *SnapshotRepo) *StockSnapshotRepo {
	return &StockSnapshotRepo{inner: inner}
}

// LoadSnapshot reads the state a stock computation needs.
func (r *StockSnapshotRepo) LoadSnapshot(ctx context.Context) (*stock.Snapshot, error) {
	snap := &stock.Snapshot{}

	err := r.inner.txm.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		if snap.Products, err = r.inner.products.List(ctx); err != nil {
			return fmt.Errorf("load products: %w", err)
		}
		if snap.Productions, err = r.inner.productions.List(ctx); err != nil {
			return fmt.Errorf("load productions: %w", err)
		}
		if snap.Invoices, err = r.inner.invoices.List(ctx); err != nil {
			return fmt.Errorf("load invoices: %w", err)
		}
		if snap.LegacySales, err = r.inner.sales.ListLegacy(ctx); err != nil {
			return fmt.Errorf("load legacy sales: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}
