package ledger_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/sale"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres"
)

const saleTable = "ldg_sales"

// SaleRepo implements sale.Repository. Sales are insert-only from the
// invoice payment flow; there is no update path.
type SaleRepo struct {
	txm        *postgres.TxManager
	selectCols []string
}

// NewSaleRepo creates a new sale repository.
func NewSaleRepo(txm *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		txm:        txm,
		selectCols: postgres.ExtractDBColumns[sale.Sale](),
	}
}

func (r *SaleRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// CreateBatch inserts all sales in one statement. The unique index on
// invoice_id line pairs backstops the application-level idempotency
// check in the payment flow.
func (r *SaleRepo) CreateBatch(ctx context.Context, sales []*sale.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	q := r.builder().
		Insert(saleTable).
		Columns(r.selectCols...)
	for _, s := range sales {
		data := postgres.StructToMap(s)
		values := make([]any, 0, len(r.selectCols))
		for _, col := range r.selectCols {
			values = append(values, data[col])
		}
		q = q.Values(values...)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert sales: %w", err)
	}
	return nil
}

// ExistsByInvoice checks whether sales were already generated for an
// invoice.
func (r *SaleRepo) ExistsByInvoice(ctx context.Context, invoiceID id.ID) (bool, error) {
	sql, args, err := r.builder().
		Select("COUNT(*)").
		From(saleTable).
		Where(squirrel.Eq{"invoice_id": invoiceID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("count sales: %w", err)
	}
	return count > 0, nil
}

// ListByInvoice returns the sales generated from one invoice.
func (r *SaleRepo) ListByInvoice(ctx context.Context, invoiceID id.ID) ([]*sale.Sale, error) {
	return r.findAll(ctx, r.baseSelect().Where(squirrel.Eq{"invoice_id": invoiceID}))
}

// List returns the whole sales ledger, newest paid date first.
func (r *SaleRepo) List(ctx context.Context) ([]*sale.Sale, error) {
	return r.findAll(ctx, r.baseSelect().OrderBy("paid_date DESC", "created_at DESC"))
}

// ListLegacy returns direct sales with no invoice reference.
func (r *SaleRepo) ListLegacy(ctx context.Context) ([]*sale.Sale, error) {
	return r.findAll(ctx, r.baseSelect().Where("invoice_id IS NULL"))
}

func (r *SaleRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(r.selectCols...).
		From(saleTable)
}

func (r *SaleRepo) findAll(ctx context.Context, q squirrel.SelectBuilder) ([]*sale.Sale, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*sale.Sale
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("select sales: %w", err)
	}
	return items, nil
}
