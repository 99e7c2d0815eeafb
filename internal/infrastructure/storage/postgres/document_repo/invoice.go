// Package document_repo provides PostgreSQL implementations for document
// repositories.
package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/documents/invoice"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres"
)

const (
	invoiceTable     = "doc_invoices"
	invoiceItemTable = "doc_invoice_items"
)

// InvoiceRepo implements invoice.Repository. The header and its items
// are written together; callers wrap mutations in a transaction.
type InvoiceRepo struct {
	txm        *postgres.TxManager
	headerCols []string
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(txm *postgres.TxManager) *InvoiceRepo {
	return &InvoiceRepo{
		txm:        txm,
		headerCols: postgres.ExtractDBColumns[invoice.Invoice](),
	}
}

func (r *InvoiceRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts the invoice header and all items.
func (r *InvoiceRepo) Create(ctx context.Context, inv *invoice.Invoice) error {
	return r.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		data := postgres.StructToMap(inv)
		filtered := make(map[string]any, len(r.headerCols))
		for _, col := range r.headerCols {
			if val, ok := data[col]; ok {
				filtered[col] = val
			}
		}

		sql, args, err := r.builder().
			Insert(invoiceTable).
			SetMap(filtered).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert invoice: %w", err)
		}

		return r.insertItems(ctx, inv)
	})
}

// Update rewrites the header with optimistic locking and replaces the
// items wholesale. Replacing is simpler than diffing and drafts are the
// only editable state, so churn is low.
func (r *InvoiceRepo) Update(ctx context.Context, inv *invoice.Invoice) error {
	return r.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		data := postgres.StructToMap(inv)
		filtered := make(map[string]any, len(r.headerCols))
		for _, col := range r.headerCols {
			if col == "id" || col == "version" {
				continue
			}
			if val, ok := data[col]; ok {
				filtered[col] = val
			}
		}

		sql, args, err := r.builder().
			Update(invoiceTable).
			SetMap(filtered).
			Set("version", inv.Version).
			Where(squirrel.Eq{"id": inv.ID}).
			Where(squirrel.Eq{"version": inv.Version - 1}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update: %w", err)
		}

		result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperror.NewConcurrentModification("invoice", inv.ID)
		}

		delSQL, delArgs, err := r.builder().
			Delete(invoiceItemTable).
			Where(squirrel.Eq{"document_id": inv.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build delete items: %w", err)
		}
		if _, err := r.txm.GetQuerier(ctx).Exec(ctx, delSQL, delArgs...); err != nil {
			return fmt.Errorf("delete invoice items: %w", err)
		}

		return r.insertItems(ctx, inv)
	})
}

func (r *InvoiceRepo) insertItems(ctx context.Context, inv *invoice.Invoice) error {
	if len(inv.Items) == 0 {
		return nil
	}

	q := r.builder().
		Insert(invoiceItemTable).
		Columns("line_id", "document_id", "line_no", "product_id", "product_name",
			"product_dimensions", "quantity", "unit_price", "total")
	for _, item := range inv.Items {
		q = q.Values(item.LineID, inv.ID, item.LineNo, item.ProductID, item.ProductName,
			item.ProductDimensions, item.Quantity, item.UnitPrice, item.Total)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert items: %w", err)
	}
	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert invoice items: %w", err)
	}
	return nil
}

// GetByID retrieves an invoice with its items.
func (r *InvoiceRepo) GetByID(ctx context.Context, invoiceID id.ID) (*invoice.Invoice, error) {
	return r.get(ctx, invoiceID, false)
}

// GetForUpdate retrieves an invoice with a row lock. Must be called
// inside a transaction; the lock serializes concurrent payment attempts.
func (r *InvoiceRepo) GetForUpdate(ctx context.Context, invoiceID id.ID) (*invoice.Invoice, error) {
	return r.get(ctx, invoiceID, true)
}

func (r *InvoiceRepo) get(ctx context.Context, invoiceID id.ID, forUpdate bool) (*invoice.Invoice, error) {
	q := r.builder().
		Select(r.headerCols...).
		From(invoiceTable).
		Where(squirrel.Eq{"id": invoiceID}).
		Limit(1)
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	inv := &invoice.Invoice{}
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, inv, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("invoice", invoiceID.String())
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	items, err := r.getItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return inv, nil
}

func (r *InvoiceRepo) getItems(ctx context.Context, invoiceID id.ID) ([]invoice.Item, error) {
	sql, args, err := r.builder().
		Select("line_id", "line_no", "product_id", "product_name",
			"product_dimensions", "quantity", "unit_price", "total").
		From(invoiceItemTable).
		Where(squirrel.Eq{"document_id": invoiceID}).
		OrderBy("line_no").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []invoice.Item
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("get invoice items: %w", err)
	}
	return items, nil
}

// List returns all invoices with their items, newest first.
func (r *InvoiceRepo) List(ctx context.Context) ([]*invoice.Invoice, error) {
	sql, args, err := r.builder().
		Select(r.headerCols...).
		From(invoiceTable).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var invoices []*invoice.Invoice
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &invoices, sql, args...); err != nil {
		return nil, fmt.Errorf("select invoices: %w", err)
	}

	for _, inv := range invoices {
		items, err := r.getItems(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		inv.Items = items
	}
	return invoices, nil
}

// ExistsByNumber checks for another invoice with the same number.
func (r *InvoiceRepo) ExistsByNumber(ctx context.Context, number string, excludeID id.ID) (bool, error) {
	q := r.builder().
		Select("COUNT(*)").
		From(invoiceTable).
		Where(squirrel.Eq{"number": number})
	if !id.IsNil(excludeID) {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("count invoices: %w", err)
	}
	return count > 0, nil
}
