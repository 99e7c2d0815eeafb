// Package ledger_repo provides PostgreSQL implementations for the
// production, cost, and sales ledgers.
package ledger_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/production"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres"
)

const productionTable = "ldg_productions"

// ProductionRepo implements production.Repository.
type ProductionRepo struct {
	txm        *postgres.TxManager
	selectCols []string
}

// NewProductionRepo creates a new production repository.
func NewProductionRepo(txm *postgres.TxManager) *ProductionRepo {
	return &ProductionRepo{
		txm:        txm,
		selectCols: postgres.ExtractDBColumns[production.Production](),
	}
}

func (r *ProductionRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a production record.
func (r *ProductionRepo) Create(ctx context.Context, p *production.Production) error {
	data := postgres.StructToMap(p)

	filtered := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().
		Insert(productionTable).
		SetMap(filtered).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert production: %w", err)
	}
	return nil
}

// Delete removes a production record.
func (r *ProductionRepo) Delete(ctx context.Context, productionID id.ID) error {
	sql, args, err := r.builder().
		Delete(productionTable).
		Where(squirrel.Eq{"id": productionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete production: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("production", productionID.String())
	}
	return nil
}

// GetByID retrieves a production record.
func (r *ProductionRepo) GetByID(ctx context.Context, productionID id.ID) (*production.Production, error) {
	sql, args, err := r.builder().
		Select(r.selectCols...).
		From(productionTable).
		Where(squirrel.Eq{"id": productionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	p := &production.Production{}
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("production", productionID.String())
		}
		return nil, fmt.Errorf("get production: %w", err)
	}
	return p, nil
}

// List returns all production records, newest day first.
func (r *ProductionRepo) List(ctx context.Context) ([]*production.Production, error) {
	return r.findAll(ctx, r.baseSelect().OrderBy("date DESC", "created_at DESC"))
}

// ListByDateRange returns records within an inclusive canonical-form
// date range. Canonical zero-padded dates sort correctly as text.
func (r *ProductionRepo) ListByDateRange(ctx context.Context, from, to string) ([]*production.Production, error) {
	q := r.baseSelect().
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date", "created_at")
	return r.findAll(ctx, q)
}

func (r *ProductionRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(r.selectCols...).
		From(productionTable)
}

func (r *ProductionRepo) findAll(ctx context.Context, q squirrel.SelectBuilder) ([]*production.Production, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*production.Production
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("select productions: %w", err)
	}
	return items, nil
}
