package ledger_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/entity"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/cost"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres"
)

const costTable = "ldg_costs"

// costRow is the flat scan target; legacy fields live in dedicated
// columns but are nested in the domain struct.
type costRow struct {
	ID                   id.ID           `db:"id"`
	Version              int             `db:"version"`
	CreatedAt            time.Time       `db:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at"`
	Type                 cost.Type       `db:"type"`
	Label                string          `db:"label"`
	Amount               types.Money     `db:"amount"`
	PeriodType           cost.PeriodType `db:"period_type"`
	PeriodValue          string          `db:"period_value"`
	Description          string          `db:"description"`
	LegacyDate           string          `db:"legacy_date"`
	LegacyProductID      *id.ID          `db:"legacy_product_id"`
	LegacyProductionDate string          `db:"legacy_production_date"`
}

func (row *costRow) toDomain() *cost.Cost {
	return &cost.Cost{
		BaseEntity: entity.BaseEntity{
			ID:        row.ID,
			Version:   row.Version,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		Type:        row.Type,
		Label:       row.Label,
		Amount:      row.Amount,
		PeriodType:  row.PeriodType,
		PeriodValue: row.PeriodValue,
		Description: row.Description,
		Legacy: cost.LegacyFields{
			Date:           row.LegacyDate,
			ProductID:      row.LegacyProductID,
			ProductionDate: row.LegacyProductionDate,
		},
	}
}

func costToMap(c *cost.Cost) map[string]any {
	return map[string]any{
		"id":                     c.ID,
		"version":                c.Version,
		"created_at":             c.CreatedAt,
		"updated_at":             c.UpdatedAt,
		"type":                   c.Type,
		"label":                  c.Label,
		"amount":                 c.Amount,
		"period_type":            c.PeriodType,
		"period_value":           c.PeriodValue,
		"description":            c.Description,
		"legacy_date":            c.Legacy.Date,
		"legacy_product_id":      c.Legacy.ProductID,
		"legacy_production_date": c.Legacy.ProductionDate,
	}
}

// CostRepo implements cost.Repository.
type CostRepo struct {
	txm        *postgres.TxManager
	selectCols []string
}

// NewCostRepo creates a new cost repository.
func NewCostRepo(txm *postgres.TxManager) *CostRepo {
	return &CostRepo{
		txm:        txm,
		selectCols: postgres.ExtractDBColumns[costRow](),
	}
}

func (r *CostRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a cost record.
func (r *CostRepo) Create(ctx context.Context, c *cost.Cost) error {
	sql, args, err := r.builder().
		Insert(costTable).
		SetMap(costToMap(c)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert cost: %w", err)
	}
	return nil
}

// Update modifies a cost record with optimistic locking.
func (r *CostRepo) Update(ctx context.Context, c *cost.Cost) error {
	data := costToMap(c)
	delete(data, "id")
	delete(data, "version")

	sql, args, err := r.builder().
		Update(costTable).
		SetMap(data).
		Set("version", c.Version).
		Where(squirrel.Eq{"id": c.ID}).
		Where(squirrel.Eq{"version": c.Version - 1}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update cost: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("cost", c.ID)
	}
	return nil
}

// Delete removes a cost record.
func (r *CostRepo) Delete(ctx context.Context, costID id.ID) error {
	sql, args, err := r.builder().
		Delete(costTable).
		Where(squirrel.Eq{"id": costID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete cost: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("cost", costID.String())
	}
	return nil
}

// GetByID retrieves a cost record.
func (r *CostRepo) GetByID(ctx context.Context, costID id.ID) (*cost.Cost, error) {
	sql, args, err := r.builder().
		Select(r.selectCols...).
		From(costTable).
		Where(squirrel.Eq{"id": costID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := &costRow{}
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("cost", costID.String())
		}
		return nil, fmt.Errorf("get cost: %w", err)
	}
	return row.toDomain(), nil
}

// List returns all cost records, newest first.
func (r *CostRepo) List(ctx context.Context) ([]*cost.Cost, error) {
	sql, args, err := r.builder().
		Select(r.selectCols...).
		From(costTable).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []*costRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select costs: %w", err)
	}

	costs := make([]*cost.Cost, 0, len(rows))
	for _, row := range rows {
		costs = append(costs, row.toDomain())
	}
	return costs, nil
}
