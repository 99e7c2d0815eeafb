package reports

import (
	"context"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/jalali"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/cost"
	"github.com/SinaGanjii/industrial-company-website-sub000/pkg/logger"
)

// CollectCosts returns the costs applicable to the inclusive day window
// [from, to]. Daily costs match when their date falls inside the window,
// monthly costs when their month overlaps any month the window touches.
// Each cost is visited once, so a cost can never be counted twice even
// when the window spans the cost's whole month.
//
// Malformed or incomplete records are excluded and logged rather than
// failing the report; the ledger may hold legacy rows predating the
// period model.
func CollectCosts(ctx context.Context, costs []*cost.Cost, from, to jalali.Date) []*cost.Cost {
	fromMonth := from.MonthOf()
	toMonth := to.MonthOf()

	matched := make([]*cost.Cost, 0, len(costs))
	for _, c := range costs {
		switch c.PeriodType {
		case cost.PeriodDaily:
			value := c.EffectiveDailyValue()
			if value == "" {
				logger.Warn(ctx, "cost excluded from report: no date",
					"cost_id", c.ID, "cost_type", c.Type)
				continue
			}
			d, err := jalali.ParseDate(value)
			if err != nil {
				logger.Warn(ctx, "cost excluded from report: bad date",
					"cost_id", c.ID, "value", value, "error", err)
				continue
			}
			if d.Within(from, to) {
				matched = append(matched, c)
			}

		case cost.PeriodMonthly:
			if c.PeriodValue == "" {
				logger.Warn(ctx, "cost excluded from report: no period value",
					"cost_id", c.ID, "cost_type", c.Type)
				continue
			}
			m, err := jalali.ParseMonth(c.PeriodValue)
			if err != nil {
				logger.Warn(ctx, "cost excluded from report: bad period value",
					"cost_id", c.ID, "value", c.PeriodValue, "error", err)
				continue
			}
			if m.Within(fromMonth, toMonth) {
				matched = append(matched, c)
			}

		case cost.PeriodYearly:
			// Yearly costs are stored but have no report semantics yet.
			logger.Info(ctx, "yearly cost skipped in report",
				"cost_id", c.ID, "cost_type", c.Type)

		default:
			logger.Warn(ctx, "cost excluded from report: no period type",
				"cost_id", c.ID, "cost_type", c.Type)
		}
	}
	return matched
}
