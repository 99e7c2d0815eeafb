// Package cost provides the period cost ledger: electricity, water, gas,
// salaries, rent, and other workshop expenses recorded against a daily or
// monthly period.
package cost

import (
	"context"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/entity"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/jalali"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
)

// Type categorizes a cost record.
type Type string

const (
	TypeElectricity Type = "electricity"
	TypeWater       Type = "water"
	TypeGas         Type = "gas"
	TypeSalary      Type = "salary"
	TypeRent        Type = "rent"
	TypeOther       Type = "other"
)

// PeriodType declares the granularity the cost was recorded under.
type PeriodType string

const (
	PeriodDaily   PeriodType = "daily"
	PeriodMonthly PeriodType = "monthly"

	// PeriodYearly is accepted by the data model but not matched by report
	// aggregation; see the reports package.
	PeriodYearly PeriodType = "yearly"
)

// Cost is a single expense record. PeriodType and PeriodValue are the
// authoritative period fields; Legacy carries deprecated fields kept only
// for records imported from the old admin panel.
type Cost struct {
	entity.BaseEntity

	Type  Type   `db:"type" json:"type"`
	Label string `db:"label" json:"label"`

	// Amount in Rial, never negative.
	Amount types.Money `db:"amount" json:"amount"`

	// PeriodType is "daily", "monthly", or "yearly".
	PeriodType PeriodType `db:"period_type" json:"periodType"`

	// PeriodValue is "YYYY/MM/DD" for daily and "YYYY/MM" for monthly,
	// stored in canonical zero-padded Western-digit form.
	PeriodValue string `db:"period_value" json:"periodValue"`

	Description string `db:"description" json:"description,omitempty"`

	Legacy LegacyFields `json:"legacy,omitempty"`
}

// LegacyFields holds deprecated cost fields. Current allocation logic only
// consults Date as a fallback for daily costs missing PeriodValue; the other
// fields are carried for round-tripping old records and nothing else.
// New code must not branch on them.
type LegacyFields struct {
	Date           string `db:"legacy_date" json:"date,omitempty"`
	ProductID      *id.ID `db:"legacy_product_id" json:"productId,omitempty"`
	ProductionDate string `db:"legacy_production_date" json:"productionDate,omitempty"`
}

// NewCost creates a cost record with a generated ID.
func NewCost(costType Type, label string, amount types.Money, periodType PeriodType, periodValue string) *Cost {
	return &Cost{
		BaseEntity:  entity.NewBaseEntity(),
		Type:        costType,
		Label:       label,
		Amount:      amount,
		PeriodType:  periodType,
		PeriodValue: periodValue,
	}
}

// EffectiveDailyValue returns the day-level period for a daily cost,
// falling back to the legacy date field when PeriodValue is empty.
func (c *Cost) EffectiveDailyValue() string {
	if c.PeriodValue != "" {
		return c.PeriodValue
	}
	return c.Legacy.Date
}

// Validate implements entity.Validatable. PeriodValue is normalized to
// canonical form as a side effect.
func (c *Cost) Validate(ctx context.Context) error {
	if !isValidType(c.Type) {
		return apperror.NewValidation("invalid cost type").
			WithDetail("field", "type").
			WithDetail("value", string(c.Type))
	}

	if c.Amount.IsNegative() {
		return apperror.NewValidation("amount cannot be negative").
			WithDetail("field", "amount")
	}

	if c.PeriodType == "" || c.PeriodValue == "" {
		return apperror.NewValidation("periodType and periodValue are required").
			WithDetail("field", "periodType")
	}

	switch c.PeriodType {
	case PeriodDaily:
		normalized, err := jalali.NormalizeDateString(c.PeriodValue)
		if err != nil {
			return err
		}
		c.PeriodValue = normalized
	case PeriodMonthly:
		normalized, err := jalali.NormalizeMonthString(c.PeriodValue)
		if err != nil {
			return err
		}
		c.PeriodValue = normalized
	case PeriodYearly:
		// Accepted by the model; report aggregation does not match it.
		normalized := jalali.NormalizeDigits(c.PeriodValue)
		if len(normalized) != 4 {
			return apperror.NewValidation("invalid yearly period, expected YYYY").
				WithDetail("field", "periodValue").
				WithDetail("value", c.PeriodValue)
		}
		c.PeriodValue = normalized
	default:
		return apperror.NewValidation("invalid period type").
			WithDetail("field", "periodType").
			WithDetail("value", string(c.PeriodType))
	}

	return nil
}

func isValidType(t Type) bool {
	switch t {
	case TypeElectricity, TypeWater, TypeGas, TypeSalary, TypeRent, TypeOther:
		return true
	}
	return false
}
