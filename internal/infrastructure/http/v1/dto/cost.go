package dto

import (
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/cost"
)

// CreateCostRequest for POST /ledgers/costs.
type CreateCostRequest struct {
	Type        cost.Type       `json:"type" binding:"required"`
	Label       string          `json:"label"`
	Amount      types.Money     `json:"amount" binding:"required"`
	PeriodType  cost.PeriodType `json:"periodType" binding:"required,oneof=daily monthly yearly"`
	PeriodValue string          `json:"periodValue" binding:"required"`
	Description string          `json:"description"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateCostRequest) ToEntity() *cost.Cost {
	c := cost.NewCost(r.Type, r.Label, r.Amount, r.PeriodType, r.PeriodValue)
	c.Description = r.Description
	return c
}

// UpdateCostRequest for PUT /ledgers/costs/:id.
type UpdateCostRequest struct {
	Type        *cost.Type       `json:"type,omitempty"`
	Label       *string          `json:"label,omitempty"`
	Amount      *types.Money     `json:"amount,omitempty"`
	PeriodType  *cost.PeriodType `json:"periodType,omitempty"`
	PeriodValue *string          `json:"periodValue,omitempty"`
	Description *string          `json:"description,omitempty"`
	Version     int              `json:"version" binding:"required,min=1"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateCostRequest) ApplyTo(c *cost.Cost) {
	if r.Type != nil {
		c.Type = *r.Type
	}
	if r.Label != nil {
		c.Label = *r.Label
	}
	if r.Amount != nil {
		c.Amount = *r.Amount
	}
	if r.PeriodType != nil {
		c.PeriodType = *r.PeriodType
	}
	if r.PeriodValue != nil {
		c.PeriodValue = *r.PeriodValue
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
	c.SetVersion(r.Version)
}
