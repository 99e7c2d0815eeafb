package dto

import (
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/production"
)

// RecordProductionRequest for POST /ledgers/productions.
type RecordProductionRequest struct {
	ProductID id.ID            `json:"productId" binding:"required"`
	Quantity  int64            `json:"quantity" binding:"required,min=1"`
	Date      string           `json:"date" binding:"required"`
	Shift     production.Shift `json:"shift" binding:"omitempty,oneof=morning evening night"`
}

// ToEntity converts the request to a domain entity. The product name
// snapshot is filled in by the service.
func (r *RecordProductionRequest) ToEntity() *production.Production {
	return production.NewProduction(r.ProductID, "", r.Quantity, r.Date, r.Shift)
}
