package dto

import (
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/catalogs/product"
)

// CreateProductRequest for POST /catalogs/products.
type CreateProductRequest struct {
	Name       string      `json:"name" binding:"required"`
	Dimensions string      `json:"dimensions"`
	Material   string      `json:"material"`
	UnitPrice  types.Money `json:"unitPrice" binding:"required"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.NewProduct(r.Name, r.UnitPrice)
	p.Dimensions = r.Dimensions
	p.Material = r.Material
	return p
}

// UpdateProductRequest for PUT /catalogs/products/:id.
type UpdateProductRequest struct {
	Name       *string      `json:"name,omitempty"`
	Dimensions *string      `json:"dimensions,omitempty"`
	Material   *string      `json:"material,omitempty"`
	UnitPrice  *types.Money `json:"unitPrice,omitempty"`
	Version    int          `json:"version" binding:"required,min=1"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Dimensions != nil {
		p.Dimensions = *r.Dimensions
	}
	if r.Material != nil {
		p.Material = *r.Material
	}
	if r.UnitPrice != nil {
		p.UnitPrice = *r.UnitPrice
	}
	p.SetVersion(r.Version)
}
