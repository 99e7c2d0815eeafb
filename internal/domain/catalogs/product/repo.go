package product

import (
	"context"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
)

// Repository defines persistence operations for the product catalog.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, productID id.ID) error
	GetByID(ctx context.Context, productID id.ID) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	ExistsByName(ctx context.Context, name string, excludeID id.ID) (bool, error)
}
