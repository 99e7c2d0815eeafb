package production

import (
	"context"
	"fmt"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/jalali"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/catalogs/product"
	"github.com/SinaGanjii/industrial-company-website-sub000/pkg/logger"
)

// Repository defines persistence operations for the production ledger.
type Repository interface {
	Create(ctx context.Context, p *Production) error
	Delete(ctx context.Context, productionID id.ID) error
	GetByID(ctx context.Context, productionID id.ID) (*Production, error)
	List(ctx context.Context) ([]*Production, error)
	ListByDateRange(ctx context.Context, from, to string) ([]*Production, error)
}

// Service provides business operations for the production ledger.
type Service struct {
	repo     Repository
	products product.Repository
}

// NewService creates a new production service.
func NewService(repo Repository, products product.Repository) *Service {
	return &Service{repo: repo, products: products}
}

// Record appends a production record, snapshotting the product name.
func (s *Service) Record(ctx context.Context, p *Production) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	// Snapshot the current product name if not supplied by the caller.
	if p.ProductName == "" {
		prod, err := s.products.GetByID(ctx, p.ProductID)
		if err != nil {
			return err
		}
		p.ProductName = prod.Name
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create production: %w", err)
	}

	logger.Info(ctx, "production recorded",
		"production_id", p.ID,
		"product_id", p.ProductID,
		"quantity", p.Quantity,
		"date", p.Date,
	)

	return nil
}

// Delete removes a production record entirely.
func (s *Service) Delete(ctx context.Context, productionID id.ID) error {
	if err := s.repo.Delete(ctx, productionID); err != nil {
		return fmt.Errorf("delete production: %w", err)
	}
	return nil
}

// List returns all production records.
func (s *Service) List(ctx context.Context) ([]*Production, error) {
	return s.repo.List(ctx)
}

// ListByDateRange returns records within the inclusive [from, to] window.
// Both bounds are normalized before querying, so callers may pass
// Persian-digit or unpadded dates.
func (s *Service) ListByDateRange(ctx context.Context, from, to string) ([]*Production, error) {
	normFrom, err := jalali.NormalizeDateString(from)
	if err != nil {
		return nil, err
	}
	normTo, err := jalali.NormalizeDateString(to)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByDateRange(ctx, normFrom, normTo)
}
