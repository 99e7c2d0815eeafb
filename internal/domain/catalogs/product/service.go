package product

import (
	"context"
	"fmt"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/pkg/logger"
)

// Service provides business logic for the product catalog.
type Service struct {
	repo Repository
}

// NewService creates a new product service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new product.
func (s *Service) Create(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	if exists, _ := s.repo.ExistsByName(ctx, p.Name, id.Nil()); exists {
		return apperror.NewDuplicate("product", "name", p.Name)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	logger.Info(ctx, "product created", "product_id", p.ID, "name", p.Name)
	return nil
}

// Update validates and persists product changes. Already-issued invoices and
// production records keep their snapshots; nothing is recomputed.
func (s *Service) Update(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	if exists, _ := s.repo.ExistsByName(ctx, p.Name, p.ID); exists {
		return apperror.NewDuplicate("product", "name", p.Name)
	}

	p.Touch()
	if err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	return nil
}

// Delete removes the product. Historical production and sale records carry
// their own name snapshots and remain valid.
func (s *Service) Delete(ctx context.Context, productID id.ID) error {
	if err := s.repo.Delete(ctx, productID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	logger.Info(ctx, "product deleted", "product_id", productID)
	return nil
}

// GetByID retrieves a product.
func (s *Service) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	return s.repo.GetByID(ctx, productID)
}

// List retrieves all products.
func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}
