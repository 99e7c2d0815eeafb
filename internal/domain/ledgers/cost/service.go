package cost

import (
	"context"
	"fmt"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/pkg/logger"
)

// Repository defines persistence operations for the cost ledger.
type Repository interface {
	Create(ctx context.Context, c *Cost) error
	Update(ctx context.Context, c *Cost) error
	Delete(ctx context.Context, costID id.ID) error
	GetByID(ctx context.Context, costID id.ID) (*Cost, error)
	List(ctx context.Context) ([]*Cost, error)
}

// Service provides business operations for the cost ledger.
type Service struct {
	repo Repository
}

// NewService creates a new cost service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new cost record.
func (s *Service) Create(ctx context.Context, c *Cost) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return fmt.Errorf("create cost: %w", err)
	}

	logger.Info(ctx, "cost recorded",
		"cost_id", c.ID,
		"type", c.Type,
		"amount", c.Amount,
		"period_type", c.PeriodType,
		"period_value", c.PeriodValue,
	)

	return nil
}

// Update validates and persists cost changes.
func (s *Service) Update(ctx context.Context, c *Cost) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	c.Touch()
	if err := s.repo.Update(ctx, c); err != nil {
		return fmt.Errorf("update cost: %w", err)
	}

	return nil
}

// Delete removes a cost record.
func (s *Service) Delete(ctx context.Context, costID id.ID) error {
	if err := s.repo.Delete(ctx, costID); err != nil {
		return fmt.Errorf("delete cost: %w", err)
	}
	return nil
}

// GetByID retrieves a cost record.
func (s *Service) GetByID(ctx context.Context, costID id.ID) (*Cost, error) {
	return s.repo.GetByID(ctx, costID)
}

// List returns all cost records.
func (s *Service) List(ctx context.Context) ([]*Cost, error) {
	return s.repo.List(ctx)
}
