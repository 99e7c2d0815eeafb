package invoice

import (
	"context"
	"fmt"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/apperror"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/jalali"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/sale"
	"github.com/SinaGanjii/industrial-company-website-sub000/pkg/logger"
)

// Repository defines persistence operations for invoices.
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	Update(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, invoiceID id.ID) (*Invoice, error)

	// GetForUpdate locks the invoice row for the current transaction.
	GetForUpdate(ctx context.Context, invoiceID id.ID) (*Invoice, error)

	List(ctx context.Context) ([]*Invoice, error)
	ExistsByNumber(ctx context.Context, number string, excludeID id.ID) (bool, error)
}

// TxRunner executes a function within a database transaction.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides invoice lifecycle operations.
type Service struct {
	repo  Repository
	sales sale.Repository
	tx    TxRunner
}

// NewService creates a new invoice service.
func NewService(repo Repository, sales sale.Repository, tx TxRunner) *Service {
	return &Service{repo: repo, sales: sales, tx: tx}
}

// Create persists a new draft invoice.
func (s *Service) Create(ctx context.Context, inv *Invoice) error {
	if err := inv.Validate(ctx); err != nil {
		return err
	}

	if exists, _ := s.repo.ExistsByNumber(ctx, inv.Number, id.Nil()); exists {
		return apperror.NewDuplicate("invoice", "number", inv.Number)
	}

	inv.Status = StatusDraft
	inv.RecalculateTotals()

	if err := s.repo.Create(ctx, inv); err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}

	logger.Info(ctx, "invoice created",
		"invoice_id", inv.ID,
		"number", inv.Number,
		"total", inv.Total,
	)

	return nil
}

// Update replaces the content of a draft invoice.
func (s *Service) Update(ctx context.Context, inv *Invoice) error {
	existing, err := s.repo.GetByID(ctx, inv.ID)
	if err != nil {
		return err
	}

	if err := existing.CanModify(); err != nil {
		return err
	}

	if err := inv.Validate(ctx); err != nil {
		return err
	}

	inv.Status = existing.Status
	inv.RecalculateTotals()
	inv.Touch()

	if err := s.repo.Update(ctx, inv); err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}

	return nil
}

// Approve moves a draft invoice to approved.
func (s *Service) Approve(ctx context.Context, invoiceID id.ID) error {
	return s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		inv, err := s.repo.GetForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}

		if err := inv.Transition(StatusApproved); err != nil {
			return err
		}

		if err := s.repo.Update(ctx, inv); err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}

		logger.Info(ctx, "invoice approved", "invoice_id", inv.ID, "number", inv.Number)
		return nil
	})
}

// MarkPaid moves an approved invoice to paid and synthesizes its Sale rows.
// The whole operation runs in one transaction with the invoice row locked,
// and the sales table carries a unique constraint on invoice_id, so two
// concurrent calls cannot both generate sales.
func (s *Service) MarkPaid(ctx context.Context, invoiceID id.ID, paidDate string) error {
	normalized, err := jalali.NormalizeDateString(paidDate)
	if err != nil {
		return err
	}

	return s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		inv, err := s.repo.GetForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}

		if err := inv.Transition(StatusPaid); err != nil {
			return err
		}

		// Idempotency guard: a paid invoice produces sales exactly once.
		if exists, err := s.sales.ExistsByInvoice(ctx, invoiceID); err != nil {
			return fmt.Errorf("check existing sales: %w", err)
		} else if exists {
			return apperror.NewSalesAlreadyGenerated(invoiceID.String())
		}

		inv.PaidDate = normalized
		if err := s.repo.Update(ctx, inv); err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}

		sales := inv.GenerateSales(normalized)
		if err := s.sales.CreateBatch(ctx, sales); err != nil {
			return fmt.Errorf("create sales: %w", err)
		}

		logger.Info(ctx, "invoice paid",
			"invoice_id", inv.ID,
			"number", inv.Number,
			"paid_date", normalized,
			"sales_count", len(sales),
		)

		return nil
	})
}

// GetByID retrieves an invoice with its items.
func (s *Service) GetByID(ctx context.Context, invoiceID id.ID) (*Invoice, error) {
	return s.repo.GetByID(ctx, invoiceID)
}

// List retrieves all invoices.
func (s *Service) List(ctx context.Context) ([]*Invoice, error) {
	return s.repo.List(ctx)
}
