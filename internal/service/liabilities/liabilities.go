package liabilities

import (
	"context"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/repository"
)

// Service is the computed liability view over the payroll collection.
// A liability exists exactly while a payroll's payment status is
// Overdue; nothing is stored separately.
type Service struct {
	payrolls repository.PayrollStore
}

func NewService(payrolls repository.PayrollStore) *Service {
	return &Service{payrolls: payrolls}
}

// List projects every Overdue payroll into the liability shape.
func (s *Service) List(ctx context.Context) ([]models.Liability, error) {
	overdue, err := s.payrolls.ListByStatus(ctx, models.PayrollStatusOverdue)
	if err != nil {
		return nil, err
	}

	liabilities := make([]models.Liability, 0, len(overdue))
	for _, p := range overdue {
		liabilities = append(liabilities, p.AsLiability())
	}
	return liabilities, nil
}

// Pay resolves the liability by flipping the payroll to Paid. The
// record drops out of subsequent listings.
func (s *Service) Pay(ctx context.Context, id string) (*models.Liability, error) {
	payroll, err := s.payrolls.SetStatus(ctx, id, models.PayrollStatusPaid)
	if err != nil {
		return nil, err
	}
	l := payroll.AsLiability()
	return &l, nil
}

// AddNotes attaches free text directly on the payroll record.
func (s *Service) AddNotes(ctx context.Context, id, notes string) (*models.Liability, error) {
	payroll, err := s.payrolls.SetNotes(ctx, id, notes)
	if err != nil {
		return nil, err
	}
	l := payroll.AsLiability()
	return &l, nil
}
