package billing

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/repository"
)

// Service wraps payment persistence with the idempotency rules: a
// transaction id is generated when the client omits one, and a
// duplicate id answers the stored record instead of a second insert.
type Service struct {
	payments repository.PaymentStore
	logger   *zap.Logger
}

func NewService(payments repository.PaymentStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{payments: payments, logger: logger}
}

// CreatePayment persists the payment exactly once. The second return
// is true when the transaction id was already applied.
func (s *Service) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, bool, error) {
	if payment.TransactionID == "" {
		payment.TransactionID = uuid.New().String()
	}
	if payment.Status == "" {
		payment.Status = models.PaymentStatusPending
	}

	created, stored, err := s.payments.Insert(ctx, payment)
	if err != nil {
		return nil, false, err
	}
	if !created {
		s.logger.Info("duplicate payment treated as already-applied",
			zap.String("transaction_id", payment.TransactionID))
	}
	return stored, !created, nil
}

// ListTransactions returns payments newest first, optionally filtered
// by type. An empty type means no filter.
func (s *Service) ListTransactions(ctx context.Context, txType string) ([]models.Payment, error) {
	return s.payments.ListByType(ctx, txType)
}

// DeleteTransaction removes one payment by id.
func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	return s.payments.Delete(ctx, id)
}
