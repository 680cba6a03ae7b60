package service

import (
	"context"

	"github.com/Guffawaffle/majel/internal/domain"
	"github.com/Guffawaffle/majel/internal/repository"
)

type receiptService struct {
	receipts repository.ReceiptRepo
}

// NewReceiptService creates the receipt query service.
func NewReceiptService(receipts repository.ReceiptRepo) ReceiptService {
	return &receiptService{receipts: receipts}
}

func (s *receiptService) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	return s.receipts.GetByID(ctx, id)
}

func (s *receiptService) ListRecent(ctx context.Context, limit int) ([]*domain.Receipt, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.receipts.ListRecent(ctx, limit)
}

func (s *receiptService) ListBySession(ctx context.Context, sessionID string) ([]*domain.Receipt, error) {
	return s.receipts.ListBySession(ctx, sessionID)
}
