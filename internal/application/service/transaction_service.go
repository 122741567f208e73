package service

import (
	"context"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	"github.com/sangkips/sales-engine-api/internal/domain/filter"
	"github.com/sangkips/sales-engine-api/internal/domain/repository"
)

// TransactionService handles transaction queries
type TransactionService struct {
	*RecordService[entity.Transaction]
	invoiceRepo repository.InvoiceRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactionRepo repository.TransactionRepository, invoiceRepo repository.InvoiceRepository) *TransactionService {
	return &TransactionService{
		RecordService: NewRecordService[entity.Transaction](transactionRepo, filter.Transactions, "Transaction"),
		invoiceRepo:   invoiceRepo,
	}
}

// Invoice returns the invoice the transaction paid for, or nil
func (s *TransactionService) Invoice(ctx context.Context, transactionID int64) (*entity.Invoice, error) {
	tx, err := s.repo.GetByID(ctx, transactionID)
	if err != nil || tx == nil {
		return nil, err
	}
	return s.invoiceRepo.GetByID(ctx, tx.InvoiceID)
}
