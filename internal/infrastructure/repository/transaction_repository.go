package repository

import (
	"context"
	"fmt"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	domainRepo "github.com/sangkips/sales-engine-api/internal/domain/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	recordRepository[entity.Transaction]
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{newRecordRepository[entity.Transaction](db, "transactions")}
}

func (r *transactionRepository) ListByCustomer(ctx context.Context, customerID int64) ([]entity.Transaction, error) {
	invoiceIDs := r.db.Model(&entity.Invoice{}).
		Select("invoices.id").
		Where("invoices.customer_id = ?", customerID)

	transactions := make([]entity.Transaction, 0)
	err := r.model(ctx).
		Where("transactions.invoice_id IN (?)", invoiceIDs).
		Order(r.byID()).
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for customer %d: %w", customerID, err)
	}
	return transactions, nil
}
