package repository

import (
	"context"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	RecordRepository[entity.Transaction]
	// ListByCustomer returns the transactions on every invoice of a customer
	ListByCustomer(ctx context.Context, customerID int64) ([]entity.Transaction, error)
}
