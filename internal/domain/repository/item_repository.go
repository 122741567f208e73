package repository

import (
	"context"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
)

// ItemRepository defines the interface for item data operations
type ItemRepository interface {
	RecordRepository[entity.Item]
	// ListByInvoice returns the distinct items that appear on an invoice
	ListByInvoice(ctx context.Context, invoiceID int64) ([]entity.Item, error)
}
