package repository

import "github.com/sangkips/sales-engine-api/internal/domain/entity"

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	RecordRepository[entity.Invoice]
}

// InvoiceItemRepository defines the interface for invoice line item data operations
type InvoiceItemRepository interface {
	RecordRepository[entity.InvoiceItem]
}
