package repository

import (
	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	domainRepo "github.com/sangkips/sales-engine-api/internal/domain/repository"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	recordRepository[entity.Invoice]
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{newRecordRepository[entity.Invoice](db, "invoices")}
}

type invoiceItemRepository struct {
	recordRepository[entity.InvoiceItem]
}

// NewInvoiceItemRepository creates a new invoice item repository
func NewInvoiceItemRepository(db *gorm.DB) domainRepo.InvoiceItemRepository {
	return &invoiceItemRepository{newRecordRepository[entity.InvoiceItem](db, "invoice_items")}
}
