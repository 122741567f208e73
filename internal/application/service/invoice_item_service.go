package service

import (
	"context"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	"github.com/sangkips/sales-engine-api/internal/domain/filter"
	"github.com/sangkips/sales-engine-api/internal/domain/repository"
)

// InvoiceItemService handles invoice line item queries
type InvoiceItemService struct {
	*RecordService[entity.InvoiceItem]
	invoiceRepo repository.InvoiceRepository
	itemRepo    repository.ItemRepository
}

// NewInvoiceItemService creates a new invoice item service
func NewInvoiceItemService(
	invoiceItemRepo repository.InvoiceItemRepository,
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.ItemRepository,
) *InvoiceItemService {
	return &InvoiceItemService{
		RecordService: NewRecordService[entity.InvoiceItem](invoiceItemRepo, filter.InvoiceItems, "Invoice item"),
		invoiceRepo:   invoiceRepo,
		itemRepo:      itemRepo,
	}
}

// Invoice returns the line item's invoice, or nil
func (s *InvoiceItemService) Invoice(ctx context.Context, invoiceItemID int64) (*entity.Invoice, error) {
	ii, err := s.repo.GetByID(ctx, invoiceItemID)
	if err != nil || ii == nil {
		return nil, err
	}
	return s.invoiceRepo.GetByID(ctx, ii.InvoiceID)
}

// Item returns the line item's item, or nil
func (s *InvoiceItemService) Item(ctx context.Context, invoiceItemID int64) (*entity.Item, error) {
	ii, err := s.repo.GetByID(ctx, invoiceItemID)
	if err != nil || ii == nil {
		return nil, err
	}
	return s.itemRepo.GetByID(ctx, ii.ItemID)
}
