package service

import (
	"context"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	"github.com/sangkips/sales-engine-api/internal/domain/filter"
	"github.com/sangkips/sales-engine-api/internal/domain/repository"
)

// InvoiceService handles invoice queries
type InvoiceService struct {
	*RecordService[entity.Invoice]
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
	merchantRepo repository.MerchantRepository
	invoiceItems *RecordService[entity.InvoiceItem]
	transactions *RecordService[entity.Transaction]
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
	merchantRepo repository.MerchantRepository,
	invoiceItemRepo repository.InvoiceItemRepository,
	transactionRepo repository.TransactionRepository,
) *InvoiceService {
	return &InvoiceService{
		RecordService: NewRecordService[entity.Invoice](invoiceRepo, filter.Invoices, "Invoice"),
		itemRepo:      itemRepo,
		customerRepo:  customerRepo,
		merchantRepo:  merchantRepo,
		invoiceItems:  NewRecordService[entity.InvoiceItem](invoiceItemRepo, filter.InvoiceItems, "Invoice item"),
		transactions:  NewRecordService[entity.Transaction](transactionRepo, filter.Transactions, "Transaction"),
	}
}

// Transactions returns the payment attempts on the invoice
func (s *InvoiceService) Transactions(ctx context.Context, invoiceID int64) ([]entity.Transaction, error) {
	return s.transactions.listBy(ctx, "invoice_id", invoiceID)
}

// InvoiceItems returns the invoice's line items
func (s *InvoiceService) InvoiceItems(ctx context.Context, invoiceID int64) ([]entity.InvoiceItem, error) {
	return s.invoiceItems.listBy(ctx, "invoice_id", invoiceID)
}

// Items returns the distinct items on the invoice
func (s *InvoiceService) Items(ctx context.Context, invoiceID int64) ([]entity.Item, error) {
	return s.itemRepo.ListByInvoice(ctx, invoiceID)
}

// Customer returns the invoice's customer, or nil
func (s *InvoiceService) Customer(ctx context.Context, invoiceID int64) (*entity.Customer, error) {
	invoice, err := s.repo.GetByID(ctx, invoiceID)
	if err != nil || invoice == nil {
		return nil, err
	}
	return s.customerRepo.GetByID(ctx, invoice.CustomerID)
}

// Merchant returns the invoice's merchant, or nil
func (s *InvoiceService) Merchant(ctx context.Context, invoiceID int64) (*entity.Merchant, error) {
	invoice, err := s.repo.GetByID(ctx, invoiceID)
	if err != nil || invoice == nil {
		return nil, err
	}
	return s.merchantRepo.GetByID(ctx, invoice.MerchantID)
}
