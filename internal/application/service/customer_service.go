package service

import (
	"context"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	"github.com/sangkips/sales-engine-api/internal/domain/filter"
	"github.com/sangkips/sales-engine-api/internal/domain/repository"
)

// CustomerService handles customer queries
type CustomerService struct {
	*RecordService[entity.Customer]
	invoices        *RecordService[entity.Invoice]
	transactionRepo repository.TransactionRepository
	analytics       repository.AnalyticsRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	transactionRepo repository.TransactionRepository,
	analytics repository.AnalyticsRepository,
) *CustomerService {
	return &CustomerService{
		RecordService:   NewRecordService[entity.Customer](customerRepo, filter.Customers, "Customer"),
		invoices:        NewRecordService[entity.Invoice](invoiceRepo, filter.Invoices, "Invoice"),
		transactionRepo: transactionRepo,
		analytics:       analytics,
	}
}

// Invoices returns the customer's invoices
func (s *CustomerService) Invoices(ctx context.Context, customerID int64) ([]entity.Invoice, error) {
	return s.invoices.listBy(ctx, "customer_id", customerID)
}

// Transactions returns the transactions on the customer's invoices
func (s *CustomerService) Transactions(ctx context.Context, customerID int64) ([]entity.Transaction, error) {
	return s.transactionRepo.ListByCustomer(ctx, customerID)
}

// FavoriteMerchant returns the merchant the customer spent the most with, or nil
func (s *CustomerService) FavoriteMerchant(ctx context.Context, customerID int64) (*entity.Merchant, error) {
	return s.analytics.FavoriteMerchant(ctx, customerID)
}
