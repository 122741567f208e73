package service

import (
	"context"
	"time"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	"github.com/sangkips/sales-engine-api/internal/domain/filter"
	"github.com/sangkips/sales-engine-api/internal/domain/repository"
	"github.com/sangkips/sales-engine-api/pkg/money"
)

// MerchantService handles merchant queries
type MerchantService struct {
	*RecordService[entity.Merchant]
	items     *RecordService[entity.Item]
	invoices  *RecordService[entity.Invoice]
	analytics repository.AnalyticsRepository
	ranking   RankingOptions
}

// RankingOptions holds defaults for the ranking endpoints
type RankingOptions struct {
	DefaultQuantity int
}

// NewMerchantService creates a new merchant service
func NewMerchantService(
	merchantRepo repository.MerchantRepository,
	itemRepo repository.ItemRepository,
	invoiceRepo repository.InvoiceRepository,
	analytics repository.AnalyticsRepository,
	ranking RankingOptions,
) *MerchantService {
	return &MerchantService{
		RecordService: NewRecordService[entity.Merchant](merchantRepo, filter.Merchants, "Merchant"),
		items:         NewRecordService[entity.Item](itemRepo, filter.Items, "Item"),
		invoices:      NewRecordService[entity.Invoice](invoiceRepo, filter.Invoices, "Invoice"),
		analytics:     analytics,
		ranking:       ranking,
	}
}

// Items returns the merchant's items
func (s *MerchantService) Items(ctx context.Context, merchantID int64) ([]entity.Item, error) {
	return s.items.listBy(ctx, "merchant_id", merchantID)
}

// Invoices returns the merchant's invoices
func (s *MerchantService) Invoices(ctx context.Context, merchantID int64) ([]entity.Invoice, error) {
	return s.invoices.listBy(ctx, "merchant_id", merchantID)
}

// MostRevenue ranks merchants by revenue. A nil quantity uses the configured default.
func (s *MerchantService) MostRevenue(ctx context.Context, quantity *int) ([]entity.Merchant, error) {
	return s.analytics.TopMerchantsByRevenue(ctx, orDefault(quantity, s.ranking.DefaultQuantity))
}

// MostItems ranks merchants by invoice items sold. A nil quantity returns every merchant that sold something.
func (s *MerchantService) MostItems(ctx context.Context, quantity *int) ([]entity.Merchant, error) {
	return s.analytics.TopMerchantsByInvoiceItems(ctx, orDefault(quantity, 0))
}

// Revenue sums one merchant's revenue, optionally for a single day
func (s *MerchantService) Revenue(ctx context.Context, merchantID int64, day *time.Time) (money.Cents, error) {
	return s.analytics.MerchantRevenue(ctx, merchantID, day)
}

// TotalRevenue sums every merchant's revenue for one day
func (s *MerchantService) TotalRevenue(ctx context.Context, day time.Time) (money.Cents, error) {
	return s.analytics.TotalRevenue(ctx, day)
}

// FavoriteCustomer returns the merchant's best customer, or nil
func (s *MerchantService) FavoriteCustomer(ctx context.Context, merchantID int64) (*entity.Customer, error) {
	return s.analytics.FavoriteCustomer(ctx, merchantID)
}

func orDefault(quantity *int, def int) int {
	if quantity == nil {
		return def
	}
	return *quantity
}
