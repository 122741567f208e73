package service

import (
	"context"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	"github.com/sangkips/sales-engine-api/internal/domain/filter"
	"github.com/sangkips/sales-engine-api/internal/domain/repository"
)

// ItemService handles item queries
type ItemService struct {
	*RecordService[entity.Item]
	merchantRepo repository.MerchantRepository
	invoiceItems *RecordService[entity.InvoiceItem]
	analytics    repository.AnalyticsRepository
	ranking      RankingOptions
}

// NewItemService creates a new item service
func NewItemService(
	itemRepo repository.ItemRepository,
	merchantRepo repository.MerchantRepository,
	invoiceItemRepo repository.InvoiceItemRepository,
	analytics repository.AnalyticsRepository,
	ranking RankingOptions,
) *ItemService {
	return &ItemService{
		RecordService: NewRecordService[entity.Item](itemRepo, filter.Items, "Item"),
		merchantRepo:  merchantRepo,
		invoiceItems:  NewRecordService[entity.InvoiceItem](invoiceItemRepo, filter.InvoiceItems, "Invoice item"),
		analytics:     analytics,
		ranking:       ranking,
	}
}

// Merchant returns the merchant selling the item, or nil
func (s *ItemService) Merchant(ctx context.Context, itemID int64) (*entity.Merchant, error) {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil || item == nil {
		return nil, err
	}
	return s.merchantRepo.GetByID(ctx, item.MerchantID)
}

// InvoiceItems returns every line item referencing the item
func (s *ItemService) InvoiceItems(ctx context.Context, itemID int64) ([]entity.InvoiceItem, error) {
	return s.invoiceItems.listBy(ctx, "item_id", itemID)
}

// MostRevenue ranks items by revenue. A nil quantity uses the configured default.
func (s *ItemService) MostRevenue(ctx context.Context, quantity *int) ([]entity.Item, error) {
	return s.analytics.TopItemsByRevenue(ctx, orDefault(quantity, s.ranking.DefaultQuantity))
}

// MostItems ranks items by invoice item count. A nil quantity returns every ranked item.
func (s *ItemService) MostItems(ctx context.Context, quantity *int) ([]entity.Item, error) {
	return s.analytics.TopItemsByInvoiceItems(ctx, orDefault(quantity, 0))
}
