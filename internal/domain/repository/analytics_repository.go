package repository

import (
	"context"
	"time"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	"github.com/sangkips/sales-engine-api/pkg/money"
)

// AnalyticsRepository defines the aggregation queries. Every aggregate only
// counts invoice items on paid invoices (at least one successful transaction).
// Rankings break ties by id ascending; a limit <= 0 means no limit.
type AnalyticsRepository interface {
	// TopItemsByRevenue ranks items by sum(quantity * unit_price)
	TopItemsByRevenue(ctx context.Context, limit int) ([]entity.Item, error)

	// TopItemsByInvoiceItems ranks items by how many invoice items reference them
	TopItemsByInvoiceItems(ctx context.Context, limit int) ([]entity.Item, error)

	// TopMerchantsByRevenue ranks merchants by the revenue of their items
	TopMerchantsByRevenue(ctx context.Context, limit int) ([]entity.Merchant, error)

	// TopMerchantsByInvoiceItems ranks merchants by invoice items sold
	TopMerchantsByInvoiceItems(ctx context.Context, limit int) ([]entity.Merchant, error)

	// MerchantRevenue sums the revenue of one merchant's items. When day is
	// non-nil only invoices created on that UTC day are counted.
	MerchantRevenue(ctx context.Context, merchantID int64, day *time.Time) (money.Cents, error)

	// TotalRevenue sums the revenue of every merchant for invoices created on day
	TotalRevenue(ctx context.Context, day time.Time) (money.Cents, error)

	// FavoriteCustomer returns the customer who spent the most on a merchant's items
	FavoriteCustomer(ctx context.Context, merchantID int64) (*entity.Customer, error)

	// FavoriteMerchant returns the merchant a customer spent the most with
	FavoriteMerchant(ctx context.Context, customerID int64) (*entity.Merchant, error)
}
