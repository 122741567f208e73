package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	domainRepo "github.com/sangkips/sales-engine-api/internal/domain/repository"
	"github.com/sangkips/sales-engine-api/pkg/money"
	"gorm.io/gorm"
)

const (
	revenueExpr      = "CAST(SUM(invoice_items.quantity * invoice_items.unit_price) AS BIGINT)"
	invoiceItemsExpr = "COUNT(invoice_items.id)"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) TopItemsByRevenue(ctx context.Context, limit int) ([]entity.Item, error) {
	return r.topItems(ctx, revenueExpr, limit)
}

func (r *analyticsRepository) TopItemsByInvoiceItems(ctx context.Context, limit int) ([]entity.Item, error) {
	return r.topItems(ctx, invoiceItemsExpr, limit)
}

func (r *analyticsRepository) topItems(ctx context.Context, score string, limit int) ([]entity.Item, error) {
	items := make([]entity.Item, 0)
	err := r.db.WithContext(ctx).Model(&entity.Item{}).
		Select("items.*, " + score + " AS score").
		Joins("JOIN invoice_items ON invoice_items.item_id = items.id").
		Scopes(PaidInvoiceItems, Limit(limit)).
		Group("items.id").
		Order("score DESC").
		Order("items.id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank items: %w", err)
	}
	return items, nil
}

func (r *analyticsRepository) TopMerchantsByRevenue(ctx context.Context, limit int) ([]entity.Merchant, error) {
	return r.topMerchants(ctx, revenueExpr, limit)
}

func (r *analyticsRepository) TopMerchantsByInvoiceItems(ctx context.Context, limit int) ([]entity.Merchant, error) {
	return r.topMerchants(ctx, invoiceItemsExpr, limit)
}

func (r *analyticsRepository) topMerchants(ctx context.Context, score string, limit int) ([]entity.Merchant, error) {
	merchants := make([]entity.Merchant, 0)
	err := r.db.WithContext(ctx).Model(&entity.Merchant{}).
		Select("merchants.*, " + score + " AS score").
		Joins("JOIN items ON items.merchant_id = merchants.id").
		Joins("JOIN invoice_items ON invoice_items.item_id = items.id").
		Scopes(PaidInvoiceItems, Limit(limit)).
		Group("merchants.id").
		Order("score DESC").
		Order("merchants.id ASC").
		Find(&merchants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank merchants: %w", err)
	}
	return merchants, nil
}

func (r *analyticsRepository) MerchantRevenue(ctx context.Context, merchantID int64, day *time.Time) (money.Cents, error) {
	query := r.revenue(ctx).
		Joins("JOIN items ON items.id = invoice_items.item_id").
		Where("items.merchant_id = ?", merchantID)
	if day != nil {
		query = query.Scopes(createdOn(*day))
	}

	var total int64
	if err := query.Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum revenue for merchant %d: %w", merchantID, err)
	}
	return money.Cents(total), nil
}

func (r *analyticsRepository) TotalRevenue(ctx context.Context, day time.Time) (money.Cents, error) {
	var total int64
	if err := r.revenue(ctx).Scopes(createdOn(day)).Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return money.Cents(total), nil
}

// revenue starts a single-value revenue sum over paid invoice items
func (r *analyticsRepository) revenue(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&entity.InvoiceItem{}).
		Select("COALESCE(" + revenueExpr + ", 0)").
		Scopes(PaidInvoiceItems)
}

// createdOn restricts invoice items to invoices created during the UTC day
func createdOn(day time.Time) func(db *gorm.DB) *gorm.DB {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
			Where("invoices.created_at >= ? AND invoices.created_at < ?", start, end)
	}
}

func (r *analyticsRepository) FavoriteCustomer(ctx context.Context, merchantID int64) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Select("customers.*, " + revenueExpr + " AS score").
		Joins("JOIN invoices ON invoices.customer_id = customers.id").
		Joins("JOIN invoice_items ON invoice_items.invoice_id = invoices.id").
		Joins("JOIN items ON items.id = invoice_items.item_id").
		Where("items.merchant_id = ?", merchantID).
		Scopes(PaidInvoiceItems).
		Group("customers.id").
		Order("score DESC").
		Order("customers.id ASC").
		Take(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find favorite customer for merchant %d: %w", merchantID, err)
	}
	return &customer, nil
}

func (r *analyticsRepository) FavoriteMerchant(ctx context.Context, customerID int64) (*entity.Merchant, error) {
	var merchant entity.Merchant
	err := r.db.WithContext(ctx).Model(&entity.Merchant{}).
		Select("merchants.*, " + revenueExpr + " AS score").
		Joins("JOIN items ON items.merchant_id = merchants.id").
		Joins("JOIN invoice_items ON invoice_items.item_id = items.id").
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoices.customer_id = ?", customerID).
		Scopes(PaidInvoiceItems).
		Group("merchants.id").
		Order("score DESC").
		Order("merchants.id ASC").
		Take(&merchant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find favorite merchant for customer %d: %w", customerID, err)
	}
	return &merchant, nil
}
