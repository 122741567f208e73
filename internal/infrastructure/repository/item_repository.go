package repository

import (
	"context"
	"fmt"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	domainRepo "github.com/sangkips/sales-engine-api/internal/domain/repository"
	"gorm.io/gorm"
)

type itemRepository struct {
	recordRepository[entity.Item]
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &itemRepository{newRecordRepository[entity.Item](db, "items")}
}

func (r *itemRepository) ListByInvoice(ctx context.Context, invoiceID int64) ([]entity.Item, error) {
	itemIDs := r.db.Model(&entity.InvoiceItem{}).
		Select("invoice_items.item_id").
		Where("invoice_items.invoice_id = ?", invoiceID)

	items := make([]entity.Item, 0)
	err := r.model(ctx).
		Where("items.id IN (?)", itemIDs).
		Order(r.byID()).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list items for invoice %d: %w", invoiceID, err)
	}
	return items, nil
}
