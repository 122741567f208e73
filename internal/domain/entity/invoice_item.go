package entity

import (
	"time"

	"github.com/sangkips/sales-engine-api/pkg/money"
)

// InvoiceItem is a line on an invoice: an item, how many, and at what price
type InvoiceItem struct {
	ID        int64       `gorm:"primaryKey" json:"id"`
	ItemID    int64       `gorm:"not null;index" json:"item_id"`
	InvoiceID int64       `gorm:"not null;index" json:"invoice_id"`
	Quantity  int         `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	UnitPrice money.Cents `gorm:"not null;default:0" json:"unit_price"` // Stored in cents
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	// Relationships
	Item    *Item    `gorm:"foreignKey:ItemID" json:"-"`
	Invoice *Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
