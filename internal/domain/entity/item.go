package entity

import (
	"time"

	"github.com/sangkips/sales-engine-api/pkg/money"
)

// Item is a product offered by a single merchant
type Item struct {
	ID          int64       `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"size:255;not null;index" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	UnitPrice   money.Cents `gorm:"not null;default:0" json:"unit_price"` // Stored in cents
	MerchantID  int64       `gorm:"not null;index" json:"merchant_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Relationships
	Merchant     *Merchant     `gorm:"foreignKey:MerchantID" json:"-"`
	InvoiceItems []InvoiceItem `gorm:"foreignKey:ItemID" json:"-"`
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
