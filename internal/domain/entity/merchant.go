package entity

import "time"

// Merchant sells items through invoices
type Merchant struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Items    []Item    `gorm:"foreignKey:MerchantID" json:"-"`
	Invoices []Invoice `gorm:"foreignKey:MerchantID" json:"-"`
}

// TableName returns the table name for the Merchant model
func (Merchant) TableName() string {
	return "merchants"
}
