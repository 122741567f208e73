package entity

import "time"

// Invoice groups the line items a customer bought from a merchant
type Invoice struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	CustomerID int64     `gorm:"not null;index" json:"customer_id"`
	MerchantID int64     `gorm:"not null;index" json:"merchant_id"`
	Status     string    `gorm:"size:50;not null" json:"status"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Customer     *Customer     `gorm:"foreignKey:CustomerID" json:"-"`
	Merchant     *Merchant     `gorm:"foreignKey:MerchantID" json:"-"`
	InvoiceItems []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:InvoiceID" json:"-"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
