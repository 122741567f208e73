package entity

import "time"

// Transaction results
const (
	TransactionResultSuccess = "success"
	TransactionResultFailed  = "failed"
)

// Transaction is a payment attempt against an invoice
type Transaction struct {
	ID                       int64     `gorm:"primaryKey" json:"id"`
	InvoiceID                int64     `gorm:"not null;index" json:"invoice_id"`
	CreditCardNumber         string    `gorm:"size:32;not null" json:"credit_card_number"`
	CreditCardExpirationDate *string   `gorm:"size:32" json:"credit_card_expiration_date"`
	Result                   string    `gorm:"size:20;not null;index" json:"result"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`

	// Relationships
	Invoice *Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
