package repository

import (
	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	"github.com/sangkips/sales-engine-api/internal/domain/filter"
	"gorm.io/gorm"
)

// MatchConditions returns a GORM scope that ANDs equality predicates for
// every parsed filter condition. Column names come from the static whitelist
// in the filter package, never from user input.
func MatchConditions(conds []filter.Condition) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range conds {
			db = db.Where(c.Column+" = ?", c.Value)
		}
		return db
	}
}

// PaidInvoiceItems restricts a query joined on invoice_items to rows whose
// invoice has at least one successful transaction
func PaidInvoiceItems(db *gorm.DB) *gorm.DB {
	return db.Where(`EXISTS (
		SELECT 1 FROM transactions
		WHERE transactions.invoice_id = invoice_items.invoice_id
		AND transactions.result = ?
	)`, entity.TransactionResultSuccess)
}

// Limit applies a LIMIT only when n is positive
func Limit(n int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if n > 0 {
			return db.Limit(n)
		}
		return db
	}
}
