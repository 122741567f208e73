// Package testutil provides an in-memory database and record builders for tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sangkips/sales-engine-api/internal/config"
	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	"github.com/sangkips/sales-engine-api/internal/infrastructure/database"
	"github.com/sangkips/sales-engine-api/pkg/money"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// NewDB opens a migrated, isolated in-memory SQLite database for one test.
// A single connection keeps the shared-cache database alive for the test's duration.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver:       database.DriverSQLite,
		Path:         fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1)),
		MaxIdleConns: 1,
		MaxOpenConns: 1,
		LogLevel:     "silent",
	}

	db, err := database.Open(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Fixtures creates records with sensible defaults
type Fixtures struct {
	t   *testing.T
	db  *gorm.DB
	seq int
}

// NewFixtures returns a record builder bound to db
func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, db: db}
}

// Timestamp is the creation time used for every fixture unless overridden
var Timestamp = time.Date(2012, 3, 27, 14, 54, 9, 0, time.UTC)

func (f *Fixtures) next() int {
	f.seq++
	return f.seq
}

func (f *Fixtures) create(rec any) {
	f.t.Helper()
	if err := f.db.Create(rec).Error; err != nil {
		f.t.Fatalf("Failed to create fixture %T: %v", rec, err)
	}
}

// Merchant creates a merchant
func (f *Fixtures) Merchant() *entity.Merchant {
	f.t.Helper()
	m := &entity.Merchant{Name: fmt.Sprintf("Merchant %d", f.next()), CreatedAt: Timestamp, UpdatedAt: Timestamp}
	f.create(m)
	return m
}

// Customer creates a customer
func (f *Fixtures) Customer() *entity.Customer {
	f.t.Helper()
	n := f.next()
	c := &entity.Customer{
		FirstName: fmt.Sprintf("First%d", n),
		LastName:  fmt.Sprintf("Last%d", n),
		CreatedAt: Timestamp,
		UpdatedAt: Timestamp,
	}
	f.create(c)
	return c
}

// Item creates an item for merchant with the given unit price in cents
func (f *Fixtures) Item(merchant *entity.Merchant, unitPrice money.Cents) *entity.Item {
	f.t.Helper()
	n := f.next()
	i := &entity.Item{
		Name:        fmt.Sprintf("Item %d", n),
		Description: fmt.Sprintf("Description %d", n),
		UnitPrice:   unitPrice,
		MerchantID:  merchant.ID,
		CreatedAt:   Timestamp,
		UpdatedAt:   Timestamp,
	}
	f.create(i)
	return i
}

// Invoice creates a shipped invoice created at Timestamp
func (f *Fixtures) Invoice(customer *entity.Customer, merchant *entity.Merchant) *entity.Invoice {
	f.t.Helper()
	return f.InvoiceAt(customer, merchant, Timestamp)
}

// InvoiceAt creates a shipped invoice created at the given time
func (f *Fixtures) InvoiceAt(customer *entity.Customer, merchant *entity.Merchant, at time.Time) *entity.Invoice {
	f.t.Helper()
	inv := &entity.Invoice{
		CustomerID: customer.ID,
		MerchantID: merchant.ID,
		Status:     "shipped",
		CreatedAt:  at,
		UpdatedAt:  at,
	}
	f.create(inv)
	return inv
}

// InvoiceItem creates a line item
func (f *Fixtures) InvoiceItem(invoice *entity.Invoice, item *entity.Item, quantity int, unitPrice money.Cents) *entity.InvoiceItem {
	f.t.Helper()
	ii := &entity.InvoiceItem{
		ItemID:    item.ID,
		InvoiceID: invoice.ID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		CreatedAt: Timestamp,
		UpdatedAt: Timestamp,
	}
	f.create(ii)
	return ii
}

// Transaction creates a transaction with the given result
func (f *Fixtures) Transaction(invoice *entity.Invoice, result string) *entity.Transaction {
	f.t.Helper()
	tx := &entity.Transaction{
		InvoiceID:        invoice.ID,
		CreditCardNumber: fmt.Sprintf("4654405418%06d", f.next()),
		Result:           result,
		CreatedAt:        Timestamp,
		UpdatedAt:        Timestamp,
	}
	f.create(tx)
	return tx
}

// Paid adds a successful transaction to invoice
func (f *Fixtures) Paid(invoice *entity.Invoice) *entity.Transaction {
	f.t.Helper()
	return f.Transaction(invoice, entity.TransactionResultSuccess)
}
