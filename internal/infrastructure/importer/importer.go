// Package importer loads the sales engine CSV fixtures into the database.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultBatchSize is used when the importer is created with a non-positive batch size
const DefaultBatchSize = 500

// FileResult reports what happened to one CSV file
type FileResult struct {
	File    string `json:"file"`
	Rows    int    `json:"rows"`
	Skipped bool   `json:"skipped"`
}

// RowError describes a value that could not be imported
type RowError struct {
	File    string
	Row     int
	Field   string
	Message string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: %s %s", e.File, e.Row, e.Field, e.Message)
}

// Importer bulk-loads CSV files in dependency order
type Importer struct {
	db        *gorm.DB
	log       *zap.Logger
	batchSize int
}

// New creates an importer
func New(db *gorm.DB, log *zap.Logger, batchSize int) *Importer {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &Importer{db: db, log: log, batchSize: batchSize}
}

// step loads one file into one table
type step struct {
	file string
	load func(tx *gorm.DB, r *csvReader, batchSize int) (int, error)
}

// steps are ordered so foreign keys always point at rows already loaded
var steps = []step{
	{"merchants.csv", loader(parseMerchant)},
	{"customers.csv", loader(parseCustomer)},
	{"items.csv", loader(parseItem)},
	{"invoices.csv", loader(parseInvoice)},
	{"invoice_items.csv", loader(parseInvoiceItem)},
	{"transactions.csv", loader(parseTransaction)},
}

// ImportDir loads every known CSV file found in dir inside one transaction.
// Missing files are skipped. Any bad row rolls the whole import back.
func (im *Importer) ImportDir(ctx context.Context, dir string) ([]FileResult, error) {
	results := make([]FileResult, 0, len(steps))

	err := im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range steps {
			path := filepath.Join(dir, s.file)
			f, err := os.Open(path)
			if errors.Is(err, os.ErrNotExist) {
				im.log.Info("skipping missing file", zap.String("file", s.file))
				results = append(results, FileResult{File: s.file, Skipped: true})
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}

			r, err := newCSVReader(s.file, f)
			if err != nil {
				f.Close()
				return err
			}
			n, err := s.load(tx, r, im.batchSize)
			f.Close()
			if err != nil {
				return err
			}

			im.log.Info("imported file", zap.String("file", s.file), zap.Int("rows", n))
			results = append(results, FileResult{File: s.file, Rows: n})
		}
		return resetSequences(tx)
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// resetSequences moves Postgres id sequences past the imported ids
func resetSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range []string{"merchants", "customers", "items", "invoices", "invoice_items", "transactions"} {
		err := tx.Exec(
			"SELECT setval(pg_get_serial_sequence(?, 'id'), COALESCE(MAX(id), 0) + 1, false) FROM "+table,
			table,
		).Error
		if err != nil {
			return fmt.Errorf("failed to reset %s id sequence: %w", table, err)
		}
	}
	return nil
}

// loader reads every row with parse and writes them with CreateInBatches
func loader[T any](parse func(*row) T) func(*gorm.DB, *csvReader, int) (int, error) {
	return func(tx *gorm.DB, r *csvReader, batchSize int) (int, error) {
		total := 0
		batch := make([]T, 0, batchSize)
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if err := tx.CreateInBatches(&batch, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert %s: %w", r.file, err)
			}
			total += len(batch)
			batch = batch[:0]
			return nil
		}

		for {
			rw, err := r.next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return 0, err
			}
			rec := parse(rw)
			if rw.err != nil {
				return 0, rw.err
			}
			batch = append(batch, rec)
			if len(batch) == batchSize {
				if err := flush(); err != nil {
					return 0, err
				}
			}
		}
		if err := flush(); err != nil {
			return 0, err
		}
		return total, nil
	}
}

// csvReader reads rows keyed by header name
type csvReader struct {
	file   string
	r      *csv.Reader
	header map[string]int
	line   int
}

func newCSVReader(file string, src io.Reader) (*csvReader, error) {
	r := csv.NewReader(src)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1

	head, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: missing header", file)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read header: %w", file, err)
	}

	header := make(map[string]int, len(head))
	for i, name := range head {
		header[normalizeHeader(name)] = i
	}
	return &csvReader{file: file, r: r, header: header, line: 1}, nil
}

func (c *csvReader) next() (*row, error) {
	values, err := c.r.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	c.line++
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read row %d: %w", c.file, c.line, err)
	}
	return &row{reader: c, num: c.line, values: values}, nil
}

// Parsers map CSV rows onto entities

func parseMerchant(r *row) entity.Merchant {
	return entity.Merchant{
		ID:        r.id(),
		Name:      r.str("name"),
		CreatedAt: r.timestamp("created_at"),
		UpdatedAt: r.timestamp("updated_at"),
	}
}

func parseCustomer(r *row) entity.Customer {
	return entity.Customer{
		ID:        r.id(),
		FirstName: r.str("first_name"),
		LastName:  r.str("last_name"),
		CreatedAt: r.timestamp("created_at"),
		UpdatedAt: r.timestamp("updated_at"),
	}
}

func parseItem(r *row) entity.Item {
	return entity.Item{
		ID:          r.id(),
		Name:        r.str("name"),
		Description: r.str("description"),
		UnitPrice:   r.cents("unit_price"),
		MerchantID:  r.integer("merchant_id"),
		CreatedAt:   r.timestamp("created_at"),
		UpdatedAt:   r.timestamp("updated_at"),
	}
}

func parseInvoice(r *row) entity.Invoice {
	return entity.Invoice{
		ID:         r.id(),
		CustomerID: r.integer("customer_id"),
		MerchantID: r.integer("merchant_id"),
		Status:     r.str("status"),
		CreatedAt:  r.timestamp("created_at"),
		UpdatedAt:  r.timestamp("updated_at"),
	}
}

func parseInvoiceItem(r *row) entity.InvoiceItem {
	return entity.InvoiceItem{
		ID:        r.id(),
		ItemID:    r.integer("item_id"),
		InvoiceID: r.integer("invoice_id"),
		Quantity:  int(r.integer("quantity")),
		UnitPrice: r.cents("unit_price"),
		CreatedAt: r.timestamp("created_at"),
		UpdatedAt: r.timestamp("updated_at"),
	}
}

func parseTransaction(r *row) entity.Transaction {
	return entity.Transaction{
		ID:                       r.id(),
		InvoiceID:                r.integer("invoice_id"),
		CreditCardNumber:         r.str("credit_card_number"),
		CreditCardExpirationDate: r.optional("credit_card_expiration_date"),
		Result:                   r.str("result"),
		CreatedAt:                r.timestamp("created_at"),
		UpdatedAt:                r.timestamp("updated_at"),
	}
}
