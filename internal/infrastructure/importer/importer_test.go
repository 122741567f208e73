package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	"github.com/sangkips/sales-engine-api/internal/testutil"
	"github.com/sangkips/sales-engine-api/pkg/money"
	"go.uber.org/zap"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestImportDir(t *testing.T) {
	db := testutil.NewDB(t)
	dir := t.TempDir()

	writeCSV(t, dir, "merchants.csv", `id,name,created_at,updated_at
1,Schroeder-Jerde,2012-03-27 14:53:59 UTC,2012-03-27 14:53:59 UTC
2,Klein Rempel,2012-03-27 14:53:59 UTC,2012-03-27 14:53:59 UTC
`)
	writeCSV(t, dir, "customers.csv", `id,first_name,last_name,created_at,updated_at
1,Joey,Ondricka,2012-03-27 14:54:09 UTC,2012-03-27 14:54:09 UTC
`)
	writeCSV(t, dir, "items.csv", `id,name,description,unit_price,merchant_id,created_at,updated_at
1,Item Qui Esse,"Nihil autem sit odio inventore deleniti, est laudantium.",75107,1,2012-03-27 14:53:59 UTC,2012-03-27 14:53:59 UTC
2,Item Autem Minima,Cumque consequuntur ad.,67076,2,2012-03-27 14:53:59 UTC,2012-03-27 14:53:59 UTC
`)
	writeCSV(t, dir, "invoices.csv", `id,customer_id,merchant_id,status,created_at,updated_at
1,1,1,shipped,2012-03-25 09:54:09 UTC,2012-03-25 09:54:09 UTC
`)
	writeCSV(t, dir, "invoice_items.csv", `id,item_id,invoice_id,quantity,unit_price,created_at,updated_at
1,1,1,5,75107,2012-03-27 14:54:09 UTC,2012-03-27 14:54:09 UTC
2,2,1,9,67076,2012-03-27 14:54:09 UTC,2012-03-27 14:54:09 UTC
`)
	// transactions.csv is missing and should be skipped

	im := New(db, zap.NewNop(), 1)
	results, err := im.ImportDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("ImportDir failed: %v", err)
	}

	want := map[string]FileResult{
		"merchants.csv":     {File: "merchants.csv", Rows: 2},
		"customers.csv":     {File: "customers.csv", Rows: 1},
		"items.csv":         {File: "items.csv", Rows: 2},
		"invoices.csv":      {File: "invoices.csv", Rows: 1},
		"invoice_items.csv": {File: "invoice_items.csv", Rows: 2},
		"transactions.csv":  {File: "transactions.csv", Skipped: true},
	}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for _, r := range results {
		if r != want[r.File] {
			t.Errorf("result for %s = %+v, want %+v", r.File, r, want[r.File])
		}
	}

	var item entity.Item
	if err := db.First(&item, 1).Error; err != nil {
		t.Fatalf("Failed to load item: %v", err)
	}
	if item.UnitPrice != money.Cents(75107) || item.MerchantID != 1 {
		t.Errorf("item = %+v, want unit price 75107 for merchant 1", item)
	}
	if item.Description != "Nihil autem sit odio inventore deleniti, est laudantium." {
		t.Errorf("description = %q", item.Description)
	}

	var invoice entity.Invoice
	if err := db.First(&invoice, 1).Error; err != nil {
		t.Fatalf("Failed to load invoice: %v", err)
	}
	if got := invoice.CreatedAt.UTC().Format("2006-01-02 15:04:05"); got != "2012-03-25 09:54:09" {
		t.Errorf("invoice created_at = %s, want 2012-03-25 09:54:09", got)
	}
}

func TestImportDirRollsBackOnBadRow(t *testing.T) {
	db := testutil.NewDB(t)
	dir := t.TempDir()

	writeCSV(t, dir, "merchants.csv", `id,name,created_at,updated_at
1,Schroeder-Jerde,2012-03-27 14:53:59 UTC,2012-03-27 14:53:59 UTC
`)
	writeCSV(t, dir, "items.csv", `id,name,description,unit_price,merchant_id,created_at,updated_at
1,Item Qui Esse,Nihil,751.07,1,2012-03-27 14:53:59 UTC,2012-03-27 14:53:59 UTC
`)

	_, err := New(db, zap.NewNop(), 0).ImportDir(context.Background(), dir)
	if err == nil {
		t.Fatal("ImportDir expected error for fractional unit_price")
	}

	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("error = %v, want *RowError", err)
	}
	if rowErr.File != "items.csv" || rowErr.Row != 2 || rowErr.Field != "unit_price" {
		t.Errorf("row error = %+v, want items.csv row 2 unit_price", rowErr)
	}

	var count int64
	if err := db.Model(&entity.Merchant{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("merchants after rollback = %d, want 0", count)
	}
}

func TestRowOptionalColumns(t *testing.T) {
	r, err := newCSVReader("transactions.csv", strings.NewReader("\ufeffID,Invoice_ID,credit_card_number,result\n7,3,4654405418249632,success\n"))
	if err != nil {
		t.Fatalf("newCSVReader failed: %v", err)
	}
	rw, err := r.next()
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}

	tx := parseTransaction(rw)
	if rw.err != nil {
		t.Fatalf("parseTransaction failed: %v", rw.err)
	}
	if tx.ID != 7 || tx.InvoiceID != 3 || tx.Result != entity.TransactionResultSuccess {
		t.Errorf("transaction = %+v", tx)
	}
	if tx.CreditCardExpirationDate != nil {
		t.Errorf("expiration date = %v, want nil", *tx.CreditCardExpirationDate)
	}
	if tx.CreatedAt.IsZero() {
		t.Error("created_at should default to now")
	}
}
