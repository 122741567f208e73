package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/sales-engine-api/internal/application/service"
	"github.com/sangkips/sales-engine-api/internal/config"
	"github.com/sangkips/sales-engine-api/internal/infrastructure/repository"
	"github.com/sangkips/sales-engine-api/internal/presentation/http/handler"
	"github.com/sangkips/sales-engine-api/internal/testutil"
	"github.com/sangkips/sales-engine-api/pkg/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// record is the subset of fields the tests inspect
type record struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	FirstName  string `json:"first_name"`
	UnitPrice  string `json:"unit_price"`
	MerchantID int64  `json:"merchant_id"`
	ItemID     int64  `json:"item_id"`
	InvoiceID  int64  `json:"invoice_id"`
}

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func setupRouter(t *testing.T, db *gorm.DB, m *metrics.HTTPMetrics) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	merchantRepo := repository.NewMerchantRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	itemRepo := repository.NewItemRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	invoiceItemRepo := repository.NewInvoiceItemRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	ranking := service.RankingOptions{DefaultQuantity: 5}

	h := &Handlers{
		Merchant: handler.NewMerchantHandler(service.NewMerchantService(merchantRepo, itemRepo, invoiceRepo, analyticsRepo, ranking)),
		Customer: handler.NewCustomerHandler(service.NewCustomerService(customerRepo, invoiceRepo, transactionRepo, analyticsRepo)),
		Item:     handler.NewItemHandler(service.NewItemService(itemRepo, merchantRepo, invoiceItemRepo, analyticsRepo, ranking)),
		Invoice: handler.NewInvoiceHandler(service.NewInvoiceService(
			invoiceRepo, itemRepo, customerRepo, merchantRepo, invoiceItemRepo, transactionRepo,
		)),
		InvoiceItem: handler.NewInvoiceItemHandler(service.NewInvoiceItemService(invoiceItemRepo, invoiceRepo, itemRepo)),
		Transaction: handler.NewTransactionHandler(service.NewTransactionService(transactionRepo, invoiceRepo)),
	}

	cfg := &config.Config{App: config.AppConfig{Name: "sales-engine-test"}}
	return Setup(h, &Deps{Cfg: cfg, Logger: zap.NewNop(), Metrics: m})
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to decode %q: %v", w.Body.String(), err)
	}
}

func TestItemsIndexAndShow(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	router := setupRouter(t, db, nil)

	merchant := fx.Merchant()
	var last int64
	for i := 0; i < 3; i++ {
		last = fx.Item(merchant, 100).ID
	}

	w := get(t, router, "/api/v1/items")
	if w.Code != http.StatusOK {
		t.Fatalf("index status = %d, want 200", w.Code)
	}
	var items []record
	decode(t, w, &items)
	if len(items) != 3 {
		t.Errorf("index returned %d items, want 3", len(items))
	}

	w = get(t, router, "/api/v1/items/"+itoa(last))
	if w.Code != http.StatusOK {
		t.Fatalf("show status = %d, want 200", w.Code)
	}
	var item record
	decode(t, w, &item)
	if item.ID != last || item.UnitPrice != "1.00" {
		t.Errorf("show = %+v, want item %d priced 1.00", item, last)
	}
}

func TestShowErrors(t *testing.T) {
	db := testutil.NewDB(t)
	router := setupRouter(t, db, nil)

	tests := []struct {
		path    string
		status  int
		message string
		field   string
	}{
		{"/api/v1/merchants/999", http.StatusNotFound, "Merchant not found", ""},
		{"/api/v1/invoice_items/999", http.StatusNotFound, "Invoice item not found", ""},
		{"/api/v1/merchants/abc", http.StatusBadRequest, "Invalid parameters", "id"},
		{"/api/v1/items/0", http.StatusBadRequest, "Invalid parameters", "id"},
		{"/api/v1/items/1/merchant/extra", http.StatusNotFound, "Route not found", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(t, router, tt.path)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.status, w.Body.String())
			}
			var body errorBody
			decode(t, w, &body)
			if body.Success || body.Message != tt.message {
				t.Errorf("body = %+v, want message %q", body, tt.message)
			}
			if tt.field != "" && (len(body.Errors) != 1 || body.Errors[0].Field != tt.field) {
				t.Errorf("errors = %+v, want one %s error", body.Errors, tt.field)
			}
		})
	}
}

func TestItemsFind(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	router := setupRouter(t, db, nil)

	merchant := fx.Merchant()
	other := fx.Merchant()
	dummy := fx.Item(merchant, 500)
	for i := 0; i < 4; i++ {
		fx.Item(other, 13635)
	}

	w := get(t, router, "/api/v1/items/find?name="+url.QueryEscape(dummy.Name))
	var item record
	decode(t, w, &item)
	if w.Code != http.StatusOK || item.ID != dummy.ID {
		t.Errorf("find by name = %d %+v, want item %d", w.Code, item, dummy.ID)
	}

	w = get(t, router, "/api/v1/items/find?merchant_id="+itoa(merchant.ID))
	decode(t, w, &item)
	if item.ID != dummy.ID {
		t.Errorf("find by merchant_id = %+v, want item %d", item, dummy.ID)
	}

	w = get(t, router, "/api/v1/items/find_all?unit_price=136.35")
	var items []record
	decode(t, w, &items)
	if w.Code != http.StatusOK || len(items) != 4 {
		t.Errorf("find_all by unit_price = %d, %d items, want 200 and 4 items", w.Code, len(items))
	}
	for _, it := range items {
		if it.UnitPrice != "136.35" {
			t.Errorf("unit_price = %q, want 136.35", it.UnitPrice)
		}
	}

	w = get(t, router, "/api/v1/items/find?name=nothing+like+this")
	if w.Code != http.StatusOK || w.Body.String() != "null" {
		t.Errorf("find without match = %d %s, want 200 null", w.Code, w.Body.String())
	}

	w = get(t, router, "/api/v1/items/find_all?merchant_id=12345")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Errorf("find_all without match = %d %s, want 200 []", w.Code, w.Body.String())
	}

	for _, price := range []string{"cheap", "1e300", "-1e300", "92233720368547758.08"} {
		w = get(t, router, "/api/v1/items/find_all?unit_price="+url.QueryEscape(price))
		if w.Code != http.StatusBadRequest {
			t.Errorf("find_all with unit_price=%s status = %d, want 400", price, w.Code)
		}
	}
}

func TestRandom(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	router := setupRouter(t, db, nil)

	w := get(t, router, "/api/v1/customers/random")
	if w.Code != http.StatusOK || w.Body.String() != "null" {
		t.Errorf("random on empty table = %d %s, want 200 null", w.Code, w.Body.String())
	}

	ids := map[int64]bool{}
	for i := 0; i < 3; i++ {
		ids[fx.Customer().ID] = true
	}
	var customer record
	decode(t, get(t, router, "/api/v1/customers/random"), &customer)
	if !ids[customer.ID] {
		t.Errorf("random returned customer %d, want one of %v", customer.ID, ids)
	}
}

func TestMostRevenue(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	router := setupRouter(t, db, nil)

	merchant := fx.Merchant()
	item1 := fx.Item(merchant, 1000)
	item2 := fx.Item(merchant, 200)
	item3 := fx.Item(merchant, 700)
	invoice := fx.Invoice(fx.Customer(), merchant)
	for i := 0; i < 4; i++ {
		fx.InvoiceItem(invoice, item1, 5, 1000)
		fx.InvoiceItem(invoice, item2, 1, 200)
		fx.InvoiceItem(invoice, item3, 6, 700)
	}
	fx.Paid(invoice)

	w := get(t, router, "/api/v1/items/most_revenue?quantity=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var items []record
	decode(t, w, &items)
	if len(items) != 2 || items[0].ID != item1.ID || items[1].ID != item3.ID {
		t.Errorf("most_revenue = %+v, want items %d and %d", items, item1.ID, item3.ID)
	}

	decode(t, get(t, router, "/api/v1/items/most_revenue"), &items)
	if len(items) != 3 {
		t.Errorf("most_revenue with default quantity returned %d items, want 3", len(items))
	}

	for _, q := range []string{"0", "-1", "abc"} {
		w := get(t, router, "/api/v1/items/most_items?quantity="+q)
		if w.Code != http.StatusBadRequest {
			t.Errorf("most_items?quantity=%s status = %d, want 400", q, w.Code)
			continue
		}
		var body errorBody
		decode(t, w, &body)
		if len(body.Errors) != 1 || body.Errors[0].Field != "quantity" {
			t.Errorf("most_items?quantity=%s errors = %+v, want quantity error", q, body.Errors)
		}
	}

	var merchants []record
	decode(t, get(t, router, "/api/v1/merchants/most_revenue?quantity=1"), &merchants)
	if len(merchants) != 1 || merchants[0].ID != merchant.ID {
		t.Errorf("merchants most_revenue = %+v, want merchant %d", merchants, merchant.ID)
	}
}

func TestMerchantRevenue(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	router := setupRouter(t, db, nil)

	merchant := fx.Merchant()
	customer := fx.Customer()
	item := fx.Item(merchant, 1250)

	march16 := time.Date(2012, 3, 16, 10, 0, 0, 0, time.UTC)
	march17 := time.Date(2012, 3, 17, 10, 0, 0, 0, time.UTC)
	for _, at := range []time.Time{march16, march17} {
		inv := fx.InvoiceAt(customer, merchant, at)
		fx.InvoiceItem(inv, item, 2, 1250)
		fx.Paid(inv)
	}

	var body map[string]string
	decode(t, get(t, router, "/api/v1/merchants/"+itoa(merchant.ID)+"/revenue"), &body)
	if body["revenue"] != "50.00" {
		t.Errorf("revenue = %v, want 50.00", body)
	}

	decode(t, get(t, router, "/api/v1/merchants/"+itoa(merchant.ID)+"/revenue?date=2012-03-16"), &body)
	if body["revenue"] != "25.00" {
		t.Errorf("revenue on 2012-03-16 = %v, want 25.00", body)
	}

	decode(t, get(t, router, "/api/v1/merchants/revenue?date=2012-03-17"), &body)
	if body["total_revenue"] != "25.00" {
		t.Errorf("total_revenue = %v, want 25.00", body)
	}

	for _, path := range []string{
		"/api/v1/merchants/revenue",
		"/api/v1/merchants/revenue?date=yesterday",
		"/api/v1/merchants/" + itoa(merchant.ID) + "/revenue?date=03-16-2012",
	} {
		if w := get(t, router, path); w.Code != http.StatusBadRequest {
			t.Errorf("%s status = %d, want 400", path, w.Code)
		}
	}
}

func TestRelationships(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	router := setupRouter(t, db, nil)

	m1 := fx.Merchant()
	m2 := fx.Merchant()
	customer := fx.Customer()
	item1 := fx.Item(m1, 100)
	item2 := fx.Item(m2, 200)
	invoice := fx.Invoice(customer, m1)
	for i := 0; i < 3; i++ {
		fx.InvoiceItem(invoice, item1, 1, 100)
	}
	tx := fx.Paid(invoice)

	var merchant record
	decode(t, get(t, router, "/api/v1/items/"+itoa(item1.ID)+"/merchant"), &merchant)
	if merchant.ID != m1.ID || merchant.Name != m1.Name {
		t.Errorf("item1 merchant = %+v, want %+v", merchant, m1)
	}
	decode(t, get(t, router, "/api/v1/items/"+itoa(item2.ID)+"/merchant"), &merchant)
	if merchant.ID != m2.ID {
		t.Errorf("item2 merchant = %+v, want merchant %d", merchant, m2.ID)
	}

	var invoiceItems []record
	decode(t, get(t, router, "/api/v1/items/"+itoa(item1.ID)+"/invoice_items"), &invoiceItems)
	if len(invoiceItems) != 3 || invoiceItems[0].ItemID != item1.ID {
		t.Errorf("item invoice_items = %+v, want 3 rows for item %d", invoiceItems, item1.ID)
	}

	var items []record
	decode(t, get(t, router, "/api/v1/invoices/"+itoa(invoice.ID)+"/items"), &items)
	if len(items) != 1 || items[0].ID != item1.ID {
		t.Errorf("invoice items = %+v, want item %d", items, item1.ID)
	}

	var inv record
	decode(t, get(t, router, "/api/v1/transactions/"+itoa(tx.ID)+"/invoice"), &inv)
	if inv.ID != invoice.ID {
		t.Errorf("transaction invoice = %+v, want invoice %d", inv, invoice.ID)
	}

	var txs []record
	decode(t, get(t, router, "/api/v1/customers/"+itoa(customer.ID)+"/transactions"), &txs)
	if len(txs) != 1 || txs[0].InvoiceID != invoice.ID {
		t.Errorf("customer transactions = %+v, want one on invoice %d", txs, invoice.ID)
	}

	var favorite record
	decode(t, get(t, router, "/api/v1/merchants/"+itoa(m1.ID)+"/favorite_customer"), &favorite)
	if favorite.ID != customer.ID || favorite.FirstName != customer.FirstName {
		t.Errorf("favorite_customer = %+v, want customer %d", favorite, customer.ID)
	}
	decode(t, get(t, router, "/api/v1/customers/"+itoa(customer.ID)+"/favorite_merchant"), &favorite)
	if favorite.ID != m1.ID {
		t.Errorf("favorite_merchant = %+v, want merchant %d", favorite, m1.ID)
	}

	if w := get(t, router, "/api/v1/invoices/999/customer"); w.Code != http.StatusOK || w.Body.String() != "null" {
		t.Errorf("missing invoice customer = %d %s, want 200 null", w.Code, w.Body.String())
	}
	if w := get(t, router, "/api/v1/merchants/999/items"); w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Errorf("missing merchant items = %d %s, want 200 []", w.Code, w.Body.String())
	}
}

func TestHealthMetricsAndRequestID(t *testing.T) {
	db := testutil.NewDB(t)
	m := metrics.NewHTTPMetrics("sales-engine-test")
	router := setupRouter(t, db, m)

	w := get(t, router, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/merchants/abc", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var body errorBody
	decode(t, w, &body)
	if body.Meta.RequestID != "req-123" || w.Header().Get("X-Request-ID") != "req-123" {
		t.Errorf("request id = %q / %q, want req-123", body.Meta.RequestID, w.Header().Get("X-Request-ID"))
	}

	w = get(t, router, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status = %d, want 200", w.Code)
	}
}
