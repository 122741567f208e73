package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/sales-engine-api/internal/config"
	"github.com/sangkips/sales-engine-api/internal/presentation/http/dto/response"
	"github.com/sangkips/sales-engine-api/internal/presentation/http/handler"
	"github.com/sangkips/sales-engine-api/internal/presentation/http/middleware"
	"github.com/sangkips/sales-engine-api/pkg/metrics"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Merchant    *handler.MerchantHandler
	Customer    *handler.CustomerHandler
	Item        *handler.ItemHandler
	Invoice     *handler.InvoiceHandler
	InvoiceItem *handler.InvoiceItemHandler
	Transaction *handler.TransactionHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg     *config.Config
	Logger  *zap.Logger
	Metrics *metrics.HTTPMetrics // nil disables /metrics
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	v1 := router.Group("/api/v1")
	{
		registerMerchantRoutes(v1, h)
		registerCustomerRoutes(v1, h)
		registerItemRoutes(v1, h)
		registerInvoiceRoutes(v1, h)
		registerInvoiceItemRoutes(v1, h)
		registerTransactionRoutes(v1, h)
	}

	return router
}

// recordRoutes are the routes every entity shares
type recordRoutes interface {
	Index(c *gin.Context)
	Show(c *gin.Context)
	Find(c *gin.Context)
	FindAll(c *gin.Context)
	Random(c *gin.Context)
}

func registerRecordRoutes(g *gin.RouterGroup, h recordRoutes) {
	g.GET("", h.Index)
	g.GET("/find", h.Find)
	g.GET("/find_all", h.FindAll)
	g.GET("/random", h.Random)
	g.GET("/:id", h.Show)
}

func registerMerchantRoutes(v1 *gin.RouterGroup, h *Handlers) {
	merchants := v1.Group("/merchants")
	registerRecordRoutes(merchants, h.Merchant)
	{
		merchants.GET("/most_revenue", h.Merchant.MostRevenue)
		merchants.GET("/most_items", h.Merchant.MostItems)
		merchants.GET("/revenue", h.Merchant.TotalRevenue)
		merchants.GET("/:id/items", h.Merchant.Items)
		merchants.GET("/:id/invoices", h.Merchant.Invoices)
		merchants.GET("/:id/revenue", h.Merchant.Revenue)
		merchants.GET("/:id/favorite_customer", h.Merchant.FavoriteCustomer)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	registerRecordRoutes(customers, h.Customer)
	{
		customers.GET("/:id/invoices", h.Customer.Invoices)
		customers.GET("/:id/transactions", h.Customer.Transactions)
		customers.GET("/:id/favorite_merchant", h.Customer.FavoriteMerchant)
	}
}

func registerItemRoutes(v1 *gin.RouterGroup, h *Handlers) {
	items := v1.Group("/items")
	registerRecordRoutes(items, h.Item)
	{
		items.GET("/most_revenue", h.Item.MostRevenue)
		items.GET("/most_items", h.Item.MostItems)
		items.GET("/:id/merchant", h.Item.Merchant)
		items.GET("/:id/invoice_items", h.Item.InvoiceItems)
	}
}

func registerInvoiceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	invoices := v1.Group("/invoices")
	registerRecordRoutes(invoices, h.Invoice)
	{
		invoices.GET("/:id/transactions", h.Invoice.Transactions)
		invoices.GET("/:id/invoice_items", h.Invoice.InvoiceItems)
		invoices.GET("/:id/items", h.Invoice.Items)
		invoices.GET("/:id/customer", h.Invoice.Customer)
		invoices.GET("/:id/merchant", h.Invoice.Merchant)
	}
}

func registerInvoiceItemRoutes(v1 *gin.RouterGroup, h *Handlers) {
	invoiceItems := v1.Group("/invoice_items")
	registerRecordRoutes(invoiceItems, h.InvoiceItem)
	{
		invoiceItems.GET("/:id/invoice", h.InvoiceItem.Invoice)
		invoiceItems.GET("/:id/item", h.InvoiceItem.Item)
	}
}

func registerTransactionRoutes(v1 *gin.RouterGroup, h *Handlers) {
	transactions := v1.Group("/transactions")
	registerRecordRoutes(transactions, h.Transaction)
	{
		transactions.GET("/:id/invoice", h.Transaction.Invoice)
	}
}
