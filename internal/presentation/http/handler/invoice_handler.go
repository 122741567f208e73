package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/sales-engine-api/internal/application/service"
	"github.com/sangkips/sales-engine-api/internal/domain/entity"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	RecordHandler[entity.Invoice]
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		RecordHandler:  NewRecordHandler[entity.Invoice](invoiceService),
		invoiceService: invoiceService,
	}
}

// Transactions handles listing an invoice's transactions
func (h *InvoiceHandler) Transactions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	transactions, err := h.invoiceService.Transactions(c.Request.Context(), id)
	renderMany(c, transactions, err)
}

// InvoiceItems handles listing an invoice's line items
func (h *InvoiceHandler) InvoiceItems(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	invoiceItems, err := h.invoiceService.InvoiceItems(c.Request.Context(), id)
	renderMany(c, invoiceItems, err)
}

// Items handles listing the items on an invoice
func (h *InvoiceHandler) Items(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.invoiceService.Items(c.Request.Context(), id)
	renderMany(c, items, err)
}

// Customer handles getting an invoice's customer
func (h *InvoiceHandler) Customer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customer, err := h.invoiceService.Customer(c.Request.Context(), id)
	renderOne(c, customer, err)
}

// Merchant handles getting an invoice's merchant
func (h *InvoiceHandler) Merchant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	merchant, err := h.invoiceService.Merchant(c.Request.Context(), id)
	renderOne(c, merchant, err)
}
