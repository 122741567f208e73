package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/sales-engine-api/internal/application/service"
	"github.com/sangkips/sales-engine-api/internal/domain/entity"
)

// InvoiceItemHandler handles invoice item HTTP requests
type InvoiceItemHandler struct {
	RecordHandler[entity.InvoiceItem]
	invoiceItemService *service.InvoiceItemService
}

// NewInvoiceItemHandler creates a new invoice item handler
func NewInvoiceItemHandler(invoiceItemService *service.InvoiceItemService) *InvoiceItemHandler {
	return &InvoiceItemHandler{
		RecordHandler:      NewRecordHandler[entity.InvoiceItem](invoiceItemService),
		invoiceItemService: invoiceItemService,
	}
}

func (h *InvoiceItemHandler) Invoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	invoice, err := h.invoiceItemService.Invoice(c.Request.Context(), id)
	renderOne(c, invoice, err)
}

func (h *InvoiceItemHandler) Item(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.invoiceItemService.Item(c.Request.Context(), id)
	renderOne(c, item, err)
}
