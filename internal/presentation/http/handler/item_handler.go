package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/sales-engine-api/internal/application/service"
	"github.com/sangkips/sales-engine-api/internal/domain/entity"
)

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	RecordHandler[entity.Item]
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{
		RecordHandler: NewRecordHandler[entity.Item](itemService),
		itemService:   itemService,
	}
}

// Merchant handles getting the merchant that sells an item
func (h *ItemHandler) Merchant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	merchant, err := h.itemService.Merchant(c.Request.Context(), id)
	renderOne(c, merchant, err)
}

// InvoiceItems handles listing the line items referencing an item
func (h *ItemHandler) InvoiceItems(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	invoiceItems, err := h.itemService.InvoiceItems(c.Request.Context(), id)
	renderMany(c, invoiceItems, err)
}

// MostRevenue handles ranking items by revenue
func (h *ItemHandler) MostRevenue(c *gin.Context) {
	quantity, ok := rankingQuantity(c)
	if !ok {
		return
	}
	items, err := h.itemService.MostRevenue(c.Request.Context(), quantity)
	renderMany(c, items, err)
}

// MostItems handles ranking items by invoice item count
func (h *ItemHandler) MostItems(c *gin.Context) {
	quantity, ok := rankingQuantity(c)
	if !ok {
		return
	}
	items, err := h.itemService.MostItems(c.Request.Context(), quantity)
	renderMany(c, items, err)
}
