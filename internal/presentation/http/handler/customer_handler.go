package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/sales-engine-api/internal/application/service"
	"github.com/sangkips/sales-engine-api/internal/domain/entity"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	RecordHandler[entity.Customer]
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		RecordHandler:   NewRecordHandler[entity.Customer](customerService),
		customerService: customerService,
	}
}

// Invoices handles listing a customer's invoices
func (h *CustomerHandler) Invoices(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	invoices, err := h.customerService.Invoices(c.Request.Context(), id)
	renderMany(c, invoices, err)
}

// Transactions handles listing the transactions on a customer's invoices
func (h *CustomerHandler) Transactions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	transactions, err := h.customerService.Transactions(c.Request.Context(), id)
	renderMany(c, transactions, err)
}

// FavoriteMerchant handles getting the merchant a customer spent the most with
func (h *CustomerHandler) FavoriteMerchant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	merchant, err := h.customerService.FavoriteMerchant(c.Request.Context(), id)
	renderOne(c, merchant, err)
}
