package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/sales-engine-api/internal/application/service"
	"github.com/sangkips/sales-engine-api/internal/domain/entity"
	"github.com/sangkips/sales-engine-api/internal/presentation/http/dto/response"
)

// MerchantHandler handles merchant-related HTTP requests
type MerchantHandler struct {
	RecordHandler[entity.Merchant]
	merchantService *service.MerchantService
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantService *service.MerchantService) *MerchantHandler {
	return &MerchantHandler{
		RecordHandler:   NewRecordHandler[entity.Merchant](merchantService),
		merchantService: merchantService,
	}
}

// Items handles listing a merchant's items
func (h *MerchantHandler) Items(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.merchantService.Items(c.Request.Context(), id)
	renderMany(c, items, err)
}

// Invoices handles listing a merchant's invoices
func (h *MerchantHandler) Invoices(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	invoices, err := h.merchantService.Invoices(c.Request.Context(), id)
	renderMany(c, invoices, err)
}

// MostRevenue handles ranking merchants by revenue
func (h *MerchantHandler) MostRevenue(c *gin.Context) {
	quantity, ok := rankingQuantity(c)
	if !ok {
		return
	}
	merchants, err := h.merchantService.MostRevenue(c.Request.Context(), quantity)
	renderMany(c, merchants, err)
}

// MostItems handles ranking merchants by invoice items sold
func (h *MerchantHandler) MostItems(c *gin.Context) {
	quantity, ok := rankingQuantity(c)
	if !ok {
		return
	}
	merchants, err := h.merchantService.MostItems(c.Request.Context(), quantity)
	renderMany(c, merchants, err)
}

// Revenue handles a single merchant's revenue, optionally for one date
func (h *MerchantHandler) Revenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	day, ok := revenueDate(c, false)
	if !ok {
		return
	}
	revenue, err := h.merchantService.Revenue(c.Request.Context(), id, day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"revenue": revenue})
}

// TotalRevenue handles the revenue of every merchant for one date
func (h *MerchantHandler) TotalRevenue(c *gin.Context) {
	day, ok := revenueDate(c, true)
	if !ok {
		return
	}
	total, err := h.merchantService.TotalRevenue(c.Request.Context(), *day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"total_revenue": total})
}

// FavoriteCustomer handles getting the customer who spent the most with a merchant
func (h *MerchantHandler) FavoriteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customer, err := h.merchantService.FavoriteCustomer(c.Request.Context(), id)
	renderOne(c, customer, err)
}
