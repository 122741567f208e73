package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/sales-engine-api/internal/application/service"
	"github.com/sangkips/sales-engine-api/internal/domain/entity"
)

// TransactionHandler handles transaction HTTP requests
type TransactionHandler struct {
	RecordHandler[entity.Transaction]
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		RecordHandler:      NewRecordHandler[entity.Transaction](transactionService),
		transactionService: transactionService,
	}
}

// Invoice handles getting the invoice a transaction was made against
func (h *TransactionHandler) Invoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	invoice, err := h.transactionService.Invoice(c.Request.Context(), id)
	renderOne(c, invoice, err)
}
