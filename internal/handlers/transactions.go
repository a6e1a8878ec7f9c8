package handlers

import (
	"net/http"

	"mandir/internal/models"

	"github.com/gin-gonic/gin"
)

// ListTransactions - GET /api/transactions
// Returns the ledger plus the computed revenue total.
func (h *Handlers) ListTransactions(c *gin.Context) {
	response, err := h.services.Transactions.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateTransaction - POST /api/transactions
func (h *Handlers) CreateTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txn, err := h.services.Transactions.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, txn)
}
