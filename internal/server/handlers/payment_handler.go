package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/service/billing"
	"fitcenter-backend/pkg/apperrors"
)

// PaymentHandler serves card transaction routes through the billing
// service.
type PaymentHandler struct {
	svc    *billing.Service
	logger *zap.Logger
}

func NewPaymentHandler(svc *billing.Service, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{svc: svc, logger: logger}
}

// Insert creates a payment. A duplicate transaction id answers the
// stored record with alreadyApplied true rather than a conflict.
func (h *PaymentHandler) Insert(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &payment) {
		return
	}

	stored, alreadyApplied, err := h.svc.CreatePayment(c.Request.Context(), &payment)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": stored, "alreadyApplied": alreadyApplied})
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.svc.ListTransactions(c.Request.Context(), "")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": payments})
}

// Transactions filters by the optional type query parameter, newest
// first.
func (h *PaymentHandler) Transactions(c *gin.Context) {
	txType := c.Query("type")
	if txType != "" && txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		respondError(c, h.logger, apperrors.Validationf("type must be income or expense"))
		return
	}

	payments, err := h.svc.ListTransactions(c.Request.Context(), txType)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": payments})
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}
