package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/repository"
	"fitcenter-backend/pkg/apperrors"
)

// CashLogHandler serves the append-only cash book. Only create and
// fetch exist; the router wires no update or delete for this module.
type CashLogHandler struct {
	store  repository.CashLogStore
	logger *zap.Logger
}

func NewCashLogHandler(store repository.CashLogStore, logger *zap.Logger) *CashLogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CashLogHandler{store: store, logger: logger}
}

func (h *CashLogHandler) Create(c *gin.Context) {
	var entry models.CashLogEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &entry) {
		return
	}

	if err := h.store.Create(c.Request.Context(), &entry); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"CashLog": entry})
}

func (h *CashLogHandler) Fetch(c *gin.Context) {
	entries, err := h.store.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"CashLog": entries})
}
