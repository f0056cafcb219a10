package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/repository"
	"fitcenter-backend/pkg/apperrors"
)

// PayrollHandler serves payroll CRUD.
type PayrollHandler struct {
	store  repository.PayrollStore
	logger *zap.Logger
}

func NewPayrollHandler(store repository.PayrollStore, logger *zap.Logger) *PayrollHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PayrollHandler{store: store, logger: logger}
}

func (h *PayrollHandler) Create(c *gin.Context) {
	var payroll models.Payroll
	if err := c.ShouldBindJSON(&payroll); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &payroll) {
		return
	}

	if err := h.store.Create(c.Request.Context(), &payroll); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payroll": payroll})
}

func (h *PayrollHandler) List(c *gin.Context) {
	payrolls, err := h.store.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payrolls": payrolls})
}

func (h *PayrollHandler) GetByID(c *gin.Context) {
	payroll, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payroll": payroll})
}

func (h *PayrollHandler) Update(c *gin.Context) {
	var payroll models.Payroll
	if err := c.ShouldBindJSON(&payroll); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &payroll) {
		return
	}

	updated, err := h.store.Update(c.Request.Context(), c.Param("id"), &payroll)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payroll": updated})
}

func (h *PayrollHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payroll deleted"})
}
