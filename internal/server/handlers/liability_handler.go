package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcenter-backend/internal/service/liabilities"
	"fitcenter-backend/pkg/apperrors"
)

// LiabilityHandler serves the computed liability view over payrolls.
type LiabilityHandler struct {
	svc    *liabilities.Service
	logger *zap.Logger
}

func NewLiabilityHandler(svc *liabilities.Service, logger *zap.Logger) *LiabilityHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LiabilityHandler{svc: svc, logger: logger}
}

func (h *LiabilityHandler) Fetch(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"Liabilities": items})
}

// Pay marks the underlying payroll Paid; the record disappears from
// subsequent Fetch responses.
func (h *LiabilityHandler) Pay(c *gin.Context) {
	liability, err := h.svc.Pay(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liability": liability})
}

func (h *LiabilityHandler) Notes(c *gin.Context) {
	var body struct {
		Notes string `json:"notes" validate:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &body) {
		return
	}

	liability, err := h.svc.AddNotes(c.Request.Context(), c.Param("id"), body.Notes)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liability": liability})
}
