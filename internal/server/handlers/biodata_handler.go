package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/repository"
	"fitcenter-backend/pkg/apperrors"
)

// BioDataHandler serves the per-user biometric record with upsert
// semantics: one record per user, writes create or replace.
type BioDataHandler struct {
	store  repository.BioDataStore
	logger *zap.Logger
}

func NewBioDataHandler(store repository.BioDataStore, logger *zap.Logger) *BioDataHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BioDataHandler{store: store, logger: logger}
}

func (h *BioDataHandler) Upsert(c *gin.Context) {
	var data models.BioData
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &data) {
		return
	}

	if err := h.store.Upsert(c.Request.Context(), &data); err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusOK, data)
}

func (h *BioDataHandler) Get(c *gin.Context) {
	data, err := h.store.GetByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusOK, data)
}

func (h *BioDataHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteByUserID(c.Request.Context(), c.Param("userId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "biodata deleted"})
}
