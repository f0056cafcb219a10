package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/repository"
	"fitcenter-backend/internal/service/exporting"
	"fitcenter-backend/pkg/apperrors"
)

// FeedbackHandler serves feedback CRUD, the stats aggregate and the
// CSV export.
type FeedbackHandler struct {
	store    repository.FeedbackStore
	exporter *exporting.Service
	logger   *zap.Logger
}

func NewFeedbackHandler(store repository.FeedbackStore, exporter *exporting.Service, logger *zap.Logger) *FeedbackHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackHandler{store: store, exporter: exporter, logger: logger}
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	var fb models.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &fb) {
		return
	}

	if err := h.store.Create(c.Request.Context(), &fb); err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusCreated, fb)
}

func (h *FeedbackHandler) List(c *gin.Context) {
	filter := repository.FeedbackFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}

	items, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusOK, items)
}

func (h *FeedbackHandler) GetByID(c *gin.Context) {
	fb, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusOK, fb)
}

func (h *FeedbackHandler) Update(c *gin.Context) {
	var fb models.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &fb) {
		return
	}

	updated, err := h.store.Update(c.Request.Context(), c.Param("id"), &fb)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusOK, updated)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "feedback deleted"})
}

func (h *FeedbackHandler) Stats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusOK, stats)
}

// Export streams the full collection as CSV.
func (h *FeedbackHandler) Export(c *gin.Context) {
	payload, err := h.exporter.FeedbackCSV(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="feedback.csv"`)
	c.Data(http.StatusOK, "text/csv", payload)
}
