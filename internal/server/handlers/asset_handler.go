package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/repository"
	"fitcenter-backend/pkg/apperrors"
)

// AssetHandler serves the asset CRUD routes and the total-value
// aggregate.
type AssetHandler struct {
	store  repository.AssetStore
	logger *zap.Logger
}

func NewAssetHandler(store repository.AssetStore, logger *zap.Logger) *AssetHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetHandler{store: store, logger: logger}
}

func (h *AssetHandler) Create(c *gin.Context) {
	var asset models.Asset
	if err := c.ShouldBindJSON(&asset); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &asset) {
		return
	}

	if err := h.store.Create(c.Request.Context(), &asset); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

func (h *AssetHandler) List(c *gin.Context) {
	assets, err := h.store.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"Assets": assets})
}

func (h *AssetHandler) GetByID(c *gin.Context) {
	asset, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

func (h *AssetHandler) Update(c *gin.Context) {
	var asset models.Asset
	if err := c.ShouldBindJSON(&asset); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &asset) {
		return
	}

	updated, err := h.store.Update(c.Request.Context(), c.Param("id"), &asset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asset": updated})
}

func (h *AssetHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "asset deleted"})
}

// Total answers the summed estimated value of every asset; 0 when the
// collection is empty.
func (h *AssetHandler) Total(c *gin.Context) {
	total, err := h.store.TotalValue(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalValue": total})
}
