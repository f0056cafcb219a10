package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/repository"
	"fitcenter-backend/pkg/apperrors"
)

// TrainingHandler serves training-session requests. Creation pins the
// status to pending and requires a future session time; updates only
// check that the status value is one of the four known states.
type TrainingHandler struct {
	store  repository.TrainingStore
	logger *zap.Logger
}

func NewTrainingHandler(store repository.TrainingStore, logger *zap.Logger) *TrainingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrainingHandler{store: store, logger: logger}
}

func (h *TrainingHandler) Create(c *gin.Context) {
	var req models.TrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &req) {
		return
	}
	if !models.ValidCoachID(req.CoachID) {
		respondError(c, h.logger, apperrors.Validationf("unknown coach id %q", req.CoachID))
		return
	}
	if !req.DateTime.After(time.Now()) {
		respondError(c, h.logger, apperrors.Validationf("dateTime must be in the future"))
		return
	}

	req.Status = models.TrainingStatusPending
	if err := h.store.Create(c.Request.Context(), &req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusCreated, req)
}

func (h *TrainingHandler) List(c *gin.Context) {
	filter := repository.TrainingFilter{
		Status:  c.Query("status"),
		CoachID: c.Query("coachId"),
	}
	if filter.Status != "" && !models.ValidTrainingStatus(filter.Status) {
		respondError(c, h.logger, apperrors.Validationf("invalid status %q", filter.Status))
		return
	}

	requests, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusOK, requests)
}

func (h *TrainingHandler) GetByID(c *gin.Context) {
	req, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusOK, req)
}

// Update replaces the request. The status must be a known state but no
// transition order is enforced, so pending can jump straight to
// completed. The session time is not re-validated here.
func (h *TrainingHandler) Update(c *gin.Context) {
	var req models.TrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &req) {
		return
	}
	if !models.ValidCoachID(req.CoachID) {
		respondError(c, h.logger, apperrors.Validationf("unknown coach id %q", req.CoachID))
		return
	}
	if !models.ValidTrainingStatus(req.Status) {
		respondError(c, h.logger, apperrors.Validationf("invalid status %q", req.Status))
		return
	}

	updated, err := h.store.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusOK, updated)
}

func (h *TrainingHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "training request deleted"})
}
