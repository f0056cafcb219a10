package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/repository"
	"fitcenter-backend/internal/server/middleware"
	authsvc "fitcenter-backend/internal/service/auth"
	"fitcenter-backend/pkg/apperrors"
)

// CoachHandler serves coach signup, signin and profile routes.
type CoachHandler struct {
	store  repository.CoachStore
	auth   *authsvc.Service
	logger *zap.Logger
}

func NewCoachHandler(store repository.CoachStore, auth *authsvc.Service, logger *zap.Logger) *CoachHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoachHandler{store: store, auth: auth, logger: logger}
}

func (h *CoachHandler) SignUp(c *gin.Context) {
	var payload struct {
		Name           string `json:"name" validate:"required"`
		Email          string `json:"email" validate:"required,email"`
		Password       string `json:"password" validate:"required,min=8"`
		Phone          string `json:"phone"`
		Specialization string `json:"specialization"`
		Experience     int    `json:"experience" validate:"gte=0"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &payload) {
		return
	}

	coach := models.Coach{
		Name:           payload.Name,
		Email:          payload.Email,
		Phone:          payload.Phone,
		Specialization: payload.Specialization,
		Experience:     payload.Experience,
	}
	if err := h.auth.CoachSignup(c.Request.Context(), &coach, payload.Password); err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusCreated, coach)
}

func (h *CoachHandler) SignIn(c *gin.Context) {
	var body struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &body) {
		return
	}

	tok, coach, err := h.auth.CoachSignin(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": tok, "data": coach})
}

func (h *CoachHandler) Profile(c *gin.Context) {
	coach, err := h.store.GetByID(c.Request.Context(), c.GetString(middleware.CtxAccountID))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusOK, coach)
}

// UpdateProfile replaces the mutable profile fields; email, password
// hash and join date survive the update.
func (h *CoachHandler) UpdateProfile(c *gin.Context) {
	var payload struct {
		Name           string `json:"name" validate:"required"`
		Phone          string `json:"phone"`
		Specialization string `json:"specialization"`
		Experience     int    `json:"experience" validate:"gte=0"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &payload) {
		return
	}

	id := c.GetString(middleware.CtxAccountID)
	existing, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	existing.Name = payload.Name
	existing.Phone = payload.Phone
	existing.Specialization = payload.Specialization
	existing.Experience = payload.Experience

	updated, err := h.store.Update(c.Request.Context(), id, existing)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusOK, updated)
}
