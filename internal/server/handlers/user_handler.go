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

// UserHandler serves member registration, login and the password-reset
// flow.
type UserHandler struct {
	store  repository.UserStore
	auth   *authsvc.Service
	logger *zap.Logger
}

func NewUserHandler(store repository.UserStore, auth *authsvc.Service, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{store: store, auth: auth, logger: logger}
}

func (h *UserHandler) Register(c *gin.Context) {
	var payload struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &payload) {
		return
	}

	user := models.User{
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	}
	tok, err := h.auth.RegisterMember(c.Request.Context(), &user, payload.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "token": tok, "data": user})
}

func (h *UserHandler) Login(c *gin.Context) {
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

	tok, user, err := h.auth.LoginMember(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": tok, "data": user})
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.store.GetByID(c.Request.Context(), c.GetString(middleware.CtxAccountID))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	apiData(c, http.StatusOK, user)
}

// ForgotPassword issues a short-lived reset token. With no mailer in
// the system the token is returned in the response body.
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var body struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &body) {
		return
	}

	resetToken, err := h.auth.ForgotPassword(c.Request.Context(), body.Email)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "resetToken": resetToken})
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var body struct {
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &body) {
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), c.Param("token"), body.Password); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "password updated"})
}
