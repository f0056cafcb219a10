package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/repository"
	authsvc "fitcenter-backend/internal/service/auth"
	"fitcenter-backend/pkg/apperrors"
)

// staffPayload is the registration/update body. The password travels
// only inbound and is hashed before anything is stored.
type staffPayload struct {
	Name     string    `json:"name" validate:"required"`
	Email    string    `json:"email" validate:"required,email"`
	Username string    `json:"username" validate:"required"`
	Password string    `json:"password"`
	Phone    string    `json:"phone"`
	Role     string    `json:"role" validate:"oneof=financial-manager hr receptionist maintenance"`
	JoinDate time.Time `json:"joinDate"`
}

// StaffHandler serves staff registration CRUD and the legacy signin
// endpoints.
type StaffHandler struct {
	store  repository.StaffStore
	auth   *authsvc.Service
	logger *zap.Logger
}

func NewStaffHandler(store repository.StaffStore, auth *authsvc.Service, logger *zap.Logger) *StaffHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffHandler{store: store, auth: auth, logger: logger}
}

func (h *StaffHandler) SignUp(c *gin.Context) {
	var payload staffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if payload.Password == "" {
		respondError(c, h.logger, apperrors.Validationf("password is required"))
		return
	}
	if !checkStruct(c, h.logger, &payload) {
		return
	}

	hash, err := authsvc.HashPassword(payload.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	staff := models.StaffMember{
		Name:         payload.Name,
		Email:        payload.Email,
		Username:     payload.Username,
		PasswordHash: hash,
		Phone:        payload.Phone,
		Role:         payload.Role,
		JoinDate:     payload.JoinDate,
	}
	if err := h.store.Create(c.Request.Context(), &staff); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

func (h *StaffHandler) List(c *gin.Context) {
	members, err := h.store.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": members})
}

func (h *StaffHandler) GetByID(c *gin.Context) {
	staff, err := h.store.GetByID(c.Request.Context(), c.Param("ID"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

// Update fully replaces the profile; the stored hash survives unless a
// new password is supplied.
func (h *StaffHandler) Update(c *gin.Context) {
	var payload staffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &payload) {
		return
	}

	existing, err := h.store.GetByID(c.Request.Context(), c.Param("ID"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	hash := existing.PasswordHash
	if payload.Password != "" {
		hash, err = authsvc.HashPassword(payload.Password)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
	}

	staff := models.StaffMember{
		Name:         payload.Name,
		Email:        payload.Email,
		Username:     payload.Username,
		PasswordHash: hash,
		Phone:        payload.Phone,
		Role:         payload.Role,
		JoinDate:     payload.JoinDate,
		CreatedAt:    existing.CreatedAt,
	}
	updated, err := h.store.Update(c.Request.Context(), c.Param("ID"), &staff)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": updated})
}

func (h *StaffHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("ID")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff member deleted"})
}

// InsertSignIn appends a raw session record, mirroring the legacy
// insert endpoint.
func (h *StaffHandler) InsertSignIn(c *gin.Context) {
	var record models.SignInRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &record) {
		return
	}

	if err := h.auth.RecordSignInSession(c.Request.Context(), &record); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": record})
}

// SignIn checks staff credentials.
func (h *StaffHandler) SignIn(c *gin.Context) {
	var body struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.logger, apperrors.Validationf("invalid request body"))
		return
	}
	if !checkStruct(c, h.logger, &body) {
		return
	}

	staff, err := h.auth.StaffSignIn(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}
