package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcenter-backend/pkg/apperrors"
	"fitcenter-backend/pkg/validate"
)

// respondError converts any error into the taxonomy response. Internal
// causes are logged server-side; the wire only carries the generic
// message.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError && logger != nil {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"error": apperrors.Message(err)})
}

// checkStruct runs tag validation and converts failures into a 400.
// Returns false when the request was already answered.
func checkStruct(c *gin.Context, logger *zap.Logger, payload interface{}) bool {
	if errs := validate.Struct(payload); errs != nil {
		respondError(c, logger, apperrors.Validationf("%s", validate.Message(errs)))
		return false
	}
	return true
}

// apiData is the envelope used by the newer /api module group. The
// legacy finance group wraps responses in per-entity named fields
// instead; both shapes are deliberate (see DESIGN.md).
func apiData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}
