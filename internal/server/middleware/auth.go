package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcenter-backend/pkg/token"
)

// Context keys populated by the auth middlewares.
const (
	CtxAccountID = "account_id"
	CtxEmail     = "account_email"
)

// Fixed identity injected when the payment bypass flag is on.
const (
	devAccountID = "dev-local"
	devEmail     = "dev@localhost"
)

// RequireAuth validates a bearer token for the given audience and sets
// the account identity in the request context.
func RequireAuth(tokens *token.Manager, aud token.Audience) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := bearerClaims(c, tokens, aud)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(CtxAccountID, claims.AccountID)
		c.Set(CtxEmail, claims.Email)
		c.Next()
	}
}

// PaymentGate protects the payment routes. The bypass flag is decided
// once at startup from configuration; when on, every request runs as a
// fixed development identity and no token is checked.
func PaymentGate(tokens *token.Manager, bypass bool, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	if bypass {
		logger.Warn("payment auth bypass enabled, requests run as a fixed development identity")
		return func(c *gin.Context) {
			c.Set(CtxAccountID, devAccountID)
			c.Set(CtxEmail, devEmail)
			c.Next()
		}
	}

	return RequireAuth(tokens, token.AudienceMember)
}

func bearerClaims(c *gin.Context, tokens *token.Manager, aud token.Audience) (*token.Claims, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, token.ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, token.ErrInvalidToken
	}

	return tokens.Validate(parts[1], aud)
}
