package middleware

import (
	"log/slog"

	"github.com/golder/bank_statements_api/internal/utils"
	"github.com/gin-gonic/gin"
)

// APIKeyOperator is the operator id recorded for requests authenticated with the shared API key.
const APIKeyOperator = "api-key"

// APIKeyAuth authenticates back-office scripts that send the shared key in the x-api-key header.
// The key is compared against a bcrypt hash. Requests without a key, or with a wrong one,
// continue unauthenticated so that AuthMiddleware can still accept a JWT.
func APIKeyAuth(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-api-key")
		if key == "" || keyHash == "" {
			c.Next()
			return
		}

		if !utils.CheckAPIKeyHash(key, keyHash) {
			GetLoggerFromCtx(c.Request.Context()).Warn("API key rejected", slog.String("path", c.Request.URL.Path))
			c.Next()
			return
		}

		setOperator(c, APIKeyOperator, "api_key")
		c.Next()
	}
}
