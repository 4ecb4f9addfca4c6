package middleware

import (
	"net/http"
	"strings"
	"time"

	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/pkg/apperror"
	"scrollcoin-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Context keys set by CapabilityAuth.
const (
	CtxPrincipalID = "principal_id"
	CtxCapability  = "capability"
	CtxBearerToken = "bearer_token"
)

// CapabilityAuth verifies the Bearer capability token and requires the given
// scope. The verified capability and the raw token are stored on the context;
// handlers that need a narrower scope (key:decrypt) re-verify the raw token.
func CapabilityAuth(capSvc ports.CapabilityService, requiredScope string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, apperror.ErrUnauthorized())
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		capability, err := capSvc.Verify(token, requiredScope)
		if err != nil {
			// Verification failures are caller faults regardless of the
			// underlying cause; never surface them as internal errors.
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("capability verification failed")
			response.Error(c, apperror.ErrUnauthorized())
			c.Abort()
			return
		}

		c.Set(CtxPrincipalID, capability.PrincipalID)
		c.Set(CtxCapability, *capability)
		c.Set(CtxBearerToken, token)

		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
