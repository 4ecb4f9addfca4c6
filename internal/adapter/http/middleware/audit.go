package middleware

import (
	"encoding/json"
	"time"

	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditTrail creates a middleware that records successful administrative
// write operations. Ledger operations are not audited here; the transaction
// row itself is the record.
func AuditTrail(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			return
		}

		action, resourceType := mapPathToAction(c.Request.URL.Path, c.Request.Method)
		if action == "" {
			return
		}

		var principalID uuid.UUID
		if pid, exists := c.Get(CtxPrincipalID); exists {
			if id, ok := pid.(uuid.UUID); ok {
				principalID = id
			}
		}

		detailJSON, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})
		detail := string(detailJSON)

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Action:       action,
			PrincipalID:  principalID,
			ResourceType: resourceType,
			Detail:       &detail,
			IPAddress:    c.ClientIP(),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func mapPathToAction(path, method string) (domain.AuditAction, string) {
	switch {
	case path == "/api/v1/rates" && method == "POST":
		return domain.AuditRateCreate, "exchange_rate"
	case method == "POST" && matchReviewPath(path):
		return domain.AuditAlertReview, "fraud_alert"
	}
	return "", ""
}

// matchReviewPath matches /api/v1/alerts/:id/review.
func matchReviewPath(path string) bool {
	const prefix = "/api/v1/alerts/"
	const suffix = "/review"
	if len(path) <= len(prefix)+len(suffix) {
		return false
	}
	return path[:len(prefix)] == prefix && path[len(path)-len(suffix):] == suffix
}
