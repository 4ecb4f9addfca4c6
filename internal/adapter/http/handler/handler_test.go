package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"scrollcoin-ledger/internal/adapter/http/middleware"
	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withCapability injects a verified capability the way CapabilityAuth would.
func withCapability(scopes ...string) gin.HandlerFunc {
	principalID := uuid.New()
	return func(c *gin.Context) {
		c.Set(middleware.CtxPrincipalID, principalID)
		c.Set(middleware.CtxCapability, ports.Capability{PrincipalID: principalID, Scopes: scopes})
		c.Set(middleware.CtxBearerToken, "test-token")
	}
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body.ErrorCode
}

func successData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "body: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func confirmedTransaction(accountID uuid.UUID, amount int64, kind domain.TransactionKind) *domain.Transaction {
	now := time.Now().UTC()
	return &domain.Transaction{
		ID:          uuid.New(),
		AccountID:   accountID,
		Amount:      amount,
		Kind:        kind,
		Status:      domain.StatusConfirmed,
		Reason:      "test",
		CreatedAt:   now,
		ConfirmedAt: &now,
	}
}
