package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"scrollcoin-ledger/internal/adapter/http/dto"
	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/internal/core/ports/mocks"
	"scrollcoin-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type alertHandlerDeps struct {
	sentinel *mocks.MockFraudSentinel
	router   *gin.Engine
}

func setupAlertHandler(t *testing.T, authed bool) alertHandlerDeps {
	ctrl := gomock.NewController(t)

	d := alertHandlerDeps{sentinel: mocks.NewMockFraudSentinel(ctrl)}
	h := NewAlertHandler(d.sentinel)

	d.router = gin.New()
	d.router.GET("/api/v1/alerts/pending", h.ListPending)
	if authed {
		d.router.POST("/api/v1/alerts/:id/review", withCapability(ports.ScopeAdmin), h.Review)
	} else {
		d.router.POST("/api/v1/alerts/:id/review", h.Review)
	}
	return d
}

func pendingAlert() domain.FraudAlert {
	accountID := uuid.New()
	return domain.FraudAlert{
		ID:          uuid.New(),
		AccountID:   &accountID,
		AlertType:   domain.AlertDailyLimitExceeded,
		Severity:    domain.SeverityHigh,
		Status:      domain.AlertPending,
		Description: "daily outgoing limit exceeded",
		DetectedAt:  time.Now().UTC(),
	}
}

func TestAlertHandler_ListPending_Success(t *testing.T) {
	d := setupAlertHandler(t, true)

	d.sentinel.EXPECT().PendingAlerts(gomock.Any(), 1, 20).
		Return([]domain.FraudAlert{pendingAlert()}, int64(1), nil)

	w := doJSON(d.router, "GET", "/api/v1/alerts/pending", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.AlertListResponse
	successData(t, w, &resp)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "DAILY_LIMIT_EXCEEDED", resp.Items[0].AlertType)
	assert.Equal(t, "PENDING", resp.Items[0].Status)
}

func TestAlertHandler_ListPending_ClampsPagination(t *testing.T) {
	d := setupAlertHandler(t, true)

	d.sentinel.EXPECT().PendingAlerts(gomock.Any(), 1, 20).
		Return(nil, int64(0), nil)

	w := doJSON(d.router, "GET", "/api/v1/alerts/pending?page=0&page_size=999", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAlertHandler_Review_Success(t *testing.T) {
	d := setupAlertHandler(t, true)
	alert := pendingAlert()

	d.sentinel.EXPECT().ReviewAlert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, capability ports.Capability, req ports.ReviewAlertRequest) (*domain.FraudAlert, error) {
			assert.True(t, capability.Has(ports.ScopeAdmin))
			assert.Equal(t, alert.ID, req.AlertID)
			assert.Equal(t, domain.AlertFalsePositive, req.Decision)
			assert.Equal(t, "customer confirmed purchase", req.Notes)

			reviewed := alert
			reviewed.Status = domain.AlertFalsePositive
			reviewed.ReviewNotes = &req.Notes
			return &reviewed, nil
		})

	body := `{"decision":"FALSE_POSITIVE","notes":"customer confirmed purchase"}`
	w := doJSON(d.router, "POST", "/api/v1/alerts/"+alert.ID.String()+"/review", body)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.AlertResponse
	successData(t, w, &resp)
	assert.Equal(t, "FALSE_POSITIVE", resp.Status)
	require.NotNil(t, resp.ReviewNotes)
}

func TestAlertHandler_Review_WithoutCapability(t *testing.T) {
	d := setupAlertHandler(t, false)

	body := `{"decision":"RESOLVED"}`
	w := doJSON(d.router, "POST", "/api/v1/alerts/"+uuid.NewString()+"/review", body)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "KEY_001", errorCode(t, w))
}

func TestAlertHandler_Review_MalformedID(t *testing.T) {
	d := setupAlertHandler(t, true)

	body := `{"decision":"RESOLVED"}`
	w := doJSON(d.router, "POST", "/api/v1/alerts/not-a-uuid/review", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_003", errorCode(t, w))
}

func TestAlertHandler_Review_InvalidDecision(t *testing.T) {
	d := setupAlertHandler(t, true)

	// PENDING is not an operator decision; binding rejects it.
	body := `{"decision":"PENDING"}`
	w := doJSON(d.router, "POST", "/api/v1/alerts/"+uuid.NewString()+"/review", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_003", errorCode(t, w))
}

func TestAlertHandler_Review_AlreadyReviewedMapsTo409(t *testing.T) {
	d := setupAlertHandler(t, true)

	d.sentinel.EXPECT().ReviewAlert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrAlertAlreadyReviewed())

	body := `{"decision":"RESOLVED"}`
	w := doJSON(d.router, "POST", "/api/v1/alerts/"+uuid.NewString()+"/review", body)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "FRD_002", errorCode(t, w))
}
