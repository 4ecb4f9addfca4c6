package handler

import (
	"strconv"

	"scrollcoin-ledger/internal/adapter/http/dto"
	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/pkg/apperror"
	"scrollcoin-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AlertHandler handles fraud alert review endpoints.
type AlertHandler struct {
	sentinel ports.FraudSentinel
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(sentinel ports.FraudSentinel) *AlertHandler {
	return &AlertHandler{sentinel: sentinel}
}

// ListPending handles GET /api/v1/alerts/pending.
func (h *AlertHandler) ListPending(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	alerts, total, err := h.sentinel.PendingAlerts(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		items = append(items, toAlertResponse(&alerts[i]))
	}

	response.OK(c, dto.AlertListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Review handles POST /api/v1/alerts/:id/review.
func (h *AlertHandler) Review(c *gin.Context) {
	capability, ok := callerCapability(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	var req dto.ReviewAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	alert, err := h.sentinel.ReviewAlert(c.Request.Context(), capability, ports.ReviewAlertRequest{
		AlertID:  alertID,
		Decision: domain.AlertStatus(req.Decision),
		Notes:    req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAlertResponse(alert))
}

func toAlertResponse(a *domain.FraudAlert) dto.AlertResponse {
	resp := dto.AlertResponse{
		ID:          a.ID.String(),
		AlertType:   string(a.AlertType),
		Severity:    string(a.Severity),
		Status:      string(a.Status),
		Description: a.Description,
		DetectedAt:  a.DetectedAt.Format("2006-01-02T15:04:05Z07:00"),
		ReviewNotes: a.ReviewNotes,
	}
	if a.AccountID != nil {
		s := a.AccountID.String()
		resp.AccountID = &s
	}
	if a.TransactionID != nil {
		s := a.TransactionID.String()
		resp.TransactionID = &s
	}
	return resp
}
