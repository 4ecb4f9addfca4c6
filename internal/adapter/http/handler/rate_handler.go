package handler

import (
	"time"

	"scrollcoin-ledger/internal/adapter/http/dto"
	"scrollcoin-ledger/internal/adapter/http/middleware"
	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/pkg/apperror"
	"scrollcoin-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RateHandler handles conversion-rate endpoints.
type RateHandler struct {
	oracle ports.RateOracle
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(oracle ports.RateOracle) *RateHandler {
	return &RateHandler{oracle: oracle}
}

// GetCurrent handles GET /api/v1/rates/current.
func (h *RateHandler) GetCurrent(c *gin.Context) {
	rate, err := h.oracle.CurrentRate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRateResponse(rate))
}

// Create handles POST /api/v1/rates (admin capability required).
func (h *RateHandler) Create(c *gin.Context) {
	capability, ok := callerCapability(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	toRef, err := decimal.NewFromString(req.RateToReference)
	if err != nil {
		response.Error(c, apperror.ErrInvalidRate())
		return
	}
	fromRef, err := decimal.NewFromString(req.RateFromReference)
	if err != nil {
		response.Error(c, apperror.ErrInvalidRate())
		return
	}

	createReq := ports.CreateRateRequest{
		RateToReference:   toRef,
		RateFromReference: fromRef,
		Source:            req.Source,
		IsActive:          req.IsActive,
	}
	if req.EffectiveFrom != nil {
		createReq.EffectiveFrom = time.Unix(*req.EffectiveFrom, 0).UTC()
	}
	if req.EffectiveTo != nil {
		t := time.Unix(*req.EffectiveTo, 0).UTC()
		createReq.EffectiveTo = &t
	}

	rate, err := h.oracle.CreateRate(c.Request.Context(), capability, createReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toRateResponse(rate))
}

// Convert handles GET /api/v1/rates/convert?amount=&direction=.
// direction "to_reference" takes token minor units; "from_reference" takes a
// reference-currency decimal.
func (h *RateHandler) Convert(c *gin.Context) {
	amountStr := c.Query("amount")
	direction := c.DefaultQuery("direction", "to_reference")

	if amountStr == "" {
		response.Error(c, apperror.Validation("amount is required"))
		return
	}

	switch direction {
	case "to_reference":
		amount, err := decimal.NewFromString(amountStr)
		if err != nil || !amount.IsInteger() {
			response.Error(c, apperror.Validation("amount must be an integer token amount"))
			return
		}
		out, err := h.oracle.ToReference(c.Request.Context(), amount.IntPart())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, dto.ConvertResponse{Direction: direction, Input: amountStr, Output: out.String()})

	case "from_reference":
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			response.Error(c, apperror.Validation("amount must be a decimal"))
			return
		}
		out, err := h.oracle.FromReference(c.Request.Context(), amount)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, dto.ConvertResponse{Direction: direction, Input: amountStr, Output: decimal.NewFromInt(out).String()})

	default:
		response.Error(c, apperror.Validation("direction must be to_reference or from_reference"))
	}
}

// callerCapability extracts the verified capability set by CapabilityAuth.
func callerCapability(c *gin.Context) (ports.Capability, bool) {
	v, exists := c.Get(middleware.CtxCapability)
	if !exists {
		return ports.Capability{}, false
	}
	capability, ok := v.(ports.Capability)
	return capability, ok
}

func toRateResponse(rate *domain.ExchangeRate) dto.RateResponse {
	resp := dto.RateResponse{
		ID:                rate.ID.String(),
		RateToReference:   rate.RateToReference.String(),
		RateFromReference: rate.RateFromReference.String(),
		Source:            rate.Source,
		IsActive:          rate.IsActive,
		EffectiveFrom:     rate.EffectiveFrom.Unix(),
		CreatedAt:         rate.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if rate.EffectiveTo != nil {
		t := rate.EffectiveTo.Unix()
		resp.EffectiveTo = &t
	}
	return resp
}
