package handler

import (
	"math"
	"strconv"

	"scrollcoin-ledger/internal/adapter/http/dto"
	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/pkg/apperror"
	"scrollcoin-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LedgerHandler handles balance-mutating endpoints and transaction history.
type LedgerHandler struct {
	ledgerSvc    ports.LedgerService
	reportingSvc ports.ReportingService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService, reportingSvc ports.ReportingService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc, reportingSvc: reportingSvc}
}

// Mint handles POST /api/v1/ledger/mint.
func (h *LedgerHandler) Mint(c *gin.Context) {
	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		response.Error(c, apperror.Validation("account_id must be a UUID"))
		return
	}

	result, err := h.ledgerSvc.Mint(c.Request.Context(), ports.MintRequest{
		AccountID:   accountID,
		Amount:      req.Amount,
		Kind:        domain.KindMint,
		Reason:      req.Reason,
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(result))
}

// Burn handles POST /api/v1/ledger/burn.
func (h *LedgerHandler) Burn(c *gin.Context) {
	var req dto.BurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		response.Error(c, apperror.Validation("account_id must be a UUID"))
		return
	}

	result, err := h.ledgerSvc.Burn(c.Request.Context(), ports.BurnRequest{
		AccountID:   accountID,
		Amount:      req.Amount,
		Kind:        domain.KindBurn,
		Reason:      req.Reason,
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(result))
}

// Transfer handles POST /api/v1/ledger/transfer.
func (h *LedgerHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	fromID, err := uuid.Parse(req.FromAccountID)
	if err != nil {
		response.Error(c, apperror.Validation("from_account_id must be a UUID"))
		return
	}
	toID, err := uuid.Parse(req.ToAccountID)
	if err != nil {
		response.Error(c, apperror.Validation("to_account_id must be a UUID"))
		return
	}

	result, err := h.ledgerSvc.Transfer(c.Request.Context(), ports.TransferRequest{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        req.Amount,
		Reason:        req.Reason,
		ReferenceID:   req.ReferenceID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(result))
}

// Reward handles POST /api/v1/ledger/reward.
func (h *LedgerHandler) Reward(c *gin.Context) {
	var req dto.RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		response.Error(c, apperror.Validation("account_id must be a UUID"))
		return
	}

	result, err := h.ledgerSvc.RewardForEvent(c.Request.Context(), ports.RewardRequest{
		AccountID:   accountID,
		EventType:   req.EventType,
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(result))
}

// ListTransactions handles GET /api/v1/ledger/transactions.
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	accountID, err := uuid.Parse(c.Query("account_id"))
	if err != nil {
		response.Error(c, apperror.Validation("account_id must be a UUID"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	params := ports.TransactionListParams{
		AccountID: accountID,
		Page:      page,
		PageSize:  pageSize,
	}

	if k := c.Query("kind"); k != "" {
		kind := domain.TransactionKind(k)
		params.Kind = &kind
	}
	if s := c.Query("status"); s != "" {
		status := domain.TransactionStatus(s)
		params.Status = &status
	}
	if f := c.Query("from"); f != "" {
		if v, err := strconv.ParseInt(f, 10, 64); err == nil {
			params.From = &v
		}
	}
	if t := c.Query("to"); t != "" {
		if v, err := strconv.ParseInt(t, 10, 64); err == nil {
			params.To = &v
		}
	}

	txns, total, err := h.reportingSvc.GetHistory(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResponse(&txns[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	response.OK(c, dto.TransactionListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// toTransactionResponse converts domain.Transaction to DTO.
func toTransactionResponse(tx *domain.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:          tx.ID.String(),
		AccountID:   tx.AccountID.String(),
		Amount:      tx.Amount,
		Kind:        string(tx.Kind),
		Status:      string(tx.Status),
		Reason:      tx.Reason,
		ReferenceID: tx.ReferenceID,
		CreatedAt:   tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if tx.CounterpartyAccountID != nil {
		s := tx.CounterpartyAccountID.String()
		resp.CounterpartyAccountID = &s
	}
	if tx.ConfirmedAt != nil {
		s := tx.ConfirmedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ConfirmedAt = &s
	}
	return resp
}
