package handler

import (
	"scrollcoin-ledger/internal/adapter/http/dto"
	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/pkg/apperror"
	"scrollcoin-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet lifecycle and balance endpoints.
type WalletHandler struct {
	walletSvc    ports.WalletService
	reportingSvc ports.ReportingService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService, reportingSvc ports.ReportingService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc, reportingSvc: reportingSvc}
}

// Create handles POST /api/v1/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		response.Error(c, apperror.Validation("owner_id must be a UUID"))
		return
	}

	account, err := h.walletSvc.Create(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toAccountResponse(account))
}

// GetBalance handles GET /api/v1/wallets/:id/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	report, err := h.reportingSvc.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		AccountID:   report.AccountID.String(),
		Balance:     report.Balance,
		TotalMinted: report.TotalMinted,
		TotalBurned: report.TotalBurned,
		InReference: report.InReference.String(),
		RateSource:  report.RateSource,
	})
}

// toAccountResponse converts domain.Account to DTO. The encrypted private
// key never leaves the service.
func toAccountResponse(a *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:            a.ID.String(),
		OwnerID:       a.OwnerID.String(),
		Address:       a.Address,
		PublicKey:     a.PublicKey,
		Balance:       a.Balance,
		TotalMinted:   a.TotalMinted,
		TotalBurned:   a.TotalBurned,
		IsActive:      a.IsActive,
		IsBlacklisted: a.IsBlacklisted,
		CreatedAt:     a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
