package handler

import (
	"fmt"
	"net/http"
	"testing"

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

type ledgerHandlerDeps struct {
	ledgerSvc    *mocks.MockLedgerService
	reportingSvc *mocks.MockReportingService
	router       *gin.Engine
}

func setupLedgerHandler(t *testing.T) ledgerHandlerDeps {
	ctrl := gomock.NewController(t)

	d := ledgerHandlerDeps{
		ledgerSvc:    mocks.NewMockLedgerService(ctrl),
		reportingSvc: mocks.NewMockReportingService(ctrl),
	}

	h := NewLedgerHandler(d.ledgerSvc, d.reportingSvc)

	d.router = gin.New()
	d.router.POST("/api/v1/ledger/mint", h.Mint)
	d.router.POST("/api/v1/ledger/burn", h.Burn)
	d.router.POST("/api/v1/ledger/transfer", h.Transfer)
	d.router.POST("/api/v1/ledger/reward", h.Reward)
	d.router.GET("/api/v1/ledger/transactions", h.ListTransactions)
	return d
}

// ==================== Mint Tests ====================

func TestLedgerHandler_Mint_Success(t *testing.T) {
	d := setupLedgerHandler(t)
	accountID := uuid.New()

	d.ledgerSvc.EXPECT().Mint(gomock.Any(), ports.MintRequest{
		AccountID:   accountID,
		Amount:      500,
		Kind:        domain.KindMint,
		Reason:      "seed",
		ReferenceID: "mint-001",
	}).Return(confirmedTransaction(accountID, 500, domain.KindMint), nil)

	body := fmt.Sprintf(`{"account_id":%q,"amount":500,"reason":"seed","reference_id":"mint-001"}`, accountID)
	w := doJSON(d.router, "POST", "/api/v1/ledger/mint", body)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.TransactionResponse
	successData(t, w, &resp)
	assert.Equal(t, accountID.String(), resp.AccountID)
	assert.Equal(t, int64(500), resp.Amount)
	assert.Equal(t, "MINT", resp.Kind)
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestLedgerHandler_Mint_MissingAmount(t *testing.T) {
	d := setupLedgerHandler(t)

	body := fmt.Sprintf(`{"account_id":%q}`, uuid.New())
	w := doJSON(d.router, "POST", "/api/v1/ledger/mint", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_003", errorCode(t, w))
}

func TestLedgerHandler_Mint_NegativeAmountFailsBinding(t *testing.T) {
	d := setupLedgerHandler(t)

	body := fmt.Sprintf(`{"account_id":%q,"amount":-100}`, uuid.New())
	w := doJSON(d.router, "POST", "/api/v1/ledger/mint", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_003", errorCode(t, w))
}

func TestLedgerHandler_Mint_UnsafeReferenceRejected(t *testing.T) {
	d := setupLedgerHandler(t)

	body := fmt.Sprintf(`{"account_id":%q,"amount":100,"reference_id":"bad ref; drop"}`, uuid.New())
	w := doJSON(d.router, "POST", "/api/v1/ledger/mint", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_003", errorCode(t, w))
}

func TestLedgerHandler_Mint_FraudBlockedMapsTo403(t *testing.T) {
	d := setupLedgerHandler(t)
	accountID := uuid.New()

	d.ledgerSvc.EXPECT().Mint(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrFraudBlocked("DAILY_LIMIT_EXCEEDED"))

	body := fmt.Sprintf(`{"account_id":%q,"amount":500}`, accountID)
	w := doJSON(d.router, "POST", "/api/v1/ledger/mint", body)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FRD_001", errorCode(t, w))
}

// ==================== Burn Tests ====================

func TestLedgerHandler_Burn_InsufficientFundsMapsTo402(t *testing.T) {
	d := setupLedgerHandler(t)
	accountID := uuid.New()

	d.ledgerSvc.EXPECT().Burn(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInsufficientFunds())

	body := fmt.Sprintf(`{"account_id":%q,"amount":9000}`, accountID)
	w := doJSON(d.router, "POST", "/api/v1/ledger/burn", body)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, "LED_001", errorCode(t, w))
}

func TestLedgerHandler_Burn_Success(t *testing.T) {
	d := setupLedgerHandler(t)
	accountID := uuid.New()

	d.ledgerSvc.EXPECT().Burn(gomock.Any(), ports.BurnRequest{
		AccountID: accountID,
		Amount:    50,
		Kind:      domain.KindBurn,
		Reason:    "redeem",
	}).Return(confirmedTransaction(accountID, 50, domain.KindBurn), nil)

	body := fmt.Sprintf(`{"account_id":%q,"amount":50,"reason":"redeem"}`, accountID)
	w := doJSON(d.router, "POST", "/api/v1/ledger/burn", body)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.TransactionResponse
	successData(t, w, &resp)
	assert.Equal(t, "BURN", resp.Kind)
}

// ==================== Transfer Tests ====================

func TestLedgerHandler_Transfer_Success(t *testing.T) {
	d := setupLedgerHandler(t)
	fromID := uuid.New()
	toID := uuid.New()

	txn := confirmedTransaction(fromID, 200, domain.KindTransfer)
	txn.CounterpartyAccountID = &toID

	d.ledgerSvc.EXPECT().Transfer(gomock.Any(), ports.TransferRequest{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        200,
		Reason:        "gift",
	}).Return(txn, nil)

	body := fmt.Sprintf(`{"from_account_id":%q,"to_account_id":%q,"amount":200,"reason":"gift"}`, fromID, toID)
	w := doJSON(d.router, "POST", "/api/v1/ledger/transfer", body)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.TransactionResponse
	successData(t, w, &resp)
	require.NotNil(t, resp.CounterpartyAccountID)
	assert.Equal(t, toID.String(), *resp.CounterpartyAccountID)
}

func TestLedgerHandler_Transfer_SelfTransferMapsTo400(t *testing.T) {
	d := setupLedgerHandler(t)
	id := uuid.New()

	d.ledgerSvc.EXPECT().Transfer(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrSelfTransfer())

	body := fmt.Sprintf(`{"from_account_id":%q,"to_account_id":%q,"amount":100}`, id, id)
	w := doJSON(d.router, "POST", "/api/v1/ledger/transfer", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_002", errorCode(t, w))
}

func TestLedgerHandler_Transfer_MalformedUUID(t *testing.T) {
	d := setupLedgerHandler(t)

	body := fmt.Sprintf(`{"from_account_id":"not-a-uuid","to_account_id":%q,"amount":100}`, uuid.New())
	w := doJSON(d.router, "POST", "/api/v1/ledger/transfer", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_003", errorCode(t, w))
}

// ==================== Reward Tests ====================

func TestLedgerHandler_Reward_Success(t *testing.T) {
	d := setupLedgerHandler(t)
	accountID := uuid.New()

	d.ledgerSvc.EXPECT().RewardForEvent(gomock.Any(), ports.RewardRequest{
		AccountID:   accountID,
		EventType:   "scroll_completed",
		ReferenceID: "evt-42",
	}).Return(confirmedTransaction(accountID, 50, domain.KindReward), nil)

	body := fmt.Sprintf(`{"account_id":%q,"event_type":"scroll_completed","reference_id":"evt-42"}`, accountID)
	w := doJSON(d.router, "POST", "/api/v1/ledger/reward", body)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.TransactionResponse
	successData(t, w, &resp)
	assert.Equal(t, "REWARD", resp.Kind)
}

func TestLedgerHandler_Reward_MissingEventType(t *testing.T) {
	d := setupLedgerHandler(t)

	body := fmt.Sprintf(`{"account_id":%q}`, uuid.New())
	w := doJSON(d.router, "POST", "/api/v1/ledger/reward", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_003", errorCode(t, w))
}

// ==================== ListTransactions Tests ====================

func TestLedgerHandler_ListTransactions_Success(t *testing.T) {
	d := setupLedgerHandler(t)
	accountID := uuid.New()
	kind := domain.KindTransfer

	txn := confirmedTransaction(accountID, 200, domain.KindTransfer)
	d.reportingSvc.EXPECT().GetHistory(gomock.Any(), ports.TransactionListParams{
		AccountID: accountID,
		Kind:      &kind,
		Page:      2,
		PageSize:  10,
	}).Return([]domain.Transaction{*txn}, int64(11), nil)

	path := fmt.Sprintf("/api/v1/ledger/transactions?account_id=%s&kind=TRANSFER&page=2&page_size=10", accountID)
	w := doJSON(d.router, "GET", path, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.TransactionListResponse
	successData(t, w, &resp)
	assert.Equal(t, int64(11), resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Items, 1)
}

func TestLedgerHandler_ListTransactions_ClampsPagination(t *testing.T) {
	d := setupLedgerHandler(t)
	accountID := uuid.New()

	d.reportingSvc.EXPECT().GetHistory(gomock.Any(), ports.TransactionListParams{
		AccountID: accountID,
		Page:      1,
		PageSize:  20,
	}).Return(nil, int64(0), nil)

	path := fmt.Sprintf("/api/v1/ledger/transactions?account_id=%s&page=-3&page_size=5000", accountID)
	w := doJSON(d.router, "GET", path, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLedgerHandler_ListTransactions_BadAccountID(t *testing.T) {
	d := setupLedgerHandler(t)

	w := doJSON(d.router, "GET", "/api/v1/ledger/transactions?account_id=nope", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_003", errorCode(t, w))
}
