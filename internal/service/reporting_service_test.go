package service

import (
	"context"
	"testing"

	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/internal/core/ports/mocks"
	"scrollcoin-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportingDeps struct {
	accountRepo *mocks.MockAccountRepository
	txRepo      *mocks.MockTransactionRepository
	oracle      *mocks.MockRateOracle
	svc         *ReportingServiceImpl
}

func setupReportingService(t *testing.T) reportingDeps {
	ctrl := gomock.NewController(t)

	d := reportingDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		txRepo:      mocks.NewMockTransactionRepository(ctrl),
		oracle:      mocks.NewMockRateOracle(ctrl),
	}
	d.svc = NewReportingService(d.accountRepo, d.txRepo, d.oracle, zerolog.Nop())
	return d
}

func TestReporting_GetBalance_WithConversion(t *testing.T) {
	d := setupReportingService(t)
	ctx := context.Background()

	account := activeAccount(uuid.New(), 1000)
	account.TotalMinted = 1500
	account.TotalBurned = 500
	rate := testRate("0.05", "20")

	d.accountRepo.EXPECT().GetByID(ctx, account.ID).Return(account, nil)
	d.oracle.EXPECT().CurrentRate(ctx).Return(rate, nil)

	report, err := d.svc.GetBalance(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), report.Balance)
	assert.Equal(t, int64(1500), report.TotalMinted)
	assert.Equal(t, int64(500), report.TotalBurned)
	assert.True(t, report.InReference.Equal(decimal.RequireFromString("50")), "got %s", report.InReference)
	assert.Equal(t, "treasury", report.RateSource)
}

func TestReporting_GetBalance_NoRateDegradesToZero(t *testing.T) {
	d := setupReportingService(t)
	ctx := context.Background()

	account := activeAccount(uuid.New(), 1000)

	d.accountRepo.EXPECT().GetByID(ctx, account.ID).Return(account, nil)
	d.oracle.EXPECT().CurrentRate(ctx).Return(nil, apperror.ErrNoActiveRate())

	report, err := d.svc.GetBalance(ctx, account.ID)

	// A missing rate must not fail the balance read.
	require.NoError(t, err)
	assert.Equal(t, int64(1000), report.Balance)
	assert.True(t, report.InReference.IsZero())
	assert.Empty(t, report.RateSource)
}

func TestReporting_GetBalance_AccountNotFound(t *testing.T) {
	d := setupReportingService(t)
	ctx := context.Background()
	id := uuid.New()

	d.accountRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	_, err := d.svc.GetBalance(ctx, id)

	require.Error(t, err)
	assert.Equal(t, "ACC_001", appErrCode(t, err))
}

func TestReporting_GetHistory_RequiresAccountID(t *testing.T) {
	d := setupReportingService(t)

	_, _, err := d.svc.GetHistory(context.Background(), ports.TransactionListParams{})

	require.Error(t, err)
	assert.Equal(t, "VAL_003", appErrCode(t, err))
}

func TestReporting_GetHistory_ClampsPagination(t *testing.T) {
	d := setupReportingService(t)
	ctx := context.Background()
	accountID := uuid.New()

	d.txRepo.EXPECT().List(ctx, ports.TransactionListParams{
		AccountID: accountID,
		Page:      1,
		PageSize:  20,
	}).Return(nil, int64(0), nil)

	_, _, err := d.svc.GetHistory(ctx, ports.TransactionListParams{
		AccountID: accountID,
		Page:      -5,
		PageSize:  10000,
	})

	require.NoError(t, err)
}
