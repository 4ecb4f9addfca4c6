package service

import (
	"context"

	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ReportingServiceImpl serves the read side: balances and history. It never
// writes and never takes row locks.
type ReportingServiceImpl struct {
	accountRepo ports.AccountRepository
	txRepo      ports.TransactionRepository
	oracle      ports.RateOracle
	log         zerolog.Logger
}

// NewReportingService creates a new ReportingServiceImpl.
func NewReportingService(accountRepo ports.AccountRepository, txRepo ports.TransactionRepository, oracle ports.RateOracle, log zerolog.Logger) *ReportingServiceImpl {
	return &ReportingServiceImpl{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		oracle:      oracle,
		log:         log,
	}
}

// GetBalance returns the account's position. The reference-currency figure is
// best-effort: a missing rate degrades to zero rather than failing the read.
func (s *ReportingServiceImpl) GetBalance(ctx context.Context, accountID uuid.UUID) (*ports.BalanceReport, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if account == nil {
		return nil, apperror.ErrNotFound("Account")
	}

	report := &ports.BalanceReport{
		AccountID:   account.ID,
		Balance:     account.Balance,
		TotalMinted: account.TotalMinted,
		TotalBurned: account.TotalBurned,
		InReference: decimal.Zero,
	}

	if s.oracle != nil {
		if rate, rerr := s.oracle.CurrentRate(ctx); rerr == nil {
			report.InReference = decimal.NewFromInt(account.Balance).Mul(rate.RateToReference)
			report.RateSource = rate.Source
		} else {
			s.log.Debug().Err(rerr).Msg("no conversion rate for balance report")
		}
	}

	return report, nil
}

// GetHistory lists transactions matching the filter, newest first.
func (s *ReportingServiceImpl) GetHistory(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	if params.AccountID == uuid.Nil {
		return nil, 0, apperror.Validation("account_id is required")
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}

	txns, total, err := s.txRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(err)
	}
	return txns, total, nil
}
