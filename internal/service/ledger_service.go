package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	idempotencyTTL  = 24 * time.Hour
	commitAttempts  = 3
	commitBackoff   = 25 * time.Millisecond
	maxReasonLength = 500
)

// chainReversalPrefix keys compensating transactions so a repeated rejection
// callback reverses a balance delta exactly once.
const chainReversalPrefix = "chain-reversal:"

// LedgerServiceImpl implements ports.LedgerService with pessimistic row
// locking. Every operation is one atomic unit: balance deltas, counter
// updates and the Confirmed transaction row commit together or not at all.
type LedgerServiceImpl struct {
	accountRepo ports.AccountRepository
	txRepo      ports.TransactionRepository
	rewardRepo  ports.RewardRuleRepository
	idempCache  ports.IdempotencyCache
	sentinel    ports.FraudSentinel
	transactor  ports.DBTransactor
	anchor      ports.AnchorService // nil = anchoring disabled
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	accountRepo ports.AccountRepository,
	txRepo ports.TransactionRepository,
	rewardRepo ports.RewardRuleRepository,
	idempCache ports.IdempotencyCache,
	sentinel ports.FraudSentinel,
	transactor ports.DBTransactor,
	anchor ports.AnchorService,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		rewardRepo:  rewardRepo,
		idempCache:  idempCache,
		sentinel:    sentinel,
		transactor:  transactor,
		anchor:      anchor,
		log:         log,
	}
}

// Mint credits freshly created supply to an account.
func (s *LedgerServiceImpl) Mint(ctx context.Context, req ports.MintRequest) (*domain.Transaction, error) {
	kind := req.Kind
	if kind == "" {
		kind = domain.KindMint
	}
	if !kind.Credits() {
		return nil, apperror.Validation("mint kind must be MINT or REWARD")
	}
	if err := validateAmountReason(req.Amount, req.Reason); err != nil {
		return nil, err
	}

	if existing, err := s.replayByReference(ctx, req.ReferenceID); err != nil || existing != nil {
		return existing, err
	}

	account, err := s.loadAccount(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	proposed := ports.ProposedTransaction{
		Kind:        kind,
		Amount:      req.Amount,
		ReferenceID: req.ReferenceID,
		Dest:        account,
	}
	verdict, err := s.screen(ctx, proposed)
	if err != nil {
		return nil, err
	}

	txn, err := s.commitWithRetry(ctx, req.ReferenceID, func(tx pgx.Tx) (*domain.Transaction, error) {
		locked, err := s.lockAccount(ctx, tx, req.AccountID)
		if err != nil {
			return nil, err
		}
		if locked.IsBlacklisted {
			return nil, apperror.ErrWalletBlacklisted()
		}

		if _, err := s.accountRepo.ApplyDelta(ctx, tx, locked.ID, req.Amount); err != nil {
			return nil, mapDeltaErr(err)
		}
		if err := s.accountRepo.AddTotals(ctx, tx, locked.ID, req.Amount, 0); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}

		return s.insertConfirmed(ctx, tx, locked.ID, nil, req.Amount, kind, req.Reason, req.ReferenceID)
	})
	s.recordFlags(ctx, verdict, txn)
	if err != nil {
		return nil, err
	}

	s.postCommit(ctx, txn)
	return txn, nil
}

// Burn destroys supply held by an account.
func (s *LedgerServiceImpl) Burn(ctx context.Context, req ports.BurnRequest) (*domain.Transaction, error) {
	kind := req.Kind
	if kind == "" {
		kind = domain.KindBurn
	}
	if !kind.Debits() {
		return nil, apperror.Validation("burn kind must be BURN or PURCHASE")
	}
	if err := validateAmountReason(req.Amount, req.Reason); err != nil {
		return nil, err
	}

	if existing, err := s.replayByReference(ctx, req.ReferenceID); err != nil || existing != nil {
		return existing, err
	}

	account, err := s.loadAccount(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if err := checkSpendable(account); err != nil {
		return nil, err
	}

	proposed := ports.ProposedTransaction{
		Kind:        kind,
		Amount:      req.Amount,
		ReferenceID: req.ReferenceID,
		Source:      account,
	}
	verdict, err := s.screen(ctx, proposed)
	if err != nil {
		return nil, err
	}

	txn, err := s.commitWithRetry(ctx, req.ReferenceID, func(tx pgx.Tx) (*domain.Transaction, error) {
		locked, err := s.lockAccount(ctx, tx, req.AccountID)
		if err != nil {
			return nil, err
		}
		if err := checkSpendable(locked); err != nil {
			return nil, err
		}

		if _, err := s.accountRepo.ApplyDelta(ctx, tx, locked.ID, -req.Amount); err != nil {
			return nil, mapDeltaErr(err)
		}
		if err := s.accountRepo.AddTotals(ctx, tx, locked.ID, 0, req.Amount); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}

		return s.insertConfirmed(ctx, tx, locked.ID, nil, req.Amount, kind, req.Reason, req.ReferenceID)
	})
	s.recordFlags(ctx, verdict, txn)
	if err != nil {
		return nil, err
	}

	s.postCommit(ctx, txn)
	return txn, nil
}

// Transfer moves value between two accounts. The paired debit/credit is one
// atomic unit and is never observed half-applied.
func (s *LedgerServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*domain.Transaction, error) {
	if err := validateAmountReason(req.Amount, req.Reason); err != nil {
		return nil, err
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, apperror.ErrSelfTransfer()
	}

	if existing, err := s.replayByReference(ctx, req.ReferenceID); err != nil || existing != nil {
		return existing, err
	}

	source, err := s.loadAccount(ctx, req.FromAccountID)
	if err != nil {
		return nil, err
	}
	if err := checkSpendable(source); err != nil {
		return nil, err
	}
	dest, err := s.loadAccount(ctx, req.ToAccountID)
	if err != nil {
		return nil, err
	}

	proposed := ports.ProposedTransaction{
		Kind:        domain.KindTransfer,
		Amount:      req.Amount,
		ReferenceID: req.ReferenceID,
		Source:      source,
		Dest:        dest,
	}
	verdict, err := s.screen(ctx, proposed)
	if err != nil {
		return nil, err
	}

	txn, err := s.commitWithRetry(ctx, req.ReferenceID, func(tx pgx.Tx) (*domain.Transaction, error) {
		// Lock both rows in ascending UUID order so concurrent opposing
		// transfers cannot deadlock.
		first, second := orderedPair(req.FromAccountID, req.ToAccountID)
		lockedFirst, err := s.lockAccount(ctx, tx, first)
		if err != nil {
			return nil, err
		}
		lockedSecond, err := s.lockAccount(ctx, tx, second)
		if err != nil {
			return nil, err
		}

		lockedSource, lockedDest := lockedFirst, lockedSecond
		if lockedSource.ID != req.FromAccountID {
			lockedSource, lockedDest = lockedSecond, lockedFirst
		}

		if err := checkSpendable(lockedSource); err != nil {
			return nil, err
		}
		if lockedDest.IsBlacklisted {
			return nil, apperror.ErrWalletBlacklisted()
		}

		if _, err := s.accountRepo.ApplyDelta(ctx, tx, lockedSource.ID, -req.Amount); err != nil {
			return nil, mapDeltaErr(err)
		}
		if _, err := s.accountRepo.ApplyDelta(ctx, tx, lockedDest.ID, req.Amount); err != nil {
			return nil, mapDeltaErr(err)
		}

		return s.insertConfirmed(ctx, tx, lockedSource.ID, &lockedDest.ID, req.Amount, domain.KindTransfer, req.Reason, req.ReferenceID)
	})
	s.recordFlags(ctx, verdict, txn)
	if err != nil {
		return nil, err
	}

	s.postCommit(ctx, txn)
	return txn, nil
}

// RewardForEvent resolves the active reward rule for a caller-side event and
// mints the configured amount as a REWARD transaction.
func (s *LedgerServiceImpl) RewardForEvent(ctx context.Context, req ports.RewardRequest) (*domain.Transaction, error) {
	if req.EventType == "" {
		return nil, apperror.Validation("event_type is required")
	}

	rule, err := s.rewardRepo.GetActiveByEvent(ctx, req.EventType)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if rule == nil {
		return nil, apperror.ErrNotFound("Reward rule")
	}

	return s.Mint(ctx, ports.MintRequest{
		AccountID:   req.AccountID,
		Amount:      rule.RewardAmount,
		Kind:        domain.KindReward,
		Reason:      "reward: " + req.EventType,
		ReferenceID: req.ReferenceID,
	})
}

// OnChainConfirmed marks the transaction's account as synced with the anchor.
func (s *LedgerServiceImpl) OnChainConfirmed(ctx context.Context, transactionID uuid.UUID) error {
	txn, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if txn == nil {
		return apperror.ErrNotFound("Transaction")
	}

	if err := s.accountRepo.MarkSynced(ctx, txn.AccountID, time.Now().UTC()); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

// OnChainRejected reverses a confirmed transaction's balance delta with a new
// compensating REFUND transaction; the original row's amounts are never
// touched, only its status moves Confirmed -> Failed. Idempotent per
// original transaction.
func (s *LedgerServiceImpl) OnChainRejected(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error) {
	original, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if original == nil {
		return nil, apperror.ErrNotFound("Transaction")
	}
	if original.Status != domain.StatusConfirmed {
		return nil, apperror.ErrTransactionNotConfirmed()
	}

	reversalRef := chainReversalPrefix + original.ID.String()
	if existing, err := s.replayByReference(ctx, reversalRef); err != nil || existing != nil {
		return existing, err
	}

	txn, err := s.commitWithRetry(ctx, reversalRef, func(tx pgx.Tx) (*domain.Transaction, error) {
		if err := s.reverseDeltas(ctx, tx, original); err != nil {
			return nil, err
		}
		if err := s.txRepo.UpdateStatus(ctx, tx, original.ID, domain.StatusFailed); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}

		reason := fmt.Sprintf("compensation for chain-rejected transaction %s", original.ID)
		return s.insertConfirmed(ctx, tx, original.AccountID, original.CounterpartyAccountID, original.Amount, domain.KindRefund, reason, reversalRef)
	})
	if err != nil {
		return nil, err
	}

	s.log.Warn().
		Str("original_tx_id", original.ID.String()).
		Str("compensation_tx_id", txn.ID.String()).
		Msg("chain rejection compensated")

	return txn, nil
}

// reverseDeltas applies the inverse of the original transaction's balance
// and counter effects under row locks.
func (s *LedgerServiceImpl) reverseDeltas(ctx context.Context, tx pgx.Tx, original *domain.Transaction) error {
	switch original.Kind {
	case domain.KindMint, domain.KindReward:
		if _, err := s.lockAccount(ctx, tx, original.AccountID); err != nil {
			return err
		}
		if _, err := s.accountRepo.ApplyDelta(ctx, tx, original.AccountID, -original.Amount); err != nil {
			return mapDeltaErr(err)
		}
		return adaptDB(s.accountRepo.AddTotals(ctx, tx, original.AccountID, -original.Amount, 0))

	case domain.KindBurn, domain.KindPurchase:
		if _, err := s.lockAccount(ctx, tx, original.AccountID); err != nil {
			return err
		}
		if _, err := s.accountRepo.ApplyDelta(ctx, tx, original.AccountID, original.Amount); err != nil {
			return mapDeltaErr(err)
		}
		return adaptDB(s.accountRepo.AddTotals(ctx, tx, original.AccountID, 0, -original.Amount))

	case domain.KindTransfer:
		if original.CounterpartyAccountID == nil {
			return apperror.InternalError(fmt.Errorf("transfer %s has no counterparty", original.ID))
		}
		first, second := orderedPair(original.AccountID, *original.CounterpartyAccountID)
		if _, err := s.lockAccount(ctx, tx, first); err != nil {
			return err
		}
		if _, err := s.lockAccount(ctx, tx, second); err != nil {
			return err
		}
		if _, err := s.accountRepo.ApplyDelta(ctx, tx, *original.CounterpartyAccountID, -original.Amount); err != nil {
			return mapDeltaErr(err)
		}
		if _, err := s.accountRepo.ApplyDelta(ctx, tx, original.AccountID, original.Amount); err != nil {
			return mapDeltaErr(err)
		}
		return nil

	default:
		return apperror.InternalError(fmt.Errorf("cannot compensate transaction kind %s", original.Kind))
	}
}

// --- shared steps ---

// replayByReference resolves an idempotency key. Finding a prior transaction
// is not an error: the caller receives the original result unchanged.
func (s *LedgerServiceImpl) replayByReference(ctx context.Context, referenceID string) (*domain.Transaction, error) {
	if referenceID == "" {
		return nil, nil
	}

	key := idempotencyKey(referenceID)
	if s.idempCache != nil {
		cached, err := s.idempCache.Get(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
		}
		if cached != nil {
			return unmarshalTransaction(cached)
		}
	}

	existing, err := s.txRepo.GetByReference(ctx, referenceID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if existing != nil {
		s.log.Debug().Str("reference_id", referenceID).Msg("idempotent replay, returning prior transaction")
		return existing, nil
	}
	return nil, nil
}

// screen runs the fraud sentinel. Block verdicts persist their alerts
// immediately (a Block is never silent) and abort before any state change.
func (s *LedgerServiceImpl) screen(ctx context.Context, proposed ports.ProposedTransaction) (domain.Verdict, error) {
	verdict := s.sentinel.Evaluate(ctx, proposed)
	if verdict.Kind == domain.VerdictBlock {
		s.sentinel.PersistAlerts(ctx, verdict.Alerts, nil)
		blocking := verdict.Blocking()
		return verdict, apperror.ErrFraudBlocked(string(blocking.AlertType))
	}
	return verdict, nil
}

// recordFlags persists Flag alerts after the commit attempt, linked to the
// transaction when it exists.
func (s *LedgerServiceImpl) recordFlags(ctx context.Context, verdict domain.Verdict, txn *domain.Transaction) {
	if verdict.Kind != domain.VerdictFlag {
		return
	}
	var txID *uuid.UUID
	if txn != nil {
		txID = &txn.ID
	}
	s.sentinel.PersistAlerts(ctx, verdict.Alerts, txID)
}

// commitWithRetry runs fn inside a database transaction, retrying the whole
// unit on transient serialization conflicts with linear backoff. A duplicate
// reference raced in by a concurrent retry resolves to the winner's row.
func (s *LedgerServiceImpl) commitWithRetry(ctx context.Context, referenceID string, fn func(tx pgx.Tx) (*domain.Transaction, error)) (*domain.Transaction, error) {
	var lastErr error

	for attempt := 1; attempt <= commitAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("operation cancelled: %w", err))
		}

		txn, err := s.commitOnce(ctx, fn)
		if err == nil {
			return txn, nil
		}

		if errors.Is(err, ports.ErrDuplicate) && referenceID != "" {
			existing, lookupErr := s.txRepo.GetByReference(ctx, referenceID)
			if lookupErr == nil && existing != nil {
				return existing, nil
			}
		}

		if !errors.Is(err, ports.ErrSerialization) {
			return nil, err
		}

		lastErr = err
		s.log.Warn().Err(err).Int("attempt", attempt).Msg("storage conflict, retrying ledger commit")
		select {
		case <-time.After(time.Duration(attempt) * commitBackoff):
		case <-ctx.Done():
			return nil, apperror.InternalError(ctx.Err())
		}
	}

	return nil, apperror.ErrStorageConflict(lastErr)
}

// commitOnce runs one attempt of the atomic unit.
func (s *LedgerServiceImpl) commitOnce(ctx context.Context, fn func(tx pgx.Tx) (*domain.Transaction, error)) (*domain.Transaction, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	txn, err := fn(tx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		if isSerializationErr(err) {
			return nil, fmt.Errorf("commit: %w", ports.ErrSerialization)
		}
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return txn, nil
}

// insertConfirmed builds and persists the Confirmed transaction row inside
// the current atomic unit.
func (s *LedgerServiceImpl) insertConfirmed(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, counterparty *uuid.UUID, amount int64, kind domain.TransactionKind, reason, referenceID string) (*domain.Transaction, error) {
	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:                    uuid.New(),
		AccountID:             accountID,
		CounterpartyAccountID: counterparty,
		Amount:                amount,
		Kind:                  kind,
		Status:                domain.StatusConfirmed,
		Reason:                reason,
		CreatedAt:             now,
		ConfirmedAt:           &now,
	}
	if referenceID != "" {
		txn.ReferenceID = &referenceID
	}

	if err := s.txRepo.Create(ctx, tx, txn); err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return nil, err
		}
		return nil, apperror.ErrDatabaseError(err)
	}
	return txn, nil
}

// postCommit caches the idempotent response and hands the transaction to the
// chain anchor. Both are best-effort.
func (s *LedgerServiceImpl) postCommit(ctx context.Context, txn *domain.Transaction) {
	if s.idempCache != nil && txn.ReferenceID != nil {
		respJSON, err := json.Marshal(txn)
		if err == nil {
			if err := s.idempCache.Set(ctx, idempotencyKey(*txn.ReferenceID), respJSON, idempotencyTTL); err != nil {
				s.log.Warn().Err(err).Str("reference_id", *txn.ReferenceID).Msg("failed to cache idempotent response")
			}
		}
	}

	if s.anchor != nil {
		s.anchor.EnqueueSubmit(txn)
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("kind", string(txn.Kind)).
		Int64("amount", txn.Amount).
		Msg("ledger transaction confirmed")
}

func (s *LedgerServiceImpl) loadAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if account == nil {
		return nil, apperror.ErrNotFound("Account")
	}
	return account, nil
}

func (s *LedgerServiceImpl) lockAccount(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		if isSerializationErr(err) {
			return nil, fmt.Errorf("lock account: %w", ports.ErrSerialization)
		}
		return nil, apperror.ErrDatabaseError(err)
	}
	if account == nil {
		return nil, apperror.ErrNotFound("Account")
	}
	return account, nil
}

// --- helpers ---

func validateAmountReason(amount int64, reason string) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if len(reason) > maxReasonLength {
		return apperror.Validation("reason exceeds maximum length")
	}
	return nil
}

func checkSpendable(account *domain.Account) error {
	if account.IsBlacklisted {
		return apperror.ErrWalletBlacklisted()
	}
	if !account.IsActive {
		return apperror.ErrWalletInactive()
	}
	return nil
}

func mapDeltaErr(err error) error {
	if errors.Is(err, ports.ErrInsufficientBalance) {
		// Definite state, not a heuristic: no fraud alert for this path.
		return apperror.ErrInsufficientFunds()
	}
	if isSerializationErr(err) {
		return fmt.Errorf("apply delta: %w", ports.ErrSerialization)
	}
	return apperror.ErrDatabaseError(err)
}

func adaptDB(err error) error {
	if err == nil {
		return nil
	}
	return apperror.ErrDatabaseError(err)
}

func isSerializationErr(err error) bool {
	return errors.Is(err, ports.ErrSerialization)
}

// orderedPair returns the two ids in ascending byte order.
func orderedPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}

func idempotencyKey(referenceID string) string {
	return "ledger:ref:" + referenceID
}

func unmarshalTransaction(data []byte) (*domain.Transaction, error) {
	txn := &domain.Transaction{}
	if err := json.Unmarshal(data, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached tx: %w", err))
	}
	return txn, nil
}
