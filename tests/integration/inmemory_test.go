package integration

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// In-memory storage backing the integration stack. A single mutex in the
// transactor serializes atomic units the way row locks do in PostgreSQL;
// mutations registered on the open transaction are undone on rollback.

type memStore struct {
	mu         sync.RWMutex
	accounts   map[uuid.UUID]*domain.Account
	txns       []*domain.Transaction
	txnsByID   map[uuid.UUID]*domain.Transaction
	txnsByRef  map[string]*domain.Transaction
	alerts     map[uuid.UUID]*domain.FraudAlert
	alertOrder []uuid.UUID
	rates      []*domain.ExchangeRate
	rules      []domain.RewardRule
	audits     []*domain.AuditLog
}

func newMemStore() *memStore {
	return &memStore{
		accounts:  make(map[uuid.UUID]*domain.Account),
		txnsByID:  make(map[uuid.UUID]*domain.Transaction),
		txnsByRef: make(map[string]*domain.Transaction),
		alerts:    make(map[uuid.UUID]*domain.FraudAlert),
	}
}

func (s *memStore) addRewardRule(rule domain.RewardRule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rule)
}

func (s *memStore) setBlacklisted(id uuid.UUID, blacklisted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[id]; ok {
		a.IsBlacklisted = blacklisted
		if blacklisted {
			a.IsActive = false
		}
	}
}

func (s *memStore) setLimits(id uuid.UUID, daily, perTx int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[id]; ok {
		a.DailyTransferLimit = daily
		a.MaxTransactionAmount = perTx
	}
}

// --- transactor ---

type memTransactor struct {
	mu sync.Mutex
}

func (t *memTransactor) Begin(_ context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &memTx{owner: t}, nil
}

// memTx is a minimal pgx.Tx: only Commit and Rollback are reachable from the
// services. Repos register undo closures for every mutation they make.
type memTx struct {
	pgx.Tx
	owner *memTransactor
	undo  []func()
	done  bool
}

func (tx *memTx) onRollback(f func()) {
	tx.undo = append(tx.undo, f)
}

func (tx *memTx) Commit(_ context.Context) error {
	if tx.done {
		return pgx.ErrTxClosed
	}
	tx.done = true
	tx.undo = nil
	tx.owner.mu.Unlock()
	return nil
}

func (tx *memTx) Rollback(_ context.Context) error {
	if tx.done {
		return pgx.ErrTxClosed
	}
	tx.done = true
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
	tx.owner.mu.Unlock()
	return nil
}

func asMemTx(tx pgx.Tx) *memTx {
	return tx.(*memTx)
}

// --- account repository ---

type memAccountRepo struct {
	s *memStore
}

func (r *memAccountRepo) Create(_ context.Context, account *domain.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accounts {
		if a.OwnerID == account.OwnerID {
			return ports.ErrDuplicate
		}
	}
	cp := *account
	r.s.accounts[account.ID] = &cp
	return nil
}

func (r *memAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memAccountRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) (*domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.accounts {
		if a.OwnerID == ownerID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memAccountRepo) GetByAddress(_ context.Context, address string) (*domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.accounts {
		if a.Address == address {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memAccountRepo) GetByIDForUpdate(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	// The transactor's mutex already serializes whole atomic units, which is
	// stronger than a row lock.
	return r.GetByID(ctx, id)
}

func (r *memAccountRepo) ApplyDelta(_ context.Context, tx pgx.Tx, id uuid.UUID, signedAmount int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return 0, ports.ErrInsufficientBalance
	}
	if a.Balance+signedAmount < 0 {
		return 0, ports.ErrInsufficientBalance
	}
	a.Balance += signedAmount
	asMemTx(tx).onRollback(func() {
		r.s.mu.Lock()
		a.Balance -= signedAmount
		r.s.mu.Unlock()
	})
	return a.Balance, nil
}

func (r *memAccountRepo) AddTotals(_ context.Context, tx pgx.Tx, id uuid.UUID, minted, burned int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return ports.ErrDuplicate
	}
	a.TotalMinted += minted
	a.TotalBurned += burned
	asMemTx(tx).onRollback(func() {
		r.s.mu.Lock()
		a.TotalMinted -= minted
		a.TotalBurned -= burned
		r.s.mu.Unlock()
	})
	return nil
}

func (r *memAccountRepo) SetSecurityFlags(_ context.Context, id uuid.UUID, blacklisted, whitelisted bool) (*domain.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, nil
	}
	a.IsBlacklisted = blacklisted
	a.IsWhitelisted = whitelisted
	if blacklisted {
		a.IsActive = false
	}
	cp := *a
	return &cp, nil
}

func (r *memAccountRepo) SetActive(_ context.Context, id uuid.UUID, active bool) (*domain.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, nil
	}
	if active && a.IsBlacklisted {
		return nil, nil
	}
	a.IsActive = active
	cp := *a
	return &cp, nil
}

func (r *memAccountRepo) MarkSynced(_ context.Context, id uuid.UUID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a, ok := r.s.accounts[id]; ok {
		a.LastSyncedAt = &at
	}
	return nil
}

// --- transaction repository ---

type memTransactionRepo struct {
	s *memStore
}

func (r *memTransactionRepo) Create(_ context.Context, tx pgx.Tx, txn *domain.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if txn.ReferenceID != nil {
		if _, exists := r.s.txnsByRef[*txn.ReferenceID]; exists {
			return ports.ErrDuplicate
		}
	}
	cp := *txn
	r.s.txns = append(r.s.txns, &cp)
	r.s.txnsByID[cp.ID] = &cp
	if cp.ReferenceID != nil {
		r.s.txnsByRef[*cp.ReferenceID] = &cp
	}
	asMemTx(tx).onRollback(func() {
		r.s.mu.Lock()
		delete(r.s.txnsByID, cp.ID)
		if cp.ReferenceID != nil {
			delete(r.s.txnsByRef, *cp.ReferenceID)
		}
		for i, stored := range r.s.txns {
			if stored.ID == cp.ID {
				r.s.txns = append(r.s.txns[:i], r.s.txns[i+1:]...)
				break
			}
		}
		r.s.mu.Unlock()
	})
	return nil
}

func (r *memTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	txn, ok := r.s.txnsByID[id]
	if !ok {
		return nil, nil
	}
	cp := *txn
	return &cp, nil
}

func (r *memTransactionRepo) GetByReference(_ context.Context, referenceID string) (*domain.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	txn, ok := r.s.txnsByRef[referenceID]
	if !ok {
		return nil, nil
	}
	cp := *txn
	return &cp, nil
}

func (r *memTransactionRepo) UpdateStatus(_ context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	txn, ok := r.s.txnsByID[id]
	if !ok {
		return ports.ErrDuplicate
	}
	prev := txn.Status
	txn.Status = status
	asMemTx(tx).onRollback(func() {
		r.s.mu.Lock()
		txn.Status = prev
		r.s.mu.Unlock()
	})
	return nil
}

func (r *memTransactionRepo) List(_ context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []domain.Transaction
	for _, txn := range r.s.txns {
		if txn.AccountID != params.AccountID {
			continue
		}
		if params.Kind != nil && txn.Kind != *params.Kind {
			continue
		}
		if params.Status != nil && txn.Status != *params.Status {
			continue
		}
		if params.From != nil && txn.CreatedAt.Unix() < *params.From {
			continue
		}
		if params.To != nil && txn.CreatedAt.Unix() > *params.To {
			continue
		}
		matched = append(matched, *txn)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	offset := (params.Page - 1) * params.PageSize
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *memTransactionRepo) CountSince(_ context.Context, accountID uuid.UUID, since time.Time) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var count int64
	for _, txn := range r.s.txns {
		if txn.AccountID == accountID && txn.Status == domain.StatusConfirmed && !txn.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *memTransactionRepo) SumOutgoingSince(_ context.Context, accountID uuid.UUID, since time.Time) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var sum int64
	for _, txn := range r.s.txns {
		if txn.AccountID != accountID || txn.CreatedAt.Before(since) {
			continue
		}
		// Mirrors the SQL: only confirmed transfers feed the daily limit.
		if txn.Kind == domain.KindTransfer && txn.Status == domain.StatusConfirmed {
			sum += txn.Amount
		}
	}
	return sum, nil
}

func (r *memTransactionRepo) AmountStats(_ context.Context, accountID uuid.UUID, sample int) (float64, float64, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var amounts []float64
	for i := len(r.s.txns) - 1; i >= 0 && len(amounts) < sample; i-- {
		txn := r.s.txns[i]
		if txn.AccountID == accountID && txn.Status == domain.StatusConfirmed {
			amounts = append(amounts, float64(txn.Amount))
		}
	}

	n := int64(len(amounts))
	if n == 0 {
		return 0, 0, 0, nil
	}
	var total float64
	for _, a := range amounts {
		total += a
	}
	avg := total / float64(n)
	var sq float64
	for _, a := range amounts {
		sq += (a - avg) * (a - avg)
	}
	return avg, math.Sqrt(sq / float64(n)), n, nil
}

// --- fraud alert repository ---

type memAlertRepo struct {
	s *memStore
}

func (r *memAlertRepo) Create(_ context.Context, alert *domain.FraudAlert) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *alert
	r.s.alerts[cp.ID] = &cp
	r.s.alertOrder = append(r.s.alertOrder, cp.ID)
	return nil
}

func (r *memAlertRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.FraudAlert, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	alert, ok := r.s.alerts[id]
	if !ok {
		return nil, nil
	}
	cp := *alert
	return &cp, nil
}

func (r *memAlertRepo) ListPending(_ context.Context, page, pageSize int) ([]domain.FraudAlert, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var pending []domain.FraudAlert
	for _, id := range r.s.alertOrder {
		if alert := r.s.alerts[id]; alert.Status == domain.AlertPending {
			pending = append(pending, *alert)
		}
	}

	total := int64(len(pending))
	offset := (page - 1) * pageSize
	if offset >= len(pending) {
		return nil, total, nil
	}
	end := offset + pageSize
	if end > len(pending) {
		end = len(pending)
	}
	return pending[offset:end], total, nil
}

func (r *memAlertRepo) UpdateReview(_ context.Context, alert *domain.FraudAlert) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *alert
	r.s.alerts[cp.ID] = &cp
	return nil
}

// --- exchange rate repository ---

type memRateRepo struct {
	s *memStore
}

func (r *memRateRepo) CreateAndActivate(_ context.Context, rate *domain.ExchangeRate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rate.IsActive {
		for _, existing := range r.s.rates {
			existing.IsActive = false
		}
	}
	cp := *rate
	r.s.rates = append(r.s.rates, &cp)
	return nil
}

func (r *memRateRepo) GetActiveAt(_ context.Context, at time.Time) (*domain.ExchangeRate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := len(r.s.rates) - 1; i >= 0; i-- {
		rate := r.s.rates[i]
		if rate.IsActive && rate.ValidAt(at) {
			cp := *rate
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRateRepo) List(_ context.Context, page, pageSize int) ([]domain.ExchangeRate, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var all []domain.ExchangeRate
	for _, rate := range r.s.rates {
		all = append(all, *rate)
	}
	total := int64(len(all))
	offset := (page - 1) * pageSize
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// --- reward rule repository ---

type memRewardRepo struct {
	s *memStore
}

func (r *memRewardRepo) GetActiveByEvent(_ context.Context, eventType string) (*domain.RewardRule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var best *domain.RewardRule
	for i := range r.s.rules {
		rule := &r.s.rules[i]
		if !rule.IsActive || rule.EventType != eventType {
			continue
		}
		if best == nil || rule.Priority > best.Priority {
			best = rule
		}
	}
	if best == nil {
		return nil, nil
	}
	cp := *best
	return &cp, nil
}

func (r *memRewardRepo) ListActive(_ context.Context) ([]domain.RewardRule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var active []domain.RewardRule
	for _, rule := range r.s.rules {
		if rule.IsActive {
			active = append(active, rule)
		}
	}
	return active, nil
}

// --- audit repository ---

type memAuditRepo struct {
	s *memStore
}

func (r *memAuditRepo) Create(_ context.Context, entry *domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *entry
	r.s.audits = append(r.s.audits, &cp)
	return nil
}
