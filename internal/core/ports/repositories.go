package ports

import (
	"context"
	"errors"
	"time"

	"scrollcoin-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Sentinel errors returned by repositories. Services translate these into
// the apperror taxonomy; repositories never import apperror.
var (
	// ErrInsufficientBalance means a delta would drive a balance negative.
	// The enclosing transaction must be rolled back.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrDuplicate maps a storage uniqueness violation (owner_id,
	// reference_id, single-active-rate).
	ErrDuplicate = errors.New("duplicate row")
	// ErrSerialization maps transient commit conflicts (SQLSTATE 40001,
	// 40P01). The whole operation is safe to retry.
	ErrSerialization = errors.New("serialization conflict")
)

// AccountRepository defines persistence operations for accounts.
// Methods accepting pgx.Tx run inside the ledger's atomic unit and rely on
// row locking; balance mutation is only reachable through ApplyDelta.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error)
	GetByAddress(ctx context.Context, address string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	// ApplyDelta adjusts the balance by signedAmount and returns the new
	// balance. Fails with ErrInsufficientBalance when the result would be
	// negative, leaving the row untouched.
	ApplyDelta(ctx context.Context, tx pgx.Tx, id uuid.UUID, signedAmount int64) (int64, error)
	// AddTotals bumps the supply counters inside the same atomic unit.
	AddTotals(ctx context.Context, tx pgx.Tx, id uuid.UUID, minted, burned int64) error
	// SetSecurityFlags toggles blacklist/whitelist. Setting the blacklist
	// also forces is_active=false in the same statement.
	SetSecurityFlags(ctx context.Context, id uuid.UUID, blacklisted, whitelisted bool) (*domain.Account, error)
	// SetActive flips the lifecycle flag. Activation of a blacklisted
	// account is rejected at the storage layer.
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Account, error)
	MarkSynced(ctx context.Context, id uuid.UUID, at time.Time) error
}

// TransactionRepository defines persistence operations for ledger entries.
type TransactionRepository interface {
	// Create inserts a transaction row. A non-null reference colliding with
	// an existing row fails with ErrDuplicate.
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	// GetByReference resolves an idempotency key system-wide.
	GetByReference(ctx context.Context, referenceID string) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error
	List(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	// History lookups feeding the fraud sentinel. These may read slightly
	// stale committed data.
	CountSince(ctx context.Context, accountID uuid.UUID, since time.Time) (int64, error)
	SumOutgoingSince(ctx context.Context, accountID uuid.UUID, since time.Time) (int64, error)
	// AmountStats returns mean and population standard deviation of the
	// account's most recent confirmed amounts, capped at sample rows.
	AmountStats(ctx context.Context, accountID uuid.UUID, sample int) (avg, stddev float64, n int64, err error)
}

// TransactionListParams holds filter + pagination for listing transactions.
type TransactionListParams struct {
	AccountID uuid.UUID
	Kind      *domain.TransactionKind
	Status    *domain.TransactionStatus
	From      *int64 // Unix timestamp
	To        *int64 // Unix timestamp
	Page      int
	PageSize  int
}

// FraudAlertRepository defines persistence for fraud alerts.
type FraudAlertRepository interface {
	Create(ctx context.Context, alert *domain.FraudAlert) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FraudAlert, error)
	ListPending(ctx context.Context, page, pageSize int) ([]domain.FraudAlert, int64, error)
	UpdateReview(ctx context.Context, alert *domain.FraudAlert) error
}

// ExchangeRateRepository defines persistence for conversion rates.
type ExchangeRateRepository interface {
	// CreateAndActivate inserts the rate and, when it is active, retires
	// the previously active rate in the same database transaction so two
	// active rates never coexist.
	CreateAndActivate(ctx context.Context, rate *domain.ExchangeRate) error
	GetActiveAt(ctx context.Context, at time.Time) (*domain.ExchangeRate, error)
	List(ctx context.Context, page, pageSize int) ([]domain.ExchangeRate, int64, error)
}

// RewardRuleRepository reads reward configuration. The ledger never writes it.
type RewardRuleRepository interface {
	// GetActiveByEvent returns the highest-priority active rule for the
	// event, or nil when none matches.
	GetActiveByEvent(ctx context.Context, eventType string) (*domain.RewardRule, error)
	ListActive(ctx context.Context) ([]domain.RewardRule, error)
}

// AuditRepository persists sensitive-access records.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// IdempotencyCache is the Redis-layer idempotent-response check (fast path).
// The authoritative check is the unique reference on the transactions table.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
