package ports

import (
	"context"
	"errors"
	"time"

	"scrollcoin-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Capability scopes. Tokens are issued upstream; this subsystem only verifies.
const (
	ScopeLedger     = "ledger"
	ScopeAdmin      = "admin"
	ScopeKeyDecrypt = "key:decrypt"
)

// Capability is an already-verified caller identity plus granted scopes.
type Capability struct {
	PrincipalID uuid.UUID
	Scopes      []string
}

// Has reports whether the capability carries the given scope.
func (c Capability) Has(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// CapabilityService verifies (and, for tooling, issues) capability tokens.
type CapabilityService interface {
	// Verify checks the token signature and expiry and that it carries
	// the required scope.
	Verify(token string, requiredScope string) (*Capability, error)
	Issue(principalID uuid.UUID, scopes []string) (string, time.Time, error)
}

// --- Key custody ---

// KeyMaterial is the public output of key generation. The private key only
// ever leaves the custodian as ciphertext.
type KeyMaterial struct {
	Address             string
	PublicKey           string
	EncryptedPrivateKey string
}

// KeyCustodian generates account key material and controls decryption.
type KeyCustodian interface {
	GenerateKeyMaterial(ctx context.Context) (*KeyMaterial, error)
	// DecryptPrivateKey requires a capability token with ScopeKeyDecrypt.
	// Every successful call is recorded as a sensitive-access audit event.
	DecryptPrivateKey(ctx context.Context, encryptedPrivateKey string, authorization string) ([]byte, error)
}

// --- Ledger (capstone) ---

// MintRequest credits freshly created supply to an account.
type MintRequest struct {
	AccountID   uuid.UUID
	Amount      int64
	Kind        domain.TransactionKind // KindMint or KindReward
	Reason      string
	ReferenceID string // optional idempotency key
}

// BurnRequest destroys supply held by an account.
type BurnRequest struct {
	AccountID   uuid.UUID
	Amount      int64
	Kind        domain.TransactionKind // KindBurn or KindPurchase
	Reason      string
	ReferenceID string
}

// TransferRequest moves value between two accounts.
type TransferRequest struct {
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        int64
	Reason        string
	ReferenceID   string
}

// RewardRequest mints the configured reward for a caller-side event.
type RewardRequest struct {
	AccountID   uuid.UUID
	EventType   string
	ReferenceID string
}

// LedgerService is the transaction processor. Every operation is a single
// atomic unit: all internal steps take effect together or not at all.
type LedgerService interface {
	Mint(ctx context.Context, req MintRequest) (*domain.Transaction, error)
	Burn(ctx context.Context, req BurnRequest) (*domain.Transaction, error)
	Transfer(ctx context.Context, req TransferRequest) (*domain.Transaction, error)
	RewardForEvent(ctx context.Context, req RewardRequest) (*domain.Transaction, error)
	// OnChainConfirmed marks the account as synced with the anchor.
	OnChainConfirmed(ctx context.Context, transactionID uuid.UUID) error
	// OnChainRejected reverses the balance delta with a new compensating
	// transaction; the original row is never amount-mutated.
	OnChainRejected(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error)
}

// --- Fraud sentinel ---

// ProposedTransaction is the sentinel's view of an operation before commit.
// Source and Dest carry committed account state read by the ledger.
type ProposedTransaction struct {
	Kind        domain.TransactionKind
	Amount      int64
	ReferenceID string
	Source      *domain.Account // nil for mint/reward
	Dest        *domain.Account // nil unless transfer/mint
}

// FraudSentinel evaluates proposed transactions and manages alert review.
type FraudSentinel interface {
	// Evaluate returns the combined verdict of all rules: any Block wins,
	// all Flags are recorded. Evaluation failure or timeout yields Block
	// (fail closed). Alerts in the verdict are not yet persisted.
	Evaluate(ctx context.Context, proposed ProposedTransaction) domain.Verdict
	// PersistAlerts writes alerts, linking them to transactionID when the
	// transaction committed (nil when it was aborted).
	PersistAlerts(ctx context.Context, alerts []domain.FraudAlert, transactionID *uuid.UUID)
	PendingAlerts(ctx context.Context, page, pageSize int) ([]domain.FraudAlert, int64, error)
	ReviewAlert(ctx context.Context, cap Capability, req ReviewAlertRequest) (*domain.FraudAlert, error)
}

// ReviewAlertRequest records an operator decision on a pending alert.
type ReviewAlertRequest struct {
	AlertID  uuid.UUID
	Decision domain.AlertStatus // investigating/resolved/false_positive/confirmed_fraud
	Notes    string
}

// --- Rate oracle ---

// CreateRateRequest configures a new conversion rate.
type CreateRateRequest struct {
	RateToReference   decimal.Decimal
	RateFromReference decimal.Decimal
	Source            string
	IsActive          bool
	EffectiveFrom     time.Time
	EffectiveTo       *time.Time
}

// RateOracle converts between token minor units and the reference currency.
// Reads are lock-free; it is never consulted inside the ledger commit path.
type RateOracle interface {
	CurrentRate(ctx context.Context) (*domain.ExchangeRate, error)
	ToReference(ctx context.Context, amount int64) (decimal.Decimal, error)
	FromReference(ctx context.Context, reference decimal.Decimal) (int64, error)
	CreateRate(ctx context.Context, cap Capability, req CreateRateRequest) (*domain.ExchangeRate, error)
}

// --- Wallet management ---

// SecurityFlagsRequest toggles an account's security flags.
type SecurityFlagsRequest struct {
	AccountID   uuid.UUID
	Blacklisted bool
	Whitelisted bool
}

// WalletService owns account lifecycle outside of balance mutation.
type WalletService interface {
	Create(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error)
	SetSecurityFlags(ctx context.Context, cap Capability, req SecurityFlagsRequest) (*domain.Account, error)
	SetActive(ctx context.Context, cap Capability, accountID uuid.UUID, active bool) (*domain.Account, error)
}

// --- Reporting ---

// BalanceReport is the read-side view of an account's position.
type BalanceReport struct {
	AccountID   uuid.UUID       `json:"account_id"`
	Balance     int64           `json:"balance"`
	TotalMinted int64           `json:"total_minted"`
	TotalBurned int64           `json:"total_burned"`
	InReference decimal.Decimal `json:"in_reference"`
	RateSource  string          `json:"rate_source,omitempty"`
}

// ReportingService serves balance and history queries.
type ReportingService interface {
	GetBalance(ctx context.Context, accountID uuid.UUID) (*BalanceReport, error)
	GetHistory(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
}

// --- Chain anchor (external collaborator) ---

// ErrAnchorRejected means the anchor refused the transaction permanently.
// Retrying will not help; the ledger must compensate.
var ErrAnchorRejected = errors.New("anchor rejected transaction")

// IsAnchorRejection reports whether an anchor submit error is a permanent
// rejection rather than a transient failure.
func IsAnchorRejection(err error) bool {
	return errors.Is(err, ErrAnchorRejected)
}

// ChainAnchor is the external system of record. No production implementation
// exists; a no-op client ships for local operation.
type ChainAnchor interface {
	Submit(ctx context.Context, transaction *domain.Transaction) (receipt string, err error)
}

// AnchorService submits confirmed transactions asynchronously and feeds
// confirmation/rejection callbacks into the ledger.
type AnchorService interface {
	EnqueueSubmit(transaction *domain.Transaction)
}

// --- Audit ---

// AuditService records sensitive-access events (fire-and-forget).
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
