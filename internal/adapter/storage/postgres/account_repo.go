package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, owner_id, address, public_key, encrypted_private_key,
	balance, total_minted, total_burned, is_active, is_blacklisted, is_whitelisted,
	daily_transfer_limit, max_transaction_amount, last_synced_at, created_at, updated_at`

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new account. One account per owner is enforced by a
// unique index on owner_id.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.OwnerID, a.Address, a.PublicKey, a.EncryptedPrivateKey,
		a.Balance, a.TotalMinted, a.TotalBurned, a.IsActive, a.IsBlacklisted, a.IsWhitelisted,
		a.DailyTransferLimit, a.MaxTransactionAmount, a.LastSyncedAt, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if terr := translateErr(err); errors.Is(terr, ports.ErrDuplicate) {
			return terr
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account by UUID (without locking).
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, id))
}

// GetByOwner fetches an account by its owning principal.
func (r *AccountRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE owner_id = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, ownerID))
}

// GetByAddress fetches an account by its derived address.
func (r *AccountRepo) GetByAddress(ctx context.Context, address string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE address = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, address))
}

// GetByIDForUpdate fetches an account with pessimistic row locking.
// This MUST be called within a transaction.
func (r *AccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`

	account, err := r.scanAccount(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateErr(err)
	}
	return account, nil
}

// ApplyDelta adjusts the balance by signedAmount. The WHERE clause keeps the
// balance non-negative at the storage layer regardless of caller checks; a
// debit past zero affects no row and returns ErrInsufficientBalance.
func (r *AccountRepo) ApplyDelta(ctx context.Context, tx pgx.Tx, id uuid.UUID, signedAmount int64) (int64, error) {
	query := `UPDATE accounts
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2 AND balance + $1 >= 0
		RETURNING balance`

	var newBalance int64
	err := tx.QueryRow(ctx, query, signedAmount, id).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ports.ErrInsufficientBalance
		}
		return 0, translateErr(fmt.Errorf("apply balance delta: %w", err))
	}
	return newBalance, nil
}

// AddTotals bumps the lifetime supply counters within a transaction.
func (r *AccountRepo) AddTotals(ctx context.Context, tx pgx.Tx, id uuid.UUID, minted, burned int64) error {
	query := `UPDATE accounts
		SET total_minted = total_minted + $1, total_burned = total_burned + $2, updated_at = NOW()
		WHERE id = $3`

	tag, err := tx.Exec(ctx, query, minted, burned, id)
	if err != nil {
		return translateErr(fmt.Errorf("update supply totals: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", id)
	}
	return nil
}

// SetSecurityFlags toggles blacklist/whitelist. Blacklisting forces
// is_active=false in the same statement so the two can never be observed
// apart.
func (r *AccountRepo) SetSecurityFlags(ctx context.Context, id uuid.UUID, blacklisted, whitelisted bool) (*domain.Account, error) {
	query := `UPDATE accounts
		SET is_blacklisted = $1,
		    is_whitelisted = $2,
		    is_active = CASE WHEN $1 THEN FALSE ELSE is_active END,
		    updated_at = NOW()
		WHERE id = $3
		RETURNING ` + accountColumns

	return r.scanAccount(r.pool.QueryRow(ctx, query, blacklisted, whitelisted, id))
}

// SetActive flips the lifecycle flag. Activating a blacklisted account is
// rejected by the WHERE clause.
func (r *AccountRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Account, error) {
	query := `UPDATE accounts
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2 AND NOT ($1 AND is_blacklisted)
		RETURNING ` + accountColumns

	return r.scanAccount(r.pool.QueryRow(ctx, query, active, id))
}

// MarkSynced records the last successful chain-anchor sync time.
func (r *AccountRepo) MarkSynced(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE accounts SET last_synced_at = $1 WHERE id = $2`

	if _, err := r.pool.Exec(ctx, query, at, id); err != nil {
		return fmt.Errorf("mark account synced: %w", err)
	}
	return nil
}

// scanAccount is a helper to scan a single row into an Account.
func (r *AccountRepo) scanAccount(row pgx.Row) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(
		&a.ID, &a.OwnerID, &a.Address, &a.PublicKey, &a.EncryptedPrivateKey,
		&a.Balance, &a.TotalMinted, &a.TotalBurned, &a.IsActive, &a.IsBlacklisted, &a.IsWhitelisted,
		&a.DailyTransferLimit, &a.MaxTransactionAmount, &a.LastSyncedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return a, nil
}
