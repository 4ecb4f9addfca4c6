package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, account_id, counterparty_account_id, amount, kind,
	status, reason, reference_id, created_at, confirmed_at`

// TransactionRepo implements ports.TransactionRepository. A partial unique
// index on reference_id (WHERE reference_id IS NOT NULL) is the authoritative
// idempotency check.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts a new transaction within a database transaction. A colliding
// non-null reference fails with ports.ErrDuplicate.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.AccountID, t.CounterpartyAccountID, t.Amount, t.Kind,
		t.Status, t.Reason, t.ReferenceID, t.CreatedAt, t.ConfirmedAt,
	)
	if err != nil {
		terr := translateErr(err)
		if errors.Is(terr, ports.ErrDuplicate) || errors.Is(terr, ports.ErrSerialization) {
			return terr
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a transaction by UUID.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return r.scanTransaction(r.pool.QueryRow(ctx, query, id))
}

// GetByReference resolves an idempotency key system-wide.
func (r *TransactionRepo) GetByReference(ctx context.Context, referenceID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference_id = $1`
	return r.scanTransaction(r.pool.QueryRow(ctx, query, referenceID))
}

// UpdateStatus moves a transaction to a new lifecycle state within a
// database transaction.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error {
	query := `UPDATE transactions SET status = $1 WHERE id = $2`

	tag, err := tx.Exec(ctx, query, status, id)
	if err != nil {
		return translateErr(fmt.Errorf("update transaction status: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

// List fetches transactions with filtering and pagination, newest first.
// Transfers into the account are matched through counterparty_account_id.
func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("(account_id = $%d OR counterparty_account_id = $%d)", argIdx, argIdx))
	args = append(args, params.AccountID)
	argIdx++

	if params.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", argIdx))
		args = append(args, *params.Kind)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= to_timestamp($%d)", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= to_timestamp($%d)", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM transactions %s", where)
	var total int64
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT `+transactionColumns+`
		FROM transactions %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t := domain.Transaction{}
		err := rows.Scan(
			&t.ID, &t.AccountID, &t.CounterpartyAccountID, &t.Amount, &t.Kind,
			&t.Status, &t.Reason, &t.ReferenceID, &t.CreatedAt, &t.ConfirmedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, total, nil
}

// CountSince counts the account's confirmed transactions in a recent window.
func (r *TransactionRepo) CountSince(ctx context.Context, accountID uuid.UUID, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM transactions
		WHERE account_id = $1 AND status = 'CONFIRMED' AND created_at >= $2`

	var count int64
	if err := r.pool.QueryRow(ctx, query, accountID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count transactions since: %w", err)
	}
	return count, nil
}

// SumOutgoingSince sums the account's confirmed outgoing transfers in a
// recent window. Feeds the daily-limit check.
func (r *TransactionRepo) SumOutgoingSince(ctx context.Context, accountID uuid.UUID, since time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE account_id = $1 AND kind = 'TRANSFER' AND status = 'CONFIRMED' AND created_at >= $2`

	var sum int64
	if err := r.pool.QueryRow(ctx, query, accountID, since).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum outgoing since: %w", err)
	}
	return sum, nil
}

// AmountStats returns mean and population standard deviation over the
// account's most recent confirmed amounts, capped at sample rows.
func (r *TransactionRepo) AmountStats(ctx context.Context, accountID uuid.UUID, sample int) (float64, float64, int64, error) {
	query := `SELECT COALESCE(AVG(amount), 0), COALESCE(STDDEV_POP(amount), 0), COUNT(*)
		FROM (
			SELECT amount FROM transactions
			WHERE account_id = $1 AND status = 'CONFIRMED'
			ORDER BY created_at DESC LIMIT $2
		) recent`

	var avg, stddev float64
	var n int64
	if err := r.pool.QueryRow(ctx, query, accountID, sample).Scan(&avg, &stddev, &n); err != nil {
		return 0, 0, 0, fmt.Errorf("transaction amount stats: %w", err)
	}
	return avg, stddev, n, nil
}

// scanTransaction is a helper to scan a single row into a Transaction.
func (r *TransactionRepo) scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.ID, &t.AccountID, &t.CounterpartyAccountID, &t.Amount, &t.Kind,
		&t.Status, &t.Reason, &t.ReferenceID, &t.CreatedAt, &t.ConfirmedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return t, nil
}
