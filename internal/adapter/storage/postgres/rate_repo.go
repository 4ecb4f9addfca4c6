package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scrollcoin-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const rateColumns = `id, rate_to_reference::text, rate_from_reference::text, source,
	is_active, effective_from, effective_to, created_at`

// ExchangeRateRepo implements ports.ExchangeRateRepository. Rates are stored
// as NUMERIC and scanned through text to keep decimal exactness.
type ExchangeRateRepo struct {
	pool Pool
}

// NewExchangeRateRepo creates a new ExchangeRateRepo.
func NewExchangeRateRepo(pool Pool) *ExchangeRateRepo {
	return &ExchangeRateRepo{pool: pool}
}

// CreateAndActivate inserts the rate and, when it is active, retires the
// previously active one in the same database transaction. Two active rates
// never coexist.
func (r *ExchangeRateRepo) CreateAndActivate(ctx context.Context, rate *domain.ExchangeRate) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin rate tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if rate.IsActive {
		if _, err := tx.Exec(ctx, `UPDATE exchange_rates SET is_active = FALSE WHERE is_active = TRUE`); err != nil {
			return fmt.Errorf("retire active rate: %w", err)
		}
	}

	query := `INSERT INTO exchange_rates (id, rate_to_reference, rate_from_reference, source,
		is_active, effective_from, effective_to, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = tx.Exec(ctx, query,
		rate.ID, rate.RateToReference.String(), rate.RateFromReference.String(), rate.Source,
		rate.IsActive, rate.EffectiveFrom, rate.EffectiveTo, rate.CreatedAt,
	)
	if err != nil {
		return translateErr(fmt.Errorf("insert exchange rate: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return translateErr(fmt.Errorf("commit rate tx: %w", err))
	}
	return nil
}

// GetActiveAt returns the active rate whose validity window contains the
// given instant, or nil when none does.
func (r *ExchangeRateRepo) GetActiveAt(ctx context.Context, at time.Time) (*domain.ExchangeRate, error) {
	query := `SELECT ` + rateColumns + ` FROM exchange_rates
		WHERE is_active = TRUE
		  AND effective_from <= $1
		  AND (effective_to IS NULL OR effective_to > $1)
		ORDER BY effective_from DESC LIMIT 1`

	return r.scanRate(r.pool.QueryRow(ctx, query, at))
}

// List pages through rates, newest first.
func (r *ExchangeRateRepo) List(ctx context.Context, page, pageSize int) ([]domain.ExchangeRate, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM exchange_rates`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count exchange rates: %w", err)
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + rateColumns + ` FROM exchange_rates
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list exchange rates: %w", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		rate, err := r.scanRateRow(rows)
		if err != nil {
			return nil, 0, err
		}
		rates = append(rates, *rate)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate rate rows: %w", err)
	}
	return rates, total, nil
}

func (r *ExchangeRateRepo) scanRate(row pgx.Row) (*domain.ExchangeRate, error) {
	rate, err := r.scanRateRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rate, nil
}

func (r *ExchangeRateRepo) scanRateRow(row pgx.Row) (*domain.ExchangeRate, error) {
	rate := &domain.ExchangeRate{}
	var toRef, fromRef string
	err := row.Scan(
		&rate.ID, &toRef, &fromRef, &rate.Source,
		&rate.IsActive, &rate.EffectiveFrom, &rate.EffectiveTo, &rate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan exchange rate: %w", err)
	}

	if rate.RateToReference, err = decimal.NewFromString(toRef); err != nil {
		return nil, fmt.Errorf("parse rate_to_reference: %w", err)
	}
	if rate.RateFromReference, err = decimal.NewFromString(fromRef); err != nil {
		return nil, fmt.Errorf("parse rate_from_reference: %w", err)
	}
	return rate, nil
}
