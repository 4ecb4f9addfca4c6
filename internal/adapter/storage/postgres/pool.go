package postgres

import (
	"context"
	"errors"

	"scrollcoin-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Pool is the subset of pgxpool.Pool the repositories use. pgxmock satisfies
// it, which keeps the repositories unit-testable without a database.
type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// translateErr maps PostgreSQL error codes onto the ports sentinels so
// services never see SQLSTATEs.
func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return ports.ErrDuplicate
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return ports.ErrSerialization
		}
	}
	return err
}
