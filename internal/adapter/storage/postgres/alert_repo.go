package postgres

import (
	"context"
	"errors"
	"fmt"

	"scrollcoin-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const alertColumns = `id, account_id, transaction_id, alert_type, severity,
	status, description, detected_at, reviewed_by, reviewed_at, review_notes`

// FraudAlertRepo implements ports.FraudAlertRepository.
type FraudAlertRepo struct {
	pool Pool
}

// NewFraudAlertRepo creates a new FraudAlertRepo.
func NewFraudAlertRepo(pool Pool) *FraudAlertRepo {
	return &FraudAlertRepo{pool: pool}
}

// Create inserts a fraud alert. Runs outside the ledger's atomic unit so
// alerts survive aborted transactions.
func (r *FraudAlertRepo) Create(ctx context.Context, a *domain.FraudAlert) error {
	query := `INSERT INTO fraud_alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.AccountID, a.TransactionID, a.AlertType, a.Severity,
		a.Status, a.Description, a.DetectedAt, a.ReviewedBy, a.ReviewedAt, a.ReviewNotes,
	)
	if err != nil {
		return fmt.Errorf("insert fraud alert: %w", err)
	}
	return nil
}

// GetByID fetches an alert by UUID.
func (r *FraudAlertRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FraudAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM fraud_alerts WHERE id = $1`
	return r.scanAlert(r.pool.QueryRow(ctx, query, id))
}

// ListPending pages through alerts awaiting review, oldest first.
func (r *FraudAlertRepo) ListPending(ctx context.Context, page, pageSize int) ([]domain.FraudAlert, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM fraud_alerts WHERE status = 'PENDING'`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count pending alerts: %w", err)
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + alertColumns + ` FROM fraud_alerts
		WHERE status = 'PENDING' ORDER BY detected_at ASC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list pending alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.FraudAlert
	for rows.Next() {
		a := domain.FraudAlert{}
		err := rows.Scan(
			&a.ID, &a.AccountID, &a.TransactionID, &a.AlertType, &a.Severity,
			&a.Status, &a.Description, &a.DetectedAt, &a.ReviewedBy, &a.ReviewedAt, &a.ReviewNotes,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan alert row: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate alert rows: %w", err)
	}
	return alerts, total, nil
}

// UpdateReview records an operator decision on an alert.
func (r *FraudAlertRepo) UpdateReview(ctx context.Context, a *domain.FraudAlert) error {
	query := `UPDATE fraud_alerts
		SET status = $1, reviewed_by = $2, reviewed_at = $3, review_notes = $4
		WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query, a.Status, a.ReviewedBy, a.ReviewedAt, a.ReviewNotes, a.ID)
	if err != nil {
		return fmt.Errorf("update alert review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("alert not found: %s", a.ID)
	}
	return nil
}

// scanAlert is a helper to scan a single row into a FraudAlert.
func (r *FraudAlertRepo) scanAlert(row pgx.Row) (*domain.FraudAlert, error) {
	a := &domain.FraudAlert{}
	err := row.Scan(
		&a.ID, &a.AccountID, &a.TransactionID, &a.AlertType, &a.Severity,
		&a.Status, &a.Description, &a.DetectedAt, &a.ReviewedBy, &a.ReviewedAt, &a.ReviewNotes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan fraud alert: %w", err)
	}
	return a, nil
}
