package postgres

import (
	"context"

	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"
)

type auditRepo struct {
	pool Pool
}

// NewAuditRepository creates a PostgreSQL-backed AuditRepository.
func NewAuditRepository(pool Pool) ports.AuditRepository {
	return &auditRepo{pool: pool}
}

func (r *auditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (id, action, principal_id, resource_type, resource_id, detail, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, string(entry.Action), entry.PrincipalID, entry.ResourceType,
		entry.ResourceID, entry.Detail, entry.IPAddress, entry.CreatedAt,
	)
	return err
}
