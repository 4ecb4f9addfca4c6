package postgres

import (
	"context"
	"errors"
	"fmt"

	"scrollcoin-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const rewardColumns = `id, event_type, reward_amount, conditions, is_active, priority, created_at`

// RewardRuleRepo implements ports.RewardRuleRepository.
type RewardRuleRepo struct {
	pool Pool
}

// NewRewardRuleRepo creates a new RewardRuleRepo.
func NewRewardRuleRepo(pool Pool) *RewardRuleRepo {
	return &RewardRuleRepo{pool: pool}
}

// GetActiveByEvent returns the highest-priority active rule for the event,
// or nil when none matches.
func (r *RewardRuleRepo) GetActiveByEvent(ctx context.Context, eventType string) (*domain.RewardRule, error) {
	query := `SELECT ` + rewardColumns + ` FROM reward_rules
		WHERE event_type = $1 AND is_active = TRUE
		ORDER BY priority DESC LIMIT 1`

	rule := &domain.RewardRule{}
	err := r.pool.QueryRow(ctx, query, eventType).Scan(
		&rule.ID, &rule.EventType, &rule.RewardAmount, &rule.Conditions,
		&rule.IsActive, &rule.Priority, &rule.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reward rule by event: %w", err)
	}
	return rule, nil
}

// ListActive returns all active rules, highest priority first.
func (r *RewardRuleRepo) ListActive(ctx context.Context) ([]domain.RewardRule, error) {
	query := `SELECT ` + rewardColumns + ` FROM reward_rules
		WHERE is_active = TRUE ORDER BY priority DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reward rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.RewardRule
	for rows.Next() {
		rule := domain.RewardRule{}
		err := rows.Scan(
			&rule.ID, &rule.EventType, &rule.RewardAmount, &rule.Conditions,
			&rule.IsActive, &rule.Priority, &rule.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reward rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reward rules: %w", err)
	}
	return rules, nil
}
