package service

import (
	"context"
	"fmt"
	"time"

	"scrollcoin-ledger/config"
	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ruleResult is the outcome of a single sentinel rule. A nil alert means the
// rule passed.
type ruleResult struct {
	alert *domain.FraudAlert
	block bool
}

// sentinelRule inspects a proposed transaction plus recent history.
type sentinelRule struct {
	name string
	run  func(ctx context.Context, p ports.ProposedTransaction) (ruleResult, error)
}

// FraudSentinelService implements ports.FraudSentinel as a slice of
// independently evaluated rules combined by severity: any Block wins and all
// Flags are recorded.
type FraudSentinelService struct {
	txRepo    ports.TransactionRepository
	alertRepo ports.FraudAlertRepository
	audit     ports.AuditService
	cfg       config.FraudConfig
	rules     []sentinelRule
	log       zerolog.Logger
}

// NewFraudSentinelService creates a sentinel with the standard rule set.
func NewFraudSentinelService(txRepo ports.TransactionRepository, alertRepo ports.FraudAlertRepository, audit ports.AuditService, cfg config.FraudConfig, log zerolog.Logger) *FraudSentinelService {
	s := &FraudSentinelService{
		txRepo:    txRepo,
		alertRepo: alertRepo,
		audit:     audit,
		cfg:       cfg,
		log:       log,
	}
	s.rules = []sentinelRule{
		{name: "blacklisted_address", run: s.ruleBlacklistedAddress},
		{name: "daily_limit", run: s.ruleDailyLimit},
		{name: "suspicious_amount", run: s.ruleSuspiciousAmount},
		{name: "rapid_transactions", run: s.ruleRapidTransactions},
		{name: "duplicate_reward", run: s.ruleDuplicateReward},
	}
	return s
}

// Evaluate runs every rule under the evaluation deadline. A timeout or rule
// failure yields a Block verdict — data-starved fraud checks fail closed.
func (s *FraudSentinelService) Evaluate(ctx context.Context, p ports.ProposedTransaction) domain.Verdict {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.EvaluationTimeout)
	defer cancel()

	var blocking []domain.FraudAlert
	var flags []domain.FraudAlert

	for _, rule := range s.rules {
		if err := ctx.Err(); err != nil {
			return s.failClosed(p, fmt.Errorf("evaluation deadline exceeded before rule %s", rule.name))
		}

		res, err := rule.run(ctx, p)
		if err != nil {
			return s.failClosed(p, fmt.Errorf("rule %s: %w", rule.name, err))
		}
		if res.alert == nil {
			continue
		}
		if res.block {
			blocking = append(blocking, *res.alert)
		} else {
			flags = append(flags, *res.alert)
		}
	}

	if len(blocking) > 0 {
		return domain.Verdict{Kind: domain.VerdictBlock, Alerts: append(blocking, flags...)}
	}
	if len(flags) > 0 {
		return domain.Verdict{Kind: domain.VerdictFlag, Alerts: flags}
	}
	return domain.Verdict{Kind: domain.VerdictAllow}
}

// failClosed converts an evaluation failure into a Block verdict.
func (s *FraudSentinelService) failClosed(p ports.ProposedTransaction, err error) domain.Verdict {
	s.log.Error().Err(err).Str("kind", string(p.Kind)).Msg("fraud evaluation failed, blocking")
	alert := s.newAlert(p, domain.AlertUnusualPattern, domain.SeverityHigh,
		"fraud evaluation could not complete; transaction blocked")
	return domain.Verdict{Kind: domain.VerdictBlock, Alerts: []domain.FraudAlert{alert}}
}

// PersistAlerts writes the verdict's alerts. Blocks must never be silent, so
// persistence happens even when the transaction itself was aborted
// (transactionID nil in that case).
func (s *FraudSentinelService) PersistAlerts(ctx context.Context, alerts []domain.FraudAlert, transactionID *uuid.UUID) {
	for i := range alerts {
		alert := alerts[i]
		alert.TransactionID = transactionID
		if err := s.alertRepo.Create(ctx, &alert); err != nil {
			s.log.Error().Err(err).
				Str("alert_type", string(alert.AlertType)).
				Msg("failed to persist fraud alert")
		}
	}
}

// PendingAlerts lists unreviewed alerts for operators.
func (s *FraudSentinelService) PendingAlerts(ctx context.Context, page, pageSize int) ([]domain.FraudAlert, int64, error) {
	alerts, total, err := s.alertRepo.ListPending(ctx, page, pageSize)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(err)
	}
	return alerts, total, nil
}

// ReviewAlert records an operator decision. Requires an admin capability.
func (s *FraudSentinelService) ReviewAlert(ctx context.Context, cap ports.Capability, req ports.ReviewAlertRequest) (*domain.FraudAlert, error) {
	if !cap.Has(ports.ScopeAdmin) {
		return nil, apperror.ErrUnauthorized()
	}

	switch req.Decision {
	case domain.AlertInvestigating, domain.AlertResolved, domain.AlertFalsePositive, domain.AlertConfirmedFraud:
	default:
		return nil, apperror.Validation("invalid review decision")
	}

	alert, err := s.alertRepo.GetByID(ctx, req.AlertID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if alert == nil {
		return nil, apperror.ErrNotFound("Alert")
	}
	if alert.Status != domain.AlertPending && alert.Status != domain.AlertInvestigating {
		return nil, apperror.ErrAlertAlreadyReviewed()
	}

	now := time.Now().UTC()
	alert.Status = req.Decision
	alert.ReviewedBy = &cap.PrincipalID
	alert.ReviewedAt = &now
	if req.Notes != "" {
		alert.ReviewNotes = &req.Notes
	}

	if err := s.alertRepo.UpdateReview(ctx, alert); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	if s.audit != nil {
		s.audit.Log(ctx, &domain.AuditLog{
			ID:           uuid.New(),
			Action:       domain.AuditAlertReview,
			PrincipalID:  cap.PrincipalID,
			ResourceType: "fraud_alert",
			ResourceID:   alert.ID.String(),
			CreatedAt:    now,
		})
	}

	return alert, nil
}

// --- Rules ---

// ruleBlacklistedAddress blocks when either party is blacklisted.
func (s *FraudSentinelService) ruleBlacklistedAddress(_ context.Context, p ports.ProposedTransaction) (ruleResult, error) {
	var party *domain.Account
	switch {
	case p.Source != nil && p.Source.IsBlacklisted:
		party = p.Source
	case p.Dest != nil && p.Dest.IsBlacklisted:
		party = p.Dest
	default:
		return ruleResult{}, nil
	}

	alert := s.newAlert(p, domain.AlertBlacklistedAddress, domain.SeverityCritical,
		fmt.Sprintf("party %s is blacklisted", party.Address))
	alert.AccountID = &party.ID
	return ruleResult{alert: &alert, block: true}, nil
}

// ruleDailyLimit blocks transfers whose trailing-window outgoing sum plus the
// proposed amount exceeds the source's daily transfer limit.
func (s *FraudSentinelService) ruleDailyLimit(ctx context.Context, p ports.ProposedTransaction) (ruleResult, error) {
	if p.Kind != domain.KindTransfer || p.Source == nil || p.Source.DailyTransferLimit <= 0 {
		return ruleResult{}, nil
	}

	since := time.Now().UTC().Add(-s.cfg.DailyLimitWindow)
	sum, err := s.txRepo.SumOutgoingSince(ctx, p.Source.ID, since)
	if err != nil {
		return ruleResult{}, err
	}

	if sum+p.Amount > p.Source.DailyTransferLimit {
		alert := s.newAlert(p, domain.AlertDailyLimitExceeded, domain.SeverityHigh,
			fmt.Sprintf("outgoing %d + proposed %d exceeds daily limit %d", sum, p.Amount, p.Source.DailyTransferLimit))
		return ruleResult{alert: &alert, block: true}, nil
	}
	return ruleResult{}, nil
}

// ruleSuspiciousAmount flags amounts above the per-transaction cap or far
// outside the account's historical distribution.
func (s *FraudSentinelService) ruleSuspiciousAmount(ctx context.Context, p ports.ProposedTransaction) (ruleResult, error) {
	acting := s.actingAccount(p)
	if acting == nil {
		return ruleResult{}, nil
	}

	if acting.MaxTransactionAmount > 0 && p.Amount > acting.MaxTransactionAmount {
		alert := s.newAlert(p, domain.AlertSuspiciousAmount, domain.SeverityMedium,
			fmt.Sprintf("amount %d exceeds per-transaction cap %d", p.Amount, acting.MaxTransactionAmount))
		return ruleResult{alert: &alert}, nil
	}

	avg, stddev, n, err := s.txRepo.AmountStats(ctx, acting.ID, s.cfg.StatsSample)
	if err != nil {
		return ruleResult{}, err
	}
	if n < s.cfg.StatsMinSamples || stddev == 0 {
		return ruleResult{}, nil
	}

	if float64(p.Amount) > avg+s.cfg.StdDevFactor*stddev {
		alert := s.newAlert(p, domain.AlertSuspiciousAmount, domain.SeverityMedium,
			fmt.Sprintf("amount %d deviates more than %.1f standard deviations from history", p.Amount, s.cfg.StdDevFactor))
		return ruleResult{alert: &alert}, nil
	}
	return ruleResult{}, nil
}

// ruleRapidTransactions flags bursts and blocks sustained floods.
func (s *FraudSentinelService) ruleRapidTransactions(ctx context.Context, p ports.ProposedTransaction) (ruleResult, error) {
	acting := s.actingAccount(p)
	if acting == nil {
		return ruleResult{}, nil
	}

	since := time.Now().UTC().Add(-s.cfg.RapidWindow)
	count, err := s.txRepo.CountSince(ctx, acting.ID, since)
	if err != nil {
		return ruleResult{}, err
	}

	switch {
	case count+1 > s.cfg.RapidBlockCount:
		alert := s.newAlert(p, domain.AlertRapidTransactions, domain.SeverityHigh,
			fmt.Sprintf("%d transactions within %s", count+1, s.cfg.RapidWindow))
		return ruleResult{alert: &alert, block: true}, nil
	case count+1 > s.cfg.RapidFlagCount:
		alert := s.newAlert(p, domain.AlertRapidTransactions, domain.SeverityMedium,
			fmt.Sprintf("%d transactions within %s", count+1, s.cfg.RapidWindow))
		return ruleResult{alert: &alert}, nil
	}
	return ruleResult{}, nil
}

// ruleDuplicateReward blocks reward replays. The ledger enforces reference
// uniqueness independently; this rule is defense in depth.
func (s *FraudSentinelService) ruleDuplicateReward(ctx context.Context, p ports.ProposedTransaction) (ruleResult, error) {
	if p.Kind != domain.KindReward || p.ReferenceID == "" {
		return ruleResult{}, nil
	}

	existing, err := s.txRepo.GetByReference(ctx, p.ReferenceID)
	if err != nil {
		return ruleResult{}, err
	}
	if existing != nil && existing.Kind == domain.KindReward && existing.Status == domain.StatusConfirmed {
		alert := s.newAlert(p, domain.AlertDuplicateReward, domain.SeverityCritical,
			fmt.Sprintf("confirmed reward with reference %q already exists", p.ReferenceID))
		return ruleResult{alert: &alert, block: true}, nil
	}
	return ruleResult{}, nil
}

// actingAccount is the party whose history the heuristics inspect.
func (s *FraudSentinelService) actingAccount(p ports.ProposedTransaction) *domain.Account {
	if p.Source != nil {
		return p.Source
	}
	return p.Dest
}

func (s *FraudSentinelService) newAlert(p ports.ProposedTransaction, alertType domain.AlertType, severity domain.AlertSeverity, description string) domain.FraudAlert {
	alert := domain.FraudAlert{
		ID:          uuid.New(),
		AlertType:   alertType,
		Severity:    severity,
		Status:      domain.AlertPending,
		Description: description,
		DetectedAt:  time.Now().UTC(),
	}
	if acting := s.actingAccount(p); acting != nil {
		alert.AccountID = &acting.ID
	}
	return alert
}
