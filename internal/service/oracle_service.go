package service

import (
	"context"
	"sync/atomic"
	"time"

	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// cachedRate pairs a rate with its load time so stale cache entries refresh
// from storage.
type cachedRate struct {
	rate     domain.ExchangeRate
	loadedAt time.Time
}

// RateOracleService implements ports.RateOracle. Reads go through a
// lock-free current-rate pointer, swapped atomically on CreateRate; the
// oracle is never consulted inside the ledger commit path.
type RateOracleService struct {
	repo     ports.ExchangeRateRepository
	audit    ports.AuditService
	current  atomic.Pointer[cachedRate]
	cacheTTL time.Duration
	// refExp is the reference currency's minor-unit exponent.
	refExp int32
	log    zerolog.Logger
}

// NewRateOracleService creates a new rate oracle.
func NewRateOracleService(repo ports.ExchangeRateRepository, audit ports.AuditService, cacheTTL time.Duration, referenceExponent int32, log zerolog.Logger) *RateOracleService {
	return &RateOracleService{
		repo:     repo,
		audit:    audit,
		cacheTTL: cacheTTL,
		refExp:   referenceExponent,
		log:      log,
	}
}

// CurrentRate returns the active rate whose validity window contains now.
func (s *RateOracleService) CurrentRate(ctx context.Context) (*domain.ExchangeRate, error) {
	now := time.Now().UTC()

	if c := s.current.Load(); c != nil && now.Sub(c.loadedAt) < s.cacheTTL && c.rate.ValidAt(now) {
		rate := c.rate
		return &rate, nil
	}

	rate, err := s.repo.GetActiveAt(ctx, now)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if rate == nil {
		return nil, apperror.ErrNoActiveRate()
	}

	s.current.Store(&cachedRate{rate: *rate, loadedAt: now})
	return rate, nil
}

// ToReference converts token minor units into the reference currency,
// rounded half-up to the reference exponent. Fixed-point throughout, no
// binary floating point.
func (s *RateOracleService) ToReference(ctx context.Context, amount int64) (decimal.Decimal, error) {
	rate, err := s.CurrentRate(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(amount).Mul(rate.RateToReference).Round(s.refExp), nil
}

// FromReference converts a reference-currency amount into token minor units,
// rounded half-up to a whole unit.
func (s *RateOracleService) FromReference(ctx context.Context, reference decimal.Decimal) (int64, error) {
	rate, err := s.CurrentRate(ctx)
	if err != nil {
		return 0, err
	}
	return reference.Mul(rate.RateFromReference).Round(0).IntPart(), nil
}

// CreateRate inserts a new rate. When the new rate is active the previously
// active one is retired in the same atomic step, then the current-rate
// pointer is swapped. Requires an admin capability.
func (s *RateOracleService) CreateRate(ctx context.Context, cap ports.Capability, req ports.CreateRateRequest) (*domain.ExchangeRate, error) {
	if !cap.Has(ports.ScopeAdmin) {
		return nil, apperror.ErrUnauthorized()
	}
	if !req.RateToReference.IsPositive() || !req.RateFromReference.IsPositive() {
		return nil, apperror.ErrInvalidRate()
	}

	effectiveFrom := req.EffectiveFrom
	if effectiveFrom.IsZero() {
		effectiveFrom = time.Now().UTC()
	}
	if req.EffectiveTo != nil && !req.EffectiveTo.After(effectiveFrom) {
		return nil, apperror.Validation("effective_to must be after effective_from")
	}

	rate := &domain.ExchangeRate{
		ID:                uuid.New(),
		RateToReference:   req.RateToReference,
		RateFromReference: req.RateFromReference,
		Source:            req.Source,
		IsActive:          req.IsActive,
		EffectiveFrom:     effectiveFrom,
		EffectiveTo:       req.EffectiveTo,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.repo.CreateAndActivate(ctx, rate); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	if rate.IsActive {
		s.current.Store(&cachedRate{rate: *rate, loadedAt: time.Now().UTC()})
	}

	if s.audit != nil {
		s.audit.Log(ctx, &domain.AuditLog{
			ID:           uuid.New(),
			Action:       domain.AuditRateCreate,
			PrincipalID:  cap.PrincipalID,
			ResourceType: "exchange_rate",
			ResourceID:   rate.ID.String(),
			CreatedAt:    time.Now().UTC(),
		})
	}

	s.log.Info().
		Str("rate_id", rate.ID.String()).
		Str("rate_to_reference", rate.RateToReference.String()).
		Bool("active", rate.IsActive).
		Msg("exchange rate created")

	return rate, nil
}
