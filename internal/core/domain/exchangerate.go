package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRate converts between the token and the reference currency.
// At most one rate is active at any instant.
type ExchangeRate struct {
	ID                uuid.UUID       `json:"id"`
	RateToReference   decimal.Decimal `json:"rate_to_reference"`   // 1 token -> reference
	RateFromReference decimal.Decimal `json:"rate_from_reference"` // 1 reference -> tokens
	Source            string          `json:"source"`
	IsActive          bool            `json:"is_active"`
	EffectiveFrom     time.Time       `json:"effective_from"`
	EffectiveTo       *time.Time      `json:"effective_to,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ValidAt reports whether the rate's validity window contains t.
func (r *ExchangeRate) ValidAt(t time.Time) bool {
	if t.Before(r.EffectiveFrom) {
		return false
	}
	if r.EffectiveTo != nil && !t.Before(*r.EffectiveTo) {
		return false
	}
	return true
}
