package domain

import (
	"time"

	"github.com/google/uuid"
)

// RewardRule maps a caller-side event to a reward amount. Rules are read-only
// input to the ledger's reward operation; the ledger never mutates them.
type RewardRule struct {
	ID           uuid.UUID `json:"id"`
	EventType    string    `json:"event_type"`
	RewardAmount int64     `json:"reward_amount"`
	Conditions   *string   `json:"conditions,omitempty"` // opaque predicate description
	IsActive     bool      `json:"is_active"`
	Priority     int       `json:"priority"` // higher wins when several rules match
	CreatedAt    time.Time `json:"created_at"`
}
