package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertType categorizes what tripped a fraud rule.
type AlertType string

const (
	AlertSuspiciousAmount   AlertType = "SUSPICIOUS_AMOUNT"
	AlertRapidTransactions  AlertType = "RAPID_TRANSACTIONS"
	AlertUnusualPattern     AlertType = "UNUSUAL_PATTERN"
	AlertBlacklistedAddress AlertType = "BLACKLISTED_ADDRESS"
	AlertDuplicateReward    AlertType = "DUPLICATE_REWARD"
	AlertDailyLimitExceeded AlertType = "DAILY_LIMIT_EXCEEDED"
)

// AlertSeverity ranks how strongly a rule fired.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "LOW"
	SeverityMedium   AlertSeverity = "MEDIUM"
	SeverityHigh     AlertSeverity = "HIGH"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// AlertStatus is the operator-review lifecycle of an alert.
type AlertStatus string

const (
	AlertPending        AlertStatus = "PENDING"
	AlertInvestigating  AlertStatus = "INVESTIGATING"
	AlertResolved       AlertStatus = "RESOLVED"
	AlertFalsePositive  AlertStatus = "FALSE_POSITIVE"
	AlertConfirmedFraud AlertStatus = "CONFIRMED_FRAUD"
)

// FraudAlert records a Flag or Block verdict. Alerts are persisted even when
// the transaction they concern is aborted, so a Block is never silent.
type FraudAlert struct {
	ID            uuid.UUID     `json:"id"`
	AccountID     *uuid.UUID    `json:"account_id,omitempty"`
	TransactionID *uuid.UUID    `json:"transaction_id,omitempty"` // nil when the tx was never committed
	AlertType     AlertType     `json:"alert_type"`
	Severity      AlertSeverity `json:"severity"`
	Status        AlertStatus   `json:"status"`
	Description   string        `json:"description"`
	DetectedAt    time.Time     `json:"detected_at"`
	ReviewedBy    *uuid.UUID    `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time    `json:"reviewed_at,omitempty"`
	ReviewNotes   *string       `json:"review_notes,omitempty"`
}

// VerdictKind is the sentinel's decision for a proposed transaction.
type VerdictKind int

const (
	VerdictAllow VerdictKind = iota
	VerdictFlag
	VerdictBlock
)

// Verdict is the outcome of a fraud evaluation. Alerts carries one entry per
// rule that fired; for a Block the first alert is the blocking one.
type Verdict struct {
	Kind   VerdictKind
	Alerts []FraudAlert
}

// Blocking returns the alert responsible for a Block verdict.
func (v Verdict) Blocking() *FraudAlert {
	if v.Kind != VerdictBlock || len(v.Alerts) == 0 {
		return nil
	}
	return &v.Alerts[0]
}
