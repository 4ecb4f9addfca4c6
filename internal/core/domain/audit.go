package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies a sensitive or administrative operation.
type AuditAction string

const (
	AuditKeyDecrypt   AuditAction = "KEY_DECRYPT"
	AuditKeyGenerate  AuditAction = "KEY_GENERATE"
	AuditAlertReview  AuditAction = "ALERT_REVIEW"
	AuditRateCreate   AuditAction = "RATE_CREATE"
	AuditFlagsChanged AuditAction = "SECURITY_FLAGS_CHANGED"
)

// AuditLog records who did what to which resource. Every successful key
// decrypt produces one of these.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Action       AuditAction `json:"action"`
	PrincipalID  uuid.UUID   `json:"principal_id"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id"`
	Detail       *string     `json:"detail,omitempty"`
	IPAddress    string      `json:"ip_address,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}
