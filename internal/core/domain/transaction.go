package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind represents the kind of value movement.
type TransactionKind string

const (
	KindMint     TransactionKind = "MINT"
	KindBurn     TransactionKind = "BURN"
	KindTransfer TransactionKind = "TRANSFER"
	KindReward   TransactionKind = "REWARD"
	KindPurchase TransactionKind = "PURCHASE"
	KindRefund   TransactionKind = "REFUND" // chain-reject compensation
)

// Credits reports whether the kind increases the primary account's balance
// with newly created supply.
func (k TransactionKind) Credits() bool {
	return k == KindMint || k == KindReward
}

// Debits reports whether the kind destroys supply from the primary account.
func (k TransactionKind) Debits() bool {
	return k == KindBurn || k == KindPurchase
}

// TransactionStatus represents the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusConfirmed TransactionStatus = "CONFIRMED"
	StatusFailed    TransactionStatus = "FAILED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// Transaction is an immutable ledger entry. The row is inserted as CONFIRMED
// in the same atomic unit as the balance mutation, so balance and history are
// never observed out of sync.
type Transaction struct {
	ID                    uuid.UUID         `json:"id"`
	AccountID             uuid.UUID         `json:"account_id"`
	CounterpartyAccountID *uuid.UUID        `json:"counterparty_account_id,omitempty"` // transfers only
	Amount                int64             `json:"amount"` // always positive
	Kind                  TransactionKind   `json:"kind"`
	Status                TransactionStatus `json:"status"`
	Reason                string            `json:"reason"`
	ReferenceID           *string           `json:"reference_id,omitempty"` // idempotency key, unique when present
	CreatedAt             time.Time         `json:"created_at"`
	ConfirmedAt           *time.Time        `json:"confirmed_at,omitempty"`
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == StatusConfirmed ||
		t.Status == StatusFailed ||
		t.Status == StatusCancelled
}

// Ref returns the idempotency key or the empty string.
func (t *Transaction) Ref() string {
	if t.ReferenceID == nil {
		return ""
	}
	return *t.ReferenceID
}
