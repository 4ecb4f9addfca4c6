package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a balance-holding wallet. One account exists per owning
// principal; accounts are never deleted, only deactivated.
type Account struct {
	ID                   uuid.UUID  `json:"id"`
	OwnerID              uuid.UUID  `json:"owner_id"`
	Address              string     `json:"address"`
	PublicKey            string     `json:"public_key"`
	EncryptedPrivateKey  string     `json:"-"`       // AES-256-GCM sealed, plaintext only inside the custodian
	Balance              int64      `json:"balance"` // minor units, never negative
	TotalMinted          int64      `json:"total_minted"`
	TotalBurned          int64      `json:"total_burned"`
	IsActive             bool       `json:"is_active"`
	IsBlacklisted        bool       `json:"is_blacklisted"`
	IsWhitelisted        bool       `json:"is_whitelisted"`
	DailyTransferLimit   int64      `json:"daily_transfer_limit"`   // 0 = unlimited
	MaxTransactionAmount int64      `json:"max_transaction_amount"` // 0 = unlimited
	LastSyncedAt         *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// CanSpend reports whether the account may originate burns and transfers.
func (a *Account) CanSpend() bool {
	return a.IsActive && !a.IsBlacklisted
}
