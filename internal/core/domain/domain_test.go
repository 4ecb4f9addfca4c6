package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_CanSpend(t *testing.T) {
	tests := []struct {
		name        string
		active      bool
		blacklisted bool
		want        bool
	}{
		{"active and clean", true, false, true},
		{"inactive", false, false, false},
		{"blacklisted", true, true, false},
		{"inactive and blacklisted", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Account{IsActive: tt.active, IsBlacklisted: tt.blacklisted}
			assert.Equal(t, tt.want, a.CanSpend())
		})
	}
}

func TestTransactionKind_CreditsAndDebits(t *testing.T) {
	assert.True(t, KindMint.Credits())
	assert.True(t, KindReward.Credits())
	assert.False(t, KindBurn.Credits())
	assert.False(t, KindTransfer.Credits())

	assert.True(t, KindBurn.Debits())
	assert.True(t, KindPurchase.Debits())
	assert.False(t, KindMint.Debits())
	assert.False(t, KindRefund.Debits())
}

func TestTransaction_IsTerminal(t *testing.T) {
	for _, status := range []TransactionStatus{StatusConfirmed, StatusFailed, StatusCancelled} {
		txn := &Transaction{Status: status}
		assert.True(t, txn.IsTerminal(), "status %s", status)
	}

	pending := &Transaction{Status: StatusPending}
	assert.False(t, pending.IsTerminal())
}

func TestTransaction_Ref(t *testing.T) {
	ref := "mint-001"
	withRef := &Transaction{ReferenceID: &ref}
	assert.Equal(t, "mint-001", withRef.Ref())

	withoutRef := &Transaction{}
	assert.Equal(t, "", withoutRef.Ref())
}

func TestExchangeRate_ValidAt(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	openEnded := &ExchangeRate{EffectiveFrom: from}
	assert.False(t, openEnded.ValidAt(from.Add(-time.Second)))
	assert.True(t, openEnded.ValidAt(from))
	assert.True(t, openEnded.ValidAt(from.AddDate(10, 0, 0)))

	windowed := &ExchangeRate{EffectiveFrom: from, EffectiveTo: &to}
	assert.True(t, windowed.ValidAt(from))
	assert.True(t, windowed.ValidAt(to.Add(-time.Second)))
	// The window is half-open; the end instant is excluded.
	assert.False(t, windowed.ValidAt(to))
	assert.False(t, windowed.ValidAt(to.Add(time.Hour)))
}

func TestVerdict_Blocking(t *testing.T) {
	blocking := FraudAlert{ID: uuid.New(), AlertType: AlertBlacklistedAddress, Severity: SeverityCritical}
	flag := FraudAlert{ID: uuid.New(), AlertType: AlertSuspiciousAmount, Severity: SeverityMedium}

	block := Verdict{Kind: VerdictBlock, Alerts: []FraudAlert{blocking, flag}}
	got := block.Blocking()
	require.NotNil(t, got)
	assert.Equal(t, blocking.ID, got.ID)

	assert.Nil(t, Verdict{Kind: VerdictAllow}.Blocking())
	assert.Nil(t, Verdict{Kind: VerdictFlag, Alerts: []FraudAlert{flag}}.Blocking())
	assert.Nil(t, Verdict{Kind: VerdictBlock}.Blocking())
}
