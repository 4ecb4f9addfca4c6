package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentTransfers_MutualExclusion fires two concurrent transfers that
// together exceed the source balance. Exactly one may succeed; the loser fails
// with insufficient funds, never with a half-applied state.
func TestConcurrentTransfers_MutualExclusion(t *testing.T) {
	app := newTestApp(t)

	alice := app.createWallet(t)
	bob := app.createWallet(t)
	app.mint(t, alice.ID, 100, "seed-race")

	var wg sync.WaitGroup
	var successCount, insufficientCount atomic.Int64

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := fmt.Sprintf(`{"from_account_id":%q,"to_account_id":%q,"amount":60,"reference_id":"race-%d"}`,
				alice.ID, bob.ID, idx)
			status, _, code := app.do(t, "POST", "/api/v1/ledger/transfer", body, app.ledgerToken)

			switch status {
			case http.StatusCreated:
				successCount.Add(1)
			case http.StatusPaymentRequired:
				require.Equal(t, "LED_001", code)
				insufficientCount.Add(1)
			default:
				t.Errorf("unexpected status %d (%s)", status, code)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), successCount.Load())
	assert.Equal(t, int64(1), insufficientCount.Load())
	assert.Equal(t, int64(40), app.balance(t, alice.ID).Balance)
	assert.Equal(t, int64(60), app.balance(t, bob.ID).Balance)
}

// TestConcurrentTransfers_Conservation drains a wallet with 20 concurrent
// transfers of 10 against a balance of 100: exactly ten succeed and value is
// conserved to the unit.
func TestConcurrentTransfers_Conservation(t *testing.T) {
	app := newTestApp(t)

	source := app.createWallet(t)
	dest := app.createWallet(t)
	app.mint(t, source.ID, 100, "seed-drain")

	concurrency := 20
	var wg sync.WaitGroup
	var successCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := fmt.Sprintf(`{"from_account_id":%q,"to_account_id":%q,"amount":10,"reference_id":"drain-%d"}`,
				source.ID, dest.ID, idx)
			status, _, code := app.do(t, "POST", "/api/v1/ledger/transfer", body, app.ledgerToken)

			switch status {
			case http.StatusCreated:
				successCount.Add(1)
			case http.StatusPaymentRequired:
				// Expected once the balance is exhausted.
			default:
				t.Errorf("unexpected status %d (%s)", status, code)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(10), successCount.Load())

	sourceBalance := app.balance(t, source.ID)
	destBalance := app.balance(t, dest.ID)
	assert.Equal(t, int64(0), sourceBalance.Balance)
	assert.Equal(t, int64(100), destBalance.Balance)
	assert.Equal(t, int64(100), sourceBalance.Balance+destBalance.Balance)
}

// TestConcurrentMints_SameReference races identical idempotent mints; every
// caller receives the same transaction and supply grows exactly once.
func TestConcurrentMints_SameReference(t *testing.T) {
	app := newTestApp(t)
	wallet := app.createWallet(t)

	concurrency := 10
	var wg sync.WaitGroup
	ids := make([]string, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := fmt.Sprintf(`{"account_id":%q,"amount":500,"reference_id":"grant-race"}`, wallet.ID)
			status, data, code := app.do(t, "POST", "/api/v1/ledger/mint", body, app.ledgerToken)
			if status != http.StatusCreated {
				t.Errorf("unexpected status %d (%s)", status, code)
				return
			}
			var txn txResult
			if err := json.Unmarshal(data, &txn); err != nil {
				t.Errorf("decode: %v", err)
				return
			}
			ids[idx] = txn.ID
		}(i)
	}
	wg.Wait()

	for i := 1; i < concurrency; i++ {
		assert.Equal(t, ids[0], ids[i], "caller %d got a different transaction", i)
	}
	assert.Equal(t, int64(500), app.balance(t, wallet.ID).Balance)
	assert.Equal(t, int64(500), app.balance(t, wallet.ID).TotalMinted)
}
