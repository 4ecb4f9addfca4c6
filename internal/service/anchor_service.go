package service

import (
	"context"
	"sync"
	"time"

	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// anchorRetryIntervals spaces out resubmission attempts to the chain anchor.
var anchorRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// AnchorServiceImpl submits confirmed transactions to the external anchor
// asynchronously. Submission is best-effort: the local ledger is already
// authoritative, the anchor only tracks sync state.
type AnchorServiceImpl struct {
	anchor ports.ChainAnchor
	ledger ports.LedgerService
	log    zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAnchorService creates a new AnchorServiceImpl. The ledger reference is
// set after construction to break the ledger<->anchor cycle.
func NewAnchorService(anchor ports.ChainAnchor, log zerolog.Logger) *AnchorServiceImpl {
	ctx, cancel := context.WithCancel(context.Background())
	return &AnchorServiceImpl{anchor: anchor, log: log, ctx: ctx, cancel: cancel}
}

// BindLedger wires the confirmation/rejection callbacks. Must be called
// before the first EnqueueSubmit.
func (s *AnchorServiceImpl) BindLedger(ledger ports.LedgerService) {
	s.ledger = ledger
}

// EnqueueSubmit hands the transaction to the anchor in the background with
// spaced retries, then feeds the outcome back into the ledger.
func (s *AnchorServiceImpl) EnqueueSubmit(transaction *domain.Transaction) {
	if s.anchor == nil {
		return
	}
	txn := *transaction
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.submitWithRetries(&txn)
	}()
}

// Shutdown cancels in-flight submissions and waits for their goroutines to
// exit. Pending transactions stay unsynced; the anchor is best-effort.
func (s *AnchorServiceImpl) Shutdown() {
	s.cancel()
	s.wg.Wait()
}

func (s *AnchorServiceImpl) submitWithRetries(txn *domain.Transaction) {
	ctx := s.ctx

	for attempt := 0; attempt <= len(anchorRetryIntervals); attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(anchorRetryIntervals[attempt-1])
			select {
			case <-ctx.Done():
				timer.Stop()
				s.log.Warn().Str("tx_id", txn.ID.String()).Msg("anchor: shutdown before submission completed")
				return
			case <-timer.C:
			}
		}

		receipt, err := s.anchor.Submit(ctx, txn)
		if err == nil {
			s.log.Info().
				Str("tx_id", txn.ID.String()).
				Str("receipt", receipt).
				Int("attempt", attempt+1).
				Msg("anchor: transaction submitted")

			if s.ledger != nil {
				if cerr := s.ledger.OnChainConfirmed(ctx, txn.ID); cerr != nil {
					s.log.Warn().Err(cerr).Str("tx_id", txn.ID.String()).Msg("anchor: failed to mark account synced")
				}
			}
			return
		}

		if ports.IsAnchorRejection(err) {
			s.log.Warn().Err(err).Str("tx_id", txn.ID.String()).Msg("anchor: transaction rejected, compensating")
			if s.ledger != nil {
				if _, rerr := s.ledger.OnChainRejected(ctx, txn.ID); rerr != nil {
					s.log.Error().Err(rerr).Str("tx_id", txn.ID.String()).Msg("anchor: compensation failed")
				}
			}
			return
		}

		s.log.Warn().Err(err).Str("tx_id", txn.ID.String()).Int("attempt", attempt+1).Msg("anchor: submit failed, retrying")
	}

	s.log.Error().Str("tx_id", txn.ID.String()).Msg("anchor: all submit attempts exhausted")
}
