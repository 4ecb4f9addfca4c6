// Package chain provides ChainAnchor clients. The real anchor is an external
// collaborator; only a no-op client ships here.
package chain

import (
	"context"
	"fmt"

	"scrollcoin-ledger/internal/core/domain"

	"github.com/rs/zerolog"
)

// NoopAnchor accepts every transaction immediately. It stands in for the
// external chain anchor in local and test deployments.
type NoopAnchor struct {
	log zerolog.Logger
}

// NewNoopAnchor creates a NoopAnchor.
func NewNoopAnchor(log zerolog.Logger) *NoopAnchor {
	return &NoopAnchor{log: log}
}

// Submit acknowledges the transaction with a synthetic receipt.
func (a *NoopAnchor) Submit(_ context.Context, transaction *domain.Transaction) (string, error) {
	receipt := fmt.Sprintf("noop-%s", transaction.ID)
	a.log.Debug().Str("tx_id", transaction.ID.String()).Msg("noop anchor accepted transaction")
	return receipt, nil
}
