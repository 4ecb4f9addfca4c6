package ports

import "context"

// HealthChecker reports the liveness of one ledger dependency. The deep
// health endpoint pings each registered checker and degrades if any fail.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name identifies the dependency ("postgresql", "redis").
	Name() string
}
