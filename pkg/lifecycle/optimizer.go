package lifecycle

import "context"

// Optimizer prepares a built database for reading.
type Optimizer interface {
	// Optimize adds secondary indexes and refreshes planner statistics.
	// It can be repeated, indexes that exist already are kept.
	Optimize(ctx context.Context) error
}
