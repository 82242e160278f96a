package lifecycle

import (
	"context"

	"github.com/gnames/pubdb/pkg/schema"
)

// Sampler reads a populated database.
type Sampler interface {
	// Sample returns up to limit distinct publications chosen uniformly at
	// random, each with its matched labels. A non-nil error means the
	// query failed, an empty result with nil error means there are no
	// rows.
	Sample(ctx context.Context, limit int) ([]schema.PublicationSample, error)

	// Subscriptions returns all subscriptions in storage order.
	Subscriptions(ctx context.Context) ([]schema.SubscriptionMatch, error)
}
