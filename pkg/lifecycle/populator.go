package lifecycle

import (
	"context"

	"github.com/gnames/pubdb/pkg/config"
)

// Populator loads taxonomies and the dataset into the database as one
// batch. Either all the data is committed, or nothing is.
type Populator interface {
	// Populate runs the ingestion with sources and limits from cfg.
	Populate(ctx context.Context, cfg *config.Config) (Stats, error)
}

// Stats contains the number of rows inserted by a batch.
type Stats struct {
	Labels        int
	Subscriptions int
	Publications  int
	Matches       int
}
