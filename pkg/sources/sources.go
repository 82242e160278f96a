// Package sources defines the external data that pubdb ingests.
//
// There are three sources:
//   - taxonomy A: original labels (identifier, subscription);
//   - taxonomy B: expanded subscriptions, each grouped under one label;
//   - dataset: publications with binary label vectors.
//
// Implementations that read files live in internal/iosources.
package sources

import "context"

// Sources gives access to all the data needed for a batch.
type Sources interface {
	LabelSource
	SubscriptionSource
	DatasetSource
}

// LabelSource provides taxonomy A.
type LabelSource interface {
	Labels(ctx context.Context) ([]LabelEntry, error)
}

// SubscriptionSource provides taxonomy B.
type SubscriptionSource interface {
	Subscriptions(ctx context.Context) ([]SubscriptionEntry, error)
}

// DatasetSource provides publications. When limit is positive, at most
// limit records are returned.
type DatasetSource interface {
	Publications(ctx context.Context, limit int) ([]PublicationRecord, error)
}

// GroupResolver maps a subscription to the label it belongs to.
type GroupResolver interface {
	// GroupID returns the label identifier of a subscription. The second
	// value is false if the subscription has no known group.
	GroupID(subscriptionID int64) (int64, bool)
}

// LabelEntry is an original taxonomy label.
type LabelEntry struct {
	// Identifier becomes labels.label_id. With binary label vectors it is
	// a power of two.
	Identifier int64 `yaml:"identifier"`

	// Subscription becomes labels.label.
	Subscription string `yaml:"subscription"`
}

// SubscriptionEntry is an expanded taxonomy entry.
type SubscriptionEntry struct {
	SubscriptionID int64  `yaml:"subscription_id"`
	Subscription   string `yaml:"subscription"`

	// GroupID is the identifier of the label of the subscription.
	// It is nil if the source does not provide it.
	GroupID *int64 `yaml:"group_id"`
}

// PublicationRecord is one entry of the dataset.
type PublicationRecord struct {
	// ID becomes publications.publication_id.
	ID int64

	// Text becomes publications.publication.
	Text string

	// Label is a vector of 0/1 flags. The last flag corresponds to
	// label 1, the one before it to label 2, and so on.
	Label []int
}
