package schema

// PublicationSample is a publication together with the labels it matches.
type PublicationSample struct {
	PublicationID       int64               `json:"publication_id"`
	Publication         string              `json:"publication"`
	SubscriptionMatches []SubscriptionMatch `json:"subscription_matches"`
}

// SubscriptionMatch is an identifier and a text of a taxonomy entry.
// In samples it describes a matched Label, in subscription listings
// it describes a Subscription.
type SubscriptionMatch struct {
	SubscriptionID int64  `json:"subscription_id"`
	Subscription   string `json:"subscription"`
}
