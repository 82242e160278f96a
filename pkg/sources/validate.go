package sources

import (
	"fmt"
	"strings"
)

// ValidationWarning represents a non-fatal data issue.
type ValidationWarning struct {
	ID      int64  // identifier of the entry
	Message string // description of the issue
}

// ValidateLabels checks taxonomy A. Duplicate identifiers are fatal,
// empty texts produce warnings.
func ValidateLabels(labels []LabelEntry) ([]ValidationWarning, error) {
	var warnings []ValidationWarning
	seen := make(map[int64]struct{}, len(labels))
	for _, v := range labels {
		if _, ok := seen[v.Identifier]; ok {
			return nil, fmt.Errorf("duplicate label identifier %d", v.Identifier)
		}
		seen[v.Identifier] = struct{}{}

		if strings.TrimSpace(v.Subscription) == "" {
			warnings = append(warnings, ValidationWarning{
				ID:      v.Identifier,
				Message: "label has empty text",
			})
		}
	}
	return warnings, nil
}

// ValidateSubscriptions checks taxonomy B. Duplicate identifiers are
// fatal, empty texts produce warnings. Group ids are checked during
// population, against stored labels.
func ValidateSubscriptions(
	subs []SubscriptionEntry,
) ([]ValidationWarning, error) {
	var warnings []ValidationWarning
	seen := make(map[int64]struct{}, len(subs))
	for _, v := range subs {
		if _, ok := seen[v.SubscriptionID]; ok {
			return nil, fmt.Errorf(
				"duplicate subscription identifier %d", v.SubscriptionID,
			)
		}
		seen[v.SubscriptionID] = struct{}{}

		if strings.TrimSpace(v.Subscription) == "" {
			warnings = append(warnings, ValidationWarning{
				ID:      v.SubscriptionID,
				Message: "subscription has empty text",
			})
		}
	}
	return warnings, nil
}
