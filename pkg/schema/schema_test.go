package schema_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gnames/pubdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLabelTableDDL tests DDL generation for Label model
func TestLabelTableDDL(t *testing.T) {
	l := schema.Label{}
	ddl := l.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS labels")
	assert.Contains(t, ddl, "label_id INTEGER PRIMARY KEY")
	assert.Contains(t, ddl, "label TEXT")
	assert.NotContains(t, ddl, "FOREIGN KEY")
}

// TestSubscriptionTableDDL tests DDL generation for Subscription model
func TestSubscriptionTableDDL(t *testing.T) {
	s := schema.Subscription{}
	ddl := s.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS subscriptions")
	assert.Contains(t, ddl, "subscription_id INTEGER PRIMARY KEY")
	assert.Contains(t, ddl, "label_id INTEGER,")
	assert.Contains(t, ddl, "subscription TEXT")
	assert.Contains(t, ddl,
		"FOREIGN KEY (label_id) REFERENCES labels(label_id)")

	// association fields have no db tags and stay out of the table
	assert.NotContains(t, ddl, "Group")
}

// TestPublicationTableDDL tests DDL generation for Publication model
func TestPublicationTableDDL(t *testing.T) {
	p := schema.Publication{}
	ddl := p.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS publications")
	assert.Contains(t, ddl, "publication_id INTEGER PRIMARY KEY")
	assert.Contains(t, ddl, "publication TEXT")
}

// TestPublicationMatchTableDDL tests DDL generation for the association
func TestPublicationMatchTableDDL(t *testing.T) {
	pm := schema.PublicationMatch{}
	ddl := pm.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS publication_matches")
	assert.Contains(t, ddl, "publication_id INTEGER,")
	assert.Contains(t, ddl, "label_id INTEGER,")
	assert.Contains(t, ddl,
		"FOREIGN KEY (publication_id) REFERENCES publications(publication_id)")
	assert.Contains(t, ddl,
		"FOREIGN KEY (label_id) REFERENCES labels(label_id)")
	assert.Contains(t, ddl, "UNIQUE (publication_id, label_id)")
	assert.True(t, strings.HasSuffix(ddl, "\n);"))
}

// TestAllModels checks that referenced tables are created first.
func TestAllModels(t *testing.T) {
	names := schema.TableNames()
	require.Len(t, names, 4)
	assert.Equal(t,
		[]string{"labels", "subscriptions", "publications", "publication_matches"},
		names,
	)
}

func TestPublicationSampleJSON(t *testing.T) {
	ps := schema.PublicationSample{
		PublicationID: 7,
		Publication:   "Café 🎉",
		SubscriptionMatches: []schema.SubscriptionMatch{
			{SubscriptionID: 4, Subscription: "music"},
		},
	}
	res, err := json.Marshal(ps)
	require.NoError(t, err)
	s := string(res)
	assert.Contains(t, s, `"publication_id":7`)
	assert.Contains(t, s, `"publication":"Café 🎉"`)
	assert.Contains(t, s,
		`"subscription_matches":[{"subscription_id":4,"subscription":"music"}]`)
}
