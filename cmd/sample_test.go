package cmd

import (
	"testing"

	"github.com/gnames/pubdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetSampleCmd_Flags verifies sample flags.
func TestGetSampleCmd_Flags(t *testing.T) {
	cmd := getSampleCmd()
	assert.Equal(t, "sample", cmd.Use)

	flag := cmd.Flags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)

	flag = cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
}

func TestSubscriptionsTable(t *testing.T) {
	subs := []schema.SubscriptionMatch{
		{SubscriptionID: 101, Subscription: "Algebra"},
		{SubscriptionID: 201, Subscription: "Optics"},
	}

	res, err := subscriptionsTable(subs)
	require.NoError(t, err)
	assert.Contains(t, res, "Subscription")
	assert.Contains(t, res, "101")
	assert.Contains(t, res, "Algebra")
	assert.Contains(t, res, "Optics")

	res, err = subscriptionsTable(nil)
	require.NoError(t, err)
	assert.Contains(t, res, "ID")
}
