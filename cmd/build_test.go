package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetBuildCmd_Exists verifies getBuildCmd returns
// a valid command.
func TestGetBuildCmd_Exists(t *testing.T) {
	cmd := getBuildCmd()
	require.NotNil(t, cmd, "Build command should exist")
	assert.Equal(t, "build", cmd.Use)
	assert.Equal(t, []string{"populate"}, cmd.Aliases)
	assert.Contains(t, cmd.Long, "one transaction")
}

// TestGetBuildCmd_Flags verifies flags, their short forms and defaults.
func TestGetBuildCmd_Flags(t *testing.T) {
	cmd := getBuildCmd()

	tests := []struct {
		name, short, def, usage string
	}{
		{"labels", "", "", "labels"},
		{"subscriptions", "", "", "subscriptions"},
		{"dataset", "", "", "publications"},
		{"publications-num", "n", "0", "maximum"},
		{"schema-out", "", "", "table definitions"},
	}

	for _, v := range tests {
		flag := cmd.Flags().Lookup(v.name)
		require.NotNil(t, flag, v.name)
		assert.Equal(t, v.short, flag.Shorthand, v.name)
		assert.Equal(t, v.def, flag.DefValue, v.name)
		assert.Contains(t, flag.Usage, v.usage, v.name)
	}
}
