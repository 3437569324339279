package cmd

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/jamjot-api/api/version"
)

func TestVersionCommand(t *testing.T) {
	info := version.Current()

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "version command shows build info",
			args:     []string{"version"},
			contains: []string{"Jamjot API", "Version:", "v" + info.Version, "Go:", info.Platform},
		},
		{
			name:     "version command with --short flag",
			args:     []string{"version", "--short"},
			contains: []string{"v" + info.Version + "\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, context.Background(), "", tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestVersionCommand_JSON(t *testing.T) {
	out, err := execute(t, context.Background(), "", "version", "--json")
	require.NoError(t, err)

	var got version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, version.Current(), got)
}

func TestVersionCommandFlags(t *testing.T) {
	versionCmd, _, err := NewRootCmd().Find([]string{"version"})
	require.NoError(t, err)
	assert.NotNil(t, versionCmd.Flags().Lookup("short"))
	assert.NotNil(t, versionCmd.Flags().Lookup("json"))
}
