package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/jamjot-api/pkg/config"
)

// execute runs the root command with fresh flag values and a context on
// every subcommand, returning combined output.
func execute(t *testing.T, ctx context.Context, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	resetCommand(root, ctx)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func resetCommand(c *cobra.Command, ctx context.Context) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	c.SetContext(ctx)
	for _, sub := range c.Commands() {
		resetCommand(sub, ctx)
	}
}

// useTempDatabase points the configuration at a fresh database file
func useTempDatabase(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jamjot.db")
	t.Setenv("JAMJOT_DATABASE_PATH", path)
	t.Setenv("JAMJOT_AUTH_JWT_SECRET", "cmd-test-secret")
	t.Setenv("JAMJOT_LOGGING_LEVEL", "error")
	return path
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "root command without args shows help",
			args:           []string{},
			expectedOutput: "Jamjot API",
		},
		{
			name:           "root command with --help",
			args:           []string{"--help"},
			expectedOutput: "Available Commands:",
		},
		{
			name:    "root command with invalid flag",
			args:    []string{"--invalid-flag"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, context.Background(), "", tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.expectedOutput)
		})
	}
}

func TestLogFlags(t *testing.T) {
	cmd := NewRootCmd()

	logFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logFlag)
	assert.Equal(t, "info", logFlag.DefValue)

	assert.NotNil(t, cmd.PersistentFlags().Lookup("json-logs"))
}

func TestApplyLogFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected config.LoggingConfig
	}{
		{
			name:     "no flags keep config",
			args:     []string{},
			expected: config.LoggingConfig{Level: "warn", Format: "text"},
		},
		{
			name:     "log level overrides",
			args:     []string{"--log-level", "debug"},
			expected: config.LoggingConfig{Level: "debug", Format: "text"},
		},
		{
			name:     "json logs",
			args:     []string{"--json-logs"},
			expected: config.LoggingConfig{Level: "warn", Format: "json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "test"}
			cmd.Flags().String("log-level", "info", "")
			cmd.Flags().Bool("json-logs", false, "")
			require.NoError(t, cmd.ParseFlags(tt.args))

			cfg := config.LoggingConfig{Level: "warn", Format: "text"}
			applyLogFlags(cmd, &cfg)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestOpenDatabase(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Path:           filepath.Join(t.TempDir(), "nested", "jamjot.db"),
		MaxConnections: 4,
	}}

	db, err := openDatabase(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
}
