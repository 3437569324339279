package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput string
	}{
		{
			name:           "migrate command with help",
			args:           []string{"migrate", "--help"},
			expectedOutput: "Manage database migrations",
		},
		{
			name:           "migrate up subcommand",
			args:           []string{"migrate", "up", "--help"},
			expectedOutput: "Apply all pending database migrations",
		},
		{
			name:           "migrate down subcommand",
			args:           []string{"migrate", "down", "--help"},
			expectedOutput: "Rollback the last applied migration",
		},
		{
			name:           "migrate status subcommand",
			args:           []string{"migrate", "status", "--help"},
			expectedOutput: "Display the current status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, context.Background(), "", tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.expectedOutput)
		})
	}
}

func TestMigrateLifecycle(t *testing.T) {
	useTempDatabase(t)
	ctx := context.Background()

	out, err := execute(t, ctx, "", "migrate", "up", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run mode")

	out, err = execute(t, ctx, "", "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Current version: 0")

	out, err = execute(t, ctx, "", "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "Database is at version 1")

	out, err = execute(t, ctx, "n\n", "migrate", "down")
	require.NoError(t, err)
	assert.Contains(t, out, "Migration rollback cancelled")

	out, err = execute(t, ctx, "", "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Current version: 1")

	out, err = execute(t, ctx, "y\n", "migrate", "down")
	require.NoError(t, err)
	assert.Contains(t, out, "Database is at version 0")

	out, err = execute(t, ctx, "", "migrate", "up", "--steps", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Database is at version 1")

	out, err = execute(t, ctx, "", "migrate", "down", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Database is at version 0")
}

func TestMigrateDown_InvalidSteps(t *testing.T) {
	useTempDatabase(t)

	_, err := execute(t, context.Background(), "", "migrate", "down", "--steps", "0", "--yes")
	assert.Error(t, err)
}
