package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/killallgit/jamjot-api/internal/database"
	"github.com/killallgit/jamjot-api/pkg/config"
	"github.com/killallgit/jamjot-api/pkg/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jamjot-api",
	Short: "Jamjot API server",
	Long: `Jamjot API - notes and timestamps on catalog playlists and tracks

Playlists, tracks and their order live in the remote catalog. Jamjot keeps
only what users write about them, recording a playlist or track locally
the first time it is annotated.

Features:
  • Notes on playlists and on a track at a position in a playlist
  • Timestamped notes on intervals of a track
  • Lazy local records confirmed against the catalog on first write`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration and installs the logger. Commands call
// it lazily so that help and version work without a valid configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("initializing config: %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	applyLogFlags(cmd, &cfg.Logging)
	if _, err := logger.Setup(cfg.Logging); err != nil {
		return nil, fmt.Errorf("setting up logger: %w", err)
	}

	return cfg, nil
}

// applyLogFlags lets --log-level and --json-logs override the config file
func applyLogFlags(cmd *cobra.Command, cfg *config.LoggingConfig) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Level, _ = flags.GetString("log-level")
	}
	if jsonLogs, _ := flags.GetBool("json-logs"); jsonLogs {
		cfg.Format = "json"
	}
}

// openDatabase opens the configured database with its pool limits
func openDatabase(cfg *config.Config) (*database.DB, error) {
	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return nil, err
	}

	err = db.ConfigurePool(
		cfg.Database.MaxConnections,
		cfg.Database.MaxIdleConnections,
		cfg.Database.ConnectionMaxLifetime,
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Debug("database ready", "path", cfg.Database.Path)
	return db, nil
}
