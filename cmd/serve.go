package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/killallgit/jamjot-api/api"
	"github.com/killallgit/jamjot-api/api/types"
	"github.com/killallgit/jamjot-api/internal/database"
	"github.com/killallgit/jamjot-api/internal/services/annotations"
	"github.com/killallgit/jamjot-api/internal/services/auth"
	"github.com/killallgit/jamjot-api/internal/services/catalog"
	"github.com/killallgit/jamjot-api/internal/services/users"
	"github.com/killallgit/jamjot-api/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Jamjot API server with the configured settings.

Pending migrations are applied first unless database.migrate_on_start
is false.

Example:
  jamjot-api serve
  jamjot-api serve --port 9090
  jamjot-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "server host (overrides config)")
	serveCmd.Flags().Int("port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("host") {
		cfg.Server.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.MigrateOnStart {
		if err := db.Migrate(ctx, 0); err != nil {
			return err
		}
	}

	deps, err := buildDependencies(cfg, db)
	if err != nil {
		return err
	}

	server, err := api.NewServer(cfg, deps, api.WithLogger(log.Default().WithPrefix("http")))
	if err != nil {
		return err
	}
	if err := server.Initialize(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down server")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server gracefully stopped")
	return nil
}

// buildDependencies wires the services the handlers need
func buildDependencies(cfg *config.Config, db *database.DB) (*types.Dependencies, error) {
	tokens, err := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.DevToken)
	if err != nil {
		return nil, fmt.Errorf("configuring auth: %w", err)
	}

	logger := log.Default()
	client := catalog.NewClient(catalog.Config{
		BaseURL:       cfg.Catalog.BaseURL,
		TokenURL:      cfg.Catalog.TokenURL,
		ClientID:      cfg.Catalog.ClientID,
		ClientSecret:  cfg.Catalog.ClientSecret,
		Timeout:       cfg.Catalog.Timeout,
		RateLimit:     cfg.Catalog.RateLimit,
		RetryAttempts: cfg.Catalog.RetryAttempts,
		PageSize:      cfg.Catalog.PageSize,
	}, catalog.WithLogger(logger.WithPrefix("catalog")))

	return &types.Dependencies{
		Config: cfg,
		DB:     db,
		Annotations: annotations.NewService(
			annotations.NewRepository(db.DB),
			client,
			annotations.WithLogger(logger.WithPrefix("annotations")),
		),
		Users: users.NewService(users.NewRepository(db.DB), logger.WithPrefix("users")),
		Auth:  tokens,
	}, nil
}
