package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

// goose keeps its base FS and dialect in package globals
var gooseMu sync.Mutex

func withGoose(fn func() error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(log.Default())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return fn()
}

// Migrate applies pending migrations. steps <= 0 applies all of them.
func (db *DB) Migrate(ctx context.Context, steps int) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	return withGoose(func() error {
		current, err := goose.GetDBVersionContext(ctx, sqlDB)
		if err != nil {
			return fmt.Errorf("reading database version: %w", err)
		}
		log.Info("running migrations", "current_version", current, "steps", steps)

		if steps <= 0 {
			if err := goose.UpContext(ctx, sqlDB, migrationsDir); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
		} else {
			for i := 0; i < steps; i++ {
				if err := goose.UpByOneContext(ctx, sqlDB, migrationsDir); err != nil {
					if errors.Is(err, goose.ErrNoNextVersion) {
						break
					}
					return fmt.Errorf("failed to run migration: %w", err)
				}
			}
		}

		version, err := goose.GetDBVersionContext(ctx, sqlDB)
		if err != nil {
			return fmt.Errorf("reading database version: %w", err)
		}
		log.Info("migrations complete", "version", version)
		return nil
	})
}

// Rollback reverts the given number of migrations
func (db *DB) Rollback(ctx context.Context, steps int) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	return withGoose(func() error {
		for i := 0; i < steps; i++ {
			if err := goose.DownContext(ctx, sqlDB, migrationsDir); err != nil {
				if errors.Is(err, goose.ErrNoCurrentVersion) {
					break
				}
				return fmt.Errorf("failed to roll back migration: %w", err)
			}
		}
		return nil
	})
}

// MigrationStatus logs applied and pending migrations
func (db *DB) MigrationStatus(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	return withGoose(func() error {
		return goose.StatusContext(ctx, sqlDB, migrationsDir)
	})
}

// Version returns the current schema version
func (db *DB) Version(ctx context.Context) (int64, error) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	var version int64
	err = withGoose(func() error {
		var err error
		version, err = goose.GetDBVersionContext(ctx, sqlDB)
		return err
	})
	return version, err
}
