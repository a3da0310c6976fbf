package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	root "scanguard"
	"scanguard/internal/config"
	"scanguard/pkg/logger"
)

const migrationsDir = "migrations"

func setupGoose() error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}

	return nil
}

// migrateSchema applies the embedded goose migrations (accounts, scans,
// review decisions, webhook events).
func migrateSchema(db *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("could not apply schema migrations: %w", err)
	}

	return nil
}

// migrateRiver brings the River job tables to the newest version and returns it.
func migrateRiver(ctx context.Context, db *sql.DB) (int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, fmt.Errorf("could not create river migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not list river migrations: %w", err)
	}
	if len(existing) > 0 && existing[len(existing)-1].Version >= latest {
		return latest, nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{TargetVersion: latest}); err != nil {
		return 0, fmt.Errorf("could not migrate river tables: %w", err)
	}

	return latest, nil
}

// migrateCommand constructs the 'migrate' subcommand, which brings both the
// application schema and the River tables up to date. 'migrate status' prints
// the goose migration state instead.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			db := strg.DB.(*sql.DB) //nolint: forcetypeassert

			if err := migrateSchema(db); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}
			riverVersion, err := migrateRiver(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}

			logger.Info(ctx, "database migrated", zap.Int("river_version", riverVersion))
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Prints the state of every schema migration",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := setupGoose(); err != nil {
				logger.Fatal(ctx, "could not read migrations", zap.Error(err))
			}
			if err := goose.Status(strg.DB.(*sql.DB), migrationsDir); err != nil { //nolint: forcetypeassert
				logger.Fatal(ctx, "could not read migration status", zap.Error(err))
			}
		},
	})

	return cmd
}
