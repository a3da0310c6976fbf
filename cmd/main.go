// Package main is the scanguard command: the HTTP API and its background
// workers (serve) plus the operational tasks around them (migrate, account, jwt).
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scanguard/internal/config"
	"scanguard/pkg/logger"
	"scanguard/pkg/storage/postgres"
)

func postgresOptions(cfg *config.Config) postgres.Options {
	db := cfg.Database

	return postgres.Options{
		Username:           db.Username,
		Password:           db.Password,
		Host:               db.Host,
		Port:               db.Port,
		Database:           db.DatabaseName,
		SslMode:            db.SslMode,
		ConnMaxLifetime:    db.ConnMaxLifetime,
		ConnMaxIdleTime:    db.ConnMaxIdleTime,
		MaxOpenConnections: db.MaxOpenConnections,
		MaxIdleConnections: db.MaxIdleConnections,
	}
}

// getPostgres connects to PostgreSQL or exits. The returned func closes the pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgresOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not connect to postgres",
			zap.String("host", cfg.Database.Host), zap.Error(err))
	}

	return pgsql, func() {
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// loadConfig reads the config file named by -c before cobra parses the command
// line, since the subcommands are built from it.
func loadConfig() *config.Config {
	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("could not load config file %q: %v", *configPath, err)
	}

	logger.Setup(cfg.Environment)
	if cfg.LogLevel != "" {
		if err := logger.SetLevel(cfg.LogLevel); err != nil {
			log.Fatalf("invalid log level %q: %v", cfg.LogLevel, err)
		}
	}

	return cfg
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd := &cobra.Command{
		Use:          "scanguard",
		Short:        "Multi-tenant URL scanning API",
		SilenceUsage: true,
	}
	// -c is consumed by loadConfig; cobra only needs to accept it.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")
	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		accountCommand(cfg),
		JWTCommand(cfg),
	)

	err := rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
