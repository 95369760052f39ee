package main

import (
	"context"
	"log/slog"

	"blogapp/internal/config"
	"blogapp/internal/logger"
	"blogapp/internal/mongo"
	"blogapp/internal/mysql"
	"blogapp/internal/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and indexes for the configured self-hosted backends",
		Long: `Creates the posts table (POST_BACKEND=postgres), the posts index
(POST_BACKEND=mongo) and the users/sessions tables (MySQL backends).
Supabase-hosted tables are managed in the Supabase dashboard.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cmd.Context(), *envFile)
		},
	}
}

func migrate(ctx context.Context, envFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	log := logger.Load(cfg.LogLevel, cfg.LogFormat)

	switch cfg.PostBackend {
	case config.BackendPostgres:
		pool, err := postgres.LoadPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		log.Info("migrated", slog.String("store", "postgres"))
	case config.BackendMongo:
		client, db, err := mongo.LoadDB(ctx, cfg.Mongo.URI, cfg.Mongo.DBName)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())
		if err := mongo.Migrate(ctx, db); err != nil {
			return err
		}
		log.Info("migrated", slog.String("store", "mongo"))
	}

	if cfg.UsesMySQL() {
		db, err := mysql.LoadDB(ctx, cfg.MySQLDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := mysql.Migrate(ctx, db); err != nil {
			return err
		}
		log.Info("migrated", slog.String("store", "mysql"))
	}
	return nil
}
