package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/deal-desk/internal/config"
	"github.com/donaldgifford/deal-desk/internal/store"
	"github.com/donaldgifford/deal-desk/pkg/logger"
)

var migrateStatus bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: "Apply embedded SQL migrations in version order. With --status, list\n" +
		"applied and pending versions without changing the schema.",
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "show applied and pending migrations only")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	if migrateStatus {
		return printMigrationStatus(ctx, cmd, pool)
	}

	log.Info("running migrations", "host", cfg.Database.Host, "database", cfg.Database.Name)

	if err := store.RunMigrations(ctx, pool); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	log.Info("migrations complete")
	return nil
}

func printMigrationStatus(ctx context.Context, cmd *cobra.Command, pool *pgxpool.Pool) error {
	applied, err := store.AppliedMigrations(ctx, pool)
	if err != nil {
		return err
	}
	pending, err := store.PendingMigrations(applied)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, m := range applied {
		fmt.Fprintf(out, "applied  %s  %s\n", m.Version, m.AppliedAt.Format(time.RFC3339))
	}
	for _, v := range pending {
		fmt.Fprintf(out, "pending  %s\n", v)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFiles(envFiles...); err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
