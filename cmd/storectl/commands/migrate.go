package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"store/config"
	logs "store/internal/infra/log"
	"store/internal/infra/persistence/postgres"
	"store/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Connects to the PostgreSQL instance from config/config.yaml (environment variables
override file values) and migrates the accounts, products, categories and orders tables.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if verbose {
		cfg.Env.Log.Level = "debug"
	}

	logger, err := logs.NewWithWriter(os.Stderr, cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	start := time.Now()
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Schema migrated in %s\n", util.FormatDuration(time.Since(start)))

	return nil
}
