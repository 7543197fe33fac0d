// Command migrate-schema converts the legacy customer/location/contact
// records into the company/office/plant/contact-person schema. It processes
// one customer per transaction and may be re-run after failures; customers
// whose company already exists are skipped.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fabrimet/salesops-api/internal/config"
	"github.com/fabrimet/salesops-api/internal/database"
	"github.com/fabrimet/salesops-api/internal/logger"
	"github.com/fabrimet/salesops-api/internal/migration"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Schema migration error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	cfg, err := config.LoadForBatch()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewToolLogger(*logLevel)
	defer func() { _ = log.Sync() }()

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	migrator := migration.NewMigrator(db, log)
	summary, err := migrator.Run(context.Background())
	if err != nil {
		if errors.Is(err, migration.ErrAlreadyMigrated) {
			fmt.Println("Schema already migrated; nothing to do")
			return nil
		}
		return err
	}

	log.Info("schema migration complete",
		zap.Int("migrated", summary.Migrated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	fmt.Printf("Migrated %d customers (%d skipped, %d failed)\n",
		summary.Migrated, summary.Skipped, summary.Failed)

	if summary.Failed > 0 {
		return fmt.Errorf("%d customers failed to migrate; fix and re-run", summary.Failed)
	}
	return nil
}
