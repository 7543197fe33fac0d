// Command cleanup permanently deletes the legacy customer, location and
// contact rows after a verified schema migration. It refuses to run
// without the --confirm flag: the deletion is irreversible except by
// restoring a backup.
package main

import (
	"context"
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
		fmt.Fprintf(os.Stderr, "Cleanup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		confirm  = flag.Bool("confirm", false, "actually delete legacy data (required)")
		logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	if !*confirm {
		return fmt.Errorf("refusing to delete legacy data without --confirm; take a backup first")
	}

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

	// Deleting legacy rows before migration would destroy unmigrated data.
	if migration.DetectSchemaState(db) == migration.SchemaStateLegacy {
		var companies int64
		if err := db.Table("companies").Count(&companies).Error; err != nil || companies == 0 {
			return fmt.Errorf("no migrated companies found; run migrate-schema before cleanup")
		}
	}

	summary, err := migration.Cleanup(context.Background(), db, log)
	if err != nil {
		return err
	}

	log.Info("cleanup complete",
		zap.Int64("communications", summary.Communications),
		zap.Int64("contacts", summary.Contacts),
		zap.Int64("locations", summary.Locations),
		zap.Int64("customers", summary.Customers),
	)
	fmt.Printf("Deleted %d customers, %d locations, %d contacts, %d legacy communications\n",
		summary.Customers, summary.Locations, summary.Contacts, summary.Communications)
	return nil
}
