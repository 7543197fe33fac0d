// Command verify reports row counts across the live schema so a migration
// or restore can be checked against expectations. With --normalize it also
// collapses drifted decimal-text quantity values on quotation items.
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
		fmt.Fprintf(os.Stderr, "Verify error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		normalize = flag.Bool("normalize", false, "collapse drifted decimal-text quantity values")
		logLevel  = flag.String("log-level", "info", "log level (debug, info, warn, error)")
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

	ctx := context.Background()

	counts, err := migration.Verify(ctx, db, log)
	if err != nil {
		return err
	}

	fmt.Printf("Companies:       %d\n", counts.Companies)
	fmt.Printf("Offices:         %d\n", counts.Offices)
	fmt.Printf("Plants:          %d\n", counts.Plants)
	fmt.Printf("Contact persons: %d\n", counts.ContactPersons)
	fmt.Printf("Enquiries:       %d\n", counts.Enquiries)
	fmt.Printf("Communications:  %d\n", counts.Communications)
	if counts.LegacyCustomers >= 0 {
		fmt.Printf("Legacy customers: %d\n", counts.LegacyCustomers)
		fmt.Printf("Legacy locations: %d\n", counts.LegacyLocations)
		fmt.Printf("Legacy contacts:  %d\n", counts.LegacyContacts)
	}

	if *normalize {
		changed, err := migration.NormalizeQuantities(ctx, db, log)
		if err != nil {
			return err
		}
		log.Info("normalization complete", zap.Int("rows_changed", changed))
		fmt.Printf("Normalized %d quantity values\n", changed)
	}

	return nil
}
