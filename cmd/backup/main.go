// Command backup extracts a full snapshot of the SalesOps database into a
// timestamped JSON file under the backup directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fabrimet/salesops-api/internal/backup"
	"github.com/fabrimet/salesops-api/internal/config"
	"github.com/fabrimet/salesops-api/internal/database"
	"github.com/fabrimet/salesops-api/internal/logger"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		dir      = flag.String("dir", "", "backup directory (default from config)")
		logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	cfg, err := config.LoadForBatch()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *dir != "" {
		cfg.Backup.Dir = *dir
	}

	log := logger.NewToolLogger(*logLevel)
	defer func() { _ = log.Sync() }()

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	ctx := context.Background()
	exporter := backup.NewExporter(db, log, cfg.Backup.TableDelay())

	snap, err := exporter.Export(ctx)
	if err != nil {
		return fmt.Errorf("failed to export snapshot: %w", err)
	}

	path, err := backup.Write(snap, cfg.Backup.Dir)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	log.Info("backup complete", zap.String("path", path))
	fmt.Printf("Backup written to %s\n", path)
	return nil
}
