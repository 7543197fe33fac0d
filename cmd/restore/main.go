// Command restore repopulates the database from a backup file. Rows are
// inserted or updated by primary key, so a restore can be re-run safely.
// With no argument it restores the newest backup file in the backup
// directory. Both the table-keyed snapshot format and the older nested
// customer-form format are supported.
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
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
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

	path := flag.Arg(0)
	if path == "" {
		path, err = backup.Latest(cfg.Backup.Dir)
		if err != nil {
			return fmt.Errorf("no backup file specified and none found in %s: %w", cfg.Backup.Dir, err)
		}
		log.Info("no file specified, using newest backup", zap.String("path", path))
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	restorer := backup.NewRestorer(db, log)
	summary, err := restorer.RestoreFile(context.Background(), path)
	if err != nil {
		return err
	}

	fmt.Printf("Restored %d rows from %s\n", summary.Total(), path)
	return nil
}
