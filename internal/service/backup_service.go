package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fabrimet/salesops-api/internal/backup"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BackupService extracts full database snapshots and writes them to the
// backup directory. It backs both the admin endpoint and the nightly job.
type BackupService struct {
	db     *gorm.DB
	logger *zap.Logger
	dir    string
	delay  time.Duration
}

func NewBackupService(db *gorm.DB, logger *zap.Logger, dir string, delay time.Duration) *BackupService {
	return &BackupService{
		db:     db,
		logger: logger,
		dir:    dir,
		delay:  delay,
	}
}

// RunBackup extracts every table and writes a snapshot file, returning the
// path of the file written.
func (s *BackupService) RunBackup(ctx context.Context) (string, error) {
	exporter := backup.NewExporter(s.db, s.logger, s.delay)

	snap, err := exporter.Export(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to export snapshot: %w", err)
	}

	path, err := backup.Write(snap, s.dir)
	if err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	s.logger.Info("backup written", zap.String("path", path))
	return path, nil
}
