package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// BackupJobName is the name of the nightly database backup job
const BackupJobName = "database_backup"

// DefaultBackupTimeout bounds a single backup run. Extraction is throttled
// per table, so the whole run can take a few minutes on a large database.
const DefaultBackupTimeout = 30 * time.Minute

// BackupService defines the interface for taking a database backup.
// This interface allows the job to call the service without importing the
// service package directly.
type BackupService interface {
	// RunBackup extracts all tables and writes a snapshot file, returning
	// the path of the file written.
	RunBackup(ctx context.Context) (path string, err error)
}

// BackupJob takes a full database snapshot on a schedule.
type BackupJob struct {
	service BackupService
	logger  *zap.Logger
	timeout time.Duration
}

// NewBackupJob creates a new database backup job.
func NewBackupJob(service BackupService, logger *zap.Logger, timeout time.Duration) *BackupJob {
	return &BackupJob{
		service: service,
		logger:  logger,
		timeout: timeout,
	}
}

// Run executes the backup job.
// This is called by the scheduler according to the cron expression.
func (j *BackupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	j.logger.Info("starting database backup job")

	path, err := j.service.RunBackup(ctx)
	if err != nil {
		j.logger.Error("database backup job failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("database backup job completed",
		zap.String("path", path),
		zap.Duration("duration", time.Since(start)))
}

// RegisterBackupJob registers the nightly backup job with the scheduler.
// The cronExpr should be a valid cron expression with a seconds field
// (e.g. "0 0 2 * * *" for 02:00 every night).
func RegisterBackupJob(scheduler *Scheduler, service BackupService, logger *zap.Logger, cronExpr string, timeout time.Duration) error {
	job := NewBackupJob(service, logger, timeout)
	return scheduler.AddJob(BackupJobName, cronExpr, job.Run)
}
