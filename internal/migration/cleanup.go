package migration

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CleanupSummary reports rows deleted per legacy table
type CleanupSummary struct {
	Communications int64
	Contacts       int64
	Locations      int64
	Customers      int64
}

// Cleanup permanently deletes all legacy-schema rows. It assumes the schema
// migrator has run and the operator has verified the result; it performs no
// verification of its own and is irreversible except via a backup file.
//
// Deletion order respects foreign-key dependencies: communications still
// referencing a legacy customer first, then contacts, locations, and
// finally customers.
func Cleanup(ctx context.Context, db *gorm.DB, logger *zap.Logger) (*CleanupSummary, error) {
	summary := &CleanupSummary{}

	steps := []struct {
		table string
		run   func() (int64, error)
		dest  *int64
	}{
		{
			table: "communications",
			run: func() (int64, error) {
				res := db.WithContext(ctx).Exec("DELETE FROM communications WHERE customer_id IS NOT NULL")
				return res.RowsAffected, res.Error
			},
			dest: &summary.Communications,
		},
		{
			table: "contacts",
			run: func() (int64, error) {
				res := db.WithContext(ctx).Exec("DELETE FROM contacts")
				return res.RowsAffected, res.Error
			},
			dest: &summary.Contacts,
		},
		{
			table: "locations",
			run: func() (int64, error) {
				res := db.WithContext(ctx).Exec("DELETE FROM locations")
				return res.RowsAffected, res.Error
			},
			dest: &summary.Locations,
		},
		{
			table: "customers",
			run: func() (int64, error) {
				res := db.WithContext(ctx).Exec("DELETE FROM customers")
				return res.RowsAffected, res.Error
			},
			dest: &summary.Customers,
		},
	}

	for _, step := range steps {
		if !db.Migrator().HasTable(step.table) {
			logger.Warn("legacy table not found, skipping", zap.String("table", step.table))
			continue
		}
		deleted, err := step.run()
		if err != nil {
			return nil, fmt.Errorf("failed to clean %s: %w", step.table, err)
		}
		*step.dest = deleted
		logger.Info("deleted legacy rows",
			zap.String("table", step.table),
			zap.Int64("rows", deleted),
		)
	}

	return summary, nil
}
