package migration

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Counts holds per-table row counts for operator verification. Legacy
// counts are -1 when the corresponding table no longer exists.
type Counts struct {
	Companies      int64
	Offices        int64
	Plants         int64
	ContactPersons int64
	Enquiries      int64
	Communications int64

	LegacyCustomers int64
	LegacyLocations int64
	LegacyContacts  int64
}

// Verify counts the migration-relevant tables and logs the totals for
// manual comparison. It does not compare against expectations itself; the
// operator decides whether the numbers look right.
func Verify(ctx context.Context, db *gorm.DB, logger *zap.Logger) (*Counts, error) {
	counts := &Counts{
		LegacyCustomers: -1,
		LegacyLocations: -1,
		LegacyContacts:  -1,
	}

	newTables := []struct {
		table string
		dest  *int64
	}{
		{"companies", &counts.Companies},
		{"offices", &counts.Offices},
		{"plants", &counts.Plants},
		{"contact_persons", &counts.ContactPersons},
		{"enquiries", &counts.Enquiries},
		{"communications", &counts.Communications},
	}
	for _, t := range newTables {
		if err := db.WithContext(ctx).Table(t.table).Count(t.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", t.table, err)
		}
	}

	if DetectSchemaState(db) == SchemaStateLegacy {
		legacyTables := []struct {
			table string
			dest  *int64
		}{
			{"customers", &counts.LegacyCustomers},
			{"locations", &counts.LegacyLocations},
			{"contacts", &counts.LegacyContacts},
		}
		for _, t := range legacyTables {
			if !db.Migrator().HasTable(t.table) {
				continue
			}
			if err := db.WithContext(ctx).Table(t.table).Count(t.dest).Error; err != nil {
				return nil, fmt.Errorf("failed to count %s: %w", t.table, err)
			}
		}
	}

	logger.Info("current table counts",
		zap.Int64("companies", counts.Companies),
		zap.Int64("offices", counts.Offices),
		zap.Int64("plants", counts.Plants),
		zap.Int64("contact_persons", counts.ContactPersons),
		zap.Int64("enquiries", counts.Enquiries),
		zap.Int64("communications", counts.Communications),
	)
	if counts.LegacyCustomers >= 0 {
		logger.Info("legacy table counts",
			zap.Int64("customers", counts.LegacyCustomers),
			zap.Int64("locations", counts.LegacyLocations),
			zap.Int64("contacts", counts.LegacyContacts),
		)
	} else {
		logger.Info("legacy tables absent")
	}

	return counts, nil
}
