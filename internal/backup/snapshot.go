// Package backup implements the JSON snapshot extractor and the restore
// tool that repopulates a database from a snapshot file.
package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/fabrimet/salesops-api/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SnapshotVersion tags table-keyed snapshot files written by this code
const SnapshotVersion = "2"

// Snapshot is the table-keyed backup file shape
type Snapshot struct {
	Timestamp time.Time      `json:"timestamp"`
	Version   string         `json:"version"`
	Schema    SnapshotSchema `json:"schema"`
}

// SnapshotSchema maps table names to their rows. Legacy tables are included
// when still present so a pre-cleanup backup can fully reverse the
// migration.
type SnapshotSchema struct {
	Employees      []domain.Employee       `json:"employees"`
	Customers      []domain.LegacyCustomer `json:"customers"`
	Companies      []domain.Company        `json:"companies"`
	Offices        []domain.Office         `json:"offices"`
	Plants         []domain.Plant          `json:"plants"`
	Locations      []domain.LegacyLocation `json:"locations"`
	ContactPersons []domain.ContactPerson  `json:"contact_persons"`
	Contacts       []domain.LegacyContact  `json:"contacts"`
	Enquiries      []domain.Enquiry        `json:"enquiries"`
	Quotations     []domain.Quotation      `json:"quotations"`
	QuotationItems []domain.QuotationItem  `json:"quotation_items"`
	Communications []domain.Communication  `json:"communications"`
	Documents      []domain.Document       `json:"documents"`
}

// Exporter reads every domain table into a Snapshot
type Exporter struct {
	db     *gorm.DB
	logger *zap.Logger
	// delay is inserted between successive table queries so a managed
	// database's connection pooler is not hammered by back-to-back full
	// scans. Zero disables the throttle.
	delay time.Duration
}

// NewExporter creates a backup exporter
func NewExporter(db *gorm.DB, logger *zap.Logger, delay time.Duration) *Exporter {
	return &Exporter{db: db, logger: logger, delay: delay}
}

// Export reads all tables in a fixed order. A table missing from the live
// schema (legacy tables may have been dropped already) is an expected
// condition and yields an empty array; any other database error is fatal.
func (e *Exporter) Export(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		Timestamp: time.Now().UTC(),
		Version:   SnapshotVersion,
		// Skipped and empty tables must serialize as [], not null.
		Schema: SnapshotSchema{
			Employees:      []domain.Employee{},
			Customers:      []domain.LegacyCustomer{},
			Companies:      []domain.Company{},
			Offices:        []domain.Office{},
			Plants:         []domain.Plant{},
			Locations:      []domain.LegacyLocation{},
			ContactPersons: []domain.ContactPerson{},
			Contacts:       []domain.LegacyContact{},
			Enquiries:      []domain.Enquiry{},
			Quotations:     []domain.Quotation{},
			QuotationItems: []domain.QuotationItem{},
			Communications: []domain.Communication{},
			Documents:      []domain.Document{},
		},
	}

	steps := []struct {
		table string
		fetch func(context.Context) error
	}{
		{"employees", func(ctx context.Context) error {
			return e.fetch(ctx, &snap.Schema.Employees)
		}},
		{"customers", func(ctx context.Context) error {
			return e.fetch(ctx, &snap.Schema.Customers)
		}},
		{"companies", func(ctx context.Context) error {
			return e.fetch(ctx, &snap.Schema.Companies)
		}},
		{"offices", func(ctx context.Context) error {
			return e.fetch(ctx, &snap.Schema.Offices)
		}},
		{"plants", func(ctx context.Context) error {
			return e.fetch(ctx, &snap.Schema.Plants)
		}},
		{"locations", func(ctx context.Context) error {
			return e.fetch(ctx, &snap.Schema.Locations)
		}},
		{"contact_persons", func(ctx context.Context) error {
			return e.fetch(ctx, &snap.Schema.ContactPersons)
		}},
		{"contacts", func(ctx context.Context) error {
			return e.fetch(ctx, &snap.Schema.Contacts)
		}},
		{"enquiries", func(ctx context.Context) error {
			return e.fetch(ctx, &snap.Schema.Enquiries)
		}},
		{"quotations", func(ctx context.Context) error {
			return e.fetch(ctx, &snap.Schema.Quotations)
		}},
		{"quotation_items", e.fetchQuotationItems(snap)},
		{"communications", func(ctx context.Context) error {
			return e.fetch(ctx, &snap.Schema.Communications)
		}},
		{"documents", func(ctx context.Context) error {
			return e.fetch(ctx, &snap.Schema.Documents)
		}},
	}

	for i, step := range steps {
		if !e.db.Migrator().HasTable(step.table) {
			e.logger.Warn("table not found, writing empty array", zap.String("table", step.table))
			continue
		}
		if err := step.fetch(ctx); err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", step.table, err)
		}
		e.logger.Info("exported table", zap.String("table", step.table))

		if i < len(steps)-1 {
			if err := e.throttle(ctx); err != nil {
				return nil, err
			}
		}
	}

	return snap, nil
}

// fetch reads all rows of the model behind dest, ordered by primary key
// for determinism
func (e *Exporter) fetch(ctx context.Context, dest interface{}) error {
	return e.db.WithContext(ctx).Order("id").Find(dest).Error
}

// fetchQuotationItems bypasses the model mapping for the quantity column.
// Its declared type and live contents have drifted (decimal text in a text
// column); the explicit cast keeps the driver from trying to parse it.
func (e *Exporter) fetchQuotationItems(snap *Snapshot) func(context.Context) error {
	return func(ctx context.Context) error {
		return e.db.WithContext(ctx).
			Raw(`SELECT id, created_at, updated_at, quotation_id, description,
				CAST(quantity AS TEXT) AS quantity, unit, rate
				FROM quotation_items ORDER BY id`).
			Scan(&snap.Schema.QuotationItems).Error
	}
}

func (e *Exporter) throttle(ctx context.Context) error {
	if e.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(e.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
