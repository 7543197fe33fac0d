package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/fabrimet/salesops-api/internal/migration"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NestedLocation is a legacy location with its contacts inlined, as written
// by the old customer-centric backup scripts
type NestedLocation struct {
	domain.LegacyLocation
	Contacts []domain.LegacyContact `json:"contacts"`
}

// NestedCustomer is a legacy customer with all children inlined
type NestedCustomer struct {
	domain.LegacyCustomer
	Locations      []NestedLocation        `json:"locations"`
	Contacts       []domain.LegacyContact  `json:"contacts"`
	Enquiries      []domain.Enquiry        `json:"enquiries"`
	Communications []domain.Communication  `json:"communications"`
}

// NestedBackup is the customer-centric backup file shape, which predates
// the Company/Office/Plant split
type NestedBackup struct {
	Timestamp      time.Time               `json:"timestamp"`
	Customers      []NestedCustomer        `json:"customers"`
	Locations      []domain.LegacyLocation `json:"locations"`
	Contacts       []domain.LegacyContact  `json:"contacts"`
	Enquiries      []domain.Enquiry        `json:"enquiries"`
	Communications []domain.Communication  `json:"communications"`
}

// RestoreSummary reports rows upserted per table
type RestoreSummary struct {
	Tables map[string]int
}

// Total returns the number of rows upserted across all tables
func (s *RestoreSummary) Total() int {
	total := 0
	for _, n := range s.Tables {
		total += n
	}
	return total
}

func (s *RestoreSummary) add(table string, n int) {
	if n > 0 {
		s.Tables[table] += n
	}
}

// Restorer repopulates a database from a backup file using
// insert-or-update-by-id semantics, so a restore can be re-run safely
// against a partially restored database.
type Restorer struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRestorer creates a restore tool
func NewRestorer(db *gorm.DB, logger *zap.Logger) *Restorer {
	return &Restorer{db: db, logger: logger}
}

// RestoreFile reads a backup file, detects which of the two shapes it is,
// and restores it
func (r *Restorer) RestoreFile(ctx context.Context, path string) (*RestoreSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup file: %w", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse backup file: %w", err)
	}

	if _, ok := probe["schema"]; ok {
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to parse table-keyed backup: %w", err)
		}
		r.logger.Info("restoring table-keyed backup",
			zap.String("path", path),
			zap.Time("backup_timestamp", snap.Timestamp),
			zap.String("version", snap.Version),
		)
		return r.RestoreSnapshot(ctx, &snap)
	}

	if _, ok := probe["customers"]; ok {
		var nested NestedBackup
		if err := json.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse nested backup: %w", err)
		}
		r.logger.Info("restoring nested customer-form backup",
			zap.String("path", path),
			zap.Time("backup_timestamp", nested.Timestamp),
			zap.Int("customers", len(nested.Customers)),
		)
		return r.RestoreNested(ctx, &nested)
	}

	return nil, fmt.Errorf("unrecognized backup shape in %s", path)
}

// RestoreSnapshot upserts every table of a table-keyed snapshot in an
// order that satisfies foreign-key dependencies: independent entities
// first, then their children, then leaf entities.
func (r *Restorer) RestoreSnapshot(ctx context.Context, snap *Snapshot) (*RestoreSummary, error) {
	summary := &RestoreSummary{Tables: map[string]int{}}

	if err := r.upsertTable(ctx, summary, "employees", snap.Schema.Employees); err != nil {
		return nil, err
	}
	if err := r.upsertTable(ctx, summary, "customers", snap.Schema.Customers); err != nil {
		return nil, err
	}
	if err := r.upsertTable(ctx, summary, "companies", snap.Schema.Companies); err != nil {
		return nil, err
	}
	if err := r.upsertTable(ctx, summary, "offices", snap.Schema.Offices); err != nil {
		return nil, err
	}
	if err := r.upsertTable(ctx, summary, "plants", snap.Schema.Plants); err != nil {
		return nil, err
	}
	if err := r.upsertTable(ctx, summary, "locations", snap.Schema.Locations); err != nil {
		return nil, err
	}
	if err := r.upsertTable(ctx, summary, "contact_persons", snap.Schema.ContactPersons); err != nil {
		return nil, err
	}
	if err := r.upsertTable(ctx, summary, "contacts", snap.Schema.Contacts); err != nil {
		return nil, err
	}
	if err := r.upsertTable(ctx, summary, "enquiries", snap.Schema.Enquiries); err != nil {
		return nil, err
	}
	if err := r.upsertTable(ctx, summary, "quotations", snap.Schema.Quotations); err != nil {
		return nil, err
	}
	if err := r.upsertTable(ctx, summary, "quotation_items", snap.Schema.QuotationItems); err != nil {
		return nil, err
	}
	if err := r.upsertTable(ctx, summary, "communications", snap.Schema.Communications); err != nil {
		return nil, err
	}
	if err := r.upsertTable(ctx, summary, "documents", snap.Schema.Documents); err != nil {
		return nil, err
	}

	r.logger.Info("restore finished", zap.Int("rows", summary.Total()))
	return summary, nil
}

// RestoreNested restores a customer-centric backup by re-deriving the
// Company/Office/Plant/ContactPerson rows through the same conversion the
// schema migrator uses, preserving original identities so the restore is
// idempotent.
func (r *Restorer) RestoreNested(ctx context.Context, nested *NestedBackup) (*RestoreSummary, error) {
	summary := &RestoreSummary{Tables: map[string]int{}}
	companyByCustomer := make(map[uuid.UUID]uuid.UUID, len(nested.Customers))

	for _, customer := range nested.Customers {
		locations := make([]domain.LegacyLocation, 0, len(customer.Locations))
		contacts := make([]domain.LegacyContact, 0, len(customer.Contacts))
		for _, loc := range customer.Locations {
			locations = append(locations, loc.LegacyLocation)
			contacts = append(contacts, loc.Contacts...)
		}
		contacts = append(contacts, customer.Contacts...)

		result := migration.ConvertCustomer(customer.LegacyCustomer, locations, contacts,
			migration.ConvertOptions{PreserveIDs: true})
		companyByCustomer[customer.ID] = result.Company.ID

		if err := r.upsertTable(ctx, summary, "companies", []domain.Company{result.Company}); err != nil {
			return nil, err
		}
		if err := r.upsertTable(ctx, summary, "offices", result.Offices); err != nil {
			return nil, err
		}
		if err := r.upsertTable(ctx, summary, "plants", result.Plants); err != nil {
			return nil, err
		}
		if err := r.upsertTable(ctx, summary, "contact_persons", result.ContactPersons); err != nil {
			return nil, err
		}

		enquiries := repointEnquiries(customer.Enquiries, result.Company.ID)
		if err := r.upsertTable(ctx, summary, "enquiries", enquiries); err != nil {
			return nil, err
		}
		communications := repointCommunications(customer.Communications, result.Company.ID)
		if err := r.upsertTable(ctx, summary, "communications", communications); err != nil {
			return nil, err
		}
	}

	// The flat locations/contacts arrays duplicate the nested data and were
	// already re-derived above. The flat enquiries/communications arrays may
	// carry rows the nested form missed; upsert keeps duplicates harmless.
	for _, enquiry := range nested.Enquiries {
		rows := []domain.Enquiry{enquiry}
		if enquiry.CustomerID != nil {
			if companyID, ok := companyByCustomer[*enquiry.CustomerID]; ok {
				rows = repointEnquiries(rows, companyID)
			}
		}
		if err := r.upsertTable(ctx, summary, "enquiries", rows); err != nil {
			return nil, err
		}
	}
	for _, comm := range nested.Communications {
		rows := []domain.Communication{comm}
		if comm.CustomerID != nil {
			if companyID, ok := companyByCustomer[*comm.CustomerID]; ok {
				rows = repointCommunications(rows, companyID)
			}
		}
		if err := r.upsertTable(ctx, summary, "communications", rows); err != nil {
			return nil, err
		}
	}

	r.logger.Info("nested restore finished",
		zap.Int("companies", len(nested.Customers)),
		zap.Int("rows", summary.Total()),
	)
	return summary, nil
}

// upsertTable inserts rows by primary key, overwriting all fields of rows
// that already exist. A table missing from the target schema is skipped
// with a warning; restore is best-effort per table.
func (r *Restorer) upsertTable(ctx context.Context, summary *RestoreSummary, table string, rows interface{}) error {
	n := rowCount(rows)
	if n == 0 {
		r.logger.Debug("no rows in backup for table, skipping", zap.String("table", table))
		return nil
	}
	if !r.db.Migrator().HasTable(table) {
		r.logger.Warn("table not found in target schema, skipping", zap.String("table", table))
		return nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Omit(clause.Associations).
		Table(table).
		CreateInBatches(rows, 200).Error
	if err != nil {
		return fmt.Errorf("failed to restore %s: %w", table, err)
	}

	summary.add(table, n)
	return nil
}

func rowCount(rows interface{}) int {
	switch v := rows.(type) {
	case []domain.Employee:
		return len(v)
	case []domain.LegacyCustomer:
		return len(v)
	case []domain.Company:
		return len(v)
	case []domain.Office:
		return len(v)
	case []domain.Plant:
		return len(v)
	case []domain.LegacyLocation:
		return len(v)
	case []domain.ContactPerson:
		return len(v)
	case []domain.LegacyContact:
		return len(v)
	case []domain.Enquiry:
		return len(v)
	case []domain.Quotation:
		return len(v)
	case []domain.QuotationItem:
		return len(v)
	case []domain.Communication:
		return len(v)
	case []domain.Document:
		return len(v)
	}
	return 0
}

func repointEnquiries(enquiries []domain.Enquiry, companyID uuid.UUID) []domain.Enquiry {
	out := make([]domain.Enquiry, len(enquiries))
	for i, e := range enquiries {
		e.CompanyID = &companyID
		e.CustomerID = nil
		out[i] = e
	}
	return out
}

func repointCommunications(comms []domain.Communication, companyID uuid.UUID) []domain.Communication {
	out := make([]domain.Communication, len(comms))
	for i, c := range comms {
		c.CompanyID = &companyID
		c.CustomerID = nil
		out[i] = c
	}
	return out
}
