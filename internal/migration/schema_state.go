// Package migration implements the one-shot legacy schema migration: the
// conversion of pre-split Customer/Location/Contact rows into the
// Company/Office/Plant/ContactPerson model, the cleanup of legacy rows, and
// the verification and normalization utilities run around it.
package migration

import "gorm.io/gorm"

// SchemaState reports whether the legacy tables are still present in the
// live database. It is detected once at startup; callers branch on it
// instead of wrapping every legacy query in error recovery.
type SchemaState int

const (
	// SchemaStateMigrated means the legacy tables have been dropped or
	// emptied out; only the new schema is live.
	SchemaStateMigrated SchemaState = iota
	// SchemaStateLegacy means the legacy customers/locations/contacts
	// tables still exist.
	SchemaStateLegacy
)

// String returns a human-readable name for the state
func (s SchemaState) String() string {
	if s == SchemaStateLegacy {
		return "legacy"
	}
	return "migrated"
}

// DetectSchemaState inspects the live database once. The customers table is
// the root of the legacy schema; its presence implies the rest.
func DetectSchemaState(db *gorm.DB) SchemaState {
	if db.Migrator().HasTable("customers") {
		return SchemaStateLegacy
	}
	return SchemaStateMigrated
}
