package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationType restricts legacy locations to offices and plants
type LocationType string

const (
	LocationTypeOffice LocationType = "OFFICE"
	LocationTypePlant  LocationType = "PLANT"
)

// LegacyCustomer is the pre-migration root entity (table "customers").
// It is read-only for the schema migrator and deleted by the cleanup pass.
type LegacyCustomer struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name          string     `gorm:"type:varchar(200);not null"`
	POStructures  bool       `gorm:"not null;default:false;column:po_structures"`
	PORoofing     bool       `gorm:"not null;default:false;column:po_roofing"`
	POCladding    bool       `gorm:"not null;default:false;column:po_cladding"`
	POMezzanines  bool       `gorm:"not null;default:false;column:po_mezzanines"`
	POServices    bool       `gorm:"not null;default:false;column:po_services"`
	SupplierNotes string     `gorm:"type:text;column:supplier_notes"`
	ProblemsFaced string     `gorm:"type:text;column:problems_faced"`
	EmployeeID    *uuid.UUID `gorm:"type:uuid;column:employee_id"`
	CreatedAt     time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`

	Locations []LegacyLocation `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Contacts  []LegacyContact  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName maps to the legacy customers table
func (LegacyCustomer) TableName() string {
	return "customers"
}

// BeforeCreate mints a primary key when none is set (test fixtures only;
// production rows were created by the old application)
func (c *LegacyCustomer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// LegacyLocation is the pre-migration type-tagged location (table "locations").
// PlantType is free text with no equivalent in the new schema; the migrator
// drops it.
type LegacyLocation struct {
	ID             uuid.UUID    `gorm:"type:uuid;primary_key"`
	CustomerID     uuid.UUID    `gorm:"type:uuid;not null;index;column:customer_id"`
	LocationType   LocationType `gorm:"type:varchar(20);not null;column:location_type"`
	PlantType      string       `gorm:"type:varchar(100);column:plant_type"`
	Address        string       `gorm:"type:varchar(500)"`
	City           string       `gorm:"type:varchar(100)"`
	State          string       `gorm:"type:varchar(100)"`
	PostalCode     string       `gorm:"type:varchar(20);column:postal_code"`
	ReceptionPhone string       `gorm:"type:varchar(50);column:reception_phone"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`

	Contacts []LegacyContact `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

// TableName maps to the legacy locations table
func (LegacyLocation) TableName() string {
	return "locations"
}

// BeforeCreate mints a primary key when none is set
func (l *LegacyLocation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// LegacyContact is the pre-migration contact (table "contacts"). LocationID
// is optional; contacts may attach directly to a customer. OfficialCell and
// PersonalCell are merged into ContactPerson.Phone by the migrator.
type LegacyContact struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;not null;index;column:customer_id"`
	LocationID   *uuid.UUID `gorm:"type:uuid;index;column:location_id"`
	Name         string     `gorm:"type:varchar(200);not null"`
	Designation  string     `gorm:"type:varchar(100)"`
	OfficialCell string     `gorm:"type:varchar(50);column:official_cell"`
	PersonalCell string     `gorm:"type:varchar(50);column:personal_cell"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName maps to the legacy contacts table
func (LegacyContact) TableName() string {
	return "contacts"
}

// BeforeCreate mints a primary key when none is set
func (c *LegacyContact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
