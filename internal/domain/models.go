package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate mints a primary key when none is set. Backup restore sets IDs
// explicitly to preserve original identities.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// EmployeeRole represents the role of an employee in the sales organization
type EmployeeRole string

const (
	EmployeeRoleAdmin     EmployeeRole = "admin"
	EmployeeRoleSales     EmployeeRole = "sales"
	EmployeeRoleEngineer  EmployeeRole = "engineer"
	EmployeeRoleAccounts  EmployeeRole = "accounts"
	EmployeeRoleDirector  EmployeeRole = "director"
)

// Employee represents a member of the sales organization who owns
// companies, enquiries and communications
type Employee struct {
	BaseModel
	Name     string       `gorm:"type:varchar(200);not null"`
	Email    string       `gorm:"type:varchar(255);unique"`
	Phone    string       `gorm:"type:varchar(50)"`
	Role     EmployeeRole `gorm:"type:varchar(50);not null;default:'sales'"`
	// No gorm-side default: with one, gorm omits a false value on insert
	// and the column default flips it back to true.
	IsActive bool `gorm:"not null;column:is_active"`
}

// Company represents a client organization (post-migration root entity).
// The five PO flags track which product lines the client has ordered from.
type Company struct {
	BaseModel
	Name          string     `gorm:"type:varchar(200);not null;index"`
	POStructures  bool       `gorm:"not null;default:false;column:po_structures"`
	PORoofing     bool       `gorm:"not null;default:false;column:po_roofing"`
	POCladding    bool       `gorm:"not null;default:false;column:po_cladding"`
	POMezzanines  bool       `gorm:"not null;default:false;column:po_mezzanines"`
	POServices    bool       `gorm:"not null;default:false;column:po_services"`
	SupplierNotes string     `gorm:"type:text;column:supplier_notes"`
	ProblemsFaced string     `gorm:"type:text;column:problems_faced"`
	EmployeeID    *uuid.UUID `gorm:"type:uuid;index;column:employee_id"`
	Employee      *Employee  `gorm:"foreignKey:EmployeeID"`

	Offices        []Office        `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Plants         []Plant         `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	ContactPersons []ContactPerson `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// Office represents a client office location
type Office struct {
	BaseModel
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index;column:company_id"`
	Company        *Company  `gorm:"foreignKey:CompanyID"`
	Address        string    `gorm:"type:varchar(500)"`
	City           string    `gorm:"type:varchar(100)"`
	State          string    `gorm:"type:varchar(100)"`
	PostalCode     string    `gorm:"type:varchar(20);column:postal_code"`
	ReceptionPhone string    `gorm:"type:varchar(50);column:reception_phone"`
	IsHeadOffice   bool      `gorm:"not null;default:false;column:is_head_office"`
}

// Plant represents a client manufacturing plant location
type Plant struct {
	BaseModel
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index;column:company_id"`
	Company        *Company  `gorm:"foreignKey:CompanyID"`
	Address        string    `gorm:"type:varchar(500)"`
	City           string    `gorm:"type:varchar(100)"`
	State          string    `gorm:"type:varchar(100)"`
	PostalCode     string    `gorm:"type:varchar(20);column:postal_code"`
	ReceptionPhone string    `gorm:"type:varchar(50);column:reception_phone"`
}

// ContactPerson represents an individual at a client company.
// It belongs to exactly one company and optionally to one of its offices
// or plants. Phone holds the merged legacy official/personal cell numbers.
type ContactPerson struct {
	BaseModel
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index;column:company_id"`
	Company     *Company   `gorm:"foreignKey:CompanyID"`
	OfficeID    *uuid.UUID `gorm:"type:uuid;index;column:office_id"`
	Office      *Office    `gorm:"foreignKey:OfficeID"`
	PlantID     *uuid.UUID `gorm:"type:uuid;index;column:plant_id"`
	Plant       *Plant     `gorm:"foreignKey:PlantID"`
	Name        string     `gorm:"type:varchar(200);not null"`
	Designation string     `gorm:"type:varchar(100)"`
	Phone       string     `gorm:"type:varchar(50)"`
	Email       string     `gorm:"type:varchar(255)"`
	IsPrimary   bool       `gorm:"not null;default:false;column:is_primary"`
}

// TableName overrides gorm's pluralization ("contact_people")
func (ContactPerson) TableName() string {
	return "contact_persons"
}

// EnquiryStatus represents the status of an enquiry
type EnquiryStatus string

const (
	EnquiryStatusOpen      EnquiryStatus = "open"
	EnquiryStatusQuoted    EnquiryStatus = "quoted"
	EnquiryStatusWon       EnquiryStatus = "won"
	EnquiryStatusLost      EnquiryStatus = "lost"
	EnquiryStatusCancelled EnquiryStatus = "cancelled"
)

// IsValid checks if the EnquiryStatus is a valid enum value
func (es EnquiryStatus) IsValid() bool {
	switch es {
	case EnquiryStatusOpen, EnquiryStatusQuoted, EnquiryStatusWon, EnquiryStatusLost, EnquiryStatusCancelled:
		return true
	}
	return false
}

// Enquiry represents a sales enquiry from a client.
// CustomerID is the pre-migration reference to the legacy customers table;
// the schema migrator repoints it to CompanyID and nulls it out.
type Enquiry struct {
	BaseModel
	Subject     string        `gorm:"type:varchar(200);not null;index"`
	Description string        `gorm:"type:text"`
	Status      EnquiryStatus `gorm:"type:varchar(50);not null;default:'open';index"`
	CompanyID   *uuid.UUID    `gorm:"type:uuid;index;column:company_id"`
	Company     *Company      `gorm:"foreignKey:CompanyID"`
	CustomerID  *uuid.UUID    `gorm:"type:uuid;index;column:customer_id"`
	EmployeeID  *uuid.UUID    `gorm:"type:uuid;index;column:employee_id"`
	Employee    *Employee     `gorm:"foreignKey:EmployeeID"`
	ReceivedAt  time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP;column:received_at"`
	DueDate     *time.Time    `gorm:"type:date;column:due_date"`

	Quotations []Quotation `gorm:"foreignKey:EnquiryID;constraint:OnDelete:CASCADE"`
}

// QuotationStatus represents the status of a quotation
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
)

// Quotation represents a priced offer sent against an enquiry
type Quotation struct {
	BaseModel
	EnquiryID       uuid.UUID       `gorm:"type:uuid;not null;index;column:enquiry_id"`
	Enquiry         *Enquiry        `gorm:"foreignKey:EnquiryID"`
	QuotationNumber string          `gorm:"type:varchar(50);unique;index;column:quotation_number"`
	Status          QuotationStatus `gorm:"type:varchar(50);not null;default:'draft'"`
	TotalAmount     float64         `gorm:"type:decimal(15,2);not null;default:0;column:total_amount"`
	Currency        string          `gorm:"type:varchar(3);not null;default:'INR'"`
	ValidUntil      *time.Time      `gorm:"type:date;column:valid_until"`
	Notes           string          `gorm:"type:text"`

	Items []QuotationItem `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
}

// QuotationItem represents a line item on a quotation.
// Quantity is stored as text in the live database and has drifted from a
// historical decimal column; values like "4.000000000000000000000000000000"
// exist in production and are collapsed by the verify tool.
type QuotationItem struct {
	BaseModel
	QuotationID uuid.UUID `gorm:"type:uuid;not null;index;column:quotation_id"`
	Quotation   *Quotation `gorm:"foreignKey:QuotationID"`
	Description string    `gorm:"type:varchar(500);not null"`
	Quantity    string    `gorm:"type:text"`
	Unit        string    `gorm:"type:varchar(50)"`
	Rate        float64   `gorm:"type:decimal(15,2);not null;default:0"`
}

// CommunicationType represents the channel of a communication
type CommunicationType string

const (
	CommunicationTypeCall    CommunicationType = "call"
	CommunicationTypeEmail   CommunicationType = "email"
	CommunicationTypeVisit   CommunicationType = "visit"
	CommunicationTypeMeeting CommunicationType = "meeting"
)

// IsValid checks if the CommunicationType is a valid enum value
func (ct CommunicationType) IsValid() bool {
	switch ct {
	case CommunicationTypeCall, CommunicationTypeEmail, CommunicationTypeVisit, CommunicationTypeMeeting:
		return true
	}
	return false
}

// Communication represents a logged interaction with a client.
// Like Enquiry it carries both the legacy customer reference and the
// post-migration company reference.
type Communication struct {
	BaseModel
	Type            CommunicationType `gorm:"type:varchar(50);not null;default:'call'"`
	Notes           string            `gorm:"type:text"`
	OccurredAt      time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP;index;column:occurred_at"`
	CompanyID       *uuid.UUID        `gorm:"type:uuid;index;column:company_id"`
	Company         *Company          `gorm:"foreignKey:CompanyID"`
	CustomerID      *uuid.UUID        `gorm:"type:uuid;index;column:customer_id"`
	ContactPersonID *uuid.UUID        `gorm:"type:uuid;index;column:contact_person_id"`
	ContactPerson   *ContactPerson    `gorm:"foreignKey:ContactPersonID"`
	EmployeeID      *uuid.UUID        `gorm:"type:uuid;index;column:employee_id"`
	Employee        *Employee         `gorm:"foreignKey:EmployeeID"`
}

// Document represents an uploaded file attached to an enquiry or quotation
type Document struct {
	BaseModel
	Filename    string     `gorm:"type:varchar(255);not null"`
	ContentType string     `gorm:"type:varchar(100);not null;column:content_type"`
	Size        int64      `gorm:"not null"`
	StoragePath string     `gorm:"type:varchar(500);not null;unique;column:storage_path"`
	EnquiryID   *uuid.UUID `gorm:"type:uuid;index;column:enquiry_id"`
	QuotationID *uuid.UUID `gorm:"type:uuid;index;column:quotation_id"`
}
