package domain

import "github.com/google/uuid"

// PaginatedResponse wraps list results with pagination metadata
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// CompanyDTO is the API representation of a company
type CompanyDTO struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	POStructures   bool               `json:"poStructures"`
	PORoofing      bool               `json:"poRoofing"`
	POCladding     bool               `json:"poCladding"`
	POMezzanines   bool               `json:"poMezzanines"`
	POServices     bool               `json:"poServices"`
	SupplierNotes  string             `json:"supplierNotes,omitempty"`
	ProblemsFaced  string             `json:"problemsFaced,omitempty"`
	EmployeeID     *uuid.UUID         `json:"employeeId,omitempty"`
	Offices        []OfficeDTO        `json:"offices,omitempty"`
	Plants         []PlantDTO         `json:"plants,omitempty"`
	ContactPersons []ContactPersonDTO `json:"contactPersons,omitempty"`
	CreatedAt      string             `json:"createdAt"`
	UpdatedAt      string             `json:"updatedAt"`
}

// OfficeDTO is the API representation of an office
type OfficeDTO struct {
	ID             uuid.UUID `json:"id"`
	CompanyID      uuid.UUID `json:"companyId"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	PostalCode     string    `json:"postalCode,omitempty"`
	ReceptionPhone string    `json:"receptionPhone,omitempty"`
	IsHeadOffice   bool      `json:"isHeadOffice"`
}

// PlantDTO is the API representation of a plant
type PlantDTO struct {
	ID             uuid.UUID `json:"id"`
	CompanyID      uuid.UUID `json:"companyId"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	PostalCode     string    `json:"postalCode,omitempty"`
	ReceptionPhone string    `json:"receptionPhone,omitempty"`
}

// ContactPersonDTO is the API representation of a contact person
type ContactPersonDTO struct {
	ID          uuid.UUID  `json:"id"`
	CompanyID   uuid.UUID  `json:"companyId"`
	OfficeID    *uuid.UUID `json:"officeId,omitempty"`
	PlantID     *uuid.UUID `json:"plantId,omitempty"`
	Name        string     `json:"name"`
	Designation string     `json:"designation,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	IsPrimary   bool       `json:"isPrimary"`
}

// EnquiryDTO is the API representation of an enquiry
type EnquiryDTO struct {
	ID          uuid.UUID     `json:"id"`
	Subject     string        `json:"subject"`
	Description string        `json:"description,omitempty"`
	Status      EnquiryStatus `json:"status"`
	CompanyID   *uuid.UUID    `json:"companyId,omitempty"`
	CompanyName string        `json:"companyName,omitempty"`
	EmployeeID  *uuid.UUID    `json:"employeeId,omitempty"`
	ReceivedAt  string        `json:"receivedAt"`
	DueDate     string        `json:"dueDate,omitempty"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

// QuotationDTO is the API representation of a quotation
type QuotationDTO struct {
	ID              uuid.UUID          `json:"id"`
	EnquiryID       uuid.UUID          `json:"enquiryId"`
	QuotationNumber string             `json:"quotationNumber,omitempty"`
	Status          QuotationStatus    `json:"status"`
	TotalAmount     float64            `json:"totalAmount"`
	Currency        string             `json:"currency"`
	ValidUntil      string             `json:"validUntil,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	Items           []QuotationItemDTO `json:"items,omitempty"`
	CreatedAt       string             `json:"createdAt"`
	UpdatedAt       string             `json:"updatedAt"`
}

// QuotationItemDTO is the API representation of a quotation line item
type QuotationItemDTO struct {
	ID          uuid.UUID `json:"id"`
	QuotationID uuid.UUID `json:"quotationId"`
	Description string    `json:"description"`
	Quantity    string    `json:"quantity,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Rate        float64   `json:"rate"`
}

// CommunicationDTO is the API representation of a communication
type CommunicationDTO struct {
	ID              uuid.UUID         `json:"id"`
	Type            CommunicationType `json:"type"`
	Notes           string            `json:"notes,omitempty"`
	OccurredAt      string            `json:"occurredAt"`
	CompanyID       *uuid.UUID        `json:"companyId,omitempty"`
	ContactPersonID *uuid.UUID        `json:"contactPersonId,omitempty"`
	EmployeeID      *uuid.UUID        `json:"employeeId,omitempty"`
	CreatedAt       string            `json:"createdAt"`
}

// EmployeeDTO is the API representation of an employee
type EmployeeDTO struct {
	ID       uuid.UUID    `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email,omitempty"`
	Phone    string       `json:"phone,omitempty"`
	Role     EmployeeRole `json:"role"`
	IsActive bool         `json:"isActive"`
}

// DocumentDTO is the API representation of stored document metadata
type DocumentDTO struct {
	ID          uuid.UUID  `json:"id"`
	Filename    string     `json:"filename"`
	ContentType string     `json:"contentType"`
	Size        int64      `json:"size"`
	EnquiryID   *uuid.UUID `json:"enquiryId,omitempty"`
	QuotationID *uuid.UUID `json:"quotationId,omitempty"`
	CreatedAt   string     `json:"createdAt"`
}

// DashboardMetrics aggregates entity counts for the dashboard
type DashboardMetrics struct {
	Companies       int64            `json:"companies"`
	Offices         int64            `json:"offices"`
	Plants          int64            `json:"plants"`
	ContactPersons  int64            `json:"contactPersons"`
	Enquiries       int64            `json:"enquiries"`
	Quotations      int64            `json:"quotations"`
	Communications  int64            `json:"communications"`
	EnquiriesByStatus map[string]int64 `json:"enquiriesByStatus"`
}

// CreateCompanyRequest is the payload for creating a company
type CreateCompanyRequest struct {
	Name          string     `json:"name" validate:"required,max=200"`
	POStructures  bool       `json:"poStructures"`
	PORoofing     bool       `json:"poRoofing"`
	POCladding    bool       `json:"poCladding"`
	POMezzanines  bool       `json:"poMezzanines"`
	POServices    bool       `json:"poServices"`
	SupplierNotes string     `json:"supplierNotes" validate:"max=5000"`
	ProblemsFaced string     `json:"problemsFaced" validate:"max=5000"`
	EmployeeID    *uuid.UUID `json:"employeeId"`
}

// UpdateCompanyRequest is the payload for updating a company
type UpdateCompanyRequest struct {
	Name          string     `json:"name" validate:"required,max=200"`
	POStructures  bool       `json:"poStructures"`
	PORoofing     bool       `json:"poRoofing"`
	POCladding    bool       `json:"poCladding"`
	POMezzanines  bool       `json:"poMezzanines"`
	POServices    bool       `json:"poServices"`
	SupplierNotes string     `json:"supplierNotes" validate:"max=5000"`
	ProblemsFaced string     `json:"problemsFaced" validate:"max=5000"`
	EmployeeID    *uuid.UUID `json:"employeeId"`
}

// CreateOfficeRequest is the payload for adding an office to a company
type CreateOfficeRequest struct {
	Address        string `json:"address" validate:"max=500"`
	City           string `json:"city" validate:"max=100"`
	State          string `json:"state" validate:"max=100"`
	PostalCode     string `json:"postalCode" validate:"max=20"`
	ReceptionPhone string `json:"receptionPhone" validate:"max=50"`
	IsHeadOffice   bool   `json:"isHeadOffice"`
}

// CreatePlantRequest is the payload for adding a plant to a company
type CreatePlantRequest struct {
	Address        string `json:"address" validate:"max=500"`
	City           string `json:"city" validate:"max=100"`
	State          string `json:"state" validate:"max=100"`
	PostalCode     string `json:"postalCode" validate:"max=20"`
	ReceptionPhone string `json:"receptionPhone" validate:"max=50"`
}

// CreateContactPersonRequest is the payload for adding a contact person.
// At most one of OfficeID and PlantID may be set.
type CreateContactPersonRequest struct {
	OfficeID    *uuid.UUID `json:"officeId"`
	PlantID     *uuid.UUID `json:"plantId"`
	Name        string     `json:"name" validate:"required,max=200"`
	Designation string     `json:"designation" validate:"max=100"`
	Phone       string     `json:"phone" validate:"max=50"`
	Email       string     `json:"email" validate:"omitempty,email"`
	IsPrimary   bool       `json:"isPrimary"`
}

// CreateEnquiryRequest is the payload for creating an enquiry
type CreateEnquiryRequest struct {
	Subject     string     `json:"subject" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=5000"`
	CompanyID   *uuid.UUID `json:"companyId"`
	EmployeeID  *uuid.UUID `json:"employeeId"`
	DueDate     *string    `json:"dueDate"`
}

// UpdateEnquiryRequest is the payload for updating an enquiry
type UpdateEnquiryRequest struct {
	Subject     string        `json:"subject" validate:"required,max=200"`
	Description string        `json:"description" validate:"max=5000"`
	Status      EnquiryStatus `json:"status" validate:"required,oneof=open quoted won lost cancelled"`
	EmployeeID  *uuid.UUID    `json:"employeeId"`
}

// CreateQuotationRequest is the payload for creating a quotation
type CreateQuotationRequest struct {
	EnquiryID       uuid.UUID `json:"enquiryId" validate:"required"`
	QuotationNumber string    `json:"quotationNumber" validate:"max=50"`
	Currency        string    `json:"currency" validate:"omitempty,len=3"`
	Notes           string    `json:"notes" validate:"max=5000"`
}

// AddQuotationItemRequest is the payload for adding a line item
type AddQuotationItemRequest struct {
	Description string  `json:"description" validate:"required,max=500"`
	Quantity    string  `json:"quantity" validate:"max=50"`
	Unit        string  `json:"unit" validate:"max=50"`
	Rate        float64 `json:"rate" validate:"gte=0"`
}

// CreateCommunicationRequest is the payload for logging a communication
type CreateCommunicationRequest struct {
	Type            CommunicationType `json:"type" validate:"required,oneof=call email visit meeting"`
	Notes           string            `json:"notes" validate:"max=5000"`
	CompanyID       *uuid.UUID        `json:"companyId"`
	ContactPersonID *uuid.UUID        `json:"contactPersonId"`
	EmployeeID      *uuid.UUID        `json:"employeeId"`
	OccurredAt      *string           `json:"occurredAt"`
}
