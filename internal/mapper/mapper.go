// Package mapper converts domain models to their API representations.
package mapper

import (
	"time"

	"github.com/fabrimet/salesops-api/internal/domain"
)

const timeFormat = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func ToCompanyDTO(company *domain.Company) domain.CompanyDTO {
	dto := domain.CompanyDTO{
		ID:            company.ID,
		Name:          company.Name,
		POStructures:  company.POStructures,
		PORoofing:     company.PORoofing,
		POCladding:    company.POCladding,
		POMezzanines:  company.POMezzanines,
		POServices:    company.POServices,
		SupplierNotes: company.SupplierNotes,
		ProblemsFaced: company.ProblemsFaced,
		EmployeeID:    company.EmployeeID,
		CreatedAt:     formatTime(company.CreatedAt),
		UpdatedAt:     formatTime(company.UpdatedAt),
	}
	for i := range company.Offices {
		dto.Offices = append(dto.Offices, ToOfficeDTO(&company.Offices[i]))
	}
	for i := range company.Plants {
		dto.Plants = append(dto.Plants, ToPlantDTO(&company.Plants[i]))
	}
	for i := range company.ContactPersons {
		dto.ContactPersons = append(dto.ContactPersons, ToContactPersonDTO(&company.ContactPersons[i]))
	}
	return dto
}

func ToOfficeDTO(office *domain.Office) domain.OfficeDTO {
	return domain.OfficeDTO{
		ID:             office.ID,
		CompanyID:      office.CompanyID,
		Address:        office.Address,
		City:           office.City,
		State:          office.State,
		PostalCode:     office.PostalCode,
		ReceptionPhone: office.ReceptionPhone,
		IsHeadOffice:   office.IsHeadOffice,
	}
}

func ToPlantDTO(plant *domain.Plant) domain.PlantDTO {
	return domain.PlantDTO{
		ID:             plant.ID,
		CompanyID:      plant.CompanyID,
		Address:        plant.Address,
		City:           plant.City,
		State:          plant.State,
		PostalCode:     plant.PostalCode,
		ReceptionPhone: plant.ReceptionPhone,
	}
}

func ToContactPersonDTO(person *domain.ContactPerson) domain.ContactPersonDTO {
	return domain.ContactPersonDTO{
		ID:          person.ID,
		CompanyID:   person.CompanyID,
		OfficeID:    person.OfficeID,
		PlantID:     person.PlantID,
		Name:        person.Name,
		Designation: person.Designation,
		Phone:       person.Phone,
		Email:       person.Email,
		IsPrimary:   person.IsPrimary,
	}
}

func ToEnquiryDTO(enquiry *domain.Enquiry) domain.EnquiryDTO {
	dto := domain.EnquiryDTO{
		ID:          enquiry.ID,
		Subject:     enquiry.Subject,
		Description: enquiry.Description,
		Status:      enquiry.Status,
		CompanyID:   enquiry.CompanyID,
		EmployeeID:  enquiry.EmployeeID,
		ReceivedAt:  formatTime(enquiry.ReceivedAt),
		DueDate:     formatTimePtr(enquiry.DueDate),
		CreatedAt:   formatTime(enquiry.CreatedAt),
		UpdatedAt:   formatTime(enquiry.UpdatedAt),
	}
	if enquiry.Company != nil {
		dto.CompanyName = enquiry.Company.Name
	}
	return dto
}

func ToQuotationDTO(quotation *domain.Quotation) domain.QuotationDTO {
	dto := domain.QuotationDTO{
		ID:              quotation.ID,
		EnquiryID:       quotation.EnquiryID,
		QuotationNumber: quotation.QuotationNumber,
		Status:          quotation.Status,
		TotalAmount:     quotation.TotalAmount,
		Currency:        quotation.Currency,
		ValidUntil:      formatTimePtr(quotation.ValidUntil),
		Notes:           quotation.Notes,
		CreatedAt:       formatTime(quotation.CreatedAt),
		UpdatedAt:       formatTime(quotation.UpdatedAt),
	}
	for i := range quotation.Items {
		dto.Items = append(dto.Items, ToQuotationItemDTO(&quotation.Items[i]))
	}
	return dto
}

func ToQuotationItemDTO(item *domain.QuotationItem) domain.QuotationItemDTO {
	return domain.QuotationItemDTO{
		ID:          item.ID,
		QuotationID: item.QuotationID,
		Description: item.Description,
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		Rate:        item.Rate,
	}
}

func ToEmployeeDTO(employee *domain.Employee) domain.EmployeeDTO {
	return domain.EmployeeDTO{
		ID:       employee.ID,
		Name:     employee.Name,
		Email:    employee.Email,
		Phone:    employee.Phone,
		Role:     employee.Role,
		IsActive: employee.IsActive,
	}
}

func ToDocumentDTO(doc *domain.Document) domain.DocumentDTO {
	return domain.DocumentDTO{
		ID:          doc.ID,
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		Size:        doc.Size,
		EnquiryID:   doc.EnquiryID,
		QuotationID: doc.QuotationID,
		CreatedAt:   formatTime(doc.CreatedAt),
	}
}

func ToCommunicationDTO(comm *domain.Communication) domain.CommunicationDTO {
	return domain.CommunicationDTO{
		ID:              comm.ID,
		Type:            comm.Type,
		Notes:           comm.Notes,
		OccurredAt:      formatTime(comm.OccurredAt),
		CompanyID:       comm.CompanyID,
		ContactPersonID: comm.ContactPersonID,
		EmployeeID:      comm.EmployeeID,
		CreatedAt:       formatTime(comm.CreatedAt),
	}
}
