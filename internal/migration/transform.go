package migration

import (
	"strings"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/google/uuid"
)

// ConvertOptions controls identity handling during conversion
type ConvertOptions struct {
	// PreserveIDs reuses the legacy row IDs for the converted rows so that
	// restore can be re-run idempotently. The schema migrator leaves it
	// false and mints fresh identities.
	PreserveIDs bool
}

// ConversionResult is the new-schema rendering of one legacy customer
type ConversionResult struct {
	Company        domain.Company
	Offices        []domain.Office
	Plants         []domain.Plant
	ContactPersons []domain.ContactPerson
	// SynthesizedMainOffice is true when the customer had contacts but no
	// office to attach them to, and a placeholder "Main Office" was created
	SynthesizedMainOffice bool
}

// ConvertCustomer converts one legacy customer with its locations and
// contacts into the Company/Office/Plant/ContactPerson shape. It is a pure
// function shared by the schema migrator and both restore paths.
//
// Rules:
//   - the first OFFICE location, in input order, becomes the head office;
//   - the legacy plant type text has no new-schema equivalent and is dropped;
//   - contact phone numbers merge with the official cell preferred;
//   - contacts attached directly to the customer go to the first office;
//     when no office exists at all, a placeholder "Main Office" is
//     synthesized so no contact is dropped;
//   - the first contact converted for a company is flagged primary.
func ConvertCustomer(customer domain.LegacyCustomer, locations []domain.LegacyLocation, contacts []domain.LegacyContact, opts ConvertOptions) ConversionResult {
	res := ConversionResult{
		Company: domain.Company{
			Name:          customer.Name,
			POStructures:  customer.POStructures,
			PORoofing:     customer.PORoofing,
			POCladding:    customer.POCladding,
			POMezzanines:  customer.POMezzanines,
			POServices:    customer.POServices,
			SupplierNotes: customer.SupplierNotes,
			ProblemsFaced: customer.ProblemsFaced,
			EmployeeID:    customer.EmployeeID,
		},
	}
	res.Company.ID = mintID(customer.ID, opts)

	type locationTarget struct {
		officeID *uuid.UUID
		plantID  *uuid.UUID
	}
	targets := make(map[uuid.UUID]locationTarget, len(locations))

	for _, loc := range locations {
		switch loc.LocationType {
		case domain.LocationTypeOffice:
			office := domain.Office{
				CompanyID:      res.Company.ID,
				Address:        loc.Address,
				City:           loc.City,
				State:          loc.State,
				PostalCode:     loc.PostalCode,
				ReceptionPhone: loc.ReceptionPhone,
				IsHeadOffice:   len(res.Offices) == 0,
			}
			office.ID = mintID(loc.ID, opts)
			res.Offices = append(res.Offices, office)
			id := office.ID
			targets[loc.ID] = locationTarget{officeID: &id}

		case domain.LocationTypePlant:
			plant := domain.Plant{
				CompanyID:      res.Company.ID,
				Address:        loc.Address,
				City:           loc.City,
				State:          loc.State,
				PostalCode:     loc.PostalCode,
				ReceptionPhone: loc.ReceptionPhone,
			}
			plant.ID = mintID(loc.ID, opts)
			res.Plants = append(res.Plants, plant)
			id := plant.ID
			targets[loc.ID] = locationTarget{plantID: &id}
		}
	}

	for _, contact := range contacts {
		person := domain.ContactPerson{
			CompanyID:   res.Company.ID,
			Name:        contact.Name,
			Designation: contact.Designation,
			Phone:       MergePhone(contact.OfficialCell, contact.PersonalCell),
			IsPrimary:   len(res.ContactPersons) == 0,
		}
		person.ID = mintID(contact.ID, opts)

		if contact.LocationID != nil {
			if target, ok := targets[*contact.LocationID]; ok {
				person.OfficeID = target.officeID
				person.PlantID = target.plantID
			}
			// A dangling location reference leaves the person attached to
			// the company only.
		} else {
			officeID := res.firstOfficeID()
			if officeID == nil {
				officeID = res.synthesizeMainOffice(opts)
			}
			person.OfficeID = officeID
		}

		res.ContactPersons = append(res.ContactPersons, person)
	}

	return res
}

// MergePhone collapses the two legacy cell number fields into one,
// preferring the official number
func MergePhone(officialCell, personalCell string) string {
	if s := strings.TrimSpace(officialCell); s != "" {
		return s
	}
	return strings.TrimSpace(personalCell)
}

func (r *ConversionResult) firstOfficeID() *uuid.UUID {
	if len(r.Offices) == 0 {
		return nil
	}
	id := r.Offices[0].ID
	return &id
}

func (r *ConversionResult) synthesizeMainOffice(opts ConvertOptions) *uuid.UUID {
	office := domain.Office{
		CompanyID:    r.Company.ID,
		Address:      "Main Office",
		IsHeadOffice: true,
	}
	if opts.PreserveIDs {
		// The placeholder has no legacy row to take an ID from; derive one
		// from the company so re-running a restore upserts the same office
		// instead of minting a second placeholder.
		office.ID = uuid.NewSHA1(r.Company.ID, []byte("main-office"))
	} else {
		office.ID = uuid.New()
	}
	r.Offices = append(r.Offices, office)
	r.SynthesizedMainOffice = true
	id := office.ID
	return &id
}

func mintID(legacyID uuid.UUID, opts ConvertOptions) uuid.UUID {
	if opts.PreserveIDs && legacyID != uuid.Nil {
		return legacyID
	}
	return uuid.New()
}
