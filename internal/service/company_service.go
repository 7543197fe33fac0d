package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/fabrimet/salesops-api/internal/mapper"
	"github.com/fabrimet/salesops-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompanyService struct {
	companyRepo *repository.CompanyRepository
	officeRepo  *repository.OfficeRepository
	plantRepo   *repository.PlantRepository
	contactRepo *repository.ContactPersonRepository
	logger      *zap.Logger
}

func NewCompanyService(
	companyRepo *repository.CompanyRepository,
	officeRepo *repository.OfficeRepository,
	plantRepo *repository.PlantRepository,
	contactRepo *repository.ContactPersonRepository,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		officeRepo:  officeRepo,
		plantRepo:   plantRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (s *CompanyService) Create(ctx context.Context, req *domain.CreateCompanyRequest) (*domain.CompanyDTO, error) {
	if existing, err := s.companyRepo.GetByName(ctx, req.Name); err == nil && existing != nil {
		return nil, fmt.Errorf("company %q: %w", req.Name, ErrConflict)
	}

	company := &domain.Company{
		Name:          req.Name,
		POStructures:  req.POStructures,
		PORoofing:     req.PORoofing,
		POCladding:    req.POCladding,
		POMezzanines:  req.POMezzanines,
		POServices:    req.POServices,
		SupplierNotes: req.SupplierNotes,
		ProblemsFaced: req.ProblemsFaced,
		EmployeeID:    req.EmployeeID,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	s.logger.Info("company created",
		zap.String("company_id", company.ID.String()),
		zap.String("name", company.Name))

	dto := mapper.ToCompanyDTO(company)
	return &dto, nil
}

func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CompanyDTO, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	dto := mapper.ToCompanyDTO(company)
	return &dto, nil
}

func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCompanyRequest) (*domain.CompanyDTO, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	company.Name = req.Name
	company.POStructures = req.POStructures
	company.PORoofing = req.PORoofing
	company.POCladding = req.POCladding
	company.POMezzanines = req.POMezzanines
	company.POServices = req.POServices
	company.SupplierNotes = req.SupplierNotes
	company.ProblemsFaced = req.ProblemsFaced
	company.EmployeeID = req.EmployeeID

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	dto := mapper.ToCompanyDTO(company)
	return &dto, nil
}

func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.companyRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("failed to get company: %w", err)
	}

	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	s.logger.Info("company deleted", zap.String("company_id", id.String()))
	return nil
}

func (s *CompanyService) List(ctx context.Context, page, pageSize int, search string) (*domain.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}

	companies, total, err := s.companyRepo.List(ctx, page, pageSize, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	dtos := make([]domain.CompanyDTO, 0, len(companies))
	for i := range companies {
		dtos = append(dtos, mapper.ToCompanyDTO(&companies[i]))
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *CompanyService) AddOffice(ctx context.Context, companyID uuid.UUID, req *domain.CreateOfficeRequest) (*domain.OfficeDTO, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	office := &domain.Office{
		CompanyID:      companyID,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		PostalCode:     req.PostalCode,
		ReceptionPhone: req.ReceptionPhone,
		IsHeadOffice:   req.IsHeadOffice,
	}
	if err := s.officeRepo.Create(ctx, office); err != nil {
		return nil, fmt.Errorf("failed to create office: %w", err)
	}

	dto := mapper.ToOfficeDTO(office)
	return &dto, nil
}

func (s *CompanyService) AddPlant(ctx context.Context, companyID uuid.UUID, req *domain.CreatePlantRequest) (*domain.PlantDTO, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	plant := &domain.Plant{
		CompanyID:      companyID,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		PostalCode:     req.PostalCode,
		ReceptionPhone: req.ReceptionPhone,
	}
	if err := s.plantRepo.Create(ctx, plant); err != nil {
		return nil, fmt.Errorf("failed to create plant: %w", err)
	}

	dto := mapper.ToPlantDTO(plant)
	return &dto, nil
}

// AddContactPerson attaches a contact to a company and optionally to one
// of its offices or plants. The referenced location must belong to the
// same company.
func (s *CompanyService) AddContactPerson(ctx context.Context, companyID uuid.UUID, req *domain.CreateContactPersonRequest) (*domain.ContactPersonDTO, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	if req.OfficeID != nil && req.PlantID != nil {
		return nil, fmt.Errorf("contact may reference an office or a plant, not both: %w", ErrInvalidInput)
	}
	if req.OfficeID != nil {
		office, err := s.officeRepo.GetByID(ctx, *req.OfficeID)
		if err != nil {
			return nil, fmt.Errorf("failed to get office: %w", err)
		}
		if office.CompanyID != companyID {
			return nil, ErrLocationMismatch
		}
	}
	if req.PlantID != nil {
		plant, err := s.plantRepo.GetByID(ctx, *req.PlantID)
		if err != nil {
			return nil, fmt.Errorf("failed to get plant: %w", err)
		}
		if plant.CompanyID != companyID {
			return nil, ErrLocationMismatch
		}
	}

	person := &domain.ContactPerson{
		CompanyID:   companyID,
		OfficeID:    req.OfficeID,
		PlantID:     req.PlantID,
		Name:        req.Name,
		Designation: req.Designation,
		Phone:       req.Phone,
		Email:       req.Email,
		IsPrimary:   req.IsPrimary,
	}
	if err := s.contactRepo.Create(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to create contact person: %w", err)
	}

	if req.IsPrimary {
		if err := s.contactRepo.SetPrimary(ctx, companyID, person.ID); err != nil {
			return nil, fmt.Errorf("failed to set primary contact: %w", err)
		}
	}

	dto := mapper.ToContactPersonDTO(person)
	return &dto, nil
}
