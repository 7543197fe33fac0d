package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/fabrimet/salesops-api/internal/mapper"
	"github.com/fabrimet/salesops-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CommunicationService struct {
	commRepo    *repository.CommunicationRepository
	companyRepo *repository.CompanyRepository
	contactRepo *repository.ContactPersonRepository
	logger      *zap.Logger
}

func NewCommunicationService(
	commRepo *repository.CommunicationRepository,
	companyRepo *repository.CompanyRepository,
	contactRepo *repository.ContactPersonRepository,
	logger *zap.Logger,
) *CommunicationService {
	return &CommunicationService{
		commRepo:    commRepo,
		companyRepo: companyRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (s *CommunicationService) Create(ctx context.Context, req *domain.CreateCommunicationRequest) (*domain.CommunicationDTO, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("invalid communication type %q: %w", req.Type, ErrInvalidInput)
	}

	if req.CompanyID != nil {
		if _, err := s.companyRepo.GetByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, fmt.Errorf("failed to get company: %w", err)
		}
	}

	comm := &domain.Communication{
		Type:            req.Type,
		Notes:           req.Notes,
		OccurredAt:      time.Now().UTC(),
		CompanyID:       req.CompanyID,
		ContactPersonID: req.ContactPersonID,
		EmployeeID:      req.EmployeeID,
	}

	if req.OccurredAt != nil && *req.OccurredAt != "" {
		occurred, err := time.Parse(time.RFC3339, *req.OccurredAt)
		if err != nil {
			return nil, fmt.Errorf("invalid occurredAt %q: %w", *req.OccurredAt, ErrInvalidInput)
		}
		comm.OccurredAt = occurred.UTC()
	}

	if req.ContactPersonID != nil {
		person, err := s.contactRepo.GetByID(ctx, *req.ContactPersonID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get contact person: %w", err)
		}
		// A contact communication always belongs to the contact's company.
		if comm.CompanyID == nil {
			comm.CompanyID = &person.CompanyID
		} else if *comm.CompanyID != person.CompanyID {
			return nil, ErrLocationMismatch
		}
	}

	if err := s.commRepo.Create(ctx, comm); err != nil {
		return nil, fmt.Errorf("failed to create communication: %w", err)
	}

	dto := mapper.ToCommunicationDTO(comm)
	return &dto, nil
}

func (s *CommunicationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CommunicationDTO, error) {
	comm, err := s.commRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get communication: %w", err)
	}

	dto := mapper.ToCommunicationDTO(comm)
	return &dto, nil
}

func (s *CommunicationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.commRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get communication: %w", err)
	}

	if err := s.commRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete communication: %w", err)
	}
	return nil
}

func (s *CommunicationService) List(ctx context.Context, page, pageSize int, commType domain.CommunicationType, companyID *uuid.UUID) (*domain.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}

	if commType != "" && !commType.IsValid() {
		return nil, fmt.Errorf("invalid communication type %q: %w", commType, ErrInvalidInput)
	}

	comms, total, err := s.commRepo.List(ctx, page, pageSize, commType, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list communications: %w", err)
	}

	dtos := make([]domain.CommunicationDTO, 0, len(comms))
	for i := range comms {
		dtos = append(dtos, mapper.ToCommunicationDTO(&comms[i]))
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
