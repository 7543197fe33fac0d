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

type EnquiryService struct {
	enquiryRepo *repository.EnquiryRepository
	companyRepo *repository.CompanyRepository
	logger      *zap.Logger
}

func NewEnquiryService(
	enquiryRepo *repository.EnquiryRepository,
	companyRepo *repository.CompanyRepository,
	logger *zap.Logger,
) *EnquiryService {
	return &EnquiryService{
		enquiryRepo: enquiryRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (s *EnquiryService) Create(ctx context.Context, req *domain.CreateEnquiryRequest) (*domain.EnquiryDTO, error) {
	if req.CompanyID != nil {
		if _, err := s.companyRepo.GetByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, fmt.Errorf("failed to get company: %w", err)
		}
	}

	enquiry := &domain.Enquiry{
		Subject:     req.Subject,
		Description: req.Description,
		Status:      domain.EnquiryStatusOpen,
		CompanyID:   req.CompanyID,
		EmployeeID:  req.EmployeeID,
		ReceivedAt:  time.Now().UTC(),
	}

	if req.DueDate != nil && *req.DueDate != "" {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due date %q: %w", *req.DueDate, ErrInvalidInput)
		}
		enquiry.DueDate = &due
	}

	if err := s.enquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("failed to create enquiry: %w", err)
	}

	s.logger.Info("enquiry created",
		zap.String("enquiry_id", enquiry.ID.String()),
		zap.String("subject", enquiry.Subject))

	dto := mapper.ToEnquiryDTO(enquiry)
	return &dto, nil
}

func (s *EnquiryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.EnquiryDTO, error) {
	enquiry, err := s.enquiryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("failed to get enquiry: %w", err)
	}

	dto := mapper.ToEnquiryDTO(enquiry)
	return &dto, nil
}

func (s *EnquiryService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateEnquiryRequest) (*domain.EnquiryDTO, error) {
	enquiry, err := s.enquiryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("failed to get enquiry: %w", err)
	}

	if !req.Status.IsValid() {
		return nil, fmt.Errorf("invalid status %q: %w", req.Status, ErrInvalidInput)
	}

	enquiry.Subject = req.Subject
	enquiry.Description = req.Description
	enquiry.Status = req.Status
	enquiry.EmployeeID = req.EmployeeID

	if err := s.enquiryRepo.Update(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("failed to update enquiry: %w", err)
	}

	dto := mapper.ToEnquiryDTO(enquiry)
	return &dto, nil
}

func (s *EnquiryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.enquiryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEnquiryNotFound
		}
		return fmt.Errorf("failed to get enquiry: %w", err)
	}

	if err := s.enquiryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete enquiry: %w", err)
	}
	return nil
}

func (s *EnquiryService) List(ctx context.Context, page, pageSize int, search string, status domain.EnquiryStatus, companyID *uuid.UUID) (*domain.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}

	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("invalid status %q: %w", status, ErrInvalidInput)
	}

	enquiries, total, err := s.enquiryRepo.List(ctx, page, pageSize, search, status, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}

	dtos := make([]domain.EnquiryDTO, 0, len(enquiries))
	for i := range enquiries {
		dtos = append(dtos, mapper.ToEnquiryDTO(&enquiries[i]))
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
