package service

import (
	"context"
	"fmt"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/fabrimet/salesops-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DashboardService struct {
	db            *gorm.DB
	companyRepo   *repository.CompanyRepository
	enquiryRepo   *repository.EnquiryRepository
	quotationRepo *repository.QuotationRepository
	commRepo      *repository.CommunicationRepository
	logger        *zap.Logger
}

func NewDashboardService(
	db *gorm.DB,
	companyRepo *repository.CompanyRepository,
	enquiryRepo *repository.EnquiryRepository,
	quotationRepo *repository.QuotationRepository,
	commRepo *repository.CommunicationRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		db:            db,
		companyRepo:   companyRepo,
		enquiryRepo:   enquiryRepo,
		quotationRepo: quotationRepo,
		commRepo:      commRepo,
		logger:        logger,
	}
}

// GetMetrics collects entity counts for the dashboard overview.
func (s *DashboardService) GetMetrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	metrics := &domain.DashboardMetrics{
		EnquiriesByStatus: make(map[string]int64),
	}

	companies, err := s.companyRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count companies: %w", err)
	}
	metrics.Companies = int64(companies)

	if err := s.db.WithContext(ctx).Model(&domain.Office{}).Count(&metrics.Offices).Error; err != nil {
		return nil, fmt.Errorf("failed to count offices: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&domain.Plant{}).Count(&metrics.Plants).Error; err != nil {
		return nil, fmt.Errorf("failed to count plants: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&domain.ContactPerson{}).Count(&metrics.ContactPersons).Error; err != nil {
		return nil, fmt.Errorf("failed to count contact persons: %w", err)
	}

	enquiries, err := s.enquiryRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count enquiries: %w", err)
	}
	metrics.Enquiries = int64(enquiries)

	quotations, err := s.quotationRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count quotations: %w", err)
	}
	metrics.Quotations = int64(quotations)

	communications, err := s.commRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count communications: %w", err)
	}
	metrics.Communications = int64(communications)

	for _, status := range []domain.EnquiryStatus{
		domain.EnquiryStatusOpen,
		domain.EnquiryStatusQuoted,
		domain.EnquiryStatusWon,
		domain.EnquiryStatusLost,
		domain.EnquiryStatusCancelled,
	} {
		count, err := s.enquiryRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("failed to count enquiries by status: %w", err)
		}
		metrics.EnquiriesByStatus[string(status)] = int64(count)
	}

	return metrics, nil
}
