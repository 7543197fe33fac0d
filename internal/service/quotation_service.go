package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/fabrimet/salesops-api/internal/mapper"
	"github.com/fabrimet/salesops-api/internal/migration"
	"github.com/fabrimet/salesops-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuotationService struct {
	quotationRepo *repository.QuotationRepository
	enquiryRepo   *repository.EnquiryRepository
	logger        *zap.Logger
}

func NewQuotationService(
	quotationRepo *repository.QuotationRepository,
	enquiryRepo *repository.EnquiryRepository,
	logger *zap.Logger,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		enquiryRepo:   enquiryRepo,
		logger:        logger,
	}
}

func (s *QuotationService) Create(ctx context.Context, req *domain.CreateQuotationRequest) (*domain.QuotationDTO, error) {
	enquiry, err := s.enquiryRepo.GetByID(ctx, req.EnquiryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("failed to get enquiry: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	quotation := &domain.Quotation{
		EnquiryID:       enquiry.ID,
		QuotationNumber: req.QuotationNumber,
		Status:          domain.QuotationStatusDraft,
		Currency:        currency,
		Notes:           req.Notes,
	}

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, fmt.Errorf("failed to create quotation: %w", err)
	}

	// An enquiry with a quotation moves to quoted unless already resolved.
	if enquiry.Status == domain.EnquiryStatusOpen {
		enquiry.Status = domain.EnquiryStatusQuoted
		if err := s.enquiryRepo.Update(ctx, enquiry); err != nil {
			return nil, fmt.Errorf("failed to update enquiry status: %w", err)
		}
	}

	s.logger.Info("quotation created",
		zap.String("quotation_id", quotation.ID.String()),
		zap.String("enquiry_id", enquiry.ID.String()))

	dto := mapper.ToQuotationDTO(quotation)
	return &dto, nil
}

func (s *QuotationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.QuotationDTO, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}

	dto := mapper.ToQuotationDTO(quotation)
	return &dto, nil
}

// AddItem appends a line item and recalculates the quotation total.
// The quantity is normalized before storage so drifted decimal text like
// "4.000000000000000000000000000000" never enters through the API.
func (s *QuotationService) AddItem(ctx context.Context, quotationID uuid.UUID, req *domain.AddQuotationItemRequest) (*domain.QuotationDTO, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, quotationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}

	quantity := req.Quantity
	if normalized := migration.NormalizeDecimalText(quantity); normalized != nil {
		quantity = *normalized
	}

	item := domain.QuotationItem{
		QuotationID: quotation.ID,
		Description: req.Description,
		Quantity:    quantity,
		Unit:        req.Unit,
		Rate:        req.Rate,
	}
	if err := s.quotationRepo.AddItem(ctx, &item); err != nil {
		return nil, fmt.Errorf("failed to add quotation item: %w", err)
	}

	quotation.Items = append(quotation.Items, item)
	quotation.TotalAmount = totalAmount(quotation.Items)
	if err := s.quotationRepo.UpdateTotal(ctx, quotation.ID, quotation.TotalAmount); err != nil {
		return nil, fmt.Errorf("failed to update quotation total: %w", err)
	}

	dto := mapper.ToQuotationDTO(quotation)
	return &dto, nil
}

func (s *QuotationService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.QuotationStatus) (*domain.QuotationDTO, error) {
	switch status {
	case domain.QuotationStatusDraft, domain.QuotationStatusSent, domain.QuotationStatusAccepted, domain.QuotationStatusRejected:
	default:
		return nil, fmt.Errorf("invalid status %q: %w", status, ErrInvalidInput)
	}

	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}

	quotation.Status = status
	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, fmt.Errorf("failed to update quotation: %w", err)
	}

	// Accepting a quotation wins the enquiry.
	if status == domain.QuotationStatusAccepted {
		enquiry, err := s.enquiryRepo.GetByID(ctx, quotation.EnquiryID)
		if err == nil {
			enquiry.Status = domain.EnquiryStatusWon
			if err := s.enquiryRepo.Update(ctx, enquiry); err != nil {
				return nil, fmt.Errorf("failed to update enquiry status: %w", err)
			}
		}
	}

	dto := mapper.ToQuotationDTO(quotation)
	return &dto, nil
}

func (s *QuotationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.quotationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get quotation: %w", err)
	}

	if err := s.quotationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete quotation: %w", err)
	}
	return nil
}

func (s *QuotationService) ListByEnquiry(ctx context.Context, enquiryID uuid.UUID) ([]domain.QuotationDTO, error) {
	quotations, err := s.quotationRepo.ListByEnquiry(ctx, enquiryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}

	dtos := make([]domain.QuotationDTO, 0, len(quotations))
	for i := range quotations {
		dtos = append(dtos, mapper.ToQuotationDTO(&quotations[i]))
	}
	return dtos, nil
}

func totalAmount(items []domain.QuotationItem) float64 {
	total := 0.0
	for _, item := range items {
		qty := migration.ParseQuantity(item.Quantity)
		total += qty * item.Rate
	}
	return total
}
