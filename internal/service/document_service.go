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

// DocumentService lists document metadata attached to enquiries and
// quotations. The files themselves live outside the database; restored
// snapshots carry only the metadata rows.
type DocumentService struct {
	documentRepo  *repository.DocumentRepository
	enquiryRepo   *repository.EnquiryRepository
	quotationRepo *repository.QuotationRepository
	logger        *zap.Logger
}

func NewDocumentService(
	documentRepo *repository.DocumentRepository,
	enquiryRepo *repository.EnquiryRepository,
	quotationRepo *repository.QuotationRepository,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		documentRepo:  documentRepo,
		enquiryRepo:   enquiryRepo,
		quotationRepo: quotationRepo,
		logger:        logger,
	}
}

func (s *DocumentService) ListByEnquiry(ctx context.Context, enquiryID uuid.UUID) ([]domain.DocumentDTO, error) {
	if _, err := s.enquiryRepo.GetByID(ctx, enquiryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("failed to get enquiry: %w", err)
	}

	docs, err := s.documentRepo.ListByEnquiry(ctx, enquiryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiry documents: %w", err)
	}
	return toDocumentDTOs(docs), nil
}

func (s *DocumentService) ListByQuotation(ctx context.Context, quotationID uuid.UUID) ([]domain.DocumentDTO, error) {
	if _, err := s.quotationRepo.GetByID(ctx, quotationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}

	docs, err := s.documentRepo.ListByQuotation(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotation documents: %w", err)
	}
	return toDocumentDTOs(docs), nil
}

func toDocumentDTOs(docs []domain.Document) []domain.DocumentDTO {
	dtos := make([]domain.DocumentDTO, 0, len(docs))
	for i := range docs {
		dtos = append(dtos, mapper.ToDocumentDTO(&docs[i]))
	}
	return dtos
}
