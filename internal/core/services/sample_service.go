package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
)

// SampleItemService serves the sample_items table.
type SampleItemService struct {
	sampleRepo portsrepo.SampleItemReader
}

func NewSampleItemService(sampleRepo portsrepo.SampleItemReader) *SampleItemService {
	return &SampleItemService{sampleRepo: sampleRepo}
}

func (s *SampleItemService) ListSampleItems(ctx context.Context) ([]domain.SampleItem, error) {
	items, err := s.sampleRepo.ListSampleItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sample items in service: %w", err)
	}
	if items == nil {
		return []domain.SampleItem{}, nil
	}
	return items, nil
}
