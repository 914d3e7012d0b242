package services

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// SampleItemSvc serves the alternate-variant sample items.
type SampleItemSvc interface {
	ListSampleItems(ctx context.Context) ([]domain.SampleItem, error)
}
