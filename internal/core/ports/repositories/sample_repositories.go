package repositories

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// SampleItemReader reads the sample_items table.
type SampleItemReader interface {
	ListSampleItems(ctx context.Context) ([]domain.SampleItem, error)
}
