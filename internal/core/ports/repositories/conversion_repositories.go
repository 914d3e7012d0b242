package repositories

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// ConversionReader defines read operations for conversion history
type ConversionReader interface {
	// ListConversions returns every conversion, newest timestamp first. It returns an
	// empty slice, never nil, when the table is empty.
	ListConversions(ctx context.Context) ([]domain.Conversion, error)
}

// ConversionWriter defines write operations for conversion history.
// There is deliberately no update or delete: the table is an append-only log.
type ConversionWriter interface {
	// SaveConversion appends a row and returns its assigned identifier.
	SaveConversion(ctx context.Context, conversion domain.Conversion) (int64, error)
}

// ConversionRepositoryFacade combines all conversion-related repository interfaces
type ConversionRepositoryFacade interface {
	ConversionReader
	ConversionWriter
}
