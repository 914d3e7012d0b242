package services

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/dto"
)

// ConversionReaderSvc defines read operations for conversion history
type ConversionReaderSvc interface {
	// ListConversions retrieves the full history, newest first.
	ListConversions(ctx context.Context) ([]domain.Conversion, error)
}

// ConversionWriterSvc defines write operations for conversion history
type ConversionWriterSvc interface {
	// CreateConversion validates and persists a conversion computed by a client.
	CreateConversion(ctx context.Context, req dto.CreateConversionRequest) (*domain.Conversion, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	ConversionReaderSvc
	ConversionWriterSvc
}
