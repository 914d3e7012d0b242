package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter_app/internal/dto"
)

// ConversionService provides business logic for conversion history.
type ConversionService struct {
	BaseService
	conversionRepo portsrepo.ConversionRepositoryFacade
}

// NewConversionService creates a new ConversionService.
func NewConversionService(conversionRepo portsrepo.ConversionRepositoryFacade) *ConversionService {
	return &ConversionService{conversionRepo: conversionRepo}
}

// CreateConversion handles persisting a conversion computed by a client.
func (s *ConversionService) CreateConversion(ctx context.Context, req dto.CreateConversionRequest) (*domain.Conversion, error) {
	// Presence is checked by DTO binding tags; repeat it here for callers that bypass binding.
	if req.Amount == nil || req.Result == nil || req.Timestamp == nil || req.TargetCurrency == "" {
		return nil, fmt.Errorf("%w: amount, targetCurrency, result and timestamp are required", apperrors.ErrValidation)
	}
	// Bounds come first: comparing or formatting an unbounded decimal can rescale it to
	// an arbitrarily large integer.
	if err := domain.AmountBounds.Check(*req.Amount); err != nil {
		return nil, fmt.Errorf("%w: amount is %v", apperrors.ErrValidation, err)
	}
	if err := domain.ResultBounds.Check(*req.Result); err != nil {
		return nil, fmt.Errorf("%w: result is %v", apperrors.ErrValidation, err)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.Result.IsNegative() {
		return nil, fmt.Errorf("%w: result cannot be negative", apperrors.ErrValidation)
	}
	if req.Timestamp.IsZero() {
		return nil, fmt.Errorf("%w: timestamp must be set", apperrors.ErrValidation)
	}

	currencyCode := domain.NormalizeCurrencyCode(req.TargetCurrency)
	if !domain.IsSupportedCurrency(currencyCode) {
		return nil, fmt.Errorf("%w: unsupported target currency '%s'", apperrors.ErrValidation, req.TargetCurrency)
	}

	conversion := domain.Conversion{
		Amount:         *req.Amount,
		TargetCurrency: currencyCode,
		Result:         *req.Result,
		Timestamp:      req.Timestamp.UTC(),
	}

	id, err := s.conversionRepo.SaveConversion(ctx, conversion)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversion in service: %w", err)
	}
	conversion.ConversionID = id

	s.LogDebug(ctx, "Conversion persisted",
		slog.Int64("conversion_id", id),
		slog.String("target_currency", currencyCode),
	)
	return &conversion, nil
}

// ListConversions retrieves the full history, newest first.
func (s *ConversionService) ListConversions(ctx context.Context) ([]domain.Conversion, error) {
	conversions, err := s.conversionRepo.ListConversions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions in service: %w", err)
	}
	// Return empty slice if no conversions found, not nil
	if conversions == nil {
		return []domain.Conversion{}, nil
	}
	return conversions, nil
}
