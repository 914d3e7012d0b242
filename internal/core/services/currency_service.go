package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// CurrencyService serves the fixed catalog of supported target currencies.
type CurrencyService struct{}

func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, ok := domain.FindCurrency(domain.NormalizeCurrencyCode(currencyCode))
	if !ok {
		return nil, fmt.Errorf("%w: currency '%s' is not supported", apperrors.ErrNotFound, currencyCode)
	}
	return &currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies := make([]domain.Currency, len(domain.SupportedCurrencies))
	copy(currencies, domain.SupportedCurrencies)
	return currencies, nil
}
