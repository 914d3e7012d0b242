package services

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for the currency catalog
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific supported currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported target currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
