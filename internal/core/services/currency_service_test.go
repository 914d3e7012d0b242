package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyService_GetCurrencyByCode(t *testing.T) {
	svc := services.NewCurrencyService()

	currency, err := svc.GetCurrencyByCode(context.Background(), "gbp")
	require.NoError(t, err)
	assert.Equal(t, "GBP", currency.CurrencyCode)
	assert.Equal(t, "£", currency.Symbol)

	_, err = svc.GetCurrencyByCode(context.Background(), "USD")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCurrencyService_ListCurrenciesReturnsCopy(t *testing.T) {
	svc := services.NewCurrencyService()

	currencies, err := svc.ListCurrencies(context.Background())
	require.NoError(t, err)
	require.Len(t, currencies, len(domain.SupportedCurrencies))

	currencies[0].CurrencyCode = "MUTATED"
	assert.Equal(t, "EUR", domain.SupportedCurrencies[0].CurrencyCode)
}
