package domain_test

import (
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsSupportedCurrency(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "euro", code: "EUR", want: true},
		{name: "yen", code: "JPY", want: true},
		{name: "base currency is not a target", code: "USD", want: false},
		{name: "lower case is not normalized here", code: "eur", want: false},
		{name: "empty", code: "", want: false},
		{name: "unknown", code: "XYZ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsSupportedCurrency(tt.code))
		})
	}
}

func TestNormalizeCurrencyCode(t *testing.T) {
	assert.Equal(t, "GBP", domain.NormalizeCurrencyCode("  gbp "))
}

func TestSupportedCurrencyCodes(t *testing.T) {
	assert.Equal(t, []string{"EUR", "INR", "JPY", "GBP", "CAD", "AUD", "CNY"}, domain.SupportedCurrencyCodes())
}

func TestConvertInCurrencyTest(t *testing.T) {
	got := domain.Convert(decimal.NewFromInt(100), decimal.RequireFromString("0.92"))
	assert.True(t, got.Equal(decimal.NewFromInt(92)), "got %s", got)
	assert.Equal(t, "92.00", got.StringFixed(2))
}
