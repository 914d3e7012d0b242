package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "92.00 EUR", utils.FormatResult(decimal.NewFromInt(100).Mul(decimal.RequireFromString("0.92")), "EUR"))
	assert.Equal(t, "8312.35 INR", utils.FormatResult(decimal.RequireFromString("8312.345"), "INR"))
	assert.Equal(t, "0.00 GBP", utils.FormatResult(decimal.Zero, "GBP"))
}

func TestFormatHistoryLine(t *testing.T) {
	c := domain.Conversion{
		Amount:         decimal.NewFromInt(100),
		TargetCurrency: "EUR",
		Result:         decimal.RequireFromString("92.00"),
		Timestamp:      time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "100 USD ➡️ 92 EUR on 2026-10-19T10:00:00Z", utils.FormatHistoryLine(c))
}
