package utils

import (
	"fmt"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatResult renders a converted amount with two decimals followed by its currency code.
// Example: 92 and "EUR" returns "92.00 EUR"
func FormatResult(result decimal.Decimal, currencyCode string) string {
	return result.StringFixed(2) + " " + currencyCode
}

// FormatHistoryLine renders one history entry.
// Example: "100 USD ➡️ 92 EUR on 2026-10-19T10:00:00Z"
func FormatHistoryLine(c domain.Conversion) string {
	return fmt.Sprintf("%s %s ➡️ %s %s on %s",
		c.Amount.String(), domain.BaseCurrency,
		c.Result.String(), c.TargetCurrency,
		c.Timestamp.UTC().Format(time.RFC3339),
	)
}
