package domain

import "strings"

// BaseCurrency is the currency every fetched rate is expressed against.
const BaseCurrency = "USD"

// Currency represents a supported target currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g., "EUR"
	Symbol       string `json:"symbol"`       // e.g., "€"
	Name         string `json:"name"`         // e.g., "Euro"
	Precision    int    `json:"precision"`    // minor-unit digits
}

// SupportedCurrencies is the fixed catalog of target currencies, in display order.
var SupportedCurrencies = []Currency{
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2},
	{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", Precision: 2},
	{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", Precision: 0},
	{CurrencyCode: "GBP", Symbol: "£", Name: "Pound Sterling", Precision: 2},
	{CurrencyCode: "CAD", Symbol: "$", Name: "Canadian Dollar", Precision: 2},
	{CurrencyCode: "AUD", Symbol: "$", Name: "Australian Dollar", Precision: 2},
	{CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan", Precision: 2},
}

// FindCurrency looks a code up in the catalog. Codes are matched case-sensitively;
// callers normalize user input with strings.ToUpper first.
func FindCurrency(code string) (Currency, bool) {
	for _, c := range SupportedCurrencies {
		if c.CurrencyCode == code {
			return c, true
		}
	}
	return Currency{}, false
}

// IsSupportedCurrency reports whether code is in the catalog.
func IsSupportedCurrency(code string) bool {
	_, ok := FindCurrency(code)
	return ok
}

// SupportedCurrencyCodes returns the catalog codes in display order.
func SupportedCurrencyCodes() []string {
	codes := make([]string, len(SupportedCurrencies))
	for i, c := range SupportedCurrencies {
		codes[i] = c.CurrencyCode
	}
	return codes
}

// NormalizeCurrencyCode trims and upper-cases user input.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
