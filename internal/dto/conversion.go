package dto

import (
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateConversionRequest defines the structure for persisting a conversion.
// Pointers make "field absent" distinguishable from a zero value for the required check.
type CreateConversionRequest struct {
	Amount         *decimal.Decimal `json:"amount" binding:"required"`
	TargetCurrency string           `json:"targetCurrency" binding:"required,supported_currency"`
	Result         *decimal.Decimal `json:"result" binding:"required"`
	Timestamp      *time.Time       `json:"timestamp" binding:"required"`
}

// ConversionResponse defines the structure for API responses containing a conversion.
type ConversionResponse struct {
	ConversionID   int64           `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	TargetCurrency string          `json:"targetCurrency"`
	Result         decimal.Decimal `json:"result"`
	Timestamp      time.Time       `json:"timestamp"`
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		ConversionID:   c.ConversionID,
		Amount:         c.Amount,
		TargetCurrency: c.TargetCurrency,
		Result:         c.Result,
		Timestamp:      c.Timestamp,
	}
}

// ToListConversionResponse converts a slice of domain conversions, preserving order.
func ToListConversionResponse(conversions []domain.Conversion) []ConversionResponse {
	res := make([]ConversionResponse, len(conversions))
	for i := range conversions {
		res[i] = ToConversionResponse(&conversions[i])
	}
	return res
}
