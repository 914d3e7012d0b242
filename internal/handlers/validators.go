package handlers

import (
	"errors"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SupportedCurrencyTag is the binding tag that restricts a string field to the currency catalog.
const SupportedCurrencyTag = "supported_currency"

// RegisterValidators installs the custom binding tags on gin's validator engine.
// It must run before any request carrying those tags is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation(SupportedCurrencyTag, func(fl validator.FieldLevel) bool {
		return domain.IsSupportedCurrency(domain.NormalizeCurrencyCode(fl.Field().String()))
	})
}
