package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Conversion is one persisted currency conversion event. Records are append-only:
// once created they are never updated or deleted.
type Conversion struct {
	ConversionID   int64           `json:"id"`
	Amount         decimal.Decimal `json:"amount"` // in BaseCurrency
	TargetCurrency string          `json:"targetCurrency"`
	Result         decimal.Decimal `json:"result"` // in TargetCurrency
	Timestamp      time.Time       `json:"timestamp"`
}

// Convert applies rate to amount. Both are exact decimals so 100 * 0.92 is exactly 92.
func Convert(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}

// DecimalBounds limits the size of a decimal accepted from outside the process.
// Values such as 1e400000000 parse cheaply but expand to enormous strings, so the
// check works on the coefficient and exponent without formatting the value.
type DecimalBounds struct {
	MaxIntegerDigits     int
	MaxFractionDigits    int
	MaxSignificantDigits int
}

var (
	// AmountBounds applies to the USD amount a user enters.
	AmountBounds = DecimalBounds{MaxIntegerDigits: 15, MaxFractionDigits: 18, MaxSignificantDigits: 30}
	// ResultBounds applies to amount * rate, which carries the rate's digits on top of the amount's.
	ResultBounds = DecimalBounds{MaxIntegerDigits: 20, MaxFractionDigits: 40, MaxSignificantDigits: 60}
)

// Check reports why d falls outside the bounds, or nil.
func (b DecimalBounds) Check(d decimal.Decimal) error {
	coef := d.Coefficient()
	// Each decimal digit needs a little over 3.3 bits.
	if coef.BitLen() > b.MaxSignificantDigits*4 {
		return fmt.Errorf("too many significant digits (max %d)", b.MaxSignificantDigits)
	}
	digits := len(coef.Abs(coef).String())
	if digits > b.MaxSignificantDigits {
		return fmt.Errorf("too many significant digits (max %d)", b.MaxSignificantDigits)
	}

	exp := int(d.Exponent())
	if exp < -b.MaxFractionDigits {
		return fmt.Errorf("too many decimal places (max %d)", b.MaxFractionDigits)
	}
	if coef.Sign() != 0 && digits+exp > b.MaxIntegerDigits {
		return fmt.Errorf("too large (max %d integer digits)", b.MaxIntegerDigits)
	}
	return nil
}
