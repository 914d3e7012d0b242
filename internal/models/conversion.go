package models

import "github.com/shopspring/decimal"

// TimestampLayout is the storage layout for conversion timestamps. It is fixed-width and
// always UTC, so ORDER BY on the text column is chronological.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

// Conversion is the row shape of the conversions table.
type Conversion struct {
	ConversionID   int64           `db:"id"`
	Amount         decimal.Decimal `db:"amount"`
	TargetCurrency string          `db:"target_currency"`
	Result         decimal.Decimal `db:"result"`
	ConvertedAt    string          `db:"converted_at"`
}

// SampleItem is the row shape of the sample_items table.
type SampleItem struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
