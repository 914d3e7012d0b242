package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/models"
)

// ToModelConversion converts a domain Conversion to a model Conversion
func ToModelConversion(d domain.Conversion) models.Conversion {
	return models.Conversion{
		ConversionID:   d.ConversionID,
		Amount:         d.Amount,
		TargetCurrency: d.TargetCurrency,
		Result:         d.Result,
		ConvertedAt:    d.Timestamp.UTC().Format(models.TimestampLayout),
	}
}

// ToDomainConversion converts a model Conversion to a domain Conversion
func ToDomainConversion(m models.Conversion) (domain.Conversion, error) {
	ts, err := time.Parse(models.TimestampLayout, m.ConvertedAt)
	if err != nil {
		// Rows written by other tools may carry any RFC 3339 form.
		ts, err = time.Parse(time.RFC3339Nano, m.ConvertedAt)
		if err != nil {
			return domain.Conversion{}, fmt.Errorf("invalid timestamp %q on conversion %d: %w", m.ConvertedAt, m.ConversionID, err)
		}
	}
	return domain.Conversion{
		ConversionID:   m.ConversionID,
		Amount:         m.Amount,
		TargetCurrency: m.TargetCurrency,
		Result:         m.Result,
		Timestamp:      ts.UTC(),
	}, nil
}

// ToDomainConversionSlice converts a slice of model Conversions to a slice of domain Conversions
func ToDomainConversionSlice(ms []models.Conversion) ([]domain.Conversion, error) {
	ds := make([]domain.Conversion, len(ms))
	for i, m := range ms {
		d, err := ToDomainConversion(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

// ToDomainSampleItems converts sample_items rows to domain items
func ToDomainSampleItems(ms []models.SampleItem) []domain.SampleItem {
	ds := make([]domain.SampleItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.SampleItem{ID: m.ID, Name: m.Name}
	}
	return ds
}
