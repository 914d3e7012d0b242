package sqldb

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/models"
	"github.com/SscSPs/currency_converter_app/internal/platform/metrics"
	"github.com/SscSPs/currency_converter_app/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
)

// SQLConversionRepository implements the ConversionRepositoryFacade interface using sqlx.
type SQLConversionRepository struct {
	BaseRepository
}

// NewSQLConversionRepository creates a new SQLConversionRepository.
func NewSQLConversionRepository(db *sqlx.DB) *SQLConversionRepository {
	return &SQLConversionRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// SaveConversion appends a conversion and returns the identifier the store assigned.
func (r *SQLConversionRepository) SaveConversion(ctx context.Context, conversion domain.Conversion) (int64, error) {
	if conversion.TargetCurrency == "" || conversion.Timestamp.IsZero() {
		return 0, apperrors.NewStorageError("conversion is missing required fields", nil)
	}

	modelConversion := mapping.ToModelConversion(conversion)

	var id int64
	err := r.DB.QueryRowxContext(ctx, r.query(`
		INSERT INTO conversions (amount, target_currency, result, converted_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`),
		modelConversion.Amount, modelConversion.TargetCurrency,
		modelConversion.Result, modelConversion.ConvertedAt,
	).Scan(&id)
	if err != nil {
		metrics.RecordStorageError("insert_conversion")
		return 0, apperrors.NewStorageError("failed to insert conversion", err)
	}

	return id, nil
}

// ListConversions retrieves every conversion, newest first. Rows sharing a timestamp
// come back in reverse insertion order.
func (r *SQLConversionRepository) ListConversions(ctx context.Context) ([]domain.Conversion, error) {
	modelConversions := []models.Conversion{}
	err := r.DB.SelectContext(ctx, &modelConversions, `
		SELECT id, amount, target_currency, result, converted_at
		FROM conversions
		ORDER BY converted_at DESC, id DESC`)
	if err != nil {
		metrics.RecordStorageError("list_conversions")
		return nil, apperrors.NewStorageError("failed to list conversions", err)
	}

	conversions, err := mapping.ToDomainConversionSlice(modelConversions)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to decode conversions", err)
	}
	return conversions, nil
}
