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

// SQLSampleItemRepository reads the sample_items table.
type SQLSampleItemRepository struct {
	BaseRepository
}

func NewSQLSampleItemRepository(db *sqlx.DB) *SQLSampleItemRepository {
	return &SQLSampleItemRepository{BaseRepository: BaseRepository{DB: db}}
}

func (r *SQLSampleItemRepository) ListSampleItems(ctx context.Context) ([]domain.SampleItem, error) {
	items := []models.SampleItem{}
	if err := r.DB.SelectContext(ctx, &items, `SELECT id, name FROM sample_items ORDER BY id`); err != nil {
		metrics.RecordStorageError("list_sample_items")
		return nil, apperrors.NewStorageError("failed to list sample items", err)
	}
	return mapping.ToDomainSampleItems(items), nil
}
