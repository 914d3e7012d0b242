package sqldb_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/repositories/database/sqldb"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*sqldb.SQLConversionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqldb.NewSQLConversionRepository(sqlx.NewDb(db, "sqlite3")), mock
}

func TestSaveConversion_ReturnsAssignedID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO conversions (amount, target_currency, result, converted_at)")).
		WithArgs("100", "EUR", "92", "2026-10-19T10:00:00.000000000Z").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.SaveConversion(context.Background(), domain.Conversion{
		Amount:         decimal.NewFromInt(100),
		TargetCurrency: "EUR",
		Result:         decimal.NewFromInt(92),
		Timestamp:      time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveConversion_MissingFieldsIsStorageError(t *testing.T) {
	repo, mock := newMockRepo(t)

	_, err := repo.SaveConversion(context.Background(), domain.Conversion{Amount: decimal.NewFromInt(1)})

	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet(), "no statement may run for an incomplete record")
}

func TestSaveConversion_DatabaseFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO conversions").WillReturnError(errors.New("database is locked"))

	_, err := repo.SaveConversion(context.Background(), domain.Conversion{
		Amount:         decimal.NewFromInt(5),
		TargetCurrency: "GBP",
		Result:         decimal.RequireFromString("3.9"),
		Timestamp:      time.Now(),
	})

	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.ErrorContains(t, err, "database is locked")
}

func TestListConversions_ScansRows(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "amount", "target_currency", "result", "converted_at"}).
		AddRow(int64(2), "250", "JPY", "37512.5", "2026-10-19T11:00:00.000000000Z").
		AddRow(int64(1), "100", "EUR", "92", "2026-10-19T10:00:00.000000000Z")
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY converted_at DESC, id DESC")).WillReturnRows(rows)

	conversions, err := repo.ListConversions(context.Background())

	require.NoError(t, err)
	require.Len(t, conversions, 2)
	assert.Equal(t, int64(2), conversions[0].ConversionID)
	assert.True(t, conversions[0].Result.Equal(decimal.RequireFromString("37512.5")))
	assert.Equal(t, "EUR", conversions[1].TargetCurrency)
	assert.True(t, conversions[1].Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC), conversions[1].Timestamp)
}

func TestListConversions_QueryFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, amount").WillReturnError(errors.New("no such table: conversions"))

	conversions, err := repo.ListConversions(context.Background())

	assert.Nil(t, conversions)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}
