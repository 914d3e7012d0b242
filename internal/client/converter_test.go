package client_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/client"
	"github.com/SscSPs/currency_converter_app/internal/core/services"
	"github.com/SscSPs/currency_converter_app/internal/handlers"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	"github.com/SscSPs/currency_converter_app/internal/platform/config"
	"github.com/SscSPs/currency_converter_app/internal/repositories/database/sqldb"
	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/SscSPs/currency_converter_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// ConverterTestSuite runs the client against a real backend on a temporary SQLite file.
type ConverterTestSuite struct {
	suite.Suite
	backend     *httptest.Server
	backendHits int
	rates       *httptest.Server
	rateHits    *int
	converter   *client.Converter
}

func (suite *ConverterTestSuite) SetupTest() {
	dsn := filepath.Join(suite.T().TempDir(), "database.sqlite")
	suite.Require().NoError(database.InitializeSchema(database.DriverSQLite, dsn))
	db, err := database.NewSQLDB(context.Background(), database.DriverSQLite, dsn)
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { database.CloseSQLDB(db) })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.StructuredLoggingMiddleware(discard))
	suite.Require().NoError(handlers.RegisterRoutes(router,
		&config.Config{RateLimit: "1000-S", IsProduction: true},
		services.NewServiceContainer(sqldb.NewRepositoryProvider(db)),
	))

	suite.backendHits = 0
	suite.backend = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.backendHits++
		router.ServeHTTP(w, r)
	}))
	suite.T().Cleanup(suite.backend.Close)

	suite.rates, suite.rateHits = newRatesServer(suite.T(), http.StatusOK, ratesPayload)
	suite.converter = suite.newConverter(suite.rates.URL)
}

func (suite *ConverterTestSuite) newConverter(ratesURL string) *client.Converter {
	return client.NewConverter(
		client.NewRateClient(ratesURL, defaultTimeout),
		client.NewBackendClient(suite.backend.URL+"/api", defaultTimeout),
		discard,
	)
}

func (suite *ConverterTestSuite) TestSubmit_ConvertsAndRecords() {
	out, err := suite.converter.Submit(context.Background(), "100", "EUR")

	suite.Require().NoError(err)
	suite.Equal(client.StateSuccess, out.State)
	suite.Equal(client.StateSuccess, suite.converter.State())
	suite.Equal("92.00 EUR", out.Message)
	suite.Require().NotNil(out.Conversion)
	suite.Positive(out.Conversion.ConversionID)

	suite.Require().Len(out.History, 1)
	suite.Empty(out.HistoryMessage)
	suite.Equal(out.Conversion.ConversionID, out.History[0].ConversionID)
	suite.Contains(utils.FormatHistoryLine(out.History[0]), "100 USD ➡️ 92 EUR on ")
}

func (suite *ConverterTestSuite) TestSubmit_NewestFirst() {
	_, err := suite.converter.Submit(context.Background(), "1", "jpy")
	suite.Require().NoError(err)
	out, err := suite.converter.Submit(context.Background(), "2", "INR")
	suite.Require().NoError(err)

	suite.Require().Len(out.History, 2)
	suite.Equal("INR", out.History[0].TargetCurrency)
	suite.Equal("JPY", out.History[1].TargetCurrency)
}

func (suite *ConverterTestSuite) TestSubmit_InvalidInputMakesNoNetworkCall() {
	cases := []struct{ amount, currency string }{
		{"0", "EUR"},
		{"-5", "EUR"},
		{"abc", "EUR"},
		{"", "EUR"},
		{"1e400000000", "EUR"},
		{"1e-400000000", "EUR"},
		{"10000000000000000", "EUR"},
		{"10", "XYZ"},
		{"10", ""},
	}
	for _, tc := range cases {
		out, err := suite.converter.Submit(context.Background(), tc.amount, tc.currency)
		suite.ErrorIs(err, apperrors.ErrValidation, tc)
		suite.Equal(client.StateIdle, out.State)
		suite.Equal(client.MsgInvalidAmount, out.Message)
	}
	suite.Zero(*suite.rateHits)
	suite.Zero(suite.backendHits)
}

func (suite *ConverterTestSuite) TestSubmit_MissingRateFails() {
	out, err := suite.converter.Submit(context.Background(), "10", "GBP")

	suite.ErrorIs(err, apperrors.ErrUpstreamData)
	suite.Equal(client.StateFailed, out.State)
	suite.Equal(client.MsgConversionFailed, out.Message)
	suite.Zero(suite.backendHits)
}

func (suite *ConverterTestSuite) TestSubmit_OutOfRangeRateFails() {
	for _, rate := range []string{"1e400000000", "1e-400000000", "-0.5", "12345678901234567890"} {
		rates, _ := newRatesServer(suite.T(), http.StatusOK, `{"result": "success", "rates": {"EUR": `+rate+`}}`)

		done := make(chan struct{})
		var out client.Outcome
		var err error
		go func() {
			defer close(done)
			out, err = suite.newConverter(rates.URL).Submit(context.Background(), "100", "EUR")
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			suite.FailNow("submit did not return", "rate %s", rate)
		}
		suite.ErrorIs(err, apperrors.ErrUpstreamData, rate)
		suite.Equal(client.StateFailed, out.State)
		suite.Equal(client.MsgConversionFailed, out.Message)
	}
	suite.Zero(suite.backendHits)
}

func (suite *ConverterTestSuite) TestSubmit_ProviderDownFails() {
	down, _ := newRatesServer(suite.T(), http.StatusBadGateway, "")
	out, err := suite.newConverter(down.URL).Submit(context.Background(), "10", "EUR")

	suite.ErrorIs(err, apperrors.ErrNetwork)
	suite.Equal(client.StateFailed, out.State)
	suite.Equal(client.MsgConversionFailed, out.Message)
}

func (suite *ConverterTestSuite) TestSubmit_BackendDownFails() {
	suite.backend.Close()

	out, err := suite.converter.Submit(context.Background(), "10", "EUR")

	suite.ErrorIs(err, apperrors.ErrNetwork)
	suite.Equal(client.StateFailed, out.State)
	suite.Equal(client.MsgConversionFailed, out.Message)
}

func (suite *ConverterTestSuite) TestLoadHistory() {
	entries, msg, err := suite.converter.LoadHistory(context.Background())
	suite.NoError(err)
	suite.Empty(msg)
	suite.NotNil(entries)
	suite.Empty(entries)

	suite.backend.Close()
	entries, msg, err = suite.converter.LoadHistory(context.Background())
	suite.ErrorIs(err, apperrors.ErrNetwork)
	suite.Equal(client.MsgHistoryFailed, msg)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func TestConverter(t *testing.T) {
	suite.Run(t, new(ConverterTestSuite))
}
