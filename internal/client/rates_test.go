package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/client"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ratesPayload = `{
  "result": "success",
  "base_code": "USD",
  "time_last_update_utc": "Mon, 19 Oct 2026 00:02:31 +0000",
  "rates": {"USD": 1, "EUR": 0.92, "INR": 83.123456, "JPY": 149.5}
}`

func newRatesServer(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestRateClient_GetRate(t *testing.T) {
	srv, _ := newRatesServer(t, http.StatusOK, ratesPayload)
	rc := client.NewRateClient(srv.URL, time.Second)

	rate, err := rc.GetRate(context.Background(), "EUR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.92")))

	rate, err = rc.GetRate(context.Background(), "INR")
	require.NoError(t, err)
	assert.Equal(t, "83.123456", rate.String())
}

func TestRateClient_MissingCurrency(t *testing.T) {
	srv, _ := newRatesServer(t, http.StatusOK, ratesPayload)
	rc := client.NewRateClient(srv.URL, time.Second)

	_, err := rc.GetRate(context.Background(), "GBP")
	assert.ErrorIs(t, err, apperrors.ErrUpstreamData)
}

func TestRateClient_ProviderError(t *testing.T) {
	srv, _ := newRatesServer(t, http.StatusOK, `{"result": "error", "error-type": "unsupported-code"}`)
	rc := client.NewRateClient(srv.URL, time.Second)

	_, err := rc.GetRate(context.Background(), "EUR")
	assert.ErrorIs(t, err, apperrors.ErrUpstreamData)
	assert.ErrorContains(t, err, "unsupported-code")
}

func TestRateClient_Non2xxIsNetworkError(t *testing.T) {
	srv, _ := newRatesServer(t, http.StatusServiceUnavailable, `oops`)
	rc := client.NewRateClient(srv.URL, time.Second)

	_, err := rc.GetRate(context.Background(), "EUR")
	assert.ErrorIs(t, err, apperrors.ErrNetwork)
}

func TestRateClient_InvalidJSON(t *testing.T) {
	srv, _ := newRatesServer(t, http.StatusOK, `<html>`)
	rc := client.NewRateClient(srv.URL, time.Second)

	_, err := rc.GetRate(context.Background(), "EUR")
	assert.ErrorIs(t, err, apperrors.ErrUpstreamData)
}

func TestRateClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	rc := client.NewRateClient(srv.URL, 50*time.Millisecond)

	_, err := rc.GetRate(context.Background(), "EUR")
	assert.ErrorIs(t, err, apperrors.ErrNetwork)
}

func TestRateClient_Unreachable(t *testing.T) {
	srv, _ := newRatesServer(t, http.StatusOK, ratesPayload)
	url := srv.URL
	srv.Close()

	_, err := client.NewRateClient(url, time.Second).GetRate(context.Background(), "EUR")
	assert.ErrorIs(t, err, apperrors.ErrNetwork)
}

func TestRateClient_RejectsOutOfRangeRates(t *testing.T) {
	for _, raw := range []string{"1e400000000", "1e-400000000", "0", "-1.2"} {
		srv, _ := newRatesServer(t, http.StatusOK, `{"result": "success", "rates": {"EUR": `+raw+`}}`)

		_, err := client.NewRateClient(srv.URL, time.Second).GetRate(context.Background(), "EUR")
		assert.ErrorIs(t, err, apperrors.ErrUpstreamData, raw)
	}
}
