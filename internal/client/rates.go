// Package client talks to the exchange-rate provider and to the conversion backend,
// and drives the submit flow shared by the interactive and one-shot commands.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// The provider's full table is a few kilobytes.
const maxRateResponseBytes = 1 << 20

// RateClient fetches USD-based exchange rates from an open.er-api.com compatible provider.
type RateClient struct {
	url        string
	httpClient *http.Client
}

// NewRateClient creates a rate client for the given latest-rates URL.
func NewRateClient(url string, timeout time.Duration) *RateClient {
	return &RateClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetRate returns the rate from the base currency to currencyCode.
// The number is read from the raw JSON text so no float rounding is introduced.
func (c *RateClient) GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return decimal.Zero, apperrors.NewNetworkError("failed to reach rate provider", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRateResponseBytes))
	if err != nil {
		return decimal.Zero, apperrors.NewNetworkError("failed to read rate response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decimal.Zero, apperrors.NewNetworkError("rate provider returned "+resp.Status, nil)
	}

	if !gjson.ValidBytes(body) {
		return decimal.Zero, apperrors.NewUpstreamDataError("rate provider returned invalid JSON")
	}
	if result := gjson.GetBytes(body, "result"); result.Exists() && result.String() != "success" {
		return decimal.Zero, apperrors.NewUpstreamDataError(
			fmt.Sprintf("rate provider reported %q: %s", result.String(), gjson.GetBytes(body, "error-type").String()))
	}

	rate := gjson.GetBytes(body, "rates."+currencyCode)
	if !rate.Exists() || rate.Type != gjson.Number {
		return decimal.Zero, apperrors.NewUpstreamDataError("no rate for " + currencyCode)
	}

	value, err := decimal.NewFromString(rate.Raw)
	if err != nil {
		return decimal.Zero, apperrors.NewUpstreamDataError(fmt.Sprintf("unparseable rate for %s", currencyCode))
	}
	if err := domain.ResultBounds.Check(value); err != nil {
		return decimal.Zero, apperrors.NewUpstreamDataError(fmt.Sprintf("rate for %s is %v", currencyCode, err))
	}
	if !value.IsPositive() {
		return decimal.Zero, apperrors.NewUpstreamDataError("non-positive rate for " + currencyCode)
	}
	return value, nil
}
