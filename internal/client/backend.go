package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/dto"
)

// BackendClient calls the conversion history REST API.
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBackendClient creates a client for an API rooted at baseURL, e.g. http://localhost:5000/api.
func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SaveConversion persists a computed conversion and returns it with the id assigned by the server.
func (c *BackendClient) SaveConversion(ctx context.Context, conversion domain.Conversion) (*domain.Conversion, error) {
	timestamp := conversion.Timestamp
	body, err := json.Marshal(dto.CreateConversionRequest{
		Amount:         &conversion.Amount,
		TargetCurrency: conversion.TargetCurrency,
		Result:         &conversion.Result,
		Timestamp:      &timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var created dto.ConversionResponse
	if err := c.do(ctx, http.MethodPost, "/conversions", body, http.StatusCreated, &created); err != nil {
		return nil, err
	}

	saved := toDomainConversion(created)
	return &saved, nil
}

// ListConversions returns the full history, newest first, as ordered by the server.
func (c *BackendClient) ListConversions(ctx context.Context) ([]domain.Conversion, error) {
	var list []dto.ConversionResponse
	if err := c.do(ctx, http.MethodGet, "/conversions", nil, http.StatusOK, &list); err != nil {
		return nil, err
	}

	conversions := make([]domain.Conversion, len(list))
	for i := range list {
		conversions[i] = toDomainConversion(list[i])
	}
	return conversions, nil
}

// ListCurrencies returns the catalog of target currencies the server accepts.
func (c *BackendClient) ListCurrencies(ctx context.Context) ([]dto.CurrencyResponse, error) {
	var list []dto.CurrencyResponse
	if err := c.do(ctx, http.MethodGet, "/currencies", nil, http.StatusOK, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *BackendClient) do(ctx context.Context, method, path string, body []byte, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return apperrors.NewNetworkError(fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewNetworkError("failed to read backend response", err)
	}

	if resp.StatusCode != wantStatus {
		var errResp dto.ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return apperrors.NewNetworkError(fmt.Sprintf("%s %s returned %s", method, path, resp.Status), errors.New(errResp.Error))
		}
		return apperrors.NewNetworkError(fmt.Sprintf("%s %s returned %s", method, path, resp.Status), nil)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return apperrors.NewUpstreamDataError(fmt.Sprintf("unmarshal %s response: %v", path, err))
	}
	return nil
}

func toDomainConversion(r dto.ConversionResponse) domain.Conversion {
	return domain.Conversion{
		ConversionID:   r.ConversionID,
		Amount:         r.Amount,
		TargetCurrency: r.TargetCurrency,
		Result:         r.Result,
		Timestamp:      r.Timestamp,
	}
}
