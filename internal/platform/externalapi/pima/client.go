package pima

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	forecastusecase "pima_backend/internal/feature/forecast/usecase"
	"pima_backend/internal/feature/prices/domain/entity"
	pricesusecase "pima_backend/internal/feature/prices/usecase"
)

// maxBodySize caps the size of a feed payload read into memory.
const maxBodySize = 32 << 20

// ErrInvalidPayload is returned when the feed body is not valid JSON.
var ErrInvalidPayload = errors.New("pima: invalid JSON payload")

// Client fetches price records from the PIMA API.
type Client struct {
	cfg    Config
	client *http.Client
}

// Client must satisfy both consumers of the feed.
var (
	_ forecastusecase.RecordSource = (*Client)(nil)
	_ pricesusecase.PriceFeed      = (*Client)(nil)
)

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchRaw returns the feed body exactly as served. The body must be valid JSON.
func (c *Client) FetchRaw(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("pima http %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("pima read body: %w", err)
	}
	if !json.Valid(body) {
		return nil, ErrInvalidPayload
	}
	return body, nil
}

// FetchRecords returns the feed decoded as a list of untyped records.
// Numbers are kept as json.Number so prices are not rounded through float64 twice.
func (c *Client) FetchRecords(ctx context.Context) ([]entity.RawPriceRecord, error) {
	body, err := c.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var records []entity.RawPriceRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("pima decode records: %w", err)
	}
	// a bare null decodes without error into a nil slice
	if records == nil {
		return nil, ErrInvalidPayload
	}
	return records, nil
}
