// Package coingecko fetches the quote strip from the CoinGecko markets API.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crypto_dash/internal/domain"
	"crypto_dash/internal/infra"

	"github.com/shopspring/decimal"
)

// ErrHTTPStatus is returned for any non-2xx response.
var ErrHTTPStatus = errors.New("unexpected HTTP status")

// marketRow is one element of the /coins/markets response.
type marketRow struct {
	ID             string           `json:"id"`
	CurrentPrice   *decimal.Decimal `json:"current_price"`
	PriceChange24h *decimal.Decimal `json:"price_change_percentage_24h"`
	Image          *string          `json:"image"`
}

// Client talks to the markets endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL, e.g. "https://api.coingecko.com/api/v3".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchMarkets requests USD price and 24h change for all ids in one call.
func (c *Client) FetchMarkets(ctx context.Context, ids []string) ([]domain.MarketRecord, error) {
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("ids", strings.Join(ids, ","))
	q.Set("price_change_percentage", "24h")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/coins/markets?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", infra.GetUserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("markets request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s - %s", ErrHTTPStatus, resp.Status, strings.TrimSpace(string(bodyBytes)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("body read error: %w", err)
	}

	var rows []marketRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}

	records := make([]domain.MarketRecord, 0, len(rows))
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		rec := domain.MarketRecord{ID: row.ID, PriceChange24h: row.PriceChange24h}
		if row.CurrentPrice != nil {
			rec.CurrentPrice = *row.CurrentPrice
			rec.HasPrice = true
		}
		if row.Image != nil {
			rec.Image = *row.Image
		}
		records = append(records, rec)
	}
	return records, nil
}
