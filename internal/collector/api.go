package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// APIFetcher implements Fetcher against the stats REST API.
type APIFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAPIFetcher creates a fetcher with optional proxy support.
func NewAPIFetcher(baseURL, apiKey, proxyURL string) *APIFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &APIFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *APIFetcher) Name() string { return "statsapi" }

// FetchTickStats returns the aggregate tick statistics: symbol list,
// latest prices, per-venue counts, category membership, collector
// counters.
func (f *APIFetcher) FetchTickStats() (any, error) {
	return f.getJSON(fmt.Sprintf("%s/api/v1/tick-stats", f.BaseURL))
}

// FetchTicks returns the tick history for one venue-qualified symbol.
func (f *APIFetcher) FetchTicks(venue, ticker string) (any, error) {
	return f.getJSON(fmt.Sprintf("%s/api/v1/ticks/%s", f.BaseURL,
		url.PathEscape(venue+":"+ticker)))
}

// FetchLiquidationStats returns the liquidation windows mapping.
func (f *APIFetcher) FetchLiquidationStats() (any, error) {
	return f.getJSON(fmt.Sprintf("%s/api/v1/liquidation-stats", f.BaseURL))
}

func (f *APIFetcher) getJSON(endpoint string) (any, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch %s: status %d, body: %s", endpoint, resp.StatusCode, string(body))
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return payload, nil
}
