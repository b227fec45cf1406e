// Package fxrate fetches the CAD-to-USD conversion rate from a remote
// currency quote source, with a process-lifetime cache and a hardcoded
// fallback. The provider never returns an error: every failure path
// resolves to a numeric rate, because quoting with a slightly stale rate
// beats not quoting at all.
package fxrate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"
)

// FallbackRate is returned when no rate was ever fetched successfully.
const FallbackRate = 0.73

// cacheTTL is how long a fetched rate is served without a network call.
const cacheTTL = time.Hour

const (
	fromCurrency = "CAD"
	toCurrency   = "USD"
	// dateFormat is the MM/DD/YYYY query format the quote source expects.
	dateFormat = "01/02/2006"
)

// cachedRate is one cache generation. Generations are replaced wholesale,
// last write wins; concurrent refreshes may duplicate a fetch but never
// corrupt state.
type cachedRate struct {
	rate      float64
	fetchedAt time.Time
}

// Provider implements ports.ExchangeRateProvider against a JSON quote
// service parameterized by today's date and a fixed currency pair.
type Provider struct {
	httpClient *http.Client
	baseURL    string
	clock      Clock
	logger     *slog.Logger

	cache atomic.Pointer[cachedRate]
}

// NewProvider creates a Provider using the default HTTP client and the
// system clock.
func NewProvider(baseURL string, logger *slog.Logger) *Provider {
	return NewProviderWithClock(baseURL, http.DefaultClient, systemClock{}, logger)
}

// NewProviderWithClock creates a Provider with an explicit HTTP client and
// clock, for tests that need deterministic cache expiry.
func NewProviderWithClock(baseURL string, httpClient *http.Client, clock Clock, logger *slog.Logger) *Provider {
	return &Provider{
		httpClient: httpClient,
		baseURL:    baseURL,
		clock:      clock,
		logger:     logger.With("component", "fxrate_provider"),
	}
}

// Get returns the CAD-to-USD rate, serving the cached value when it is
// younger than one hour and refreshing otherwise.
func (p *Provider) Get(ctx context.Context) float64 {
	if cached := p.cache.Load(); cached != nil && p.clock.Now().Sub(cached.fetchedAt) < cacheTTL {
		return cached.rate
	}
	return p.Refresh(ctx)
}

// Refresh fetches a fresh rate regardless of cache age. On any failure it
// returns the previous cached rate if one exists, else FallbackRate; the
// cache is only replaced on success.
func (p *Provider) Refresh(ctx context.Context) float64 {
	rate, err := p.fetch(ctx)
	if err != nil {
		p.logger.WarnContext(ctx, "exchange rate fetch failed, using last known rate", "error", err)
		if cached := p.cache.Load(); cached != nil {
			return cached.rate
		}
		return FallbackRate
	}

	p.cache.Store(&cachedRate{rate: rate, fetchedAt: p.clock.Now()})
	return rate
}

// rateResponse covers the two field names the quote source has been seen
// returning the rate under.
type rateResponse struct {
	Rate *float64 `json:"rate"`
	V    *float64 `json:"v"`
}

func (p *Provider) fetch(ctx context.Context) (float64, error) {
	query := url.Values{}
	query.Set("date", p.clock.Now().Format(dateFormat))
	query.Set("from", fromCurrency)
	query.Set("to", toCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build exchange rate request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("exchange rate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return 0, fmt.Errorf("exchange rate request: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read exchange rate response: %w", err)
	}

	var parsed rateResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("parse exchange rate response: %w", err)
	}

	switch {
	case parsed.Rate != nil && *parsed.Rate > 0:
		return *parsed.Rate, nil
	case parsed.V != nil && *parsed.V > 0:
		return *parsed.V, nil
	default:
		return 0, fmt.Errorf("exchange rate response carries no usable rate")
	}
}
