package ports

import "context"

// ExchangeRateProvider is the contract for the CAD-to-USD conversion rate.
//
// Get never fails: implementations resolve every failure path to a usable
// numeric rate (a cached value or a hardcoded fallback), because a stale
// or approximate rate is preferable to refusing to quote.
type ExchangeRateProvider interface {
	// Get returns the current rate, serving a cached value when it is
	// fresh enough.
	Get(ctx context.Context) float64

	// Refresh fetches a fresh rate, bypassing the cache check, and
	// returns the rate now in effect. Same no-fail policy as Get.
	Refresh(ctx context.Context) float64
}
