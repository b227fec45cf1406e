// Package quote defines the shapes shipping prices move through.
//
// RawQuote is the carrier-agnostic intermediate form a carrier response is
// parsed into; Quote is the single uniform shape every price source is
// normalized to before it reaches the caller, whether it came from the
// live carrier API or the flat-rate lettermail tariff table.
//
// All monetary figures on a Quote are rounded to two decimal places,
// half-up at the cent (see RoundCents).
package quote
