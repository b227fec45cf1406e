// Package services contains the pure domain services of the rate pipeline.
//
// LettermailCalculator evaluates the flat-rate lettermail tariff table
// against a parcel's weight and dimensions; RateNormalizer maps carrier
// rate responses into the uniform Quote shape, applying the currency
// conversion and the flat handling fee. Both are deterministic and perform
// no I/O.
package services
