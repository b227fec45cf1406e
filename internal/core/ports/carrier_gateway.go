// Package ports defines the outbound contracts of the rate pipeline.
// These interfaces sit between the application core and the adapters that
// reach the carrier rate API and the currency quote source, enabling
// dependency inversion and testability.
package ports

import (
	"context"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/quote"
)

// RateRequest describes one parcel to be priced by the carrier.
type RateRequest struct {
	// OriginPostalCode is the configured origin of every shipment.
	OriginPostalCode string
	// Destination is the classified destination address.
	Destination kernel.Destination
	// WeightKg is the parcel weight in kilograms.
	WeightKg float64
	// Dimensions are the parcel dimensions in centimetres.
	Dimensions kernel.Dimensions
}

// CarrierGateway is the contract for the live carrier rate service.
// Implementations return the carrier's priced options in the intermediate
// RawQuote form, or an error when the remote call fails or its body
// cannot be parsed. Callers decide the recovery policy; the orchestrator
// degrades to lettermail-only quotes rather than failing the request.
type CarrierGateway interface {
	GetRates(ctx context.Context, req RateRequest) (quote.RawQuote, error)
}
