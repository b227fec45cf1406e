package queries

import (
	"context"
	"log/slog"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/core/ports"
	"shiprates/internal/pkg/errs"
)

// GetShippingRatesQueryHandler orchestrates the rate aggregation pipeline:
// destination classification, unit derivation, tariff-table evaluation,
// the FX-rate lookup, the carrier call, and normalization of everything
// into one uniform list.
//
// The carrier path degrades gracefully: any failure fetching or parsing
// carrier quotes is logged and replaced with an empty list, so the caller
// still receives the lettermail options with a success outcome.
type GetShippingRatesQueryHandler struct {
	originPostalCode string
	classifier       kernel.Classifier
	lettermail       services.LettermailCalculator
	normalizer       services.RateNormalizer
	exchangeRates    ports.ExchangeRateProvider
	carrier          ports.CarrierGateway
	logger           *slog.Logger
}

// NewGetShippingRatesQueryHandler creates the aggregation handler.
// originPostalCode may be empty; the handler reports it as a
// configuration error per request rather than refusing to start.
func NewGetShippingRatesQueryHandler(
	originPostalCode string,
	classifier kernel.Classifier,
	lettermail services.LettermailCalculator,
	normalizer services.RateNormalizer,
	exchangeRates ports.ExchangeRateProvider,
	carrier ports.CarrierGateway,
	logger *slog.Logger,
) GetShippingRatesQueryHandler {
	return GetShippingRatesQueryHandler{
		originPostalCode: originPostalCode,
		classifier:       classifier,
		lettermail:       lettermail,
		normalizer:       normalizer,
		exchangeRates:    exchangeRates,
		carrier:          carrier,
		logger:           logger.With("component", "get_shipping_rates_handler"),
	}
}

// Handle executes the aggregation. Validation failures and the missing
// origin configuration are the only error outcomes; carrier problems
// never are.
func (h GetShippingRatesQueryHandler) Handle(
	ctx context.Context,
	query GetShippingRatesQuery,
) (GetShippingRatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShippingRatesQueryResponse{}, err
	}

	dest, err := h.classifier.NewDestination(query.Country(), query.PostalCode())
	if err != nil {
		return GetShippingRatesQueryResponse{}, err
	}
	if dest.RequiresPostalCode() && dest.PostalCode() == "" {
		return GetShippingRatesQueryResponse{}, errs.NewValueIsRequiredError("postalCode")
	}

	if h.originPostalCode == "" {
		return GetShippingRatesQueryResponse{}, errs.NewNotConfiguredError("origin postal code")
	}

	dims := query.Dimensions()

	// The tariff table needs no network and is always available.
	rates := h.lettermail.Evaluate(query.Weight().Grams(), dims, dest)
	rates = append(rates, h.carrierQuotes(ctx, dest, query.Weight().Kilograms(), dims)...)

	return GetShippingRatesQueryResponse{
		Rates:  rates,
		Origin: h.originPostalCode,
	}, nil
}

// carrierQuotes runs the network path of the pipeline. A failed carrier
// call is logged and substituted with no quotes; lettermail options alone
// are an acceptable degraded response.
func (h GetShippingRatesQueryHandler) carrierQuotes(
	ctx context.Context,
	dest kernel.Destination,
	weightKg float64,
	dims kernel.Dimensions,
) []quote.Quote {
	fxRate := h.exchangeRates.Get(ctx)

	raw, err := h.carrier.GetRates(ctx, ports.RateRequest{
		OriginPostalCode: h.originPostalCode,
		Destination:      dest,
		WeightKg:         weightKg,
		Dimensions:       dims,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "carrier rating call failed, returning tariff options only",
			"destination", dest.Country(), "error", err)
		return nil
	}

	return h.normalizer.Normalize(raw, fxRate)
}
