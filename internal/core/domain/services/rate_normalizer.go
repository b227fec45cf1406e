package services

import (
	"shiprates/internal/core/domain/model/quote"
)

// HandlingFeeCAD is the flat surcharge added to every carrier-sourced
// quote before currency conversion. It is not applied to lettermail
// tariff entries.
const HandlingFeeCAD = 2.00

// RateNormalizer maps the carrier's intermediate rate response into the
// uniform Quote shape: each monetary figure is converted with the FX rate
// and rounded to cents, and the flat handling fee is folded into the
// total. Pure and deterministic.
type RateNormalizer struct{}

// NewRateNormalizer creates a RateNormalizer.
func NewRateNormalizer() RateNormalizer {
	return RateNormalizer{}
}

// Normalize converts a raw carrier quote into normalized quotes using the
// given CAD-to-USD rate. An empty raw quote yields an empty list.
//
// Total is round((due + handling fee) * fx), computed from the raw due
// amount rather than from the separately-rounded Base/Gst/Pst/Hst fields,
// so the displayed components need not sum exactly to Total. Known
// display simplification, preserved intentionally.
func (n RateNormalizer) Normalize(raw quote.RawQuote, fxRate float64) []quote.Quote {
	quotes := make([]quote.Quote, 0, len(raw.PriceQuotes))

	for _, pq := range raw.PriceQuotes {
		normalized := quote.Quote{
			ServiceName: pq.ServiceName,
			ServiceCode: pq.ServiceCode,
			Price: quote.PriceBreakdown{
				Base:  quote.RoundCents(pq.Due * fxRate),
				Gst:   quote.RoundCents(pq.Gst.Amount() * fxRate),
				Pst:   quote.RoundCents(pq.Pst.Amount() * fxRate),
				Hst:   quote.RoundCents(pq.Hst.Amount() * fxRate),
				Total: quote.RoundCents((pq.Due + HandlingFeeCAD) * fxRate),
			},
			DeliveryDate: quote.NotAvailable,
			TransitDays:  quote.NotAvailable,
			Currency:     OutputCurrency,
		}

		if pq.Standard != nil {
			if pq.Standard.ExpectedDeliveryDate != "" {
				normalized.DeliveryDate = pq.Standard.ExpectedDeliveryDate
			}
			if pq.Standard.ExpectedTransitTime != "" {
				normalized.TransitDays = pq.Standard.ExpectedTransitTime
			}
		}

		quotes = append(quotes, normalized)
	}

	return quotes
}
