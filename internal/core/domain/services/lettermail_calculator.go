package services

import (
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/quote"
)

// OutputCurrency is the single currency every quoted price is presented in.
const OutputCurrency = "USD"

// Standard tier bounds (millimetres / grams). A letter must be at least
// postcard-sized to machine-sort, hence the lower bounds on length and width.
const (
	standardMinLengthMm = 140.0
	standardMinWidthMm  = 90.0
	standardMaxLengthMm = 245.0
	standardMaxWidthMm  = 156.0
	standardMaxHeightMm = 5.0
	standardMinWeightG  = 2.0
	standardMaxWeightG  = 30.0
)

// Oversize tier bounds (millimetres / grams).
const (
	oversizeMaxLengthMm = 380.0
	oversizeMaxWidthMm  = 270.0
	oversizeMaxHeightMm = 20.0
	oversizeMinWeightG  = 5.0
	oversizeMaxWeightG  = 500.0
)

const (
	standardSizeNote = "Maximum size 245x156x5 mm"
	oversizeSizeNote = "Maximum size 380x270x20 mm"
)

// weightStep is one step of the oversize price ladder: the price charged
// for anything at or under MaxWeightG.
type weightStep struct {
	MaxWeightG float64
	Price      float64
}

// LettermailCalculator evaluates the flat-rate lettermail tariff table.
// It is a pure domain service: the same weight, dimensions, and
// destination always produce the same option list, with no I/O involved.
//
// A parcel can qualify for the standard tier, the oversize tier, both, or
// neither; each eligible tier contributes one flat-rate entry. Failing a
// tier's bounds excludes the parcel from that tier but is never an error.
type LettermailCalculator struct{}

// NewLettermailCalculator creates a LettermailCalculator.
func NewLettermailCalculator() LettermailCalculator {
	return LettermailCalculator{}
}

// Evaluate returns the lettermail options (0, 1, or 2) a parcel qualifies
// for, given its weight in grams, its dimensions, and its destination.
func (c LettermailCalculator) Evaluate(
	weightGrams float64,
	dims kernel.Dimensions,
	dest kernel.Destination,
) []quote.Quote {
	options := make([]quote.Quote, 0, 2)

	if standard, ok := c.standardOption(weightGrams, dims, dest); ok {
		options = append(options, standard)
	}
	if oversize, ok := c.oversizeOption(weightGrams, dims, dest); ok {
		options = append(options, oversize)
	}

	return options
}

func (c LettermailCalculator) standardOption(
	weightGrams float64,
	dims kernel.Dimensions,
	dest kernel.Destination,
) (quote.Quote, bool) {
	fits := dims.LengthMm() >= standardMinLengthMm &&
		dims.WidthMm() >= standardMinWidthMm &&
		dims.LengthMm() <= standardMaxLengthMm &&
		dims.WidthMm() <= standardMaxWidthMm &&
		dims.HeightMm() <= standardMaxHeightMm &&
		weightGrams >= standardMinWeightG &&
		weightGrams <= standardMaxWeightG
	if !fits {
		return quote.Quote{}, false
	}

	var price float64
	var transit string
	switch dest.Kind() {
	case kernel.DestinationDomestic:
		price, transit = 1.75, "2-4"
	case kernel.DestinationTradingPartner:
		price, transit = 2.00, "4-7"
	default:
		price, transit = 3.50, "7-14"
	}

	return c.flatRate(dest, "Standard", "lettermail.standard", price, transit, standardSizeNote), true
}

func (c LettermailCalculator) oversizeOption(
	weightGrams float64,
	dims kernel.Dimensions,
	dest kernel.Destination,
) (quote.Quote, bool) {
	fits := dims.LengthMm() <= oversizeMaxLengthMm &&
		dims.WidthMm() <= oversizeMaxWidthMm &&
		dims.HeightMm() <= oversizeMaxHeightMm &&
		weightGrams >= oversizeMinWeightG &&
		weightGrams <= oversizeMaxWeightG
	if !fits {
		return quote.Quote{}, false
	}

	var steps []weightStep
	var transit string
	switch dest.Kind() {
	case kernel.DestinationDomestic:
		steps = []weightStep{{100, 3.11}, {200, 4.51}, {300, 5.91}, {400, 6.62}, {oversizeMaxWeightG, 7.05}}
		transit = "2-5"
	case kernel.DestinationTradingPartner:
		steps = []weightStep{{100, 4.51}, {200, 7.16}, {oversizeMaxWeightG, 13.38}}
		transit = "5-10"
	default:
		steps = []weightStep{{100, 8.08}, {200, 13.38}, {oversizeMaxWeightG, 25.80}}
		transit = "10-21"
	}

	price := steps[len(steps)-1].Price
	for _, step := range steps {
		if weightGrams <= step.MaxWeightG {
			price = step.Price
			break
		}
	}

	return c.flatRate(dest, "Oversize", "lettermail.oversize", price, transit, oversizeSizeNote), true
}

// flatRate builds a tariff-table entry: taxes are zero and Total equals
// the flat price. The handling fee and FX conversion apply only to
// carrier-sourced quotes, never to lettermail tiers.
func (c LettermailCalculator) flatRate(
	dest kernel.Destination,
	tier, code string,
	price float64,
	transit, sizeNote string,
) quote.Quote {
	family := "Letter-post"
	if dest.Kind() == kernel.DestinationDomestic {
		family = "Lettermail"
	}

	return quote.Quote{
		ServiceName: family + " " + tier,
		ServiceCode: code,
		Price: quote.PriceBreakdown{
			Base:  price,
			Total: price,
		},
		DeliveryDate: quote.NotAvailable,
		TransitDays:  transit,
		Currency:     OutputCurrency,
		Lettermail:   true,
		SizeNote:     sizeNote,
	}
}
