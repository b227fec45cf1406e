package quote

import (
	"strconv"
	"strings"
)

// RawQuote is the carrier-agnostic intermediate form a carrier rate
// response is parsed into before normalization.
type RawQuote struct {
	PriceQuotes []RawPriceQuote
}

// RawPriceQuote is one priced service option from the carrier.
type RawPriceQuote struct {
	ServiceCode string
	ServiceName string
	// Due is the pre-tax-breakdown amount the carrier says is owed, in
	// the carrier's currency.
	Due float64
	Gst TaxAmount
	Pst TaxAmount
	Hst TaxAmount
	// Standard is the carrier's service standard, when reported.
	Standard *ServiceStandard
}

// ServiceStandard carries the delivery expectations the carrier attaches
// to a service.
type ServiceStandard struct {
	ExpectedDeliveryDate string
	ExpectedTransitTime  string
}

// TaxAmount is a tax figure the carrier may encode either as a bare value
// or as a value wrapped with a percent attribute. Both forms carry the
// amount as character data; the attributed form adds the rate it was
// computed at. A missing field is the zero TaxAmount.
type TaxAmount struct {
	// Value is the raw textual amount; empty when the field was absent.
	Value string
	// Percent is the optional tax rate attribute; informational only.
	Percent string
}

// Amount extracts the numeric tax amount. Absent or unparseable values
// resolve to 0 rather than an error; a missing tax is simply not charged.
func (t TaxAmount) Amount() float64 {
	v := strings.TrimSpace(t.Value)
	if v == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return amount
}
