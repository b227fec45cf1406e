// Package queries contains the read operations of the rate pipeline.
// The shipping rates query is the aggregation entry point: it validates
// the inbound request, derives normalized units, and merges the tariff
// table with live carrier quotes.
package queries

import (
	"errors"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

var ErrGetShippingRatesQueryIsNotConstructed = errors.New(
	"GetShippingRatesQuery must be created via NewGetShippingRatesQuery constructor",
)

// GetShippingRatesQuery asks for every shipping option for one parcel
// from the configured origin to a destination address.
//
// Example:
//
//	query, err := NewGetShippingRatesQuery(
//	    "CA", "123 Main Street", "Toronto", "ON", "M5V 3L9",
//	    250, kernel.WeightUnitGrams, 30, 20, 1)
//	if err != nil {
//	    // missing required field, client error
//	}
type GetShippingRatesQuery struct { //nolint:recvcheck //using for validation
	country    string
	street     string
	city       string
	province   string
	postalCode string
	weight     kernel.Weight
	lengthCm   float64
	widthCm    float64
	heightCm   float64

	guard guard.ConstructorGuard
}

// NewGetShippingRatesQuery creates a shipping rates query. Validation is
// ordered and the first failure wins: country and weight first, then the
// address fields. Postal-code requirements depend on the configured
// origin market and are checked by the handler.
func NewGetShippingRatesQuery(
	country, street, city, province, postalCode string,
	weightValue float64, weightUnit kernel.WeightUnit,
	lengthCm, widthCm, heightCm float64,
) (GetShippingRatesQuery, error) {
	if country == "" {
		return GetShippingRatesQuery{}, errs.NewValueIsRequiredError("country")
	}
	if weightValue <= 0 {
		return GetShippingRatesQuery{}, errs.NewValueIsRequiredError("weight")
	}
	if street == "" {
		return GetShippingRatesQuery{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return GetShippingRatesQuery{}, errs.NewValueIsRequiredError("city")
	}
	if province == "" {
		return GetShippingRatesQuery{}, errs.NewValueIsRequiredError("province")
	}

	weight, err := kernel.NewWeight(weightValue, weightUnit)
	if err != nil {
		return GetShippingRatesQuery{}, err
	}

	return GetShippingRatesQuery{
		country:    country,
		street:     street,
		city:       city,
		province:   province,
		postalCode: postalCode,
		weight:     weight,
		lengthCm:   lengthCm,
		widthCm:    widthCm,
		heightCm:   heightCm,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShippingRatesQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingRatesQueryIsNotConstructed)
}

// Country returns the destination country code.
func (q GetShippingRatesQuery) Country() string {
	return q.country
}

// Street returns the destination street address.
func (q GetShippingRatesQuery) Street() string {
	return q.street
}

// City returns the destination city.
func (q GetShippingRatesQuery) City() string {
	return q.city
}

// Province returns the destination province or state.
func (q GetShippingRatesQuery) Province() string {
	return q.province
}

// PostalCode returns the destination postal code; may be empty.
func (q GetShippingRatesQuery) PostalCode() string {
	return q.postalCode
}

// Weight returns the parcel weight.
func (q GetShippingRatesQuery) Weight() kernel.Weight {
	return q.weight
}

// Dimensions returns the parcel dimensions, defaulting missing sides to
// the 10cm cube.
func (q GetShippingRatesQuery) Dimensions() kernel.Dimensions {
	return kernel.NewDimensionsOrDefault(q.lengthCm, q.widthCm, q.heightCm)
}

// GetShippingRatesQueryResponse is the aggregated result: tariff-table
// options followed by normalized carrier quotes, plus the origin postal
// code the quotes were computed from.
type GetShippingRatesQueryResponse struct {
	Rates  []quote.Quote
	Origin string
}
