package kernel

import (
	"strings"

	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// DestinationKind classifies a destination relative to the configured
// origin market.
type DestinationKind string

const (
	// DestinationDomestic is a destination inside the origin market.
	DestinationDomestic DestinationKind = "domestic"
	// DestinationTradingPartner is a destination in the origin market's
	// primary trading partner.
	DestinationTradingPartner DestinationKind = "trading-partner"
	// DestinationInternational is any other destination.
	DestinationInternational DestinationKind = "international"
)

// ErrDestinationIsNotConstructed is returned when attempting to use an
// improperly initialized Destination.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"destination must be created via Classifier.NewDestination")

// Classifier classifies destination country codes against a configured
// origin market. The same classification is consumed by the tariff
// evaluator, the carrier client, and the orchestrator, so the three-way
// country branching lives in exactly one place.
type Classifier struct {
	originCountry  string
	partnerCountry string
}

// NewClassifier creates a Classifier for the given origin market and its
// primary trading partner (ISO-2 country codes, e.g. "CA" and "US").
func NewClassifier(originCountry, partnerCountry string) (Classifier, error) {
	if originCountry == "" {
		return Classifier{}, errs.NewValueIsRequiredError("originCountry")
	}
	if partnerCountry == "" {
		return Classifier{}, errs.NewValueIsRequiredError("partnerCountry")
	}

	return Classifier{
		originCountry:  strings.ToUpper(originCountry),
		partnerCountry: strings.ToUpper(partnerCountry),
	}, nil
}

// OriginCountry returns the configured origin market country code.
func (c Classifier) OriginCountry() string {
	return c.originCountry
}

// Classify returns the DestinationKind for a country code.
func (c Classifier) Classify(country string) DestinationKind {
	switch strings.ToUpper(country) {
	case c.originCountry:
		return DestinationDomestic
	case c.partnerCountry:
		return DestinationTradingPartner
	default:
		return DestinationInternational
	}
}

// NewDestination creates a classified Destination from a country code and
// an optional postal code. The country is required; postal code presence
// rules are enforced by the caller because they depend on the use case.
func (c Classifier) NewDestination(country, postalCode string) (Destination, error) {
	if country == "" {
		return Destination{}, errs.NewValueIsRequiredError("country")
	}

	return Destination{
		country:    strings.ToUpper(country),
		postalCode: postalCode,
		kind:       c.Classify(country),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Destination is an immutable value object describing where a shipment is
// headed, pre-classified against the origin market.
type Destination struct {
	country    string
	postalCode string
	kind       DestinationKind

	guard guard.ConstructorGuard
}

// Validate checks that the Destination was created via a Classifier.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// Country returns the upper-cased ISO-2 destination country code.
func (d Destination) Country() string {
	return d.country
}

// PostalCode returns the destination postal code as supplied; may be empty
// for international destinations.
func (d Destination) PostalCode() string {
	return d.postalCode
}

// Kind returns the destination classification.
func (d Destination) Kind() DestinationKind {
	return d.kind
}

// RequiresPostalCode reports whether this destination class needs a postal
// code (domestic and trading-partner destinations do).
func (d Destination) RequiresPostalCode() bool {
	return d.kind == DestinationDomestic || d.kind == DestinationTradingPartner
}
