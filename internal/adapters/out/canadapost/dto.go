package canadapost

import "encoding/xml"

// rateNamespace is the XML namespace of the rating v4 contract.
const rateNamespace = "http://www.canadapost.ca/ws/ship/rate-v4"

// mailingScenario is the request payload for POST /rs/ship/price.
type mailingScenario struct {
	XMLName               xml.Name              `xml:"mailing-scenario"`
	Xmlns                 string                `xml:"xmlns,attr"`
	CustomerNumber        string                `xml:"customer-number"`
	ContractID            string                `xml:"contract-id,omitempty"`
	ParcelCharacteristics parcelCharacteristics `xml:"parcel-characteristics"`
	OriginPostalCode      string                `xml:"origin-postal-code"`
	Destination           destinationElement    `xml:"destination"`
}

type parcelCharacteristics struct {
	// WeightKg is the parcel weight in kilograms.
	WeightKg   float64          `xml:"weight"`
	Dimensions parcelDimensions `xml:"dimensions"`
}

type parcelDimensions struct {
	// Centimetres throughout.
	Length float64 `xml:"length"`
	Width  float64 `xml:"width"`
	Height float64 `xml:"height"`
}

// destinationElement carries exactly one of its children, keyed on the
// destination classification.
type destinationElement struct {
	Domestic      *domesticDestination      `xml:"domestic,omitempty"`
	UnitedStates  *unitedStatesDestination  `xml:"united-states,omitempty"`
	International *internationalDestination `xml:"international,omitempty"`
}

type domesticDestination struct {
	PostalCode string `xml:"postal-code"`
}

type unitedStatesDestination struct {
	ZipCode string `xml:"zip-code"`
}

type internationalDestination struct {
	CountryCode string `xml:"country-code"`
	PostalCode  string `xml:"postal-code,omitempty"`
}

// priceQuotesResponse is the success body of POST /rs/ship/price.
type priceQuotesResponse struct {
	XMLName     xml.Name        `xml:"http://www.canadapost.ca/ws/ship/rate-v4 price-quotes"`
	PriceQuotes []priceQuoteXML `xml:"http://www.canadapost.ca/ws/ship/rate-v4 price-quote"`
}

type priceQuoteXML struct {
	ServiceCode     string              `xml:"service-code"`
	ServiceName     string              `xml:"service-name"`
	PriceDetails    priceDetailsXML     `xml:"price-details"`
	ServiceStandard *serviceStandardXML `xml:"service-standard"`
}

type priceDetailsXML struct {
	Due   float64  `xml:"due"`
	Taxes taxesXML `xml:"taxes"`
}

// taxAmountXML is the scalar-or-attributed tax form: the amount is always
// character data, the attributed variant adds a percent attribute.
type taxAmountXML struct {
	Value   string `xml:",chardata"`
	Percent string `xml:"percent,attr"`
}

type taxesXML struct {
	Gst taxAmountXML `xml:"gst"`
	Pst taxAmountXML `xml:"pst"`
	Hst taxAmountXML `xml:"hst"`
}

type serviceStandardXML struct {
	ExpectedDeliveryDate string `xml:"expected-delivery-date"`
	ExpectedTransitTime  string `xml:"expected-transit-time"`
}

// messagesResponse is the error body shape. Tags are not namespace
// qualified so the same shape matches the messages namespace the carrier
// uses on error responses.
type messagesResponse struct {
	XMLName  xml.Name     `xml:"messages"`
	Messages []messageXML `xml:"message"`
}

type messageXML struct {
	Code        string `xml:"code"`
	Description string `xml:"description"`
}
