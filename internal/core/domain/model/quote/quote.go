package quote

// NotAvailable is the sentinel used when the carrier does not report a
// delivery date or transit time for a service.
const NotAvailable = "N/A"

// PriceBreakdown holds the components of a quoted price, all in the output
// currency and rounded to two decimal places.
//
// Total is computed from the raw amount due plus the handling fee and is
// rounded independently of the component fields, so the displayed
// components will generally not sum exactly to Total. This mirrors the
// upstream billing behavior and is a known display simplification, not a
// defect.
type PriceBreakdown struct {
	Base  float64
	Gst   float64
	Pst   float64
	Hst   float64
	Total float64
}

// Quote is the uniform shape every rate source is normalized to.
type Quote struct {
	// ServiceName is the human-readable service label.
	ServiceName string
	// ServiceCode is the stable identifier for the service.
	ServiceCode string
	// Price is the full breakdown in the output currency.
	Price PriceBreakdown
	// DeliveryDate is the expected delivery date, or NotAvailable.
	DeliveryDate string
	// TransitDays is the expected transit range in days ("2-4"), or NotAvailable.
	TransitDays string
	// Currency is the ISO currency code the prices are expressed in.
	Currency string
	// Lettermail marks flat-rate tariff-table entries.
	Lettermail bool
	// SizeNote describes the maximum dimensions a lettermail tier allows.
	SizeNote string
}
