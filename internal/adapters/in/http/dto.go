package http

import "shiprates/internal/core/domain/model/quote"

// rateRequest is the inbound JSON body for a rating request. Weight is
// required; dimensions are optional and default to the 10cm cube.
type rateRequest struct {
	Country    string  `json:"country"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	Province   string  `json:"province"`
	PostalCode string  `json:"postalCode"`
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weightUnit"`
	LengthCm   float64 `json:"length"`
	WidthCm    float64 `json:"width"`
	HeightCm   float64 `json:"height"`
}

type priceBreakdownDTO struct {
	Base  float64 `json:"base"`
	Gst   float64 `json:"gst"`
	Pst   float64 `json:"pst"`
	Hst   float64 `json:"hst"`
	Total float64 `json:"total"`
}

type rateDTO struct {
	ServiceName  string            `json:"serviceName"`
	ServiceCode  string            `json:"serviceCode"`
	Price        priceBreakdownDTO `json:"price"`
	DeliveryDate string            `json:"deliveryDate"`
	TransitDays  string            `json:"transitDays"`
	Currency     string            `json:"currency"`
	Lettermail   bool              `json:"lettermail"`
	SizeNote     string            `json:"sizeNote,omitempty"`
}

type ratesResponse struct {
	Rates  []rateDTO `json:"rates"`
	Origin string    `json:"origin"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toRateDTOs(rates []quote.Quote) []rateDTO {
	dtos := make([]rateDTO, len(rates))
	for i, r := range rates {
		dtos[i] = rateDTO{
			ServiceName: r.ServiceName,
			ServiceCode: r.ServiceCode,
			Price: priceBreakdownDTO{
				Base:  r.Price.Base,
				Gst:   r.Price.Gst,
				Pst:   r.Price.Pst,
				Hst:   r.Price.Hst,
				Total: r.Price.Total,
			},
			DeliveryDate: r.DeliveryDate,
			TransitDays:  r.TransitDays,
			Currency:     r.Currency,
			Lettermail:   r.Lettermail,
			SizeNote:     r.SizeNote,
		}
	}
	return dtos
}
