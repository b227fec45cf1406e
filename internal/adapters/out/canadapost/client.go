// Package canadapost implements the carrier quote client against the
// Canada Post rating API: it builds the XML mailing scenario, issues the
// authenticated call, and parses the response into the carrier-agnostic
// RawQuote form.
package canadapost

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/ports"
	"shiprates/internal/pkg/errs"
)

// Environment selects which carrier endpoint requests go to.
type Environment string

const (
	// EnvironmentTest targets the carrier sandbox.
	EnvironmentTest Environment = "test"
	// EnvironmentProduction targets the live rating service.
	EnvironmentProduction Environment = "production"
)

// BaseURL returns the endpoint for the environment. Anything other than
// production resolves to the sandbox, so a misconfigured environment never
// rates against live credentials by accident.
func (e Environment) BaseURL() string {
	if e == EnvironmentProduction {
		return "https://soa-gw.canadapost.ca"
	}
	return "https://ct.soa-gw.canadapost.ca"
}

const (
	ratePath        = "/rs/ship/price"
	rateContentType = "application/vnd.cpc.ship.rate-v4+xml"
)

// Credentials holds the customer and contract identity embedded in every
// mailing scenario plus the Basic auth pair.
type Credentials struct {
	CustomerNumber string
	ContractID     string
	Username       string
	Password       string
}

// Message is one structured entry from the carrier's error body.
type Message struct {
	Code        string
	Description string
}

// APIError is returned when the carrier call comes back with an error
// status or an unparseable body. It carries the carrier's own messages
// when they could be extracted.
type APIError struct {
	StatusCode int
	Messages   []Message
	Cause      error
}

func (e *APIError) Error() string {
	var details []string
	for _, m := range e.Messages {
		details = append(details, fmt.Sprintf("%s: %s", m.Code, m.Description))
	}
	msg := fmt.Sprintf("canada post rating call failed with status %d", e.StatusCode)
	if len(details) > 0 {
		msg += " (" + strings.Join(details, "; ") + ")"
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return errs.ErrUpstreamFailure
}

// Client implements ports.CarrierGateway against the Canada Post rating
// API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      Credentials
	logger     *slog.Logger
}

// NewClient creates a Client for the given environment.
func NewClient(env Environment, creds Credentials, logger *slog.Logger) *Client {
	return NewClientWithBaseURL(env.BaseURL(), http.DefaultClient, creds, logger)
}

// NewClientWithBaseURL creates a Client with an explicit base URL and HTTP
// client, for tests.
func NewClientWithBaseURL(baseURL string, httpClient *http.Client, creds Credentials, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		creds:      creds,
		logger:     logger.With("component", "canadapost_client"),
	}
}

// GetRates prices a parcel with the carrier and returns the parsed
// intermediate quote. Fails with *APIError on an error-status response or
// a body that cannot be parsed.
func (c *Client) GetRates(ctx context.Context, req ports.RateRequest) (quote.RawQuote, error) {
	payload, err := xml.Marshal(c.buildScenario(req))
	if err != nil {
		return quote.RawQuote{}, fmt.Errorf("marshal mailing scenario: %w", err)
	}
	body := append([]byte(xml.Header), payload...)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ratePath, bytes.NewReader(body))
	if err != nil {
		return quote.RawQuote{}, fmt.Errorf("build rating request: %w", err)
	}
	httpReq.SetBasicAuth(c.creds.Username, c.creds.Password)
	httpReq.Header.Set("Content-Type", rateContentType)
	httpReq.Header.Set("Accept", rateContentType)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return quote.RawQuote{}, &APIError{Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return quote.RawQuote{}, &APIError{StatusCode: resp.StatusCode, Cause: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return quote.RawQuote{}, c.errorFromBody(resp.StatusCode, respBody)
	}

	var parsed priceQuotesResponse
	if err = xml.Unmarshal(respBody, &parsed); err != nil {
		return quote.RawQuote{}, &APIError{StatusCode: resp.StatusCode, Cause: err}
	}

	return toRawQuote(parsed), nil
}

// buildScenario assembles the request payload, normalizing postal codes
// the way the carrier expects: the origin is stripped of whitespace and
// upper-cased; a domestic destination postal code is upper-cased; a ZIP
// code is passed through untouched.
func (c *Client) buildScenario(req ports.RateRequest) mailingScenario {
	scenario := mailingScenario{
		Xmlns:          rateNamespace,
		CustomerNumber: c.creds.CustomerNumber,
		ContractID:     c.creds.ContractID,
		ParcelCharacteristics: parcelCharacteristics{
			WeightKg: req.WeightKg,
			Dimensions: parcelDimensions{
				Length: req.Dimensions.LengthCm(),
				Width:  req.Dimensions.WidthCm(),
				Height: req.Dimensions.HeightCm(),
			},
		},
		OriginPostalCode: normalizePostalCode(req.OriginPostalCode),
	}

	dest := req.Destination
	switch dest.Kind() {
	case kernel.DestinationDomestic:
		scenario.Destination.Domestic = &domesticDestination{
			PostalCode: strings.ToUpper(dest.PostalCode()),
		}
	case kernel.DestinationTradingPartner:
		scenario.Destination.UnitedStates = &unitedStatesDestination{
			ZipCode: dest.PostalCode(),
		}
	default:
		scenario.Destination.International = &internationalDestination{
			CountryCode: dest.Country(),
			PostalCode:  dest.PostalCode(),
		}
	}

	return scenario
}

// errorFromBody turns an error-status response into an *APIError carrying
// the carrier's structured messages when the body parses.
func (c *Client) errorFromBody(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var parsed messagesResponse
	if err := xml.Unmarshal(body, &parsed); err != nil || len(parsed.Messages) == 0 {
		return apiErr
	}

	for _, m := range parsed.Messages {
		apiErr.Messages = append(apiErr.Messages, Message{Code: m.Code, Description: m.Description})
	}
	return apiErr
}

func toRawQuote(parsed priceQuotesResponse) quote.RawQuote {
	raw := quote.RawQuote{
		PriceQuotes: make([]quote.RawPriceQuote, 0, len(parsed.PriceQuotes)),
	}

	for _, pq := range parsed.PriceQuotes {
		record := quote.RawPriceQuote{
			ServiceCode: pq.ServiceCode,
			ServiceName: pq.ServiceName,
			Due:         pq.PriceDetails.Due,
			Gst:         quote.TaxAmount{Value: pq.PriceDetails.Taxes.Gst.Value, Percent: pq.PriceDetails.Taxes.Gst.Percent},
			Pst:         quote.TaxAmount{Value: pq.PriceDetails.Taxes.Pst.Value, Percent: pq.PriceDetails.Taxes.Pst.Percent},
			Hst:         quote.TaxAmount{Value: pq.PriceDetails.Taxes.Hst.Value, Percent: pq.PriceDetails.Taxes.Hst.Percent},
		}
		if pq.ServiceStandard != nil {
			record.Standard = &quote.ServiceStandard{
				ExpectedDeliveryDate: pq.ServiceStandard.ExpectedDeliveryDate,
				ExpectedTransitTime:  pq.ServiceStandard.ExpectedTransitTime,
			}
		}
		raw.PriceQuotes = append(raw.PriceQuotes, record)
	}

	return raw
}

// normalizePostalCode strips all whitespace and upper-cases, "k1a 0b1"
// becoming "K1A0B1".
func normalizePostalCode(postal string) string {
	return strings.ToUpper(strings.Join(strings.Fields(postal), ""))
}
