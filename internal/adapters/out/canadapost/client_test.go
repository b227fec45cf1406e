package canadapost_test

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiprates/internal/adapters/out/canadapost"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/ports"
	"shiprates/internal/pkg/errs"
)

const priceQuotesFixture = `<?xml version="1.0" encoding="UTF-8"?>
<price-quotes xmlns="http://www.canadapost.ca/ws/ship/rate-v4">
  <price-quote>
    <service-code>DOM.EP</service-code>
    <service-name>Expedited Parcel</service-name>
    <price-details>
      <due>10.59</due>
      <taxes>
        <gst>0.00</gst>
        <pst>0.00</pst>
        <hst percent="13.000">1.38</hst>
      </taxes>
    </price-details>
    <service-standard>
      <expected-delivery-date>2026-09-02</expected-delivery-date>
      <expected-transit-time>3</expected-transit-time>
    </service-standard>
  </price-quote>
  <price-quote>
    <service-code>DOM.RP</service-code>
    <service-name>Regular Parcel</service-name>
    <price-details>
      <due>9.59</due>
      <taxes>
        <gst>0.48</gst>
        <pst>0.00</pst>
        <hst>0.00</hst>
      </taxes>
    </price-details>
  </price-quote>
</price-quotes>`

const errorFixture = `<?xml version="1.0" encoding="UTF-8"?>
<messages xmlns="http://www.canadapost.ca/ws/messages">
  <message>
    <code>AA004</code>
    <description>You cannot mail on behalf of the requested customer.</description>
  </message>
</messages>`

func testCredentials() canadapost.Credentials {
	return canadapost.Credentials{
		CustomerNumber: "2004381",
		ContractID:     "42708517",
		Username:       "mobile-user",
		Password:       "mobile-pass",
	}
}

func rateRequest(t *testing.T, country, postal string) ports.RateRequest {
	t.Helper()
	classifier, err := kernel.NewClassifier("CA", "US")
	require.NoError(t, err)
	dest, err := classifier.NewDestination(country, postal)
	require.NoError(t, err)

	return ports.RateRequest{
		OriginPostalCode: " k1a 0b1 ",
		Destination:      dest,
		WeightKg:         1.5,
		Dimensions:       kernel.NewDimensionsOrDefault(30, 20, 10),
	}
}

func newTestClient(serverURL string, httpClient *http.Client) *canadapost.Client {
	logger := slog.New(slog.DiscardHandler)
	return canadapost.NewClientWithBaseURL(serverURL, httpClient, testCredentials(), logger)
}

func TestClient_GetRates_DomesticScenario(t *testing.T) {
	// Given
	var gotBody string
	var gotAuth, gotContentType, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(priceQuotesFixture))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.Client())

	// When
	raw, err := client.GetRates(t.Context(), rateRequest(t, "CA", "m5v 3l9"))

	// Then
	require.NoError(t, err)

	expectedAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("mobile-user:mobile-pass"))
	assert.Equal(t, expectedAuth, gotAuth)
	assert.Equal(t, "application/vnd.cpc.ship.rate-v4+xml", gotContentType)
	assert.Equal(t, "/rs/ship/price", gotPath)

	assert.Contains(t, gotBody, "<customer-number>2004381</customer-number>")
	assert.Contains(t, gotBody, "<contract-id>42708517</contract-id>")
	// Origin is whitespace-stripped and upper-cased.
	assert.Contains(t, gotBody, "<origin-postal-code>K1A0B1</origin-postal-code>")
	// Domestic destination postal code is upper-cased only.
	assert.Contains(t, gotBody, "<domestic><postal-code>M5V 3L9</postal-code></domestic>")
	assert.Contains(t, gotBody, "<weight>1.5</weight>")
	assert.NotContains(t, gotBody, "united-states")
	assert.NotContains(t, gotBody, "international")

	require.Len(t, raw.PriceQuotes, 2)
	first := raw.PriceQuotes[0]
	assert.Equal(t, "DOM.EP", first.ServiceCode)
	assert.Equal(t, "Expedited Parcel", first.ServiceName)
	assert.InDelta(t, 10.59, first.Due, 1e-9)
	assert.InDelta(t, 1.38, first.Hst.Amount(), 1e-9)
	assert.Equal(t, "13.000", first.Hst.Percent)
	require.NotNil(t, first.Standard)
	assert.Equal(t, "2026-09-02", first.Standard.ExpectedDeliveryDate)
	assert.Equal(t, "3", first.Standard.ExpectedTransitTime)

	second := raw.PriceQuotes[1]
	assert.InDelta(t, 0.48, second.Gst.Amount(), 1e-9)
	assert.Nil(t, second.Standard)
}

func TestClient_GetRates_TradingPartnerScenario(t *testing.T) {
	// Given
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(priceQuotesFixture))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.Client())

	// When
	_, err := client.GetRates(t.Context(), rateRequest(t, "US", "10001-1234"))

	// Then: ZIP passed through untouched inside the united-states element.
	require.NoError(t, err)
	assert.Contains(t, gotBody, "<united-states><zip-code>10001-1234</zip-code></united-states>")
	assert.NotContains(t, gotBody, "domestic")
}

func TestClient_GetRates_InternationalScenario(t *testing.T) {
	t.Run("with_postal_code", func(t *testing.T) {
		var gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			_, _ = w.Write([]byte(priceQuotesFixture))
		}))
		defer server.Close()

		client := newTestClient(server.URL, server.Client())

		_, err := client.GetRates(t.Context(), rateRequest(t, "JP", "100-0001"))

		require.NoError(t, err)
		assert.Contains(t, gotBody, "<country-code>JP</country-code>")
		assert.Contains(t, gotBody, "<postal-code>100-0001</postal-code>")
	})

	t.Run("postal_code_is_optional", func(t *testing.T) {
		var gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			_, _ = w.Write([]byte(priceQuotesFixture))
		}))
		defer server.Close()

		client := newTestClient(server.URL, server.Client())

		_, err := client.GetRates(t.Context(), rateRequest(t, "JP", ""))

		require.NoError(t, err)
		assert.Contains(t, gotBody, "<country-code>JP</country-code>")
		assert.NotContains(t, gotBody, "<postal-code>")
	})
}

func TestClient_GetRates_ErrorStatus(t *testing.T) {
	// Given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(errorFixture))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.Client())

	// When
	_, err := client.GetRates(t.Context(), rateRequest(t, "CA", "M5V 3L9"))

	// Then: the structured carrier messages ride along on the error.
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUpstreamFailure)

	var apiErr *canadapost.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	require.Len(t, apiErr.Messages, 1)
	assert.Equal(t, "AA004", apiErr.Messages[0].Code)
	assert.Contains(t, apiErr.Error(), "AA004")
}

func TestClient_GetRates_UnparseableBody(t *testing.T) {
	// Given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("this is not xml"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.Client())

	// When
	_, err := client.GetRates(t.Context(), rateRequest(t, "CA", "M5V 3L9"))

	// Then
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUpstreamFailure)
}

func TestEnvironment_BaseURL(t *testing.T) {
	assert.Equal(t, "https://soa-gw.canadapost.ca", canadapost.EnvironmentProduction.BaseURL())
	assert.Equal(t, "https://ct.soa-gw.canadapost.ca", canadapost.EnvironmentTest.BaseURL())
	// Unknown values fall back to the sandbox.
	assert.Equal(t, "https://ct.soa-gw.canadapost.ca", canadapost.Environment("staging").BaseURL())
}
