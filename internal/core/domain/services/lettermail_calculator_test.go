package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/services"
)

func destinationTo(t *testing.T, country string) kernel.Destination {
	t.Helper()
	classifier, err := kernel.NewClassifier("CA", "US")
	require.NoError(t, err)
	dest, err := classifier.NewDestination(country, "")
	require.NoError(t, err)
	return dest
}

func mustDims(t *testing.T, l, w, h float64) kernel.Dimensions {
	t.Helper()
	dims, err := kernel.NewDimensions(l, w, h)
	require.NoError(t, err)
	return dims
}

func TestLettermailCalculator_Evaluate_StandardTier(t *testing.T) {
	calc := services.NewLettermailCalculator()

	t.Run("light_letter_at_exact_standard_bounds_gets_standard_only", func(t *testing.T) {
		// Given: 3g is under the oversize minimum, dims exactly at the
		// standard maxima (245x156x5 mm).
		dims := mustDims(t, 24.5, 15.6, 0.5)

		// When
		options := calc.Evaluate(3, dims, destinationTo(t, "CA"))

		// Then
		require.Len(t, options, 1)
		assert.Equal(t, "Lettermail Standard", options[0].ServiceName)
		assert.Equal(t, "lettermail.standard", options[0].ServiceCode)
		assert.InDelta(t, 1.75, options[0].Price.Base, 1e-9)
		assert.InDelta(t, 1.75, options[0].Price.Total, 1e-9)
		assert.Equal(t, "2-4", options[0].TransitDays)
		assert.Equal(t, quote.NotAvailable, options[0].DeliveryDate)
		assert.True(t, options[0].Lettermail)
		assert.NotEmpty(t, options[0].SizeNote)
	})

	t.Run("standard_letter_heavy_enough_for_oversize_gets_both_tiers", func(t *testing.T) {
		// Given: 15g satisfies both tiers' weight ranges and the dims fit both.
		dims := mustDims(t, 24.5, 15.6, 0.5)

		// When
		options := calc.Evaluate(15, dims, destinationTo(t, "CA"))

		// Then
		require.Len(t, options, 2)
		assert.InDelta(t, 1.75, options[0].Price.Total, 1e-9)
		assert.Equal(t, "lettermail.oversize", options[1].ServiceCode)
		assert.InDelta(t, 3.11, options[1].Price.Total, 1e-9)
	})

	t.Run("standard_prices_per_destination", func(t *testing.T) {
		dims := mustDims(t, 20, 12, 0.3)

		tests := []struct {
			country     string
			wantPrice   float64
			wantTransit string
			wantName    string
		}{
			{country: "CA", wantPrice: 1.75, wantTransit: "2-4", wantName: "Lettermail Standard"},
			{country: "US", wantPrice: 2.00, wantTransit: "4-7", wantName: "Letter-post Standard"},
			{country: "DE", wantPrice: 3.50, wantTransit: "7-14", wantName: "Letter-post Standard"},
		}

		for _, tt := range tests {
			t.Run(tt.country, func(t *testing.T) {
				options := calc.Evaluate(3, dims, destinationTo(t, tt.country))

				require.Len(t, options, 1)
				assert.Equal(t, tt.wantName, options[0].ServiceName)
				assert.InDelta(t, tt.wantPrice, options[0].Price.Total, 1e-9)
				assert.Equal(t, tt.wantTransit, options[0].TransitDays)
			})
		}
	})

	t.Run("too_small_for_standard_is_excluded", func(t *testing.T) {
		// Given: under the 140x90 mm machine-sortable minimum.
		dims := mustDims(t, 10, 8, 0.2)

		// When
		options := calc.Evaluate(10, dims, destinationTo(t, "CA"))

		// Then: still fits oversize, so one entry, not two.
		require.Len(t, options, 1)
		assert.Equal(t, "lettermail.oversize", options[0].ServiceCode)
	})
}

func TestLettermailCalculator_Evaluate_OversizeTier(t *testing.T) {
	calc := services.NewLettermailCalculator()

	t.Run("us_250g_gets_oversize_only", func(t *testing.T) {
		// Given: 250g exceeds the 30g standard cap, 30x20x1 cm exceeds
		// the standard width cap but fits oversize.
		dims := mustDims(t, 30, 20, 1)

		// When
		options := calc.Evaluate(250, dims, destinationTo(t, "US"))

		// Then
		require.Len(t, options, 1)
		assert.Equal(t, "Letter-post Oversize", options[0].ServiceName)
		assert.Equal(t, "lettermail.oversize", options[0].ServiceCode)
		assert.InDelta(t, 7.16, options[0].Price.Total, 1e-9)
		assert.Equal(t, "5-10", options[0].TransitDays)
		assert.Zero(t, options[0].Price.Gst)
		assert.True(t, options[0].Lettermail)
	})

	t.Run("domestic_step_prices", func(t *testing.T) {
		dims := mustDims(t, 30, 20, 1)

		tests := []struct {
			weightG float64
			want    float64
		}{
			{weightG: 100, want: 3.11},
			{weightG: 150, want: 4.51},
			{weightG: 250, want: 5.91},
			{weightG: 350, want: 6.62},
			{weightG: 450, want: 7.05},
			{weightG: 500, want: 7.05},
		}

		for _, tt := range tests {
			options := calc.Evaluate(tt.weightG, dims, destinationTo(t, "CA"))
			require.Len(t, options, 1, "weight %vg", tt.weightG)
			assert.InDelta(t, tt.want, options[0].Price.Total, 1e-9, "weight %vg", tt.weightG)
		}
	})

	t.Run("international_step_prices", func(t *testing.T) {
		dims := mustDims(t, 30, 20, 1)

		tests := []struct {
			weightG float64
			want    float64
		}{
			{weightG: 80, want: 8.08},
			{weightG: 200, want: 13.38},
			{weightG: 500, want: 25.80},
		}

		for _, tt := range tests {
			options := calc.Evaluate(tt.weightG, dims, destinationTo(t, "JP"))
			require.Len(t, options, 1, "weight %vg", tt.weightG)
			assert.InDelta(t, tt.want, options[0].Price.Total, 1e-9, "weight %vg", tt.weightG)
		}
	})

	t.Run("over_weight_or_size_is_excluded_not_an_error", func(t *testing.T) {
		t.Run("too_heavy", func(t *testing.T) {
			options := calc.Evaluate(501, mustDims(t, 30, 20, 1), destinationTo(t, "CA"))
			assert.Empty(t, options)
		})

		t.Run("too_thick", func(t *testing.T) {
			options := calc.Evaluate(250, mustDims(t, 30, 20, 2.1), destinationTo(t, "CA"))
			assert.Empty(t, options)
		})

		t.Run("too_long", func(t *testing.T) {
			options := calc.Evaluate(250, mustDims(t, 38.1, 20, 1), destinationTo(t, "CA"))
			assert.Empty(t, options)
		})
	})
}

func TestLettermailCalculator_Evaluate_EdgeCases(t *testing.T) {
	calc := services.NewLettermailCalculator()

	t.Run("one_gram_is_below_both_minimums", func(t *testing.T) {
		options := calc.Evaluate(1, mustDims(t, 20, 12, 0.3), destinationTo(t, "CA"))
		assert.Empty(t, options)
	})

	t.Run("deterministic_for_identical_inputs", func(t *testing.T) {
		dims := mustDims(t, 24.5, 15.6, 0.5)
		dest := destinationTo(t, "US")

		first := calc.Evaluate(15, dims, dest)
		second := calc.Evaluate(15, dims, dest)

		assert.Equal(t, first, second)
	})
}
