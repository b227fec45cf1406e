package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiprates/internal/core/application/usecases/queries"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
)

func validQuery(t *testing.T) queries.GetShippingRatesQuery {
	t.Helper()
	query, err := queries.NewGetShippingRatesQuery(
		"CA", "123 Main Street", "Toronto", "ON", "M5V 3L9",
		250, kernel.WeightUnitGrams, 30, 20, 1)
	require.NoError(t, err)
	return query
}

func TestNewGetShippingRatesQuery(t *testing.T) {
	t.Run("valid_query", func(t *testing.T) {
		// When
		query := validQuery(t)

		// Then
		require.NoError(t, query.Validate())
		assert.Equal(t, "CA", query.Country())
		assert.Equal(t, "123 Main Street", query.Street())
		assert.Equal(t, "Toronto", query.City())
		assert.Equal(t, "ON", query.Province())
		assert.Equal(t, "M5V 3L9", query.PostalCode())
		assert.InDelta(t, 250.0, query.Weight().Grams(), 1e-9)
		assert.InDelta(t, 0.25, query.Weight().Kilograms(), 1e-9)
	})

	t.Run("validation_order_first_failure_wins", func(t *testing.T) {
		tests := []struct {
			name      string
			country   string
			street    string
			city      string
			province  string
			weight    float64
			wantParam string
		}{
			{name: "country first", country: "", street: "", city: "", province: "", weight: 0, wantParam: "country"},
			{name: "weight second", country: "CA", street: "", city: "", province: "", weight: 0, wantParam: "weight"},
			{name: "street third", country: "CA", street: "", city: "", province: "", weight: 250, wantParam: "street"},
			{name: "city fourth", country: "CA", street: "123 Main", city: "", province: "", weight: 250, wantParam: "city"},
			{name: "province fifth", country: "CA", street: "123 Main", city: "Toronto", province: "", weight: 250, wantParam: "province"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := queries.NewGetShippingRatesQuery(
					tt.country, tt.street, tt.city, tt.province, "",
					tt.weight, kernel.WeightUnitGrams, 0, 0, 0)

				require.ErrorIs(t, err, errs.ErrValueIsRequired)
				var requiredErr *errs.ValueIsRequiredError
				require.ErrorAs(t, err, &requiredErr)
				assert.Equal(t, tt.wantParam, requiredErr.ParamName)
			})
		}
	})

	t.Run("postal_code_is_not_required_by_the_constructor", func(t *testing.T) {
		// International destinations need no postal code; the handler
		// enforces the destination-specific rule.
		_, err := queries.NewGetShippingRatesQuery(
			"JP", "1 Chome", "Chiyoda", "Tokyo", "",
			100, kernel.WeightUnitGrams, 0, 0, 0)
		require.NoError(t, err)
	})

	t.Run("missing_dimensions_default_to_the_ten_centimetre_cube", func(t *testing.T) {
		query, err := queries.NewGetShippingRatesQuery(
			"CA", "123 Main Street", "Toronto", "ON", "M5V 3L9",
			1, kernel.WeightUnitKilograms, 0, 0, 0)
		require.NoError(t, err)

		dims := query.Dimensions()
		assert.InDelta(t, kernel.DefaultDimensionCm, dims.LengthCm(), 1e-9)
		assert.InDelta(t, kernel.DefaultDimensionCm, dims.WidthCm(), 1e-9)
		assert.InDelta(t, kernel.DefaultDimensionCm, dims.HeightCm(), 1e-9)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.GetShippingRatesQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetShippingRatesQueryIsNotConstructed)
	})
}
