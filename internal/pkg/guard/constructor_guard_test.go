package guard_test

import (
	"errors"
	"testing"

	"shiprates/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a value object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Price struct {
		amount   float64
		currency string
		guard    guard.ConstructorGuard
	}

	var errPriceNotConstructed = errors.New("Price must be created via newPrice")

	newPrice := func(amount float64, currency string) (Price, error) {
		if amount < 0 {
			return Price{}, errors.New("amount cannot be negative")
		}
		if currency == "" {
			return Price{}, errors.New("currency is required")
		}
		return Price{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		price, err := newPrice(1.75, "CAD")

		// Then
		require.NoError(t, err)
		require.NoError(t, price.guard.Validate(errPriceNotConstructed))
		assert.InEpsilon(t, 1.75, price.amount, 1e-9)
		assert.Equal(t, "CAD", price.currency)
	})

	t.Run("zero_value_construction_fails_validation", func(t *testing.T) {
		// Given
		var price Price // zero value

		// When
		err := price.guard.Validate(errPriceNotConstructed)

		// Then
		require.Error(t, err)
		assert.Equal(t, errPriceNotConstructed, err)
	})
}
