package kernel

import (
	"fmt"

	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// WeightUnit identifies the unit a weight value is expressed in.
type WeightUnit string

const (
	// WeightUnitGrams is the gram unit ("g").
	WeightUnitGrams WeightUnit = "g"
	// WeightUnitKilograms is the kilogram unit ("kg").
	WeightUnitKilograms WeightUnit = "kg"
	// WeightUnitPounds is the avoirdupois pound unit ("lb").
	WeightUnitPounds WeightUnit = "lb"
)

const (
	gramsPerKilogram  = 1000.0
	kilogramsPerPound = 0.453592
	gramsPerPound     = 453.592
)

// ErrWeightIsNotConstructed is returned when attempting to use an improperly
// initialized Weight. Weights must be created via the NewWeight constructor.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight constructor")

// ToKilograms converts a value in the given unit to kilograms.
// An unrecognized unit is treated as kilograms already; no error is raised.
func ToKilograms(value float64, unit WeightUnit) float64 {
	switch unit {
	case WeightUnitGrams:
		return value / gramsPerKilogram
	case WeightUnitPounds:
		return value * kilogramsPerPound
	default:
		return value
	}
}

// ToGrams converts a value in the given unit to grams.
// An unrecognized unit is treated as grams already; no error is raised.
func ToGrams(value float64, unit WeightUnit) float64 {
	switch unit {
	case WeightUnitKilograms:
		return value * gramsPerKilogram
	case WeightUnitPounds:
		return value * gramsPerPound
	default:
		return value
	}
}

// Weight is an immutable value object holding a mass and its unit.
// The zero value is invalid; use NewWeight.
//
// Example:
//
//	w, err := kernel.NewWeight(1.5, kernel.WeightUnitKilograms)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(w.Grams()) // 1500
type Weight struct {
	value float64
	unit  WeightUnit

	guard guard.ConstructorGuard
}

// NewWeight creates a Weight from a non-negative value and its unit.
// An unrecognized unit is accepted and treated as the conversion default,
// matching the tolerant behavior of the conversion functions.
func NewWeight(value float64, unit WeightUnit) (Weight, error) {
	if value < 0 {
		return Weight{}, errs.NewValueIsInvalidError("weight")
	}

	return Weight{
		value: value,
		unit:  unit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Weight was created via its constructor.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Value returns the weight magnitude in its original unit.
func (w Weight) Value() float64 {
	return w.value
}

// Unit returns the unit the weight was expressed in.
func (w Weight) Unit() WeightUnit {
	return w.unit
}

// Kilograms returns the weight converted to kilograms.
func (w Weight) Kilograms() float64 {
	return ToKilograms(w.value, w.unit)
}

// Grams returns the weight converted to grams.
func (w Weight) Grams() float64 {
	return ToGrams(w.value, w.unit)
}

// String returns a human-readable representation such as "1.5kg".
func (w Weight) String() string {
	return fmt.Sprintf("%g%s", w.value, w.unit)
}
