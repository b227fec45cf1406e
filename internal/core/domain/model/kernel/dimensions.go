package kernel

import (
	"fmt"

	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// DefaultDimensionCm is the side length substituted for any missing parcel
// dimension, producing the default 10cm cube.
const DefaultDimensionCm = 10.0

const millimetresPerCentimetre = 10.0

// ErrDimensionsAreNotConstructed is returned when attempting to use improperly
// initialized Dimensions. Use NewDimensions or NewDimensionsOrDefault.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions or NewDimensionsOrDefault constructors")

// Dimensions is an immutable value object holding parcel dimensions in
// centimetres. The zero value is invalid; use a constructor.
type Dimensions struct {
	lengthCm float64
	widthCm  float64
	heightCm float64

	guard guard.ConstructorGuard
}

// NewDimensions creates Dimensions from positive lengths in centimetres.
func NewDimensions(lengthCm, widthCm, heightCm float64) (Dimensions, error) {
	if lengthCm <= 0 {
		return Dimensions{}, errs.NewValueIsInvalidError("length")
	}
	if widthCm <= 0 {
		return Dimensions{}, errs.NewValueIsInvalidError("width")
	}
	if heightCm <= 0 {
		return Dimensions{}, errs.NewValueIsInvalidError("height")
	}

	return Dimensions{
		lengthCm: lengthCm,
		widthCm:  widthCm,
		heightCm: heightCm,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewDimensionsOrDefault creates Dimensions substituting DefaultDimensionCm
// for any non-positive side. A request without dimensions therefore quotes
// for the default 10cm cube.
func NewDimensionsOrDefault(lengthCm, widthCm, heightCm float64) Dimensions {
	if lengthCm <= 0 {
		lengthCm = DefaultDimensionCm
	}
	if widthCm <= 0 {
		widthCm = DefaultDimensionCm
	}
	if heightCm <= 0 {
		heightCm = DefaultDimensionCm
	}

	dims, _ := NewDimensions(lengthCm, widthCm, heightCm)
	return dims
}

// Validate checks that the Dimensions were created via a constructor.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// LengthCm returns the longest side in centimetres.
func (d Dimensions) LengthCm() float64 {
	return d.lengthCm
}

// WidthCm returns the width in centimetres.
func (d Dimensions) WidthCm() float64 {
	return d.widthCm
}

// HeightCm returns the height in centimetres.
func (d Dimensions) HeightCm() float64 {
	return d.heightCm
}

// LengthMm returns the length in millimetres.
func (d Dimensions) LengthMm() float64 {
	return d.lengthCm * millimetresPerCentimetre
}

// WidthMm returns the width in millimetres.
func (d Dimensions) WidthMm() float64 {
	return d.widthCm * millimetresPerCentimetre
}

// HeightMm returns the height in millimetres.
func (d Dimensions) HeightMm() float64 {
	return d.heightCm * millimetresPerCentimetre
}

// String returns a human-readable representation such as "20x15x5cm".
func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%gcm", d.lengthCm, d.widthCm, d.heightCm)
}
