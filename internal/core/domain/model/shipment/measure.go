package shipment

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// SizeClass is the coarse size category of a parcel, used alongside the
// physical dimensions for courier-facing display and vehicle fit.
type SizeClass int

const (
	// SizeUnknown represents an invalid or undefined size class.
	SizeUnknown SizeClass = iota
	// SizeSmall fits in a courier bag.
	SizeSmall
	// SizeMedium fits on a motorbike rack or car seat.
	SizeMedium
	// SizeLarge requires a car boot or van.
	SizeLarge
)

func getSizeClassStrings() map[SizeClass]string {
	return map[SizeClass]string{
		SizeUnknown: "Unknown",
		SizeSmall:   "Small",
		SizeMedium:  "Medium",
		SizeLarge:   "Large",
	}
}

// Validate checks if the SizeClass is one of the defined categories.
func (s SizeClass) Validate() error {
	if s != SizeSmall && s != SizeMedium && s != SizeLarge {
		return errs.NewValueIsInvalidErrorWithCause("size class is invalid",
			fmt.Errorf("%d is not a valid size class", s))
	}
	return nil
}

// String returns the human-readable name of the size class.
func (s SizeClass) String() string {
	if str, ok := getSizeClassStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ErrMeasureIsNotConstructed is returned when using an improperly initialized
// Measure. Measures must be created via NewMeasure.
var ErrMeasureIsNotConstructed = errs.NewValueIsRequiredError(
	"measure must be created via the NewMeasure constructor")

// Measure describes the physical characteristics of a parcel: weight in
// kilograms, dimensions in centimeters, and a coarse size class.
// Measure is an immutable value object owned by exactly one shipment.
type Measure struct { //nolint:recvcheck //using for validation
	weight float64
	width  float64
	length float64
	height float64
	size   SizeClass
	guard  guard.ConstructorGuard
}

// NewMeasure creates a Measure with the given physical characteristics.
// Weight must be positive; dimensions must not be negative; the size class
// must be one of the defined categories.
func NewMeasure(weight, width, length, height float64, size SizeClass) (Measure, error) {
	m := Measure{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setWeight(weight),
		m.setDimensions(width, length, height),
		m.setSize(size),
	); err != nil {
		return Measure{}, err
	}

	return m, nil
}

// Validate checks if the Measure was properly constructed via NewMeasure.
func (m Measure) Validate() error {
	return m.guard.Validate(ErrMeasureIsNotConstructed)
}

// Weight returns the parcel weight in kilograms.
func (m Measure) Weight() float64 { return m.weight }

// Width returns the parcel width in centimeters.
func (m Measure) Width() float64 { return m.width }

// Length returns the parcel length in centimeters.
func (m Measure) Length() float64 { return m.length }

// Height returns the parcel height in centimeters.
func (m Measure) Height() float64 { return m.height }

// Size returns the coarse size class of the parcel.
func (m Measure) Size() SizeClass { return m.size }

func (m *Measure) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%f is not greater than 0", weight))
	}
	m.weight = weight
	return nil
}

func (m *Measure) setDimensions(width, length, height float64) error {
	if width < 0 || length < 0 || height < 0 {
		return errs.NewValueIsInvalidError("dimensions must not be negative")
	}
	m.width = width
	m.length = length
	m.height = height
	return nil
}

func (m *Measure) setSize(size SizeClass) error {
	if err := size.Validate(); err != nil {
		return err
	}
	m.size = size
	return nil
}
