// Package fixed implements the exact decimal arithmetic used for brick
// coordinates. All rounding is half away from zero on both signs, so
// repeated conversions are stable and match the BLB format exactly.
package fixed

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/bricktools/goblb/pkg/geometry"
)

// Component indices for Vec.
const (
	X = 0
	Y = 1
	Z = 2
)

var (
	// Precision is the default quantization step for coordinates.
	Precision = decimal.RequireFromString("0.000001")

	// PlateHeight is the height of one plate in scene units. Bricks are
	// 1 unit wide and deep but only 0.4 units tall per plate.
	PlateHeight = decimal.RequireFromString("0.4")

	two  = decimal.RequireFromString("2")
	one  = decimal.RequireFromString("1.0")
	half = decimal.RequireFromString("0.5")
)

// ErrInvalidStep is returned by Quantize when the step is zero or negative.
var ErrInvalidStep = errors.New("fixed: quantize step must be a positive decimal")

// Quantize returns the multiple of step nearest to v, with ties rounded
// half away from zero.
func Quantize(v, step decimal.Decimal) (decimal.Decimal, error) {
	if step.Sign() <= 0 {
		return decimal.Decimal{}, ErrInvalidStep
	}
	return v.Div(step).Round(0).Mul(step), nil
}

// Round quantizes v to the default Precision.
func Round(v decimal.Decimal) decimal.Decimal {
	q, _ := Quantize(v, Precision)
	return q
}

// FromFloat converts a binary float to a decimal quantized to the default
// Precision. The float is converted through its shortest decimal
// representation, never its raw binary expansion.
func FromFloat(f float64) decimal.Decimal {
	return Round(decimal.NewFromFloat(f))
}

// Vec is an XYZ coordinate triple in exact decimal form.
type Vec [3]decimal.Decimal

// VecFromFloats builds a Vec from float components, quantizing each to the
// default Precision.
func VecFromFloats(x, y, z float64) Vec {
	return Vec{FromFloat(x), FromFloat(y), FromFloat(z)}
}

// VecFromVector3 builds a Vec from a float vector, quantizing each
// component to the default Precision.
func VecFromVector3(v geometry.Vector3) Vec {
	return VecFromFloats(v.X, v.Y, v.Z)
}

// Sub returns v - other component-wise.
func (v Vec) Sub(other Vec) Vec {
	for i := range v {
		v[i] = v[i].Sub(other[i])
	}
	return v
}

// Add returns v + other component-wise.
func (v Vec) Add(other Vec) Vec {
	for i := range v {
		v[i] = v[i].Add(other[i])
	}
	return v
}

// Halved returns v with every component divided by two.
func (v Vec) Halved() Vec {
	for i := range v {
		v[i] = v[i].Div(two)
	}
	return v
}

// ZToPlates quantizes every component to the default Precision and scales
// the Z component from scene units to plates.
func (v Vec) ZToPlates() Vec {
	for i := range v {
		v[i] = Round(v[i])
	}
	v[Z] = v[Z].Div(PlateHeight)
	return v
}

// WorldToLocal translates v to be relative to the given origin.
func WorldToLocal(v, origin Vec) Vec {
	return v.Sub(origin)
}

// Center returns the center point of a box with the given minimum corner
// and dimensions.
func Center(min, dimensions Vec) Vec {
	return min.Add(dimensions.Halved())
}

// isEven reports whether d is exactly divisible by two.
func isEven(d decimal.Decimal) bool {
	return d.Mod(two).IsZero()
}

// RoundToPlateGrid rounds v to the nearest valid plate position inside a
// brick of the given dimensions (in scene units). Plate positions exist
// every 0.5 units on odd sized axes and every 1.0 units on even sized
// axes; the Z axis counts in plate heights.
func RoundToPlateGrid(v, brickDimensions Vec) Vec {
	var result Vec

	for _, axis := range [2]int{X, Y} {
		step := one
		if !isEven(brickDimensions[axis]) {
			step = half
		}
		result[axis], _ = Quantize(v[axis], step)
	}

	zStep := PlateHeight
	if !isEven(brickDimensions[Z].Div(PlateHeight)) {
		zStep = PlateHeight.Div(two)
	}
	result[Z], _ = Quantize(v[Z], zStep)

	return result
}

// WithinBounds reports whether every component of v lies inside
// [-dimensions/2, +dimensions/2], inclusive.
func (v Vec) WithinBounds(dimensions Vec) bool {
	halved := dimensions.Halved()
	for i := range v {
		if v[i].GreaterThan(halved[i]) || v[i].LessThan(halved[i].Neg()) {
			return false
		}
	}
	return true
}

// AllIntegral reports whether every component equals its own integer
// truncation.
func (v Vec) AllIntegral() bool {
	for i := range v {
		if !v[i].Equal(v[i].Truncate(0)) {
			return false
		}
	}
	return true
}

// Ceil returns v with every component rounded up to an integer.
func (v Vec) Ceil() Vec {
	for i := range v {
		v[i] = v[i].Ceil()
	}
	return v
}

// ToInts truncates every component to an int.
func (v Vec) ToInts() [3]int {
	return [3]int{int(v[X].IntPart()), int(v[Y].IntPart()), int(v[Z].IntPart())}
}

// Format renders a decimal for file output with trailing zeros removed.
func Format(d decimal.Decimal) string {
	s := d.String()
	// decimal.String keeps the stored exponent; a quantized value such as
	// 2.000000 should be written as 2.
	if hasFraction(s) {
		s = trimZeros(s)
	}
	return s
}

func hasFraction(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}

func trimZeros(s string) string {
	end := len(s)
	for end > 0 && s[end-1] == '0' {
		end--
	}
	if end > 0 && s[end-1] == '.' {
		end--
	}
	return s[:end]
}
