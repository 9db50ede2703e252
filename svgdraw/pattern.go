package svgdraw

import (
	"image/color"

	"github.com/pitdicker/librsvg/svgpath"
)

// Pattern is the content of a paint server reference,
// either a PlainColor or a Gradient.
type Pattern interface {
	isPattern()
}

// PlainColor is a Pattern filling with a single color.
type PlainColor struct {
	color.NRGBA
}

func (PlainColor) isPattern() {}
func (Gradient) isPattern()   {}

// NewPlainColor builds an opaque color from its components.
func NewPlainColor(r, g, b, a uint8) PlainColor {
	return PlainColor{NRGBA: color.NRGBA{R: r, G: g, B: b, A: a}}
}

// GradientUnits is the type for gradient units
type GradientUnits byte

// SVG bounds parameter constants
const (
	ObjectBoundingBox GradientUnits = iota
	UserSpaceOnUse
)

// SpreadMethod is the type for spread parameters
type SpreadMethod byte

// SVG spread parameter constants
const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

// GradStop represents a stop in the SVG 2.0 gradient specification
type GradStop struct {
	StopColor color.Color
	Offset    float64
	Opacity   float64
}

// Gradient holds a description of an SVG 2.0 gradient
type Gradient struct {
	Direction GradientDirecter
	Stops     []GradStop
	Bounds    struct{ X, Y, W, H float64 }
	Matrix    svgpath.Matrix2D
	Spread    SpreadMethod
	Units     GradientUnits
}

// GradientDirecter discriminates radial and linear gradients.
type GradientDirecter interface {
	IsRadial() bool
}

// Linear is the direction of a linear gradient: x1, y1, x2, y2
type Linear [4]float64

func (Linear) IsRadial() bool { return false }

// Radial is the direction of a radial gradient: cx, cy, fx, fy, r, fr
type Radial [6]float64

func (Radial) IsRadial() bool { return true }
