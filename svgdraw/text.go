package svgdraw

import (
	"github.com/pitdicker/librsvg/svgpath"
)

// Text shaping contract. The layout code measures and positions text
// spans through a Shaper, so the shaping engine (and its font
// database) stays out of the document model.

// FontStyle is the type for the font-style property
type FontStyle uint8

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

// FontVariant is the type for the font-variant property
type FontVariant uint8

const (
	FontVariantNormal FontVariant = iota
	FontVariantSmallCaps
)

// FontStretch is the type for the font-stretch property
type FontStretch uint8

const (
	FontStretchNormal FontStretch = iota
	FontStretchUltraCondensed
	FontStretchExtraCondensed
	FontStretchCondensed
	FontStretchSemiCondensed
	FontStretchSemiExpanded
	FontStretchExpanded
	FontStretchExtraExpanded
	FontStretchUltraExpanded
)

// Direction is the type for the direction property
type Direction uint8

const (
	DirectionLtr Direction = iota
	DirectionRtl
)

// WritingMode is the type for the writing-mode property.
// The vertical modes lay chunks out along the y axis.
type WritingMode uint8

const (
	WritingModeLrTb WritingMode = iota
	WritingModeRlTb
	WritingModeTbRl
)

// IsVertical reports whether the inline axis is vertical.
func (w WritingMode) IsVertical() bool { return w == WritingModeTbRl }

// UnicodeBidi is the type for the unicode-bidi property
type UnicodeBidi uint8

const (
	UnicodeBidiNormal UnicodeBidi = iota
	UnicodeBidiEmbed
	UnicodeBidiOverride
)

// FontProperties collects the computed values a shaper needs to
// select a face and size the glyphs.
type FontProperties struct {
	Family        string
	Style         FontStyle
	Variant       FontVariant
	Stretch       FontStretch
	Weight        int // css numeric weight, 400 is normal
	Size          float64
	LetterSpacing float64
	Language      string // BCP 47 tag, may be empty
}

// ShapedRun is a piece of text shaped with a single set of font
// properties. Coordinates are in user units relative to the run
// origin, which sits on the baseline: the baseline offset of a run is
// always zero, and Ascent and Descent measure from it.
type ShapedRun interface {
	// Advance is the total advance along the inline axis.
	Advance() float64

	// Ascent is the distance from the baseline to the top of the run.
	Ascent() float64

	// Descent is the distance from the baseline to the bottom of the
	// run, as a positive value.
	Descent() float64

	// Outlines returns the glyph outlines, positioned relative to the
	// run origin, ready to be filled by a Driver.
	Outlines() []svgpath.Path
}

// Shaper turns text into positioned glyphs.
type Shaper interface {
	Shape(text string, props FontProperties) (ShapedRun, error)
}

// TextRendering is the quality hint forwarded to the backend.
type TextRendering uint8

const (
	TextRenderingAuto TextRendering = iota
	TextRenderingOptimizeSpeed
	TextRenderingOptimizeLegibility
	TextRenderingGeometricPrecision
)

// TextSpan is the draw request for one positioned span.
// A nil Fill or Stroke disables the corresponding painting.
type TextSpan struct {
	Run     ShapedRun
	X, Y    float64 // absolute draw origin on the baseline
	Visible bool

	Fill          Pattern
	FillOpacity   float64
	Stroke        Pattern
	StrokeOpacity float64
	StrokeOptions StrokeOptions

	Rendering TextRendering
}

// TextDriver is implemented by drivers that can paint shaped text.
type TextDriver interface {
	Driver

	// DrawText paints one span, applying the given transform, and
	// returns the extent of the painted glyphs.
	DrawText(span TextSpan, transform svgpath.Matrix2D) (BoundingBox, error)
}

// RenderingError wraps a failure surfaced from a drawing or shaping
// backend.
type RenderingError struct {
	Op  string // the operation that failed, such as "shape" or "fill"
	Err error
}

func (e RenderingError) Error() string {
	return "rendering: " + e.Op + ": " + e.Err.Error()
}

func (e RenderingError) Unwrap() error { return e.Err }
