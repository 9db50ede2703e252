package svgstyle

import (
	"image/color"

	"github.com/pitdicker/librsvg/svgdraw"
)

// FillRule selects the winding rule used when filling.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// TextAnchor aligns a text chunk relative to its anchor point.
type TextAnchor uint8

const (
	TextAnchorStart TextAnchor = iota
	TextAnchorMiddle
	TextAnchorEnd
)

// XMLSpace selects the whitespace handling of character data.
type XMLSpace uint8

const (
	XMLSpaceDefault XMLSpace = iota
	XMLSpacePreserve
)

// ComputedValues is the fully resolved value of every property at one
// node, as produced by cascade. The zero value is not meaningful, use
// InitialValues.
type ComputedValues struct {
	BaselineShift    float64 // fraction of the font size
	Color            color.NRGBA
	Direction        svgdraw.Direction
	Display          bool
	Fill             Paint
	FillOpacity      float64
	FillRule         FillRule
	FontFamily       string
	FontSize         float64
	FontStretch      svgdraw.FontStretch
	FontStyle        svgdraw.FontStyle
	FontVariant      svgdraw.FontVariant
	FontWeight       int
	LetterSpacing    float64
	Opacity          float64
	StopColor        Paint
	StopOpacity      float64
	Stroke           Paint
	StrokeDasharray  []float64
	StrokeDashoffset float64
	StrokeLinecap    svgdraw.CapMode
	StrokeLinejoin   svgdraw.JoinMode
	StrokeMiterlimit float64
	StrokeOpacity    float64
	StrokeWidth      float64
	TextAnchor       TextAnchor
	TextRendering    svgdraw.TextRendering
	UnicodeBidi      svgdraw.UnicodeBidi
	Visibility       bool
	WritingMode      svgdraw.WritingMode
	XMLLang          string
	XMLSpace         XMLSpace
}

// InitialValues returns the initial value of every property, used as
// the cascade entry point at the document root.
func InitialValues() ComputedValues {
	return ComputedValues{
		Color:            color.NRGBA{A: 0xff}, // black
		Display:          true,
		Fill:             Paint{Kind: PaintColor, Color: color.NRGBA{A: 0xff}},
		FillOpacity:      1,
		FontFamily:       "sans-serif",
		FontSize:         12,
		FontWeight:       400,
		Opacity:          1,
		StopColor:        Paint{Kind: PaintColor, Color: color.NRGBA{A: 0xff}},
		StopOpacity:      1,
		Stroke:           Paint{Kind: PaintNone},
		StrokeLinecap:    svgdraw.ButtCap,
		StrokeLinejoin:   svgdraw.Miter,
		StrokeMiterlimit: 4,
		StrokeOpacity:    1,
		StrokeWidth:      1,
		Visibility:       true,
	}
}

type valueState uint8

const (
	stateUnspecified valueState = iota
	stateInherit                // an explicit "inherit" value
	stateSpecified
)

// SpecifiedValues holds the properties declared on one node, each
// tagged unspecified, inherit or specified. The zero value is an
// empty set.
type SpecifiedValues struct {
	values ComputedValues
	state  [numProperties]valueState
}

// Has reports whether the property was declared (as a value or as an
// explicit "inherit").
func (v *SpecifiedValues) Has(p Property) bool {
	return v.state[p] != stateUnspecified
}

// SetInherit marks the property as explicitly inheriting.
func (v *SpecifiedValues) SetInherit(p Property) {
	v.state[p] = stateInherit
}

// Unset removes a declaration, reverting the property to unspecified.
func (v *SpecifiedValues) Unset(p Property) {
	v.state[p] = stateUnspecified
}

// copyProperty copies one property value between value sets.
func copyProperty(dst, src *ComputedValues, p Property) {
	switch p {
	case PropBaselineShift:
		dst.BaselineShift = src.BaselineShift
	case PropColor:
		dst.Color = src.Color
	case PropDirection:
		dst.Direction = src.Direction
	case PropDisplay:
		dst.Display = src.Display
	case PropFill:
		dst.Fill = src.Fill
	case PropFillOpacity:
		dst.FillOpacity = src.FillOpacity
	case PropFillRule:
		dst.FillRule = src.FillRule
	case PropFontFamily:
		dst.FontFamily = src.FontFamily
	case PropFontSize:
		dst.FontSize = src.FontSize
	case PropFontStretch:
		dst.FontStretch = src.FontStretch
	case PropFontStyle:
		dst.FontStyle = src.FontStyle
	case PropFontVariant:
		dst.FontVariant = src.FontVariant
	case PropFontWeight:
		dst.FontWeight = src.FontWeight
	case PropLetterSpacing:
		dst.LetterSpacing = src.LetterSpacing
	case PropOpacity:
		dst.Opacity = src.Opacity
	case PropStopColor:
		dst.StopColor = src.StopColor
	case PropStopOpacity:
		dst.StopOpacity = src.StopOpacity
	case PropStroke:
		dst.Stroke = src.Stroke
	case PropStrokeDasharray:
		dst.StrokeDasharray = src.StrokeDasharray
	case PropStrokeDashoffset:
		dst.StrokeDashoffset = src.StrokeDashoffset
	case PropStrokeLinecap:
		dst.StrokeLinecap = src.StrokeLinecap
	case PropStrokeLinejoin:
		dst.StrokeLinejoin = src.StrokeLinejoin
	case PropStrokeMiterlimit:
		dst.StrokeMiterlimit = src.StrokeMiterlimit
	case PropStrokeOpacity:
		dst.StrokeOpacity = src.StrokeOpacity
	case PropStrokeWidth:
		dst.StrokeWidth = src.StrokeWidth
	case PropTextAnchor:
		dst.TextAnchor = src.TextAnchor
	case PropTextRendering:
		dst.TextRendering = src.TextRendering
	case PropUnicodeBidi:
		dst.UnicodeBidi = src.UnicodeBidi
	case PropVisibility:
		dst.Visibility = src.Visibility
	case PropWritingMode:
		dst.WritingMode = src.WritingMode
	case PropXMLLang:
		dst.XMLLang = src.XMLLang
	case PropXMLSpace:
		dst.XMLSpace = src.XMLSpace
	}
}

var initialValues = InitialValues()

// ToComputed merges the inherited values with this node's specified
// values. Inherited properties keep the inherited value unless
// declared here; non-inheriting properties reset to their initial
// value unless declared here or explicitly set to "inherit".
func (v *SpecifiedValues) ToComputed(inherited *ComputedValues) ComputedValues {
	out := *inherited
	for p := Property(0); p < numProperties; p++ {
		switch v.state[p] {
		case stateUnspecified:
			if !propertyInherits[p] {
				copyProperty(&out, &initialValues, p)
			}
		case stateInherit:
			// inherited value already in place
		case stateSpecified:
			copyProperty(&out, &v.values, p)
		}
	}
	return out
}
