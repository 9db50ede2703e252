package svgstyle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pitdicker/librsvg/svgdraw"
	"github.com/pitdicker/librsvg/svgpath"
)

// ValueError reports a malformed property value.
type ValueError struct {
	Property string
	Value    string
}

func (e ValueError) Error() string {
	return fmt.Sprintf("invalid value %q for property %s", e.Value, e.Property)
}

// SetProperty parses a value string and records it as the specified
// value for the property. The value "inherit" is recorded as an
// explicit inherit. A parse failure leaves the previous declaration
// untouched and returns a ValueError.
func (v *SpecifiedValues) SetProperty(p Property, value string) error {
	value = strings.TrimSpace(value)
	if value == "inherit" {
		v.state[p] = stateInherit
		return nil
	}
	if err := parsePropertyValue(&v.values, p, value); err != nil {
		return err
	}
	v.state[p] = stateSpecified
	return nil
}

// SetAttribute records a presentation attribute if its name matches a
// supported property. It reports whether the name was recognized.
func (v *SpecifiedValues) SetAttribute(name, value string) (bool, error) {
	p, ok := ParseProperty(name)
	if !ok {
		return false, nil
	}
	return true, v.SetProperty(p, value)
}

func parsePropertyValue(dst *ComputedValues, p Property, value string) error {
	badValue := ValueError{Property: p.String(), Value: value}
	switch p {
	case PropBaselineShift:
		switch value {
		case "baseline":
			dst.BaselineShift = 0
		case "sub":
			dst.BaselineShift = -0.2
		case "super":
			dst.BaselineShift = 0.4
		default:
			if !strings.HasSuffix(value, "%") {
				return badValue
			}
			f, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
			if err != nil {
				return badValue
			}
			dst.BaselineShift = f / 100
		}
	case PropColor:
		c, err := ParseColor(value)
		if err != nil {
			return badValue
		}
		dst.Color = c
	case PropDirection:
		switch value {
		case "ltr":
			dst.Direction = svgdraw.DirectionLtr
		case "rtl":
			dst.Direction = svgdraw.DirectionRtl
		default:
			return badValue
		}
	case PropDisplay:
		// every value other than none displays
		dst.Display = value != "none"
	case PropFill:
		paint, err := ParsePaint(value)
		if err != nil {
			return badValue
		}
		dst.Fill = paint
	case PropFillOpacity:
		return parseOpacity(&dst.FillOpacity, value, badValue)
	case PropFillRule:
		switch value {
		case "nonzero":
			dst.FillRule = FillRuleNonZero
		case "evenodd":
			dst.FillRule = FillRuleEvenOdd
		default:
			return badValue
		}
	case PropFontFamily:
		if value == "" {
			return badValue
		}
		dst.FontFamily = value
	case PropFontSize:
		f, err := parseLength(value)
		if err != nil || f < 0 {
			return badValue
		}
		dst.FontSize = f
	case PropFontStretch:
		stretch, ok := fontStretches[value]
		if !ok {
			return badValue
		}
		dst.FontStretch = stretch
	case PropFontStyle:
		switch value {
		case "normal":
			dst.FontStyle = svgdraw.FontStyleNormal
		case "italic":
			dst.FontStyle = svgdraw.FontStyleItalic
		case "oblique":
			dst.FontStyle = svgdraw.FontStyleOblique
		default:
			return badValue
		}
	case PropFontVariant:
		switch value {
		case "normal":
			dst.FontVariant = svgdraw.FontVariantNormal
		case "small-caps":
			dst.FontVariant = svgdraw.FontVariantSmallCaps
		default:
			return badValue
		}
	case PropFontWeight:
		switch value {
		case "normal":
			dst.FontWeight = 400
		case "bold":
			dst.FontWeight = 700
		default:
			w, err := strconv.Atoi(value)
			if err != nil || w < 100 || w > 900 || w%100 != 0 {
				return badValue
			}
			dst.FontWeight = w
		}
	case PropLetterSpacing:
		if value == "normal" {
			dst.LetterSpacing = 0
			break
		}
		f, err := parseLength(value)
		if err != nil {
			return badValue
		}
		dst.LetterSpacing = f
	case PropOpacity:
		return parseOpacity(&dst.Opacity, value, badValue)
	case PropStopColor:
		if value == "currentColor" {
			dst.StopColor = Paint{Kind: PaintCurrentColor}
			break
		}
		c, err := ParseColor(value)
		if err != nil {
			return badValue
		}
		dst.StopColor = Paint{Kind: PaintColor, Color: c}
	case PropStopOpacity:
		return parseOpacity(&dst.StopOpacity, value, badValue)
	case PropStroke:
		paint, err := ParsePaint(value)
		if err != nil {
			return badValue
		}
		dst.Stroke = paint
	case PropStrokeDasharray:
		if value == "none" {
			dst.StrokeDasharray = nil
			break
		}
		dashes, err := svgpath.ParseNumberList(value)
		if err != nil || len(dashes) == 0 {
			return badValue
		}
		for _, d := range dashes {
			if d < 0 {
				return badValue
			}
		}
		dst.StrokeDasharray = dashes
	case PropStrokeDashoffset:
		f, err := parseLength(value)
		if err != nil {
			return badValue
		}
		dst.StrokeDashoffset = f
	case PropStrokeLinecap:
		switch value {
		case "butt":
			dst.StrokeLinecap = svgdraw.ButtCap
		case "round":
			dst.StrokeLinecap = svgdraw.RoundCap
		case "square":
			dst.StrokeLinecap = svgdraw.SquareCap
		default:
			return badValue
		}
	case PropStrokeLinejoin:
		switch value {
		case "miter":
			dst.StrokeLinejoin = svgdraw.Miter
		case "miter-clip":
			dst.StrokeLinejoin = svgdraw.MiterClip
		case "round":
			dst.StrokeLinejoin = svgdraw.Round
		case "bevel":
			dst.StrokeLinejoin = svgdraw.Bevel
		case "arcs":
			dst.StrokeLinejoin = svgdraw.Arc
		default:
			return badValue
		}
	case PropStrokeMiterlimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 1 {
			return badValue
		}
		dst.StrokeMiterlimit = f
	case PropStrokeOpacity:
		return parseOpacity(&dst.StrokeOpacity, value, badValue)
	case PropStrokeWidth:
		f, err := parseLength(value)
		if err != nil || f < 0 {
			return badValue
		}
		dst.StrokeWidth = f
	case PropTextAnchor:
		switch value {
		case "start":
			dst.TextAnchor = TextAnchorStart
		case "middle":
			dst.TextAnchor = TextAnchorMiddle
		case "end":
			dst.TextAnchor = TextAnchorEnd
		default:
			return badValue
		}
	case PropTextRendering:
		switch value {
		case "auto":
			dst.TextRendering = svgdraw.TextRenderingAuto
		case "optimizeSpeed":
			dst.TextRendering = svgdraw.TextRenderingOptimizeSpeed
		case "optimizeLegibility":
			dst.TextRendering = svgdraw.TextRenderingOptimizeLegibility
		case "geometricPrecision":
			dst.TextRendering = svgdraw.TextRenderingGeometricPrecision
		default:
			return badValue
		}
	case PropUnicodeBidi:
		switch value {
		case "normal":
			dst.UnicodeBidi = svgdraw.UnicodeBidiNormal
		case "embed":
			dst.UnicodeBidi = svgdraw.UnicodeBidiEmbed
		case "bidi-override":
			dst.UnicodeBidi = svgdraw.UnicodeBidiOverride
		default:
			return badValue
		}
	case PropVisibility:
		switch value {
		case "visible":
			dst.Visibility = true
		case "hidden", "collapse":
			dst.Visibility = false
		default:
			return badValue
		}
	case PropWritingMode:
		switch value {
		case "lr", "lr-tb":
			dst.WritingMode = svgdraw.WritingModeLrTb
		case "rl", "rl-tb":
			dst.WritingMode = svgdraw.WritingModeRlTb
		case "tb", "tb-rl":
			dst.WritingMode = svgdraw.WritingModeTbRl
		default:
			return badValue
		}
	case PropXMLLang:
		dst.XMLLang = value
	case PropXMLSpace:
		switch value {
		case "default":
			dst.XMLSpace = XMLSpaceDefault
		case "preserve":
			dst.XMLSpace = XMLSpacePreserve
		default:
			return badValue
		}
	}
	return nil
}

var fontStretches = map[string]svgdraw.FontStretch{
	"normal":          svgdraw.FontStretchNormal,
	"wider":           svgdraw.FontStretchExpanded,
	"narrower":        svgdraw.FontStretchCondensed,
	"ultra-condensed": svgdraw.FontStretchUltraCondensed,
	"extra-condensed": svgdraw.FontStretchExtraCondensed,
	"condensed":       svgdraw.FontStretchCondensed,
	"semi-condensed":  svgdraw.FontStretchSemiCondensed,
	"semi-expanded":   svgdraw.FontStretchSemiExpanded,
	"expanded":        svgdraw.FontStretchExpanded,
	"extra-expanded":  svgdraw.FontStretchExtraExpanded,
	"ultra-expanded":  svgdraw.FontStretchUltraExpanded,
}

// parseLength accepts a number with an optional px or pt unit.
func parseLength(value string) (float64, error) {
	if strings.HasSuffix(value, "pt") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(value, "pt"), 64)
		return f * 96 / 72, err
	}
	return svgpath.ParseNumber(value)
}

// parseOpacity accepts a number or percentage, clamped to [0, 1].
func parseOpacity(dst *float64, value string, badValue ValueError) error {
	var f float64
	var err error
	if strings.HasSuffix(value, "%") {
		f, err = strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		f /= 100
	} else {
		f, err = strconv.ParseFloat(value, 64)
	}
	if err != nil {
		return badValue
	}
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	*dst = f
	return nil
}
