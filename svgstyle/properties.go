// Implements the style properties of SVG elements:
// parsing of presentation attributes and css declarations,
// and the resolution of specified values into computed values.
package svgstyle

// Property identifies one supported style property.
type Property uint8

const (
	PropBaselineShift Property = iota
	PropColor
	PropDirection
	PropDisplay
	PropFill
	PropFillOpacity
	PropFillRule
	PropFontFamily
	PropFontSize
	PropFontStretch
	PropFontStyle
	PropFontVariant
	PropFontWeight
	PropLetterSpacing
	PropOpacity
	PropStopColor
	PropStopOpacity
	PropStroke
	PropStrokeDasharray
	PropStrokeDashoffset
	PropStrokeLinecap
	PropStrokeLinejoin
	PropStrokeMiterlimit
	PropStrokeOpacity
	PropStrokeWidth
	PropTextAnchor
	PropTextRendering
	PropUnicodeBidi
	PropVisibility
	PropWritingMode
	PropXMLLang
	PropXMLSpace

	numProperties
)

var propertyNames = [numProperties]string{
	PropBaselineShift:    "baseline-shift",
	PropColor:            "color",
	PropDirection:        "direction",
	PropDisplay:          "display",
	PropFill:             "fill",
	PropFillOpacity:      "fill-opacity",
	PropFillRule:         "fill-rule",
	PropFontFamily:       "font-family",
	PropFontSize:         "font-size",
	PropFontStretch:      "font-stretch",
	PropFontStyle:        "font-style",
	PropFontVariant:      "font-variant",
	PropFontWeight:       "font-weight",
	PropLetterSpacing:    "letter-spacing",
	PropOpacity:          "opacity",
	PropStopColor:        "stop-color",
	PropStopOpacity:      "stop-opacity",
	PropStroke:           "stroke",
	PropStrokeDasharray:  "stroke-dasharray",
	PropStrokeDashoffset: "stroke-dashoffset",
	PropStrokeLinecap:    "stroke-linecap",
	PropStrokeLinejoin:   "stroke-linejoin",
	PropStrokeMiterlimit: "stroke-miterlimit",
	PropStrokeOpacity:    "stroke-opacity",
	PropStrokeWidth:      "stroke-width",
	PropTextAnchor:       "text-anchor",
	PropTextRendering:    "text-rendering",
	PropUnicodeBidi:      "unicode-bidi",
	PropVisibility:       "visibility",
	PropWritingMode:      "writing-mode",
	PropXMLLang:          "xml:lang",
	PropXMLSpace:         "xml:space",
}

// inherited properties flow from parent to child during cascade;
// the others reset to their initial value at every node.
var propertyInherits = [numProperties]bool{
	PropBaselineShift:    false,
	PropColor:            true,
	PropDirection:        true,
	PropDisplay:          false,
	PropFill:             true,
	PropFillOpacity:      true,
	PropFillRule:         true,
	PropFontFamily:       true,
	PropFontSize:         true,
	PropFontStretch:      true,
	PropFontStyle:        true,
	PropFontVariant:      true,
	PropFontWeight:       true,
	PropLetterSpacing:    true,
	PropOpacity:          false,
	PropStopColor:        false,
	PropStopOpacity:      false,
	PropStroke:           true,
	PropStrokeDasharray:  true,
	PropStrokeDashoffset: true,
	PropStrokeLinecap:    true,
	PropStrokeLinejoin:   true,
	PropStrokeMiterlimit: true,
	PropStrokeOpacity:    true,
	PropStrokeWidth:      true,
	PropTextAnchor:       true,
	PropTextRendering:    true,
	PropUnicodeBidi:      false,
	PropVisibility:       true,
	PropWritingMode:      true,
	PropXMLLang:          true,
	PropXMLSpace:         true,
}

var propertyByName = func() map[string]Property {
	m := make(map[string]Property, numProperties)
	for p, name := range propertyNames {
		m[name] = Property(p)
	}
	return m
}()

// String returns the css name of the property.
func (p Property) String() string {
	if int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return "<unknown property>"
}

// Inherits reports whether the property flows down during cascade.
func (p Property) Inherits() bool { return propertyInherits[p] }

// ParseProperty resolves an attribute or css property name.
// The second return value is false for unrecognized names.
func ParseProperty(name string) (Property, bool) {
	p, ok := propertyByName[name]
	return p, ok
}
