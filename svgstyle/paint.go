package svgstyle

import (
	"fmt"
	"image/color"
	"strings"
)

// PaintKind discriminates the forms a paint value can take.
type PaintKind uint8

const (
	PaintNone PaintKind = iota
	PaintCurrentColor
	PaintColor
	PaintIRI // reference to a paint server element, such as a gradient
)

// Paint is the value of the fill and stroke properties.
// Resolution of an IRI to an actual paint server happens at draw
// time, against the document's id index.
type Paint struct {
	Kind  PaintKind
	Color color.NRGBA // for PaintColor
	IRI   string      // target id, for PaintIRI
}

// ParsePaint parses a fill or stroke value.
// A url() reference may carry a fallback color, which is kept in the
// Color field.
func ParsePaint(s string) (Paint, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "none":
		return Paint{Kind: PaintNone}, nil
	case "currentColor":
		return Paint{Kind: PaintCurrentColor}, nil
	}
	if strings.HasPrefix(s, "url(") {
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return Paint{}, fmt.Errorf("invalid paint reference %q", s)
		}
		ref := strings.TrimSpace(s[4:end])
		if !strings.HasPrefix(ref, "#") {
			return Paint{}, fmt.Errorf("unsupported paint reference %q", ref)
		}
		p := Paint{Kind: PaintIRI, IRI: ref[1:]}
		if fallback := strings.TrimSpace(s[end+1:]); fallback != "" && fallback != "none" {
			c, err := ParseColor(fallback)
			if err != nil {
				return Paint{}, err
			}
			p.Color = c
		}
		return p, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return Paint{}, err
	}
	return Paint{Kind: PaintColor, Color: c}, nil
}

// Resolve substitutes currentColor and returns the concrete color.
// The second return value is false for PaintNone and PaintIRI.
func (p Paint) Resolve(currentColor color.NRGBA) (color.NRGBA, bool) {
	switch p.Kind {
	case PaintColor:
		return p.Color, true
	case PaintCurrentColor:
		return currentColor, true
	}
	return color.NRGBA{}, false
}
