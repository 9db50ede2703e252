package svgtext

import (
	"strings"

	"github.com/pitdicker/librsvg/svgdraw"
	"github.com/pitdicker/librsvg/svgpath"
	"github.com/pitdicker/librsvg/svgtree"
)

// Text is the behavior of the text element, the root of the layout
// pipeline.
type Text struct {
	X, Y   float64
	Dx, Dy float64
}

var (
	_ svgtree.ElementImpl     = (*Text)(nil)
	_ svgtree.DrawableElement = (*Text)(nil)
)

func (t *Text) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	for _, attr := range attrs {
		var dst *float64
		switch attr.Name {
		case "x":
			dst = &t.X
		case "y":
			dst = &t.Y
		case "dx":
			dst = &t.Dx
		case "dy":
			dst = &t.Dy
		default:
			continue
		}
		v, err := firstNumber(attr.Value)
		if err != nil {
			return svgtree.AttributeError{Attr: attr.Name, Err: err}
		}
		*dst = v
	}
	return nil
}

// Draw runs the three layout phases and submits one draw request per
// positioned span.
func (t *Text) Draw(node *svgtree.Node, cascaded svgtree.CascadedValues, ctx *svgtree.DrawingCtx, clipping bool) (svgdraw.BoundingBox, error) {
	values := cascaded.Get(node)

	x, y := t.X, t.Y
	chunks := []Chunk{{Values: values, X: &x, Y: &y}}
	CollectChunks(node, &values, cascaded.ForChildren(&values), ctx, &chunks, t.Dx, t.Dy)

	measured := MeasureChunks(chunks, ctx.Shaper())
	positioned, _, _ := PositionChunks(measured, x, y)
	return DrawSpans(positioned, ctx)
}

// TSpan positions a sub-run within a text element. An absolute x or y
// opens a new chunk; dx/dy shift relative to the running position.
type TSpan struct {
	X, Y   *float64
	Dx, Dy float64
}

var _ svgtree.ElementImpl = (*TSpan)(nil)

func (t *TSpan) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	for _, attr := range attrs {
		switch attr.Name {
		case "x", "y":
			v, err := firstNumber(attr.Value)
			if err != nil {
				return svgtree.AttributeError{Attr: attr.Name, Err: err}
			}
			if attr.Name == "x" {
				t.X = &v
			} else {
				t.Y = &v
			}
		case "dx", "dy":
			v, err := firstNumber(attr.Value)
			if err != nil {
				return svgtree.AttributeError{Attr: attr.Name, Err: err}
			}
			if attr.Name == "dx" {
				t.Dx = v
			} else {
				t.Dy = v
			}
		}
	}
	return nil
}

// TRef pulls the character data of another element into this text
// element, flattened and restyled with the tref's own values.
type TRef struct {
	Href string
}

var _ svgtree.ElementImpl = (*TRef)(nil)

func (t *TRef) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	for _, attr := range attrs {
		if attr.Name == "xlink:href" || attr.Name == "href" {
			t.Href = strings.TrimPrefix(attr.Value, "#")
		}
	}
	return nil
}

// firstNumber parses the first entry of a coordinate list. Lists of
// per-glyph positions are not supported, only their first value is
// honored.
func firstNumber(value string) (float64, error) {
	list, err := svgpath.ParseNumberList(value)
	if err != nil {
		return 0, err
	}
	if len(list) == 0 {
		return 0, nil
	}
	return list[0], nil
}
