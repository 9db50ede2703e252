package svgtext

import (
	"github.com/pitdicker/librsvg/internal/logging"
	"github.com/pitdicker/librsvg/svgdraw"
	"github.com/pitdicker/librsvg/svgstyle"
	"github.com/pitdicker/librsvg/svgtree"
)

// Span is a contiguous text run sharing one resolved value set,
// offset by the accumulated relative dx/dy of its ancestors.
type Span struct {
	Text   string
	Values svgstyle.ComputedValues
	Dx, Dy float64
}

// Chunk is an absolutely positioned run of spans. X and Y are nil
// when the chunk continues at the end position of the previous one.
type Chunk struct {
	Values svgstyle.ComputedValues // of the element that opened the chunk
	X, Y   *float64
	Spans  []Span
}

// MeasuredSpan adds the shaped run and its advance vector. The
// advance accumulates along y for vertical writing modes, along x
// otherwise.
type MeasuredSpan struct {
	Span
	Run                svgdraw.ShapedRun
	AdvanceX, AdvanceY float64
}

// MeasuredChunk is a chunk with measured spans.
type MeasuredChunk struct {
	Values svgstyle.ComputedValues
	X, Y   *float64
	Spans  []MeasuredSpan
}

// PositionedSpan adds the absolute draw origin on the baseline.
type PositionedSpan struct {
	MeasuredSpan
	X, Y float64
}

// CollectChunks runs phase one for the children of a text element:
// character data becomes spans in the most recently opened chunk, a
// tspan with an absolute position opens a new chunk, and a tref
// flattens the character data of its target. chunks must hold the
// text element's own initial chunk.
func CollectChunks(n *svgtree.Node, values *svgstyle.ComputedValues, cascaded svgtree.CascadedValues, ctx *svgtree.DrawingCtx, chunks *[]Chunk, dx, dy float64) {
	for _, child := range n.Children() {
		switch child.Type {
		case svgtree.TypeChars:
			chars := child.Impl.(*Chars)
			text := chars.NormalizedText(values.XMLSpace, NormalizeParams{
				HasElementBefore: child.PreviousSibling() != nil,
				HasElementAfter:  child.NextSibling() != nil,
			})
			if text == "" {
				continue
			}
			appendSpan(chunks, Span{Text: text, Values: *values, Dx: dx, Dy: dy})

		case svgtree.TypeTSpan:
			if child.Err() != nil {
				logging.Logger().Warn("skipping tspan in error", "err", child.Err())
				continue
			}
			if !child.CondTrue {
				continue
			}
			ts := child.Impl.(*TSpan)
			childValues := cascaded.Get(child)
			if !childValues.Display {
				continue
			}
			// relative offsets accumulate across chunk boundaries
			spanDx, spanDy := dx+ts.Dx, dy+ts.Dy
			if ts.X != nil || ts.Y != nil {
				*chunks = append(*chunks, Chunk{Values: childValues, X: ts.X, Y: ts.Y})
			}
			CollectChunks(child, &childValues, cascaded.ForChildren(&childValues), ctx, chunks, spanDx, spanDy)

		case svgtree.TypeTRef:
			if child.Err() != nil {
				logging.Logger().Warn("skipping tref in error", "err", child.Err())
				continue
			}
			tr := child.Impl.(*TRef)
			childValues := cascaded.Get(child)
			if !childValues.Display {
				continue
			}
			target, err := ctx.AcquireNode(tr.Href)
			if err != nil {
				logging.Logger().Warn("tref target not resolved", "href", tr.Href, "err", err)
				continue
			}
			flattenChars(target, &childValues, chunks, dx, dy)
			ctx.ReleaseNode()
		}
	}
}

// flattenChars collects every character-data descendant of the
// reference target into flat spans, discarding the target's own
// sub-structure and styling the spans with the referencing element's
// cascaded values.
func flattenChars(n *svgtree.Node, values *svgstyle.ComputedValues, chunks *[]Chunk, dx, dy float64) {
	for _, child := range n.Children() {
		if child.Type == svgtree.TypeChars {
			chars := child.Impl.(*Chars)
			text := chars.NormalizedText(values.XMLSpace, NormalizeParams{
				HasElementBefore: child.PreviousSibling() != nil,
				HasElementAfter:  child.NextSibling() != nil,
			})
			if text != "" {
				appendSpan(chunks, Span{Text: text, Values: *values, Dx: dx, Dy: dy})
			}
			continue
		}
		flattenChars(child, values, chunks, dx, dy)
	}
}

func appendSpan(chunks *[]Chunk, span Span) {
	last := &(*chunks)[len(*chunks)-1]
	last.Spans = append(last.Spans, span)
}

// MeasureChunks runs phase two: each span is shaped and its advance
// recorded along the writing-mode axis. A shaping failure logs and
// yields a zero-advance span without a run.
func MeasureChunks(chunks []Chunk, shaper svgdraw.Shaper) []MeasuredChunk {
	out := make([]MeasuredChunk, len(chunks))
	for i, chunk := range chunks {
		mc := MeasuredChunk{Values: chunk.Values, X: chunk.X, Y: chunk.Y}
		for _, span := range chunk.Spans {
			ms := MeasuredSpan{Span: span}
			if shaper != nil {
				run, err := shaper.Shape(span.Text, FontProperties(&span.Values))
				if err != nil {
					logging.Logger().Warn("shaping failed", "text", span.Text, "err", err)
				} else {
					ms.Run = run
					if span.Values.WritingMode.IsVertical() {
						ms.AdvanceY = run.Advance()
					} else {
						ms.AdvanceX = run.Advance()
					}
				}
			}
			mc.Spans = append(mc.Spans, ms)
		}
		out[i] = mc
	}
	return out
}

// anchorFraction is the fraction of a chunk's advance the anchor
// point shifts back by.
func anchorFraction(anchor svgstyle.TextAnchor) float64 {
	switch anchor {
	case svgstyle.TextAnchorMiddle:
		return 0.5
	case svgstyle.TextAnchorEnd:
		return 1
	}
	return 0
}

// PositionChunks runs phase three. Each chunk anchors at its explicit
// x/y, or at the running end position carried over from the previous
// chunk; the text-anchor correction shifts it back along the
// writing-mode axis. Span end positions chain within the chunk. The
// returned position is where a following chunk would continue.
func PositionChunks(chunks []MeasuredChunk, startX, startY float64) ([]PositionedSpan, float64, float64) {
	var out []PositionedSpan
	x, y := startX, startY
	for _, chunk := range chunks {
		if chunk.X != nil {
			x = *chunk.X
		}
		if chunk.Y != nil {
			y = *chunk.Y
		}

		// the anchor correction uses the shaped advances only; the
		// relative dx/dy offsets move spans without moving the anchor
		var advX, advY float64
		for _, span := range chunk.Spans {
			advX += span.AdvanceX
			advY += span.AdvanceY
		}
		f := anchorFraction(chunk.Values.TextAnchor)
		if chunk.Values.WritingMode.IsVertical() {
			y -= f * advY
		} else {
			x -= f * advX
		}

		for _, span := range chunk.Spans {
			shift := span.Values.BaselineShift * span.Values.FontSize
			ps := PositionedSpan{MeasuredSpan: span}
			if span.Values.WritingMode.IsVertical() {
				// the cross axis points right in top-to-bottom text
				ps.X = x + span.Dx + shift
				ps.Y = y + span.Dy
				y = ps.Y + span.AdvanceY
			} else {
				ps.X = x + span.Dx
				ps.Y = y + span.Dy - shift
				x = ps.X + span.AdvanceX
			}
			out = append(out, ps)
		}
	}
	return out, x, y
}

// DrawSpans runs the output phase: one draw request per positioned
// span, submitted to the drawing backend; the returned boxes union
// into the element's aggregate bounding box.
func DrawSpans(spans []PositionedSpan, ctx *svgtree.DrawingCtx) (svgdraw.BoundingBox, error) {
	var bbox svgdraw.BoundingBox
	for _, span := range spans {
		if span.Run == nil {
			continue
		}
		values := &span.Values
		req := svgdraw.TextSpan{
			Run:           span.Run,
			X:             span.X,
			Y:             span.Y,
			Visible:       values.Visibility,
			Fill:          ctx.ResolvePaint(values.Fill, values.Color),
			FillOpacity:   values.FillOpacity * values.Opacity,
			Stroke:        ctx.ResolvePaint(values.Stroke, values.Color),
			StrokeOpacity: values.StrokeOpacity * values.Opacity,
			StrokeOptions: svgtree.StrokeOptions(values),
			Rendering:     values.TextRendering,
		}
		spanBox, err := ctx.DrawText(req)
		if err != nil {
			return bbox, err
		}
		bbox = bbox.Union(spanBox)
	}
	return bbox, nil
}

// FontProperties derives the shaper inputs from computed values.
func FontProperties(values *svgstyle.ComputedValues) svgdraw.FontProperties {
	return svgdraw.FontProperties{
		Family:        values.FontFamily,
		Style:         values.FontStyle,
		Variant:       values.FontVariant,
		Stretch:       values.FontStretch,
		Weight:        values.FontWeight,
		Size:          values.FontSize,
		LetterSpacing: values.LetterSpacing,
		Language:      values.XMLLang,
	}
}
