package svgtree

import (
	"image/color"

	"golang.org/x/image/math/fixed"

	"github.com/pitdicker/librsvg/internal/logging"
	"github.com/pitdicker/librsvg/svgdraw"
	"github.com/pitdicker/librsvg/svgpath"
	"github.com/pitdicker/librsvg/svgstyle"
)

// PaintServer is implemented by elements that can be referenced from
// a fill or stroke url(), such as the gradient elements.
type PaintServer interface {
	ResolvePaint(node *Node, ctx *DrawingCtx) (svgdraw.Pattern, error)
}

// DrawingCtx carries the state of one render pass: the backend
// driver, the text shaper, the current transform, the id resolver and
// the acquisition stack used for cycle detection.
type DrawingCtx struct {
	driver  svgdraw.Driver
	shaper  svgdraw.Shaper
	resolve func(id string) *Node

	transform svgpath.Matrix2D
	acquired  []*Node
	bbox      svgdraw.BoundingBox
}

// NewDrawingCtx builds a render pass. resolve maps element ids to
// nodes and may be nil for documents without references.
func NewDrawingCtx(driver svgdraw.Driver, shaper svgdraw.Shaper, resolve func(id string) *Node) *DrawingCtx {
	return &DrawingCtx{
		driver:    driver,
		shaper:    shaper,
		resolve:   resolve,
		transform: svgpath.Identity,
	}
}

// Transform returns the current user-space to output transform.
func (ctx *DrawingCtx) Transform() svgpath.Matrix2D { return ctx.transform }

// SetBaseTransform sets the root transform, such as a viewBox fit.
func (ctx *DrawingCtx) SetBaseTransform(m svgpath.Matrix2D) { ctx.transform = m }

// Shaper returns the text shaping backend, nil when text is not
// supported by this pass.
func (ctx *DrawingCtx) Shaper() svgdraw.Shaper { return ctx.shaper }

// BoundingBox returns the union of everything drawn so far.
func (ctx *DrawingCtx) BoundingBox() svgdraw.BoundingBox { return ctx.bbox }

// AcquireNode resolves a reference target by id. A missing target or
// one already being acquired higher up the stack (a cycle) yields a
// ReferenceError. Pair with ReleaseNode.
func (ctx *DrawingCtx) AcquireNode(id string) (*Node, error) {
	var n *Node
	if ctx.resolve != nil {
		n = ctx.resolve(id)
	}
	if n == nil {
		return nil, ReferenceError{ID: id}
	}
	for _, a := range ctx.acquired {
		if a == n {
			return nil, ReferenceError{ID: id, Cycle: true}
		}
	}
	ctx.acquired = append(ctx.acquired, n)
	return n, nil
}

// ReleaseNode pops the most recent acquisition.
func (ctx *DrawingCtx) ReleaseNode() {
	ctx.acquired = ctx.acquired[:len(ctx.acquired)-1]
}

// DrawNode renders one node. In-error nodes and nodes whose
// conditional processing verdict is false are skipped without failing
// the pass.
func (ctx *DrawingCtx) DrawNode(n *Node, cascaded CascadedValues, clipping bool) (svgdraw.BoundingBox, error) {
	if !n.CondTrue {
		return svgdraw.BoundingBox{}, nil
	}
	values := cascaded.Get(n)
	if !values.Display {
		return svgdraw.BoundingBox{}, nil
	}
	if n.Err() != nil {
		// the node's own drawing is skipped, but its children were
		// still cascaded and may render
		logging.Logger().Warn("skipping element in error",
			"element", n.Type.ElementName(), "err", n.Err())
		return ctx.DrawChildren(n, cascaded, &values, clipping)
	}
	drawable, ok := n.Impl.(DrawableElement)
	if !ok {
		return svgdraw.BoundingBox{}, nil
	}

	saved := ctx.transform
	ctx.transform = ctx.transform.Mult(n.Transform)
	bbox, err := drawable.Draw(n, cascaded, ctx, clipping)
	ctx.transform = saved

	ctx.bbox = ctx.bbox.Union(bbox)
	return bbox, err
}

// DrawChildren renders the node's children in order, as the draw pass
// of a container element. values are the container's own resolved
// values, used to derive the children's cascaded view.
func (ctx *DrawingCtx) DrawChildren(n *Node, cascaded CascadedValues, values *svgstyle.ComputedValues, clipping bool) (svgdraw.BoundingBox, error) {
	childCascaded := cascaded.ForChildren(values)
	var bbox svgdraw.BoundingBox
	for _, child := range n.children {
		childBox, err := ctx.DrawNode(child, childCascaded, clipping)
		if err != nil {
			return bbox, err
		}
		bbox = bbox.Union(childBox)
	}
	return bbox, nil
}

// ResolvePaint turns a paint value into a backend pattern, resolving
// currentColor and paint server references. It returns nil for "none"
// and for unresolvable references without a fallback color.
func (ctx *DrawingCtx) ResolvePaint(p svgstyle.Paint, currentColor color.NRGBA) svgdraw.Pattern {
	switch p.Kind {
	case svgstyle.PaintColor:
		return plainPattern(p.Color)
	case svgstyle.PaintCurrentColor:
		return plainPattern(currentColor)
	case svgstyle.PaintIRI:
		target, err := ctx.AcquireNode(p.IRI)
		if err != nil {
			logging.Logger().Warn("paint reference not resolved", "id", p.IRI, "err", err)
			return paintFallback(p)
		}
		defer ctx.ReleaseNode()
		server, ok := target.Impl.(PaintServer)
		if !ok {
			logging.Logger().Warn("paint reference is not a paint server",
				"id", p.IRI, "element", target.Type.ElementName())
			return paintFallback(p)
		}
		pattern, err := server.ResolvePaint(target, ctx)
		if err != nil {
			logging.Logger().Warn("paint server failed", "id", p.IRI, "err", err)
			return paintFallback(p)
		}
		return pattern
	}
	return nil
}

func plainPattern(c color.NRGBA) svgdraw.Pattern {
	return svgdraw.PlainColor{NRGBA: c}
}

// paintFallback returns the fallback color of an unresolved
// reference, or nil when none was given.
func paintFallback(p svgstyle.Paint) svgdraw.Pattern {
	if p.Color == (color.NRGBA{}) {
		return nil
	}
	return plainPattern(p.Color)
}

// StrokeOptions maps the computed stroke properties to the backend
// options.
func StrokeOptions(values *svgstyle.ComputedValues) svgdraw.StrokeOptions {
	return svgdraw.StrokeOptions{
		LineWidth: fixed.Int26_6(values.StrokeWidth * 64),
		Join: svgdraw.JoinOptions{
			MiterLimit:   fixed.Int26_6(values.StrokeMiterlimit * 64),
			LineJoin:     values.StrokeLinejoin,
			TrailLineCap: values.StrokeLinecap,
			LeadLineCap:  values.StrokeLinecap,
			LineGap:      svgdraw.RoundGap,
		},
		Dash: svgdraw.DashOptions{
			Dash:       values.StrokeDasharray,
			DashOffset: values.StrokeDashoffset,
		},
	}
}

// DrawPath fills and strokes a path with the given computed values,
// under the current transform, and returns its extent.
func (ctx *DrawingCtx) DrawPath(path svgpath.Path, values *svgstyle.ComputedValues) (svgdraw.BoundingBox, error) {
	if len(path) == 0 || !values.Visibility {
		return svgdraw.BoundingBox{}, nil
	}

	fillPattern := ctx.ResolvePaint(values.Fill, values.Color)
	strokePattern := ctx.ResolvePaint(values.Stroke, values.Color)

	filler, stroker := ctx.driver.SetupDrawers(fillPattern != nil, strokePattern != nil)
	if filler != nil {
		filler.Clear()
		filler.SetWinding(values.FillRule == svgstyle.FillRuleNonZero)
		path.AddTo(filler, ctx.transform)
		filler.SetColor(fillPattern, values.FillOpacity*values.Opacity)
		filler.Draw()
		filler.SetWinding(true) // default is true
	}
	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(StrokeOptions(values))
		path.AddTo(stroker, ctx.transform)
		stroker.SetColor(strokePattern, values.StrokeOpacity*values.Opacity)
		stroker.Draw()
	}

	minX, minY, maxX, maxY, ok := path.Transform(ctx.transform).Bounds()
	if !ok {
		return svgdraw.BoundingBox{}, nil
	}
	return svgdraw.NewBoundingBox(minX, minY, maxX, maxY), nil
}

// DrawText submits one positioned text span to the driver. Drivers
// without text support log and contribute nothing.
func (ctx *DrawingCtx) DrawText(span svgdraw.TextSpan) (svgdraw.BoundingBox, error) {
	td, ok := ctx.driver.(svgdraw.TextDriver)
	if !ok {
		logging.Logger().Warn("driver does not support text")
		return svgdraw.BoundingBox{}, nil
	}
	bbox, err := td.DrawText(span, ctx.transform)
	if err != nil {
		return svgdraw.BoundingBox{}, err
	}
	ctx.bbox = ctx.bbox.Union(bbox)
	return bbox, nil
}
