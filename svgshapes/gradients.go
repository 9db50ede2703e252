package svgshapes

import (
	"strconv"
	"strings"

	"github.com/pitdicker/librsvg/internal/logging"
	"github.com/pitdicker/librsvg/svgdraw"
	"github.com/pitdicker/librsvg/svgpath"
	"github.com/pitdicker/librsvg/svgstyle"
	"github.com/pitdicker/librsvg/svgtree"
)

// gradCoord parses a gradient coordinate: percentages become
// fractions, which matches the default objectBoundingBox units.
func gradCoord(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		return f / 100, err
	}
	return svgpath.ParseNumber(value)
}

// Stop is one color stop of a gradient.
type Stop struct {
	Offset float64
}

func (s *Stop) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	for _, attr := range attrs {
		if attr.Name != "offset" {
			continue
		}
		v, err := gradCoord(attr.Value)
		if err != nil {
			return svgtree.AttributeError{Attr: "offset", Err: err}
		}
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		s.Offset = v
	}
	return nil
}

// gradientBase carries the attributes shared by both gradient kinds.
type gradientBase struct {
	Href      string
	Units     svgdraw.GradientUnits
	Spread    svgdraw.SpreadMethod
	Matrix    svgpath.Matrix2D
	hasMatrix bool
}

func (g *gradientBase) parseCommon(attr svgtree.Attribute) error {
	switch attr.Name {
	case "xlink:href", "href":
		g.Href = strings.TrimPrefix(attr.Value, "#")
	case "gradientUnits":
		switch attr.Value {
		case "objectBoundingBox":
			g.Units = svgdraw.ObjectBoundingBox
		case "userSpaceOnUse":
			g.Units = svgdraw.UserSpaceOnUse
		}
	case "spreadMethod":
		switch attr.Value {
		case "pad":
			g.Spread = svgdraw.PadSpread
		case "reflect":
			g.Spread = svgdraw.ReflectSpread
		case "repeat":
			g.Spread = svgdraw.RepeatSpread
		}
	case "gradientTransform":
		m, err := svgpath.ParseTransform(attr.Value)
		if err != nil {
			return svgtree.AttributeError{Attr: "gradientTransform", Err: err}
		}
		g.Matrix = m
		g.hasMatrix = true
	}
	return nil
}

// OverrideProperties hides the gradient: paint servers never render
// directly, only through a fill or stroke reference.
func (g *gradientBase) OverrideProperties(v *svgstyle.SpecifiedValues) {
	v.SetProperty(svgstyle.PropDisplay, "none")
}

// collectStops gathers the stops of a gradient node. When the node
// declares none of its own and references another gradient, the
// referenced gradient's stops are inherited.
func (g *gradientBase) collectStops(node *svgtree.Node, ctx *svgtree.DrawingCtx) []svgdraw.GradStop {
	var stops []svgdraw.GradStop
	last := 0.0
	for _, child := range node.Children() {
		if child.Type != svgtree.TypeStop || child.Err() != nil {
			continue
		}
		stop := child.Impl.(*Stop)
		offset := stop.Offset
		// offsets never decrease along the stop list
		if offset < last {
			offset = last
		}
		last = offset

		values := child.Computed
		c, ok := values.StopColor.Resolve(values.Color)
		if !ok {
			continue
		}
		stops = append(stops, svgdraw.GradStop{
			StopColor: c,
			Offset:    offset,
			Opacity:   values.StopOpacity,
		})
	}
	if len(stops) > 0 || g.Href == "" {
		return stops
	}

	target, err := ctx.AcquireNode(g.Href)
	if err != nil {
		logging.Logger().Warn("gradient reference not resolved", "href", g.Href, "err", err)
		return nil
	}
	defer ctx.ReleaseNode()
	switch impl := target.Impl.(type) {
	case *LinearGradient:
		return impl.collectStops(target, ctx)
	case *RadialGradient:
		return impl.collectStops(target, ctx)
	}
	return nil
}

func (g *gradientBase) fill(direction svgdraw.GradientDirecter, stops []svgdraw.GradStop) svgdraw.Gradient {
	matrix := svgpath.Identity
	if g.hasMatrix {
		matrix = g.Matrix
	}
	return svgdraw.Gradient{
		Direction: direction,
		Stops:     stops,
		Matrix:    matrix,
		Spread:    g.Spread,
		Units:     g.Units,
	}
}

// LinearGradient is the linearGradient paint server.
type LinearGradient struct {
	gradientBase
	X1, Y1, X2, Y2 float64
}

// NewLinearGradient applies the default axis, a horizontal run across
// the object bounding box.
func NewLinearGradient() *LinearGradient {
	return &LinearGradient{X2: 1}
}

func (g *LinearGradient) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	for _, attr := range attrs {
		var dst *float64
		switch attr.Name {
		case "x1":
			dst = &g.X1
		case "y1":
			dst = &g.Y1
		case "x2":
			dst = &g.X2
		case "y2":
			dst = &g.Y2
		default:
			if err := g.parseCommon(attr); err != nil {
				return err
			}
			continue
		}
		v, err := gradCoord(attr.Value)
		if err != nil {
			return svgtree.AttributeError{Attr: attr.Name, Err: err}
		}
		*dst = v
	}
	return nil
}

func (g *LinearGradient) ResolvePaint(node *svgtree.Node, ctx *svgtree.DrawingCtx) (svgdraw.Pattern, error) {
	stops := g.collectStops(node, ctx)
	if len(stops) == 0 {
		return nil, svgtree.ReferenceError{ID: node.ID}
	}
	return g.fill(svgdraw.Linear{g.X1, g.Y1, g.X2, g.Y2}, stops), nil
}

// RadialGradient is the radialGradient paint server.
type RadialGradient struct {
	gradientBase
	Cx, Cy, R    float64
	Fx, Fy       float64
	hasFx, hasFy bool
}

// NewRadialGradient applies the default geometry, centered on the
// object bounding box.
func NewRadialGradient() *RadialGradient {
	return &RadialGradient{Cx: 0.5, Cy: 0.5, R: 0.5}
}

func (g *RadialGradient) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	for _, attr := range attrs {
		var dst *float64
		switch attr.Name {
		case "cx":
			dst = &g.Cx
		case "cy":
			dst = &g.Cy
		case "r":
			dst = &g.R
		case "fx":
			dst = &g.Fx
			g.hasFx = true
		case "fy":
			dst = &g.Fy
			g.hasFy = true
		default:
			if err := g.parseCommon(attr); err != nil {
				return err
			}
			continue
		}
		v, err := gradCoord(attr.Value)
		if err != nil {
			return svgtree.AttributeError{Attr: attr.Name, Err: err}
		}
		*dst = v
	}
	return nil
}

func (g *RadialGradient) ResolvePaint(node *svgtree.Node, ctx *svgtree.DrawingCtx) (svgdraw.Pattern, error) {
	stops := g.collectStops(node, ctx)
	if len(stops) == 0 {
		return nil, svgtree.ReferenceError{ID: node.ID}
	}
	fx, fy := g.Fx, g.Fy
	if !g.hasFx {
		fx = g.Cx // focal point defaults to the center
	}
	if !g.hasFy {
		fy = g.Cy
	}
	return g.fill(svgdraw.Radial{g.Cx, g.Cy, fx, fy, g.R, 0}, stops), nil
}
