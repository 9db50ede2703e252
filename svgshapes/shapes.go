// Implements the behavior of the standard SVG elements:
// basic shapes, containers, references and gradients.
package svgshapes

import (
	"fmt"

	"golang.org/x/image/math/fixed"

	"github.com/pitdicker/librsvg/svgdraw"
	"github.com/pitdicker/librsvg/svgpath"
	"github.com/pitdicker/librsvg/svgtree"
)

// attrNumbers collects the numeric attributes an element cares about.
// A missing attribute keeps its default; a malformed one is an
// AttributeError.
func attrNumbers(attrs []svgtree.Attribute, dst map[string]*float64) error {
	for _, attr := range attrs {
		target, ok := dst[attr.Name]
		if !ok {
			continue
		}
		v, err := svgpath.ParseNumber(attr.Value)
		if err != nil {
			return svgtree.AttributeError{Attr: attr.Name, Err: err}
		}
		*target = v
	}
	return nil
}

// Rect is the rect element, with optional rounded corners.
type Rect struct {
	X, Y, Width, Height float64
	Rx, Ry              float64
}

func (r *Rect) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	rx, ry := -1.0, -1.0
	err := attrNumbers(attrs, map[string]*float64{
		"x": &r.X, "y": &r.Y, "width": &r.Width, "height": &r.Height,
		"rx": &rx, "ry": &ry,
	})
	if err != nil {
		return err
	}
	// a lone rx or ry sets both radii
	switch {
	case rx >= 0 && ry < 0:
		ry = rx
	case ry >= 0 && rx < 0:
		rx = ry
	}
	if rx > 0 {
		r.Rx, r.Ry = rx, ry
	}
	return nil
}

func (r *Rect) Draw(node *svgtree.Node, cascaded svgtree.CascadedValues, ctx *svgtree.DrawingCtx, clipping bool) (svgdraw.BoundingBox, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return svgdraw.BoundingBox{}, nil
	}
	values := cascaded.Get(node)
	var path svgpath.Path
	if r.Rx > 0 {
		path.AddRoundedRect(r.X, r.Y, r.X+r.Width, r.Y+r.Height, r.Rx, r.Ry)
	} else {
		path.AddRect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
	}
	return ctx.DrawPath(path, &values)
}

// Circle is the circle element.
type Circle struct {
	Cx, Cy, R float64
}

func (c *Circle) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	return attrNumbers(attrs, map[string]*float64{
		"cx": &c.Cx, "cy": &c.Cy, "r": &c.R,
	})
}

func (c *Circle) Draw(node *svgtree.Node, cascaded svgtree.CascadedValues, ctx *svgtree.DrawingCtx, clipping bool) (svgdraw.BoundingBox, error) {
	if c.R <= 0 {
		return svgdraw.BoundingBox{}, nil
	}
	values := cascaded.Get(node)
	var path svgpath.Path
	path.AddEllipse(c.Cx, c.Cy, c.R, c.R)
	return ctx.DrawPath(path, &values)
}

// Ellipse is the ellipse element.
type Ellipse struct {
	Cx, Cy, Rx, Ry float64
}

func (e *Ellipse) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	return attrNumbers(attrs, map[string]*float64{
		"cx": &e.Cx, "cy": &e.Cy, "rx": &e.Rx, "ry": &e.Ry,
	})
}

func (e *Ellipse) Draw(node *svgtree.Node, cascaded svgtree.CascadedValues, ctx *svgtree.DrawingCtx, clipping bool) (svgdraw.BoundingBox, error) {
	if e.Rx <= 0 || e.Ry <= 0 {
		return svgdraw.BoundingBox{}, nil
	}
	values := cascaded.Get(node)
	var path svgpath.Path
	path.AddEllipse(e.Cx, e.Cy, e.Rx, e.Ry)
	return ctx.DrawPath(path, &values)
}

// Line is the line element.
type Line struct {
	X1, Y1, X2, Y2 float64
}

func (l *Line) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	return attrNumbers(attrs, map[string]*float64{
		"x1": &l.X1, "y1": &l.Y1, "x2": &l.X2, "y2": &l.Y2,
	})
}

func (l *Line) Draw(node *svgtree.Node, cascaded svgtree.CascadedValues, ctx *svgtree.DrawingCtx, clipping bool) (svgdraw.BoundingBox, error) {
	values := cascaded.Get(node)
	var path svgpath.Path
	path.Start(toFixedP(l.X1, l.Y1))
	path.Line(toFixedP(l.X2, l.Y2))
	path.Stop(false)
	return ctx.DrawPath(path, &values)
}

// Poly is the polyline and polygon elements; closed distinguishes
// them.
type Poly struct {
	Points []float64 // even length, x/y interleaved
	Closed bool
}

func (p *Poly) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	for _, attr := range attrs {
		if attr.Name != "points" {
			continue
		}
		points, err := svgpath.ParseNumberList(attr.Value)
		if err != nil {
			return svgtree.AttributeError{Attr: "points", Err: err}
		}
		if len(points)%2 != 0 {
			return svgtree.AttributeError{Attr: "points",
				Err: fmt.Errorf("odd number of coordinates (%d)", len(points))}
		}
		p.Points = points
	}
	return nil
}

func (p *Poly) Draw(node *svgtree.Node, cascaded svgtree.CascadedValues, ctx *svgtree.DrawingCtx, clipping bool) (svgdraw.BoundingBox, error) {
	if len(p.Points) < 4 {
		return svgdraw.BoundingBox{}, nil
	}
	values := cascaded.Get(node)
	var path svgpath.Path
	path.Start(toFixedP(p.Points[0], p.Points[1]))
	for i := 2; i < len(p.Points); i += 2 {
		path.Line(toFixedP(p.Points[i], p.Points[i+1]))
	}
	path.Stop(p.Closed)
	return ctx.DrawPath(path, &values)
}

// PathElem is the path element.
type PathElem struct {
	Path svgpath.Path
}

func (p *PathElem) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	for _, attr := range attrs {
		if attr.Name != "d" {
			continue
		}
		path, err := svgpath.ParsePathData(attr.Value)
		if err != nil {
			return svgtree.AttributeError{Attr: "d", Err: err}
		}
		p.Path = path
	}
	return nil
}

func (p *PathElem) Draw(node *svgtree.Node, cascaded svgtree.CascadedValues, ctx *svgtree.DrawingCtx, clipping bool) (svgdraw.BoundingBox, error) {
	values := cascaded.Get(node)
	return ctx.DrawPath(p.Path, &values)
}

func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return p
}
