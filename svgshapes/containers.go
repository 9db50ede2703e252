package svgshapes

import (
	"fmt"
	"strings"

	"github.com/pitdicker/librsvg/internal/logging"
	"github.com/pitdicker/librsvg/svgdraw"
	"github.com/pitdicker/librsvg/svgpath"
	"github.com/pitdicker/librsvg/svgtree"
)

// Group is the g and a elements: a plain container drawing its
// children in order.
type Group struct{}

func (g *Group) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	return nil
}

func (g *Group) Draw(node *svgtree.Node, cascaded svgtree.CascadedValues, ctx *svgtree.DrawingCtx, clipping bool) (svgdraw.BoundingBox, error) {
	values := cascaded.Get(node)
	return ctx.DrawChildren(node, cascaded, &values, clipping)
}

// Defs holds referenced content. It has no draw behavior, so its
// children only render when instanced through a reference.
type Defs struct{}

func (d *Defs) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	return nil
}

// Svg is the outermost element, carrying the viewport.
type Svg struct {
	Width, Height string // raw values, may carry units or percentages
	ViewBox       [4]float64
	HasViewBox    bool
}

func (s *Svg) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	for _, attr := range attrs {
		switch attr.Name {
		case "width":
			s.Width = attr.Value
		case "height":
			s.Height = attr.Value
		case "viewBox":
			box, err := svgpath.ParseNumberList(attr.Value)
			if err == nil && len(box) != 4 {
				err = fmt.Errorf("expected 4 numbers, got %d", len(box))
			}
			if err != nil {
				return svgtree.AttributeError{Attr: "viewBox", Err: err}
			}
			copy(s.ViewBox[:], box)
			s.HasViewBox = true
		}
	}
	return nil
}

func (s *Svg) Draw(node *svgtree.Node, cascaded svgtree.CascadedValues, ctx *svgtree.DrawingCtx, clipping bool) (svgdraw.BoundingBox, error) {
	values := cascaded.Get(node)
	return ctx.DrawChildren(node, cascaded, &values, clipping)
}

// Switch draws the first direct child whose conditional processing
// verdict is true.
type Switch struct{}

func (s *Switch) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	return nil
}

func (s *Switch) Draw(node *svgtree.Node, cascaded svgtree.CascadedValues, ctx *svgtree.DrawingCtx, clipping bool) (svgdraw.BoundingBox, error) {
	values := cascaded.Get(node)
	childCascaded := cascaded.ForChildren(&values)
	for _, child := range node.Children() {
		if !child.CondTrue || child.Err() != nil {
			continue
		}
		return ctx.DrawNode(child, childCascaded, clipping)
	}
	return svgdraw.BoundingBox{}, nil
}

// Use instances the subtree of another element, re-cascaded from the
// use element's own computed values.
type Use struct {
	Href string
	X, Y float64
}

func (u *Use) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	if err := attrNumbers(attrs, map[string]*float64{"x": &u.X, "y": &u.Y}); err != nil {
		return err
	}
	for _, attr := range attrs {
		if attr.Name == "xlink:href" || attr.Name == "href" {
			u.Href = strings.TrimPrefix(attr.Value, "#")
		}
	}
	return nil
}

func (u *Use) Draw(node *svgtree.Node, cascaded svgtree.CascadedValues, ctx *svgtree.DrawingCtx, clipping bool) (svgdraw.BoundingBox, error) {
	if u.Href == "" {
		return svgdraw.BoundingBox{}, nil
	}
	target, err := ctx.AcquireNode(u.Href)
	if err != nil {
		// a dangling or cyclic reference yields empty content
		logging.Logger().Warn("use target not resolved", "href", u.Href, "err", err)
		return svgdraw.BoundingBox{}, nil
	}
	defer ctx.ReleaseNode()

	values := cascaded.Get(node)
	saved := ctx.Transform()
	ctx.SetBaseTransform(saved.Translate(u.X, u.Y))
	bbox, err := ctx.DrawNode(target, svgtree.FromValues(&values), clipping)
	ctx.SetBaseTransform(saved)
	return bbox, err
}

// Style collects css text during document loading. The text itself
// arrives as character data and is pulled into the rule table after
// the tree is complete.
type Style struct {
	Type string
}

func (s *Style) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	for _, attr := range attrs {
		if attr.Name == "type" {
			s.Type = attr.Value
		}
	}
	return nil
}

// IsCSS reports whether the style element holds css, the only
// supported stylesheet language.
func (s *Style) IsCSS() bool {
	return s.Type == "" || s.Type == "text/css"
}
