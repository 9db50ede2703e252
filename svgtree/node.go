// Implements the document tree of an SVG file:
// nodes with parent/child edges, per node style and error state,
// attribute resolution, css application and the cascade.
package svgtree

import (
	"fmt"

	"github.com/pitdicker/librsvg/svgdraw"
	"github.com/pitdicker/librsvg/svgpath"
	"github.com/pitdicker/librsvg/svgstyle"
)

// NodeType is the closed enumeration of element kinds.
type NodeType uint8

const (
	TypeChars NodeType = iota
	TypeCircle
	TypeDefs
	TypeEllipse
	TypeGroup
	TypeLine
	TypeLinearGradient
	TypeLink
	TypePath
	TypePolygon
	TypePolyline
	TypeRadialGradient
	TypeRect
	TypeStop
	TypeStyle
	TypeSvg
	TypeSwitch
	TypeText
	TypeTRef
	TypeTSpan
	TypeUse
)

var nodeTypeNames = [...]string{
	TypeChars:          "rsvg-chars",
	TypeCircle:         "circle",
	TypeDefs:           "defs",
	TypeEllipse:        "ellipse",
	TypeGroup:          "g",
	TypeLine:           "line",
	TypeLinearGradient: "linearGradient",
	TypeLink:           "a",
	TypePath:           "path",
	TypePolygon:        "polygon",
	TypePolyline:       "polyline",
	TypeRadialGradient: "radialGradient",
	TypeRect:           "rect",
	TypeStop:           "stop",
	TypeStyle:          "style",
	TypeSvg:            "svg",
	TypeSwitch:         "switch",
	TypeText:           "text",
	TypeTRef:           "tref",
	TypeTSpan:          "tspan",
	TypeUse:            "use",
}

// ElementName returns the tag name, used for css tag selectors.
func (t NodeType) ElementName() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "<unknown element>"
}

// Attribute is one name/value pair from the markup parser.
// Namespaced attributes use the prefixed form, such as "xml:space".
type Attribute struct {
	Name, Value string
}

// ElementImpl is the behavior attached to a node, one implementation
// per element kind.
type ElementImpl interface {
	// SetAttributes parses the element specific attributes.
	SetAttributes(node *Node, attrs []Attribute) error
}

// PropertyOverrider is implemented by elements that force property
// values regardless of the document's declarations, such as the
// gradient elements hiding their contents.
type PropertyOverrider interface {
	OverrideProperties(v *svgstyle.SpecifiedValues)
}

// DrawableElement is implemented by elements that produce output.
// Container elements draw their children through ctx.DrawChildren.
type DrawableElement interface {
	Draw(node *Node, cascaded CascadedValues, ctx *DrawingCtx, clipping bool) (svgdraw.BoundingBox, error)
}

// Node is one element of the document tree.
type Node struct {
	Type  NodeType
	ID    string
	Class string

	parent   *Node
	children []*Node

	// Specified holds the declarations resolved from presentation
	// attributes, matched css rules and the inline style attribute.
	Specified svgstyle.SpecifiedValues
	// Computed is the post-cascade snapshot.
	Computed svgstyle.ComputedValues

	// Transform is the value of the transform attribute.
	Transform svgpath.Matrix2D

	// CondTrue is the render-eligibility verdict of the conditional
	// processing attributes.
	CondTrue bool

	// important records the properties last set by an !important
	// declaration. It only grows during SetStyle.
	important map[svgstyle.Property]bool

	styleAttr string // raw style attribute text, consumed by SetStyle

	err error // write-once

	Impl ElementImpl
}

// NewNode builds a node with empty style state.
func NewNode(t NodeType, impl ElementImpl) *Node {
	return &Node{
		Type:      t,
		Transform: svgpath.Identity,
		CondTrue:  true,
		Impl:      impl,
	}
}

// Parent returns the parent node, nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the ordered children. The slice must not be
// mutated by the caller.
func (n *Node) Children() []*Node { return n.children }

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// PreviousSibling returns the sibling before n, or nil.
func (n *Node) PreviousSibling() *Node {
	if n.parent == nil {
		return nil
	}
	for i, c := range n.parent.children {
		if c == n && i > 0 {
			return n.parent.children[i-1]
		}
	}
	return nil
}

// NextSibling returns the sibling after n, or nil.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	for i, c := range n.parent.children {
		if c == n && i+1 < len(n.parent.children) {
			return n.parent.children[i+1]
		}
	}
	return nil
}

// AppendChild adds c as the last child of n.
func (n *Node) AppendChild(c *Node) {
	c.parent = n
	n.children = append(n.children, c)
}

// Err returns the node's error state, nil when the node is healthy.
func (n *Node) Err() error { return n.err }

// setError records the first failure. Later failures are dropped.
func (n *Node) setError(err error) {
	if n.err == nil {
		n.err = err
	}
}

// AttributeError reports a malformed attribute value, tagged with the
// attribute name.
type AttributeError struct {
	Attr string
	Err  error
}

func (e AttributeError) Error() string {
	return fmt.Sprintf("attribute %q: %s", e.Attr, e.Err)
}

func (e AttributeError) Unwrap() error { return e.Err }

// ReferenceError reports a reference target that is missing or forms
// a cycle. Cyclic references are treated as not found.
type ReferenceError struct {
	ID    string
	Cycle bool
}

func (e ReferenceError) Error() string {
	if e.Cycle {
		return fmt.Sprintf("reference cycle through %q", e.ID)
	}
	return fmt.Sprintf("reference target %q not found", e.ID)
}
