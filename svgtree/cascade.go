package svgtree

import (
	"github.com/pitdicker/librsvg/svgstyle"
)

// Cascade resolves the computed values of the subtree rooted at n:
// computed = merge(inherited, specified), recursing into the children
// with this node's computed values. Only the subtree is mutated, so a
// re-cascade with substituted start values never touches siblings.
func Cascade(n *Node, inherited *svgstyle.ComputedValues) {
	n.Computed = n.Specified.ToComputed(inherited)
	for _, child := range n.children {
		Cascade(child, &n.Computed)
	}
}

// CascadedValues selects which value set a draw pass sees for a node:
// either the node's own computed values, or values recomputed from a
// substituted inherited set. The latter supports instanced subtrees,
// where a use element re-styles the target with its own values.
type CascadedValues struct {
	substituted *svgstyle.ComputedValues
}

// FromNode uses the node's own post-cascade snapshot.
func FromNode() CascadedValues {
	return CascadedValues{}
}

// FromValues recomputes every visited node from the given inherited
// values instead of its stored snapshot.
func FromValues(inherited *svgstyle.ComputedValues) CascadedValues {
	return CascadedValues{substituted: inherited}
}

// Get returns the values to render the node with.
func (c CascadedValues) Get(n *Node) svgstyle.ComputedValues {
	if c.substituted == nil {
		return n.Computed
	}
	return n.Specified.ToComputed(c.substituted)
}

// ForChildren derives the cascaded view the node's children should be
// drawn with, given the node's own resolved values.
func (c CascadedValues) ForChildren(values *svgstyle.ComputedValues) CascadedValues {
	if c.substituted == nil {
		return CascadedValues{}
	}
	return CascadedValues{substituted: values}
}
