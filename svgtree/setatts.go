package svgtree

import (
	"strings"

	"github.com/pitdicker/librsvg/internal/logging"
	"github.com/pitdicker/librsvg/svgpath"
	"github.com/pitdicker/librsvg/svgstyle"
)

// SetAtts resolves the attribute bag of a node, in four steps run in
// fixed order: transform, conditional processing, element specific
// attributes, presentation attributes. The first failing step records
// the node's error state and stops the remaining steps; construction
// itself never fails, so the rest of the document still renders.
func (n *Node) SetAtts(attrs []Attribute, locale Locale) {
	for _, attr := range attrs {
		switch attr.Name {
		case "id":
			n.ID = attr.Value
		case "class":
			n.Class = attr.Value
		case "style":
			n.styleAttr = attr.Value
		}
	}

	if err := n.parseTransform(attrs); err != nil {
		n.setError(err)
		return
	}
	if err := n.evalConditions(attrs, locale); err != nil {
		n.setError(err)
		return
	}
	if err := n.Impl.SetAttributes(n, attrs); err != nil {
		n.setError(err)
		return
	}
	n.parsePresentationAttributes(attrs)

	if o, ok := n.Impl.(PropertyOverrider); ok {
		o.OverrideProperties(&n.Specified)
	}
}

// parseTransform handles step one. With duplicate transform
// attributes the last occurrence wins.
func (n *Node) parseTransform(attrs []Attribute) error {
	value := ""
	seen := false
	for _, attr := range attrs {
		if attr.Name == "transform" {
			value, seen = attr.Value, true
		}
	}
	if !seen {
		return nil
	}
	m, err := svgpath.ParseTransform(value)
	if err != nil {
		return AttributeError{Attr: "transform", Err: err}
	}
	n.Transform = m
	return nil
}

// evalConditions handles step two: the conditional processing
// attributes are evaluated in bag order, and once the accumulated
// verdict is false the remaining ones are not looked at.
func (n *Node) evalConditions(attrs []Attribute, locale Locale) error {
	for _, attr := range attrs {
		if !n.CondTrue {
			break
		}
		switch attr.Name {
		case "requiredExtensions":
			n.CondTrue = evalRequiredExtensions(attr.Value)
		case "requiredFeatures":
			n.CondTrue = evalRequiredFeatures(attr.Value)
		case "systemLanguage":
			ok, err := evalSystemLanguage(attr.Value, locale)
			if err != nil {
				return AttributeError{Attr: "systemLanguage", Err: err}
			}
			n.CondTrue = ok
		}
	}
	return nil
}

// parsePresentationAttributes handles step four. Parse failures here
// are logged and swallowed, for compatibility with the permissive
// handling of common but technically invalid documents.
func (n *Node) parsePresentationAttributes(attrs []Attribute) {
	for _, attr := range attrs {
		if _, err := n.Specified.SetAttribute(attr.Name, attr.Value); err != nil {
			logging.Logger().Warn("ignoring invalid presentation attribute",
				"element", n.Type.ElementName(), "attribute", attr.Name, "value", attr.Value)
		}
	}
}

// SetStyle applies the matched css rules and the inline style
// attribute, in precedence order: universal selector, tag selector,
// class selectors, id selectors, inline style. A declaration flagged
// !important blocks later normal declarations for the same property.
func (n *Node) SetStyle(rules svgstyle.RuleSet) {
	tag := n.Type.ElementName()

	n.applySelector(rules, "*")
	n.applySelector(rules, tag)

	for _, class := range strings.Fields(n.Class) {
		found := false
		if n.ID != "" {
			found = n.applySelector(rules, tag+"."+class+"#"+n.ID) || found
			found = n.applySelector(rules, "."+class+"#"+n.ID) || found
		}
		found = n.applySelector(rules, tag+"."+class) || found
		if !found {
			n.applySelector(rules, "."+class)
		}
	}

	if n.ID != "" {
		n.applySelector(rules, "#"+n.ID)
		n.applySelector(rules, tag+"#"+n.ID)
	}

	if n.styleAttr != "" {
		n.applyDeclarations(svgstyle.ParseDeclarations(n.styleAttr))
		n.styleAttr = ""
	}
}

func (n *Node) applySelector(rules svgstyle.RuleSet, selector string) bool {
	decls := rules.Declarations(selector)
	n.applyDeclarations(decls)
	return len(decls) > 0
}

func (n *Node) applyDeclarations(decls []svgstyle.Declaration) {
	for _, d := range decls {
		if !d.Important && n.important[d.Property] {
			continue
		}
		if err := n.Specified.SetProperty(d.Property, d.Value); err != nil {
			logging.Logger().Warn("ignoring invalid css declaration",
				"element", n.Type.ElementName(), "property", d.Property.String(), "value", d.Value)
			continue
		}
		if d.Important {
			if n.important == nil {
				n.important = make(map[svgstyle.Property]bool)
			}
			n.important[d.Property] = true
		}
	}
}
