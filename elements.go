package librsvg

import (
	"github.com/pitdicker/librsvg/svgshapes"
	"github.com/pitdicker/librsvg/svgtext"
	"github.com/pitdicker/librsvg/svgtree"
)

// elementInfo binds a tag name to its node type and behavior.
type elementInfo struct {
	typ       svgtree.NodeType
	construct func() svgtree.ElementImpl
}

var elements = map[string]elementInfo{
	"svg":            {svgtree.TypeSvg, func() svgtree.ElementImpl { return &svgshapes.Svg{} }},
	"g":              {svgtree.TypeGroup, func() svgtree.ElementImpl { return &svgshapes.Group{} }},
	"a":              {svgtree.TypeLink, func() svgtree.ElementImpl { return &svgshapes.Group{} }},
	"defs":           {svgtree.TypeDefs, func() svgtree.ElementImpl { return &svgshapes.Defs{} }},
	"switch":         {svgtree.TypeSwitch, func() svgtree.ElementImpl { return &svgshapes.Switch{} }},
	"use":            {svgtree.TypeUse, func() svgtree.ElementImpl { return &svgshapes.Use{} }},
	"style":          {svgtree.TypeStyle, func() svgtree.ElementImpl { return &svgshapes.Style{} }},
	"rect":           {svgtree.TypeRect, func() svgtree.ElementImpl { return &svgshapes.Rect{} }},
	"circle":         {svgtree.TypeCircle, func() svgtree.ElementImpl { return &svgshapes.Circle{} }},
	"ellipse":        {svgtree.TypeEllipse, func() svgtree.ElementImpl { return &svgshapes.Ellipse{} }},
	"line":           {svgtree.TypeLine, func() svgtree.ElementImpl { return &svgshapes.Line{} }},
	"polyline":       {svgtree.TypePolyline, func() svgtree.ElementImpl { return &svgshapes.Poly{} }},
	"polygon":        {svgtree.TypePolygon, func() svgtree.ElementImpl { return &svgshapes.Poly{Closed: true} }},
	"path":           {svgtree.TypePath, func() svgtree.ElementImpl { return &svgshapes.PathElem{} }},
	"stop":           {svgtree.TypeStop, func() svgtree.ElementImpl { return &svgshapes.Stop{} }},
	"linearGradient": {svgtree.TypeLinearGradient, func() svgtree.ElementImpl { return svgshapes.NewLinearGradient() }},
	"radialGradient": {svgtree.TypeRadialGradient, func() svgtree.ElementImpl { return svgshapes.NewRadialGradient() }},
	"text":           {svgtree.TypeText, func() svgtree.ElementImpl { return &svgtext.Text{} }},
	"tspan":          {svgtree.TypeTSpan, func() svgtree.ElementImpl { return &svgtext.TSpan{} }},
	"tref":           {svgtree.TypeTRef, func() svgtree.ElementImpl { return &svgtext.TRef{} }},
}

// ignoredElements are known tags whose subtrees carry no renderable
// content; they are skipped without a warning.
var ignoredElements = map[string]bool{
	"title":    true,
	"desc":     true,
	"metadata": true,
}
