// Provides parsing and rendering of SVG documents.
// SVG files are parsed into a document tree with css-cascaded styles,
// which can then be consumed by painting drivers.
// See for example librsvg/svgraster and librsvg/svgshaper.
package librsvg

import (
	"log/slog"

	"github.com/pitdicker/librsvg/internal/logging"
	"github.com/pitdicker/librsvg/svgdraw"
	"github.com/pitdicker/librsvg/svgpath"
	"github.com/pitdicker/librsvg/svgshapes"
	"github.com/pitdicker/librsvg/svgstyle"
	"github.com/pitdicker/librsvg/svgtree"
)

// SetLogger routes the library's diagnostics (ignored attributes,
// dangling references) to the given logger. Passing nil silences them
// again, which is the default.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// ErrorMode determines how the reader reacts to svg elements it does
// not handle: skip them, log a warning, or fail the parse.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)

// Document holds a parsed SVG document: the styled and cascaded tree,
// the id index used to resolve references, and the transform mapping
// user space onto the render target.
type Document struct {
	Root      *svgtree.Node
	Transform svgpath.Matrix2D

	rules svgstyle.RuleSet
	ids   map[string]*svgtree.Node
}

// Resolve returns the element with the given id, or nil. It is the
// resolver behind url() paints, use and tref references.
func (d *Document) Resolve(id string) *svgtree.Node {
	return d.ids[id]
}

// ViewBox returns the root viewBox attribute. ok is false when the
// document does not declare one.
func (d *Document) ViewBox() (x, y, w, h float64, ok bool) {
	svg, isSvg := d.Root.Impl.(*svgshapes.Svg)
	if !isSvg || !svg.HasViewBox {
		return 0, 0, 0, 0, false
	}
	box := svg.ViewBox
	return box[0], box[1], box[2], box[3], true
}

// Size returns the document size in pixels, from the width and height
// attributes when they carry usable values, else from the viewBox.
func (d *Document) Size() (w, h float64) {
	if _, _, vw, vh, ok := d.ViewBox(); ok {
		w, h = vw, vh
	}
	if svg, isSvg := d.Root.Impl.(*svgshapes.Svg); isSvg {
		if pw, err := svgpath.ParseNumber(svg.Width); err == nil && pw > 0 {
			w = pw
		}
		if ph, err := svgpath.ParseNumber(svg.Height); err == nil && ph > 0 {
			h = ph
		}
	}
	return w, h
}

// SetTarget sets the Transform matrix to draw within the bounds of the
// rectangle arguments, scaling the viewBox to fit.
func (d *Document) SetTarget(x, y, w, h float64) {
	bx, by, bw, bh, ok := d.ViewBox()
	if !ok || bw == 0 || bh == 0 {
		d.Transform = svgpath.Identity.Translate(x, y)
		return
	}
	d.Transform = svgpath.Identity.Translate(x-bx, y-by).Scale(w/bw, h/bh)
}

// Render draws the document through the given driver. shaper may be
// nil for documents without text. The returned bounding box is the
// extent of everything drawn, in target coordinates.
func (d *Document) Render(driver svgdraw.Driver, shaper svgdraw.Shaper) (svgdraw.BoundingBox, error) {
	ctx := svgtree.NewDrawingCtx(driver, shaper, d.Resolve)
	ctx.SetBaseTransform(d.Transform)
	return ctx.DrawNode(d.Root, svgtree.FromNode(), false)
}
