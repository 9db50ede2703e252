// Implements a raster backend to render SVG documents,
// by wrapping rasterx.
package svgraster

import (
	"image"

	"github.com/srwiley/rasterx"

	"github.com/pitdicker/librsvg/svgdraw"
	"github.com/pitdicker/librsvg/svgpath"
)

var _ svgdraw.TextDriver = (*Renderer)(nil) // assert interface conformance

// Renderer rasterizes draw operations into a scanner. It keeps
// separate filler and dasher instances to avoid shared state between
// the fill and stroke of one shape.
type Renderer struct {
	filler *rasterx.Filler
	dasher *rasterx.Dasher
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{
		filler: rasterx.NewFiller(width, height, scanner),
		dasher: rasterx.NewDasher(width, height, scanner),
	}
}

// NewImageRenderer builds a renderer painting into img with a
// ScannerGV instance.
func NewImageRenderer(img *image.RGBA) *Renderer {
	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	return NewRenderer(b.Dx(), b.Dy(), scanner)
}

// SetupDrawers implements svgdraw.Driver.
func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (svgdraw.Filler, svgdraw.Stroker) {
	var f svgdraw.Filler
	var s svgdraw.Stroker
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

// filler adapts rasterx.Filler, adding pattern resolution.
type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(pattern svgdraw.Pattern, opacity float64) {
	setColorFromPattern(pattern, opacity, f.Scanner)
}

// stroker adapts rasterx.Dasher, adding pattern resolution and the
// stroke options mapping.
type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(pattern svgdraw.Pattern, opacity float64) {
	setColorFromPattern(pattern, opacity, s.Scanner)
}

func (s stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	s.SetStroke(
		options.LineWidth, options.Join.MiterLimit, capToFunc[options.Join.LeadLineCap],
		capToFunc[options.Join.TrailLineCap], gapToFunc[options.Join.LineGap],
		joinToJoin[options.Join.LineJoin], options.Dash.Dash, options.Dash.DashOffset,
	)
}

func toRasterxGradient(grad svgdraw.Gradient) rasterx.Gradient {
	var (
		points   [5]float64
		isRadial bool
	)
	switch dir := grad.Direction.(type) {
	case svgdraw.Linear:
		points[0], points[1], points[2], points[3] = dir[0], dir[1], dir[2], dir[3]
		isRadial = false
	case svgdraw.Radial:
		points[0], points[1], points[2], points[3], points[4], _ = dir[0], dir[1], dir[2], dir[3], dir[4], dir[5] // in rasterx fr is ignored
		isRadial = true
	}
	stops := make([]rasterx.GradStop, len(grad.Stops))
	for i := range grad.Stops {
		stops[i] = rasterx.GradStop(grad.Stops[i])
	}
	return rasterx.Gradient{
		Points:   points,
		Stops:    stops,
		Bounds:   grad.Bounds,
		Matrix:   rasterx.Matrix2D(grad.Matrix),
		Spread:   rasterx.SpreadMethod(grad.Spread),
		Units:    rasterx.GradientUnits(grad.Units),
		IsRadial: isRadial,
	}
}

// resolve gradient color
func setColorFromPattern(pattern svgdraw.Pattern, opacity float64, scanner rasterx.Scanner) {
	switch fillerColor := pattern.(type) {
	case svgdraw.PlainColor:
		scanner.SetColor(rasterx.ApplyOpacity(fillerColor.NRGBA, opacity))
	case svgdraw.Gradient:
		if fillerColor.Units == svgdraw.ObjectBoundingBox {
			fRect := scanner.GetPathExtent()
			mnx, mny := float64(fRect.Min.X)/64, float64(fRect.Min.Y)/64
			mxx, mxy := float64(fRect.Max.X)/64, float64(fRect.Max.Y)/64
			fillerColor.Bounds.X, fillerColor.Bounds.Y = mnx, mny
			fillerColor.Bounds.W, fillerColor.Bounds.H = mxx-mnx, mxy-mny
		}
		rasterxGradient := toRasterxGradient(fillerColor)
		scanner.SetColor(rasterxGradient.GetColorFunction(opacity))
	}
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgdraw.Round:     rasterx.Round,
		svgdraw.Bevel:     rasterx.Bevel,
		svgdraw.Miter:     rasterx.Miter,
		svgdraw.MiterClip: rasterx.MiterClip,
		svgdraw.Arc:       rasterx.Arc,
		svgdraw.ArcClip:   rasterx.ArcClip,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgdraw.NilCap:       rasterx.ButtCap,
		svgdraw.ButtCap:      rasterx.ButtCap,
		svgdraw.SquareCap:    rasterx.SquareCap,
		svgdraw.RoundCap:     rasterx.RoundCap,
		svgdraw.CubicCap:     rasterx.CubicCap,
		svgdraw.QuadraticCap: rasterx.QuadraticCap,
	}

	gapToFunc = [...]rasterx.GapFunc{
		svgdraw.NilGap:       rasterx.FlatGap,
		svgdraw.FlatGap:      rasterx.FlatGap,
		svgdraw.RoundGap:     rasterx.RoundGap,
		svgdraw.CubicGap:     rasterx.CubicGap,
		svgdraw.QuadraticGap: rasterx.QuadraticGap,
	}
)

// DrawText fills and strokes the glyph outlines of a shaped span.
// The outlines are baseline relative, so the span origin becomes a
// translation ahead of the current transform.
func (rd *Renderer) DrawText(span svgdraw.TextSpan, m svgpath.Matrix2D) (svgdraw.BoundingBox, error) {
	if span.Run == nil {
		return svgdraw.BoundingBox{}, nil
	}
	bbox := textExtent(span, m)
	if !span.Visible {
		return svgdraw.BoundingBox{}, nil
	}

	outlines := span.Run.Outlines()
	place := m.Translate(span.X, span.Y)
	filler, stroker := rd.SetupDrawers(span.Fill != nil, span.Stroke != nil)
	if filler != nil {
		filler.Clear()
		for _, outline := range outlines {
			outline.AddTo(filler, place)
		}
		filler.SetColor(span.Fill, span.FillOpacity)
		filler.Draw()
	}
	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(span.StrokeOptions)
		for _, outline := range outlines {
			outline.AddTo(stroker, place)
		}
		stroker.SetColor(span.Stroke, span.StrokeOpacity)
		stroker.Draw()
	}
	return bbox, nil
}

// textExtent is the transformed ink rectangle of a span, from the
// shaper's metrics.
func textExtent(span svgdraw.TextSpan, m svgpath.Matrix2D) svgdraw.BoundingBox {
	run := span.Run
	minX, minY := span.X, span.Y-run.Ascent()
	maxX, maxY := span.X+run.Advance(), span.Y+run.Descent()
	var bbox svgdraw.BoundingBox
	for _, corner := range [4][2]float64{
		{minX, minY}, {maxX, minY}, {minX, maxY}, {maxX, maxY},
	} {
		x, y := m.Transform(corner[0], corner[1])
		bbox = bbox.Union(svgdraw.NewBoundingBox(x, y, x, y))
	}
	return bbox
}
