// Implements text shaping for SVG text elements, by wrapping the
// HarfBuzz port of go-text/typesetting and its system font database.
package svgshaper

import (
	"bytes"
	"errors"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/pitdicker/librsvg/svgdraw"
	"github.com/pitdicker/librsvg/svgpath"
)

var _ svgdraw.Shaper = (*Shaper)(nil) // assert interface conformance

// Shaper resolves font properties against a font database and shapes
// text runs with HarfBuzz. It is safe for concurrent use.
type Shaper struct {
	mu      sync.Mutex
	fontMap *fontscan.FontMap
	shaper  shaping.HarfbuzzShaper
}

// New returns a shaper backed by the fonts installed on the system.
// cacheDir holds the font index between runs; an empty string selects
// the platform default.
func New(cacheDir string) (*Shaper, error) {
	fontMap := fontscan.NewFontMap(nil)
	if err := fontMap.UseSystemFonts(cacheDir); err != nil {
		return nil, err
	}
	return &Shaper{fontMap: fontMap}, nil
}

// NewEmpty returns a shaper without any font. Fonts must be supplied
// through AddFont before shaping.
func NewEmpty() *Shaper {
	return &Shaper{fontMap: fontscan.NewFontMap(nil)}
}

// AddFont registers an in-memory font file (TTF or OTF) under the
// given family name.
func (s *Shaper) AddFont(data []byte, familyName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fontMap.AddFont(bytes.NewReader(data), familyName, familyName)
}

// Shape implements svgdraw.Shaper.
func (s *Shaper) Shape(text string, props svgdraw.FontProperties) (svgdraw.ShapedRun, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return &run{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.fontMap.SetQuery(fontscan.Query{
		Families: familyList(props.Family),
		Aspect:   aspectOf(props),
	})
	face := s.fontMap.ResolveFace(runes[0])
	if face == nil {
		return nil, errors.New("no font available for " + props.Family)
	}

	lang := language.DefaultLanguage()
	if props.Language != "" {
		lang = language.NewLanguage(props.Language)
	}
	output := s.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(props.Size * 64),
		Script:    detectScript(runes),
		Language:  lang,
	})

	scale := props.Size / float64(face.Upem())
	out := &run{
		ascent:  fromFixed(output.LineBounds.Ascent),
		descent: -fromFixed(output.LineBounds.Descent), // go-text reports descent as negative
	}
	penX := 0.0
	for _, g := range output.Glyphs {
		x := penX + fromFixed(g.XOffset)
		y := -fromFixed(g.YOffset)
		if outline, ok := face.GlyphData(g.GlyphID).(font.GlyphOutline); ok {
			if path := outlineToPath(outline, scale, x, y); len(path) > 0 {
				out.outlines = append(out.outlines, path)
			}
		}
		penX += fromFixed(g.XAdvance) + props.LetterSpacing
	}
	out.advance = penX
	return out, nil
}

// run is the shaping result, with outlines already scaled to user
// units and positioned along the baseline.
type run struct {
	advance  float64
	ascent   float64
	descent  float64
	outlines []svgpath.Path
}

func (r *run) Advance() float64         { return r.advance }
func (r *run) Ascent() float64          { return r.ascent }
func (r *run) Descent() float64         { return r.descent }
func (r *run) Outlines() []svgpath.Path { return r.outlines }

// outlineToPath scales a glyph outline from font units and moves it to
// the pen position. Font units grow upwards, user units downwards.
func outlineToPath(outline font.GlyphOutline, scale, dx, dy float64) svgpath.Path {
	point := func(p font.SegmentPoint) fixed.Point26_6 {
		return fixed.Point26_6{
			X: fixed.Int26_6((dx + float64(p.X)*scale) * 64),
			Y: fixed.Int26_6((dy - float64(p.Y)*scale) * 64),
		}
	}
	var path svgpath.Path
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if len(path) > 0 {
				path.Stop(true) // contours are implicitly closed
			}
			path.Start(point(seg.Args[0]))
		case ot.SegmentOpLineTo:
			path.Line(point(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			path.QuadBezier(point(seg.Args[0]), point(seg.Args[1]))
		case ot.SegmentOpCubeTo:
			path.CubeBezier(point(seg.Args[0]), point(seg.Args[1]), point(seg.Args[2]))
		}
	}
	if len(path) > 0 {
		path.Stop(true)
	}
	return path
}

// familyList splits a css font-family value into the candidate names
// the font database understands.
func familyList(family string) []string {
	parts := strings.Split(family, ",")
	families := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Trim(strings.TrimSpace(part), `'"`)
		if part != "" {
			families = append(families, part)
		}
	}
	return families
}

// aspectOf maps the computed font properties to a font.Aspect.
func aspectOf(props svgdraw.FontProperties) font.Aspect {
	aspect := font.Aspect{
		Style:   font.StyleNormal,
		Weight:  font.Weight(props.Weight),
		Stretch: font.StretchNormal,
	}
	if props.Style != svgdraw.FontStyleNormal {
		// oblique faces match italic selection
		aspect.Style = font.StyleItalic
	}
	switch props.Stretch {
	case svgdraw.FontStretchUltraCondensed:
		aspect.Stretch = font.StretchUltraCondensed
	case svgdraw.FontStretchExtraCondensed:
		aspect.Stretch = font.StretchExtraCondensed
	case svgdraw.FontStretchCondensed:
		aspect.Stretch = font.StretchCondensed
	case svgdraw.FontStretchSemiCondensed:
		aspect.Stretch = font.StretchSemiCondensed
	case svgdraw.FontStretchSemiExpanded:
		aspect.Stretch = font.StretchSemiExpanded
	case svgdraw.FontStretchExpanded:
		aspect.Stretch = font.StretchExpanded
	case svgdraw.FontStretchExtraExpanded:
		aspect.Stretch = font.StretchExtraExpanded
	case svgdraw.FontStretchUltraExpanded:
		aspect.Stretch = font.StretchUltraExpanded
	}
	return aspect
}

// detectScript returns the script of the first non-space rune.
// Mixed-script text should be split into runs upstream.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
