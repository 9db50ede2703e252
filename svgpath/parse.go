package svgpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Parsing of the "d" attribute of path elements.
//
// The parser keeps the running state required by the SVG path grammar:
// the current point, the start of the open subpath, and the previous
// control point used by the shorthand S and T commands.

var errCommandMismatch = errors.New("incorrect number of parameters for path command")

type pathParser struct {
	path           Path
	data           string
	pos            int
	placeX, placeY float64 // current point
	startX, startY float64 // first point of the open subpath
	cntlX, cntlY   float64 // last control point, for S and T
	lastCommand    byte
	inPath         bool
}

// ParsePathData compiles the value of a "d" attribute into a Path.
func ParsePathData(d string) (Path, error) {
	p := pathParser{data: d}
	if err := p.run(); err != nil {
		return nil, err
	}
	p.path.Stop(false)
	return p.path, nil
}

func (p *pathParser) run() error {
	for {
		p.skipSeparators()
		if p.pos >= len(p.data) {
			return nil
		}
		cmd := p.data[p.pos]
		if !isPathCommand(cmd) {
			return fmt.Errorf("expected path command at position %d, got %q", p.pos, cmd)
		}
		p.pos++
		if err := p.command(cmd); err != nil {
			return err
		}
	}
}

func isPathCommand(c byte) bool {
	switch c | 0x20 { // lower-case
	case 'm', 'l', 'h', 'v', 'c', 's', 'q', 't', 'a', 'z':
		return true
	}
	return false
}

func (p *pathParser) skipSeparators() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

// number scans one signed decimal number, with optional exponent.
func (p *pathParser) number() (float64, error) {
	p.skipSeparators()
	start := p.pos
	if p.pos < len(p.data) && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
		p.pos++
	}
	seenDot := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
		} else if c == '.' && !seenDot {
			seenDot = true
			p.pos++
		} else {
			break
		}
	}
	if p.pos < len(p.data) && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.data) && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
			p.pos++
		}
		for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
			p.pos++
		}
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected number at position %d", start)
	}
	return strconv.ParseFloat(p.data[start:p.pos], 64)
}

// flag scans an arc flag, which is a bare '0' or '1' possibly not
// separated from the following number.
func (p *pathParser) flag() (bool, error) {
	p.skipSeparators()
	if p.pos < len(p.data) {
		switch p.data[p.pos] {
		case '0':
			p.pos++
			return false, nil
		case '1':
			p.pos++
			return true, nil
		}
	}
	return false, fmt.Errorf("expected arc flag at position %d", p.pos)
}

// hasMoreArguments reports whether another argument group follows,
// meaning the previous command repeats implicitly.
func (p *pathParser) hasMoreArguments() bool {
	p.skipSeparators()
	if p.pos >= len(p.data) {
		return false
	}
	return !isPathCommand(p.data[p.pos])
}

func (p *pathParser) numbers(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := p.number()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (p *pathParser) moveTo(x, y float64) {
	p.path.Stop(false)
	p.placeX, p.placeY = x, y
	p.startX, p.startY = x, y
	p.path.Start(toFixedP(x, y))
	p.inPath = true
}

func (p *pathParser) lineTo(x, y float64) {
	p.placeX, p.placeY = x, y
	p.path.Line(toFixedP(x, y))
}

func (p *pathParser) cubicTo(x1, y1, x2, y2, x, y float64) {
	p.path.CubeBezier(toFixedP(x1, y1), toFixedP(x2, y2), toFixedP(x, y))
	p.cntlX, p.cntlY = x2, y2
	p.placeX, p.placeY = x, y
}

func (p *pathParser) quadTo(x1, y1, x, y float64) {
	p.path.QuadBezier(toFixedP(x1, y1), toFixedP(x, y))
	p.cntlX, p.cntlY = x1, y1
	p.placeX, p.placeY = x, y
}

// reflected returns the previous control point mirrored around the
// current point, or the current point when the previous command did
// not leave a control point of the matching kind.
func (p *pathParser) reflected(kinds string) (float64, float64) {
	for i := 0; i < len(kinds); i++ {
		if p.lastCommand|0x20 == kinds[i] {
			return 2*p.placeX - p.cntlX, 2*p.placeY - p.cntlY
		}
	}
	return p.placeX, p.placeY
}

func (p *pathParser) arcTo(rx, ry, rot float64, largeArc, sweep bool, x, y float64) {
	if rx == 0 || ry == 0 {
		// a degenerate radius collapses the arc to a line
		p.lineTo(x, y)
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	rotX := rot * math.Pi / 180
	cx, cy := findEllipseCenter(&rx, &ry, rotX, p.placeX, p.placeY, x, y, sweep, !largeArc)
	points := []float64{rx, ry, rot, b2f(largeArc), b2f(sweep), x, y}
	p.placeX, p.placeY = p.path.addArc(points, cx, cy, p.placeX, p.placeY)
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (p *pathParser) command(cmd byte) error {
	relative := cmd >= 'a' // lower-case commands take relative coordinates
	lower := cmd | 0x20

	if lower == 'z' {
		if !p.inPath {
			return errCommandMismatch
		}
		p.path.Stop(true)
		p.placeX, p.placeY = p.startX, p.startY
		p.lastCommand = cmd
		return nil
	}

	first := true
	for first || p.hasMoreArguments() {
		relX, relY := 0.0, 0.0
		if relative {
			relX, relY = p.placeX, p.placeY
		}
		switch lower {
		case 'm':
			pts, err := p.numbers(2)
			if err != nil {
				return err
			}
			if first {
				p.moveTo(pts[0]+relX, pts[1]+relY)
			} else {
				// extra coordinate pairs are implicit line-tos
				p.lineTo(pts[0]+relX, pts[1]+relY)
			}
		case 'l':
			pts, err := p.numbers(2)
			if err != nil {
				return err
			}
			p.lineTo(pts[0]+relX, pts[1]+relY)
		case 'h':
			pts, err := p.numbers(1)
			if err != nil {
				return err
			}
			p.lineTo(pts[0]+relX, p.placeY)
		case 'v':
			pts, err := p.numbers(1)
			if err != nil {
				return err
			}
			p.lineTo(p.placeX, pts[0]+relY)
		case 'c':
			pts, err := p.numbers(6)
			if err != nil {
				return err
			}
			p.cubicTo(pts[0]+relX, pts[1]+relY, pts[2]+relX, pts[3]+relY, pts[4]+relX, pts[5]+relY)
		case 's':
			pts, err := p.numbers(4)
			if err != nil {
				return err
			}
			x1, y1 := p.reflected("cs")
			p.cubicTo(x1, y1, pts[0]+relX, pts[1]+relY, pts[2]+relX, pts[3]+relY)
		case 'q':
			pts, err := p.numbers(4)
			if err != nil {
				return err
			}
			p.quadTo(pts[0]+relX, pts[1]+relY, pts[2]+relX, pts[3]+relY)
		case 't':
			pts, err := p.numbers(2)
			if err != nil {
				return err
			}
			x1, y1 := p.reflected("qt")
			p.quadTo(x1, y1, pts[0]+relX, pts[1]+relY)
		case 'a':
			radii, err := p.numbers(3)
			if err != nil {
				return err
			}
			largeArc, err := p.flag()
			if err != nil {
				return err
			}
			sweep, err := p.flag()
			if err != nil {
				return err
			}
			end, err := p.numbers(2)
			if err != nil {
				return err
			}
			p.arcTo(radii[0], radii[1], radii[2], largeArc, sweep, end[0]+relX, end[1]+relY)
		}
		if !p.inPath {
			return errCommandMismatch // every subpath must start with a move
		}
		p.lastCommand = cmd
		first = false
	}
	return nil
}
