package svgpath

import (
	"errors"
	"math"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Matrix2D is an affine transform:
//
//	x1 = x*A + y*C + E
//	y1 = x*B + y*D + F
//
// The field layout matches rasterx.Matrix2D so drivers can convert
// with a plain cast.
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns a*b, the transform that applies b first, then a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Translate post-multiplies a translation.
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale post-multiplies a scale.
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate post-multiplies a rotation by the given angle in radians.
func (a Matrix2D) Rotate(alpha float64) Matrix2D {
	return a.Mult(Matrix2D{
		math.Cos(alpha), math.Sin(alpha),
		-math.Sin(alpha), math.Cos(alpha),
		0, 0,
	})
}

// SkewX post-multiplies a skew along the x axis (angle in radians).
func (a Matrix2D) SkewX(alpha float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, math.Tan(alpha), 1, 0, 0})
}

// SkewY post-multiplies a skew along the y axis (angle in radians).
func (a Matrix2D) SkewY(alpha float64) Matrix2D {
	return a.Mult(Matrix2D{1, math.Tan(alpha), 0, 1, 0, 0})
}

// Transform applies the matrix to the point x, y.
func (a Matrix2D) Transform(x, y float64) (x1, y1 float64) {
	return x*a.A + y*a.C + a.E, x*a.B + y*a.D + a.F
}

// TransformVector applies only the linear part of the matrix,
// ignoring translation.
func (a Matrix2D) TransformVector(x, y float64) (x1, y1 float64) {
	return x*a.A + y*a.C, x*a.B + y*a.D
}

// TFixed transforms a fixed point value.
func (a Matrix2D) TFixed(p fixed.Point26_6) (t fixed.Point26_6) {
	x, y := a.Transform(float64(p.X)/64, float64(p.Y)/64)
	t.X = fixed.Int26_6(x * 64)
	t.Y = fixed.Int26_6(y * 64)
	return t
}

// matrixAdder applies M to the points before forwarding them to path.
type matrixAdder struct {
	M    Matrix2D
	path *Path
}

func (t *matrixAdder) Start(a fixed.Point26_6) {
	t.path.Start(t.M.TFixed(a))
}

func (t *matrixAdder) Line(b fixed.Point26_6) {
	t.path.Line(t.M.TFixed(b))
}

func (t *matrixAdder) QuadBezier(b, c fixed.Point26_6) {
	t.path.QuadBezier(t.M.TFixed(b), t.M.TFixed(c))
}

func (t *matrixAdder) CubeBezier(b, c, d fixed.Point26_6) {
	t.path.CubeBezier(t.M.TFixed(b), t.M.TFixed(c), t.M.TFixed(d))
}

var errParamMismatch = errors.New("param mismatch")

// ParseTransform parses an SVG transform attribute such as
// "translate(10, 20) rotate(45)" into a single matrix.
// Transforms are composed left to right.
func ParseTransform(v string) (Matrix2D, error) {
	m1 := Identity
	for _, t := range strings.Split(v, ")") {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return Identity, errParamMismatch // badly formed transformation
		}
		points, err := ParseNumberList(d[1])
		if err != nil {
			return Identity, err
		}
		m1, err = applyTransformOp(m1, strings.ToLower(strings.TrimSpace(d[0])), points)
		if err != nil {
			return Identity, err
		}
	}
	return m1, nil
}

func applyTransformOp(m1 Matrix2D, k string, points []float64) (Matrix2D, error) {
	ln := len(points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(points[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.Translate(points[1], points[2]).
				Rotate(points[0]*math.Pi/180).
				Translate(-points[1], -points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(points[0], points[0])
		} else if ln == 2 {
			m1 = m1.Scale(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(Matrix2D{
				A: points[0],
				B: points[1],
				C: points[2],
				D: points[3],
				E: points[4],
				F: points[5],
			})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}
