package svgpath

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestParsePathData(t *testing.T) {
	tests := []struct {
		data string
		want string
	}{
		{"M10 10 L20 10 Z", "M10.000,10.000 L20.000,10.000 Z"},
		{"m10 10 l10 0 z", "M10.000,10.000 L20.000,10.000 Z"},
		{"M 10,10 20,20", "M10.000,10.000 L20.000,20.000"},
		{"M0 0 H10 V5", "M0.000,0.000 L10.000,0.000 L10.000,5.000"},
		{"M0 0 h10 v5", "M0.000,0.000 L10.000,0.000 L10.000,5.000"},
		{"M0 0 Q5 5 10 0", "M0.000,0.000 Q5.000,5.000,10.000,0.000"},
		{"M0 0 C1 1 2 1 3 0", "M0.000,0.000 C1.000,1.000,2.000,1.000,3.000,0.000"},
		// T reflects the previous quadratic control point
		{"M0 0 Q5 5 10 0 T20 0", "M0.000,0.000 Q5.000,5.000,10.000,0.000 Q15.000,-5.000,20.000,0.000"},
		// S reflects the previous cubic control point
		{
			"M0 0 C1 1 2 1 3 0 S5 -1 6 0",
			"M0.000,0.000 C1.000,1.000,2.000,1.000,3.000,0.000 C4.000,-1.000,5.000,-1.000,6.000,0.000",
		},
		// T after a non-quadratic command uses the current point
		{"M0 0 L5 0 T10 0", "M0.000,0.000 L5.000,0.000 Q5.000,0.000,10.000,0.000"},
		// exponents and compressed syntax
		{"M1e1 1E1L2e1 1e1", "M10.000,10.000 L20.000,10.000"},
		{"M0 0L10 0ZM20 0L30 0", "M0.000,0.000 L10.000,0.000 Z M20.000,0.000 L30.000,0.000"},
	}
	for _, test := range tests {
		path, err := ParsePathData(test.data)
		if err != nil {
			t.Fatalf("ParsePathData(%q): %s", test.data, err)
		}
		if got := path.ToSVGPath(); got != test.want {
			t.Errorf("ParsePathData(%q) = %q, want %q", test.data, got, test.want)
		}
	}
}

func TestParsePathDataErrors(t *testing.T) {
	for _, data := range []string{
		"10 20",          // missing command
		"L10 20",         // no initial move
		"M10",            // missing ordinate
		"M10 10 A10 10",  // truncated arc
		"M0 0 C1 1 2 2",  // truncated cubic
		"M0 0 X5 5",      // unknown command
		"M0 0 L1,,,, 1x", // garbage parameter
	} {
		if _, err := ParsePathData(data); err == nil {
			t.Errorf("ParsePathData(%q): expected error, got none", data)
		}
	}
}

func TestParsePathDataArc(t *testing.T) {
	path, err := ParsePathData("M0 0 A10 10 0 0 1 20 0")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := path[0].(MoveTo); !ok {
		t.Fatalf("first operation is %T, want MoveTo", path[0])
	}
	if len(path) < 2 {
		t.Fatal("arc produced no curve segments")
	}
	for _, op := range path[1:] {
		if _, ok := op.(CubicTo); !ok {
			t.Fatalf("arc produced %T, want CubicTo", op)
		}
	}
	// the final segment must land exactly on the end point
	last := path[len(path)-1].(CubicTo)
	if want := toFixedP(20, 0); last[2] != want {
		t.Errorf("arc end point = %v, want %v", last[2], want)
	}

	// a zero radius collapses to a line
	path, err = ParsePathData("M0 0 A0 10 0 0 1 20 0")
	if err != nil {
		t.Fatal(err)
	}
	if want := "M0.000,0.000 L20.000,0.000"; path.ToSVGPath() != want {
		t.Errorf("degenerate arc = %q, want %q", path.ToSVGPath(), want)
	}
}

func TestPathBounds(t *testing.T) {
	var empty Path
	if _, _, _, _, ok := empty.Bounds(); ok {
		t.Error("empty path reported valid bounds")
	}

	path, err := ParsePathData("M10 5 L30 25 L20 -5")
	if err != nil {
		t.Fatal(err)
	}
	minX, minY, maxX, maxY, ok := path.Bounds()
	if !ok {
		t.Fatal("bounds not valid")
	}
	if minX != 10 || minY != -5 || maxX != 30 || maxY != 25 {
		t.Errorf("bounds = %v %v %v %v, want 10 -5 30 25", minX, minY, maxX, maxY)
	}
}

func TestPathTransform(t *testing.T) {
	path, err := ParsePathData("M1 1 L2 2")
	if err != nil {
		t.Fatal(err)
	}
	got := path.Transform(Identity.Scale(2, 2)).ToSVGPath()
	if want := "M2.000,2.000 L4.000,4.000"; got != want {
		t.Errorf("transformed path = %q, want %q", got, want)
	}
}

func TestPathAddTo(t *testing.T) {
	path, err := ParsePathData("M1 1 L2 2 Z")
	if err != nil {
		t.Fatal(err)
	}
	var out Path
	path.AddTo(&out, Identity.Translate(1, 0))
	if want := "M2.000,1.000 L3.000,2.000 Z"; out.ToSVGPath() != want {
		t.Errorf("AddTo result = %q, want %q", out.ToSVGPath(), want)
	}
}

func TestAddShapes(t *testing.T) {
	var rect Path
	rect.AddRect(0, 0, 10, 5)
	want := "M0.000,0.000 L10.000,0.000 L10.000,5.000 L0.000,5.000 Z"
	if rect.ToSVGPath() != want {
		t.Errorf("AddRect = %q, want %q", rect.ToSVGPath(), want)
	}

	var ell Path
	ell.AddEllipse(0, 0, 10, 5)
	minX, minY, maxX, maxY, ok := ell.Bounds()
	if !ok {
		t.Fatal("ellipse bounds not valid")
	}
	// control points lie slightly outside the curve but inside the
	// kappa box
	if minX < -10.01 || minY < -5.01 || maxX > 10.01 || maxY > 5.01 {
		t.Errorf("ellipse bounds = %v %v %v %v", minX, minY, maxX, maxY)
	}
	start := ell[0].(MoveTo)
	if (fixed.Point26_6(start) != fixed.Point26_6{X: 10 * 64, Y: 0}) {
		t.Errorf("ellipse start = %v", start)
	}
}
