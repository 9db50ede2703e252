package svgpath

import (
	"math"
	"testing"
)

func matrixNear(a, b Matrix2D) bool {
	const eps = 1e-9
	return math.Abs(a.A-b.A) < eps && math.Abs(a.B-b.B) < eps &&
		math.Abs(a.C-b.C) < eps && math.Abs(a.D-b.D) < eps &&
		math.Abs(a.E-b.E) < eps && math.Abs(a.F-b.F) < eps
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		value string
		want  Matrix2D
	}{
		{"translate(10, 20)", Matrix2D{1, 0, 0, 1, 10, 20}},
		{"translate(10)", Matrix2D{1, 0, 0, 1, 10, 0}},
		{"scale(2)", Matrix2D{2, 0, 0, 2, 0, 0}},
		{"scale(2 3)", Matrix2D{2, 0, 0, 3, 0, 0}},
		{"rotate(90)", Matrix2D{0, 1, -1, 0, 0, 0}},
		{"matrix(1 2 3 4 5 6)", Matrix2D{1, 2, 3, 4, 5, 6}},
		{"translate(10 0) scale(2)", Matrix2D{2, 0, 0, 2, 10, 0}},
		{"", Identity},
	}
	for _, test := range tests {
		got, err := ParseTransform(test.value)
		if err != nil {
			t.Fatalf("ParseTransform(%q): %s", test.value, err)
		}
		if !matrixNear(got, test.want) {
			t.Errorf("ParseTransform(%q) = %v, want %v", test.value, got, test.want)
		}
	}
}

func TestParseTransformErrors(t *testing.T) {
	for _, value := range []string{
		"scale(1, 2, 3)",
		"rotate(1 2)",
		"frobnicate(1)",
		"scale 2",
		"translate(a)",
	} {
		if _, err := ParseTransform(value); err == nil {
			t.Errorf("ParseTransform(%q): expected error, got none", value)
		}
	}
}

func TestRotateAboutPoint(t *testing.T) {
	m, err := ParseTransform("rotate(90 10 10)")
	if err != nil {
		t.Fatal(err)
	}
	// rotating the pivot maps it to itself
	x, y := m.Transform(10, 10)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Errorf("pivot moved to %v, %v", x, y)
	}
	x, y = m.Transform(20, 10)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-20) > 1e-9 {
		t.Errorf("rotated point = %v, %v, want 10, 20", x, y)
	}
}

func TestMatrixOps(t *testing.T) {
	if x, y := Identity.Translate(10, 20).Transform(1, 1); x != 11 || y != 21 {
		t.Errorf("translate = %v, %v", x, y)
	}
	if x, y := Identity.Scale(2, 3).Transform(1, 1); x != 2 || y != 3 {
		t.Errorf("scale = %v, %v", x, y)
	}
	// vectors ignore translation
	if x, y := Identity.Translate(10, 20).TransformVector(1, 1); x != 1 || y != 1 {
		t.Errorf("vector = %v, %v", x, y)
	}
	// a.Mult(b) applies b first
	m := Identity.Translate(10, 0).Mult(Identity.Scale(2, 2))
	if x, y := m.Transform(1, 0); x != 12 || y != 0 {
		t.Errorf("composed = %v, %v", x, y)
	}
}

func TestParseNumberList(t *testing.T) {
	got, err := ParseNumberList(" 1,2 3\t4\n5 ")
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("ParseNumberList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ParseNumberList = %v, want %v", got, want)
		}
	}

	if _, err := ParseNumberList("1 2 x"); err == nil {
		t.Error("expected error for invalid list")
	}

	if v, err := ParseNumber(" 12px "); err != nil || v != 12 {
		t.Errorf("ParseNumber = %v, %v", v, err)
	}
}
