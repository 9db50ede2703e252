package svgshaper

import (
	"testing"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/google/go-cmp/cmp"

	"github.com/pitdicker/librsvg/svgdraw"
)

func TestFamilyList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"sans-serif", []string{"sans-serif"}},
		{`"DejaVu Sans", Arial, sans-serif`, []string{"DejaVu Sans", "Arial", "sans-serif"}},
		{"'Noto Serif' , serif", []string{"Noto Serif", "serif"}},
		{"", nil},
	}
	for _, test := range tests {
		got := familyList(test.in)
		if len(got) == 0 {
			got = nil
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("familyList(%q) mismatch (-want +got):\n%s", test.in, diff)
		}
	}
}

func TestAspectMapping(t *testing.T) {
	props := svgdraw.FontProperties{
		Style:   svgdraw.FontStyleItalic,
		Weight:  700,
		Stretch: svgdraw.FontStretchCondensed,
	}
	aspect := aspectOf(props)
	if aspect.Style != font.StyleItalic {
		t.Errorf("style = %v, want italic", aspect.Style)
	}
	if aspect.Weight != font.WeightBold {
		t.Errorf("weight = %v, want bold", aspect.Weight)
	}
	if aspect.Stretch != font.StretchCondensed {
		t.Errorf("stretch = %v, want condensed", aspect.Stretch)
	}
}

func TestOutlineToPath(t *testing.T) {
	// a 1000 upem triangle, scaled to a 10px size
	outline := font.GlyphOutline{Segments: []font.Segment{
		{Op: ot.SegmentOpMoveTo, Args: [3]font.SegmentPoint{{X: 0, Y: 0}}},
		{Op: ot.SegmentOpLineTo, Args: [3]font.SegmentPoint{{X: 1000, Y: 0}}},
		{Op: ot.SegmentOpLineTo, Args: [3]font.SegmentPoint{{X: 0, Y: 1000}}},
	}}
	path := outlineToPath(outline, 10.0/1000, 5, 20)
	// font y grows up, user space y grows down
	const want = "M5.000,20.000 L15.000,20.000 L5.000,10.000 Z"
	if got := path.ToSVGPath(); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestShapeEmptyText(t *testing.T) {
	s := NewEmpty()
	shaped, err := s.Shape("", svgdraw.FontProperties{Size: 12})
	if err != nil {
		t.Fatal(err)
	}
	if shaped.Advance() != 0 || len(shaped.Outlines()) != 0 {
		t.Errorf("empty text shaped to advance %v with %d outlines",
			shaped.Advance(), len(shaped.Outlines()))
	}
}
