package svgstyle

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToComputedInheritance(t *testing.T) {
	parent := InitialValues()
	parent.FontSize = 20
	parent.Opacity = 0.5    // does not inherit
	parent.FillOpacity = .3 // inherits

	var sv SpecifiedValues
	got := sv.ToComputed(&parent)

	if got.FontSize != 20 {
		t.Errorf("font-size = %v, want inherited 20", got.FontSize)
	}
	if got.FillOpacity != .3 {
		t.Errorf("fill-opacity = %v, want inherited 0.3", got.FillOpacity)
	}
	if got.Opacity != 1 {
		t.Errorf("opacity = %v, want initial 1", got.Opacity)
	}
}

func TestToComputedExplicitInherit(t *testing.T) {
	parent := InitialValues()
	parent.Opacity = 0.5

	var sv SpecifiedValues
	if err := sv.SetProperty(PropOpacity, "inherit"); err != nil {
		t.Fatal(err)
	}
	got := sv.ToComputed(&parent)
	if got.Opacity != 0.5 {
		t.Errorf("opacity = %v, want inherited 0.5", got.Opacity)
	}
}

func TestToComputedSpecified(t *testing.T) {
	parent := InitialValues()

	var sv SpecifiedValues
	for p, value := range map[Property]string{
		PropFill:        "#ff0000",
		PropFontSize:    "24pt",
		PropTextAnchor:  "middle",
		PropFontWeight:  "bold",
		PropWritingMode: "tb-rl",
	} {
		if err := sv.SetProperty(p, value); err != nil {
			t.Fatalf("SetProperty(%s): %s", p, err)
		}
	}
	got := sv.ToComputed(&parent)

	wantFill := Paint{Kind: PaintColor, Color: color.NRGBA{R: 0xff, A: 0xff}}
	if diff := cmp.Diff(wantFill, got.Fill); diff != "" {
		t.Errorf("fill mismatch (-want +got):\n%s", diff)
	}
	if got.FontSize != 32 { // 24pt at 96dpi
		t.Errorf("font-size = %v, want 32", got.FontSize)
	}
	if got.TextAnchor != TextAnchorMiddle {
		t.Errorf("text-anchor = %v, want middle", got.TextAnchor)
	}
	if got.FontWeight != 700 {
		t.Errorf("font-weight = %v, want 700", got.FontWeight)
	}
	if !got.WritingMode.IsVertical() {
		t.Error("writing-mode should be vertical")
	}
}

func TestToComputedIsPure(t *testing.T) {
	parent := InitialValues()
	parent.FontSize = 18

	var sv SpecifiedValues
	if err := sv.SetProperty(PropFill, "green"); err != nil {
		t.Fatal(err)
	}
	first := sv.ToComputed(&parent)
	second := sv.ToComputed(&parent)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated cascade differs (-first +second):\n%s", diff)
	}
}

func TestSetPropertyErrors(t *testing.T) {
	var sv SpecifiedValues
	for p, value := range map[Property]string{
		PropFill:        "#zzz",
		PropFontWeight:  "450",
		PropTextAnchor:  "center",
		PropOpacity:     "opaque",
		PropFontSize:    "-4",
		PropStrokeWidth: "thick",
	} {
		if err := sv.SetProperty(p, value); err == nil {
			t.Errorf("SetProperty(%s, %q): expected error", p, value)
		}
		if sv.Has(p) {
			t.Errorf("failed parse of %s still recorded a declaration", p)
		}
	}
}

func TestSetAttribute(t *testing.T) {
	var sv SpecifiedValues
	handled, err := sv.SetAttribute("fill", "blue")
	if !handled || err != nil {
		t.Fatalf("SetAttribute(fill) = %v, %v", handled, err)
	}
	handled, err = sv.SetAttribute("d", "M0 0")
	if handled || err != nil {
		t.Fatalf("SetAttribute(d) = %v, %v, want unhandled", handled, err)
	}
}
