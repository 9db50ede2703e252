package svgshapes

import (
	"image/color"
	"testing"

	"github.com/pitdicker/librsvg/svgdraw"
	"github.com/pitdicker/librsvg/svgstyle"
	"github.com/pitdicker/librsvg/svgtree"
)

func stopNode(t *testing.T, offset, stopColor string) *svgtree.Node {
	t.Helper()
	attrs := []svgtree.Attribute{{Name: "offset", Value: offset}}
	if stopColor != "" {
		attrs = append(attrs, svgtree.Attribute{Name: "stop-color", Value: stopColor})
	}
	return newElem(t, svgtree.TypeStop, &Stop{}, attrs...)
}

func gradientPattern(t *testing.T, rect *svgtree.Node, resolve func(string) *svgtree.Node) svgdraw.Gradient {
	t.Helper()
	driver, _ := drawOne(t, rect, resolve)
	if len(driver.fills) != 1 {
		t.Fatalf("fill count = %d, want 1", len(driver.fills))
	}
	grad, ok := driver.fills[0].pattern.(svgdraw.Gradient)
	if !ok {
		t.Fatalf("fill pattern = %#v, want a gradient", driver.fills[0].pattern)
	}
	return grad
}

func resolver(nodes map[string]*svgtree.Node) func(string) *svgtree.Node {
	return func(id string) *svgtree.Node { return nodes[id] }
}

func TestLinearGradientFill(t *testing.T) {
	grad := newElem(t, svgtree.TypeLinearGradient, NewLinearGradient(),
		svgtree.Attribute{Name: "id", Value: "grad"},
		svgtree.Attribute{Name: "x1", Value: "10%"},
		svgtree.Attribute{Name: "spreadMethod", Value: "reflect"},
	)
	grad.AppendChild(stopNode(t, "0", "red"))
	grad.AppendChild(stopNode(t, "100%", "blue"))
	initial := svgstyle.InitialValues()
	svgtree.Cascade(grad, &initial)

	rect := newElem(t, svgtree.TypeRect, &Rect{},
		svgtree.Attribute{Name: "width", Value: "10"},
		svgtree.Attribute{Name: "height", Value: "10"},
		svgtree.Attribute{Name: "fill", Value: "url(#grad)"},
	)
	pattern := gradientPattern(t, rect, resolver(map[string]*svgtree.Node{"grad": grad}))

	direction, ok := pattern.Direction.(svgdraw.Linear)
	if !ok || direction != (svgdraw.Linear{0.1, 0, 1, 0}) {
		t.Errorf("direction = %#v, want linear (0.1, 0, 1, 0)", pattern.Direction)
	}
	if pattern.Spread != svgdraw.ReflectSpread {
		t.Errorf("spread = %v, want reflect", pattern.Spread)
	}
	if pattern.Units != svgdraw.ObjectBoundingBox {
		t.Errorf("units = %v, want objectBoundingBox", pattern.Units)
	}
	if len(pattern.Stops) != 2 {
		t.Fatalf("stop count = %d, want 2", len(pattern.Stops))
	}
	if pattern.Stops[0].StopColor != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Errorf("stop 1 color = %v, want red", pattern.Stops[0].StopColor)
	}
	if pattern.Stops[1].Offset != 1 || pattern.Stops[1].StopColor != (color.NRGBA{B: 0xff, A: 0xff}) {
		t.Errorf("stop 2 = %+v, want blue at offset 1", pattern.Stops[1])
	}
}

func TestRadialGradientFocalDefaults(t *testing.T) {
	grad := newElem(t, svgtree.TypeRadialGradient, NewRadialGradient(),
		svgtree.Attribute{Name: "id", Value: "grad"},
		svgtree.Attribute{Name: "cx", Value: "0.3"},
	)
	grad.AppendChild(stopNode(t, "0", "white"))
	grad.AppendChild(stopNode(t, "1", "black"))
	initial := svgstyle.InitialValues()
	svgtree.Cascade(grad, &initial)

	rect := newElem(t, svgtree.TypeRect, &Rect{},
		svgtree.Attribute{Name: "width", Value: "10"},
		svgtree.Attribute{Name: "height", Value: "10"},
		svgtree.Attribute{Name: "fill", Value: "url(#grad)"},
	)
	pattern := gradientPattern(t, rect, resolver(map[string]*svgtree.Node{"grad": grad}))

	direction, ok := pattern.Direction.(svgdraw.Radial)
	if !ok {
		t.Fatalf("direction = %#v, want radial", pattern.Direction)
	}
	// the focal point follows the center when not set
	want := svgdraw.Radial{0.3, 0.5, 0.3, 0.5, 0.5, 0}
	if direction != want {
		t.Errorf("direction = %v, want %v", direction, want)
	}
}

func TestGradientHrefInheritsStops(t *testing.T) {
	base := newElem(t, svgtree.TypeLinearGradient, NewLinearGradient(),
		svgtree.Attribute{Name: "id", Value: "base"},
	)
	base.AppendChild(stopNode(t, "0", "red"))
	base.AppendChild(stopNode(t, "1", "blue"))
	derived := newElem(t, svgtree.TypeLinearGradient, NewLinearGradient(),
		svgtree.Attribute{Name: "id", Value: "derived"},
		svgtree.Attribute{Name: "x2", Value: "0.5"},
		svgtree.Attribute{Name: "xlink:href", Value: "#base"},
	)
	initial := svgstyle.InitialValues()
	svgtree.Cascade(base, &initial)
	svgtree.Cascade(derived, &initial)

	rect := newElem(t, svgtree.TypeRect, &Rect{},
		svgtree.Attribute{Name: "width", Value: "10"},
		svgtree.Attribute{Name: "height", Value: "10"},
		svgtree.Attribute{Name: "fill", Value: "url(#derived)"},
	)
	pattern := gradientPattern(t, rect, resolver(map[string]*svgtree.Node{
		"base": base, "derived": derived,
	}))

	if len(pattern.Stops) != 2 {
		t.Fatalf("stop count = %d, want the referenced gradient's 2", len(pattern.Stops))
	}
	// the geometry stays the derived gradient's own
	if pattern.Direction != (svgdraw.Linear{0, 0, 0.5, 0}) {
		t.Errorf("direction = %v, want the derived geometry", pattern.Direction)
	}
}

func TestGradientWithoutStopsFallsBack(t *testing.T) {
	grad := newElem(t, svgtree.TypeLinearGradient, NewLinearGradient(),
		svgtree.Attribute{Name: "id", Value: "empty"},
	)
	initial := svgstyle.InitialValues()
	svgtree.Cascade(grad, &initial)

	rect := newElem(t, svgtree.TypeRect, &Rect{},
		svgtree.Attribute{Name: "width", Value: "10"},
		svgtree.Attribute{Name: "height", Value: "10"},
		svgtree.Attribute{Name: "fill", Value: "url(#empty) green"},
	)
	driver, _ := drawOne(t, rect, resolver(map[string]*svgtree.Node{"empty": grad}))
	if len(driver.fills) != 1 {
		t.Fatalf("fill count = %d, want 1", len(driver.fills))
	}
	want := svgdraw.PlainColor{NRGBA: color.NRGBA{G: 0x80, A: 0xff}}
	if driver.fills[0].pattern != want {
		t.Errorf("pattern = %#v, want the fallback color", driver.fills[0].pattern)
	}
}

func TestStopOffsets(t *testing.T) {
	s := &Stop{}
	n := svgtree.NewNode(svgtree.TypeStop, s)
	if err := s.SetAttributes(n, []svgtree.Attribute{{Name: "offset", Value: "150%"}}); err != nil {
		t.Fatal(err)
	}
	if s.Offset != 1 {
		t.Errorf("offset = %v, want clamped to 1", s.Offset)
	}

	// a stop before its predecessor is pulled up to it
	grad := newElem(t, svgtree.TypeLinearGradient, NewLinearGradient(),
		svgtree.Attribute{Name: "id", Value: "grad"})
	grad.AppendChild(stopNode(t, "0.8", "red"))
	grad.AppendChild(stopNode(t, "0.5", "blue"))
	initial := svgstyle.InitialValues()
	svgtree.Cascade(grad, &initial)

	rect := newElem(t, svgtree.TypeRect, &Rect{},
		svgtree.Attribute{Name: "width", Value: "10"},
		svgtree.Attribute{Name: "height", Value: "10"},
		svgtree.Attribute{Name: "fill", Value: "url(#grad)"},
	)
	pattern := gradientPattern(t, rect, resolver(map[string]*svgtree.Node{"grad": grad}))
	if pattern.Stops[1].Offset != 0.8 {
		t.Errorf("second offset = %v, want 0.8", pattern.Stops[1].Offset)
	}
}

func TestGradientNeverRendersDirectly(t *testing.T) {
	grad := newElem(t, svgtree.TypeLinearGradient, NewLinearGradient(),
		svgtree.Attribute{Name: "id", Value: "grad"})
	grad.AppendChild(stopNode(t, "0", "red"))
	initial := svgstyle.InitialValues()
	svgtree.Cascade(grad, &initial)

	if grad.Computed.Display {
		t.Error("gradient element should compute display: none")
	}
	driver, _ := drawOne(t, grad, nil)
	if len(driver.fills) != 0 {
		t.Errorf("gradient rendered directly: %d fills", len(driver.fills))
	}
}
