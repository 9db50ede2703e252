package librsvg

import (
	"image/color"
	"strings"
	"testing"

	"github.com/pitdicker/librsvg/svgshapes"
	"github.com/pitdicker/librsvg/svgstyle"
	"github.com/pitdicker/librsvg/svgtext"
	"github.com/pitdicker/librsvg/svgtree"
)

func readString(t *testing.T, src string, mode ErrorMode) *Document {
	t.Helper()
	doc, err := ReadDocumentStream(strings.NewReader(src), mode, svgtree.Locale{})
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestReadDocument(t *testing.T) {
	doc := readString(t, `
		<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"
		     width="100" height="50" viewBox="0 0 200 100">
		  <style>.hot { fill: #f00; }</style>
		  <defs>
		    <linearGradient id="grad">
		      <stop offset="0" stop-color="white"/>
		      <stop offset="1" stop-color="black"/>
		    </linearGradient>
		  </defs>
		  <rect id="r" class="hot" width="10" height="10"/>
		  <use xlink:href="#r" x="20"/>
		</svg>`, StrictErrorMode)

	if doc.Root.Type != svgtree.TypeSvg {
		t.Fatalf("root type = %v, want svg", doc.Root.Type)
	}
	w, h := doc.Size()
	if w != 100 || h != 50 {
		t.Errorf("size = (%v, %v), want (100, 50)", w, h)
	}
	if _, _, vw, vh, ok := doc.ViewBox(); !ok || vw != 200 || vh != 100 {
		t.Errorf("viewBox = %v x %v (ok %v), want 200 x 100", vw, vh, ok)
	}

	rect := doc.Resolve("r")
	if rect == nil {
		t.Fatal("rect not indexed by id")
	}
	// the stylesheet class rule cascaded into the computed fill
	if got := rect.Computed.Fill; got.Kind != svgstyle.PaintColor ||
		got.Color != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Errorf("rect fill = %+v, want red from the class rule", got)
	}

	if grad := doc.Resolve("grad"); grad == nil {
		t.Error("gradient not indexed by id")
	} else if len(grad.Children()) != 2 {
		t.Errorf("gradient stop count = %d, want 2", len(grad.Children()))
	}
}

func TestCharsCoalescing(t *testing.T) {
	doc := readString(t, `<svg xmlns="http://www.w3.org/2000/svg"><text>A&amp;B</text></svg>`,
		StrictErrorMode)
	text := doc.Root.Children()[0]
	if len(text.Children()) != 1 {
		t.Fatalf("text child count = %d, want one coalesced chars node", len(text.Children()))
	}
	chars := text.Children()[0].Impl.(*svgtext.Chars)
	if chars.Raw() != "A&B" {
		t.Errorf("chars = %q, want %q", chars.Raw(), "A&B")
	}
}

func TestUnknownElementModes(t *testing.T) {
	const src = `<svg xmlns="http://www.w3.org/2000/svg"><foreign><rect id="x"/></foreign></svg>`

	if _, err := ReadDocumentStream(strings.NewReader(src), StrictErrorMode, svgtree.Locale{}); err == nil {
		t.Error("strict mode accepted an unhandled element")
	}

	doc := readString(t, src, IgnoreErrorMode)
	// the whole unhandled subtree is skipped
	if len(doc.Root.Children()) != 0 {
		t.Errorf("root child count = %d, want 0", len(doc.Root.Children()))
	}
	if doc.Resolve("x") != nil {
		t.Error("element inside a skipped subtree was indexed")
	}
}

func TestIgnoredElements(t *testing.T) {
	doc := readString(t, `
		<svg xmlns="http://www.w3.org/2000/svg">
		  <title>a title</title>
		  <desc>a description</desc>
		  <rect width="1" height="1"/>
		</svg>`, StrictErrorMode)
	if len(doc.Root.Children()) != 1 {
		t.Errorf("root child count = %d, want only the rect", len(doc.Root.Children()))
	}
}

func TestStyleElementTypeGate(t *testing.T) {
	doc := readString(t, `
		<svg xmlns="http://www.w3.org/2000/svg">
		  <style type="text/plain">rect { fill: #00f; }</style>
		  <rect id="r" width="1" height="1"/>
		</svg>`, StrictErrorMode)
	rect := doc.Resolve("r")
	// a non-css stylesheet language contributes nothing
	if rect.Computed.Fill.Color != (color.NRGBA{A: 0xff}) {
		t.Errorf("rect fill = %+v, want the initial black", rect.Computed.Fill)
	}
}

func TestDuplicateIDKeepsFirst(t *testing.T) {
	doc := readString(t, `
		<svg xmlns="http://www.w3.org/2000/svg">
		  <rect id="dup" width="1" height="1"/>
		  <circle id="dup" r="5"/>
		</svg>`, StrictErrorMode)
	n := doc.Resolve("dup")
	if n == nil || n.Type != svgtree.TypeRect {
		t.Errorf("duplicate id resolved to %v, want the first element", n)
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := ReadDocumentStream(strings.NewReader(""), IgnoreErrorMode, svgtree.Locale{}); err == nil {
		t.Error("empty input accepted")
	}
}

func TestSystemLanguageFiltering(t *testing.T) {
	locale, err := svgtree.ParseLocale("de, en-US")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := ReadDocumentStream(strings.NewReader(`
		<svg xmlns="http://www.w3.org/2000/svg">
		  <switch>
		    <text systemLanguage="fr">Bonjour</text>
		    <text systemLanguage="de-LU">Hallo</text>
		    <text>fallback</text>
		  </switch>
		</svg>`), StrictErrorMode, locale)
	if err != nil {
		t.Fatal(err)
	}
	sw := doc.Root.Children()[0]
	children := sw.Children()
	if children[0].CondTrue {
		t.Error("french alternative should be ineligible")
	}
	if !children[1].CondTrue {
		t.Error("german alternative should be eligible")
	}
}

func TestSetTarget(t *testing.T) {
	doc := readString(t,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10"/></svg>`,
		StrictErrorMode)
	doc.SetTarget(0, 0, 20, 20)
	if doc.Transform.A != 2 || doc.Transform.D != 2 {
		t.Errorf("transform = %+v, want a 2x scale", doc.Transform)
	}
}

func TestRootImplParsed(t *testing.T) {
	doc := readString(t,
		`<svg xmlns="http://www.w3.org/2000/svg" width="12px" height="34"/>`, StrictErrorMode)
	svg := doc.Root.Impl.(*svgshapes.Svg)
	if svg.Width != "12px" || svg.Height != "34" {
		t.Errorf("raw size = %q x %q", svg.Width, svg.Height)
	}
	w, h := doc.Size()
	if w != 12 || h != 34 {
		t.Errorf("size = (%v, %v), want (12, 34)", w, h)
	}
}
