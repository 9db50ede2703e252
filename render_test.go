package librsvg

import (
	"image"
	"strings"
	"testing"

	"github.com/pitdicker/librsvg/svgraster"
	"github.com/pitdicker/librsvg/svgtree"
)

func TestRenderToImage(t *testing.T) {
	doc, err := ReadDocumentStream(strings.NewReader(`
		<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"
		     viewBox="0 0 10 10">
		  <defs>
		    <linearGradient id="grad">
		      <stop offset="0" stop-color="red"/>
		      <stop offset="1" stop-color="blue"/>
		    </linearGradient>
		  </defs>
		  <rect width="10" height="10" fill="url(#grad)"/>
		  <circle cx="5" cy="5" r="2" fill="white"/>
		</svg>`), StrictErrorMode, svgtree.Locale{})
	if err != nil {
		t.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	doc.SetTarget(0, 0, 40, 40)
	renderer := svgraster.NewImageRenderer(img)
	bbox, err := doc.Render(renderer, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bbox.Valid || bbox.Width() != 40 || bbox.Height() != 40 {
		t.Errorf("bbox = %+v, want the full 40x40 target", bbox)
	}

	// left edge is red-ish, right edge blue-ish, center white
	r, _, b, _ := img.At(2, 20).RGBA()
	if r <= b {
		t.Errorf("left edge (r %d, b %d) not red dominant", r, b)
	}
	r, _, b, _ = img.At(38, 20).RGBA()
	if b <= r {
		t.Errorf("right edge (r %d, b %d) not blue dominant", r, b)
	}
	r, g, b, _ := img.At(20, 20).RGBA()
	if r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("center (r %d, g %d, b %d) not white", r, g, b)
	}
}

func TestRenderSkipsErroredElement(t *testing.T) {
	doc, err := ReadDocumentStream(strings.NewReader(`
		<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
		  <rect width="10" height="10" transform="rotate(junk)" fill="red"/>
		</svg>`), StrictErrorMode, svgtree.Locale{})
	if err != nil {
		t.Fatal(err)
	}
	rect := doc.Root.Children()[0]
	if rect.Err() == nil {
		t.Fatal("malformed transform did not flag the node")
	}

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	renderer := svgraster.NewImageRenderer(img)
	if _, err := doc.Render(renderer, nil); err != nil {
		t.Fatal(err)
	}
	if _, _, _, a := img.At(5, 5).RGBA(); a != 0 {
		t.Error("in-error element painted pixels")
	}
}
