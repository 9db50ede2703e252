package svgtext

import (
	"testing"

	"github.com/pitdicker/librsvg/svgstyle"
)

func TestNormalizeDefault(t *testing.T) {
	tests := []struct {
		in     string
		params NormalizeParams
		want   string
	}{
		{"  a\t b  c\n", NormalizeParams{}, "a b c"},
		{"\n    WS example\n    indented lines\n  ", NormalizeParams{}, "WS example indented lines"},
		{" a ", NormalizeParams{HasElementBefore: true}, " a"},
		{" a ", NormalizeParams{HasElementAfter: true}, "a "},
		{" a ", NormalizeParams{HasElementBefore: true, HasElementAfter: true}, " a "},
		{"a\nb", NormalizeParams{}, "ab"},
		{"", NormalizeParams{}, ""},
		{"   ", NormalizeParams{}, ""},
	}
	for _, test := range tests {
		got := Normalize(svgstyle.XMLSpaceDefault, test.in, test.params)
		if got != test.want {
			t.Errorf("Normalize(%q, %+v) = %q, want %q", test.in, test.params, got, test.want)
		}
		// default mode normalization is idempotent
		if again := Normalize(svgstyle.XMLSpaceDefault, got, test.params); again != got {
			t.Errorf("Normalize not idempotent: %q then %q", got, again)
		}
	}
}

func TestNormalizePreserve(t *testing.T) {
	in := "  a\t b \n c "
	if got := Normalize(svgstyle.XMLSpacePreserve, in, NormalizeParams{}); got != in {
		t.Errorf("preserve mode altered text: %q", got)
	}
}

func TestCharsCache(t *testing.T) {
	c := NewChars()
	c.Append("  hello ")
	first := c.NormalizedText(svgstyle.XMLSpaceDefault, NormalizeParams{})
	if first != "hello" {
		t.Fatalf("normalized = %q, want %q", first, "hello")
	}
	// the cache serves repeated reads
	if again := c.NormalizedText(svgstyle.XMLSpaceDefault, NormalizeParams{}); again != first {
		t.Errorf("cached read = %q, want %q", again, first)
	}
	// appending invalidates
	c.Append(" world ")
	if got := c.NormalizedText(svgstyle.XMLSpaceDefault, NormalizeParams{}); got != "hello world" {
		t.Errorf("after append = %q, want %q", got, "hello world")
	}
	// changed parameters bypass the cache too
	if got := c.NormalizedText(svgstyle.XMLSpacePreserve, NormalizeParams{}); got != "  hello  world " {
		t.Errorf("preserve read = %q", got)
	}
}
