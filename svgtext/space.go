// Implements the layout of text elements:
// chunk construction, measurement through a shaping backend, and
// anchor/baseline positioning.
package svgtext

import (
	"strings"

	"github.com/pitdicker/librsvg/svgstyle"
)

// NormalizeParams describes the context of a character-data node for
// whitespace handling in the default mode: whether element siblings
// exist on either side, so text is not trimmed against them.
type NormalizeParams struct {
	HasElementBefore bool
	HasElementAfter  bool
}

// Normalize applies xml:space processing to raw character data.
// Preserve keeps the text verbatim. Default drops newlines, turns
// tabs into spaces, collapses runs of spaces, and trims the leading
// edge when no element precedes and the trailing edge when no element
// follows.
func Normalize(mode svgstyle.XMLSpace, s string, params NormalizeParams) string {
	if mode == svgstyle.XMLSpacePreserve {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		switch r {
		case '\n', '\r':
			continue
		case '\t', ' ':
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
		default:
			prevSpace = false
			b.WriteRune(r)
		}
	}
	out := b.String()
	if !params.HasElementBefore {
		out = strings.TrimPrefix(out, " ")
	}
	if !params.HasElementAfter {
		out = strings.TrimSuffix(out, " ")
	}
	return out
}
