package svgtext

import (
	"github.com/pitdicker/librsvg/svgstyle"
	"github.com/pitdicker/librsvg/svgtree"
)

// Chars is the payload of a character-data node. The document reader
// appends raw text as the markup parser produces it; the normalized
// form is computed lazily and cached until the next append.
type Chars struct {
	text string

	// cache of the last normalization; stale after every append
	cache struct {
		fresh  bool
		mode   svgstyle.XMLSpace
		params NormalizeParams
		value  string
	}
}

var _ svgtree.ElementImpl = (*Chars)(nil)

// NewChars builds an empty character-data payload.
func NewChars() *Chars { return &Chars{} }

// SetAttributes is a no-op, character data has no attributes.
func (c *Chars) SetAttributes(node *svgtree.Node, attrs []svgtree.Attribute) error {
	return nil
}

// Append adds raw text and invalidates the normalized cache.
func (c *Chars) Append(s string) {
	c.text += s
	c.cache.fresh = false
}

// Raw returns the accumulated text without normalization.
func (c *Chars) Raw() string { return c.text }

// NormalizedText returns the text after xml:space processing,
// recomputing only when the content or the parameters changed.
func (c *Chars) NormalizedText(mode svgstyle.XMLSpace, params NormalizeParams) string {
	if c.cache.fresh && c.cache.mode == mode && c.cache.params == params {
		return c.cache.value
	}
	c.cache.fresh = true
	c.cache.mode = mode
	c.cache.params = params
	c.cache.value = Normalize(mode, c.text, params)
	return c.cache.value
}
