package svgtree

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Evaluation of the conditional processing attributes
// requiredExtensions, requiredFeatures and systemLanguage.

// implementedFeatures is the table of supported feature strings for
// the requiredFeatures attribute. It must stay sorted, lookups use
// binary search.
var implementedFeatures = []string{
	"http://www.w3.org/TR/SVG11/feature#BasicFilter",
	"http://www.w3.org/TR/SVG11/feature#BasicGraphicsAttribute",
	"http://www.w3.org/TR/SVG11/feature#BasicPaintAttribute",
	"http://www.w3.org/TR/SVG11/feature#BasicStructure",
	"http://www.w3.org/TR/SVG11/feature#BasicText",
	"http://www.w3.org/TR/SVG11/feature#ConditionalProcessing",
	"http://www.w3.org/TR/SVG11/feature#ContainerAttribute",
	"http://www.w3.org/TR/SVG11/feature#Filter",
	"http://www.w3.org/TR/SVG11/feature#Gradient",
	"http://www.w3.org/TR/SVG11/feature#Image",
	"http://www.w3.org/TR/SVG11/feature#Marker",
	"http://www.w3.org/TR/SVG11/feature#Mask",
	"http://www.w3.org/TR/SVG11/feature#OpacityAttribute",
	"http://www.w3.org/TR/SVG11/feature#Pattern",
	"http://www.w3.org/TR/SVG11/feature#SVG",
	"http://www.w3.org/TR/SVG11/feature#SVG-static",
	"http://www.w3.org/TR/SVG11/feature#Shape",
	"http://www.w3.org/TR/SVG11/feature#Structure",
	"http://www.w3.org/TR/SVG11/feature#Style",
	"http://www.w3.org/TR/SVG11/feature#View",
	"http://www.w3.org/TR/SVG11/feature#ViewportAttribute",
}

// Locale is the ordered set of language ranges the runtime accepts,
// passed explicitly into attribute resolution.
type Locale struct {
	tags []language.Tag
}

// ParseLocale parses a comma separated list of BCP 47 language
// ranges, such as "de, en-US".
func ParseLocale(s string) (Locale, error) {
	var l Locale
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		tag, err := language.Parse(item)
		if err != nil {
			return Locale{}, fmt.Errorf("invalid language range %q: %w", item, err)
		}
		l.tags = append(l.tags, tag)
	}
	return l, nil
}

// NewLocale builds a locale from already parsed tags.
func NewLocale(tags ...language.Tag) Locale {
	return Locale{tags: tags}
}

// accepts reports whether one of the locale's ranges matches the tag,
// with RFC 4647 prefix semantics: the range "de" accepts "de-LU".
func (l Locale) accepts(tag language.Tag) bool {
	tagStr := strings.ToLower(tag.String())
	for _, accepted := range l.tags {
		accStr := strings.ToLower(accepted.String())
		if tagStr == accStr || strings.HasPrefix(tagStr, accStr+"-") {
			return true
		}
	}
	return false
}

// evalRequiredExtensions returns true iff every whitespace separated
// token is a supported extension. No extensions are supported, so any
// token at all fails; the empty value passes.
func evalRequiredExtensions(value string) bool {
	return len(strings.Fields(value)) == 0
}

// evalRequiredFeatures returns true iff every token is in the
// implemented feature table. Unknown tokens fail.
func evalRequiredFeatures(value string) bool {
	for _, f := range strings.Fields(value) {
		i := sort.SearchStrings(implementedFeatures, f)
		if i == len(implementedFeatures) || implementedFeatures[i] != f {
			return false
		}
	}
	return true
}

// evalSystemLanguage returns true iff at least one of the comma
// separated language tags is accepted by the locale. Unlike the other
// two conditions, a token that fails to parse is a hard error for the
// whole attribute.
func evalSystemLanguage(value string, locale Locale) (bool, error) {
	matched := false
	for _, item := range strings.Split(value, ",") {
		tag, err := language.Parse(strings.TrimSpace(item))
		if err != nil {
			return false, fmt.Errorf("invalid language tag %q: %w", strings.TrimSpace(item), err)
		}
		if locale.accepts(tag) {
			matched = true
		}
	}
	return matched, nil
}
