package svgstyle

import (
	"strings"
)

// Declaration is one property/value pair from a css rule or an inline
// style attribute. The value is kept as raw text and parsed when
// applied, so a rule with a bad value only affects the nodes it
// matches.
type Declaration struct {
	Property  Property
	Value     string
	Important bool
}

// RuleSet is a queryable css rule table: selector text to the ordered
// declarations of every rule with that selector. Only the simple
// selector forms used by the cascade lookup are meaningful keys
// (*, tag, .class, #id and their combinations).
type RuleSet map[string][]Declaration

// Declarations returns the declarations recorded for a selector, in
// source order, or nil.
func (r RuleSet) Declarations(selector string) []Declaration {
	return r[selector]
}

// Add appends the declarations of one rule.
func (r RuleSet) Add(selector string, decls []Declaration) {
	if len(decls) > 0 {
		r[selector] = append(r[selector], decls...)
	}
}

// ParseDeclarations parses the contents of a declaration block or a
// style attribute: semicolon separated property:value pairs, each
// optionally flagged !important. Unknown properties are skipped.
func ParseDeclarations(s string) []Declaration {
	var out []Declaration
	for _, item := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(item, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		important := false
		if i := strings.LastIndexByte(value, '!'); i >= 0 {
			if strings.TrimSpace(strings.ToLower(value[i+1:])) == "important" {
				important = true
				value = strings.TrimSpace(value[:i])
			}
		}
		p, known := ParseProperty(strings.TrimSpace(name))
		if !known {
			continue
		}
		out = append(out, Declaration{Property: p, Value: value, Important: important})
	}
	return out
}

// AddStylesheet parses css text, such as the content of a style
// element, into the rule table. Comments are stripped; at-rules and
// selectors beyond the supported simple forms are kept under their
// literal selector text, which simply never matches.
func (r RuleSet) AddStylesheet(css string) {
	css = stripComments(css)
	for {
		open := strings.IndexByte(css, '{')
		if open < 0 {
			return
		}
		selectorText := strings.TrimSpace(css[:open])
		rest := css[open+1:]
		if strings.HasPrefix(selectorText, "@") {
			// skip at-rules with their whole block, which may hold
			// nested rules with braces of their own
			depth := 1
			i := 0
			for i < len(rest) && depth > 0 {
				switch rest[i] {
				case '{':
					depth++
				case '}':
					depth--
				}
				i++
			}
			css = rest[i:]
			continue
		}
		close_ := strings.IndexByte(rest, '}')
		if close_ < 0 {
			return
		}
		decls := ParseDeclarations(rest[:close_])
		for _, sel := range strings.Split(selectorText, ",") {
			r.Add(strings.TrimSpace(sel), decls)
		}
		css = rest[close_+1:]
	}
}

func stripComments(css string) string {
	var b strings.Builder
	for {
		open := strings.Index(css, "/*")
		if open < 0 {
			b.WriteString(css)
			return b.String()
		}
		b.WriteString(css[:open])
		end := strings.Index(css[open+2:], "*/")
		if end < 0 {
			return b.String()
		}
		css = css[open+2+end+2:]
	}
}
