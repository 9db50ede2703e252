package librsvg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/pitdicker/librsvg/internal/logging"
	"github.com/pitdicker/librsvg/svgpath"
	"github.com/pitdicker/librsvg/svgshapes"
	"github.com/pitdicker/librsvg/svgstyle"
	"github.com/pitdicker/librsvg/svgtext"
	"github.com/pitdicker/librsvg/svgtree"
)

const (
	xmlNamespace   = "http://www.w3.org/XML/1998/namespace"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

// ReadDocumentStream reads a document from the given io.Reader.
// errMode determines if the reader ignores, errors out, or logs a
// warning if it does not handle an element found in the document.
// locale is the set of accepted languages for systemLanguage tests.
func ReadDocumentStream(stream io.Reader, errMode ErrorMode, locale svgtree.Locale) (*Document, error) {
	doc := &Document{
		Transform: svgpath.Identity,
		rules:     svgstyle.RuleSet{},
		ids:       make(map[string]*svgtree.Node),
	}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		stack     []*svgtree.Node
		skipDepth int
		styleNode *svgtree.Node
		styleText strings.Builder
	)
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			if skipDepth > 0 {
				skipDepth++
				continue
			}
			info, known := elements[se.Name.Local]
			if !known {
				if !ignoredElements[se.Name.Local] {
					if errMode == StrictErrorMode {
						return nil, fmt.Errorf("cannot process svg element %q", se.Name.Local)
					}
					if errMode == WarnErrorMode {
						logging.Logger().Warn("skipping unhandled svg element", "element", se.Name.Local)
					}
				}
				skipDepth = 1
				continue
			}

			node := svgtree.NewNode(info.typ, info.construct())
			node.SetAtts(attributes(se.Attr), locale)
			if node.ID != "" {
				if _, dup := doc.ids[node.ID]; !dup {
					doc.ids[node.ID] = node
				}
			}
			if len(stack) == 0 {
				if doc.Root != nil {
					return nil, errors.New("multiple root elements")
				}
				doc.Root = node
			} else {
				stack[len(stack)-1].AppendChild(node)
			}
			stack = append(stack, node)
			if node.Type == svgtree.TypeStyle {
				styleNode = node
				styleText.Reset()
			}

		case xml.EndElement:
			if skipDepth > 0 {
				skipDepth--
				continue
			}
			if len(stack) == 0 {
				continue
			}
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if node == styleNode {
				if style, ok := node.Impl.(*svgshapes.Style); ok && style.IsCSS() {
					doc.rules.AddStylesheet(styleText.String())
				}
				styleNode = nil
			}

		case xml.CharData:
			if skipDepth > 0 || len(stack) == 0 {
				continue
			}
			current := stack[len(stack)-1]
			if current == styleNode {
				styleText.Write(se)
				continue
			}
			if current.Type == svgtree.TypeText || current.Type == svgtree.TypeTSpan {
				appendChars(current, string(se))
			}
		}
	}
	if doc.Root == nil {
		return nil, errors.New("invalid svg document")
	}

	applyStyles(doc.Root, doc.rules)
	initial := svgstyle.InitialValues()
	svgtree.Cascade(doc.Root, &initial)
	return doc, nil
}

// ReadDocument reads a document from the named file.
func ReadDocument(path string, errMode ErrorMode, locale svgtree.Locale) (*Document, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadDocumentStream(fin, errMode, locale)
}

// attributes flattens parsed xml attributes to name/value pairs, with
// the xml and xlink namespaces mapped back to their usual prefixes.
func attributes(attrs []xml.Attr) []svgtree.Attribute {
	out := make([]svgtree.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		name := attr.Name.Local
		switch attr.Name.Space {
		case xmlNamespace, "xml":
			name = "xml:" + name
		case xlinkNamespace, "xlink":
			name = "xlink:" + name
		case "", "http://www.w3.org/2000/svg":
		default:
			// foreign namespaces carry no svg meaning
			continue
		}
		out = append(out, svgtree.Attribute{Name: name, Value: attr.Value})
	}
	return out
}

// appendChars adds character data under a text or tspan node.
// Consecutive runs coalesce into a single trailing chars child, so
// entity boundaries do not split spans.
func appendChars(parent *svgtree.Node, text string) {
	if last := parent.LastChild(); last != nil && last.Type == svgtree.TypeChars {
		last.Impl.(*svgtext.Chars).Append(text)
		return
	}
	chars := svgtext.NewChars()
	chars.Append(text)
	parent.AppendChild(svgtree.NewNode(svgtree.TypeChars, chars))
}

func applyStyles(n *svgtree.Node, rules svgstyle.RuleSet) {
	n.SetStyle(rules)
	for _, child := range n.Children() {
		applyStyles(child, rules)
	}
}
