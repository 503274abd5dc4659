package renderer

import (
	"regexp"
	"strings"
)

// The renderer composes documents from a small typed node tree instead of
// scattering string concatenation through every section. Escaping lives in
// exactly one place: the serializer. Raw nodes bypass it and are reserved
// for curated fragments (icons, inline SVG, entities).

// Node is one piece of renderable markup
type Node interface {
	writeTo(b *strings.Builder)
}

// Attr is a single attribute; order is preserved so output is deterministic
type Attr struct {
	Key string
	Val string
}

// A builds an attribute
func A(key, val string) Attr {
	return Attr{Key: key, Val: val}
}

type element struct {
	tag      string
	attrs    []Attr
	children []Node
}

type textNode string
type rawNode string
type commentNode string
type fragment []Node

// voidTags never get a closing tag
var voidTags = map[string]bool{
	"meta": true, "link": true, "img": true, "br": true, "hr": true, "input": true,
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// EscapeHTML escapes the five reserved HTML characters
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// StripTags removes embedded markup from long-form text fields before they
// are escaped, so operators cannot smuggle raw HTML through text inputs.
func StripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

// El builds an element node
func El(tag string, attrs []Attr, children ...Node) Node {
	return element{tag: tag, attrs: attrs, children: children}
}

// Text builds an escaped text node
func Text(s string) Node {
	return textNode(s)
}

// StrippedText strips embedded markup, then escapes
func StrippedText(s string) Node {
	return textNode(StripTags(s))
}

// Raw inserts a fragment verbatim, bypassing escaping
func Raw(s string) Node {
	return rawNode(s)
}

// Comment builds an HTML comment node
func Comment(s string) Node {
	return commentNode(s)
}

// Frag groups nodes without a wrapper element
func Frag(children ...Node) Node {
	return fragment(children)
}

// If returns the node when cond holds, nil otherwise; nil nodes are skipped
func If(cond bool, node Node) Node {
	if cond {
		return node
	}
	return nil
}

// Serialize renders nodes to an HTML string
func Serialize(nodes ...Node) string {
	var b strings.Builder
	for _, n := range nodes {
		if n != nil {
			n.writeTo(&b)
		}
	}
	return b.String()
}

func (e element) writeTo(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(EscapeHTML(a.Val))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if voidTags[e.tag] {
		return
	}
	for _, c := range e.children {
		if c != nil {
			c.writeTo(b)
		}
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}

func (t textNode) writeTo(b *strings.Builder) {
	b.WriteString(EscapeHTML(string(t)))
}

func (r rawNode) writeTo(b *strings.Builder) {
	b.WriteString(string(r))
}

func (c commentNode) writeTo(b *strings.Builder) {
	b.WriteString("<!-- ")
	b.WriteString(string(c))
	b.WriteString(" -->")
}

func (f fragment) writeTo(b *strings.Builder) {
	for _, n := range f {
		if n != nil {
			n.writeTo(b)
		}
	}
}
