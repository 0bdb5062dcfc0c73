package render

import (
	"html"
	"sort"
	"strings"
	"unicode"

	"resume-builder-backend/internal/templates"
)

// Node is one element of the projected document tree. The projector builds
// trees of Nodes; serialization to markup happens in one place so every
// field value is escaped exactly once.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Style    templates.StyleMap
	Text     string
	Children []*Node
}

func el(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

func text(s string) *Node {
	return &Node{Text: s}
}

func (n *Node) withAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

func (n *Node) withStyle(style templates.StyleMap) *Node {
	n.Style = style
	return n
}

func (n *Node) append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// HTML serializes the tree to markup. Output is deterministic: attributes
// and style properties are emitted in sorted order, and all text and
// attribute values are escaped.
func (n *Node) HTML() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Tag == "" {
		b.WriteString(html.EscapeString(n.Text))
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(n.Attrs[k]))
		b.WriteByte('"')
	}

	if css := inlineCSS(n.Style); css != "" {
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(css))
		b.WriteByte('"')
	}

	b.WriteByte('>')
	for _, child := range n.Children {
		child.write(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

// inlineCSS flattens a style map to a CSS declaration list, converting
// camelCase property names to kebab-case. Properties are sorted so equal
// maps always produce identical output.
func inlineCSS(style templates.StyleMap) string {
	if len(style) == 0 {
		return ""
	}
	props := make([]string, 0, len(style))
	for k := range style {
		props = append(props, k)
	}
	sort.Strings(props)

	var b strings.Builder
	for i, prop := range props {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(kebabCase(prop))
		b.WriteByte(':')
		b.WriteString(style[prop])
	}
	return b.String()
}

func kebabCase(prop string) string {
	var b strings.Builder
	for _, r := range prop {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
