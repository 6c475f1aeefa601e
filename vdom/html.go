package vdom

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML writes the HTML serialization of the VNode tree to w.
//
// Attributes are written in sorted order so that equal trees always
// serialize to equal bytes. Event handlers ("on*" attributes and function
// values) are dropped; boolean attributes are written bare when true and
// omitted when false.
func RenderHTML(w io.Writer, n *VNode) error {
	node := toHTMLNode(n)
	if node == nil {
		return nil
	}
	return html.Render(w, node)
}

// HTMLString is a convenience wrapper around RenderHTML.
func HTMLString(n *VNode) (string, error) {
	var b strings.Builder
	if err := RenderHTML(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func toHTMLNode(n *VNode) *html.Node {
	if n == nil {
		return nil
	}

	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	a := atom.Lookup([]byte(n.Tag))
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: a,
		Attr:     htmlAttributes(n.Attributes),
	}

	if isVoidElement(a) {
		// Input content mirrors the DOM value property.
		if a == atom.Input && n.Content != "" {
			el.Attr = append(el.Attr, html.Attribute{Key: "value", Val: n.Content})
		}
		return el
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if c := toHTMLNode(child); c != nil {
			el.AppendChild(c)
		}
	}
	return el
}

func htmlAttributes(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		if isEventAttribute(k) {
			continue
		}
		switch v := attrs[k].(type) {
		case nil:
			continue
		case bool:
			if v {
				out = append(out, html.Attribute{Key: k})
			}
		case string:
			out = append(out, html.Attribute{Key: k, Val: v})
		default:
			if isFunc(v) {
				continue
			}
			out = append(out, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		}
	}
	return out
}

// isEventAttribute reports whether key names an event handler (onClick, onInput...).
func isEventAttribute(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n'
}

func isFunc(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Func
}

func isVoidElement(a atom.Atom) bool {
	switch a {
	case atom.Area, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img, atom.Input,
		atom.Link, atom.Meta, atom.Source, atom.Track, atom.Wbr:
		return true
	}
	return false
}
