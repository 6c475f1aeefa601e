package vdom

import "strings"

// TextTag is the tag of a pure text node (no element wrapper).
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag          string         // The HTML tag name
	Attributes   map[string]any // The attributes of the node
	Children     []*VNode       // The child nodes
	Content      string         // The text content of the node
	OnClick      func()         // Optional click event handler
	ComponentKey string         // Key of the component that produced this subtree, if any

	// eventCallbacks holds platform callbacks (js.Func on wasm) attached to
	// the DOM element so they can be detached and released later.
	eventCallbacks []EventCallback
}

// EventCallback is a platform callback registered as a listener for Event.
type EventCallback struct {
	Event string
	Fn    any
}

// NewVNode creates a new VNode.
// A func() stored under "onClick" is moved to OnClick so it never reaches
// the rendered attribute set.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// Attr returns the attribute value for key, or nil when absent.
func (v *VNode) Attr(key string) any {
	if v == nil || v.Attributes == nil {
		return nil
	}
	return v.Attributes[key]
}

// AttrString returns the attribute value for key if it is a string.
func (v *VNode) AttrString(key string) string {
	s, _ := v.Attr(key).(string)
	return s
}

// TextContent concatenates the content of the node and all its descendants
// in document order, the way the DOM textContent property does.
func (v *VNode) TextContent() string {
	var b strings.Builder
	v.writeText(&b)
	return b.String()
}

func (v *VNode) writeText(b *strings.Builder) {
	if v == nil {
		return
	}
	b.WriteString(v.Content)
	for _, child := range v.Children {
		child.writeText(b)
	}
}

// AddEventCallback records a platform callback attached as a listener for event.
func (v *VNode) AddEventCallback(event string, fn any) {
	v.eventCallbacks = append(v.eventCallbacks, EventCallback{Event: event, Fn: fn})
}

// GetEventCallbacks returns the platform callbacks attached for this node.
func (v *VNode) GetEventCallbacks() []EventCallback {
	return v.eventCallbacks
}

// TakeEventCallbacks returns the recorded callbacks and forgets them, so each
// one is detached at most once.
func (v *VNode) TakeEventCallbacks() []EventCallback {
	cbs := v.eventCallbacks
	v.eventCallbacks = nil
	return cbs
}

// ClearEventCallbacks forgets all recorded callbacks.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Text creates a pure text node.
func Text(content string) *VNode {
	return NewVNode(TextTag, nil, nil, content)
}

// Paragraph creates a <p> VNode with the given text as its content and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Span creates a <span> VNode with text content.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Heading creates an <h1>..<h6> VNode. Levels outside 1..6 are clamped.
func Heading(level int, text string, attrs map[string]any) *VNode {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

// InputText returns a VNode representing an <input type="text"> element.
// Optionally accepts a map of attributes (e.g., {"placeholder": "Type here"}).
func InputText(attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = "text"
	return NewVNode("input", attrs, nil, "")
}

// Img returns an <img> VNode with the given source and alternative text.
func Img(src, alt string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["src"] = src
	attrs["alt"] = alt
	return NewVNode("img", attrs, nil, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
