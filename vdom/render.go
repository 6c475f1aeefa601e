//go:build js && wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/storefront/console"
)

// supportedTags lists the elements createElement knows how to build.
var supportedTags = map[string]bool{
	"div": true, "p": true, "span": true, "button": true, "input": true, "img": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "a": true, "nav": true, "section": true,
	"article": true, "header": true, "footer": true, "main": true, "aside": true,
}

// releaseCallbacks releases all js.Func objects stored in a VNode. Use it only
// when the DOM element itself is being discarded.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.TakeEventCallbacks() {
		if jsFunc, ok := cb.Fn.(js.Func); ok {
			jsFunc.Release()
		}
	}
}

// detachCallbacks removes the listeners of v from a DOM element that stays in
// the page, then releases them.
func detachCallbacks(el js.Value, v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.TakeEventCallbacks() {
		jsFunc, ok := cb.Fn.(js.Func)
		if !ok {
			continue
		}
		el.Call("removeEventListener", cb.Event, jsFunc)
		jsFunc.Release()
	}
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// Clear empties the mount element and releases the callbacks of the previous tree.
func Clear(selector string, prevVDOM *VNode) {
	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount, ok := querySelector(selector)
	if !ok {
		return
	}
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil {
		return
	}

	mount, ok := querySelector(selector)
	if !ok {
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func querySelector(selector string) (js.Value, bool) {
	if selector == "" {
		return js.Undefined(), false
	}

	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined(), false
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return js.Undefined(), false
	}
	return mount, true
}

// setAttributeValue sets an attribute on an element, handling boolean attributes and event handlers correctly.
func setAttributeValue(el js.Value, key string, value any) {
	switch v := value.(type) {
	case bool:
		if v {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
	case func(js.Value), func():
		// attached via addEventListener
	default:
		el.Call("setAttribute", key, v)
	}
}

// attachEventListeners attaches event attributes (onClick, onInput, ...) whose
// value is a func(js.Value). The js.Func is stored on the VNode for cleanup.
func attachEventListeners(el js.Value, vnode *VNode) {
	for key, value := range vnode.Attributes {
		if !isEventAttribute(key) {
			continue
		}
		handler, ok := value.(func(js.Value))
		if !ok {
			continue
		}

		// "onClick" -> "click"
		eventName := key[2:]
		if eventName[0] >= 'A' && eventName[0] <= 'Z' {
			eventName = string(eventName[0]+('a'-'A')) + eventName[1:]
		}

		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				handler(args[0])
			}
			return nil
		})
		el.Call("addEventListener", eventName, cb)
		vnode.AddEventCallback(eventName, cb)
	}

	if vnode.OnClick != nil {
		onClick := vnode.OnClick
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			onClick()
			return nil
		})
		el.Call("addEventListener", "click", cb)
		vnode.AddEventCallback("click", cb)
	}
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	if !supportedTags[n.Tag] {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n)

	switch n.Tag {
	case "input":
		if n.Content != "" {
			el.Set("value", n.Content)
		}
		return el
	case "img":
		return el
	}

	if n.Content != "" {
		el.Set("textContent", n.Content)
	}
	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}
	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount, ok := querySelector(mountSelector)
	if !ok {
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderTo(mount, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

// replaceElement swaps domElement for a freshly created element built from newVNode.
func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	parent := domElement.Get("parentNode")
	if parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	if oldVNode.ComponentKey != newVNode.ComponentKey || oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == TextTag {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	// Handlers are closures over the new render, so always rebind them.
	detachCallbacks(domElement, oldVNode)
	attachEventListeners(domElement, newVNode)

	if newVNode.Tag == "input" {
		// Leave the value alone while the user is typing.
		isFocused := domElement.Call("matches", ":focus")
		if !isFocused.Bool() && newVNode.Content != "" {
			if domElement.Get("value").String() != newVNode.Content {
				domElement.Set("value", newVNode.Content)
			}
		}
		return
	}

	// Setting textContent wipes out all child nodes.
	if len(newVNode.Children) == 0 && oldVNode.Content != newVNode.Content {
		domElement.Set("textContent", newVNode.Content)
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if isEventAttribute(key) {
			continue
		}
		if _, exists := newAttrs[key]; !exists {
			domElement.Call("removeAttribute", key)
		}
	}

	for key, value := range newAttrs {
		if isEventAttribute(key) {
			continue
		}
		if oldAttrs == nil || oldAttrs[key] != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		oldChild := oldChildren[i]
		newChild := newChildren[i]

		switch {
		case oldChild == nil && newChild != nil:
			newChildEl := createElement(newChild)
			if !newChildEl.Truthy() {
				continue
			}
			if i < domChildren.Length() {
				domElement.Call("insertBefore", newChildEl, domChildren.Call("item", i))
			} else {
				domElement.Call("appendChild", newChildEl)
			}
		case oldChild != nil && newChild == nil:
			deepReleaseCallbacks(oldChild)
			childElement := domChildren.Call("item", i)
			if childElement.Truthy() {
				domElement.Call("removeChild", childElement)
			}
		case oldChild != nil && newChild != nil:
			childElement := domChildren.Call("item", i)
			if childElement.Truthy() {
				patchElement(childElement, oldChild, newChild)
			}
		}
	}

	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])

		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
