//go:build js && wasm

package runtime

import (
	"github.com/vcrobe/storefront/console"
	"github.com/vcrobe/storefront/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the browser implementation of the Renderer interface.
// It keeps the component instance tree and mounts the VDOM into the page.
type RendererImpl struct {
	tree             *Tree
	currentComponent Component // The root component
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
	rendering        bool
	pending          bool
}

// NewRenderer creates a renderer that mounts under the element matching mountID.
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{
		tree:    NewTree(),
		mountID: mountID,
	}
}

// SetCurrentComponent sets the root component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.currentComponent = comp
}

// RenderRoot runs a full render cycle: it renders the root, then creates the
// DOM on the first cycle or patches it on later ones.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		console.Warn("RenderRoot called without a root component")
		return
	}

	// A handler may call StateHasChanged while a cycle is running; fold it
	// into one more cycle instead of re-entering.
	if r.rendering {
		r.pending = true
		return
	}
	r.rendering = true
	defer func() { r.rendering = false }()

	for {
		r.pending = false
		r.renderOnce()
		if !r.pending {
			return
		}
	}
}

func (r *RendererImpl) renderOnce() {
	r.tree.Begin()
	root := r.tree.Resolve(r, RootKey, r.currentComponent)
	newVDOM := root.Render(r)
	r.tree.End()

	if r.prevVDOM == nil {
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}

	r.prevVDOM = newVDOM
}

// RenderChild is called by Render() code to render a child component.
// It handles instance creation and reuse through the instance tree.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	instance := r.tree.Resolve(r, key, childWithProps)
	node := instance.Render(r)
	if node != nil {
		node.ComponentKey = key
	}
	return node
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}
