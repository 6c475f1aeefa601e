package testcomponents

import (
	"github.com/vcrobe/storefront/runtime"
	"github.com/vcrobe/storefront/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It uses the same runtime.Tree as the browser renderer, so child instances
// are reused by key and keep their state across re-renders. Tests can:
// - Attach a root component to the renderer
// - Trigger re-renders via StateHasChanged() (e.g. through Click)
// - Inspect the resulting VDOM tree or its HTML serialization
type TestRenderer struct {
	tree        *runtime.Tree
	currentVDOM *vdom.VNode
	component   runtime.Component
	renderCount int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		tree:      runtime.NewTree(),
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs a full render cycle of the root component and returns the VDOM.
// This should be called at the start of a test to get the initial VDOM.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.tree.Begin()
	root := r.tree.Resolve(r, runtime.RootKey, r.component)
	r.currentVDOM = root.Render(r)
	r.tree.End()
	r.renderCount++
	return r.currentVDOM
}

// ReRender performs a re-render of the root component.
// This is called by StateHasChanged() when a component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.RenderRoot()
}

// RenderChild resolves the keyed child instance and renders it.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	instance := r.tree.Resolve(r, key, child)
	node := instance.Render(r)
	if node != nil {
		node.ComponentKey = key
	}
	return node
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// Tests use this to inspect the component's output after renders.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// RenderCount returns how many render cycles have run.
func (r *TestRenderer) RenderCount() int {
	return r.renderCount
}

// Instance returns the live component instance stored under key.
func (r *TestRenderer) Instance(key string) (runtime.Component, bool) {
	return r.tree.Instance(key)
}

// DuplicateKeys returns the keys claimed by more than one component in the
// last render cycle.
func (r *TestRenderer) DuplicateKeys() []string {
	return r.tree.DuplicateKeys()
}

// HTML returns the HTML serialization of the current VDOM tree.
func (r *TestRenderer) HTML() (string, error) {
	return vdom.HTMLString(r.currentVDOM)
}
