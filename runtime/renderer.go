package runtime

import "github.com/vcrobe/storefront/vdom"

// Renderer defines the minimal set of runtime operations used by Render() code.
// This interface has NO build tags, so the browser renderer and the in-memory
// test renderer are interchangeable.
type Renderer interface {
	// RenderChild renders a child component.
	// The key uniquely identifies the component instance among everything rendered
	// in the same cycle; the instance stored under it keeps its state across renders.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()
}
