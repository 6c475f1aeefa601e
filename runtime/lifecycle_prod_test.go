//go:build !wasm && !dev

package runtime

import (
	"testing"

	"github.com/vcrobe/storefront/vdom"
)

type faulty struct {
	ComponentBase
}

func (f *faulty) Render(Renderer) *vdom.VNode { return nil }
func (f *faulty) OnMount()                   { panic("mount failed") }
func (f *faulty) OnUnmount()                 { panic("unmount failed") }

// TestTree_RecoversHookPanics verifies that production builds log lifecycle
// panics instead of crashing the render cycle.
func TestTree_RecoversHookPanics(t *testing.T) {
	tree := NewTree()
	r := &stubRenderer{}
	f := &faulty{}

	var got Component
	cycle(tree, func() { got = tree.Resolve(r, "F", f) })
	if got != f {
		t.Fatalf("Expected the instance to be stored despite the panic")
	}

	cycle(tree, func() {})
	if tree.Len() != 0 {
		t.Errorf("Expected the instance to be removed, got %d live", tree.Len())
	}
}

func TestDevModeOff(t *testing.T) {
	if DevMode {
		t.Errorf("Expected DevMode to be false without the dev tag")
	}
}
