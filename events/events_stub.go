//go:build !(js && wasm)

package events

// Stub file for non-WASM builds so components compile and can be tested natively.
// The actual implementation is in events.go with js/wasm build tags.

// AdaptNoArgEvent returns the handler unchanged. vdom.NewVNode picks it up
// as the node's OnClick, which is what the test renderer invokes.
func AdaptNoArgEvent(handler func()) func() {
	return handler
}
