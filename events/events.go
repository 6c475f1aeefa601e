//go:build js && wasm

package events

import "syscall/js"

// AdaptNoArgEvent wraps a handler that takes no arguments so it can be
// attached as a DOM event listener. The event object is ignored.
func AdaptNoArgEvent(handler func()) func(js.Value) {
	return func(js.Value) {
		handler()
	}
}
