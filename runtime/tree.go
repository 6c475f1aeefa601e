package runtime

import (
	"reflect"

	"github.com/vcrobe/storefront/console"
)

// RootKey is the key under which renderers track the root component.
const RootKey = "__root__"

// Tree tracks live component instances by key across render cycles.
// It holds no build tags so the browser renderer and the test renderer share
// the exact same instance reuse and lifecycle rules.
//
// A render cycle is bracketed by Begin and End; every component rendered in
// between goes through Resolve.
type Tree struct {
	instances  map[string]Component
	active     map[string]bool
	duplicates []string
}

// NewTree returns an empty instance tree.
func NewTree() *Tree {
	return &Tree{
		instances: make(map[string]Component),
		active:    make(map[string]bool),
	}
}

// Begin starts a render cycle.
func (t *Tree) Begin() {
	t.active = make(map[string]bool, len(t.instances))
	t.duplicates = nil
}

// Resolve returns the instance to render for key and runs its lifecycle hooks.
//
// The first time a key is seen, withProps itself becomes the stored instance
// and OnMount runs. Afterwards the stored instance is reused and receives the
// props of withProps through ApplyProps, so private state survives.
//
// Resolving the same key twice in one cycle means two siblings claim the same
// identity. The collision is logged and recorded, and withProps is rendered as
// a fresh, untracked instance so it cannot read or clobber the state of the
// instance that owns the key. The fresh instance is rebuilt on every cycle,
// so any state it sets (a toggled flag, for example) is lost on re-render.
func (t *Tree) Resolve(r Renderer, key string, withProps Component) Component {
	if t.active[key] {
		t.duplicates = append(t.duplicates, key)
		console.Error("duplicate component key in render cycle:", key)
		withProps.SetRenderer(r)
		if m, ok := withProps.(Mounter); ok {
			callOnMount(m, key)
		}
		if p, ok := withProps.(ParameterReceiver); ok {
			callOnParametersSet(p, key)
		}
		return withProps
	}
	t.active[key] = true

	instance, exists := t.instances[key]
	isFirstRender := false

	switch {
	case !exists:
		instance = withProps
		t.instances[key] = instance
		isFirstRender = true
	case reflect.TypeOf(instance) != reflect.TypeOf(withProps):
		// A different component now lives under this key.
		t.unmount(key, instance)
		instance = withProps
		t.instances[key] = instance
		isFirstRender = true
	case instance != withProps:
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(withProps)
		}
	}

	instance.SetRenderer(r)

	if isFirstRender {
		if m, ok := instance.(Mounter); ok {
			callOnMount(m, key)
		}
	}
	if p, ok := instance.(ParameterReceiver); ok {
		callOnParametersSet(p, key)
	}

	return instance
}

// End finishes a render cycle and unmounts every instance that was not
// resolved during it.
func (t *Tree) End() {
	for key, instance := range t.instances {
		if !t.active[key] {
			t.unmount(key, instance)
		}
	}
}

// DuplicateKeys returns the keys that were resolved more than once during the
// last render cycle, in the order the collisions happened.
func (t *Tree) DuplicateKeys() []string {
	if len(t.duplicates) == 0 {
		return nil
	}
	out := make([]string, len(t.duplicates))
	copy(out, t.duplicates)
	return out
}

// Instance returns the live instance stored under key.
func (t *Tree) Instance(key string) (Component, bool) {
	c, ok := t.instances[key]
	return c, ok
}

// Len returns the number of live instances.
func (t *Tree) Len() int {
	return len(t.instances)
}

func (t *Tree) unmount(key string, instance Component) {
	if u, ok := instance.(Unmounter); ok {
		callOnUnmount(u, key)
	}
	delete(t.instances, key)
}
