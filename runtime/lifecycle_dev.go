//go:build dev

package runtime

// DevMode enables development-only warnings.
const DevMode = true

// In dev mode, panics in lifecycle hooks propagate to aid debugging and fast failure.

func callOnMount(m Mounter, key string) {
	m.OnMount()
}

func callOnParametersSet(p ParameterReceiver, key string) {
	p.OnParametersSet()
}

func callOnUnmount(u Unmounter, key string) {
	u.OnUnmount()
}
