//go:build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/storefront/console"
)

// DevMode enables development-only warnings.
const DevMode = false

// In production mode, panics in lifecycle hooks are recovered and logged so a
// faulty component cannot take the whole screen down.

func callOnMount(m Mounter, key string) {
	defer recoverHook("OnMount", key)
	m.OnMount()
}

func callOnParametersSet(p ParameterReceiver, key string) {
	defer recoverHook("OnParametersSet", key)
	p.OnParametersSet()
}

func callOnUnmount(u Unmounter, key string) {
	defer recoverHook("OnUnmount", key)
	u.OnUnmount()
}

func recoverHook(hook, key string) {
	if rec := recover(); rec != nil {
		console.Error(fmt.Sprintf("%s panic in component %s: %v", hook, key, rec))
	}
}
