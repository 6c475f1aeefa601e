//go:build js && wasm

package main

import (
	"github.com/vcrobe/storefront/console"
	"github.com/vcrobe/storefront/internal/app/components/pages"
	"github.com/vcrobe/storefront/runtime"
)

// mountSelector is the element the storefront renders into.
const mountSelector = "#app"

func main() {
	// Create the root component from the embedded catalog
	screen := pages.NewStorefrontScreen()

	// Create the renderer and mount the screen
	renderer := runtime.NewRenderer(mountSelector)
	renderer.SetCurrentComponent(screen)
	renderer.ReRender()

	console.Log("storefront mounted on", mountSelector)

	// Keep the Go program running
	select {}
}
