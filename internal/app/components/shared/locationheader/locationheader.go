package locationheader

import (
	"github.com/vcrobe/storefront/events"
	"github.com/vcrobe/storefront/internal/app/components/shared/icons"
	"github.com/vcrobe/storefront/internal/catalog"
	"github.com/vcrobe/storefront/internal/services"
	"github.com/vcrobe/storefront/runtime"
	"github.com/vcrobe/storefront/vdom"
)

// LocationHeader is the top bar: delivery location, cart indicator and the
// sign-in button. It has no state.
type LocationHeader struct {
	runtime.ComponentBase

	// SignIn receives "Sign In" clicks; nil means the click does nothing.
	SignIn services.SignInHandler
	// Catalog supplies the location label; nil means the embedded catalog.
	Catalog *catalog.Catalog

	location   string
	loadedFrom *catalog.Catalog
}

// OnParametersSet reads the location whenever the Catalog prop changes.
func (h *LocationHeader) OnParametersSet() {
	cat := catalog.OrDefault(h.Catalog)
	if cat == h.loadedFrom {
		return
	}
	h.loadedFrom = cat
	h.location = cat.Location()
}

func (h *LocationHeader) ApplyProps(next runtime.Component) {
	if n, ok := next.(*LocationHeader); ok {
		h.SignIn = n.SignIn
		h.Catalog = n.Catalog
	}
}

// HandleSignIn is bound to the sign-in button.
func (h *LocationHeader) HandleSignIn() {
	if h.SignIn != nil {
		h.SignIn.SignIn()
	}
}

func (h *LocationHeader) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.NewVNode("header", map[string]any{"class": "bg-white shadow-md py-4 px-6 flex justify-between items-center", "data-role": "location-header"}, []*vdom.VNode{
		vdom.Div(map[string]any{"class": "flex items-center"},
			icons.Icon(icons.MapPin, "text-green-500 mr-2", nil),
			vdom.Span("Deliver to: "+h.location, map[string]any{"data-role": "delivery-location"}),
		),
		vdom.Div(map[string]any{"class": "flex items-center space-x-4"},
			icons.Icon(icons.ShoppingCart, "", map[string]any{"data-role": "cart-indicator"}),
			vdom.Button("", map[string]any{
				"class":     "bg-green-500 text-white px-4 py-2 rounded-full",
				"data-role": "sign-in",
				"onClick":   events.AdaptNoArgEvent(h.HandleSignIn),
			}, vdom.Text("Sign In")),
		),
	}, "")
}
