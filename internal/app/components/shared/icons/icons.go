// Package icons renders the storefront's line icons as styled spans; the
// glyphs themselves come from the stylesheet.
package icons

import "github.com/vcrobe/storefront/vdom"

const (
	Clock        = "clock"
	Heart        = "heart"
	MapPin       = "map-pin"
	Search       = "search"
	ShoppingCart = "shopping-cart"
	Star         = "star"
	Truck        = "truck"
)

// Icon returns a decorative icon node. class is appended to the base icon
// classes; attrs may carry extra attributes such as data-role.
func Icon(name, class string, attrs map[string]any) *vdom.VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	cls := "icon icon-" + name
	if class != "" {
		cls += " " + class
	}
	attrs["class"] = cls
	attrs["data-icon"] = name
	attrs["aria-hidden"] = "true"
	return vdom.Span("", attrs)
}
