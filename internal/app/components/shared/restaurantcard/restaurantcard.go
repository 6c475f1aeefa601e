package restaurantcard

import (
	"strconv"

	"github.com/vcrobe/storefront/events"
	"github.com/vcrobe/storefront/internal/app/components/shared/icons"
	"github.com/vcrobe/storefront/internal/services"
	"github.com/vcrobe/storefront/runtime"
	"github.com/vcrobe/storefront/vdom"
)

// FreeDeliveryLabel is shown on every card; it is not derived from any data.
const FreeDeliveryLabel = "Free Delivery"

// RestaurantCard shows the summary of one restaurant and lets the viewer
// mark it as a favorite.
//
// The favorite flag belongs to the card instance alone: it starts false, is
// flipped by ToggleFavorite and dies with the instance. It is never reported
// to the parent or shared with other cards.
type RestaurantCard struct {
	runtime.ComponentBase

	// --- PROPS ---
	Name                string
	Cuisine             string
	Rating              float64
	DeliveryTimeMinutes int

	// Images resolves the card image; nil means placeholder images.
	Images services.ImageResolver

	// --- INTERNAL STATE ---
	favorite bool
}

// ToggleFavorite is bound to the heart button's click event.
func (c *RestaurantCard) ToggleFavorite() {
	c.favorite = !c.favorite
	c.StateHasChanged()
}

// ApplyProps takes the props of a freshly built card and keeps the favorite flag.
func (c *RestaurantCard) ApplyProps(next runtime.Component) {
	n, ok := next.(*RestaurantCard)
	if !ok {
		return
	}
	c.Name = n.Name
	c.Cuisine = n.Cuisine
	c.Rating = n.Rating
	c.DeliveryTimeMinutes = n.DeliveryTimeMinutes
	c.Images = n.Images
}

func (c *RestaurantCard) images() services.ImageResolver {
	if c.Images == nil {
		return services.PlaceholderImages{}
	}
	return c.Images
}

// Render builds the card. Missing props render as their zero value.
func (c *RestaurantCard) Render(r runtime.Renderer) *vdom.VNode {
	icon := FavoriteIcon(c.favorite)

	return vdom.Div(map[string]any{"class": "bg-white rounded-lg shadow-md overflow-hidden", "data-role": "restaurant-card", "data-restaurant": c.Name},
		vdom.Div(map[string]any{"class": "relative"},
			vdom.Img(c.images().Resolve(c.Name, 400, 250), c.Name, map[string]any{"class": "w-full h-48 object-cover"}),
			vdom.Button("", map[string]any{
				"class":        "absolute top-3 right-3 bg-white/70 rounded-full p-2",
				"data-role":    "favorite-toggle",
				"aria-label":   "Toggle favorite",
				"aria-pressed": strconv.FormatBool(c.favorite),
				"onClick":      events.AdaptNoArgEvent(c.ToggleFavorite),
			},
				icons.Icon(icons.Heart, icon.Class, map[string]any{"data-role": "favorite-icon", "data-filled": strconv.FormatBool(icon.Filled)}),
			),
		),
		vdom.Div(map[string]any{"class": "p-4"},
			vdom.Div(map[string]any{"class": "flex justify-between items-center"},
				vdom.Heading(3, c.Name, map[string]any{"class": "text-xl font-bold", "data-role": "restaurant-name"}),
				vdom.Div(map[string]any{"class": "flex items-center text-yellow-500"},
					icons.Icon(icons.Star, "mr-1", nil),
					vdom.Span(FormatRating(c.Rating), map[string]any{"data-role": "restaurant-rating"}),
				),
			),
			vdom.Paragraph(c.Cuisine, map[string]any{"class": "text-gray-500 mt-1", "data-role": "restaurant-cuisine"}),
			vdom.Div(map[string]any{"class": "flex items-center text-gray-600 mt-2 space-x-3"},
				vdom.Div(map[string]any{"class": "flex items-center"},
					icons.Icon(icons.Clock, "mr-1", nil),
					vdom.Span(FormatDeliveryTime(c.DeliveryTimeMinutes), map[string]any{"data-role": "delivery-time"}),
				),
				vdom.Div(map[string]any{"class": "flex items-center"},
					icons.Icon(icons.Truck, "mr-1", nil),
					vdom.Span(FreeDeliveryLabel, map[string]any{"data-role": "delivery-label"}),
				),
			),
		),
	)
}
