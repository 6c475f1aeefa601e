package dishes

import (
	"github.com/vcrobe/storefront/console"
	"github.com/vcrobe/storefront/events"
	"github.com/vcrobe/storefront/internal/app/components/shared/icons"
	"github.com/vcrobe/storefront/internal/catalog"
	"github.com/vcrobe/storefront/internal/services"
	"github.com/vcrobe/storefront/runtime"
	"github.com/vcrobe/storefront/vdom"
)

// RecommendedDishesPanel lists the recommended dishes, each with an "Add"
// button. There is no cart: Add is forwarded to Cart and nothing else happens.
type RecommendedDishesPanel struct {
	runtime.ComponentBase

	// Cart receives "Add" clicks; nil means the click does nothing.
	Cart services.CartHandler
	// Images resolves dish images; nil means placeholder images.
	Images services.ImageResolver
	// Catalog supplies the dishes; nil means the embedded catalog.
	Catalog *catalog.Catalog

	dishes     []catalog.Dish
	loadedFrom *catalog.Catalog
}

// OnParametersSet reads the dishes whenever the Catalog prop changes.
func (p *RecommendedDishesPanel) OnParametersSet() {
	cat := catalog.OrDefault(p.Catalog)
	if cat == p.loadedFrom {
		return
	}
	p.loadedFrom = cat
	p.dishes = cat.Dishes()
	if runtime.DevMode && len(p.dishes) == 0 {
		console.Warn("[RecommendedDishesPanel] Rendering empty dish list.")
	}
}

func (p *RecommendedDishesPanel) ApplyProps(next runtime.Component) {
	if n, ok := next.(*RecommendedDishesPanel); ok {
		p.Cart = n.Cart
		p.Images = n.Images
		p.Catalog = n.Catalog
	}
}

// AddDish is bound to each dish's Add button.
func (p *RecommendedDishesPanel) AddDish(dish catalog.Dish) {
	if p.Cart != nil {
		p.Cart.AddDish(dish)
	}
}

func (p *RecommendedDishesPanel) images() services.ImageResolver {
	if p.Images == nil {
		return services.PlaceholderImages{}
	}
	return p.Images
}

func (p *RecommendedDishesPanel) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "mt-6", "data-role": "recommended-dishes"},
		vdom.Heading(2, "Recommended Dishes", map[string]any{"class": "text-2xl font-bold mb-4"}),
		vdom.Div(map[string]any{"class": "grid md:grid-cols-3 gap-4", "data-role": "dish-grid"},
			p.dishCards()...,
		),
	)
}

func (p *RecommendedDishesPanel) dishCards() []*vdom.VNode {
	nodes := make([]*vdom.VNode, 0, len(p.dishes))
	for _, dish := range p.dishes {
		nodes = append(nodes, vdom.Div(map[string]any{"class": "bg-white rounded-lg shadow-md p-3 text-center", "data-role": "dish-card", "data-dish": dish.Name},
			vdom.Img(p.images().Resolve(dish.ImageToken, 200, 200), dish.Name, map[string]any{"class": "w-full h-40 object-cover rounded-lg mb-3"}),
			vdom.Heading(4, dish.Name, map[string]any{"class": "font-bold", "data-role": "dish-name"}),
			vdom.Paragraph(dish.RestaurantName, map[string]any{"class": "text-gray-500 text-sm", "data-role": "dish-restaurant"}),
			vdom.Div(map[string]any{"class": "flex justify-between items-center mt-2"},
				vdom.Span(dish.Price, map[string]any{"class": "font-bold", "data-role": "dish-price"}),
				vdom.Button("", map[string]any{
					"class":     "bg-green-500 text-white px-3 py-1 rounded-full",
					"data-role": "add-to-cart",
					"onClick":   events.AdaptNoArgEvent(func() { p.AddDish(dish) }),
				},
					vdom.Text("Add"),
					icons.Icon(icons.ShoppingCart, "inline ml-2", nil),
				),
			),
		))
	}
	return nodes
}
