package pages

import (
	"github.com/vcrobe/storefront/console"
	"github.com/vcrobe/storefront/internal/app/components/shared/cuisinebar"
	"github.com/vcrobe/storefront/internal/app/components/shared/dishes"
	"github.com/vcrobe/storefront/internal/app/components/shared/locationheader"
	"github.com/vcrobe/storefront/internal/app/components/shared/restaurantcard"
	"github.com/vcrobe/storefront/internal/catalog"
	"github.com/vcrobe/storefront/internal/services"
	"github.com/vcrobe/storefront/runtime"
	"github.com/vcrobe/storefront/vdom"
)

// StorefrontScreen is the root of the storefront: header, cuisine bar,
// restaurant grid and recommended dishes.
//
// It owns the restaurant list, read once from the catalog at construction and
// never reloaded. Cards receive the restaurant fields as props and report
// nothing back.
type StorefrontScreen struct {
	runtime.ComponentBase

	catalog     *catalog.Catalog
	restaurants []catalog.Restaurant
	services    services.Set
}

// NewStorefrontScreen builds the screen from the embedded catalog with the
// default (no-op) services.
func NewStorefrontScreen() *StorefrontScreen {
	return NewStorefrontScreenFrom(catalog.Default(), services.Set{})
}

// NewStorefrontScreenFrom builds the screen from the given catalog and services.
// A nil catalog or nil services fall back to their defaults.
func NewStorefrontScreenFrom(cat *catalog.Catalog, svc services.Set) *StorefrontScreen {
	cat = catalog.OrDefault(cat)
	return &StorefrontScreen{
		catalog:     cat,
		restaurants: cat.Restaurants(),
		services:    svc.WithDefaults(),
	}
}

// RestaurantCardKey is the render key of the card for the named restaurant.
func RestaurantCardKey(name string) string {
	return "RestaurantCard_" + name
}

func (s *StorefrontScreen) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "bg-gray-100 min-h-screen", "data-role": "storefront"},
		r.RenderChild("LocationHeader_0", &locationheader.LocationHeader{SignIn: s.services.SignIn, Catalog: s.catalog}),
		vdom.Div(map[string]any{"class": "container mx-auto px-4 py-6"},
			r.RenderChild("CuisineSearchBar_0", &cuisinebar.CuisineSearchBar{Filter: s.services.Filter, Catalog: s.catalog}),
			vdom.Heading(2, "Popular Restaurants", map[string]any{"class": "text-2xl font-bold mb-4"}),
			vdom.Div(map[string]any{"class": "grid md:grid-cols-3 gap-6", "data-role": "restaurant-grid"},
				s.restaurantCards(r)...,
			),
			r.RenderChild("RecommendedDishesPanel_0", &dishes.RecommendedDishesPanel{Cart: s.services.Cart, Images: s.services.Images, Catalog: s.catalog}),
		),
	)
}

func (s *StorefrontScreen) restaurantCards(r runtime.Renderer) []*vdom.VNode {
	if runtime.DevMode && len(s.restaurants) == 0 {
		console.Warn("[StorefrontScreen] Rendering empty restaurant list.")
	}

	nodes := make([]*vdom.VNode, 0, len(s.restaurants))
	for _, restaurant := range s.restaurants {
		card := r.RenderChild(RestaurantCardKey(restaurant.Name), &restaurantcard.RestaurantCard{
			Name:                restaurant.Name,
			Cuisine:             restaurant.Cuisine,
			Rating:              restaurant.Rating,
			DeliveryTimeMinutes: restaurant.DeliveryTimeMinutes,
			Images:              s.services.Images,
		})
		if card != nil {
			nodes = append(nodes, card)
		}
	}
	return nodes
}
