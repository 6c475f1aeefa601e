package cuisinebar

import (
	"github.com/vcrobe/storefront/events"
	"github.com/vcrobe/storefront/internal/app/components/shared/icons"
	"github.com/vcrobe/storefront/internal/catalog"
	"github.com/vcrobe/storefront/internal/services"
	"github.com/vcrobe/storefront/runtime"
	"github.com/vcrobe/storefront/vdom"
)

// SearchPlaceholder is the hint shown in the empty search field.
const SearchPlaceholder = "Search for restaurants or cuisines"

// CuisineSearchBar shows a search field and one chip per cuisine.
//
// The search field is uncontrolled: typed text is not captured anywhere.
// Chip clicks are forwarded to Filter and change nothing on screen; the
// restaurant list is not filtered.
type CuisineSearchBar struct {
	runtime.ComponentBase

	// Filter receives chip clicks; nil means the click does nothing.
	Filter services.CuisineFilter
	// Catalog supplies the chip labels; nil means the embedded catalog.
	Catalog *catalog.Catalog

	cuisines   []string
	loadedFrom *catalog.Catalog
}

// OnParametersSet reads the chip labels whenever the Catalog prop changes.
func (b *CuisineSearchBar) OnParametersSet() {
	cat := catalog.OrDefault(b.Catalog)
	if cat == b.loadedFrom {
		return
	}
	b.loadedFrom = cat
	b.cuisines = cat.Cuisines()
}

func (b *CuisineSearchBar) ApplyProps(next runtime.Component) {
	if n, ok := next.(*CuisineSearchBar); ok {
		b.Filter = n.Filter
		b.Catalog = n.Catalog
	}
}

// SelectCuisine is bound to each cuisine chip.
func (b *CuisineSearchBar) SelectCuisine(label string) {
	if b.Filter != nil {
		b.Filter.SelectCuisine(label)
	}
}

func (b *CuisineSearchBar) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "bg-white rounded-lg shadow-md p-4 mb-6", "data-role": "cuisine-search-bar"},
		vdom.Div(map[string]any{"class": "flex items-center bg-gray-100 rounded-full px-4 py-2"},
			icons.Icon(icons.Search, "text-gray-500 mr-3", nil),
			vdom.InputText(map[string]any{
				"placeholder": SearchPlaceholder,
				"class":       "w-full bg-transparent focus:outline-none",
				"data-role":   "search-input",
			}),
		),
		vdom.Div(map[string]any{"class": "flex justify-between mt-4 overflow-x-auto", "data-role": "cuisine-chips"},
			b.chips()...,
		),
	)
}

func (b *CuisineSearchBar) chips() []*vdom.VNode {
	nodes := make([]*vdom.VNode, 0, len(b.cuisines))
	for _, label := range b.cuisines {
		nodes = append(nodes, vdom.Button("", map[string]any{
			"class":        "bg-gray-100 px-4 py-2 rounded-full text-sm hover:bg-gray-200 transition whitespace-nowrap mr-2",
			"data-role":    "cuisine-chip",
			"data-cuisine": label,
			"onClick":      events.AdaptNoArgEvent(func() { b.SelectCuisine(label) }),
		}, vdom.Text(label)))
	}
	return nodes
}
