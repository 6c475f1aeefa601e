//go:build !wasm

package dishes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vcrobe/storefront/internal/catalog"
	"github.com/vcrobe/storefront/testcomponents"
	"github.com/vcrobe/storefront/vdom"
)

type recordingCart struct {
	added []catalog.Dish
}

func (c *recordingCart) AddDish(d catalog.Dish) { c.added = append(c.added, d) }

func roleText(t *testing.T, root *vdom.VNode, role string) string {
	t.Helper()
	n := testcomponents.FindFirst(root, testcomponents.ByRole(role))
	if n == nil {
		t.Fatalf("No node with role %q", role)
	}
	return n.TextContent()
}

func TestRecommendedDishesPanel_Render(t *testing.T) {
	// Arrange
	renderer := testcomponents.NewTestRenderer(&RecommendedDishesPanel{})

	// Act
	root := renderer.RenderRoot()

	// Assert
	cards := testcomponents.FindAll(root, testcomponents.ByRole("dish-card"))
	var names []string
	for _, card := range cards {
		names = append(names, roleText(t, card, "dish-name"))
	}
	want := []string{"Margherita Pizza", "Chicken Burger", "Sushi Combo"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("Dish names mismatch (-want +got):\n%s", diff)
	}

	first := cards[0]
	if got := roleText(t, first, "dish-restaurant"); got != "Pizza Palace" {
		t.Errorf("Expected restaurant 'Pizza Palace', got '%s'", got)
	}
	if got := roleText(t, first, "dish-price"); got != "$12.99" {
		t.Errorf("Expected price '$12.99', got '%s'", got)
	}
	if got := roleText(t, first, "add-to-cart"); got != "Add" {
		t.Errorf("Expected button text 'Add', got '%s'", got)
	}
	img := testcomponents.FindFirst(first, testcomponents.ByTag("img"))
	if got := img.AttrString("src"); got != "/api/placeholder/200/200?text=pizza" {
		t.Errorf("Unexpected image src '%s'", got)
	}
}

// TestRecommendedDishesPanel_AddForwardsDish verifies that each Add button
// hands its own dish to the cart and changes nothing on screen.
func TestRecommendedDishesPanel_AddForwardsDish(t *testing.T) {
	// Arrange
	cart := &recordingCart{}
	renderer := testcomponents.NewTestRenderer(&RecommendedDishesPanel{Cart: cart})
	root := renderer.RenderRoot()
	before, _ := renderer.HTML()

	// Act
	buttons := testcomponents.FindAll(root, testcomponents.ByRole("add-to-cart"))
	testcomponents.Click(buttons[2])

	// Assert
	want := []catalog.Dish{{Name: "Sushi Combo", RestaurantName: "Sushi Spot", Price: "$18.99", ImageToken: "sushi"}}
	if diff := cmp.Diff(want, cart.added); diff != "" {
		t.Errorf("Added dishes mismatch (-want +got):\n%s", diff)
	}
	if renderer.RenderCount() != 1 {
		t.Errorf("Expected no re-render, got %d renders", renderer.RenderCount())
	}
	if after, _ := renderer.HTML(); after != before {
		t.Errorf("Expected the panel to be unchanged")
	}
}

func TestRecommendedDishesPanel_EmptyCatalog(t *testing.T) {
	cat, err := catalog.New("", nil, nil, nil)
	if err != nil {
		t.Fatalf("catalog.New returned error: %v", err)
	}
	renderer := testcomponents.NewTestRenderer(&RecommendedDishesPanel{Catalog: cat})

	root := renderer.RenderRoot()

	if got := len(testcomponents.FindAll(root, testcomponents.ByRole("dish-card"))); got != 0 {
		t.Errorf("Expected no dish cards, got %d", got)
	}
	if testcomponents.FindFirst(root, testcomponents.ByRole("dish-grid")) == nil {
		t.Errorf("Expected the grid to render even when empty")
	}
}

func TestRecommendedDishesPanel_CatalogChangeReloads(t *testing.T) {
	// Arrange
	empty, _ := catalog.New("", nil, nil, nil)
	panel := &RecommendedDishesPanel{Catalog: empty}
	renderer := testcomponents.NewTestRenderer(panel)
	renderer.RenderRoot()

	// Act
	panel.ApplyProps(&RecommendedDishesPanel{})
	renderer.ReRender()

	// Assert
	if got := len(testcomponents.FindAll(renderer.GetCurrentVDOM(), testcomponents.ByRole("dish-card"))); got != 3 {
		t.Errorf("Expected the embedded 3 dishes after the catalog was cleared, got %d", got)
	}
}
