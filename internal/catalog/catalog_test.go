//go:build !wasm

package catalog

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	c := Default()

	if got := c.Location(); got != "Current Location" {
		t.Errorf("Expected location 'Current Location', got '%s'", got)
	}

	wantCuisines := []string{"Pizza", "Burger", "Sushi", "Salad", "Indian"}
	if diff := cmp.Diff(wantCuisines, c.Cuisines()); diff != "" {
		t.Errorf("Cuisines mismatch (-want +got):\n%s", diff)
	}

	wantRestaurants := []Restaurant{
		{Name: "Pizza Palace", Cuisine: "Italian, Pizza", Rating: 4.5, DeliveryTimeMinutes: 30},
		{Name: "Burger Barn", Cuisine: "American, Burgers", Rating: 4.2, DeliveryTimeMinutes: 25},
		{Name: "Sushi Spot", Cuisine: "Japanese, Sushi", Rating: 4.7, DeliveryTimeMinutes: 35},
	}
	if diff := cmp.Diff(wantRestaurants, c.Restaurants()); diff != "" {
		t.Errorf("Restaurants mismatch (-want +got):\n%s", diff)
	}

	wantDishes := []Dish{
		{Name: "Margherita Pizza", RestaurantName: "Pizza Palace", Price: "$12.99", ImageToken: "pizza"},
		{Name: "Chicken Burger", RestaurantName: "Burger Barn", Price: "$9.99", ImageToken: "burger"},
		{Name: "Sushi Combo", RestaurantName: "Sushi Spot", Price: "$18.99", ImageToken: "sushi"},
	}
	if diff := cmp.Diff(wantDishes, c.Dishes()); diff != "" {
		t.Errorf("Dishes mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_ReturnsSameCatalog(t *testing.T) {
	if Default() != Default() {
		t.Errorf("Expected Default to return the same catalog on every call")
	}
}

func TestOrDefault(t *testing.T) {
	custom, err := New("Home", nil, nil, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if OrDefault(custom) != custom {
		t.Errorf("Expected OrDefault to keep a non-nil catalog")
	}
	if OrDefault(nil) != Default() {
		t.Errorf("Expected OrDefault(nil) to return the embedded catalog")
	}
}

func TestNew_Validation(t *testing.T) {
	pizza := Restaurant{Name: "Pizza Palace", Cuisine: "Italian, Pizza", Rating: 4.5, DeliveryTimeMinutes: 30}

	tests := []struct {
		name        string
		cuisines    []string
		restaurants []Restaurant
		dishes      []Dish
		wantErr     error
	}{
		{
			name:        "duplicate restaurant",
			restaurants: []Restaurant{pizza, pizza},
			wantErr:     ErrDuplicateName,
		},
		{
			name:     "duplicate cuisine",
			cuisines: []string{"Pizza", "Sushi", "Pizza"},
			wantErr:  ErrDuplicateName,
		},
		{
			name:    "duplicate dish",
			dishes:  []Dish{{Name: "Sushi Combo"}, {Name: "Sushi Combo"}},
			wantErr: ErrDuplicateName,
		},
		{
			name:        "empty restaurant name",
			restaurants: []Restaurant{{Cuisine: "Thai", Rating: 4}},
			wantErr:     ErrEmptyName,
		},
		{
			name:     "empty cuisine label",
			cuisines: []string{""},
			wantErr:  ErrEmptyName,
		},
		{
			name:        "rating above range",
			restaurants: []Restaurant{{Name: "Too Good", Rating: 5.1}},
			wantErr:     ErrRatingOutOfRange,
		},
		{
			name:        "negative rating",
			restaurants: []Restaurant{{Name: "Too Bad", Rating: -0.5}},
			wantErr:     ErrRatingOutOfRange,
		},
		{
			name:        "NaN rating",
			restaurants: []Restaurant{{Name: "Unknown", Rating: math.NaN()}},
			wantErr:     ErrRatingOutOfRange,
		},
		{
			name:        "negative delivery time",
			restaurants: []Restaurant{{Name: "Time Machine", Rating: 3, DeliveryTimeMinutes: -1}},
			wantErr:     ErrNegativeDeliveryTime,
		},
		{
			name:        "boundary values are valid",
			restaurants: []Restaurant{{Name: "Zero", Rating: MinRating}, {Name: "Five", Rating: MaxRating}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("Here", tc.cuisines, tc.restaurants, tc.dishes)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected error wrapping %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNew_DuplicateErrorNamesBothPositions(t *testing.T) {
	_, err := New("", nil, []Restaurant{{Name: "A"}, {Name: "B"}, {Name: "A"}}, nil)
	if err == nil {
		t.Fatal("Expected an error")
	}
	if msg := err.Error(); !strings.Contains(msg, `restaurant 2 ("A") repeats restaurant 0`) {
		t.Errorf("Unexpected error message: %s", msg)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
location: Office
cuisines: [Thai]
restaurants:
  - name: Thai Corner
    cuisine: Thai
    rating: 3.9
    deliveryTimeMinutes: 40
dishes:
  - name: Pad Thai
    restaurantName: Thai Corner
    price: $11.50
    imageToken: padthai
`)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if c.Location() != "Office" {
		t.Errorf("Expected location 'Office', got '%s'", c.Location())
	}
	want := []Restaurant{{Name: "Thai Corner", Cuisine: "Thai", Rating: 3.9, DeliveryTimeMinutes: 40}}
	if diff := cmp.Diff(want, c.Restaurants()); diff != "" {
		t.Errorf("Restaurants mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	data := []byte(`
location: Office
restaurants:
  - name: Thai Corner
    stars: 5
`)

	_, err := Parse(data)
	if err == nil {
		t.Fatal("Expected an error for an unknown field")
	}
	if !strings.HasPrefix(err.Error(), "catalog: decode:") {
		t.Errorf("Expected a decode error, got %v", err)
	}
}

func TestParse_RejectsNaNRating(t *testing.T) {
	data := []byte(`
restaurants:
  - name: Unknown
    rating: .nan
`)

	if _, err := Parse(data); !errors.Is(err, ErrRatingOutOfRange) {
		t.Errorf("Expected ErrRatingOutOfRange, got %v", err)
	}
}

func TestParse_ValidatesDocument(t *testing.T) {
	data := []byte(`
restaurants:
  - name: Same
  - name: Same
`)

	if _, err := Parse(data); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
}

// TestAccessors_ReturnCopies verifies that callers cannot change the catalog
// through the slices it hands out.
func TestAccessors_ReturnCopies(t *testing.T) {
	c, err := New("Here", []string{"Pizza"}, []Restaurant{{Name: "A", Rating: 1}}, []Dish{{Name: "D"}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	c.Cuisines()[0] = "changed"
	c.Restaurants()[0].Name = "changed"
	c.Dishes()[0].Name = "changed"

	if c.Cuisines()[0] != "Pizza" {
		t.Errorf("Cuisines were mutated through an accessor")
	}
	if c.Restaurants()[0].Name != "A" {
		t.Errorf("Restaurants were mutated through an accessor")
	}
	if c.Dishes()[0].Name != "D" {
		t.Errorf("Dishes were mutated through an accessor")
	}
}

func TestNew_CopiesInput(t *testing.T) {
	restaurants := []Restaurant{{Name: "A", Rating: 1}}
	c, err := New("Here", nil, restaurants, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	restaurants[0].Name = "changed"

	if c.Restaurants()[0].Name != "A" {
		t.Errorf("Catalog shares the caller's slice")
	}
}
