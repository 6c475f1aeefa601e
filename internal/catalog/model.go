package catalog

// Restaurant is the summary of one restaurant shown on the storefront.
type Restaurant struct {
	Name                string  `yaml:"name"`
	Cuisine             string  `yaml:"cuisine"` // comma-joined cuisine labels
	Rating              float64 `yaml:"rating"`  // 0.0 to 5.0
	DeliveryTimeMinutes int     `yaml:"deliveryTimeMinutes"`
}

// Dish is a recommended dish.
// RestaurantName is a display label only; nothing resolves it to a Restaurant.
type Dish struct {
	Name           string `yaml:"name"`
	RestaurantName string `yaml:"restaurantName"`
	Price          string `yaml:"price"` // already formatted, e.g. "$12.99"
	ImageToken     string `yaml:"imageToken"`
}

const (
	MinRating = 0.0
	MaxRating = 5.0
)
