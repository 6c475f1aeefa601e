// Package catalog holds the static storefront dataset: the delivery location
// label, the cuisine filter labels, the restaurants and the recommended dishes.
//
// A Catalog is validated when it is built and is read-only afterwards. Every
// accessor returns a copy.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyName            = errors.New("catalog: empty name")
	ErrDuplicateName        = errors.New("catalog: duplicate name")
	ErrRatingOutOfRange     = errors.New("catalog: rating out of range")
	ErrNegativeDeliveryTime = errors.New("catalog: negative delivery time")
)

//go:embed storefront.yaml
var storefrontYAML []byte

// Catalog is an immutable storefront dataset.
type Catalog struct {
	location    string
	cuisines    []string
	restaurants []Restaurant
	dishes      []Dish
}

// document is the YAML shape of a catalog.
type document struct {
	Location    string       `yaml:"location"`
	Cuisines    []string     `yaml:"cuisines"`
	Restaurants []Restaurant `yaml:"restaurants"`
	Dishes      []Dish       `yaml:"dishes"`
}

// New validates the given data and returns a Catalog holding copies of it.
func New(location string, cuisines []string, restaurants []Restaurant, dishes []Dish) (*Catalog, error) {
	if err := validateCuisines(cuisines); err != nil {
		return nil, err
	}
	if err := validateRestaurants(restaurants); err != nil {
		return nil, err
	}
	if err := validateDishes(dishes); err != nil {
		return nil, err
	}

	return &Catalog{
		location:    location,
		cuisines:    clone(cuisines),
		restaurants: clone(restaurants),
		dishes:      clone(dishes),
	}, nil
}

// Parse decodes a YAML catalog document. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return New(doc.Location, doc.Cuisines, doc.Restaurants, doc.Dishes)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog embedded in the binary.
// It panics if the embedded document is invalid, which is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(storefrontYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded storefront catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// OrDefault returns c, or the embedded catalog when c is nil.
func OrDefault(c *Catalog) *Catalog {
	if c == nil {
		return Default()
	}
	return c
}

// Location returns the delivery location label.
func (c *Catalog) Location() string {
	return c.location
}

// Cuisines returns the cuisine filter labels in display order.
func (c *Catalog) Cuisines() []string {
	return clone(c.cuisines)
}

// Restaurants returns the restaurants in display order.
func (c *Catalog) Restaurants() []Restaurant {
	return clone(c.restaurants)
}

// Dishes returns the recommended dishes in display order.
func (c *Catalog) Dishes() []Dish {
	return clone(c.dishes)
}

func validateCuisines(cuisines []string) error {
	seen := make(map[string]int, len(cuisines))
	for i, label := range cuisines {
		if err := checkName("cuisine", i, label, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateRestaurants(restaurants []Restaurant) error {
	seen := make(map[string]int, len(restaurants))
	for i, r := range restaurants {
		if err := checkName("restaurant", i, r.Name, seen); err != nil {
			return err
		}
		// Written so that NaN fails the check.
		if !(r.Rating >= MinRating && r.Rating <= MaxRating) {
			return fmt.Errorf("restaurant %d (%q): %w: %v", i, r.Name, ErrRatingOutOfRange, r.Rating)
		}
		if r.DeliveryTimeMinutes < 0 {
			return fmt.Errorf("restaurant %d (%q): %w: %d", i, r.Name, ErrNegativeDeliveryTime, r.DeliveryTimeMinutes)
		}
	}
	return nil
}

func validateDishes(dishes []Dish) error {
	seen := make(map[string]int, len(dishes))
	for i, d := range dishes {
		if err := checkName("dish", i, d.Name, seen); err != nil {
			return err
		}
	}
	return nil
}

// checkName enforces that sibling names are present and unique; they are
// used as rendering keys.
func checkName(kind string, i int, name string, seen map[string]int) error {
	if name == "" {
		return fmt.Errorf("%s %d: %w", kind, i, ErrEmptyName)
	}
	if first, ok := seen[name]; ok {
		return fmt.Errorf("%s %d (%q) repeats %s %d: %w", kind, i, name, kind, first, ErrDuplicateName)
	}
	seen[name] = i
	return nil
}

func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
