package services

import "github.com/vcrobe/storefront/internal/catalog"

// NoopSignIn ignores sign-in requests.
type NoopSignIn struct{}

func (NoopSignIn) SignIn() {}

// NoopCuisineFilter ignores cuisine selection. The restaurant list is never filtered.
type NoopCuisineFilter struct{}

func (NoopCuisineFilter) SelectCuisine(string) {}

// NoopCart ignores add-to-cart requests; there is no cart.
type NoopCart struct{}

func (NoopCart) AddDish(catalog.Dish) {}
