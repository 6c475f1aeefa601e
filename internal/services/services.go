// Package services declares the collaborators the storefront screen calls
// into but does not implement: sign-in, cart, cuisine filtering and image
// delivery. The defaults do nothing (or, for images, point at a placeholder
// endpoint) so real behavior can be wired in without touching the
// component tree.
package services

import "github.com/vcrobe/storefront/internal/catalog"

// SignInHandler is invoked by the header's "Sign In" button.
type SignInHandler interface {
	SignIn()
}

// CuisineFilter is invoked when a cuisine chip is clicked.
type CuisineFilter interface {
	SelectCuisine(label string)
}

// CartHandler is invoked by a recommended dish's "Add" button.
type CartHandler interface {
	AddDish(dish catalog.Dish)
}

// ImageResolver turns an opaque image token into a URL for an image of the
// requested size.
type ImageResolver interface {
	Resolve(token string, width, height int) string
}

// Set groups the capabilities handed down the component tree.
// Nil fields are replaced by the defaults in WithDefaults.
type Set struct {
	SignIn SignInHandler
	Filter CuisineFilter
	Cart   CartHandler
	Images ImageResolver
}

// WithDefaults returns a copy of s with every nil capability replaced by its default.
func (s Set) WithDefaults() Set {
	if s.SignIn == nil {
		s.SignIn = NoopSignIn{}
	}
	if s.Filter == nil {
		s.Filter = NoopCuisineFilter{}
	}
	if s.Cart == nil {
		s.Cart = NoopCart{}
	}
	if s.Images == nil {
		s.Images = PlaceholderImages{}
	}
	return s
}
