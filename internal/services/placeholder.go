package services

import (
	"net/url"
	"strconv"
)

// DefaultPlaceholderBase is the endpoint PlaceholderImages points at when
// Base is empty.
const DefaultPlaceholderBase = "/api/placeholder"

// PlaceholderImages resolves tokens to a placeholder image endpoint of the
// form <Base>/<width>/<height>?text=<token>.
type PlaceholderImages struct {
	Base string
}

func (p PlaceholderImages) Resolve(token string, width, height int) string {
	base := p.Base
	if base == "" {
		base = DefaultPlaceholderBase
	}
	q := url.Values{"text": []string{token}}
	return base + "/" + strconv.Itoa(width) + "/" + strconv.Itoa(height) + "?" + q.Encode()
}
