// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Mount describes a module route mount. Each prefix is registered on the
// composition mux; exact paths and subtrees follow net/http ServeMux
// pattern rules.
type Mount struct {
	Prefixes []string
	Handler  http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
