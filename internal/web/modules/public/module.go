// Package public serves the unauthenticated landing pages and the fiat
// payment rail.
package public

import (
	"net/http"

	"github.com/buymeapencil/web/internal/web/module"
	"github.com/buymeapencil/web/internal/web/routepath"
)

// Module provides the landing, checkout-result, and fiat payment routes.
type Module struct {
	gateway CheckoutGateway
}

// New returns a public module over the given checkout gateway.
func New(gateway CheckoutGateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires the public route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway))
	registerRoutes(mux, h)
	return module.Mount{Prefixes: []string{routepath.Root}, Handler: mux}, nil
}
