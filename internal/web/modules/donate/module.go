// Package donate serves the public creator donation page and the crypto
// payment rail.
package donate

import (
	"net/http"

	"github.com/buymeapencil/web/internal/web/module"
	"github.com/buymeapencil/web/internal/web/routepath"
)

// Module provides the donation routes.
type Module struct {
	gateway Gateway
}

// New returns a donate module over the given gateway.
func New(gateway Gateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "donate" }

// Mount wires the donation route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway))
	registerRoutes(mux, h)
	return module.Mount{Prefixes: []string{routepath.DonatePrefix}, Handler: mux}, nil
}
