// Package panel serves the authenticated account pages: profile,
// payment history, and payment info.
package panel

import (
	"net/http"

	"github.com/buymeapencil/web/internal/web/module"
	"github.com/buymeapencil/web/internal/web/platform/requestmeta"
	"github.com/buymeapencil/web/internal/web/routepath"
	"github.com/buymeapencil/web/internal/web/session"
)

// Module provides the account panel routes.
type Module struct {
	gateway    Gateway
	sessions   *session.Manager
	policy     requestmeta.SchemePolicy
	appBaseURL string
}

// New returns a panel module. appBaseURL overrides the request-derived
// origin in donation links when non-empty.
func New(gateway Gateway, sessions *session.Manager, policy requestmeta.SchemePolicy, appBaseURL string) Module {
	return Module{gateway: gateway, sessions: sessions, policy: policy, appBaseURL: appBaseURL}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "panel" }

// Mount wires the panel route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.sessions, m.policy, m.appBaseURL)
	registerRoutes(mux, h)
	prefixes := []string{
		routepath.AccountProfile,
		routepath.AccountPayments,
	}
	return module.Mount{Prefixes: prefixes, Handler: mux}, nil
}
