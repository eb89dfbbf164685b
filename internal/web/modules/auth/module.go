// Package auth serves the sign-in, sign-up, password-reset, and sign-out
// flows.
package auth

import (
	"net/http"

	"github.com/buymeapencil/web/internal/web/module"
	"github.com/buymeapencil/web/internal/web/platform/requestmeta"
	"github.com/buymeapencil/web/internal/web/routepath"
	"github.com/buymeapencil/web/internal/web/session"
)

// Module provides the account authentication routes.
type Module struct {
	gateway  Gateway
	sessions *session.Manager
	policy   requestmeta.SchemePolicy
}

// New returns an auth module over the given gateway and session manager.
func New(gateway Gateway, sessions *session.Manager, policy requestmeta.SchemePolicy) Module {
	return Module{gateway: gateway, sessions: sessions, policy: policy}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "auth" }

// Mount wires the auth route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.sessions, m.policy)
	registerRoutes(mux, h)
	prefixes := []string{
		routepath.Account,
		routepath.AccountSignUp,
		routepath.AccountForgot,
		routepath.AccountSignOut,
	}
	return module.Mount{Prefixes: prefixes, Handler: mux}, nil
}
