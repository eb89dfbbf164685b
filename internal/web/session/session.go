// Package session maps browser session cookies to backend access tokens.
//
// The browser only ever sees an opaque session id. The bearer token the
// backend issued at sign-in stays server-side in the store, so a leaked
// cookie cannot be replayed against the backend directly.
package session

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/buymeapencil/web/internal/web/platform/requestmeta"
	"github.com/buymeapencil/web/internal/web/platform/sessioncookie"
)

// Store persists the session id to access token mapping.
type Store interface {
	Get(ctx context.Context, sessionID string) (token string, ok bool, err error)
	Set(ctx context.Context, sessionID, accessToken string) error
	Clear(ctx context.Context, sessionID string) error
}

// Manager establishes, resolves, and terminates web sessions.
type Manager struct {
	store  Store
	policy requestmeta.SchemePolicy
}

// NewManager builds a session manager over the given store.
func NewManager(store Store, policy requestmeta.SchemePolicy) *Manager {
	return &Manager{store: store, policy: policy}
}

// Establish creates a fresh session for an access token and sets the
// session cookie on the response. Any prior session id in the request is
// abandoned, never reused.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, accessToken string) error {
	if m == nil || m.store == nil {
		return fmt.Errorf("session store is not configured")
	}
	if accessToken == "" {
		return fmt.Errorf("access token is required")
	}

	sessionID := uuid.NewString()
	if err := m.store.Set(r.Context(), sessionID, accessToken); err != nil {
		return fmt.Errorf("establish session: %w", err)
	}
	sessioncookie.WriteWithPolicy(w, r, sessionID, m.policy)
	return nil
}

// Resolve returns the access token for the request's session cookie.
// A missing cookie or an unknown session id yields ok = false without
// error; only storage failures surface as errors.
func (m *Manager) Resolve(r *http.Request) (string, bool, error) {
	if m == nil || m.store == nil {
		return "", false, fmt.Errorf("session store is not configured")
	}

	sessionID, ok := sessioncookie.Read(r)
	if !ok {
		return "", false, nil
	}

	token, ok, err := m.store.Get(r.Context(), sessionID)
	if err != nil {
		return "", false, fmt.Errorf("resolve session: %w", err)
	}
	return token, ok, nil
}

// Terminate clears the request's session from the store and expires the
// cookie. Terminating without a session cookie is a no-op that still
// clears the cookie.
func (m *Manager) Terminate(w http.ResponseWriter, r *http.Request) error {
	if m == nil || m.store == nil {
		return fmt.Errorf("session store is not configured")
	}

	if sessionID, ok := sessioncookie.Read(r); ok {
		if err := m.store.Clear(r.Context(), sessionID); err != nil {
			return fmt.Errorf("terminate session: %w", err)
		}
	}
	sessioncookie.ClearWithPolicy(w, r, m.policy)
	return nil
}
