package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buymeapencil/web/internal/web/platform/requestmeta"
	"github.com/buymeapencil/web/internal/web/platform/sessioncookie"
)

type memoryStore struct {
	tokens map[string]string
	getErr error
	setErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{tokens: make(map[string]string)}
}

func (m *memoryStore) Get(_ context.Context, sessionID string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	token, ok := m.tokens[sessionID]
	return token, ok, nil
}

func (m *memoryStore) Set(_ context.Context, sessionID, accessToken string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.tokens[sessionID] = accessToken
	return nil
}

func (m *memoryStore) Clear(_ context.Context, sessionID string) error {
	delete(m.tokens, sessionID)
	return nil
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, raw := range rec.Header().Values("Set-Cookie") {
		cookie, err := http.ParseSetCookie(raw)
		if err != nil {
			t.Fatalf("ParseSetCookie(%q) error = %v", raw, err)
		}
		if cookie.Name == sessioncookie.Name {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestEstablishAndResolve(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	mgr := NewManager(store, requestmeta.SchemePolicy{})

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/account", nil)
	if err := mgr.Establish(rec, r, "token-abc"); err != nil {
		t.Fatalf("Establish() error = %v", err)
	}

	cookie := sessionCookieFrom(t, rec)
	if cookie.Value == "" {
		t.Fatal("session cookie value is empty")
	}
	if store.tokens[cookie.Value] != "token-abc" {
		t.Fatalf("stored token = %q, want %q", store.tokens[cookie.Value], "token-abc")
	}

	next := httptest.NewRequest(http.MethodGet, "/account", nil)
	next.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: cookie.Value})

	token, ok, err := mgr.Resolve(next)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !ok || token != "token-abc" {
		t.Fatalf("Resolve() = %q, %v, want %q, true", token, ok, "token-abc")
	}
}

func TestEstablishIssuesFreshID(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	mgr := NewManager(store, requestmeta.SchemePolicy{})

	r := httptest.NewRequest(http.MethodPost, "/account", nil)
	r.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "stale-id"})

	rec := httptest.NewRecorder()
	if err := mgr.Establish(rec, r, "token-abc"); err != nil {
		t.Fatalf("Establish() error = %v", err)
	}

	cookie := sessionCookieFrom(t, rec)
	if cookie.Value == "stale-id" {
		t.Fatal("Establish reused the prior session id")
	}
	if _, ok := store.tokens["stale-id"]; ok {
		t.Fatal("stale session id was written to the store")
	}
}

func TestEstablishRequiresToken(t *testing.T) {
	t.Parallel()

	mgr := NewManager(newMemoryStore(), requestmeta.SchemePolicy{})
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/account", nil)

	if err := mgr.Establish(rec, r, ""); err == nil {
		t.Fatal("Establish(empty token) error = nil, want error")
	}
}

func TestResolveWithoutCookie(t *testing.T) {
	t.Parallel()

	mgr := NewManager(newMemoryStore(), requestmeta.SchemePolicy{})
	r := httptest.NewRequest(http.MethodGet, "/account", nil)

	token, ok, err := mgr.Resolve(r)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if ok || token != "" {
		t.Fatalf("Resolve() = %q, %v, want empty, false", token, ok)
	}
}

func TestResolveUnknownSession(t *testing.T) {
	t.Parallel()

	mgr := NewManager(newMemoryStore(), requestmeta.SchemePolicy{})
	r := httptest.NewRequest(http.MethodGet, "/account", nil)
	r.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "gone"})

	_, ok, err := mgr.Resolve(r)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if ok {
		t.Fatal("Resolve() ok = true for unknown session, want false")
	}
}

func TestResolveStoreError(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	store.getErr = errors.New("disk gone")
	mgr := NewManager(store, requestmeta.SchemePolicy{})

	r := httptest.NewRequest(http.MethodGet, "/account", nil)
	r.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "sess-1"})

	if _, _, err := mgr.Resolve(r); err == nil {
		t.Fatal("Resolve() error = nil, want store error")
	}
}

func TestTerminate(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	store.tokens["sess-1"] = "token-abc"
	mgr := NewManager(store, requestmeta.SchemePolicy{})

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/account/sign-out", nil)
	r.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "sess-1"})

	if err := mgr.Terminate(rec, r); err != nil {
		t.Fatalf("Terminate() error = %v", err)
	}
	if _, ok := store.tokens["sess-1"]; ok {
		t.Fatal("session survived Terminate")
	}

	cookie := sessionCookieFrom(t, rec)
	if cookie.MaxAge != -1 {
		t.Fatalf("cookie MaxAge = %d, want -1", cookie.MaxAge)
	}
}

func TestTerminateWithoutCookie(t *testing.T) {
	t.Parallel()

	mgr := NewManager(newMemoryStore(), requestmeta.SchemePolicy{})
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/account/sign-out", nil)

	if err := mgr.Terminate(rec, r); err != nil {
		t.Fatalf("Terminate() error = %v", err)
	}
	cookie := sessionCookieFrom(t, rec)
	if cookie.MaxAge != -1 {
		t.Fatalf("cookie MaxAge = %d, want -1", cookie.MaxAge)
	}
}
