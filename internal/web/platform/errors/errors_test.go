package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/buymeapencil/web/internal/web/backend"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(E(KindUnauthorized, "unauthorized")); got != http.StatusUnauthorized {
		t.Fatalf("unauthorized status = %d, want %d", got, http.StatusUnauthorized)
	}
	if got := HTTPStatus(E(KindInvalidInput, "bad")); got != http.StatusBadRequest {
		t.Fatalf("invalid input status = %d, want %d", got, http.StatusBadRequest)
	}
	if got := HTTPStatus(E(KindNotFound, "missing")); got != http.StatusNotFound {
		t.Fatalf("not found status = %d, want %d", got, http.StatusNotFound)
	}
	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("nil status = %d, want %d", got, http.StatusOK)
	}
}

func TestHTTPStatusPassesBackendStatusThrough(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load account: %w", &backend.Error{Status: http.StatusUnauthorized, Message: "token expired"})
	if got := HTTPStatus(err); got != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", got, http.StatusUnauthorized)
	}

	teapot := &backend.Error{Status: http.StatusTeapot, Message: "odd"}
	if got := HTTPStatus(teapot); got != http.StatusInternalServerError {
		t.Fatalf("unmapped backend status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestHTTPStatusDefaultsToInternalError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestIsUnauthorized(t *testing.T) {
	t.Parallel()

	if !IsUnauthorized(&backend.Error{Status: http.StatusUnauthorized, Message: "nope"}) {
		t.Fatalf("expected backend 401 to be unauthorized")
	}
	if !IsUnauthorized(E(KindUnauthorized, "nope")) {
		t.Fatalf("expected typed unauthorized")
	}
	if IsUnauthorized(errors.New("boom")) {
		t.Fatalf("unexpected unauthorized for untyped error")
	}
}
