package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSignIn(t *testing.T) {
	t.Parallel()

	var gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/sign-in" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken":"tok-1"}`))
	}))
	defer ts.Close()

	token, err := New(ts.URL).SignIn(context.Background(), "a@b.test", "secret-pw")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("token = %q, want %q", token, "tok-1")
	}
	if gotBody != `{"email":"a@b.test","password":"secret-pw"}` {
		t.Fatalf("request body = %s", gotBody)
	}
}

func TestSignInMissingTokenIsInvalidResponse(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	_, err := New(ts.URL).SignIn(context.Background(), "a@b.test", "secret-pw")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("error = %v, want ErrInvalidResponse", err)
	}
}

func TestSignInFallbackMessage(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	_, err := New(ts.URL).SignIn(context.Background(), "a@b.test", "bad-password")
	var backendErr *Error
	if !errors.As(err, &backendErr) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if backendErr.Status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", backendErr.Status, http.StatusUnauthorized)
	}
	if backendErr.Message != "Sign in failed (401)" {
		t.Fatalf("message = %q, want %q", backendErr.Message, "Sign in failed (401)")
	}
}

func TestErrorMessagePrefersMessageOverError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "message field", body: `{"message":"email already registered"}`, want: "email already registered"},
		{name: "error field", body: `{"error":"otp expired"}`, want: "otp expired"},
		{name: "both fields", body: `{"message":"wins","error":"loses"}`, want: "wins"},
		{name: "empty body", body: ``, want: "Request failed (400)"},
		{name: "non-json body", body: `<html>bad gateway</html>`, want: "Request failed (400)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			_, err := New(ts.URL).RequestSignUpOTP(context.Background(), "a@b.test")
			var backendErr *Error
			if !errors.As(err, &backendErr) {
				t.Fatalf("error = %T, want *Error", err)
			}
			if backendErr.Message != tc.want {
				t.Fatalf("message = %q, want %q", backendErr.Message, tc.want)
			}
		})
	}
}

func TestMeAttachesBearerHeader(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-9" {
			t.Errorf("authorization header = %q, want %q", got, "Bearer tok-9")
		}
		_, _ = w.Write([]byte(`{"id":"u1","email":"a@b.test","name":"Ada","type":"creator","cryptoBalance":"12.5"}`))
	}))
	defer ts.Close()

	account, err := New(ts.URL).Me(context.Background(), "tok-9")
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if account.ID != "u1" || account.Name != "Ada" || account.CryptoBalance != "12.5" {
		t.Fatalf("unexpected account %+v", account)
	}
}

func TestCreateCheckoutUnwrapsNestedData(t *testing.T) {
	t.Parallel()

	var gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		_, _ = w.Write([]byte(`{"data":{"checkoutUrl":"https://gateway.test/session/42"}}`))
	}))
	defer ts.Close()

	url, err := New(ts.URL).CreateCheckout(context.Background(), 300000, "Ada", "keep drawing")
	if err != nil {
		t.Fatalf("CreateCheckout() error = %v", err)
	}
	if url != "https://gateway.test/session/42" {
		t.Fatalf("checkout url = %q", url)
	}
	if gotBody != `{"amount":300000,"message":"keep drawing","userName":"Ada"}` {
		t.Fatalf("request body = %s", gotBody)
	}
}

func TestCreateCheckoutMissingURLIsInvalidResponse(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer ts.Close()

	_, err := New(ts.URL).CreateCheckout(context.Background(), 300000, "", "")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("error = %v, want ErrInvalidResponse", err)
	}
}

func TestCreateCryptoOffer(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payments/crypto" {
			t.Errorf("path = %q, want /payments/crypto", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"address":"T123","amountCrypto":"5000000","currency":"USDT","network":"TRON","expiresAt":"2026-09-01T10:00:00Z"}`))
	}))
	defer ts.Close()

	offer, err := New(ts.URL).CreateCryptoOffer(context.Background(), "abc", "5")
	if err != nil {
		t.Fatalf("CreateCryptoOffer() error = %v", err)
	}
	if offer.Address != "T123" || offer.AmountCrypto != "5000000" || offer.Network != "TRON" {
		t.Fatalf("unexpected offer %+v", offer)
	}
}

func TestPublicCreatorNotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"creator not found"}`))
	}))
	defer ts.Close()

	_, err := New(ts.URL).PublicCreator(context.Background(), "missing")
	var backendErr *Error
	if !errors.As(err, &backendErr) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if backendErr.Status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", backendErr.Status)
	}
}

func TestNetworkFailureIsNotBackendError(t *testing.T) {
	t.Parallel()

	// Closed server: connection refused.
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ts.Close()

	_, err := New(ts.URL).Me(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected error")
	}
	var backendErr *Error
	if errors.As(err, &backendErr) {
		t.Fatalf("transport failure should not be *Error, got %v", err)
	}
}
