// Package backend is the typed HTTP client for the external
// "Buy me a pencil" backend service.
//
// All business logic (authentication, OTP issuance, payment sessions,
// crypto address allocation, balance accounting) lives behind this API;
// the web service only renders its outcomes. Every method issues one
// request, attaches a bearer header when a token is supplied, and
// normalizes failures into a single error contract: *Error for rejected
// requests, ErrInvalidResponse for success bodies missing an expected
// field, and wrapped transport errors for network failures.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrInvalidResponse marks a success response missing an expected field.
var ErrInvalidResponse = errors.New("invalid response")

// Error is a backend-rejected request (non-2xx status). Message carries
// the body's "message" or "error" field when present, otherwise a generic
// status-coded fallback.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Account is the authenticated user as the backend reports it.
type Account struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	CryptoBalance string `json:"cryptoBalance"`
}

// Card is a card-on-file record.
type Card struct {
	ID         string `json:"id"`
	CardNumber string `json:"cardNumber"`
	HolderName string `json:"holderName"`
	UserID     string `json:"userId"`
}

// CryptoPayment is one confirmed crypto donation record.
type CryptoPayment struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	TxHash    string    `json:"txHash"`
	CreatedAt time.Time `json:"createdAt"`
}

// DepositOffer is a server-issued, time-limited crypto deposit address for
// a single donation attempt. AmountCrypto is the authoritative value in
// integer minor units (scaled by 1,000,000), transmitted as a string.
type DepositOffer struct {
	Address      string    `json:"address"`
	AmountCrypto string    `json:"amountCrypto"`
	Currency     string    `json:"currency"`
	Network      string    `json:"network"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Creator is the public view of a donation recipient.
type Creator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Client issues typed requests against the backend base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// New builds a client for the given base URL (trailing slash tolerated).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		// No client-imposed timeout: every request is user-initiated and
		// never retried, matching the backend contract observed so far.
		httpc:  &http.Client{},
		tracer: otel.Tracer("web/backend"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SignIn exchanges credentials for an access token.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	var out struct {
		AccessToken string `json:"accessToken"`
	}
	err := c.do(ctx, call{
		op:           "sign-in",
		method:       http.MethodPost,
		path:         "/auth/sign-in",
		body:         map[string]string{"email": email, "password": password},
		failFallback: "Sign in failed",
	}, &out)
	if err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("%w: missing accessToken", ErrInvalidResponse)
	}
	return out.AccessToken, nil
}

// Me fetches the account owning the token.
func (c *Client) Me(ctx context.Context, token string) (Account, error) {
	var account Account
	err := c.do(ctx, call{
		op:     "me",
		method: http.MethodGet,
		path:   "/auth/me",
		token:  token,
	}, &account)
	return account, err
}

// RequestSignUpOTP asks the backend to email a sign-up code. The returned
// message is the backend's confirmation text, shown verbatim to the user.
func (c *Client) RequestSignUpOTP(ctx context.Context, email string) (string, error) {
	return c.requestOTP(ctx, "sign-up-otp", "/auth/sign-up/request-otp", email)
}

// VerifySignUp completes sign-up with the emailed code and returns an
// access token for the new account.
func (c *Client) VerifySignUp(ctx context.Context, email, code, name, password string) (string, error) {
	var out struct {
		AccessToken string `json:"accessToken"`
	}
	err := c.do(ctx, call{
		op:     "sign-up-verify",
		method: http.MethodPost,
		path:   "/auth/sign-up/verify",
		body:   map[string]string{"email": email, "code": code, "name": name, "password": password},
	}, &out)
	if err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("%w: missing accessToken", ErrInvalidResponse)
	}
	return out.AccessToken, nil
}

// RequestPasswordResetOTP asks the backend to email a reset code.
func (c *Client) RequestPasswordResetOTP(ctx context.Context, email string) (string, error) {
	return c.requestOTP(ctx, "reset-otp", "/auth/forgot-password/request-otp", email)
}

// ResetPassword completes a password reset with the emailed code.
func (c *Client) ResetPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, call{
		op:     "reset-password",
		method: http.MethodPost,
		path:   "/auth/forgot-password/reset",
		body:   map[string]string{"email": email, "code": code, "newPassword": newPassword},
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Message, nil
}

// UpdateProfile changes the account display name.
func (c *Client) UpdateProfile(ctx context.Context, token, name string) (Account, error) {
	var account Account
	err := c.do(ctx, call{
		op:     "update-profile",
		method: http.MethodPatch,
		path:   "/auth/profile",
		token:  token,
		body:   map[string]string{"name": name},
	}, &account)
	return account, err
}

// ListCards returns the account's card-on-file records.
func (c *Client) ListCards(ctx context.Context, token string) ([]Card, error) {
	var cards []Card
	err := c.do(ctx, call{
		op:     "list-cards",
		method: http.MethodGet,
		path:   "/card-info",
		token:  token,
	}, &cards)
	return cards, err
}

// CreateCard stores a new card record.
func (c *Client) CreateCard(ctx context.Context, token, cardNumber, holderName string) (Card, error) {
	var card Card
	err := c.do(ctx, call{
		op:     "create-card",
		method: http.MethodPost,
		path:   "/card-info",
		token:  token,
		body:   map[string]string{"cardNumber": cardNumber, "holderName": holderName},
	}, &card)
	return card, err
}

// UpdateCard replaces the number and holder of an existing card record.
func (c *Client) UpdateCard(ctx context.Context, token, id, cardNumber, holderName string) (Card, error) {
	var card Card
	err := c.do(ctx, call{
		op:     "update-card",
		method: http.MethodPatch,
		path:   "/card-info/" + url.PathEscape(id),
		token:  token,
		body:   map[string]string{"cardNumber": cardNumber, "holderName": holderName},
	}, &card)
	return card, err
}

// ListMyCryptoPayments returns confirmed crypto donations, newest first in
// backend order.
func (c *Client) ListMyCryptoPayments(ctx context.Context, token string) ([]CryptoPayment, error) {
	var payments []CryptoPayment
	err := c.do(ctx, call{
		op:     "list-crypto-payments",
		method: http.MethodGet,
		path:   "/payments/crypto/me",
		token:  token,
	}, &payments)
	return payments, err
}

// CreateCheckout opens a fiat payment session. The amount is already in
// the backend's minor units; the returned URL ends the web flow via a
// full redirect.
func (c *Client) CreateCheckout(ctx context.Context, amount int64, userName, message string) (string, error) {
	body := map[string]any{"amount": amount}
	if userName != "" {
		body["userName"] = userName
	}
	if message != "" {
		body["message"] = message
	}
	var out struct {
		Data struct {
			CheckoutURL string `json:"checkoutUrl"`
		} `json:"data"`
	}
	err := c.do(ctx, call{
		op:     "create-checkout",
		method: http.MethodPost,
		path:   "/payments",
		body:   body,
	}, &out)
	if err != nil {
		return "", err
	}
	if out.Data.CheckoutURL == "" {
		return "", fmt.Errorf("%w: missing checkoutUrl", ErrInvalidResponse)
	}
	return out.Data.CheckoutURL, nil
}

// CreateCryptoOffer requests a single-use deposit address for a donation
// to the given creator.
func (c *Client) CreateCryptoOffer(ctx context.Context, creatorID, amountUSD string) (DepositOffer, error) {
	var offer DepositOffer
	err := c.do(ctx, call{
		op:     "create-crypto-offer",
		method: http.MethodPost,
		path:   "/payments/crypto",
		body:   map[string]string{"userId": creatorID, "amountUsd": amountUSD},
	}, &offer)
	if err != nil {
		return DepositOffer{}, err
	}
	if offer.Address == "" || offer.AmountCrypto == "" {
		return DepositOffer{}, fmt.Errorf("%w: missing deposit offer fields", ErrInvalidResponse)
	}
	return offer, nil
}

// PublicCreator resolves a creator by opaque id without authentication.
func (c *Client) PublicCreator(ctx context.Context, id string) (Creator, error) {
	var creator Creator
	err := c.do(ctx, call{
		op:     "public-creator",
		method: http.MethodGet,
		path:   "/users/" + url.PathEscape(id) + "/public",
	}, &creator)
	if err != nil {
		return Creator{}, err
	}
	if creator.Name == "" {
		return Creator{}, fmt.Errorf("%w: missing creator name", ErrInvalidResponse)
	}
	if creator.ID == "" {
		creator.ID = id
	}
	return creator, nil
}

func (c *Client) requestOTP(ctx context.Context, op, path, email string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   path,
		body:   map[string]string{"email": email},
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Message, nil
}

type call struct {
	op           string
	method       string
	path         string
	token        string
	body         any
	failFallback string
}

func (c *Client) do(ctx context.Context, call call, out any) error {
	ctx, span := c.tracer.Start(ctx, "backend."+call.op)
	defer span.End()

	err := c.roundTrip(ctx, call, out, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, call call, out any, span trace.Span) error {
	var reqBody io.Reader
	if call.body != nil {
		payload, err := json.Marshal(call.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", call.op, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, call.method, c.baseURL+call.path, reqBody)
	if err != nil {
		return fmt.Errorf("build %s request: %w", call.op, err)
	}
	if call.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if call.token != "" {
		req.Header.Set("Authorization", "Bearer "+call.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", call.op, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", call.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: errorMessage(raw, resp.StatusCode, call.failFallback)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// errorMessage extracts the server-supplied message from an error body,
// preferring "message" over "error" and falling back to a generic
// status-coded phrase.
func errorMessage(raw []byte, status int, fallback string) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(raw, &body)
	if msg := strings.TrimSpace(body.Message); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(body.Error); msg != "" {
		return msg
	}
	if fallback == "" {
		fallback = "Request failed"
	}
	return fmt.Sprintf("%s (%d)", fallback, status)
}
