package auth

import (
	"context"

	"github.com/buymeapencil/web/internal/web/backend"
)

// fakeGateway implements Gateway for tests with call recording and error
// injection.
type fakeGateway struct {
	signInToken string
	signInErr   error
	account     backend.Account
	meErr       error
	otpMessage  string
	otpErr      error
	verifyToken string
	verifyErr   error
	resetMsg    string
	resetErr    error

	signInCalls int
	meCalls     int
	otpCalls    int
	verifyCalls int
	resetCalls  int

	gotEmail    string
	gotPassword string
	gotCode     string
	gotName     string
	gotToken    string
}

var _ Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) SignIn(_ context.Context, email, password string) (string, error) {
	f.signInCalls++
	f.gotEmail = email
	f.gotPassword = password
	if f.signInErr != nil {
		return "", f.signInErr
	}
	if f.signInToken == "" {
		return "token-1", nil
	}
	return f.signInToken, nil
}

func (f *fakeGateway) Me(_ context.Context, token string) (backend.Account, error) {
	f.meCalls++
	f.gotToken = token
	if f.meErr != nil {
		return backend.Account{}, f.meErr
	}
	if f.account == (backend.Account{}) {
		return backend.Account{ID: "user-1", Email: "a@b.test", Name: "Ada"}, nil
	}
	return f.account, nil
}

func (f *fakeGateway) RequestSignUpOTP(_ context.Context, email string) (string, error) {
	f.otpCalls++
	f.gotEmail = email
	if f.otpErr != nil {
		return "", f.otpErr
	}
	if f.otpMessage == "" {
		return "Code sent to your inbox.", nil
	}
	return f.otpMessage, nil
}

func (f *fakeGateway) VerifySignUp(_ context.Context, email, code, name, password string) (string, error) {
	f.verifyCalls++
	f.gotEmail = email
	f.gotCode = code
	f.gotName = name
	f.gotPassword = password
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	if f.verifyToken == "" {
		return "token-2", nil
	}
	return f.verifyToken, nil
}

func (f *fakeGateway) RequestPasswordResetOTP(_ context.Context, email string) (string, error) {
	f.otpCalls++
	f.gotEmail = email
	if f.otpErr != nil {
		return "", f.otpErr
	}
	if f.otpMessage == "" {
		return "Reset code sent to your inbox.", nil
	}
	return f.otpMessage, nil
}

func (f *fakeGateway) ResetPassword(_ context.Context, email, code, newPassword string) (string, error) {
	f.resetCalls++
	f.gotEmail = email
	f.gotCode = code
	f.gotPassword = newPassword
	if f.resetErr != nil {
		return "", f.resetErr
	}
	if f.resetMsg == "" {
		return "Password updated.", nil
	}
	return f.resetMsg, nil
}

// memorySessionStore implements session.Store for handler tests.
type memorySessionStore struct {
	tokens map[string]string
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{tokens: make(map[string]string)}
}

func (m *memorySessionStore) Get(_ context.Context, sessionID string) (string, bool, error) {
	token, ok := m.tokens[sessionID]
	return token, ok, nil
}

func (m *memorySessionStore) Set(_ context.Context, sessionID, accessToken string) error {
	m.tokens[sessionID] = accessToken
	return nil
}

func (m *memorySessionStore) Clear(_ context.Context, sessionID string) error {
	delete(m.tokens, sessionID)
	return nil
}
