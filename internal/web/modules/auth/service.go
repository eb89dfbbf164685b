package auth

import (
	"context"
	"strings"

	"github.com/buymeapencil/web/internal/web/backend"
	apperrors "github.com/buymeapencil/web/internal/web/platform/errors"
)

// minPasswordLength is enforced locally before any network call.
const minPasswordLength = 8

// Gateway performs the authentication operations against the backend.
type Gateway interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, token string) (backend.Account, error)
	RequestSignUpOTP(ctx context.Context, email string) (string, error)
	VerifySignUp(ctx context.Context, email, code, name, password string) (string, error)
	RequestPasswordResetOTP(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) (string, error)
}

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	return service{gateway: gateway}
}

func (s service) requireGateway() error {
	if s.gateway == nil {
		return apperrors.E(apperrors.KindUnavailable, "Sign in is unavailable right now.")
	}
	return nil
}

// signIn validates the credentials locally and exchanges them for an
// access token.
func (s service) signIn(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", apperrors.E(apperrors.KindInvalidInput, "Please enter email and password.")
	}
	if err := s.requireGateway(); err != nil {
		return "", err
	}
	return s.gateway.SignIn(ctx, email, password)
}

// account validates a stored token by loading the account behind it.
func (s service) account(ctx context.Context, token string) (backend.Account, error) {
	if err := s.requireGateway(); err != nil {
		return backend.Account{}, err
	}
	return s.gateway.Me(ctx, token)
}

// requestSignUpOTP asks the backend to email a verification code and
// returns the confirmation message to display.
func (s service) requestSignUpOTP(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", apperrors.E(apperrors.KindInvalidInput, "Please enter your email.")
	}
	if err := s.requireGateway(); err != nil {
		return "", err
	}
	return s.gateway.RequestSignUpOTP(ctx, email)
}

// verifySignUp checks the collected fields locally, then completes the
// sign-up and returns the issued access token.
func (s service) verifySignUp(ctx context.Context, email, code, name, password string) (string, error) {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if email == "" || code == "" || name == "" || password == "" {
		return "", apperrors.E(apperrors.KindInvalidInput, "Please fill in all fields.")
	}
	if len(password) < minPasswordLength {
		return "", apperrors.E(apperrors.KindInvalidInput, "Password must be at least 8 characters.")
	}
	if err := s.requireGateway(); err != nil {
		return "", err
	}
	return s.gateway.VerifySignUp(ctx, email, code, name, password)
}

// requestPasswordResetOTP asks the backend to email a reset code.
func (s service) requestPasswordResetOTP(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", apperrors.E(apperrors.KindInvalidInput, "Please enter your email.")
	}
	if err := s.requireGateway(); err != nil {
		return "", err
	}
	return s.gateway.RequestPasswordResetOTP(ctx, email)
}

// resetPassword checks the collected fields locally, then completes the
// password reset.
func (s service) resetPassword(ctx context.Context, email, code, newPassword, confirm string) (string, error) {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" || newPassword == "" || confirm == "" {
		return "", apperrors.E(apperrors.KindInvalidInput, "Please fill in all fields.")
	}
	if len(newPassword) < minPasswordLength {
		return "", apperrors.E(apperrors.KindInvalidInput, "Password must be at least 8 characters.")
	}
	if newPassword != confirm {
		return "", apperrors.E(apperrors.KindInvalidInput, "Passwords do not match.")
	}
	if err := s.requireGateway(); err != nil {
		return "", err
	}
	return s.gateway.ResetPassword(ctx, email, code, newPassword)
}
