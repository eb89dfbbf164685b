package panel

import (
	"context"
	"strings"

	"github.com/buymeapencil/web/internal/web/backend"
	apperrors "github.com/buymeapencil/web/internal/web/platform/errors"
)

// maxCardNumberLength caps the digits accepted for a card number.
const maxCardNumberLength = 24

// Gateway performs the authenticated account operations against the
// backend.
type Gateway interface {
	Me(ctx context.Context, token string) (backend.Account, error)
	UpdateProfile(ctx context.Context, token, name string) (backend.Account, error)
	ListCards(ctx context.Context, token string) ([]backend.Card, error)
	CreateCard(ctx context.Context, token, cardNumber, holderName string) (backend.Card, error)
	UpdateCard(ctx context.Context, token, id, cardNumber, holderName string) (backend.Card, error)
	ListMyCryptoPayments(ctx context.Context, token string) ([]backend.CryptoPayment, error)
}

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	return service{gateway: gateway}
}

func (s service) requireGateway() error {
	if s.gateway == nil {
		return apperrors.E(apperrors.KindUnavailable, "Your account is unavailable right now.")
	}
	return nil
}

func (s service) account(ctx context.Context, token string) (backend.Account, error) {
	if err := s.requireGateway(); err != nil {
		return backend.Account{}, err
	}
	return s.gateway.Me(ctx, token)
}

// updateName saves the display name after local validation.
func (s service) updateName(ctx context.Context, token, name string) (backend.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return backend.Account{}, apperrors.E(apperrors.KindInvalidInput, "Please enter your name.")
	}
	if err := s.requireGateway(); err != nil {
		return backend.Account{}, err
	}
	return s.gateway.UpdateProfile(ctx, token, name)
}

// payments loads the crypto payment history. A load failure degrades to
// an empty list rather than an error page.
func (s service) payments(ctx context.Context, token string) []backend.CryptoPayment {
	if s.gateway == nil {
		return nil
	}
	items, err := s.gateway.ListMyCryptoPayments(ctx, token)
	if err != nil {
		return nil
	}
	return items
}

// firstCard loads the card on file, if any. A load failure degrades to no
// card.
func (s service) firstCard(ctx context.Context, token string) (backend.Card, bool) {
	if s.gateway == nil {
		return backend.Card{}, false
	}
	cards, err := s.gateway.ListCards(ctx, token)
	if err != nil || len(cards) == 0 {
		return backend.Card{}, false
	}
	return cards[0], true
}

// saveCard validates the card fields locally, then creates a new record
// or updates the identified one.
func (s service) saveCard(ctx context.Context, token, cardID, cardNumber, holderName string) (backend.Card, error) {
	cardNumber = strings.TrimSpace(cardNumber)
	holderName = strings.TrimSpace(holderName)
	if cardNumber == "" || holderName == "" {
		return backend.Card{}, apperrors.E(apperrors.KindInvalidInput, "Please fill in all fields.")
	}
	if !isDigits(cardNumber) || len(cardNumber) > maxCardNumberLength {
		return backend.Card{}, apperrors.E(apperrors.KindInvalidInput, "Card number must be up to 24 digits.")
	}
	if err := s.requireGateway(); err != nil {
		return backend.Card{}, err
	}

	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return s.gateway.CreateCard(ctx, token, cardNumber, holderName)
	}
	return s.gateway.UpdateCard(ctx, token, cardID, cardNumber, holderName)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
