package panel

import (
	"context"

	"github.com/buymeapencil/web/internal/web/backend"
)

// fakeGateway implements Gateway for tests with call recording and error
// injection.
type fakeGateway struct {
	account    backend.Account
	meErr      error
	updated    backend.Account
	updateErr  error
	cards      []backend.Card
	cardsErr   error
	created    backend.Card
	createErr  error
	updatedCrd backend.Card
	updCardErr error
	payments   []backend.CryptoPayment
	payErr     error

	meCalls     int
	updateCalls int
	createCalls int
	updCrdCalls int
	gotToken    string
	gotName     string
	gotCardID   string
	gotCardNum  string
	gotHolder   string
}

var _ Gateway = (*fakeGateway)(nil)

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

func (f *fakeGateway) UpdateProfile(_ context.Context, token, name string) (backend.Account, error) {
	f.updateCalls++
	f.gotToken = token
	f.gotName = name
	if f.updateErr != nil {
		return backend.Account{}, f.updateErr
	}
	if f.updated == (backend.Account{}) {
		account := f.account
		if account == (backend.Account{}) {
			account = backend.Account{ID: "user-1", Email: "a@b.test"}
		}
		account.Name = name
		return account, nil
	}
	return f.updated, nil
}

func (f *fakeGateway) ListCards(_ context.Context, token string) ([]backend.Card, error) {
	f.gotToken = token
	if f.cardsErr != nil {
		return nil, f.cardsErr
	}
	return f.cards, nil
}

func (f *fakeGateway) CreateCard(_ context.Context, token, cardNumber, holderName string) (backend.Card, error) {
	f.createCalls++
	f.gotToken = token
	f.gotCardNum = cardNumber
	f.gotHolder = holderName
	if f.createErr != nil {
		return backend.Card{}, f.createErr
	}
	if f.created == (backend.Card{}) {
		return backend.Card{ID: "card-new", CardNumber: cardNumber, HolderName: holderName}, nil
	}
	return f.created, nil
}

func (f *fakeGateway) UpdateCard(_ context.Context, token, id, cardNumber, holderName string) (backend.Card, error) {
	f.updCrdCalls++
	f.gotToken = token
	f.gotCardID = id
	f.gotCardNum = cardNumber
	f.gotHolder = holderName
	if f.updCardErr != nil {
		return backend.Card{}, f.updCardErr
	}
	if f.updatedCrd == (backend.Card{}) {
		return backend.Card{ID: id, CardNumber: cardNumber, HolderName: holderName}, nil
	}
	return f.updatedCrd, nil
}

func (f *fakeGateway) ListMyCryptoPayments(_ context.Context, token string) ([]backend.CryptoPayment, error) {
	f.gotToken = token
	if f.payErr != nil {
		return nil, f.payErr
	}
	return f.payments, nil
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
