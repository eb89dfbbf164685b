package donate

import (
	"context"
	"time"

	"github.com/buymeapencil/web/internal/web/backend"
)

// fakeGateway implements Gateway for tests with call recording and error
// injection.
type fakeGateway struct {
	creator    backend.Creator
	creatorErr error
	offer      backend.DepositOffer
	offerErr   error

	creatorCalls int
	offerCalls   int
	gotCreatorID string
	gotAmountUSD string
}

var _ Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) PublicCreator(_ context.Context, id string) (backend.Creator, error) {
	f.creatorCalls++
	if f.creatorErr != nil {
		return backend.Creator{}, f.creatorErr
	}
	if f.creator == (backend.Creator{}) {
		return backend.Creator{ID: id, Name: "Ada"}, nil
	}
	return f.creator, nil
}

func (f *fakeGateway) CreateCryptoOffer(_ context.Context, creatorID, amountUSD string) (backend.DepositOffer, error) {
	f.offerCalls++
	f.gotCreatorID = creatorID
	f.gotAmountUSD = amountUSD
	if f.offerErr != nil {
		return backend.DepositOffer{}, f.offerErr
	}
	if f.offer.Address == "" {
		return backend.DepositOffer{
			Address:      "T123",
			AmountCrypto: "5000000",
			Currency:     "USDT",
			Network:      "TRON",
			ExpiresAt:    time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC),
		}, nil
	}
	return f.offer, nil
}
