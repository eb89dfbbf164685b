package donate

import (
	"context"
	"strconv"
	"strings"

	"github.com/buymeapencil/web/internal/web/backend"
	apperrors "github.com/buymeapencil/web/internal/web/platform/errors"
)

// minDonationUSD is the smallest amount the crypto rail accepts.
const minDonationUSD = 0.01

// Gateway performs the public donation operations against the backend.
type Gateway interface {
	PublicCreator(ctx context.Context, id string) (backend.Creator, error)
	CreateCryptoOffer(ctx context.Context, creatorID, amountUSD string) (backend.DepositOffer, error)
}

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	return service{gateway: gateway}
}

// creator resolves a creator for the public donation page. Any failure,
// including a blank id, reads as not-found to the visitor.
func (s service) creator(ctx context.Context, id string) (backend.Creator, error) {
	id = strings.TrimSpace(id)
	if id == "" || s.gateway == nil {
		return backend.Creator{}, apperrors.E(apperrors.KindNotFound, "creator not found")
	}
	return s.gateway.PublicCreator(ctx, id)
}

// createOffer validates the amount locally and requests a single-use
// deposit offer. Validation failures never reach the gateway.
func (s service) createOffer(ctx context.Context, creatorID, amount string) (backend.DepositOffer, error) {
	entered := strings.TrimSpace(amount)
	n, err := strconv.ParseFloat(entered, 64)
	if err != nil || n < minDonationUSD {
		return backend.DepositOffer{}, apperrors.E(apperrors.KindInvalidInput, "Please enter an amount of at least $0.01.")
	}
	if s.gateway == nil {
		return backend.DepositOffer{}, apperrors.E(apperrors.KindUnavailable, "Donations are unavailable right now.")
	}
	return s.gateway.CreateCryptoOffer(ctx, strings.TrimSpace(creatorID), strconv.FormatFloat(n, 'f', -1, 64))
}
