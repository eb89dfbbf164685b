package public

import (
	"context"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/buymeapencil/web/internal/web/platform/errors"
)

// fiatScale converts the entered fiat amount into the unit the payment
// provider charges. The entered value is multiplied by exactly this factor.
const fiatScale = 10

// CheckoutGateway creates fiat checkout sessions.
type CheckoutGateway interface {
	CreateCheckout(ctx context.Context, amount int64, userName, message string) (string, error)
}

// checkoutRequest carries one fiat donation submission.
type checkoutRequest struct {
	Amount   string
	UserName string
	Message  string
}

type service struct {
	gateway CheckoutGateway
}

func newService(gateway CheckoutGateway) service {
	return service{gateway: gateway}
}

// createCheckout validates the entered amount, scales it, and requests a
// checkout session. Validation failures never reach the gateway.
func (s service) createCheckout(ctx context.Context, req checkoutRequest) (string, error) {
	entered := strings.TrimSpace(req.Amount)
	n, err := strconv.ParseFloat(entered, 64)
	if err != nil || n <= 0 {
		return "", apperrors.E(apperrors.KindInvalidInput, "Please enter a valid amount.")
	}
	if s.gateway == nil {
		return "", apperrors.E(apperrors.KindUnavailable, "Payments are unavailable right now.")
	}

	amount := int64(math.Round(n * fiatScale))
	return s.gateway.CreateCheckout(ctx, amount, strings.TrimSpace(req.UserName), strings.TrimSpace(req.Message))
}
