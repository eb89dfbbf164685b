package public

import "context"

// fakeCheckoutGateway implements CheckoutGateway for tests with call
// recording and error injection.
type fakeCheckoutGateway struct {
	checkoutURL string
	err         error

	calls       int
	gotAmount   int64
	gotUserName string
	gotMessage  string
}

var _ CheckoutGateway = (*fakeCheckoutGateway)(nil)

func (f *fakeCheckoutGateway) CreateCheckout(_ context.Context, amount int64, userName, message string) (string, error) {
	f.calls++
	f.gotAmount = amount
	f.gotUserName = userName
	f.gotMessage = message
	if f.err != nil {
		return "", f.err
	}
	if f.checkoutURL == "" {
		return "https://checkout.example/session/1", nil
	}
	return f.checkoutURL, nil
}
