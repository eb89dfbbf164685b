package templates

import (
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/buymeapencil/web/internal/web/routepath"
)

// usdPresets are the suggested donation amounts on the public page.
var usdPresets = []int{1, 5, 10, 50}

// DonateData drives the public donation page for a creator.
type DonateData struct {
	CreatorID   string
	CreatorName string
	Amount      string
	Error       string
}

// Donate renders the creator donation page with the crypto amount form.
func Donate(data DonateData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"card donate-card\"><h1>Buy ")
	b.WriteString(esc(data.CreatorName))
	b.WriteString(" a pencil</h1>")
	inlineError(&b, data.Error)
	b.WriteString("<form method=\"post\" action=\"")
	b.WriteString(routepath.Donate(data.CreatorID))
	b.WriteString("\" data-progress-form>")
	b.WriteString("<div class=\"preset-grid\" data-amount-presets>")
	for _, preset := range usdPresets {
		value := strconv.Itoa(preset)
		b.WriteString("<button type=\"button\" class=\"btn preset\" data-amount=\"")
		b.WriteString(value)
		b.WriteString("\">$")
		b.WriteString(value)
		b.WriteString("</button>")
	}
	b.WriteString("</div>")
	b.WriteString("<label>Amount (USD)<input type=\"text\" name=\"amount\" value=\"")
	b.WriteString(esc(data.Amount))
	b.WriteString("\" inputmode=\"decimal\"></label>")
	submitButton(&b, "Donate", "Preparing...")
	b.WriteString("</form></section>")
	return raw(b.String())
}

// DepositOfferData drives the one-time crypto deposit view. AmountCrypto is
// the backend's minor-unit string; the display value is derived at render.
type DepositOfferData struct {
	CreatorID    string
	Address      string
	AmountCrypto string
	Currency     string
	Network      string
	ExpiresAt    time.Time
}

// DepositOffer renders a fresh deposit offer: amount, network, address with
// copy control, QR image, and the expiry countdown anchor.
func DepositOffer(data DepositOfferData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"card donate-card\"><h1>Send your donation</h1>")
	b.WriteString("<p class=\"offer-amount\">")
	b.WriteString(esc(FormatCryptoAmount(data.AmountCrypto)))
	b.WriteString(" ")
	b.WriteString(esc(data.Currency))
	b.WriteString("</p><p class=\"offer-network\">Network: ")
	b.WriteString(esc(data.Network))
	b.WriteString("</p>")
	b.WriteString("<img class=\"offer-qr\" src=\"")
	b.WriteString(esc(routepath.DonateQRImage(data.Address)))
	b.WriteString("\" alt=\"Deposit address QR code\" width=\"220\" height=\"220\">")
	b.WriteString("<p class=\"offer-address\"><code>")
	b.WriteString(esc(data.Address))
	b.WriteString("</code><button type=\"button\" class=\"btn btn-ghost\" data-copy=\"")
	b.WriteString(esc(data.Address))
	b.WriteString("\" data-copied-label=\"Copied!\">Copy</button></p>")
	b.WriteString("<p class=\"offer-expiry\">Expires <time data-countdown datetime=\"")
	b.WriteString(esc(data.ExpiresAt.Format(time.RFC3339)))
	b.WriteString("\">")
	b.WriteString(esc(data.ExpiresAt.Format("15:04:05")))
	b.WriteString("</time></p>")
	b.WriteString("<a class=\"btn btn-ghost\" href=\"")
	b.WriteString(routepath.Donate(data.CreatorID))
	b.WriteString("\">Choose a different amount</a></section>")
	return raw(b.String())
}

// CreatorNotFound renders the donation page's not-found state.
func CreatorNotFound() templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"card donate-card\"><h1>Creator not found</h1>")
	b.WriteString("<p>The donation link you followed does not point to a creator.</p>")
	b.WriteString("<a class=\"btn btn-ghost\" href=\"")
	b.WriteString(routepath.Root)
	b.WriteString("\">Back to home</a></section>")
	return raw(b.String())
}
