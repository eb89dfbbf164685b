package templates

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/buymeapencil/web/internal/web/routepath"
)

// irtPresets are the suggested fiat amounts on the home donation form.
var irtPresets = []int{30000, 50000, 100000, 200000}

// HomeData drives the landing page and its inline fiat donation form.
type HomeData struct {
	Amount   string
	UserName string
	Message  string
	Error    string
	// OpenModal forces the donation dialog open, used when a failed
	// submission re-renders the page.
	OpenModal bool
}

// Home renders the landing hero and the fiat donation dialog.
func Home(data HomeData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"hero\"><h1 class=\"hero-title\">Buy me a pencil</h1>")
	b.WriteString("<p class=\"hero-typed\"><span data-typed=\"A small gift that keeps the drawings coming.\"></span></p>")
	b.WriteString("<button type=\"button\" class=\"btn btn-primary\" data-modal-open=\"donate-modal\">Donate Now</button></section>")

	b.WriteString("<div class=\"modal")
	if data.OpenModal {
		b.WriteString(" modal-open")
	}
	b.WriteString("\" id=\"donate-modal\"><div class=\"modal-body card\">")
	b.WriteString("<button type=\"button\" class=\"modal-close\" data-modal-close=\"donate-modal\" aria-label=\"Close\">&times;</button>")
	b.WriteString("<h2>Make a donation</h2>")
	inlineError(&b, data.Error)
	b.WriteString("<form method=\"post\" action=\"")
	b.WriteString(routepath.Pay)
	b.WriteString("\" data-progress-form>")
	b.WriteString("<div class=\"preset-grid\" data-amount-presets>")
	for _, preset := range irtPresets {
		b.WriteString("<button type=\"button\" class=\"btn preset\" data-amount=\"")
		b.WriteString(strconv.Itoa(preset))
		b.WriteString("\">")
		b.WriteString(FormatGrouped(preset))
		b.WriteString("</button>")
	}
	b.WriteString("</div>")
	b.WriteString("<label>Amount (IRT)<input type=\"text\" name=\"amount\" value=\"")
	b.WriteString(esc(data.Amount))
	b.WriteString("\" inputmode=\"numeric\"></label>")
	b.WriteString("<label>Your name (optional)<input type=\"text\" name=\"userName\" value=\"")
	b.WriteString(esc(data.UserName))
	b.WriteString("\"></label>")
	b.WriteString("<label>Message (optional)<textarea name=\"message\" rows=\"3\">")
	b.WriteString(esc(data.Message))
	b.WriteString("</textarea></label>")
	submitButton(&b, "Pay", "Redirecting...")
	b.WriteString("</form></div></div>")
	return raw(b.String())
}

// PaymentSuccess renders the post-checkout thank-you page.
func PaymentSuccess() templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"card result-card\"><h1>Thank you!</h1>")
	b.WriteString("<p>Your donation went through. It means a lot.</p>")
	b.WriteString("<a class=\"btn btn-primary\" href=\"")
	b.WriteString(routepath.Root)
	b.WriteString("\">Back to home</a></section>")
	return raw(b.String())
}

// PaymentFailed renders the post-checkout failure page.
func PaymentFailed() templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"card result-card\"><h1>Payment unsuccessful</h1>")
	b.WriteString("<p>Your payment did not go through. No money was taken.</p>")
	b.WriteString("<a class=\"btn btn-primary\" href=\"")
	b.WriteString(routepath.Root)
	b.WriteString("\">Try again</a></section>")
	return raw(b.String())
}
