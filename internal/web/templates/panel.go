package templates

import (
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/buymeapencil/web/internal/web/routepath"
)

const tronscanTxBase = "https://tronscan.org/#/transaction/"

func panelShell(b *strings.Builder, active string) {
	b.WriteString("<header class=\"panel-header\"><h1>Your panel</h1><nav class=\"panel-tabs\">")
	writeTab(b, routepath.AccountProfile, "Profile", active == "profile")
	writeTab(b, routepath.AccountPayments, "Payments", active == "payments")
	b.WriteString("</nav><form method=\"post\" action=\"")
	b.WriteString(routepath.AccountSignOut)
	b.WriteString("\"><button type=\"submit\" class=\"btn btn-ghost\">Sign out</button></form></header>")
}

func writeTab(b *strings.Builder, href, label string, active bool) {
	b.WriteString("<a href=\"")
	b.WriteString(href)
	if active {
		b.WriteString("\" class=\"tab tab-active\">")
	} else {
		b.WriteString("\" class=\"tab\">")
	}
	b.WriteString(label)
	b.WriteString("</a>")
}

// ProfileData drives the panel profile page.
type ProfileData struct {
	Email         string
	Name          string
	DonationLink  string
	CryptoBalance string
	Notice        string
	Error         string
}

// Profile renders the account profile tab: identity, donation link with a
// copy control, crypto balance, and the name form.
func Profile(data ProfileData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"panel\">")
	panelShell(&b, "profile")
	notice(&b, "success", data.Notice)
	inlineError(&b, data.Error)

	b.WriteString("<div class=\"card\"><h2>Your donation link</h2>")
	b.WriteString("<p class=\"donation-link\"><code>")
	b.WriteString(esc(data.DonationLink))
	b.WriteString("</code><button type=\"button\" class=\"btn btn-ghost\" data-copy=\"")
	b.WriteString(esc(data.DonationLink))
	b.WriteString("\" data-copied-label=\"Copied!\">Copy</button></p></div>")

	if balance := FormatBalance(data.CryptoBalance); balance != "" {
		b.WriteString("<div class=\"card\"><h2>Crypto balance</h2><p class=\"balance\">")
		b.WriteString(esc(balance))
		b.WriteString(" USDT</p></div>")
	}

	b.WriteString("<div class=\"card\"><h2>Profile</h2><form method=\"post\" action=\"")
	b.WriteString(routepath.AccountProfile)
	b.WriteString("\" data-progress-form>")
	b.WriteString("<label>Email<input type=\"email\" value=\"")
	b.WriteString(esc(data.Email))
	b.WriteString("\" disabled></label>")
	b.WriteString("<label>Name<input type=\"text\" name=\"name\" value=\"")
	b.WriteString(esc(data.Name))
	b.WriteString("\"></label>")
	submitButton(&b, "Save", "Saving...")
	b.WriteString("</form></div></section>")
	return raw(b.String())
}

// PaymentRow is one crypto payment record, rendered in backend order.
type PaymentRow struct {
	Amount    float64
	Currency  string
	Status    string
	TxHash    string
	CreatedAt time.Time
}

// CardForm is the single editable card-info form. An empty ID means the
// submission creates a card; otherwise it updates that record.
type CardForm struct {
	ID     string
	Number string
	Holder string
}

// PaymentsData drives the panel payments page.
type PaymentsData struct {
	Payments   []PaymentRow
	Card       CardForm
	CardNotice string
	CardError  string
}

// Payments renders the payments tab: the crypto payment history and the
// card-info form.
func Payments(data PaymentsData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"panel\">")
	panelShell(&b, "payments")

	b.WriteString("<div class=\"card\"><h2>Crypto payments</h2>")
	if len(data.Payments) == 0 {
		b.WriteString("<p class=\"empty\">No payments yet.</p>")
	} else {
		b.WriteString("<table class=\"payments\"><thead><tr><th>Amount</th><th>Date</th><th>Status</th><th>Transaction</th></tr></thead><tbody>")
		for _, row := range data.Payments {
			b.WriteString("<tr><td>")
			b.WriteString(esc(FormatAmount(row.Amount, row.Currency)))
			b.WriteString("</td><td>")
			b.WriteString(esc(row.CreatedAt.Format("Jan 2, 2006 15:04")))
			b.WriteString("</td><td>")
			statusBadge(&b, row.Status)
			b.WriteString("</td><td>")
			if hash := strings.TrimSpace(row.TxHash); hash != "" {
				b.WriteString("<a href=\"")
				b.WriteString(esc(tronscanTxBase + hash))
				b.WriteString("\" target=\"_blank\" rel=\"noopener noreferrer\">View</a>")
			} else {
				b.WriteString("&mdash;")
			}
			b.WriteString("</td></tr>")
		}
		b.WriteString("</tbody></table>")
	}
	b.WriteString("</div>")

	b.WriteString("<div class=\"card\"><h2>Payment info</h2>")
	notice(&b, "success", data.CardNotice)
	inlineError(&b, data.CardError)
	b.WriteString("<form method=\"post\" action=\"")
	b.WriteString(routepath.AccountPayments)
	b.WriteString("\" data-progress-form>")
	if id := strings.TrimSpace(data.Card.ID); id != "" {
		b.WriteString("<input type=\"hidden\" name=\"cardID\" value=\"")
		b.WriteString(esc(id))
		b.WriteString("\">")
	}
	b.WriteString("<label>Card number<input type=\"text\" name=\"cardNumber\" value=\"")
	b.WriteString(esc(data.Card.Number))
	b.WriteString("\" inputmode=\"numeric\" pattern=\"[0-9]*\" maxlength=\"24\"></label>")
	b.WriteString("<label>Holder name<input type=\"text\" name=\"holderName\" value=\"")
	b.WriteString(esc(data.Card.Holder))
	b.WriteString("\"></label>")
	submitButton(&b, "Save card", "Saving...")
	b.WriteString("</form>")
	if strings.TrimSpace(data.Card.ID) != "" {
		b.WriteString("<a class=\"btn btn-ghost\" href=\"")
		b.WriteString(routepath.AccountPayments)
		b.WriteString("?new=1\">Add new card</a>")
	}
	b.WriteString("</div></section>")
	return raw(b.String())
}

func statusBadge(b *strings.Builder, status string) {
	status = strings.TrimSpace(status)
	if status == "" {
		status = "unknown"
	}
	b.WriteString("<span class=\"badge badge-")
	b.WriteString(esc(strings.ToLower(status)))
	b.WriteString("\">")
	b.WriteString(esc(status))
	b.WriteString("</span>")
}
