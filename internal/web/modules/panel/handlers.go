package panel

import (
	"log"
	"net/http"
	"strings"

	"github.com/buymeapencil/web/internal/web/backend"
	"github.com/buymeapencil/web/internal/web/platform/httpx"
	"github.com/buymeapencil/web/internal/web/platform/lang"
	"github.com/buymeapencil/web/internal/web/platform/requestmeta"
	"github.com/buymeapencil/web/internal/web/routepath"
	"github.com/buymeapencil/web/internal/web/session"
	"github.com/buymeapencil/web/internal/web/templates"
)

type handlers struct {
	service    service
	sessions   *session.Manager
	policy     requestmeta.SchemePolicy
	appBaseURL string
}

func newHandlers(s service, sessions *session.Manager, policy requestmeta.SchemePolicy, appBaseURL string) handlers {
	return handlers{service: s, sessions: sessions, policy: policy, appBaseURL: strings.TrimRight(appBaseURL, "/")}
}

// requireAccount gates a panel request. It resolves the stored session and
// validates it against the backend; on any failure the session is
// terminated and the browser returns to sign-in. The failure itself is
// not surfaced.
func (h handlers) requireAccount(w http.ResponseWriter, r *http.Request) (string, backend.Account, bool) {
	token, ok, err := h.sessions.Resolve(r)
	if err != nil {
		log.Printf("resolve session: %v", err)
	}
	if err != nil || !ok {
		httpx.WriteRedirect(w, r, routepath.Account)
		return "", backend.Account{}, false
	}

	account, err := h.service.account(r.Context(), token)
	if err != nil {
		if terminateErr := h.sessions.Terminate(w, r); terminateErr != nil {
			log.Printf("terminate stale session: %v", terminateErr)
		}
		httpx.WriteRedirect(w, r, routepath.Account)
		return "", backend.Account{}, false
	}
	return token, account, true
}

// donationLink builds the shareable donation URL for an account.
func (h handlers) donationLink(r *http.Request, accountID string) string {
	base := h.appBaseURL
	if base == "" {
		base = requestmeta.BaseURL(r, h.policy)
	}
	return base + routepath.Donate(accountID)
}

func (h handlers) handleProfilePage(w http.ResponseWriter, r *http.Request) {
	_, account, ok := h.requireAccount(w, r)
	if !ok {
		return
	}
	h.writeProfile(w, r, account, "", "")
}

func (h handlers) handleProfileSubmit(w http.ResponseWriter, r *http.Request) {
	token, account, ok := h.requireAccount(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeProfile(w, r, account, "", "Please enter your name.")
		return
	}

	updated, err := h.service.updateName(r.Context(), token, r.PostFormValue("name"))
	if err != nil {
		h.writeProfile(w, r, account, "", err.Error())
		return
	}
	h.writeProfile(w, r, updated, "Profile updated.", "")
}

func (h handlers) handlePaymentsPage(w http.ResponseWriter, r *http.Request) {
	token, _, ok := h.requireAccount(w, r)
	if !ok {
		return
	}

	data := h.paymentsData(r, token)
	if r.URL.Query().Get("new") != "" {
		data.Card = templates.CardForm{}
	}
	h.writePayments(w, r, data)
}

func (h handlers) handlePaymentsSubmit(w http.ResponseWriter, r *http.Request) {
	token, _, ok := h.requireAccount(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		data := h.paymentsData(r, token)
		data.CardError = "Please fill in all fields."
		h.writePayments(w, r, data)
		return
	}

	form := templates.CardForm{
		ID:     r.PostFormValue("cardID"),
		Number: r.PostFormValue("cardNumber"),
		Holder: r.PostFormValue("holderName"),
	}
	card, err := h.service.saveCard(r.Context(), token, form.ID, form.Number, form.Holder)
	if err != nil {
		data := h.paymentsData(r, token)
		data.Card = form
		data.CardError = err.Error()
		h.writePayments(w, r, data)
		return
	}

	data := h.paymentsData(r, token)
	data.Card = templates.CardForm{ID: card.ID, Number: card.CardNumber, Holder: card.HolderName}
	data.CardNotice = "Card saved."
	h.writePayments(w, r, data)
}

// paymentsData assembles the payments tab from the backend, degrading to
// empty sections on load failures.
func (h handlers) paymentsData(r *http.Request, token string) templates.PaymentsData {
	var data templates.PaymentsData
	for _, item := range h.service.payments(r.Context(), token) {
		data.Payments = append(data.Payments, templates.PaymentRow{
			Amount:    item.Amount,
			Currency:  item.Currency,
			Status:    item.Status,
			TxHash:    item.TxHash,
			CreatedAt: item.CreatedAt,
		})
	}
	if card, ok := h.service.firstCard(r.Context(), token); ok {
		data.Card = templates.CardForm{ID: card.ID, Number: card.CardNumber, Holder: card.HolderName}
	}
	return data
}

func (h handlers) writeProfile(w http.ResponseWriter, r *http.Request, account backend.Account, notice, inlineError string) {
	pc := templates.PageContext{Lang: lang.Resolve(r), Title: "Your panel"}
	templates.WritePage(w, r, http.StatusOK, pc, templates.Profile(templates.ProfileData{
		Email:         account.Email,
		Name:          account.Name,
		DonationLink:  h.donationLink(r, account.ID),
		CryptoBalance: account.CryptoBalance,
		Notice:        notice,
		Error:         inlineError,
	}))
}

func (h handlers) writePayments(w http.ResponseWriter, r *http.Request, data templates.PaymentsData) {
	pc := templates.PageContext{Lang: lang.Resolve(r), Title: "Payments"}
	templates.WritePage(w, r, http.StatusOK, pc, templates.Payments(data))
}
