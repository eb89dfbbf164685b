package public

import (
	"net/http"

	"github.com/buymeapencil/web/internal/web/platform/httpx"
	"github.com/buymeapencil/web/internal/web/platform/lang"
	"github.com/buymeapencil/web/internal/web/templates"
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	pc := templates.PageContext{Lang: lang.Resolve(r)}
	templates.WritePage(w, r, http.StatusOK, pc, templates.Home(templates.HomeData{}))
}

func (h handlers) handleSuccess(w http.ResponseWriter, r *http.Request) {
	pc := templates.PageContext{Lang: lang.Resolve(r), Title: "Thank you"}
	templates.WritePage(w, r, http.StatusOK, pc, templates.PaymentSuccess())
}

func (h handlers) handleFailed(w http.ResponseWriter, r *http.Request) {
	pc := templates.PageContext{Lang: lang.Resolve(r), Title: "Payment unsuccessful"}
	templates.WritePage(w, r, http.StatusOK, pc, templates.PaymentFailed())
}

// handlePay runs the fiat rail: validate, request a checkout session, and
// redirect the browser to the provider. Failures re-render the landing
// page with the donation dialog open and the inline error set.
func (h handlers) handlePay(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeHomeError(w, r, templates.HomeData{Error: "Please enter a valid amount.", OpenModal: true})
		return
	}

	req := checkoutRequest{
		Amount:   r.PostFormValue("amount"),
		UserName: r.PostFormValue("userName"),
		Message:  r.PostFormValue("message"),
	}
	checkoutURL, err := h.service.createCheckout(r.Context(), req)
	if err != nil {
		h.writeHomeError(w, r, templates.HomeData{
			Amount:    req.Amount,
			UserName:  req.UserName,
			Message:   req.Message,
			Error:     err.Error(),
			OpenModal: true,
		})
		return
	}
	httpx.WriteRedirect(w, r, checkoutURL)
}

func (h handlers) writeHomeError(w http.ResponseWriter, r *http.Request, data templates.HomeData) {
	pc := templates.PageContext{Lang: lang.Resolve(r)}
	templates.WritePage(w, r, http.StatusOK, pc, templates.Home(data))
}

// writeNotFound renders the shared not-found page for unmatched root paths.
func (h handlers) writeNotFound(w http.ResponseWriter, r *http.Request) {
	pc := templates.PageContext{Lang: lang.Resolve(r), Title: "Page not found"}
	templates.WritePage(w, r, http.StatusNotFound, pc, templates.ErrorPage(http.StatusNotFound))
}
