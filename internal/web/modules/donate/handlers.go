package donate

import (
	"log"
	"net/http"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/buymeapencil/web/internal/web/platform/lang"
	"github.com/buymeapencil/web/internal/web/templates"
)

// qrImageSize is the rendered QR edge length in pixels.
const qrImageSize = 220

// maxQRPayload caps the data accepted by the QR endpoint.
const maxQRPayload = 256

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

// handleDonatePage renders the amount-selection form for a creator. A
// fresh GET never shows a previously issued offer; offers are single-use
// and render only on the POST that created them.
func (h handlers) handleDonatePage(w http.ResponseWriter, r *http.Request) {
	creator, err := h.service.creator(r.Context(), r.PathValue("creatorID"))
	if err != nil {
		h.writeCreatorNotFound(w, r)
		return
	}
	pc := templates.PageContext{Lang: lang.Resolve(r), Title: "Donate to " + creator.Name}
	templates.WritePage(w, r, http.StatusOK, pc, templates.Donate(templates.DonateData{
		CreatorID:   creator.ID,
		CreatorName: creator.Name,
	}))
}

// handleDonateSubmit runs the crypto rail: validate the amount, request a
// deposit offer, and render it. Failures re-render the amount form with
// the inline error.
func (h handlers) handleDonateSubmit(w http.ResponseWriter, r *http.Request) {
	creator, err := h.service.creator(r.Context(), r.PathValue("creatorID"))
	if err != nil {
		h.writeCreatorNotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.writeDonateError(w, r, creator.ID, creator.Name, "", "Please enter an amount of at least $0.01.")
		return
	}
	amount := r.PostFormValue("amount")

	offer, err := h.service.createOffer(r.Context(), creator.ID, amount)
	if err != nil {
		h.writeDonateError(w, r, creator.ID, creator.Name, amount, err.Error())
		return
	}

	pc := templates.PageContext{Lang: lang.Resolve(r), Title: "Send your donation"}
	templates.WritePage(w, r, http.StatusOK, pc, templates.DepositOffer(templates.DepositOfferData{
		CreatorID:    creator.ID,
		Address:      offer.Address,
		AmountCrypto: offer.AmountCrypto,
		Currency:     offer.Currency,
		Network:      offer.Network,
		ExpiresAt:    offer.ExpiresAt,
	}))
}

// handleQRImage renders a PNG QR code for the supplied payload, used for
// deposit addresses.
func (h handlers) handleQRImage(w http.ResponseWriter, r *http.Request) {
	data := strings.TrimSpace(r.URL.Query().Get("data"))
	if data == "" || len(data) > maxQRPayload {
		http.Error(w, "invalid qr payload", http.StatusBadRequest)
		return
	}

	png, err := qrcode.Encode(data, qrcode.Medium, qrImageSize)
	if err != nil {
		log.Printf("encode qr: %v", err)
		http.Error(w, "qr encoding failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(png); err != nil {
		log.Printf("write qr: %v", err)
	}
}

func (h handlers) writeDonateError(w http.ResponseWriter, r *http.Request, creatorID, creatorName, amount, message string) {
	pc := templates.PageContext{Lang: lang.Resolve(r), Title: "Donate to " + creatorName}
	templates.WritePage(w, r, http.StatusOK, pc, templates.Donate(templates.DonateData{
		CreatorID:   creatorID,
		CreatorName: creatorName,
		Amount:      amount,
		Error:       message,
	}))
}

func (h handlers) writeCreatorNotFound(w http.ResponseWriter, r *http.Request) {
	pc := templates.PageContext{Lang: lang.Resolve(r), Title: "Creator not found"}
	templates.WritePage(w, r, http.StatusNotFound, pc, templates.CreatorNotFound())
}
