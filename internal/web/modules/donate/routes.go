package donate

import (
	"net/http"

	"github.com/buymeapencil/web/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.DonateQR, h.handleQRImage)
	mux.HandleFunc(http.MethodGet+" "+routepath.DonateCreatorPattern, h.handleDonatePage)
	mux.HandleFunc(http.MethodPost+" "+routepath.DonateCreatorPattern, h.handleDonateSubmit)
	mux.HandleFunc(routepath.DonatePrefix, h.writeCreatorNotFound)
}
