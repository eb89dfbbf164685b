package panel

import (
	"net/http"

	"github.com/buymeapencil/web/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AccountProfile, h.handleProfilePage)
	mux.HandleFunc(http.MethodPost+" "+routepath.AccountProfile, h.handleProfileSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.AccountPayments, h.handlePaymentsPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.AccountPayments, h.handlePaymentsSubmit)
}
