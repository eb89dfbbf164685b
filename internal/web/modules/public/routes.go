package public

import (
	"net/http"

	"github.com/buymeapencil/web/internal/web/platform/httpx"
	"github.com/buymeapencil/web/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.Home, h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.Success, h.handleSuccess)
	mux.HandleFunc(http.MethodGet+" "+routepath.Failed, h.handleFailed)
	mux.HandleFunc(http.MethodGet+" "+routepath.Pay, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.Pay, h.handlePay)
	mux.HandleFunc(routepath.Root, h.writeNotFound)
}
