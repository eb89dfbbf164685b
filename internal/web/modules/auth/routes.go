package auth

import (
	"net/http"

	"github.com/buymeapencil/web/internal/web/platform/httpx"
	"github.com/buymeapencil/web/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Account, h.handleSignInPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Account, h.handleSignInSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.AccountSignUp, h.handleSignUpPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.AccountSignUp, h.handleSignUpSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.AccountForgot, h.handleForgotPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.AccountForgot, h.handleForgotSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.AccountSignOut, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AccountSignOut, h.handleSignOut)
}
