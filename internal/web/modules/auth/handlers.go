package auth

import (
	"log"
	"net/http"

	"github.com/buymeapencil/web/internal/web/platform/flash"
	"github.com/buymeapencil/web/internal/web/platform/httpx"
	"github.com/buymeapencil/web/internal/web/platform/lang"
	"github.com/buymeapencil/web/internal/web/platform/requestmeta"
	"github.com/buymeapencil/web/internal/web/routepath"
	"github.com/buymeapencil/web/internal/web/session"
	"github.com/buymeapencil/web/internal/web/templates"
)

type handlers struct {
	service  service
	sessions *session.Manager
	policy   requestmeta.SchemePolicy
}

func newHandlers(s service, sessions *session.Manager, policy requestmeta.SchemePolicy) handlers {
	return handlers{service: s, sessions: sessions, policy: policy}
}

func (h handlers) pageContext(r *http.Request, title string) templates.PageContext {
	return templates.PageContext{Lang: lang.Resolve(r), Title: title}
}

// handleSignInPage renders the account entry point. A stored session is
// re-validated against the backend; on any failure the session is
// terminated and the anonymous form is shown instead.
func (h handlers) handleSignInPage(w http.ResponseWriter, r *http.Request) {
	notice, hasNotice := flash.ReadAndClear(w, r)

	if token, ok, err := h.sessions.Resolve(r); err == nil && ok {
		account, err := h.service.account(r.Context(), token)
		if err == nil {
			templates.WritePage(w, r, http.StatusOK, h.pageContext(r, "Your account"),
				templates.Welcome(templates.WelcomeData{Name: account.Name}))
			return
		}
		if terminateErr := h.sessions.Terminate(w, r); terminateErr != nil {
			log.Printf("terminate stale session: %v", terminateErr)
		}
	}

	data := templates.SignInData{}
	if hasNotice {
		data.BannerKind = string(notice.Kind)
		data.BannerNotice = notice.Message
	}
	h.writeSignIn(w, r, http.StatusOK, data)
}

func (h handlers) handleSignInSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeSignIn(w, r, http.StatusOK, templates.SignInData{Error: "Please enter email and password."})
		return
	}

	email := r.PostFormValue("email")
	token, err := h.service.signIn(r.Context(), email, r.PostFormValue("password"))
	if err != nil {
		h.writeSignIn(w, r, http.StatusOK, templates.SignInData{Email: email, Error: err.Error()})
		return
	}
	if err := h.sessions.Establish(w, r, token); err != nil {
		log.Printf("establish session: %v", err)
		h.writeSignIn(w, r, http.StatusOK, templates.SignInData{Email: email, Error: "Something went wrong. Please try again."})
		return
	}
	httpx.WriteRedirect(w, r, routepath.AccountProfile)
}

func (h handlers) handleSignUpPage(w http.ResponseWriter, r *http.Request) {
	h.writeSignUpEmail(w, r, templates.SignUpEmailData{})
}

// handleSignUpSubmit advances the sign-up flow. The step field selects
// between requesting a code and completing verification; the email rides
// along in a hidden field between steps.
func (h handlers) handleSignUpSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeSignUpEmail(w, r, templates.SignUpEmailData{Error: "Please enter your email."})
		return
	}

	email := r.PostFormValue("email")
	switch r.PostFormValue("step") {
	case "verify":
		token, err := h.service.verifySignUp(r.Context(), email,
			r.PostFormValue("code"), r.PostFormValue("name"), r.PostFormValue("password"))
		if err != nil {
			h.writeSignUpVerify(w, r, templates.SignUpVerifyData{Email: email, Error: err.Error()})
			return
		}
		if err := h.sessions.Establish(w, r, token); err != nil {
			log.Printf("establish session: %v", err)
			h.writeSignUpVerify(w, r, templates.SignUpVerifyData{Email: email, Error: "Something went wrong. Please try again."})
			return
		}
		httpx.WriteRedirect(w, r, routepath.AccountProfile)
	default:
		message, err := h.service.requestSignUpOTP(r.Context(), email)
		if err != nil {
			h.writeSignUpEmail(w, r, templates.SignUpEmailData{Email: email, Error: err.Error()})
			return
		}
		h.writeSignUpVerify(w, r, templates.SignUpVerifyData{Email: email, Message: message})
	}
}

func (h handlers) handleForgotPage(w http.ResponseWriter, r *http.Request) {
	h.writeForgotEmail(w, r, templates.ForgotEmailData{})
}

// handleForgotSubmit advances the password-reset flow. A completed reset
// leaves a one-shot success notice and returns to sign-in.
func (h handlers) handleForgotSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeForgotEmail(w, r, templates.ForgotEmailData{Error: "Please enter your email."})
		return
	}

	email := r.PostFormValue("email")
	switch r.PostFormValue("step") {
	case "reset":
		_, err := h.service.resetPassword(r.Context(), email,
			r.PostFormValue("code"), r.PostFormValue("password"), r.PostFormValue("confirm"))
		if err != nil {
			h.writeForgotReset(w, r, templates.ForgotResetData{Email: email, Error: err.Error()})
			return
		}
		flash.WriteWithPolicy(w, r, flash.NoticeSuccess("Password reset. Sign in with your new password."), h.policy)
		httpx.WriteRedirect(w, r, routepath.Account)
	default:
		message, err := h.service.requestPasswordResetOTP(r.Context(), email)
		if err != nil {
			h.writeForgotEmail(w, r, templates.ForgotEmailData{Email: email, Error: err.Error()})
			return
		}
		h.writeForgotReset(w, r, templates.ForgotResetData{Email: email, Message: message})
	}
}

func (h handlers) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Terminate(w, r); err != nil {
		log.Printf("terminate session: %v", err)
	}
	httpx.WriteRedirect(w, r, routepath.Account)
}

func (h handlers) writeSignIn(w http.ResponseWriter, r *http.Request, status int, data templates.SignInData) {
	templates.WritePage(w, r, status, h.pageContext(r, "Sign in"), templates.SignIn(data))
}

func (h handlers) writeSignUpEmail(w http.ResponseWriter, r *http.Request, data templates.SignUpEmailData) {
	templates.WritePage(w, r, http.StatusOK, h.pageContext(r, "Create an account"), templates.SignUpEmail(data))
}

func (h handlers) writeSignUpVerify(w http.ResponseWriter, r *http.Request, data templates.SignUpVerifyData) {
	templates.WritePage(w, r, http.StatusOK, h.pageContext(r, "Check your email"), templates.SignUpVerify(data))
}

func (h handlers) writeForgotEmail(w http.ResponseWriter, r *http.Request, data templates.ForgotEmailData) {
	templates.WritePage(w, r, http.StatusOK, h.pageContext(r, "Forgot password"), templates.ForgotEmail(data))
}

func (h handlers) writeForgotReset(w http.ResponseWriter, r *http.Request, data templates.ForgotResetData) {
	templates.WritePage(w, r, http.StatusOK, h.pageContext(r, "Reset password"), templates.ForgotReset(data))
}
