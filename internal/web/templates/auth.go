package templates

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/buymeapencil/web/internal/web/routepath"
)

// SignInData drives the anonymous sign-in page.
type SignInData struct {
	Email        string
	Error        string
	BannerKind   string
	BannerNotice string
}

// SignIn renders the sign-in form with an optional one-shot banner.
func SignIn(data SignInData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"card auth-card\"><h1>Sign in</h1>")
	notice(&b, data.BannerKind, data.BannerNotice)
	inlineError(&b, data.Error)
	b.WriteString("<form method=\"post\" action=\"")
	b.WriteString(routepath.Account)
	b.WriteString("\" data-progress-form>")
	b.WriteString("<label>Email<input type=\"email\" name=\"email\" value=\"")
	b.WriteString(esc(data.Email))
	b.WriteString("\" autocomplete=\"email\"></label>")
	b.WriteString("<label>Password<input type=\"password\" name=\"password\" autocomplete=\"current-password\"></label>")
	submitButton(&b, "Sign in", "Signing in...")
	b.WriteString("</form><nav class=\"auth-links\"><a href=\"")
	b.WriteString(routepath.AccountSignUp)
	b.WriteString("\">Create an account</a><a href=\"")
	b.WriteString(routepath.AccountForgot)
	b.WriteString("\">Forgot password?</a></nav></section>")
	return raw(b.String())
}

// WelcomeData drives the authenticated view of the sign-in route.
type WelcomeData struct {
	Name string
}

// Welcome renders the signed-in account landing with sign-out.
func Welcome(data WelcomeData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"card auth-card\"><h1>Welcome back")
	if name := strings.TrimSpace(data.Name); name != "" {
		b.WriteString(", ")
		b.WriteString(esc(name))
	}
	b.WriteString("</h1><nav class=\"auth-links\"><a href=\"")
	b.WriteString(routepath.AccountProfile)
	b.WriteString("\">Go to your panel</a></nav>")
	b.WriteString("<form method=\"post\" action=\"")
	b.WriteString(routepath.AccountSignOut)
	b.WriteString("\"><button type=\"submit\" class=\"btn btn-ghost\">Sign out</button></form></section>")
	return raw(b.String())
}

// SignUpEmailData drives the first sign-up step.
type SignUpEmailData struct {
	Email string
	Error string
}

// SignUpEmail renders the email-collection step of sign-up.
func SignUpEmail(data SignUpEmailData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"card auth-card\"><h1>Create an account</h1>")
	inlineError(&b, data.Error)
	b.WriteString("<form method=\"post\" action=\"")
	b.WriteString(routepath.AccountSignUp)
	b.WriteString("\" data-progress-form>")
	b.WriteString("<input type=\"hidden\" name=\"step\" value=\"request-otp\">")
	b.WriteString("<label>Email<input type=\"email\" name=\"email\" value=\"")
	b.WriteString(esc(data.Email))
	b.WriteString("\" autocomplete=\"email\"></label>")
	submitButton(&b, "Send code", "Sending...")
	b.WriteString("</form><nav class=\"auth-links\"><a href=\"")
	b.WriteString(routepath.Account)
	b.WriteString("\">Back to sign in</a></nav></section>")
	return raw(b.String())
}

// SignUpVerifyData drives the second sign-up step.
type SignUpVerifyData struct {
	Email   string
	Message string
	Error   string
}

// SignUpVerify renders the code/name/password step of sign-up. The email
// travels in a hidden field; "Use a different email" discards the step.
func SignUpVerify(data SignUpVerifyData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"card auth-card\"><h1>Check your email</h1>")
	notice(&b, "info", data.Message)
	inlineError(&b, data.Error)
	b.WriteString("<form method=\"post\" action=\"")
	b.WriteString(routepath.AccountSignUp)
	b.WriteString("\" data-progress-form>")
	b.WriteString("<input type=\"hidden\" name=\"step\" value=\"verify\">")
	b.WriteString("<input type=\"hidden\" name=\"email\" value=\"")
	b.WriteString(esc(data.Email))
	b.WriteString("\">")
	b.WriteString("<label>Verification code<input type=\"text\" name=\"code\" inputmode=\"numeric\" autocomplete=\"one-time-code\"></label>")
	b.WriteString("<label>Name<input type=\"text\" name=\"name\" autocomplete=\"name\"></label>")
	b.WriteString("<label>Password<input type=\"password\" name=\"password\" minlength=\"8\" autocomplete=\"new-password\"></label>")
	submitButton(&b, "Create account", "Creating...")
	b.WriteString("</form><nav class=\"auth-links\"><a href=\"")
	b.WriteString(routepath.AccountSignUp)
	b.WriteString("\">Use a different email</a></nav></section>")
	return raw(b.String())
}

// ForgotEmailData drives the first password-reset step.
type ForgotEmailData struct {
	Email string
	Error string
}

// ForgotEmail renders the email-collection step of password reset.
func ForgotEmail(data ForgotEmailData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"card auth-card\"><h1>Forgot password</h1>")
	inlineError(&b, data.Error)
	b.WriteString("<form method=\"post\" action=\"")
	b.WriteString(routepath.AccountForgot)
	b.WriteString("\" data-progress-form>")
	b.WriteString("<input type=\"hidden\" name=\"step\" value=\"request-otp\">")
	b.WriteString("<label>Email<input type=\"email\" name=\"email\" value=\"")
	b.WriteString(esc(data.Email))
	b.WriteString("\" autocomplete=\"email\"></label>")
	submitButton(&b, "Send code", "Sending...")
	b.WriteString("</form><nav class=\"auth-links\"><a href=\"")
	b.WriteString(routepath.Account)
	b.WriteString("\">Back to sign in</a></nav></section>")
	return raw(b.String())
}

// ForgotResetData drives the second password-reset step.
type ForgotResetData struct {
	Email   string
	Message string
	Error   string
}

// ForgotReset renders the code/new-password step of password reset.
func ForgotReset(data ForgotResetData) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"card auth-card\"><h1>Reset password</h1>")
	notice(&b, "info", data.Message)
	inlineError(&b, data.Error)
	b.WriteString("<form method=\"post\" action=\"")
	b.WriteString(routepath.AccountForgot)
	b.WriteString("\" data-progress-form>")
	b.WriteString("<input type=\"hidden\" name=\"step\" value=\"reset\">")
	b.WriteString("<input type=\"hidden\" name=\"email\" value=\"")
	b.WriteString(esc(data.Email))
	b.WriteString("\">")
	b.WriteString("<label>Verification code<input type=\"text\" name=\"code\" inputmode=\"numeric\" autocomplete=\"one-time-code\"></label>")
	b.WriteString("<label>New password<input type=\"password\" name=\"password\" minlength=\"8\" autocomplete=\"new-password\"></label>")
	b.WriteString("<label>Confirm new password<input type=\"password\" name=\"confirm\" minlength=\"8\" autocomplete=\"new-password\"></label>")
	submitButton(&b, "Reset password", "Resetting...")
	b.WriteString("</form><nav class=\"auth-links\"><a href=\"")
	b.WriteString(routepath.AccountSignUp)
	b.WriteString("\">Use a different email</a></nav></section>")
	return raw(b.String())
}
