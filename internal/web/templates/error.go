package templates

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/buymeapencil/web/internal/web/routepath"
)

// ErrorPage renders a bare error page for unrecoverable request failures.
// Form-level failures render inline instead; this is for routing dead ends
// and handler panics.
func ErrorPage(statusCode int) templ.Component {
	heading := "Something went wrong"
	message := "An unexpected error occurred. Please try again."
	if statusCode == http.StatusNotFound {
		heading = "Page not found"
		message = "The page you are looking for does not exist."
	}

	var b strings.Builder
	b.WriteString("<section class=\"card result-card\"><h1>")
	b.WriteString(heading)
	b.WriteString("</h1><p>")
	b.WriteString(message)
	b.WriteString("</p><a class=\"btn btn-primary\" href=\"")
	b.WriteString(routepath.Root)
	b.WriteString("\">Back to home</a></section>")
	return raw(b.String())
}
