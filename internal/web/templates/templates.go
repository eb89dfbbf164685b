// Package templates holds the HTML views for the web service as
// templ.Component values. Components are stateless: every page receives a
// fully-resolved data struct and renders it without reaching for request
// state.
package templates

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// AppName is the product name rendered in layout chrome.
const AppName = "Buy me a pencil"

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang  string
	Title string
}

func (pc PageContext) lang() string {
	if strings.TrimSpace(pc.Lang) == "" {
		return "en"
	}
	return pc.Lang
}

func (pc PageContext) title() string {
	if strings.TrimSpace(pc.Title) == "" {
		return AppName
	}
	return pc.Title + " · " + AppName
}

// Layout wraps a body component in the shared document chrome.
func Layout(pc PageContext, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html><html lang=\"")
		b.WriteString(templ.EscapeString(pc.lang()))
		b.WriteString("\"><head><meta charset=\"utf-8\">")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		b.WriteString("<title>")
		b.WriteString(templ.EscapeString(pc.title()))
		b.WriteString("</title>")
		b.WriteString("<link rel=\"preconnect\" href=\"https://fonts.googleapis.com\">")
		b.WriteString("<link rel=\"stylesheet\" href=\"https://fonts.googleapis.com/css2?family=Caveat:wght@400..700&family=Inter:wght@400;500;600&display=swap\">")
		b.WriteString("<link rel=\"stylesheet\" href=\"/static/styles.css\">")
		b.WriteString("</head><body><div class=\"grain\" aria-hidden=\"true\"></div><main class=\"page\">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</main><script src=\"/static/app.js\" defer></script></body></html>")
		return err
	})
}

// WritePage renders a body component inside the shared layout with the
// given HTTP status.
func WritePage(w http.ResponseWriter, r *http.Request, status int, pc PageContext, body templ.Component) {
	templ.Handler(Layout(pc, body), templ.WithStatus(status)).ServeHTTP(w, r)
}

// raw returns a component that writes pre-built markup verbatim. Callers
// escape all interpolated values before handing markup to raw.
func raw(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// inlineError renders the single inline form error, or nothing.
func inlineError(b *strings.Builder, message string) {
	if strings.TrimSpace(message) == "" {
		return
	}
	b.WriteString("<p class=\"form-error\" role=\"alert\">")
	b.WriteString(esc(message))
	b.WriteString("</p>")
}

// notice renders a success/info banner paragraph, or nothing.
func notice(b *strings.Builder, kind, message string) {
	if strings.TrimSpace(message) == "" {
		return
	}
	if strings.TrimSpace(kind) == "" {
		kind = "info"
	}
	b.WriteString("<p class=\"notice notice-")
	b.WriteString(esc(kind))
	b.WriteString("\">")
	b.WriteString(esc(message))
	b.WriteString("</p>")
}

// submitButton renders a submit control whose label is swapped for the
// progress label while the form is in flight.
func submitButton(b *strings.Builder, label, progressLabel string) {
	b.WriteString("<button type=\"submit\" class=\"btn btn-primary\" data-progress-label=\"")
	b.WriteString(esc(progressLabel))
	b.WriteString("\">")
	b.WriteString(esc(label))
	b.WriteString("</button>")
}
