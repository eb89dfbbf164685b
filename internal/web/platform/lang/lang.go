// Package lang resolves the document language for a request.
package lang

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English,
	language.Persian,
}

var matcher = language.NewMatcher(supported)

// Resolve returns the best supported language for the request's
// Accept-Language header, defaulting to English.
func Resolve(r *http.Request) string {
	if r == nil {
		return supported[0].String()
	}
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return supported[0].String()
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return supported[0].String()
	}
	_, index, _ := matcher.Match(tags...)
	return supported[index].String()
}
