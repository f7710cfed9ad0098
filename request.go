package inertia

import (
	"net/http"
	"strings"

	"github.com/hakanersu/inertia-go/internal/inertiaheader"
)

// request captures the protocol-relevant parts of an inbound HTTP request.
//
// It is built once per negotiation and never mutated afterwards.
type request struct {
	method  string
	path    string // URL path only, the hard-visit target on version conflict
	url     string // literal path plus query as received, synced to browser history
	version string // client's last-known asset version, empty when not sent
	inertia bool   // request was made by the client-side runtime
}

// classifyRequest reads the protocol headers off r.
//
// Absence of every protocol header is the common case: an ordinary
// first-load browser navigation.
func classifyRequest(r *http.Request) request {
	return request{
		method:  r.Method,
		path:    r.URL.Path,
		url:     r.RequestURI,
		version: r.Header.Get(inertiaheader.HeaderXInertiaVersion),
		inertia: isInertiaRequest(r),
	}
}

// isInertiaRequest checks if the request is made by Inertia.js.
func isInertiaRequest(r *http.Request) bool {
	return r.Header.Get(inertiaheader.HeaderXInertia) == "true"
}

// isPartialRequest checks if the request is a partial reload of the
// component being rendered. Partial reloads against a different component
// are treated as full renders.
func isPartialRequest(r *http.Request, componentName string) bool {
	return r.Header.Get(inertiaheader.HeaderXInertiaPartialComponent) == componentName
}

// headerValueList splits a comma-separated header value into its fields.
func headerValueList(h string) []string {
	if h == "" {
		return nil
	}

	fields := strings.Split(h, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	return fields
}
