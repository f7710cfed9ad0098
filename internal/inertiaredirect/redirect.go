// Package inertiaredirect implements the redirect rules of the Inertia.js
// protocol: https://inertiajs.com/redirects
package inertiaredirect

import (
	"net/http"
	"slices"

	"go.inout.gg/foundations/debug"
)

//nolint:gochecknoglobals
var d = debug.Debuglog("inertia/redirect")

// SeeOtherMethods lists the HTTP methods whose redirects must use
// 303 See Other so the client re-requests the target with GET.
//
// https://inertiajs.com/redirects#303-response-code
//
//nolint:gochecknoglobals
var SeeOtherMethods = []string{http.MethodPut, http.MethodPatch, http.MethodDelete}

// Redirect redirects the client to the specified URL, picking the status
// code the protocol mandates for the request method.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	statusCode := http.StatusFound
	if slices.Contains(SeeOtherMethods, r.Method) {
		statusCode = http.StatusSeeOther
	}

	d("redirecting to %s with status code %d", url, statusCode)

	http.Redirect(w, r, url, statusCode)
}
