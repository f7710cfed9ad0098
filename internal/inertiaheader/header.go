// Package inertiaheader declares the header names and media types fixed
// by the Inertia.js wire protocol.
package inertiaheader

const (
	HeaderXInertia                 = "X-Inertia"                   // client marker / server echo
	HeaderXInertiaVersion          = "X-Inertia-Version"           // client's asset version / server echo
	HeaderXInertiaLocation         = "X-Inertia-Location"          // server, hard-visit URL on 409
	HeaderXInertiaPartialData      = "X-Inertia-Partial-Data"      // client, prop whitelist
	HeaderXInertiaPartialExcept    = "X-Inertia-Partial-Except"    // client, prop blacklist
	HeaderXInertiaPartialComponent = "X-Inertia-Partial-Component" // client, partial reload target
	HeaderXInertiaErrorBag         = "X-Inertia-Error-Bag"         // client, validation error scope

	HeaderVary        = "Vary"
	HeaderContentType = "Content-Type"
	HeaderLocation    = "Location"
	HeaderReferer     = "Referer"
)

const (
	ContentTypeHTML = "text/html"
	ContentTypeJSON = "application/json"
)
