// Package inertia implements the server side of the Inertia.js protocol
// on top of the standard "net/http" package.
//
// An application renders pages through a Renderer: ordinary browser
// navigations receive a full HTML document with the serialized page
// embedded in it, while requests made by the client-side runtime receive
// the bare page object as JSON. The package also performs the protocol's
// asset-versioning handshake, telling stale clients to make a fresh
// full-page visit.
//
// For detailed protocol documentation, visit https://inertiajs.com/the-protocol
package inertia

import "go.inout.gg/foundations/debug"

//nolint:gochecknoglobals
var d = debug.Debuglog("inertia")
