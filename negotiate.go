package inertia

import "net/http"

// payloadKind selects the body format of a successful response.
type payloadKind int

const (
	payloadDocument payloadKind = iota // full HTML document
	payloadJSON                        // bare page object
)

// outcome is the negotiated shape of the response for one request cycle.
// Either conflict is set, carrying the location the client must hard-visit,
// or kind names the payload to proceed with.
type outcome struct {
	location string
	kind     payloadKind
	conflict bool
}

// negotiate decides how to answer req given the server's current asset
// version (empty when the server carries none).
//
// The version check is limited to GET navigations: a mutation issued by a
// stale client must still complete rather than be silently redirected, and
// the follow-up GET reconciles the client. Comparison is strict string
// inequality, so a client that sent no version conflicts with a server
// that holds one.
func negotiate(req request, version string) outcome {
	if req.inertia && req.method == http.MethodGet &&
		version != "" && req.version != version {
		return outcome{conflict: true, location: req.path}
	}

	if req.inertia {
		return outcome{kind: payloadJSON}
	}

	return outcome{kind: payloadDocument}
}
