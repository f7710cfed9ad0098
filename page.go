package inertia

// Page is the unit of exchange between server and client: which component
// to mount, with which props, at which URL, built against which asset
// version.
//
// Its JSON form is fixed by the protocol to exactly these four keys.
// Version is null when the server holds no asset version (development
// mode).
type Page struct {
	Component string         `json:"component"`
	Props     map[string]any `json:"props"`
	URL       string         `json:"url"`
	Version   *string        `json:"version"`
}
