package inertia

import (
	"html/template"
	"maps"
	"slices"
	"strings"

	"go.inout.gg/foundations/must"
)

// DefaultRootViewID is the default ID of the HTML element the client-side
// runtime mounts on.
const DefaultRootViewID = "app"

//go:generate mockgen -destination internal/inertiamock/layout_mock.go -package inertiamock . Layout

// Layout produces the complete HTML document served on the initial page
// load. It receives the serialized page object and must embed it into the
// markup where the client runtime can read it back, typically via
// RootView.
//
// A Layout must not observe any request state beyond the page string it
// is given; the Renderer shares one Layout across all requests.
type Layout interface {
	Render(page string) (string, error)
}

// LayoutFunc adapts a plain function to the Layout interface.
type LayoutFunc func(page string) string

func (fn LayoutFunc) Render(page string) (string, error) { return fn(page), nil }

// RootView builds the mount element for the client runtime with the
// serialized page embedded in its data-page attribute, HTML-escaped for
// use inside the document.
//
// Extra attributes are emitted in sorted order; a data-page key among them
// is ignored.
func RootView(id string, page string, attrs map[string]string) template.HTML {
	var w strings.Builder

	_ = must.Must(w.WriteString(`<div id="`))
	template.HTMLEscape(&w, []byte(id))
	_ = must.Must(w.WriteString(`" data-page="`))
	template.HTMLEscape(&w, []byte(page))
	_ = must.Must(w.WriteRune('"'))

	for _, key := range slices.Sorted(maps.Keys(attrs)) {
		if key == "data-page" {
			continue
		}

		_ = must.Must(w.WriteRune(' '))
		_ = must.Must(w.WriteString(key))
		_ = must.Must(w.WriteString(`="`))
		template.HTMLEscape(&w, []byte(attrs[key]))
		_ = must.Must(w.WriteRune('"'))
	}

	_ = must.Must(w.WriteString(`></div>`))

	//nolint:gosec
	return template.HTML(w.String())
}
