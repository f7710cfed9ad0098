// Package vite provides a minimal integration for Vite.
// It builds Inertia document layouts for both the Vite dev server and
// production bundles declared in the Vite build manifest, and derives
// the asset version from the manifest content.
package vite

import (
	"cmp"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"go.inout.gg/foundations/must"

	inertia "github.com/hakanersu/inertia-go"
)

const (
	DefaultViteAddress = "http://localhost:5173"
	DefaultMain        = "src/main.ts"
	DefaultLang        = "en"
	DefaultTitle       = "Vite"
)

// Config configures the generated document layout.
type Config struct {
	// RootViewAttrs are extra HTML attributes applied to the root element.
	RootViewAttrs map[string]string

	// Address is the origin the Vite dev server listens on.
	//
	// Defaults to "http://localhost:5173".
	Address string

	// Main is the application entry point as named in the Vite config.
	//
	// Defaults to "src/main.ts".
	Main string

	// Lang is the document language code.
	Lang string

	// Title is the document title.
	Title string

	// RootViewID is the HTML element ID where the Inertia app mounts.
	//
	// Defaults to "app".
	RootViewID string

	// React enables the React Refresh preamble in development mode.
	React bool
}

func (c *Config) defaults() {
	c.Address = cmp.Or(c.Address, DefaultViteAddress)
	c.Main = cmp.Or(c.Main, DefaultMain)
	c.Lang = cmp.Or(c.Lang, DefaultLang)
	c.Title = cmp.Or(c.Title, DefaultTitle)
	c.RootViewID = cmp.Or(c.RootViewID, inertia.DefaultRootViewID)
}

// Development creates a document layout that loads assets from the Vite
// dev server. Use it together with `vite dev` during local development.
//
// If config is nil, default values are used.
func Development(config *Config) inertia.Layout {
	if config == nil {
		//nolint:exhaustruct
		config = &Config{}
	}

	config.defaults()

	head := make([]template.HTML, 0, 3)
	if config.React {
		head = append(head, reactRefresh(config.Address))
	}

	//nolint:gosec
	head = append(head,
		template.HTML(fmt.Sprintf(
			`<script type="module" src="%s/@vite/client"></script>`, config.Address)),
		template.HTML(fmt.Sprintf(
			`<script type="module" src="%s/%s"></script>`, config.Address, config.Main)),
	)

	return newDocumentLayout(config, head)
}

// reactRefresh creates the React Refresh preamble required by
// @vitejs/plugin-react in development mode.
func reactRefresh(address string) template.HTML {
	//nolint:gosec
	return template.HTML(fmt.Sprintf(`<script type="module">
import RefreshRuntime from '%s/@react-refresh'
RefreshRuntime.injectIntoGlobalHook(window)
window.$RefreshReg$ = () => {}
window.$RefreshSig$ = () => (type) => type
window.__vite_plugin_react_preamble_installed__ = true
</script>`, address))
}

// Production serves assets compiled by `vite build`.
//
// The asset version is derived from the manifest content, so every new
// build invalidates pages held by open browser tabs.
type Production struct {
	layout  inertia.Layout
	version string
}

// NewProduction reads the Vite build manifest at path from fsys and
// creates a production layout for the configured entry point.
//
// If config is nil, default values are used.
func NewProduction(fsys fs.FS, path string, config *Config) (*Production, error) {
	if config == nil {
		//nolint:exhaustruct
		config = &Config{}
	}

	config.defaults()

	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("inertia: failed to read manifest file: %w", err)
	}

	manifest, err := ParseManifest(b)
	if err != nil {
		return nil, err
	}

	css, js, err := manifest.HTML(config.Main)
	if err != nil {
		return nil, err
	}

	head := make([]template.HTML, 0, len(css)+len(js))
	head = append(head, css...)
	head = append(head, js...)

	return &Production{
		layout:  newDocumentLayout(config, head),
		version: Fingerprint(b),
	}, nil
}

// MustProduction is like NewProduction, but panics if an error occurs.
func MustProduction(fsys fs.FS, path string, config *Config) *Production {
	return must.Must(NewProduction(fsys, path, config))
}

// Layout returns the production document layout.
func (p *Production) Layout() inertia.Layout { return p.layout }

// Version returns the asset version derived from the build manifest.
func (p *Production) Version() string { return p.version }

// Renderer creates an inertia.Renderer bound to the production layout and
// asset version. The Version field of config is overwritten.
func (p *Production) Renderer(config *inertia.Config) *inertia.Renderer {
	if config == nil {
		//nolint:exhaustruct
		config = &inertia.Config{}
	}

	config.Version = p.version

	return inertia.New(p.layout, config)
}

// Fingerprint returns the hex-encoded SHA-1 digest of b.
//
// Byte-identical manifests always produce the same fingerprint, and any
// change to the manifest content produces a different one.
func Fingerprint(b []byte) string {
	sum := sha1.Sum(b) //nolint:gosec

	return hex.EncodeToString(sum[:])
}

//nolint:gochecknoglobals
var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Title}}</title>
    {{- range .Head}}
    {{.}}
    {{- end}}
  </head>
  <body>
    {{.RootView}}
  </body>
</html>
`))

type documentData struct {
	Lang     string
	Title    string
	RootView template.HTML
	Head     []template.HTML
}

// documentLayout renders the HTML document shell around the Inertia root view.
type documentLayout struct {
	lang       string
	title      string
	rootViewID string
	attrs      map[string]string
	head       []template.HTML
}

var _ inertia.Layout = (*documentLayout)(nil)

func newDocumentLayout(config *Config, head []template.HTML) *documentLayout {
	return &documentLayout{
		lang:       config.Lang,
		title:      config.Title,
		rootViewID: config.RootViewID,
		attrs:      config.RootViewAttrs,
		head:       head,
	}
}

func (l *documentLayout) Render(page string) (string, error) {
	var w strings.Builder

	data := documentData{
		Lang:     l.lang,
		Title:    l.title,
		Head:     l.head,
		RootView: inertia.RootView(l.rootViewID, page, l.attrs),
	}

	if err := documentTemplate.Execute(&w, &data); err != nil {
		return "", fmt.Errorf("inertia: failed to execute document template: %w", err)
	}

	return w.String(), nil
}
