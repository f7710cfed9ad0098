package vite

import (
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inertia "github.com/hakanersu/inertia-go"
	"github.com/hakanersu/inertia-go/internal/inertiaheader"
	"github.com/hakanersu/inertia-go/internal/inertiatest"
)

//nolint:gochecknoglobals
var testManifest = []byte(`{
  "_shared-B7PI925R.js": {
    "file": "assets/shared-B7PI925R.js",
    "name": "shared",
    "css": ["assets/shared-ChJ_j-JJ.css"]
  },
  "src/main.ts": {
    "file": "assets/main-4rxXkegb.js",
    "name": "main",
    "src": "src/main.ts",
    "isEntry": true,
    "imports": ["_shared-B7PI925R.js"],
    "css": ["assets/main-Ci1PLoBF.css"]
  }
}`)

//nolint:gochecknoglobals
var testPage = `{"component":"Home","props":{},"url":"/","version":null}`

func manifestFS() fstest.MapFS {
	return fstest.MapFS{
		"dist/.vite/manifest.json": &fstest.MapFile{
			Data: testManifest,
			Mode: 0o644,
		},
	}
}

func TestDevelopment(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		layout := Development(nil)

		doc, err := layout.Render(testPage)
		require.NoError(t, err)

		assert.Contains(t, doc,
			`<script type="module" src="http://localhost:5173/@vite/client"></script>`)
		assert.Contains(t, doc,
			`<script type="module" src="http://localhost:5173/src/main.ts"></script>`)
		assert.Contains(t, doc, `<html lang="en">`)
		assert.Contains(t, doc, `<title>Vite</title>`)
		assert.Contains(t, doc, `<div id="app" data-page="`)
		assert.NotContains(t, doc, "@react-refresh")
	})

	t.Run("custom config", func(t *testing.T) {
		t.Parallel()

		layout := Development(&Config{
			Address:       "http://127.0.0.1:3000",
			Main:          "resources/js/app.tsx",
			Lang:          "de",
			Title:         "Admin",
			RootViewID:    "root",
			RootViewAttrs: map[string]string{"class": "h-full"},
			React:         true,
		})

		doc, err := layout.Render(testPage)
		require.NoError(t, err)

		assert.Contains(t, doc, `src="http://127.0.0.1:3000/@vite/client"`)
		assert.Contains(t, doc, `src="http://127.0.0.1:3000/resources/js/app.tsx"`)
		assert.Contains(t, doc, `<html lang="de">`)
		assert.Contains(t, doc, `<title>Admin</title>`)
		assert.Contains(t, doc, `<div id="root" data-page="`)
		assert.Contains(t, doc, `class="h-full"`)
		assert.Contains(t, doc, "http://127.0.0.1:3000/@react-refresh",
			"react refresh preamble should be included")
	})
}

func TestNewProduction(t *testing.T) {
	t.Parallel()

	t.Run("builds layout from the manifest", func(t *testing.T) {
		t.Parallel()

		p, err := NewProduction(manifestFS(), "dist/.vite/manifest.json", nil)
		require.NoError(t, err)

		assert.Equal(t, Fingerprint(testManifest), p.Version())

		doc, err := p.Layout().Render(testPage)
		require.NoError(t, err)

		assert.Contains(t, doc,
			`<script type="module" src="/assets/main-4rxXkegb.js"></script>`)
		assert.Contains(t, doc,
			`<link rel="stylesheet" href="/assets/main-Ci1PLoBF.css" />`)
		assert.Contains(t, doc,
			`<link rel="stylesheet" href="/assets/shared-ChJ_j-JJ.css" />`,
			"stylesheets of imported chunks should be included")
		assert.NotContains(t, doc, "@vite/client", "no dev server in production")
	})

	t.Run("missing manifest", func(t *testing.T) {
		t.Parallel()

		_, err := NewProduction(manifestFS(), "missing.json", nil)
		require.Error(t, err)
	})

	t.Run("malformed manifest", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"manifest.json": &fstest.MapFile{Data: []byte(`{`), Mode: 0o644},
		}

		_, err := NewProduction(fsys, "manifest.json", nil)
		require.Error(t, err)
	})

	t.Run("unknown entry point", func(t *testing.T) {
		t.Parallel()

		_, err := NewProduction(manifestFS(), "dist/.vite/manifest.json", &Config{
			Main: "src/other.ts",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found in manifest")
	})
}

func TestMustProduction(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustProduction(manifestFS(), "missing.json", nil)
	}, "MustProduction should panic when the manifest cannot be read")
}

func TestProduction_Renderer(t *testing.T) {
	t.Parallel()

	p := MustProduction(manifestFS(), "dist/.vite/manifest.json", nil)
	renderer := p.Renderer(nil)

	require.NotNil(t, renderer)
	assert.Equal(t, p.Version(), renderer.Version())

	req, w := inertiatest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, renderer.Render(w, req, "Home", inertia.NewRenderContext()))
	assert.Equal(t, p.Version(), w.Header().Get(inertiaheader.HeaderXInertiaVersion))
	assert.Contains(t, w.Body.String(), `<div id="app" data-page="`)
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", Fingerprint([]byte("hello")))
	assert.Equal(t, Fingerprint(testManifest), Fingerprint(testManifest),
		"fingerprints are deterministic")
	assert.NotEqual(t, Fingerprint([]byte("a")), Fingerprint([]byte("b")),
		"different content yields different fingerprints")
}

func TestManifest_HTML(t *testing.T) {
	t.Parallel()

	t.Run("unknown entry", func(t *testing.T) {
		t.Parallel()

		m, err := ParseManifest([]byte(`{}`))
		require.NoError(t, err)

		_, _, err = m.HTML("src/main.ts")
		require.Error(t, err)
	})

	t.Run("import cycles terminate", func(t *testing.T) {
		t.Parallel()

		m, err := ParseManifest([]byte(`{
			"a.js": {"file": "assets/a.js", "imports": ["b.js"], "css": ["assets/a.css"]},
			"b.js": {"file": "assets/b.js", "imports": ["a.js"], "css": ["assets/b.css"]}
		}`))
		require.NoError(t, err)

		css, js, err := m.HTML("a.js")
		require.NoError(t, err)
		assert.Len(t, css, 2)
		assert.Len(t, js, 1)
	})
}
