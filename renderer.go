package inertia

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"slices"

	"github.com/alitto/pond/v2"
	"github.com/go-json-experiment/json"
	"go.inout.gg/foundations/debug"

	"github.com/hakanersu/inertia-go/internal/inertiaheader"
	"github.com/hakanersu/inertia-go/internal/inertiaredirect"
)

// DefaultConcurrency is the default concurrency level for props resolution
// marked as concurrently resolvable.
var DefaultConcurrency = runtime.GOMAXPROCS(0) //nolint:gochecknoglobals

// Config configures the Renderer behavior and capabilities.
type Config struct {
	// SharedProps are included in every page rendered by this Renderer.
	//
	// Page-specific props with the same key take precedence.
	SharedProps Proper

	// Version identifies the current asset version (e.g., build hash or timestamp).
	//
	// If empty, version negotiation is disabled and pages are sent with a null version.
	Version string

	// JSONMarshalOptions configures JSON serialization for page props and data.
	JSONMarshalOptions []json.Options

	// Concurrency sets the default maximum number of props that can be resolved concurrently.
	// It only affects props marked as concurrent.
	//
	// Defaults to runtime.GOMAXPROCS(0).
	Concurrency int
}

func (c *Config) defaults() {
	c.Concurrency = cmp.Or(c.Concurrency, DefaultConcurrency)
}

// Renderer handles Inertia.js page responses, negotiating between structured
// JSON payloads and full HTML documents. It manages page assembly, JSON
// serialization, and prop resolution.
//
// Create a Renderer using the New constructor function.
type Renderer struct {
	layout             Layout
	sharedProps        Proper
	jsonMarshalOptions []json.Options
	version            string
	concurrency        int
}

// New creates a Renderer with the provided document layout and configuration.
//
// If config is nil, default values are used:
//   - Version: "" (version negotiation disabled)
//   - Concurrency: GOMAXPROCS(0)
func New(layout Layout, config *Config) *Renderer {
	if config == nil {
		//nolint:exhaustruct
		config = &Config{}
	}

	config.defaults()

	// Map props marshal in sorted key order so identical pages produce
	// identical bytes.
	opts := make([]json.Options, 0, len(config.JSONMarshalOptions)+1)
	opts = append(opts, json.Deterministic(true))
	opts = append(opts, config.JSONMarshalOptions...)

	r := &Renderer{
		layout:             layout,
		sharedProps:        config.SharedProps,
		jsonMarshalOptions: opts,
		version:            config.Version,
		concurrency:        config.Concurrency,
	}

	debug.Assert(r.layout != nil, "expected layout to be defined")

	return r
}

// Version returns the current asset version string used for client version validation.
func (r *Renderer) Version() string { return r.version }

// Render sends an Inertia page response, automatically choosing the format:
//   - JSON for Inertia requests (XHR navigation)
//   - HTML for initial page loads or non-Inertia requests
//
// Stale Inertia GET requests receive a 409 Conflict pointing at the current
// URL so the client can reload with fresh assets.
//
// The renderCtx configures props, validation errors, and other page-specific settings.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, name string, renderCtx RenderContext) error {
	renderCtx.Concurrency = max(cmp.Or(renderCtx.Concurrency, r.concurrency), 0)

	out := negotiate(classifyRequest(req), r.version)
	if out.conflict {
		d("Stale asset version, asking client to reload %s", out.location)
		Location(w, req, out.location)

		return nil
	}

	page, err := r.newPage(req, name, renderCtx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(page, r.jsonMarshalOptions...)
	if err != nil {
		return fmt.Errorf("inertia: failed to encode page: %w", err)
	}

	h := w.Header()
	h.Set(inertiaheader.HeaderVary, inertiaheader.HeaderXInertia)

	if r.version != "" {
		h.Set(inertiaheader.HeaderXInertiaVersion, r.version)
	}

	if out.kind == payloadJSON {
		d("Received inertia request, sending JSON response: %s",
			req.Header.Get(inertiaheader.HeaderReferer))

		h.Set(inertiaheader.HeaderXInertia, "true")
		h.Set(inertiaheader.HeaderContentType, inertiaheader.ContentTypeJSON)
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(body); err != nil {
			return fmt.Errorf("inertia: failed to write JSON response: %w", err)
		}

		return nil
	}

	doc, err := r.layout.Render(string(body))
	if err != nil {
		return fmt.Errorf("inertia: failed to render document layout: %w", err)
	}

	h.Set(inertiaheader.HeaderContentType, inertiaheader.ContentTypeHTML)
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, doc); err != nil {
		return fmt.Errorf("inertia: failed to write HTML response: %w", err)
	}

	return nil
}

func (r *Renderer) newPage(req *http.Request, componentName string, renderCtx RenderContext) (*Page, error) {
	rawProps := make([]Prop, 0, len(renderCtx.Props)+2)

	if r.sharedProps != nil {
		rawProps = append(rawProps, r.sharedProps.Props()...)
	}

	if shared := sharedPropsFromRequest(req); shared != nil {
		rawProps = append(rawProps, shared.Props()...)
	}

	rawProps = append(rawProps, renderCtx.Props...)

	if len(renderCtx.ValidationErrorer) > 0 {
		rawProps = append(rawProps, r.makeValidationErrors(renderCtx.ValidationErrorer, renderCtx.ErrorBag))
	}

	props, err := r.makeProps(req, componentName, rawProps, renderCtx.Concurrency)
	if err != nil {
		return nil, err
	}

	var version *string
	if r.version != "" {
		version = &r.version
	}

	return &Page{
		Component: componentName,
		Props:     props,
		URL:       req.RequestURI,
		Version:   version,
	}, nil
}

func (r *Renderer) makeProps(
	req *http.Request,
	componentName string,
	props []Prop,
	concurrency int,
) (map[string]any, error) {
	ctx := req.Context()

	// If the request is a partial, we need to filter the props.
	if isPartialRequest(req, componentName) {
		whitelist := headerValueList(req.Header.Get(
			inertiaheader.HeaderXInertiaPartialData))
		blacklist := headerValueList(req.Header.Get(
			inertiaheader.HeaderXInertiaPartialExcept))

		return r.resolvePartialRequest(ctx, props, whitelist, blacklist, concurrency)
	}

	m := make(map[string]any, len(props))

	for _, prop := range props {
		// Skip lazy (optional) props on the first render.
		if prop.lazy {
			continue
		}

		val, err := prop.value(ctx)
		if err != nil {
			return nil, fmt.Errorf("inertia: failed to resolve prop %s: %w", prop.key, err)
		}

		m[prop.key] = val
	}

	return m, nil
}

func (r *Renderer) resolvePartialRequest(
	ctx context.Context,
	props []Prop,
	whitelist, blacklist []string,
	concurrency int,
) (map[string]any, error) {
	m := make(map[string]any, len(props))
	concurrentProps := make([]Prop, 0, len(props))

	for _, prop := range props {
		key := prop.key
		if prop.ignorable {
			// It should be fine to go through slices here, as the number of props is expected to be small.
			if len(whitelist) > 0 && !slices.Contains(whitelist, key) ||
				len(blacklist) > 0 && slices.Contains(blacklist, key) {
				continue
			}
		}

		if prop.concurrent {
			concurrentProps = append(concurrentProps, prop)
		} else {
			val, err := prop.value(ctx)
			if err != nil {
				return nil, fmt.Errorf("inertia: failed to resolve prop %s: %w", prop.key, err)
			}

			m[key] = val
		}
	}

	if len(concurrentProps) > 0 {
		pool := pond.NewResultPool[pair[string, any]](concurrency)
		group := pool.NewGroupContext(ctx)

		for _, prop := range concurrentProps {
			group.SubmitErr(func() (pair[string, any], error) {
				var kv pair[string, any]

				val, err := prop.value(ctx)
				if err != nil {
					return kv, fmt.Errorf(
						"inertia: failed to resolve prop %s: %w",
						prop.key,
						err,
					)
				}

				kv.key = prop.key
				kv.value = val

				return kv, nil
			})
		}

		result, err := group.Wait()
		if err != nil {
			return nil, fmt.Errorf("inertia: failed to resolve concurrent props: %w", err)
		}

		for i, prop := range concurrentProps {
			m[prop.key] = result[i].value
		}
	}

	return m, nil
}

func (r *Renderer) makeValidationErrors(errorers []ValidationErrorer, errorBag string) Prop {
	m := make(map[string]string)

	for _, errorer := range errorers {
		errs := errorer.ValidationErrors()
		for _, err := range errs {
			m[err.Field()] = err.Error()
		}
	}

	if errorBag != DefaultErrorBag {
		return NewAlways(errorBag, map[string]map[string]string{"errors": m})
	}

	return NewAlways("errors", m)
}

// Location redirects to an external URL outside of the Inertia app.
//
// For Inertia requests, it uses a 409 Conflict response with X-Inertia-Location header.
// For regular requests, it performs a standard HTTP redirect.
func Location(w http.ResponseWriter, r *http.Request, url string) {
	if isInertiaRequest(r) {
		h := w.Header()

		h.Del(inertiaheader.HeaderVary)
		h.Del(inertiaheader.HeaderXInertia)
		h.Set(inertiaheader.HeaderXInertiaLocation, url) // redirect URL
		w.WriteHeader(http.StatusConflict)               // 409 Conflict

		return
	}

	inertiaredirect.Redirect(w, r, url)
}

// Redirect sends a redirect response to the Inertia app page.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	inertiaredirect.Redirect(w, r, url)
}

// RedirectBack redirects the user back to the previous page.
//
// The previous page is determined from the Referer header and falls back
// to fallbackURL if the header is not present.
func RedirectBack(w http.ResponseWriter, r *http.Request, fallbackURL string) {
	url := r.Header.Get(inertiaheader.HeaderReferer)
	if url == "" {
		d("no referer header, redirecting back to %s", fallbackURL)

		url = fallbackURL
	}

	inertiaredirect.Redirect(w, r, url)
}

// pair is a key-value pair.
type pair[K any, V any] struct {
	key   K
	value V
}
