package inertia

import (
	"context"
	"net/http"
)

var (
	_ Proper = (Props)(nil)
	_ Proper = (*Prop)(nil)
	_ Proper = (Map)(nil)
)

// Prop represents a single property passed to a page component.
//
// Create props using constructor functions:
//   - NewProp: standard prop, included on initial render and partial reloads
//   - NewAlways: always included, ignores partial reload filters
//   - NewOptional: lazily resolved, sent only when a partial reload
//     explicitly requests it
//
// Attach props to a page using the WithProps option.
type Prop struct {
	val        any
	valFn      Lazy // optional props
	key        string
	lazy       bool // skipped on initial render
	ignorable  bool // false for always props
	concurrent bool // eligible for parallel resolution
}

type (
	// Lazy represents a prop value that is resolved on demand rather than
	// eagerly. The resolved value must be JSON-serializable.
	Lazy interface {
		Value(context.Context) (any, error)
	}

	// LazyFunc is a function adapter that implements the Lazy interface.
	LazyFunc func(context.Context) (any, error)
)

// Value calls `fn()`.
func (fn LazyFunc) Value(ctx context.Context) (any, error) { return fn(ctx) }

// NewProp creates a standard prop included on the initial page load and on
// partial reloads, unless a partial reload filters it out.
func NewProp(key string, val any) Prop {
	//nolint:exhaustruct
	return Prop{
		ignorable: true, // important
		key:       key,
		val:       val,
	}
}

// NewAlways creates a prop that is always included in responses.
// Unlike regular props, it ignores the partial reload filters
// (X-Inertia-Partial-Data/Except headers). Use for critical data that must
// always be present, such as authentication state or validation errors.
func NewAlways(key string, val any) Prop {
	//nolint:exhaustruct
	return Prop{
		ignorable: false, // important
		key:       key,
		val:       val,
	}
}

// OptionalOptions configures the behavior of optional props.
type OptionalOptions struct {
	// Concurrent enables parallel resolution for this prop.
	// When true, the prop can be resolved concurrently with other
	// concurrent props within the same request, up to the configured
	// concurrency limit.
	Concurrent bool
}

// NewOptional creates a lazily-evaluated prop included only during partial
// reloads that explicitly request it. Useful for expensive computations
// that aren't needed on every render.
//
// If opts is nil, the prop resolves sequentially.
func NewOptional(key string, fn Lazy, opts *OptionalOptions) Prop {
	//nolint:exhaustruct
	prop := Prop{
		ignorable: true, // important
		lazy:      true, // important
		key:       key,
		valFn:     fn,
	}

	if opts != nil {
		prop.concurrent = opts.Concurrent
	}

	return prop
}

func (p Prop) Props() []Prop { return []Prop{p} }
func (p Prop) Len() int      { return 1 }

// value returns the prop value.
func (p Prop) value(ctx context.Context) (any, error) {
	if p.valFn != nil {
		v, err := p.valFn.Value(ctx)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return v, nil
	}

	return p.val, nil
}

// Proper represents a collection of props that can be attached to a render
// context. Implemented by Prop, Props and Map.
type Proper interface {
	// Props returns the underlying prop slice.
	Props() []Prop

	// Len returns the number of props in the collection.
	Len() int
}

// Props is a collection of props.
type Props []Prop

func (p Props) Len() int      { return len(p) }
func (p Props) Props() []Prop { return p }

// Map is a convenient map-based Proper implementation for simple key-value
// props. All values become standard props.
//
// For always or optional props, use NewAlways, NewOptional or ParseStruct
// instead.
type Map map[string]any

func (m Map) Props() []Prop {
	props := make([]Prop, 0, len(m))
	for k, v := range m {
		props = append(props, NewProp(k, v))
	}

	return props
}

func (m Map) Len() int { return len(m) }

type sharedPropsCtx struct{}

var kSharedPropsCtxKey = sharedPropsCtx{} //nolint:gochecknoglobals

// WithSharedProps attaches props to the request context so they are included
// in every page rendered for this request.
//
// WithSharedProps can be used to gather props in multiple places, e.g., in
// middleware. Repeated calls accumulate props. Any overlapping props between
// the shared context and the page props will be replaced with the page props.
//
// Prefer to use the page props directly instead of using this function,
// and opt in only when necessary.
func WithSharedProps(r *http.Request, props Proper) *http.Request {
	if props == nil {
		return r
	}

	if existing := sharedPropsFromRequest(r); existing != nil {
		merged := make(Props, 0, existing.Len()+props.Len())
		merged = append(merged, existing.Props()...)
		merged = append(merged, props.Props()...)
		props = merged
	}

	return r.WithContext(context.WithValue(r.Context(), kSharedPropsCtxKey, props))
}

// sharedPropsFromRequest returns the props attached via WithSharedProps, if any.
func sharedPropsFromRequest(r *http.Request) Proper {
	props, ok := r.Context().Value(kSharedPropsCtxKey).(Proper)
	if !ok {
		return nil
	}

	return props
}
