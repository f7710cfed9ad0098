package inertia

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

const TagInertia = "inertia"

var (
	propTypeOptional = "optional" //nolint:gochecknoglobals
	propTypeAlways   = "always"   //nolint:gochecknoglobals
)

var (
	propDiscard    = "-"          //nolint:gochecknoglobals
	propOmitEmpty  = "omitempty"  //nolint:gochecknoglobals
	propConcurrent = "concurrent" //nolint:gochecknoglobals
)

var lazyType = reflect.TypeFor[Lazy]() //nolint:gochecknoglobals

// ParseStruct converts a struct into a Props collection using struct tags.
// It expects a struct pointer with JSON-encodable fields.
//
// Only fields tagged with "inertia" are included; untagged fields are ignored.
//
// Tag format: `inertia:"name[,type][,concurrent][,omitempty]"`
//
// Tag components:
//   - name: Prop name sent to client (required). Use "-" to skip the field.
//   - type: One of "optional", "always", or empty (regular prop)
//   - concurrent: Include literal "concurrent" for parallel resolution (optional props only)
//   - omitempty: Include literal "omitempty" to skip zero-value fields
//
// Prop types:
//   - (empty): Regular prop, included on initial and partial renders
//   - "optional": Lazy prop, resolved only when explicitly requested
//   - "always": Always included, ignores partial reload filters
//
// Field value requirements:
//   - Optional fields must be Lazy or LazyFunc type
//   - Regular/always fields can be any JSON-serializable type
//
// Example:
//
//	type PageProps struct {
//	    UserID    int      `inertia:"user_id,always"`
//	    Posts     []Post   `inertia:"posts"`
//	    Analytics LazyFunc `inertia:"analytics,optional,concurrent"`
//	    Bio       string   `inertia:"bio,omitempty"`
//	}
func ParseStruct(v any) (Props, error) {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return nil, errors.New("inertia: msg must be a pointer")
	}

	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return nil, errors.New("inertia: msg must be a struct")
	}

	typ := val.Type()
	numFields := typ.NumField()
	props := make(Props, 0, numFields)

	for i := range numFields {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		// Skip unexported fields
		if !field.IsExported() {
			continue
		}

		inertiaTag := field.Tag.Get(TagInertia)
		if inertiaTag == "" {
			continue
		}

		parts := strings.Split(inertiaTag, ",")

		fieldName := field.Name
		if parts[0] != "" {
			fieldName = parts[0]
		}

		// Check if the field should be discarded.
		if fieldName == propDiscard {
			continue
		}

		fieldType := ""
		concurrent := false
		omitEmpty := false

		for _, part := range parts[1:] {
			switch part {
			case propTypeOptional, propTypeAlways:
				fieldType = part
			case propConcurrent:
				concurrent = true
			case propOmitEmpty:
				omitEmpty = true
			case "":
				continue
			default:
				return nil, fmt.Errorf("inertia: unknown tag option %q", part)
			}
		}

		// Skip empty fields if omitempty is presented.
		if omitEmpty && fieldVal.IsZero() {
			continue
		}

		// Check if field can be accessed
		if !fieldVal.CanInterface() {
			continue
		}

		if concurrent && fieldType != propTypeOptional {
			return nil, errors.New("inertia: cannot use concurrent on non-optional field")
		}

		var prop Prop

		switch fieldType {
		case propTypeOptional:
			fn, err := toLazy(fieldVal)
			if err != nil {
				return nil, err
			}

			prop = NewOptional(fieldName, fn, &OptionalOptions{Concurrent: concurrent})
		case propTypeAlways:
			prop = NewAlways(fieldName, fieldVal.Interface())
		default:
			prop = NewProp(fieldName, fieldVal.Interface())
		}

		props = append(props, prop)
	}

	return props, nil
}

// toLazy converts a reflect.Value to an Lazy
// if the value is Lazy convertible.
func toLazy(v reflect.Value) (Lazy, error) {
	val := v.Interface()
	if v.Kind() == reflect.Interface && v.Type().Implements(lazyType) {
		lazy, ok := val.(Lazy)
		if !ok {
			return nil, errors.New("inertia: invalid lazy value")
		}

		return lazy, nil
	}

	if v.Kind() == reflect.Func {
		lazyFn, ok := val.(LazyFunc)
		if !ok {
			return nil, errors.New("inertia: invalid lazy function")
		}

		return lazyFn, nil
	}

	return nil, errors.New("inertia: invalid lazy value")
}
