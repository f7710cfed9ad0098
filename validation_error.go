package inertia

import (
	"net/http"

	"github.com/hakanersu/inertia-go/internal/inertiaheader"
)

var (
	_ error = (*validationError)(nil)
	_ error = (*ValidationErrors)(nil)

	_ ValidationError   = (*validationError)(nil)
	_ ValidationErrorer = (*validationError)(nil)
	_ ValidationErrorer = (*ValidationErrors)(nil)
	_ ValidationErrorer = (MapError)(nil)
)

// DefaultErrorBag is the unnamed error bag: errors land directly under the
// "errors" prop instead of being wrapped under a bag name.
const DefaultErrorBag = ""

// ValidationError represents a single field validation failure.
type ValidationError interface {
	// Field returns the name of the field that failed validation.
	Field() string

	// Error returns the human-readable message describing the failure.
	Error() string
}

// ValidationErrorer is a collection of validation errors that can be sent
// to the client.
type ValidationErrorer interface {
	error

	// ValidationErrors returns all validation errors in the collection.
	ValidationErrors() []ValidationError

	// Len returns the number of validation errors.
	Len() int
}

type validationError struct {
	field   string
	message string
}

// NewValidationError creates a validation error for a specific field with
// a message.
func NewValidationError(field string, message string) *validationError { //nolint:revive
	return &validationError{field: field, message: message}
}

func (err *validationError) Error() string                       { return err.message }
func (err *validationError) Field() string                       { return err.field }
func (err *validationError) ValidationErrors() []ValidationError { return []ValidationError{err} }
func (err *validationError) Len() int                            { return 1 }

// ValidationErrors is a slice-based ValidationErrorer.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string                       { return "validation errors" }
func (errs ValidationErrors) ValidationErrors() []ValidationError { return errs }
func (errs ValidationErrors) Len() int                            { return len(errs) }

// MapError is a map-based ValidationErrorer. Keys are field names, values
// are error messages.
type MapError map[string]string

func (m MapError) Error() string { return "validation errors" }
func (m MapError) Len() int      { return len(m) }

func (m MapError) ValidationErrors() []ValidationError {
	errors := make([]ValidationError, 0, len(m))
	for k, v := range m {
		errors = append(errors, NewValidationError(k, v))
	}

	return errors
}

// ErrorBagFromRequest extracts the error bag name from the
// X-Inertia-Error-Bag header. Returns DefaultErrorBag if the header is not
// present. Used to scope validation errors to a specific form on a page.
func ErrorBagFromRequest(r *http.Request) string {
	errorBag := r.Header.Get(inertiaheader.HeaderXInertiaErrorBag)
	if errorBag == "" {
		return DefaultErrorBag
	}

	return errorBag
}
