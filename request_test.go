package inertia

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hakanersu/inertia-go/internal/inertiaheader"
	"github.com/hakanersu/inertia-go/internal/inertiatest"
)

func TestClassifyRequest(t *testing.T) {
	t.Parallel()

	t.Run("browser navigation", func(t *testing.T) {
		t.Parallel()

		r, _ := inertiatest.NewRequest(http.MethodGet, "/dashboard", nil)

		assert.Equal(t, request{
			method: http.MethodGet,
			path:   "/dashboard",
			url:    "/dashboard",
		}, classifyRequest(r))
	})

	t.Run("inertia navigation keeps the query in url but not in path", func(t *testing.T) {
		t.Parallel()

		r, _ := inertiatest.NewRequest(http.MethodGet, "/users?page=2", &inertiatest.RequestConfig{
			Inertia: true,
			Version: "abc",
		})

		assert.Equal(t, request{
			method:  http.MethodGet,
			path:    "/users",
			url:     "/users?page=2",
			version: "abc",
			inertia: true,
		}, classifyRequest(r))
	})

	t.Run("version header without marker", func(t *testing.T) {
		t.Parallel()

		r, _ := inertiatest.NewRequest(http.MethodPost, "/users", &inertiatest.RequestConfig{
			Version: "abc",
		})

		assert.Equal(t, request{
			method:  http.MethodPost,
			path:    "/users",
			url:     "/users",
			version: "abc",
		}, classifyRequest(r))
	})
}

func TestIsInertiaRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		marker string
		want   bool
	}{
		{name: "missing header", marker: "", want: false},
		{name: "lowercase true", marker: "true", want: true},
		{name: "capitalized value", marker: "True", want: false},
		{name: "numeric value", marker: "1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.marker != "" {
				r.Header.Set(inertiaheader.HeaderXInertia, tt.marker)
			}

			assert.Equal(t, tt.want, isInertiaRequest(r))
		})
	}
}

func TestHeaderValueList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		expected []string
	}{
		{
			name:     "empty header",
			header:   "",
			expected: nil,
		},
		{
			name:     "single value",
			header:   "test",
			expected: []string{"test"},
		},
		{
			name:     "multiple values",
			header:   "test1,test2,test3",
			expected: []string{"test1", "test2", "test3"},
		},
		{
			name:     "values with whitespace",
			header:   " test1 , test2 , test3 ",
			expected: []string{"test1", "test2", "test3"},
		},
		{
			name:     "values with dots",
			header:   "user.name,user.email,user.age",
			expected: []string{"user.name", "user.email", "user.age"},
		},
		{
			name:     "empty values between commas",
			header:   "test1,,test2",
			expected: []string{"test1", "", "test2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := headerValueList(tt.header)
			assert.Equal(t, tt.expected, result, "extracted list should match expected values")
		})
	}
}
