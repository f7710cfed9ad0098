package inertia

import (
	"encoding/json"
	"testing"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_WireFormat(t *testing.T) {
	t.Parallel()

	t.Run("exactly four fields", func(t *testing.T) {
		t.Parallel()

		version := "abc"
		page := Page{
			Component: "Users/Index",
			Props:     map[string]any{"users": []string{"a", "b"}},
			URL:       "/users?page=2",
			Version:   &version,
		}

		b, err := jsonv2.Marshal(&page)
		require.NoError(t, err)

		var m map[string]any

		require.NoError(t, json.Unmarshal(b, &m))
		assert.Len(t, m, 4, "a page carries component, props, url and version only")
		assert.Contains(t, m, "component")
		assert.Contains(t, m, "props")
		assert.Contains(t, m, "url")
		assert.Contains(t, m, "version")
	})

	t.Run("version is null when the server has none", func(t *testing.T) {
		t.Parallel()

		page := Page{
			Component: "Home",
			Props:     map[string]any{},
			URL:       "/",
		}

		b, err := jsonv2.Marshal(&page)
		require.NoError(t, err)

		assert.JSONEq(t, `{"component":"Home","props":{},"url":"/","version":null}`, string(b))
	})
}

func TestPage_DeterministicMarshal(t *testing.T) {
	t.Parallel()

	version := "abc"

	makePage := func() Page {
		return Page{
			Component: "Users/Index",
			Props: map[string]any{
				"alpha": 1,
				"beta":  2,
				"gamma": 3,
				"delta": map[string]any{"nested": true, "also": "sorted"},
			},
			URL:     "/users",
			Version: &version,
		}
	}

	first, err := jsonv2.Marshal(makePage(), jsonv2.Deterministic(true))
	require.NoError(t, err)

	second, err := jsonv2.Marshal(makePage(), jsonv2.Deterministic(true))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second),
		"identical pages must serialize to identical bytes")
}
